package kubeops

import (
	"context"
	"fmt"
	"strings"

	corev1 "k8s.io/api/core/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
)

// ListPods reports every pod in the namespace as a fixed-width table.
func (o *Ops) ListPods(ctx context.Context) string {
	if o.client == nil {
		return failure("Pod 목록 조회", errNotConfigured)
	}

	pods, err := o.client.CoreV1().Pods(o.namespace).List(ctx, metav1.ListOptions{})
	if err != nil {
		return failure("Pod 목록 조회", err)
	}
	if len(pods.Items) == 0 {
		return fmt.Sprintf("네임스페이스 '%s'에 Pod가 없습니다.", o.namespace)
	}

	lines := []string{fmt.Sprintf("%-50s %-12s %-10s %-8s", "NAME", "STATUS", "RESTARTS", "AGE")}
	lines = append(lines, strings.Repeat("-", 80))
	for _, pod := range pods.Items {
		phase := string(pod.Status.Phase)
		if phase == "" {
			phase = "Unknown"
		}
		restarts := int32(0)
		for _, cs := range pod.Status.ContainerStatuses {
			restarts += cs.RestartCount
		}
		lines = append(lines, fmt.Sprintf("%-50s %-12s %-10d %-8s",
			safeName(pod.Name), phase, restarts, age(pod.CreationTimestamp)))
	}
	return strings.Join(lines, "\n")
}

// GetPod reports one pod in detail: status, addresses, containers, container
// statuses, and conditions.
func (o *Ops) GetPod(ctx context.Context, name string) string {
	label := fmt.Sprintf("Pod '%s' 조회", name)
	if o.client == nil {
		return failure(label, errNotConfigured)
	}

	pod, err := o.client.CoreV1().Pods(o.namespace).Get(ctx, name, metav1.GetOptions{})
	if err != nil {
		return failure(label, err)
	}

	phase := string(pod.Status.Phase)
	if phase == "" {
		phase = "Unknown"
	}
	lines := []string{
		fmt.Sprintf("Pod: %s", safeName(pod.Name)),
		fmt.Sprintf("  Namespace: %s", o.namespace),
		fmt.Sprintf("  Status: %s", phase),
	}
	if pod.Status.PodIP != "" {
		lines = append(lines, fmt.Sprintf("  Pod IP: %s", pod.Status.PodIP))
	}
	if pod.Spec.NodeName != "" {
		lines = append(lines, fmt.Sprintf("  Node: %s", pod.Spec.NodeName))
	}

	if len(pod.Spec.Containers) > 0 {
		lines = append(lines, "  Containers:")
		for _, c := range pod.Spec.Containers {
			lines = append(lines, fmt.Sprintf("    - %s: %s", c.Name, c.Image))
			if len(c.Ports) > 0 {
				var ports []string
				for _, p := range c.Ports {
					ports = append(ports, fmt.Sprintf("%d/%s", p.ContainerPort, protocolOrTCP(p.Protocol)))
				}
				lines = append(lines, fmt.Sprintf("      Ports: %s", strings.Join(ports, ", ")))
			}
		}
	}

	if len(pod.Status.ContainerStatuses) > 0 {
		lines = append(lines, "  Container Statuses:")
		for _, cs := range pod.Status.ContainerStatuses {
			ready := "NotReady"
			if cs.Ready {
				ready = "Ready"
			}
			lines = append(lines, fmt.Sprintf("    - %s: %s, Restarts=%d", cs.Name, ready, cs.RestartCount))
		}
	}

	if len(pod.Status.Conditions) > 0 {
		lines = append(lines, "  Conditions:")
		for _, cond := range pod.Status.Conditions {
			lines = append(lines, fmt.Sprintf("    - %s: %s", cond.Type, cond.Status))
		}
	}

	return strings.Join(lines, "\n")
}

// GetPodLogs reports the last tail lines of a pod's log. An empty container
// selects the pod's default container.
func (o *Ops) GetPodLogs(ctx context.Context, name, container string, tail int) string {
	label := fmt.Sprintf("Pod '%s' 로그 조회", name)
	if o.client == nil {
		return failure(label, errNotConfigured)
	}

	tailLines := int64(tail)
	opts := &corev1.PodLogOptions{TailLines: &tailLines}
	if container != "" {
		opts.Container = container
	}

	raw, err := o.client.CoreV1().Pods(o.namespace).GetLogs(name, opts).DoRaw(ctx)
	if err != nil {
		return failure(label, err)
	}
	if len(raw) == 0 {
		return fmt.Sprintf("Pod '%s'의 로그가 비어있습니다.", name)
	}
	return fmt.Sprintf("--- Pod '%s' logs (last %d lines) ---\n%s", name, tail, raw)
}

func protocolOrTCP(p corev1.Protocol) string {
	if p == "" {
		return "TCP"
	}
	return string(p)
}
