package kubeops

import (
	"context"
	"fmt"
	"strings"
	"time"

	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/types"
)

const restartedAtAnnotation = "kubectl.kubernetes.io/restartedAt"

// ListDeployments reports every deployment in the namespace as a
// fixed-width table.
func (o *Ops) ListDeployments(ctx context.Context) string {
	if o.client == nil {
		return failure("Deployment 목록 조회", errNotConfigured)
	}

	deps, err := o.client.AppsV1().Deployments(o.namespace).List(ctx, metav1.ListOptions{})
	if err != nil {
		return failure("Deployment 목록 조회", err)
	}
	if len(deps.Items) == 0 {
		return fmt.Sprintf("네임스페이스 '%s'에 Deployment가 없습니다.", o.namespace)
	}

	lines := []string{fmt.Sprintf("%-45s %-10s %-10s %-8s", "NAME", "READY", "REPLICAS", "AGE")}
	lines = append(lines, strings.Repeat("-", 73))
	for _, dep := range deps.Items {
		replicas := int32(0)
		if dep.Spec.Replicas != nil {
			replicas = *dep.Spec.Replicas
		}
		lines = append(lines, fmt.Sprintf("%-45s %-10d %-10d %-8s",
			safeName(dep.Name), dep.Status.ReadyReplicas, replicas, age(dep.CreationTimestamp)))
	}
	return strings.Join(lines, "\n")
}

// GetDeployment reports one deployment in detail: replica counts, strategy,
// conditions, and container images.
func (o *Ops) GetDeployment(ctx context.Context, name string) string {
	label := fmt.Sprintf("Deployment '%s' 조회", name)
	if o.client == nil {
		return failure(label, errNotConfigured)
	}

	dep, err := o.client.AppsV1().Deployments(o.namespace).Get(ctx, name, metav1.GetOptions{})
	if err != nil {
		return failure(label, err)
	}

	replicas := int32(0)
	if dep.Spec.Replicas != nil {
		replicas = *dep.Spec.Replicas
	}
	lines := []string{
		fmt.Sprintf("Deployment: %s", safeName(dep.Name)),
		fmt.Sprintf("  Namespace: %s", o.namespace),
		fmt.Sprintf("  Replicas: %d", replicas),
	}
	if dep.Spec.Strategy.Type != "" {
		lines = append(lines, fmt.Sprintf("  Strategy: %s", dep.Spec.Strategy.Type))
	}

	lines = append(lines,
		fmt.Sprintf("  Ready Replicas: %d", dep.Status.ReadyReplicas),
		fmt.Sprintf("  Updated Replicas: %d", dep.Status.UpdatedReplicas),
		fmt.Sprintf("  Available Replicas: %d", dep.Status.AvailableReplicas),
	)

	if len(dep.Status.Conditions) > 0 {
		lines = append(lines, "  Conditions:")
		for _, cond := range dep.Status.Conditions {
			lines = append(lines, fmt.Sprintf("    - %s: %s (%s)", cond.Type, cond.Status, cond.Reason))
		}
	}

	if len(dep.Spec.Template.Spec.Containers) > 0 {
		lines = append(lines, "  Containers:")
		for _, c := range dep.Spec.Template.Spec.Containers {
			lines = append(lines, fmt.Sprintf("    - %s: %s", c.Name, c.Image))
		}
	}

	return strings.Join(lines, "\n")
}

// RestartDeployment triggers a rolling restart by patching the pod template
// with a restartedAt annotation, the same way kubectl rollout restart does.
func (o *Ops) RestartDeployment(ctx context.Context, name string) string {
	label := fmt.Sprintf("Deployment '%s' 재시작", name)
	if o.client == nil {
		return failure(label, errNotConfigured)
	}

	now := time.Now().UTC().Format(time.RFC3339)
	patch := fmt.Sprintf(`{"spec":{"template":{"metadata":{"annotations":{%q:%q}}}}}`,
		restartedAtAnnotation, now)

	_, err := o.client.AppsV1().Deployments(o.namespace).Patch(ctx, name,
		types.StrategicMergePatchType, []byte(patch), metav1.PatchOptions{})
	if err != nil {
		return failure(label, err)
	}
	return fmt.Sprintf("Deployment '%s' 롤링 재시작을 시작했습니다. (restartedAt: %s)", name, now)
}

// ScaleDeployment sets the deployment's desired replica count.
func (o *Ops) ScaleDeployment(ctx context.Context, name string, replicas int) string {
	label := fmt.Sprintf("Deployment '%s' 스케일링", name)
	if o.client == nil {
		return failure(label, errNotConfigured)
	}

	patch := fmt.Sprintf(`{"spec":{"replicas":%d}}`, replicas)
	_, err := o.client.AppsV1().Deployments(o.namespace).Patch(ctx, name,
		types.StrategicMergePatchType, []byte(patch), metav1.PatchOptions{})
	if err != nil {
		return failure(label, err)
	}
	return fmt.Sprintf("Deployment '%s'의 레플리카를 %d개로 조정했습니다.", name, replicas)
}
