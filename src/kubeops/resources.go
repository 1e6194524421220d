package kubeops

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	corev1 "k8s.io/api/core/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
)

// ListServices reports every service in the namespace as a fixed-width
// table.
func (o *Ops) ListServices(ctx context.Context) string {
	if o.client == nil {
		return failure("Service 목록 조회", errNotConfigured)
	}

	svcs, err := o.client.CoreV1().Services(o.namespace).List(ctx, metav1.ListOptions{})
	if err != nil {
		return failure("Service 목록 조회", err)
	}
	if len(svcs.Items) == 0 {
		return fmt.Sprintf("네임스페이스 '%s'에 Service가 없습니다.", o.namespace)
	}

	lines := []string{fmt.Sprintf("%-40s %-15s %-18s %-30s", "NAME", "TYPE", "CLUSTER-IP", "PORTS")}
	lines = append(lines, strings.Repeat("-", 103))
	for _, svc := range svcs.Items {
		svcType := string(svc.Spec.Type)
		if svcType == "" {
			svcType = "Unknown"
		}
		clusterIP := svc.Spec.ClusterIP
		if clusterIP == "" {
			clusterIP = "None"
		}
		var ports []string
		for _, p := range svc.Spec.Ports {
			ports = append(ports, fmt.Sprintf("%d/%s", p.Port, protocolOrTCP(p.Protocol)))
		}
		lines = append(lines, fmt.Sprintf("%-40s %-15s %-18s %-30s",
			safeName(svc.Name), svcType, clusterIP, strings.Join(ports, ", ")))
	}
	return strings.Join(lines, "\n")
}

// ListConfigMaps reports every configmap in the namespace with its data key
// count.
func (o *Ops) ListConfigMaps(ctx context.Context) string {
	if o.client == nil {
		return failure("ConfigMap 목록 조회", errNotConfigured)
	}

	cms, err := o.client.CoreV1().ConfigMaps(o.namespace).List(ctx, metav1.ListOptions{})
	if err != nil {
		return failure("ConfigMap 목록 조회", err)
	}
	if len(cms.Items) == 0 {
		return fmt.Sprintf("네임스페이스 '%s'에 ConfigMap이 없습니다.", o.namespace)
	}

	lines := []string{fmt.Sprintf("%-50s %-12s %-8s", "NAME", "DATA KEYS", "AGE")}
	lines = append(lines, strings.Repeat("-", 70))
	for _, cm := range cms.Items {
		lines = append(lines, fmt.Sprintf("%-50s %-12d %-8s",
			safeName(cm.Name), len(cm.Data), age(cm.CreationTimestamp)))
	}
	return strings.Join(lines, "\n")
}

// GetConfigMap reports one configmap's data, values indented and truncated
// at 500 characters.
func (o *Ops) GetConfigMap(ctx context.Context, name string) string {
	label := fmt.Sprintf("ConfigMap '%s' 조회", name)
	if o.client == nil {
		return failure(label, errNotConfigured)
	}

	cm, err := o.client.CoreV1().ConfigMaps(o.namespace).Get(ctx, name, metav1.GetOptions{})
	if err != nil {
		return failure(label, err)
	}

	lines := []string{
		fmt.Sprintf("ConfigMap: %s", safeName(cm.Name)),
		fmt.Sprintf("  Namespace: %s", o.namespace),
	}

	if len(cm.Data) == 0 {
		lines = append(lines, "  Data: (empty)")
		return strings.Join(lines, "\n")
	}

	keys := make([]string, 0, len(cm.Data))
	for key := range cm.Data {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	lines = append(lines, "  Data:")
	for _, key := range keys {
		lines = append(lines, fmt.Sprintf("    %s:", key))
		value := truncateRunes(cm.Data[key], 500, "... (truncated)")
		for _, line := range strings.Split(value, "\n") {
			lines = append(lines, "      "+line)
		}
	}
	return strings.Join(lines, "\n")
}

// ListSecrets reports secret names, types, and ages only; secret data is
// never shown.
func (o *Ops) ListSecrets(ctx context.Context) string {
	if o.client == nil {
		return failure("Secret 목록 조회", errNotConfigured)
	}

	secrets, err := o.client.CoreV1().Secrets(o.namespace).List(ctx, metav1.ListOptions{})
	if err != nil {
		return failure("Secret 목록 조회", err)
	}
	if len(secrets.Items) == 0 {
		return fmt.Sprintf("네임스페이스 '%s'에 Secret이 없습니다.", o.namespace)
	}

	lines := []string{fmt.Sprintf("%-50s %-35s %-8s", "NAME", "TYPE", "AGE")}
	lines = append(lines, strings.Repeat("-", 93))
	for _, secret := range secrets.Items {
		secretType := string(secret.Type)
		if secretType == "" {
			secretType = "Opaque"
		}
		lines = append(lines, fmt.Sprintf("%-50s %-35s %-8s",
			safeName(secret.Name), secretType, age(secret.CreationTimestamp)))
	}
	return strings.Join(lines, "\n")
}

// GetEvents reports the newest limit events in the namespace, most recent
// first.
func (o *Ops) GetEvents(ctx context.Context, limit int) string {
	if o.client == nil {
		return failure("이벤트 조회", errNotConfigured)
	}

	events, err := o.client.CoreV1().Events(o.namespace).List(ctx, metav1.ListOptions{})
	if err != nil {
		return failure("이벤트 조회", err)
	}
	if len(events.Items) == 0 {
		return fmt.Sprintf("네임스페이스 '%s'에 이벤트가 없습니다.", o.namespace)
	}

	items := events.Items
	sort.SliceStable(items, func(i, j int) bool {
		return eventTime(items[i]).After(eventTime(items[j]))
	})
	if limit >= 0 && len(items) > limit {
		items = items[:limit]
	}

	lines := []string{fmt.Sprintf("%-10s %-20s %-35s %-50s", "TYPE", "REASON", "OBJECT", "MESSAGE")}
	lines = append(lines, strings.Repeat("-", 115))
	for _, ev := range items {
		eventType := ev.Type
		if eventType == "" {
			eventType = "Normal"
		}
		obj := fmt.Sprintf("%s/%s", ev.InvolvedObject.Kind, ev.InvolvedObject.Name)
		message := truncateRunes(ev.Message, 50, "")
		lines = append(lines, fmt.Sprintf("%-10s %-20s %-35s %-50s", eventType, ev.Reason, obj, message))
	}
	return strings.Join(lines, "\n")
}

func eventTime(ev corev1.Event) time.Time {
	if !ev.LastTimestamp.IsZero() {
		return ev.LastTimestamp.Time
	}
	return ev.CreationTimestamp.Time
}
