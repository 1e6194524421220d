// Package kubeops implements the Kubernetes tools: pod, deployment,
// service, configmap, secret, and event operations scoped to a single
// namespace. Every operation returns a text report; API failures are
// reported in the same channel, never as errors.
package kubeops

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	apierrors "k8s.io/apimachinery/pkg/api/errors"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/client-go/kubernetes"
	"k8s.io/client-go/rest"
	"k8s.io/client-go/tools/clientcmd"
)

var errNotConfigured = errors.New("kubernetes 설정이 로드되지 않았습니다")

// Ops performs cluster operations against one namespace.
type Ops struct {
	client    kubernetes.Interface
	namespace string
	logger    *slog.Logger
}

// NewOps builds an Ops connected per the usual precedence: in-cluster
// service account first, then the local kubeconfig (honoring kubeContext
// when set). When neither loads, the Ops is still usable and every
// operation reports the missing configuration.
func NewOps(namespace, kubeContext string, logger *slog.Logger) *Ops {
	if logger == nil {
		logger = slog.Default()
	}
	logger = logger.With("component", "k8s_ops")
	return &Ops{
		client:    loadClient(kubeContext, logger),
		namespace: namespace,
		logger:    logger,
	}
}

// NewOpsWithClient builds an Ops over an existing clientset.
func NewOpsWithClient(client kubernetes.Interface, namespace string, logger *slog.Logger) *Ops {
	if logger == nil {
		logger = slog.Default()
	}
	return &Ops{
		client:    client,
		namespace: namespace,
		logger:    logger.With("component", "k8s_ops"),
	}
}

func loadClient(kubeContext string, logger *slog.Logger) kubernetes.Interface {
	cfg, err := rest.InClusterConfig()
	if err == nil {
		logger.Info("in-cluster kubernetes config loaded")
	} else {
		rules := clientcmd.NewDefaultClientConfigLoadingRules()
		overrides := &clientcmd.ConfigOverrides{CurrentContext: kubeContext}
		cfg, err = clientcmd.NewNonInteractiveDeferredLoadingClientConfig(rules, overrides).ClientConfig()
		if err != nil {
			logger.Warn("kubernetes config load failed", "error", err)
			return nil
		}
		logger.Info("kubeconfig loaded", "context", kubeContext)
	}

	clientset, err := kubernetes.NewForConfig(cfg)
	if err != nil {
		logger.Warn("kubernetes client setup failed", "error", err)
		return nil
	}
	return clientset
}

// Namespace returns the namespace all operations are scoped to.
func (o *Ops) Namespace() string {
	return o.namespace
}

// failure renders an operation failure. Kubernetes API errors carry their
// status reason and HTTP code; everything else keeps the raw error text.
func failure(label string, err error) string {
	var statusErr *apierrors.StatusError
	if errors.As(err, &statusErr) {
		st := statusErr.Status()
		reason := string(st.Reason)
		if reason == "" {
			reason = st.Message
		}
		return fmt.Sprintf("%s 실패: %s (HTTP %d)", label, reason, st.Code)
	}
	return fmt.Sprintf("%s 중 오류: %v", label, err)
}

// age renders a creation timestamp as a coarse "3d" / "5h" / "30m" value.
func age(t metav1.Time) string {
	if t.IsZero() {
		return "unknown"
	}
	d := time.Since(t.Time)
	days := int(d.Hours()) / 24
	hours := int(d.Hours()) % 24
	minutes := int(d.Minutes()) % 60
	if days > 0 {
		return fmt.Sprintf("%dd", days)
	}
	if hours > 0 {
		return fmt.Sprintf("%dh", hours)
	}
	return fmt.Sprintf("%dm", minutes)
}

func safeName(name string) string {
	if name == "" {
		return "unknown"
	}
	return name
}

// truncateRunes caps s at max characters, appending a marker when cut.
func truncateRunes(s string, max int, marker string) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max]) + marker
}
