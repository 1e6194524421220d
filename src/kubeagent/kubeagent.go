// Package kubeagent assembles the fixed tool catalog and system prompt the
// conversation loop runs with: 12 Kubernetes tools, 12 Gitea/Git tools, and
// 3 workspace file tools.
package kubeagent

import (
	"fmt"

	"github.com/opskit/kubeagent/src/agent"
	"github.com/opskit/kubeagent/src/fileops"
	"github.com/opskit/kubeagent/src/giteaops"
	"github.com/opskit/kubeagent/src/kubeops"
)

// NewToolbox registers the full catalog in the order the model sees it:
// Kubernetes, Gitea, then file tools.
func NewToolbox(k8s *kubeops.Ops, gitea *giteaops.Ops, files *fileops.Ops) (*agent.Toolbox, error) {
	tb := agent.NewToolbox()
	groups := [][]agent.Tool{
		kubernetesTools(k8s),
		giteaTools(gitea),
		fileTools(files),
	}
	for _, group := range groups {
		for _, tool := range group {
			if err := tb.RegisterTool(tool); err != nil {
				return nil, fmt.Errorf("failed to register tool: %w", err)
			}
		}
	}
	return tb, nil
}
