package kubeagent

import (
	"context"
	"encoding/json"

	jsonschema "github.com/swaggest/jsonschema-go"

	"github.com/opskit/kubeagent/src/agent"
	"github.com/opskit/kubeagent/src/kubeops"
	"github.com/opskit/kubeagent/src/schema"
)

const (
	defaultLogTail    = 100
	defaultEventLimit = 20
)

// kubernetesTools returns the Kubernetes half of the catalog. Handlers only
// validate argument presence; kubeops folds every operational failure into
// the report string it returns.
func kubernetesTools(k8s *kubeops.Ops) []agent.Tool {
	return []agent.Tool{
		&agent.FuncTool{
			Name:        "k8s_list_pods",
			Description: "List all pods in the current namespace with status, restarts, and age.",
			Parameters:  schema.CreateObjectSchema(nil, nil),
			Handler: func(ctx context.Context, _ json.RawMessage) (string, error) {
				return k8s.ListPods(ctx), nil
			},
		},
		&agent.FuncTool{
			Name:        "k8s_get_pod",
			Description: "Get detailed information about a specific pod.",
			Parameters: schema.CreateObjectSchema(map[string]*jsonschema.Schema{
				"name": schema.CreateStringSchema("The name of the pod to inspect."),
			}, []string{"name"}),
			Handler: func(ctx context.Context, raw json.RawMessage) (string, error) {
				var args struct {
					Name string `json:"name"`
				}
				if err := agent.DecodeArgs(raw, &args); err != nil {
					return "", err
				}
				if args.Name == "" {
					return "", &agent.MissingArgError{Arg: "name"}
				}
				return k8s.GetPod(ctx, args.Name), nil
			},
		},
		&agent.FuncTool{
			Name:        "k8s_get_pod_logs",
			Description: "Get logs from a specific pod. Optionally specify container and tail lines.",
			Parameters: schema.CreateObjectSchema(map[string]*jsonschema.Schema{
				"name":      schema.CreateStringSchema("The name of the pod."),
				"container": schema.CreateStringSchema("Container name (optional, uses default if not specified)."),
				"tail":      schema.CreateIntSchema("Number of last lines to return (default: 100).", defaultLogTail),
			}, []string{"name"}),
			Handler: func(ctx context.Context, raw json.RawMessage) (string, error) {
				var args struct {
					Name      string `json:"name"`
					Container string `json:"container"`
					Tail      *int   `json:"tail"`
				}
				if err := agent.DecodeArgs(raw, &args); err != nil {
					return "", err
				}
				if args.Name == "" {
					return "", &agent.MissingArgError{Arg: "name"}
				}
				tail := defaultLogTail
				if args.Tail != nil {
					tail = *args.Tail
				}
				return k8s.GetPodLogs(ctx, args.Name, args.Container, tail), nil
			},
		},
		&agent.FuncTool{
			Name:        "k8s_list_deployments",
			Description: "List all deployments in the current namespace with ready/total replicas and age.",
			Parameters:  schema.CreateObjectSchema(nil, nil),
			Handler: func(ctx context.Context, _ json.RawMessage) (string, error) {
				return k8s.ListDeployments(ctx), nil
			},
		},
		&agent.FuncTool{
			Name:        "k8s_get_deployment",
			Description: "Get detailed information about a specific deployment.",
			Parameters: schema.CreateObjectSchema(map[string]*jsonschema.Schema{
				"name": schema.CreateStringSchema("The name of the deployment."),
			}, []string{"name"}),
			Handler: func(ctx context.Context, raw json.RawMessage) (string, error) {
				var args struct {
					Name string `json:"name"`
				}
				if err := agent.DecodeArgs(raw, &args); err != nil {
					return "", err
				}
				if args.Name == "" {
					return "", &agent.MissingArgError{Arg: "name"}
				}
				return k8s.GetDeployment(ctx, args.Name), nil
			},
		},
		&agent.FuncTool{
			Name:        "k8s_restart_deployment",
			Description: "Perform a rolling restart of a deployment (equivalent to kubectl rollout restart).",
			Parameters: schema.CreateObjectSchema(map[string]*jsonschema.Schema{
				"name": schema.CreateStringSchema("The name of the deployment to restart."),
			}, []string{"name"}),
			Handler: func(ctx context.Context, raw json.RawMessage) (string, error) {
				var args struct {
					Name string `json:"name"`
				}
				if err := agent.DecodeArgs(raw, &args); err != nil {
					return "", err
				}
				if args.Name == "" {
					return "", &agent.MissingArgError{Arg: "name"}
				}
				return k8s.RestartDeployment(ctx, args.Name), nil
			},
		},
		&agent.FuncTool{
			Name:        "k8s_scale_deployment",
			Description: "Scale a deployment to a specified number of replicas.",
			Parameters: schema.CreateObjectSchema(map[string]*jsonschema.Schema{
				"name":     schema.CreateStringSchema("The name of the deployment to scale."),
				"replicas": schema.CreateIntegerSchema("Target number of replicas."),
			}, []string{"name", "replicas"}),
			Handler: func(ctx context.Context, raw json.RawMessage) (string, error) {
				var args struct {
					Name     string `json:"name"`
					Replicas *int   `json:"replicas"`
				}
				if err := agent.DecodeArgs(raw, &args); err != nil {
					return "", err
				}
				if args.Name == "" {
					return "", &agent.MissingArgError{Arg: "name"}
				}
				// zero is a legal target, so absence is detected by pointer
				if args.Replicas == nil {
					return "", &agent.MissingArgError{Arg: "replicas"}
				}
				return k8s.ScaleDeployment(ctx, args.Name, *args.Replicas), nil
			},
		},
		&agent.FuncTool{
			Name:        "k8s_list_services",
			Description: "List all services in the current namespace with type, cluster IP, and ports.",
			Parameters:  schema.CreateObjectSchema(nil, nil),
			Handler: func(ctx context.Context, _ json.RawMessage) (string, error) {
				return k8s.ListServices(ctx), nil
			},
		},
		&agent.FuncTool{
			Name:        "k8s_list_configmaps",
			Description: "List all configmaps in the current namespace.",
			Parameters:  schema.CreateObjectSchema(nil, nil),
			Handler: func(ctx context.Context, _ json.RawMessage) (string, error) {
				return k8s.ListConfigMaps(ctx), nil
			},
		},
		&agent.FuncTool{
			Name:        "k8s_get_configmap",
			Description: "Get the data content of a specific configmap.",
			Parameters: schema.CreateObjectSchema(map[string]*jsonschema.Schema{
				"name": schema.CreateStringSchema("The name of the configmap."),
			}, []string{"name"}),
			Handler: func(ctx context.Context, raw json.RawMessage) (string, error) {
				var args struct {
					Name string `json:"name"`
				}
				if err := agent.DecodeArgs(raw, &args); err != nil {
					return "", err
				}
				if args.Name == "" {
					return "", &agent.MissingArgError{Arg: "name"}
				}
				return k8s.GetConfigMap(ctx, args.Name), nil
			},
		},
		&agent.FuncTool{
			Name:        "k8s_list_secrets",
			Description: "List all secrets in the current namespace (names and types only, no secret data shown).",
			Parameters:  schema.CreateObjectSchema(nil, nil),
			Handler: func(ctx context.Context, _ json.RawMessage) (string, error) {
				return k8s.ListSecrets(ctx), nil
			},
		},
		&agent.FuncTool{
			Name:        "k8s_get_events",
			Description: "Get recent events in the current namespace.",
			Parameters: schema.CreateObjectSchema(map[string]*jsonschema.Schema{
				"limit": schema.CreateIntSchema("Maximum number of events to return (default: 20).", defaultEventLimit),
			}, nil),
			Handler: func(ctx context.Context, raw json.RawMessage) (string, error) {
				var args struct {
					Limit *int `json:"limit"`
				}
				if err := agent.DecodeArgs(raw, &args); err != nil {
					return "", err
				}
				limit := defaultEventLimit
				if args.Limit != nil {
					limit = *args.Limit
				}
				return k8s.GetEvents(ctx, limit), nil
			},
		},
	}
}
