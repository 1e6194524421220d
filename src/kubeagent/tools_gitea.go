package kubeagent

import (
	"context"
	"encoding/json"

	jsonschema "github.com/swaggest/jsonschema-go"

	"github.com/opskit/kubeagent/src/agent"
	"github.com/opskit/kubeagent/src/giteaops"
	"github.com/opskit/kubeagent/src/schema"
)

// giteaTools returns the Gitea half of the catalog: repository management
// over the REST API plus git CLI operations on sandboxed local clones.
func giteaTools(gitea *giteaops.Ops) []agent.Tool {
	return []agent.Tool{
		&agent.FuncTool{
			Name:        "gitea_list_repos",
			Description: "List all accessible Gitea repositories.",
			Parameters:  schema.CreateObjectSchema(nil, nil),
			Handler: func(ctx context.Context, _ json.RawMessage) (string, error) {
				return gitea.ListRepos(ctx), nil
			},
		},
		&agent.FuncTool{
			Name:        "gitea_get_repo",
			Description: "Get detailed information about a specific Gitea repository.",
			Parameters: schema.CreateObjectSchema(map[string]*jsonschema.Schema{
				"owner": schema.CreateStringSchema("Repository owner username."),
				"name":  schema.CreateStringSchema("Repository name."),
			}, []string{"owner", "name"}),
			Handler: func(ctx context.Context, raw json.RawMessage) (string, error) {
				var args struct {
					Owner string `json:"owner"`
					Name  string `json:"name"`
				}
				if err := agent.DecodeArgs(raw, &args); err != nil {
					return "", err
				}
				if args.Owner == "" {
					return "", &agent.MissingArgError{Arg: "owner"}
				}
				if args.Name == "" {
					return "", &agent.MissingArgError{Arg: "name"}
				}
				return gitea.GetRepo(ctx, args.Owner, args.Name), nil
			},
		},
		&agent.FuncTool{
			Name:        "gitea_create_repo",
			Description: "Create a new Gitea repository.",
			Parameters: schema.CreateObjectSchema(map[string]*jsonschema.Schema{
				"name":        schema.CreateStringSchema("Repository name."),
				"description": schema.CreateStringSchema("Repository description."),
				"private":     schema.CreateBoolSchema("Whether the repo should be private (default: true).", true),
			}, []string{"name"}),
			Handler: func(ctx context.Context, raw json.RawMessage) (string, error) {
				var args struct {
					Name        string `json:"name"`
					Description string `json:"description"`
					Private     *bool  `json:"private"`
				}
				if err := agent.DecodeArgs(raw, &args); err != nil {
					return "", err
				}
				if args.Name == "" {
					return "", &agent.MissingArgError{Arg: "name"}
				}
				private := true
				if args.Private != nil {
					private = *args.Private
				}
				return gitea.CreateRepo(ctx, args.Name, args.Description, private), nil
			},
		},
		&agent.FuncTool{
			Name:        "gitea_delete_repo",
			Description: "Delete a Gitea repository. This is irreversible.",
			Parameters: schema.CreateObjectSchema(map[string]*jsonschema.Schema{
				"owner": schema.CreateStringSchema("Repository owner username."),
				"name":  schema.CreateStringSchema("Repository name."),
			}, []string{"owner", "name"}),
			Handler: func(ctx context.Context, raw json.RawMessage) (string, error) {
				var args struct {
					Owner string `json:"owner"`
					Name  string `json:"name"`
				}
				if err := agent.DecodeArgs(raw, &args); err != nil {
					return "", err
				}
				if args.Owner == "" {
					return "", &agent.MissingArgError{Arg: "owner"}
				}
				if args.Name == "" {
					return "", &agent.MissingArgError{Arg: "name"}
				}
				return gitea.DeleteRepo(ctx, args.Owner, args.Name), nil
			},
		},
		&agent.FuncTool{
			Name:        "gitea_list_branches",
			Description: "List branches of a Gitea repository.",
			Parameters: schema.CreateObjectSchema(map[string]*jsonschema.Schema{
				"owner": schema.CreateStringSchema("Repository owner username."),
				"repo":  schema.CreateStringSchema("Repository name."),
			}, []string{"owner", "repo"}),
			Handler: func(ctx context.Context, raw json.RawMessage) (string, error) {
				var args struct {
					Owner string `json:"owner"`
					Repo  string `json:"repo"`
				}
				if err := agent.DecodeArgs(raw, &args); err != nil {
					return "", err
				}
				if args.Owner == "" {
					return "", &agent.MissingArgError{Arg: "owner"}
				}
				if args.Repo == "" {
					return "", &agent.MissingArgError{Arg: "repo"}
				}
				return gitea.ListBranches(ctx, args.Owner, args.Repo), nil
			},
		},
		&agent.FuncTool{
			Name:        "gitea_list_users",
			Description: "List Gitea users (admin only).",
			Parameters:  schema.CreateObjectSchema(nil, nil),
			Handler: func(ctx context.Context, _ json.RawMessage) (string, error) {
				return gitea.ListUsers(ctx), nil
			},
		},
		&agent.FuncTool{
			Name:        "gitea_create_webhook",
			Description: "Create a webhook on a Gitea repository.",
			Parameters: schema.CreateObjectSchema(map[string]*jsonschema.Schema{
				"owner":      schema.CreateStringSchema("Repository owner username."),
				"repo":       schema.CreateStringSchema("Repository name."),
				"target_url": schema.CreateStringSchema("The URL the webhook should POST to."),
				"events":     schema.CreateStringArraySchema("List of events to trigger the webhook (default: ['push'])."),
			}, []string{"owner", "repo", "target_url"}),
			Handler: func(ctx context.Context, raw json.RawMessage) (string, error) {
				var args struct {
					Owner     string   `json:"owner"`
					Repo      string   `json:"repo"`
					TargetURL string   `json:"target_url"`
					Events    []string `json:"events"`
				}
				if err := agent.DecodeArgs(raw, &args); err != nil {
					return "", err
				}
				if args.Owner == "" {
					return "", &agent.MissingArgError{Arg: "owner"}
				}
				if args.Repo == "" {
					return "", &agent.MissingArgError{Arg: "repo"}
				}
				if args.TargetURL == "" {
					return "", &agent.MissingArgError{Arg: "target_url"}
				}
				return gitea.CreateWebhook(ctx, args.Owner, args.Repo, args.TargetURL, args.Events), nil
			},
		},
		&agent.FuncTool{
			Name:        "gitea_list_webhooks",
			Description: "List webhooks of a Gitea repository.",
			Parameters: schema.CreateObjectSchema(map[string]*jsonschema.Schema{
				"owner": schema.CreateStringSchema("Repository owner username."),
				"repo":  schema.CreateStringSchema("Repository name."),
			}, []string{"owner", "repo"}),
			Handler: func(ctx context.Context, raw json.RawMessage) (string, error) {
				var args struct {
					Owner string `json:"owner"`
					Repo  string `json:"repo"`
				}
				if err := agent.DecodeArgs(raw, &args); err != nil {
					return "", err
				}
				if args.Owner == "" {
					return "", &agent.MissingArgError{Arg: "owner"}
				}
				if args.Repo == "" {
					return "", &agent.MissingArgError{Arg: "repo"}
				}
				return gitea.ListWebhooks(ctx, args.Owner, args.Repo), nil
			},
		},
		&agent.FuncTool{
			Name:        "gitea_clone_repo",
			Description: "Clone a Git repository to a local path.",
			Parameters: schema.CreateObjectSchema(map[string]*jsonschema.Schema{
				"repo_url": schema.CreateStringSchema("The URL of the repository to clone."),
				"path":     schema.CreateStringSchema("Local path to clone into."),
			}, []string{"repo_url", "path"}),
			Handler: func(ctx context.Context, raw json.RawMessage) (string, error) {
				var args struct {
					RepoURL string `json:"repo_url"`
					Path    string `json:"path"`
				}
				if err := agent.DecodeArgs(raw, &args); err != nil {
					return "", err
				}
				if args.RepoURL == "" {
					return "", &agent.MissingArgError{Arg: "repo_url"}
				}
				if args.Path == "" {
					return "", &agent.MissingArgError{Arg: "path"}
				}
				return gitea.CloneRepo(ctx, args.RepoURL, args.Path), nil
			},
		},
		&agent.FuncTool{
			Name:        "gitea_git_pull",
			Description: "Pull latest changes in a local Git repository.",
			Parameters: schema.CreateObjectSchema(map[string]*jsonschema.Schema{
				"path": schema.CreateStringSchema("Path to the local Git repository."),
			}, []string{"path"}),
			Handler: func(ctx context.Context, raw json.RawMessage) (string, error) {
				var args struct {
					Path string `json:"path"`
				}
				if err := agent.DecodeArgs(raw, &args); err != nil {
					return "", err
				}
				if args.Path == "" {
					return "", &agent.MissingArgError{Arg: "path"}
				}
				return gitea.Pull(ctx, args.Path), nil
			},
		},
		&agent.FuncTool{
			Name:        "gitea_git_status",
			Description: "Show the working tree status of a local Git repository.",
			Parameters: schema.CreateObjectSchema(map[string]*jsonschema.Schema{
				"path": schema.CreateStringSchema("Path to the local Git repository."),
			}, []string{"path"}),
			Handler: func(ctx context.Context, raw json.RawMessage) (string, error) {
				var args struct {
					Path string `json:"path"`
				}
				if err := agent.DecodeArgs(raw, &args); err != nil {
					return "", err
				}
				if args.Path == "" {
					return "", &agent.MissingArgError{Arg: "path"}
				}
				return gitea.Status(ctx, args.Path), nil
			},
		},
		&agent.FuncTool{
			Name:        "gitea_commit_and_push",
			Description: "Add all changes, commit with a message, and push to remote.",
			Parameters: schema.CreateObjectSchema(map[string]*jsonschema.Schema{
				"path":    schema.CreateStringSchema("Path to the local Git repository."),
				"message": schema.CreateStringSchema("Commit message."),
			}, []string{"path", "message"}),
			Handler: func(ctx context.Context, raw json.RawMessage) (string, error) {
				var args struct {
					Path    string `json:"path"`
					Message string `json:"message"`
				}
				if err := agent.DecodeArgs(raw, &args); err != nil {
					return "", err
				}
				if args.Path == "" {
					return "", &agent.MissingArgError{Arg: "path"}
				}
				if args.Message == "" {
					return "", &agent.MissingArgError{Arg: "message"}
				}
				return gitea.CommitAndPush(ctx, args.Path, args.Message), nil
			},
		},
	}
}
