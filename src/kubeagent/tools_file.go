package kubeagent

import (
	"context"
	"encoding/json"

	jsonschema "github.com/swaggest/jsonschema-go"

	"github.com/opskit/kubeagent/src/agent"
	"github.com/opskit/kubeagent/src/fileops"
	"github.com/opskit/kubeagent/src/schema"
)

// fileTools returns the workspace file tools.
func fileTools(files *fileops.Ops) []agent.Tool {
	return []agent.Tool{
		&agent.FuncTool{
			Name:        "file_list",
			Description: "List files and directories at the given path. Use after cloning a repo to explore its structure.",
			Parameters: schema.CreateObjectSchema(map[string]*jsonschema.Schema{
				"path":      schema.CreateStringSchema("Directory path to list."),
				"recursive": schema.CreateBoolSchema("If true, list all files recursively (default: false).", false),
			}, []string{"path"}),
			Handler: func(ctx context.Context, raw json.RawMessage) (string, error) {
				var args struct {
					Path      string `json:"path"`
					Recursive bool   `json:"recursive"`
				}
				if err := agent.DecodeArgs(raw, &args); err != nil {
					return "", err
				}
				if args.Path == "" {
					return "", &agent.MissingArgError{Arg: "path"}
				}
				return files.ListDirectory(args.Path, args.Recursive), nil
			},
		},
		&agent.FuncTool{
			Name:        "file_read",
			Description: "Read the contents of a file. Use to inspect configuration files, Helm values, etc.",
			Parameters: schema.CreateObjectSchema(map[string]*jsonschema.Schema{
				"path": schema.CreateStringSchema("File path to read."),
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
				return files.ReadFile(args.Path), nil
			},
		},
		&agent.FuncTool{
			Name:        "file_write",
			Description: "Write content to a file (overwrites existing). Use to modify Helm values, configs, etc.",
			Parameters: schema.CreateObjectSchema(map[string]*jsonschema.Schema{
				"path":        schema.CreateStringSchema("File path to write."),
				"content":     schema.CreateStringSchema("Full file content to write."),
				"create_dirs": schema.CreateBoolSchema("If true, create parent directories if they don't exist (default: false).", false),
			}, []string{"path", "content"}),
			Handler: func(ctx context.Context, raw json.RawMessage) (string, error) {
				var args struct {
					Path       string  `json:"path"`
					Content    *string `json:"content"`
					CreateDirs bool    `json:"create_dirs"`
				}
				if err := agent.DecodeArgs(raw, &args); err != nil {
					return "", err
				}
				if args.Path == "" {
					return "", &agent.MissingArgError{Arg: "path"}
				}
				// an empty file is a valid write target, absence is a pointer check
				if args.Content == nil {
					return "", &agent.MissingArgError{Arg: "content"}
				}
				return files.WriteFile(args.Path, *args.Content, args.CreateDirs), nil
			},
		},
	}
}
