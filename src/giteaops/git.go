package giteaops

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
)

// runGit runs one git subcommand and folds its output into a report. A
// non-zero exit carries the exit code and stderr; a missing git binary gets
// its own message.
func (o *Ops) runGit(ctx context.Context, dir string, args ...string) string {
	cmd := exec.CommandContext(ctx, "git", args...)
	cmd.Dir = dir

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	out := strings.TrimSpace(stdout.String())
	errOut := strings.TrimSpace(stderr.String())

	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			detail := errOut
			if detail == "" {
				detail = out
			}
			return fmt.Sprintf("Git 명령 실패 (exit code %d):\n%s", exitErr.ExitCode(), detail)
		}
		if errors.Is(err, exec.ErrNotFound) {
			return "git 명령을 찾을 수 없습니다. git이 설치되어 있는지 확인해주세요."
		}
		return fmt.Sprintf("Git 명령 실행 중 오류: %v", err)
	}

	if out == "" {
		return "(no output)"
	}
	return out
}

// CloneRepo clones repoURL into path. The target must be inside the
// sandbox roots.
func (o *Ops) CloneRepo(ctx context.Context, repoURL, path string) string {
	if err := o.guard.Check(path); err != nil {
		return err.Error()
	}
	result := o.runGit(ctx, "", "clone", repoURL, path)
	return fmt.Sprintf("git clone %s -> %s\n%s", repoURL, path, result)
}

// Pull fetches and merges the latest changes in a sandboxed working copy.
func (o *Ops) Pull(ctx context.Context, path string) string {
	if err := o.guard.Check(path); err != nil {
		return err.Error()
	}
	result := o.runGit(ctx, path, "pull")
	return fmt.Sprintf("git pull (%s)\n%s", path, result)
}

// Status reports the short-format working tree status of a sandboxed
// working copy.
func (o *Ops) Status(ctx context.Context, path string) string {
	if err := o.guard.Check(path); err != nil {
		return err.Error()
	}
	result := o.runGit(ctx, path, "status", "--short")
	return fmt.Sprintf("git status (%s)\n%s", path, result)
}

// CommitAndPush stages everything, commits with message, and pushes. Each
// step's output is reported even when an earlier step fails.
func (o *Ops) CommitAndPush(ctx context.Context, path, message string) string {
	if err := o.guard.Check(path); err != nil {
		return err.Error()
	}
	addResult := o.runGit(ctx, path, "add", "-A")
	commitResult := o.runGit(ctx, path, "commit", "-m", message)
	pushResult := o.runGit(ctx, path, "push")
	return fmt.Sprintf("git add -A: %s\ngit commit: %s\ngit push: %s", addResult, commitResult, pushResult)
}
