// Package sandbox confines file and Git operations to an allow-listed set of
// directory roots.
package sandbox

import (
	"fmt"
	"path/filepath"
	"strings"
)

// DefaultRoots lists the directories tool calls may touch. Cloned
// repositories and scratch files live under these.
var DefaultRoots = []string{"/tmp", "/home/agent"}

// Guard validates paths against an allow-list of directory roots.
type Guard struct {
	roots []string
}

// NewGuard creates a guard for the given roots, or DefaultRoots when none
// are given.
func NewGuard(roots ...string) *Guard {
	if len(roots) == 0 {
		roots = DefaultRoots
	}
	return &Guard{roots: roots}
}

// Roots returns the allow-list.
func (g *Guard) Roots() []string {
	return g.roots
}

// ViolationError reports a path that falls outside every allowed root.
type ViolationError struct {
	Path  string
	Roots []string
}

func (e *ViolationError) Error() string {
	return fmt.Sprintf("보안 제한: '%s'에 접근할 수 없습니다. 허용된 디렉토리: %s", e.Path, strings.Join(e.Roots, ", "))
}

// Check reports nil when path resolves to a location under one of the
// allowed roots. Symlinks in existing ancestors are followed before the
// comparison, so a link pointing out of the sandbox is rejected even when
// the final component does not exist yet. The error text is surfaced
// verbatim as a tool result.
func (g *Guard) Check(path string) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("경로를 확인할 수 없습니다: %v", err)
	}

	resolved := resolveExisting(abs)
	for _, root := range g.roots {
		if strings.HasPrefix(resolved, root) {
			return nil
		}
	}
	return &ViolationError{Path: path, Roots: g.roots}
}

// resolveExisting resolves symlinks in the longest existing ancestor of abs
// and reattaches the remaining components lexically.
func resolveExisting(abs string) string {
	remainder := ""
	dir := abs
	for {
		resolved, err := filepath.EvalSymlinks(dir)
		if err == nil {
			return filepath.Join(resolved, remainder)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return abs
		}
		remainder = filepath.Join(filepath.Base(dir), remainder)
		dir = parent
	}
}
