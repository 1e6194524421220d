package sandbox

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// resolvedTempDir returns a symlink-free temp root so prefix comparisons
// are stable regardless of where the test runner points TMPDIR.
func resolvedTempDir(t *testing.T) string {
	t.Helper()
	dir, err := filepath.EvalSymlinks(t.TempDir())
	require.NoError(t, err)
	return dir
}

func TestCheckAllowsPathsUnderRoots(t *testing.T) {
	g := NewGuard()

	assert.NoError(t, g.Check("/tmp/repo/main.go"))
	assert.NoError(t, g.Check("/tmp"))
	assert.NoError(t, g.Check("/home/agent/notes.txt"))
	assert.NoError(t, g.Check("/tmp/does/not/exist/yet.txt"))
}

func TestCheckRejectsOutsidePaths(t *testing.T) {
	g := NewGuard()

	for _, path := range []string{"/etc/passwd", "/var/log/syslog", "/", "/home/other/file"} {
		err := g.Check(path)
		require.Error(t, err, path)

		var verr *ViolationError
		require.ErrorAs(t, err, &verr, path)
		assert.Equal(t, path, verr.Path)
	}
}

func TestCheckViolationMessage(t *testing.T) {
	err := NewGuard().Check("/etc/passwd")
	require.Error(t, err)
	assert.Equal(t, "보안 제한: '/etc/passwd'에 접근할 수 없습니다. 허용된 디렉토리: /tmp, /home/agent", err.Error())
}

func TestCheckRejectsDotDotEscape(t *testing.T) {
	err := NewGuard().Check("/tmp/../etc/passwd")
	require.Error(t, err)

	var verr *ViolationError
	require.ErrorAs(t, err, &verr)
	// the message carries the path as given, not the resolved one
	assert.Equal(t, "/tmp/../etc/passwd", verr.Path)
}

func TestCheckRejectsSymlinkEscape(t *testing.T) {
	root := resolvedTempDir(t)
	g := NewGuard(root)

	link := filepath.Join(root, "escape")
	require.NoError(t, os.Symlink("/etc", link))

	require.NoError(t, g.Check(filepath.Join(root, "inside.txt")))

	err := g.Check(filepath.Join(link, "passwd"))
	require.Error(t, err)
	var verr *ViolationError
	require.ErrorAs(t, err, &verr)
}

func TestCheckResolvesExistingAncestors(t *testing.T) {
	root := resolvedTempDir(t)
	g := NewGuard(root)

	// a link that stays inside the sandbox is fine, even for targets that
	// do not exist yet
	target := filepath.Join(root, "work")
	require.NoError(t, os.Mkdir(target, 0o755))
	link := filepath.Join(root, "current")
	require.NoError(t, os.Symlink(target, link))

	assert.NoError(t, g.Check(filepath.Join(link, "new", "file.txt")))
}

func TestCheckRelativePathUsesWorkingDirectory(t *testing.T) {
	// the test working directory is never under a freshly created temp
	// root, so a relative path must be rejected
	root := resolvedTempDir(t)
	g := NewGuard(root)

	err := g.Check("notes.txt")
	require.Error(t, err)
	var verr *ViolationError
	require.ErrorAs(t, err, &verr)
}

func TestNewGuardDefaults(t *testing.T) {
	assert.Equal(t, []string{"/tmp", "/home/agent"}, NewGuard().Roots())
	assert.Equal(t, []string{"/srv/data"}, NewGuard("/srv/data").Roots())
}
