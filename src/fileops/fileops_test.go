package fileops

import (
	"bytes"
	"fmt"
	"strings"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestOps(t *testing.T) (*Ops, afero.Fs) {
	t.Helper()
	fs := afero.NewMemMapFs()
	require.NoError(t, fs.MkdirAll("/tmp/work", 0o755))
	return NewOps(fs, nil), fs
}

func writeTestFile(t *testing.T, fs afero.Fs, path, content string) {
	t.Helper()
	require.NoError(t, afero.WriteFile(fs, path, []byte(content), 0o644))
}

func TestListDirectory(t *testing.T) {
	ops, fs := newTestOps(t)
	writeTestFile(t, fs, "/tmp/work/b.txt", "b")
	writeTestFile(t, fs, "/tmp/work/a.txt", "a")
	writeTestFile(t, fs, "/tmp/work/sub/c.txt", "c")

	out := ops.ListDirectory("/tmp/work", false)
	want := "Directory: /tmp/work (3 entries)\n" +
		"  a.txt\n" +
		"  b.txt\n" +
		"  sub/"
	assert.Equal(t, want, out)
}

func TestListDirectoryRecursive(t *testing.T) {
	ops, fs := newTestOps(t)
	writeTestFile(t, fs, "/tmp/work/a.txt", "a")
	writeTestFile(t, fs, "/tmp/work/sub/c.txt", "c")

	out := ops.ListDirectory("/tmp/work", true)
	want := "Directory: /tmp/work (3 entries) [recursive]\n" +
		"  a.txt\n" +
		"  sub/\n" +
		"  sub/c.txt"
	assert.Equal(t, want, out)
}

func TestListDirectoryEmpty(t *testing.T) {
	ops, fs := newTestOps(t)
	require.NoError(t, fs.MkdirAll("/tmp/empty", 0o755))

	assert.Equal(t, "디렉토리가 비어있습니다: /tmp/empty", ops.ListDirectory("/tmp/empty", false))
}

func TestListDirectoryMissing(t *testing.T) {
	ops, _ := newTestOps(t)
	assert.Equal(t, "디렉토리가 존재하지 않습니다: /tmp/nope", ops.ListDirectory("/tmp/nope", false))
}

func TestListDirectoryNotADirectory(t *testing.T) {
	ops, fs := newTestOps(t)
	writeTestFile(t, fs, "/tmp/work/a.txt", "a")

	assert.Equal(t, "디렉토리가 아닙니다: /tmp/work/a.txt", ops.ListDirectory("/tmp/work/a.txt", false))
}

func TestListDirectoryCapped(t *testing.T) {
	ops, fs := newTestOps(t)
	for i := 0; i < 510; i++ {
		writeTestFile(t, fs, fmt.Sprintf("/tmp/work/f%04d.txt", i), "x")
	}

	out := ops.ListDirectory("/tmp/work", false)
	lines := strings.Split(out, "\n")

	// 500 entries plus the cap marker, which counts toward the header total
	require.Len(t, lines, 502)
	assert.Equal(t, "Directory: /tmp/work (501 entries)", lines[0])
	assert.Equal(t, "  f0000.txt", lines[1])
	assert.Equal(t, "  f0499.txt", lines[500])
	assert.Equal(t, "... (500개 항목 제한 도달)", lines[501])
}

func TestListDirectoryOutsideSandbox(t *testing.T) {
	ops, _ := newTestOps(t)
	assert.Equal(t,
		"보안 제한: '/etc'에 접근할 수 없습니다. 허용된 디렉토리: /tmp, /home/agent",
		ops.ListDirectory("/etc", false))
}

func TestReadFile(t *testing.T) {
	ops, fs := newTestOps(t)
	writeTestFile(t, fs, "/tmp/work/notes.txt", "hello\nworld\n")

	out := ops.ReadFile("/tmp/work/notes.txt")
	assert.Equal(t, "--- /tmp/work/notes.txt (2 lines, 12 bytes) ---\nhello\nworld\n", out)
}

func TestReadFileUnterminatedLastLine(t *testing.T) {
	ops, fs := newTestOps(t)
	writeTestFile(t, fs, "/tmp/work/notes.txt", "a\nb")

	out := ops.ReadFile("/tmp/work/notes.txt")
	assert.True(t, strings.HasPrefix(out, "--- /tmp/work/notes.txt (2 lines, 3 bytes) ---\n"), out)
}

func TestReadFileMissing(t *testing.T) {
	ops, _ := newTestOps(t)
	assert.Equal(t, "파일이 존재하지 않습니다: /tmp/nope.txt", ops.ReadFile("/tmp/nope.txt"))
}

func TestReadFileDirectory(t *testing.T) {
	ops, _ := newTestOps(t)
	assert.Equal(t, "파일이 아닙니다 (디렉토리일 수 있음): /tmp/work", ops.ReadFile("/tmp/work"))
}

func TestReadFileTooLarge(t *testing.T) {
	ops, fs := newTestOps(t)
	big := bytes.Repeat([]byte("a"), 1<<20+1)
	require.NoError(t, afero.WriteFile(fs, "/tmp/work/big.bin", big, 0o644))

	assert.Equal(t,
		"파일이 너무 큽니다: 1,048,577 bytes (최대 1,048,576 bytes). 파일 경로: /tmp/work/big.bin",
		ops.ReadFile("/tmp/work/big.bin"))
}

func TestReadFileBinary(t *testing.T) {
	ops, fs := newTestOps(t)
	require.NoError(t, afero.WriteFile(fs, "/tmp/work/blob", []byte{0xff, 0xfe, 0x61}, 0o644))

	assert.Equal(t, "바이너리 파일이라 읽을 수 없습니다: /tmp/work/blob", ops.ReadFile("/tmp/work/blob"))
}

func TestWriteFileCreate(t *testing.T) {
	ops, fs := newTestOps(t)

	out := ops.WriteFile("/tmp/work/out.txt", "hello", false)
	assert.Equal(t, "파일 생성 완료: /tmp/work/out.txt (1 lines, 5 bytes)", out)

	data, err := afero.ReadFile(fs, "/tmp/work/out.txt")
	require.NoError(t, err)
	assert.Equal(t, "hello", string(data))
}

func TestWriteFileModify(t *testing.T) {
	ops, fs := newTestOps(t)
	writeTestFile(t, fs, "/tmp/work/out.txt", "old")

	out := ops.WriteFile("/tmp/work/out.txt", "new content\n", false)
	assert.Equal(t, "파일 수정 완료: /tmp/work/out.txt (1 lines, 12 bytes)", out)
}

func TestWriteFileMissingParent(t *testing.T) {
	ops, _ := newTestOps(t)

	out := ops.WriteFile("/tmp/none/x.txt", "data", false)
	assert.Equal(t, "부모 디렉토리가 존재하지 않습니다: /tmp/none", out)
}

func TestWriteFileCreateDirs(t *testing.T) {
	ops, fs := newTestOps(t)

	out := ops.WriteFile("/tmp/none/deep/x.txt", "data", true)
	assert.Equal(t, "파일 생성 완료: /tmp/none/deep/x.txt (1 lines, 4 bytes)", out)

	exists, err := afero.DirExists(fs, "/tmp/none/deep")
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestWriteFileTooLarge(t *testing.T) {
	ops, _ := newTestOps(t)
	big := strings.Repeat("a", 1<<20+1)

	assert.Equal(t,
		"쓰기 내용이 너무 큽니다: 1,048,577 bytes (최대 1,048,576 bytes)",
		ops.WriteFile("/tmp/work/big.txt", big, false))
}

func TestWriteFileOutsideSandbox(t *testing.T) {
	ops, _ := newTestOps(t)
	assert.Equal(t,
		"보안 제한: '/etc/evil.txt'에 접근할 수 없습니다. 허용된 디렉토리: /tmp, /home/agent",
		ops.WriteFile("/etc/evil.txt", "x", false))
}

func TestWriteFileEmptyContent(t *testing.T) {
	ops, _ := newTestOps(t)

	out := ops.WriteFile("/tmp/work/empty.txt", "", false)
	assert.Equal(t, "파일 생성 완료: /tmp/work/empty.txt (0 lines, 0 bytes)", out)
}
