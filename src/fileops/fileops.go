// Package fileops implements the local file tools: directory listing, file
// read, and file write, confined to the sandbox roots. Every operation
// returns a text report; failures are reported in the same channel, never
// as errors.
package fileops

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/dustin/go-humanize"
	"github.com/spf13/afero"

	"github.com/opskit/kubeagent/src/sandbox"
)

const (
	maxReadSize    = 1 << 20
	maxWriteSize   = 1 << 20
	maxListEntries = 500
)

// Ops performs sandboxed filesystem operations on an injected afero.Fs.
type Ops struct {
	fs    afero.Fs
	guard *sandbox.Guard
}

// NewOps creates file operations over fs. A nil fs uses the OS filesystem;
// a nil guard uses the default sandbox roots.
func NewOps(fs afero.Fs, guard *sandbox.Guard) *Ops {
	if fs == nil {
		fs = afero.NewOsFs()
	}
	if guard == nil {
		guard = sandbox.NewGuard()
	}
	return &Ops{fs: fs, guard: guard}
}

type dirEntry struct {
	rel string
	dir bool
}

// ListDirectory reports the entries under path, one per line with a two
// space indent and a trailing slash on directories. Listings are sorted and
// capped at 500 entries; the cap line counts toward the reported total.
func (o *Ops) ListDirectory(path string, recursive bool) string {
	if err := o.guard.Check(path); err != nil {
		return err.Error()
	}

	info, err := o.fs.Stat(path)
	if err != nil {
		return fmt.Sprintf("디렉토리가 존재하지 않습니다: %s", path)
	}
	if !info.IsDir() {
		return fmt.Sprintf("디렉토리가 아닙니다: %s", path)
	}

	var found []dirEntry
	if recursive {
		err = afero.Walk(o.fs, path, func(p string, info os.FileInfo, err error) error {
			if err != nil {
				return err
			}
			if p == path {
				return nil
			}
			rel, err := filepath.Rel(path, p)
			if err != nil {
				return err
			}
			found = append(found, dirEntry{rel: rel, dir: info.IsDir()})
			return nil
		})
	} else {
		var infos []os.FileInfo
		infos, err = afero.ReadDir(o.fs, path)
		for _, fi := range infos {
			found = append(found, dirEntry{rel: fi.Name(), dir: fi.IsDir()})
		}
	}
	if err != nil {
		if os.IsPermission(err) {
			return fmt.Sprintf("디렉토리 읽기 권한이 없습니다: %s", path)
		}
		return fmt.Sprintf("디렉토리 목록 조회 중 오류: %v", err)
	}

	if len(found) == 0 {
		return fmt.Sprintf("디렉토리가 비어있습니다: %s", path)
	}

	sort.Slice(found, func(i, j int) bool { return found[i].rel < found[j].rel })

	var entries []string
	for _, e := range found {
		if len(entries) >= maxListEntries {
			entries = append(entries, fmt.Sprintf("... (%d개 항목 제한 도달)", maxListEntries))
			break
		}
		suffix := ""
		if e.dir {
			suffix = "/"
		}
		entries = append(entries, "  "+e.rel+suffix)
	}

	header := fmt.Sprintf("Directory: %s (%d entries)", path, len(entries))
	if recursive {
		header += " [recursive]"
	}
	return header + "\n" + strings.Join(entries, "\n")
}

// ReadFile reports a file's content prefixed with a line/byte-count header.
// Files above 1 MiB and non-UTF-8 files are refused.
func (o *Ops) ReadFile(path string) string {
	if err := o.guard.Check(path); err != nil {
		return err.Error()
	}

	info, err := o.fs.Stat(path)
	if err != nil {
		return fmt.Sprintf("파일이 존재하지 않습니다: %s", path)
	}
	if !info.Mode().IsRegular() {
		return fmt.Sprintf("파일이 아닙니다 (디렉토리일 수 있음): %s", path)
	}

	size := info.Size()
	if size > maxReadSize {
		return fmt.Sprintf("파일이 너무 큽니다: %s bytes (최대 %s bytes). 파일 경로: %s",
			humanize.Comma(size), humanize.Comma(maxReadSize), path)
	}

	data, err := afero.ReadFile(o.fs, path)
	if err != nil {
		if os.IsPermission(err) {
			return fmt.Sprintf("파일 읽기 권한이 없습니다: %s", path)
		}
		return fmt.Sprintf("파일 읽기 중 오류: %v", err)
	}
	if !utf8.Valid(data) {
		return fmt.Sprintf("바이너리 파일이라 읽을 수 없습니다: %s", path)
	}

	content := string(data)
	header := fmt.Sprintf("--- %s (%d lines, %s bytes) ---", path, countLines(content), humanize.Comma(size))
	return header + "\n" + content
}

// WriteFile overwrites path with content. Parent directories are created
// only when createDirs is set; otherwise a missing parent is refused.
func (o *Ops) WriteFile(path, content string, createDirs bool) string {
	if err := o.guard.Check(path); err != nil {
		return err.Error()
	}

	if len(content) > maxWriteSize {
		return fmt.Sprintf("쓰기 내용이 너무 큽니다: %s bytes (최대 %s bytes)",
			humanize.Comma(int64(len(content))), humanize.Comma(maxWriteSize))
	}

	parent := filepath.Dir(path)
	if createDirs {
		if err := o.fs.MkdirAll(parent, 0o755); err != nil {
			return writeFailure(path, err)
		}
	} else if _, err := o.fs.Stat(parent); err != nil {
		return fmt.Sprintf("부모 디렉토리가 존재하지 않습니다: %s", parent)
	}

	_, statErr := o.fs.Stat(path)
	existed := statErr == nil

	if err := afero.WriteFile(o.fs, path, []byte(content), 0o644); err != nil {
		return writeFailure(path, err)
	}

	info, err := o.fs.Stat(path)
	if err != nil {
		return writeFailure(path, err)
	}

	action := "생성"
	if existed {
		action = "수정"
	}
	return fmt.Sprintf("파일 %s 완료: %s (%d lines, %s bytes)",
		action, path, countLines(content), humanize.Comma(info.Size()))
}

func writeFailure(path string, err error) string {
	if os.IsPermission(err) {
		return fmt.Sprintf("파일 쓰기 권한이 없습니다: %s", path)
	}
	return fmt.Sprintf("파일 쓰기 중 오류: %v", err)
}

// countLines counts newline-terminated lines, plus one for a trailing
// unterminated line.
func countLines(content string) int {
	n := strings.Count(content, "\n")
	if content != "" && !strings.HasSuffix(content, "\n") {
		n++
	}
	return n
}
