// Package memfs stages file writes and deletes in memory until Commit flushes
// them to disk.
package memfs

import (
	"bytes"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/pkg/errors"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

type entry struct {
	content string
	deleted bool
	dirty   bool
}

// Change is a pending write or delete.
type Change struct {
	Path    string
	Content string
	Deleted bool
}

// Editor is an in-memory file system keyed by slash-separated relative paths.
type Editor struct {
	mu    sync.RWMutex
	files map[string]*entry
}

func New() *Editor {
	return &Editor{files: make(map[string]*entry)}
}

func cleanPath(p string) string {
	return strings.TrimPrefix(path.Clean(filepath.ToSlash(p)), "/")
}

// Read returns the staged content of p, and false when nothing is staged there.
func (e *Editor) Read(p string) (string, bool) {
	e.mu.RLock()
	defer e.mu.RUnlock()

	f, ok := e.files[cleanPath(p)]
	if !ok || f.deleted {
		return "", false
	}
	return f.content, true
}

func (e *Editor) Exists(p string) bool {
	_, ok := e.Read(p)
	return ok
}

func (e *Editor) Write(p, content string) {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.files[cleanPath(p)] = &entry{content: content, dirty: true}
}

func (e *Editor) Delete(p string) {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.files[cleanPath(p)] = &entry{deleted: true, dirty: true}
}

// Load reads the given files under root into the editor as clean entries.
// Missing files are skipped. Files starting with a UTF-16 BOM are transcoded
// to UTF-8; a UTF-8 BOM is dropped. Any other bytes are kept as they are.
func (e *Editor) Load(root string, paths ...string) error {
	for _, p := range paths {
		raw, err := os.ReadFile(filepath.Join(root, filepath.FromSlash(p)))
		if os.IsNotExist(err) {
			continue
		}
		if err != nil {
			return errors.Wrapf(err, "reading %s", p)
		}

		content, err := decode(raw)
		if err != nil {
			return errors.Wrapf(err, "decoding %s", p)
		}

		e.mu.Lock()
		e.files[cleanPath(p)] = &entry{content: content}
		e.mu.Unlock()
	}
	return nil
}

var (
	utf8BOM    = []byte{0xEF, 0xBB, 0xBF}
	utf16LEBOM = []byte{0xFF, 0xFE}
	utf16BEBOM = []byte{0xFE, 0xFF}
)

func decode(raw []byte) (string, error) {
	if bytes.HasPrefix(raw, utf16LEBOM) || bytes.HasPrefix(raw, utf16BEBOM) {
		decoded, _, err := transform.Bytes(unicode.BOMOverride(transform.Nop), raw)
		return string(decoded), err
	}
	return string(bytes.TrimPrefix(raw, utf8BOM)), nil
}

// Changes lists pending writes and deletes sorted by path.
func (e *Editor) Changes() []Change {
	e.mu.RLock()
	defer e.mu.RUnlock()

	var result []Change
	for p, f := range e.files {
		if !f.dirty {
			continue
		}
		result = append(result, Change{Path: p, Content: f.content, Deleted: f.deleted})
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Path < result[j].Path })
	return result
}

// Commit applies pending changes below root. Deleting a file that is not on
// disk is not an error.
func (e *Editor) Commit(root string) error {
	for _, c := range e.Changes() {
		target := filepath.Join(root, filepath.FromSlash(c.Path))

		if c.Deleted {
			if err := os.Remove(target); err != nil && !os.IsNotExist(err) {
				return errors.Wrapf(err, "removing %s", c.Path)
			}
		} else {
			if err := os.MkdirAll(filepath.Dir(target), os.ModePerm); err != nil {
				return errors.Wrapf(err, "creating directory for %s", c.Path)
			}
			if err := os.WriteFile(target, []byte(c.Content), 0644); err != nil {
				return errors.Wrapf(err, "writing %s", c.Path)
			}
		}

		e.mu.Lock()
		if c.Deleted {
			delete(e.files, c.Path)
		} else if f, ok := e.files[c.Path]; ok {
			f.dirty = false
		}
		e.mu.Unlock()
	}
	return nil
}
