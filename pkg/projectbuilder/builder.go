package projectbuilder

import (
	"sync"

	"github.com/hashicorp/go-set/v2"
	"github.com/samber/lo"
)

// IncludedFile is a file staged for writing into the generated project.
type IncludedFile struct {
	To      string
	Content string
}

// FileWriter receives staged actions on Commit.
type FileWriter interface {
	Write(path, content string)
	Delete(path string)
}

// Builder collects the files a generation run will write or remove, and the
// paths other components want listed in the ignore file.
// Clear must be called by the harness at the start of every run.
type Builder struct {
	mu sync.RWMutex

	included []IncludedFile
	excluded []string

	ignored      []string
	ignoredIndex *set.Set[string]
}

func New() *Builder {
	return &Builder{
		ignoredIndex: set.New[string](10),
	}
}

// Clear drops everything staged and registered so far.
func (b *Builder) Clear() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.included = nil
	b.excluded = nil
	b.ignored = nil
	b.ignoredIndex = set.New[string](10)
}

// IgnoreFile registers a path to be ignored. Registering the same path twice is a no-op.
func (b *Builder) IgnoreFile(path string) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.ignoredIndex.Insert(path) {
		b.ignored = append(b.ignored, path)
	}
}

// IgnoredFiles returns the registered paths in registration order.
func (b *Builder) IgnoredFiles() []string {
	b.mu.RLock()
	defer b.mu.RUnlock()

	return append([]string{}, b.ignored...)
}

// WriteFile stages content for path, replacing any earlier write or removal of it.
func (b *Builder) WriteFile(to, content string) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.excluded = lo.Without(b.excluded, to)
	b.included = lo.Reject(b.included, func(f IncludedFile, _ int) bool { return f.To == to })
	b.included = append(b.included, IncludedFile{To: to, Content: content})
}

// RemoveFile stages the removal of path, replacing any earlier write of it.
func (b *Builder) RemoveFile(path string) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.included = lo.Reject(b.included, func(f IncludedFile, _ int) bool { return f.To == path })
	if !lo.Contains(b.excluded, path) {
		b.excluded = append(b.excluded, path)
	}
}

func (b *Builder) IncludedFiles() []IncludedFile {
	b.mu.RLock()
	defer b.mu.RUnlock()

	return append([]IncludedFile{}, b.included...)
}

func (b *Builder) ExcludedFiles() []string {
	b.mu.RLock()
	defer b.mu.RUnlock()

	return append([]string{}, b.excluded...)
}

// Commit replays the staged writes and removals into fs.
func (b *Builder) Commit(fs FileWriter) {
	for _, f := range b.IncludedFiles() {
		fs.Write(f.To, f.Content)
	}
	for _, p := range b.ExcludedFiles() {
		fs.Delete(p)
	}
}
