// Package gitignore maintains the generated project's .gitignore: it merges
// the existing file with paths other components registered for ignoring, and
// stages either the result or the file's removal.
package gitignore

import (
	"fmt"
	"slices"
	"strings"

	"github.com/hashicorp/go-set/v2"
	ignore "github.com/sabhiram/go-gitignore"
	"github.com/samber/lo"

	"github.com/alantheprice/projgen/pkg/generator"
)

// FileName is the ignore file managed here, relative to the project root.
const FileName = ".gitignore"

// Merge combines the existing file content (when hasExisting) with the
// registered paths. Both sources are split on "\n" so a registration can
// never smuggle several lines into the result. Lines are trimmed; blank lines
// and comments are dropped. The result is deduplicated and sorted byte-wise.
func Merge(existing string, hasExisting bool, registered []string) []string {
	var lines []string
	if hasExisting {
		lines = strings.Split(existing, "\n")
	}
	lines = append(lines, lo.FlatMap(registered, func(p string, _ int) []string {
		return strings.Split(p, "\n")
	})...)

	lines = lo.FilterMap(lines, func(line string, _ int) (string, bool) {
		line = strings.TrimSpace(line)
		return line, line != "" && !strings.HasPrefix(line, "#")
	})

	result := set.From(lines).Slice()
	slices.Sort(result)
	return result
}

// ActionKind says whether a FileAction writes or deletes its path.
type ActionKind int

const (
	ActionWrite ActionKind = iota
	ActionDelete
)

func (k ActionKind) String() string {
	switch k {
	case ActionWrite:
		return "write"
	case ActionDelete:
		return "delete"
	default:
		return fmt.Sprintf("ActionKind(%d)", int(k))
	}
}

// FileAction is the single staging instruction produced for the ignore file.
type FileAction struct {
	Kind    ActionKind
	Path    string
	Content string
}

// Decide writes lines joined by "\n" to target, or deletes target when there
// is nothing to ignore. Splitting Content on "\n" yields lines again.
func Decide(target string, lines []string) FileAction {
	if len(lines) == 0 {
		return FileAction{Kind: ActionDelete, Path: target}
	}
	return FileAction{Kind: ActionWrite, Path: target, Content: strings.Join(lines, "\n")}
}

// Apply forwards exactly one call to b.
func Apply(action FileAction, b generator.ProjectBuilder) {
	switch action.Kind {
	case ActionWrite:
		b.WriteFile(action.Path, action.Content)
	case ActionDelete:
		b.RemoveFile(action.Path)
	}
}

// Compile turns merged lines into a matcher, for checking what a staged file ignores.
func Compile(lines []string) *ignore.GitIgnore {
	return ignore.CompileIgnoreLines(lines...)
}
