package gitignore

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/alantheprice/projgen/pkg/projectbuilder"
)

func TestMerge(t *testing.T) {
	tests := []struct {
		name        string
		existing    string
		hasExisting bool
		registered  []string
		want        []string
	}{
		{
			name: "no file and no registrations",
			want: []string{},
		},
		{
			name:        "empty file",
			existing:    "",
			hasExisting: true,
			want:        []string{},
		},
		{
			name:        "echoes existing lines",
			existing:    "one\ntwo",
			hasExisting: true,
			want:        []string{"one", "two"},
		},
		{
			name:       "registered only",
			registered: []string{"foo/bar.json"},
			want:       []string{"foo/bar.json"},
		},
		{
			name:        "deduplicates across sources",
			existing:    "node_modules",
			hasExisting: true,
			registered:  []string{"node_modules"},
			want:        []string{"node_modules"},
		},
		{
			name:        "deduplicates within the file",
			existing:    "1_one\n1_one",
			hasExisting: true,
			want:        []string{"1_one"},
		},
		{
			name:        "sorts",
			existing:    "b_line\na_line",
			hasExisting: true,
			want:        []string{"a_line", "b_line"},
		},
		{
			name:        "sorts case-sensitively",
			existing:    "b\nB\na\nA",
			hasExisting: true,
			want:        []string{"A", "B", "a", "b"},
		},
		{
			name:        "drops blank lines",
			existing:    "1_one\n\n2_two\n",
			hasExisting: true,
			want:        []string{"1_one", "2_two"},
		},
		{
			name:        "drops comments including indented ones",
			existing:    "1_one\n# comment\n  #comment",
			hasExisting: true,
			want:        []string{"1_one"},
		},
		{
			name:        "trims whitespace and carriage returns",
			existing:    "  dist  \r\nbuild\t\r\n",
			hasExisting: true,
			want:        []string{"build", "dist"},
		},
		{
			name:       "filters registered paths too",
			registered: []string{"", "  ", "# not a path", " vendor "},
			want:       []string{"vendor"},
		},
		{
			name:        "splits multi-line registrations",
			existing:    "a",
			hasExisting: true,
			registered:  []string{"z\n# comment\na", "  y \r\n\n"},
			want:        []string{"a", "y", "z"},
		},
		{
			name:        "keeps negations and globs verbatim",
			existing:    "*.log\n!keep.log",
			hasExisting: true,
			want:        []string{"!keep.log", "*.log"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Merge(tt.existing, tt.hasExisting, tt.registered)
			if len(tt.want) == 0 {
				assert.Empty(t, got)
				return
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestMergeIgnoresContentWhenAbsent(t *testing.T) {
	assert.Empty(t, Merge("stale", false, nil))
}

func TestDecide(t *testing.T) {
	write := Decide(FileName, []string{"a_line", "b_line"})
	assert.Equal(t, FileAction{Kind: ActionWrite, Path: ".gitignore", Content: "a_line\nb_line"}, write)

	del := Decide(FileName, nil)
	assert.Equal(t, FileAction{Kind: ActionDelete, Path: ".gitignore"}, del)
}

func TestDecideRoundTrip(t *testing.T) {
	inputs := []string{
		"one\ntwo",
		"node_modules\n# deps\nnode_modules\n",
		"z\ny\nx\n\n\n  w  ",
		"single",
	}
	for _, in := range inputs {
		lines := Merge(in, true, []string{"extra/path", "b\n# c\na"})
		action := Decide(FileName, lines)
		assert.Equal(t, ActionWrite, action.Kind)
		assert.Equal(t, lines, strings.Split(action.Content, "\n"), "input %q", in)
	}
}

func TestApply(t *testing.T) {
	b := projectbuilder.New()
	Apply(Decide(FileName, []string{"dist"}), b)
	assert.Equal(t, []projectbuilder.IncludedFile{{To: ".gitignore", Content: "dist"}}, b.IncludedFiles())
	assert.Empty(t, b.ExcludedFiles())

	b.Clear()
	Apply(Decide(FileName, nil), b)
	assert.Empty(t, b.IncludedFiles())
	assert.Equal(t, []string{".gitignore"}, b.ExcludedFiles())
}

func TestActionKindString(t *testing.T) {
	assert.Equal(t, "write", ActionWrite.String())
	assert.Equal(t, "delete", ActionDelete.String())
	assert.Equal(t, "ActionKind(9)", ActionKind(9).String())
}

func TestCompile(t *testing.T) {
	matcher := Compile(Merge("*.log\nbuild/\n# comment", true, []string{"node_modules/"}))

	assert.True(t, matcher.MatchesPath("debug.log"))
	assert.True(t, matcher.MatchesPath("build/out.bin"))
	assert.True(t, matcher.MatchesPath("node_modules/left-pad/index.js"))
	assert.False(t, matcher.MatchesPath("main.go"))
}
