package changetracker

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetDiffNoChanges(t *testing.T) {
	assert.Empty(t, GetDiff(".gitignore", "a\nb", "a\nb", false))
}

func TestGetDiffPlain(t *testing.T) {
	diff := GetDiff(".gitignore", "b_line\na_line\n# comment", "a_line\nb_line", false)

	lines := strings.Split(strings.TrimSuffix(diff, "\n"), "\n")
	assert.True(t, strings.HasPrefix(lines[0], ".gitignore "))
	assert.NotContains(t, diff, "\x1b[")
	assert.Contains(t, diff, "- # comment\n")
	assert.Contains(t, diff, "+ b_line\n")
}

func TestGetDiffCountsLines(t *testing.T) {
	diff := GetDiff(".gitignore", "", "dist\nnode_modules", false)

	assert.Equal(t, ".gitignore +++2 \n+ dist\n+ node_modules\n", diff)
}

func TestGetDiffDeletion(t *testing.T) {
	diff := GetDiff(".gitignore", "dist\n", "", false)

	assert.Equal(t, ".gitignore ---1\n- dist\n", diff)
}

func TestGetDiffColor(t *testing.T) {
	diff := GetDiff(".gitignore", "", "dist", true)

	assert.Contains(t, diff, GreenColor+"+ dist"+ResetColor)
	assert.Contains(t, diff, YellowColor+".gitignore"+ResetColor)
}

func TestSplitLines(t *testing.T) {
	assert.Nil(t, splitLines(""))
	assert.Equal(t, []string{"a", "b"}, splitLines("a\nb\n"))
	assert.Equal(t, []string{""}, splitLines("\n"))
}
