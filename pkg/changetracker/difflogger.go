package changetracker

import (
	"fmt"
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
)

// Color constants for better readability
const (
	RedColor    = "\x1b[31m"
	GreenColor  = "\x1b[32m"
	YellowColor = "\x1b[33m"
	BoldStyle   = "\x1b[1m"
	ResetColor  = "\x1b[0m"
)

type palette struct {
	red, green, yellow, bold, reset string
}

func newPalette(color bool) palette {
	if !color {
		return palette{}
	}
	return palette{red: RedColor, green: GreenColor, yellow: YellowColor, bold: BoldStyle, reset: ResetColor}
}

// GetDiff renders a line diff between the original and updated content of a
// staged file. It returns "" when nothing changed.
func GetDiff(filename, originalCode, newCode string, color bool) string {
	if originalCode == newCode {
		return ""
	}

	dmp := diffmatchpatch.New()
	a, b, lineArray := dmp.DiffLinesToChars(originalCode, newCode)
	diffs := dmp.DiffMain(a, b, false)
	diffs = dmp.DiffCharsToLines(diffs, lineArray)

	p := newPalette(color)

	var body strings.Builder
	for _, d := range diffs {
		for _, line := range splitLines(d.Text) {
			switch d.Type {
			case diffmatchpatch.DiffInsert:
				body.WriteString(fmt.Sprintf("%s+ %s%s\n", p.green, line, p.reset))
			case diffmatchpatch.DiffDelete:
				body.WriteString(fmt.Sprintf("%s- %s%s\n", p.red, line, p.reset))
			default:
				body.WriteString(fmt.Sprintf("  %s\n", line))
			}
		}
	}

	return getStatsFromDiff(diffs, filename, p) + body.String()
}

func getStatsFromDiff(diffs []diffmatchpatch.Diff, filename string, p palette) string {
	var result strings.Builder
	additions, deletions := calculateChanges(diffs)
	result.WriteString(fmt.Sprintf("%s%s%s%s ", p.bold, p.yellow, filename, p.reset))
	if additions > 0 {
		result.WriteString(fmt.Sprintf("%s%s+++%d%s ", p.bold, p.green, additions, p.reset))
	}
	if deletions > 0 {
		result.WriteString(fmt.Sprintf("%s%s---%d%s", p.bold, p.red, deletions, p.reset))
	}
	result.WriteString("\n")
	return result.String()
}

// calculateChanges counts added and removed lines.
func calculateChanges(diffs []diffmatchpatch.Diff) (additions, deletions int) {
	for _, diff := range diffs {
		switch diff.Type {
		case diffmatchpatch.DiffInsert:
			additions += len(splitLines(diff.Text))
		case diffmatchpatch.DiffDelete:
			deletions += len(splitLines(diff.Text))
		}
	}
	return
}

// splitLines splits on "\n" without producing a trailing empty line.
func splitLines(text string) []string {
	if text == "" {
		return nil
	}
	return strings.Split(strings.TrimSuffix(text, "\n"), "\n")
}
