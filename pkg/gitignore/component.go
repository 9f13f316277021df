package gitignore

import (
	"fmt"

	"github.com/alantheprice/projgen/pkg/generator"
)

// Component plugs the ignore file management into generator.Run.
type Component struct{}

var _ generator.Component = Component{}

func (Component) Name() string { return "gitignore" }
func (Component) Init(gen *generator.Generator) *generator.Generator { return Init(gen) }
func (Component) Prompt(gen *generator.Generator) *generator.Generator { return Prompt(gen) }
func (Component) Configure(gen *generator.Generator) *generator.Generator { return Configure(gen) }

// Init has nothing to set up.
func Init(gen *generator.Generator) *generator.Generator {
	return gen
}

// Prompt asks nothing.
func Prompt(gen *generator.Generator) *generator.Generator {
	return gen
}

// Configure merges the staged .gitignore with the registered ignore paths and
// stages the result, or the file's deletion when nothing is left.
func Configure(gen *generator.Generator) *generator.Generator {
	existing, ok := gen.FS.Read(FileName)
	lines := Merge(existing, ok, gen.Builder.IgnoredFiles())

	action := Decide(FileName, lines)
	Apply(action, gen.Builder)

	gen.Logger.LogWorkspaceOperation("gitignore", fmt.Sprintf("%s %s (%d lines)", action.Kind, action.Path, len(lines)))
	return gen
}
