package generator

import "fmt"

// Phase names a step of the generation lifecycle. Phases run in declaration order.
type Phase int

const (
	PhaseInit Phase = iota
	PhasePrompt
	PhaseConfigure
)

// Phases lists every phase in run order.
var Phases = []Phase{PhaseInit, PhasePrompt, PhaseConfigure}

func (p Phase) String() string {
	switch p {
	case PhaseInit:
		return "init"
	case PhasePrompt:
		return "prompt"
	case PhaseConfigure:
		return "configure"
	default:
		return fmt.Sprintf("Phase(%d)", int(p))
	}
}

// Component is one piece of the scaffolding pipeline. Each phase method
// returns the handle it was given.
type Component interface {
	Name() string
	Init(gen *Generator) *Generator
	Prompt(gen *Generator) *Generator
	Configure(gen *Generator) *Generator
}

// Dispatch runs a single phase of c.
func Dispatch(c Component, gen *Generator, phase Phase) *Generator {
	switch phase {
	case PhaseInit:
		return c.Init(gen)
	case PhasePrompt:
		return c.Prompt(gen)
	case PhaseConfigure:
		return c.Configure(gen)
	default:
		return gen
	}
}

// Run drives every phase across all components: all inits, then all prompts,
// then all configures.
func Run(gen *Generator, components ...Component) *Generator {
	for _, phase := range Phases {
		for _, c := range components {
			gen.Logger.Logf("%s: %s", c.Name(), phase)
			gen = Dispatch(c, gen, phase)
		}
	}
	return gen
}
