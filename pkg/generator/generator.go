// Package generator holds the handle threaded through every scaffolding
// component and the phase loop that drives them.
package generator

import (
	"github.com/alantheprice/projgen/pkg/config"
	"github.com/alantheprice/projgen/pkg/memfs"
	"github.com/alantheprice/projgen/pkg/projectbuilder"
	"github.com/alantheprice/projgen/pkg/utils"
)

// FileSystem is the staged view of the project being generated.
type FileSystem interface {
	Read(path string) (string, bool)
	Exists(path string) bool
	Write(path, content string)
	Delete(path string)
}

// ProjectBuilder is the shared ignore registry plus the file staging area.
type ProjectBuilder interface {
	IgnoreFile(path string)
	IgnoredFiles() []string
	WriteFile(to, content string)
	RemoveFile(path string)
}

// Config is the generator's persistent answers store.
type Config interface {
	Defaults(defaults map[string]any)
	Get(key string) (any, bool)
	Set(key string, value any)
}

// Question is a single prompt asked during the prompt phase.
type Question struct {
	Name    string
	Message string
	Default any
}

// Prompter asks the user questions and returns answers keyed by Question.Name.
type Prompter interface {
	Prompt(questions []Question) (map[string]any, error)
}

// NonInteractive answers every question with its default.
type NonInteractive struct{}

func (NonInteractive) Prompt(questions []Question) (map[string]any, error) {
	answers := make(map[string]any, len(questions))
	for _, q := range questions {
		answers[q.Name] = q.Default
	}
	return answers, nil
}

// Generator is the handle passed to, and returned from, every phase.
type Generator struct {
	Root     string
	FS       FileSystem
	Builder  ProjectBuilder
	Config   Config
	Prompter Prompter
	Logger   *utils.Logger
}

// Option overrides one collaborator of the handle built by New.
type Option func(*Generator)

func WithRoot(root string) Option { return func(g *Generator) { g.Root = root } }
func WithFS(fs FileSystem) Option { return func(g *Generator) { g.FS = fs } }
func WithBuilder(b ProjectBuilder) Option { return func(g *Generator) { g.Builder = b } }
func WithConfig(c Config) Option { return func(g *Generator) { g.Config = c } }
func WithPrompter(p Prompter) Option { return func(g *Generator) { g.Prompter = p } }
func WithLogger(l *utils.Logger) Option { return func(g *Generator) { g.Logger = l } }

// New builds a handle with in-memory collaborators, overridden by opts.
func New(opts ...Option) *Generator {
	g := &Generator{
		Root:     ".",
		FS:       memfs.New(),
		Builder:  projectbuilder.New(),
		Config:   config.NewStore(),
		Prompter: NonInteractive{},
		Logger:   utils.DiscardLogger(),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}
