package cmd

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/alantheprice/projgen/pkg/changetracker"
	"github.com/alantheprice/projgen/pkg/config"
	"github.com/alantheprice/projgen/pkg/generator"
	"github.com/alantheprice/projgen/pkg/gitignore"
	"github.com/alantheprice/projgen/pkg/memfs"
	"github.com/alantheprice/projgen/pkg/projectbuilder"
	"github.com/alantheprice/projgen/pkg/utils"
)

var (
	gitignoreDryRun  bool
	gitignoreNoColor bool
)

var gitignoreCmd = &cobra.Command{
	Use:   "gitignore",
	Short: "Normalize the project's .gitignore",
	Long: `Merges the project's .gitignore with the paths given by --ignore and the
"gitignore.ignore" list in .projgen/config.json. The result is sorted, has no
duplicates, blank lines or comments. When nothing is left to ignore the
.gitignore is removed.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		dir, _ := cmd.Flags().GetString("dir")
		ignores, _ := cmd.Flags().GetStringArray("ignore")

		return runGitignore(gitignoreOptions{
			dir:     dir,
			ignores: ignores,
			dryRun:  gitignoreDryRun,
			color:   !gitignoreNoColor && term.IsTerminal(int(os.Stdout.Fd())),
			out:     cmd.OutOrStdout(),
			logger:  utils.GetLogger(),
		})
	},
}

func init() {
	gitignoreCmd.Flags().BoolVar(&gitignoreDryRun, "dry-run", false, "Show the resulting diff without writing anything")
	gitignoreCmd.Flags().BoolVar(&gitignoreNoColor, "no-color", false, "Disable colored diff output")
}

type gitignoreOptions struct {
	dir     string
	ignores []string
	dryRun  bool
	color   bool
	out     io.Writer
	logger  *utils.Logger
}

// stageProject loads the project's .gitignore and config into a fresh
// generator and registers every requested ignore path.
func stageProject(dir string, ignores []string, logger *utils.Logger) (*generator.Generator, *memfs.Editor, *projectbuilder.Builder, error) {
	fs := memfs.New()
	if err := fs.Load(dir, gitignore.FileName); err != nil {
		return nil, nil, nil, err
	}

	cfg, err := config.Load(filepath.Join(dir, config.DefaultFile))
	if err != nil {
		return nil, nil, nil, err
	}

	builder := projectbuilder.New()
	builder.Clear()
	for _, p := range cfg.Strings(config.IgnoreKey) {
		builder.IgnoreFile(p)
	}
	for _, p := range ignores {
		builder.IgnoreFile(p)
	}

	gen := generator.New(
		generator.WithRoot(dir),
		generator.WithFS(fs),
		generator.WithBuilder(builder),
		generator.WithConfig(cfg),
		generator.WithLogger(logger),
	)
	return gen, fs, builder, nil
}

func runGitignore(opts gitignoreOptions) error {
	gen, fs, builder, err := stageProject(opts.dir, opts.ignores, opts.logger)
	if err != nil {
		return errors.Wrap(err, "staging project")
	}

	before, _ := fs.Read(gitignore.FileName)

	generator.Run(gen, gitignore.Component{})
	builder.Commit(fs)

	after, _ := fs.Read(gitignore.FileName)
	diff := changetracker.GetDiff(gitignore.FileName, before, after, opts.color)

	if opts.dryRun {
		if diff == "" {
			fmt.Fprintln(opts.out, "No changes detected.")
			return nil
		}
		fmt.Fprint(opts.out, diff)
		return nil
	}

	if err := fs.Commit(opts.dir); err != nil {
		opts.logger.LogError(err)
		return errors.Wrap(err, "writing project files")
	}

	if fs.Exists(gitignore.FileName) {
		fmt.Fprintf(opts.out, "Wrote %s\n", filepath.Join(opts.dir, gitignore.FileName))
	} else {
		fmt.Fprintf(opts.out, "Removed %s (nothing to ignore)\n", filepath.Join(opts.dir, gitignore.FileName))
	}
	fmt.Fprint(opts.out, diff)
	return nil
}
