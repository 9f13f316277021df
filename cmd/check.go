package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/alantheprice/projgen/pkg/gitignore"
	"github.com/alantheprice/projgen/pkg/utils"
)

var checkCmd = &cobra.Command{
	Use:   "check <path>...",
	Short: "Report which paths the normalized .gitignore would ignore",
	Long: `Builds the same ignore list the gitignore command would write, without
writing it, and reports for every given path whether that list ignores it.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dir, _ := cmd.Flags().GetString("dir")
		ignores, _ := cmd.Flags().GetStringArray("ignore")
		return runCheck(dir, ignores, args, cmd.OutOrStdout(), utils.GetLogger())
	},
}

func runCheck(dir string, ignores, paths []string, out io.Writer, logger *utils.Logger) error {
	gen, fs, builder, err := stageProject(dir, ignores, logger)
	if err != nil {
		return err
	}

	existing, ok := fs.Read(gitignore.FileName)
	matcher := gitignore.Compile(gitignore.Merge(existing, ok, builder.IgnoredFiles()))
	gen.Logger.Logf("check: %d paths against %s", len(paths), gitignore.FileName)

	for _, p := range paths {
		status := "not ignored"
		if matcher.MatchesPath(p) {
			status = "ignored"
		}
		fmt.Fprintf(out, "%s: %s\n", p, status)
	}
	return nil
}
