package cmd

import (
	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "projgen",
	Short: "Project scaffolding helpers",
	Long: `Projgen runs the scaffolding pipeline components against an existing
project directory. Changes are staged in memory and only written to disk
once every component has run.

Available commands:
  gitignore - Normalize .gitignore and add paths that should be ignored
  check     - Report which paths the project's .gitignore ignores`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringP("dir", "C", ".", "Project directory")
	rootCmd.PersistentFlags().StringArrayP("ignore", "i", nil, "Additional path to ignore (repeatable, commas are kept)")

	rootCmd.AddCommand(gitignoreCmd)
	rootCmd.AddCommand(checkCmd)
}
