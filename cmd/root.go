package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "firedrive",
	Short: "document repository management tool",
	Example: `firedrive create -t <title> -c <category-id> -f <file>
firedrive get -d <doc-id>
firedrive list -c <category-id>
firedrive trash -d <doc-id>
firedrive publish -d <doc-id>
firedrive delete -d <doc-id>
firedrive batch copy -c <category-id> -d <doc-id>,<doc-id>
firedrive sweep`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(dbCmd)
	rootCmd.SetHelpCommand(&cobra.Command{Use: "no-help", Hidden: true})

	rootCmd.CompletionOptions.HiddenDefaultCmd = true
	cobra.EnableCommandSorting = false
}
