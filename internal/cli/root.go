package cli

import (
	"github.com/spf13/cobra"
)

// rootCmd is the root command for the fuse CLI.
var rootCmd = &cobra.Command{
	Use:     "fuse",
	Version: "dev",
	Short:   "Prompt layer fusion toolkit",
	Long: `fuse composes base, brain, and persona prompt layers into a single
system prompt using a weighted or semantic-weighted strategy.

Layers can be passed inline or from files, and persona overlays can be
stored per conversation in a local database.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	CompletionOptions: cobra.CompletionOptions{
		DisableDefaultCmd: true,
	},
}

func SetVersion(v string) {
	if v == "" {
		return
	}
	rootCmd.Version = v
	rootCmd.SetVersionTemplate("{{.Version}}\n")
}

func init() {
	rootCmd.AddCommand(composeCmd)
	rootCmd.AddCommand(conflictsCmd)
	rootCmd.AddCommand(resolveCmd)
	rootCmd.AddCommand(presetsCmd)
	rootCmd.AddCommand(personaCmd)
}

// Execute executes the root command.
func Execute() error {
	return rootCmd.Execute()
}
