package cmd

import (
	"github.com/spf13/cobra"

	"github.com/oshokin/vorbis-tagger/internal/app"
)

//nolint:gochecknoglobals,lll // Cobra command requires a global definition for proper command-line parsing and execution.
var setEmailCmd = &cobra.Command{
	Use:   "set-email {email}",
	Short: "Set the rating user email in the configuration file",
	Long: `Stores the given email in the configuration file.

Rating tags in Vorbis comments are scoped per user as 'RATING:<email>'.
Only ratings stored under this email are loaded; ratings are written back
under it as well.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		app.ExecuteSetEmailCommand(cmd.Context(), appConfig, args[0])
	},
}

//nolint:gochecknoinits // Cobra requires the init function to set up commands.
func init() {
	rootCmd.AddCommand(setEmailCmd)
}
