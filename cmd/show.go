package cmd

import (
	"github.com/spf13/cobra"

	"github.com/oshokin/vorbis-tagger/internal/app"
)

var (
	showCmd = &cobra.Command{
		Use:   "show [flags] {files}",
		Short: "Print the metadata of the given audio files",
		Long: `Reads the tags of each file and prints them as internal field names,
followed by the embedded cover art images with their types and sizes.`,
		Args: cobra.MinimumNArgs(1),
		Run: func(cmd *cobra.Command, paths []string) {
			app.ExecuteShowCommand(cmd.Context(), appConfig, paths)
		},
	}

	detectCmd = &cobra.Command{
		Use:   "detect [flags] {files}",
		Short: "Detect the container format of the given files",
		Long: `Inspects the leading bytes of each file's stream and reports the
detected container format. Detection is based on stream content,
not on the file extension alone.`,
		Args: cobra.MinimumNArgs(1),
		Run: func(cmd *cobra.Command, paths []string) {
			app.ExecuteDetectCommand(cmd.Context(), appConfig, paths)
		},
	}
)

//nolint:gochecknoinits // Cobra requires the init function to set up commands.
func init() {
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(detectCmd)
}
