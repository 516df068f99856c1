package cmd

import (
	"github.com/spf13/cobra"

	"github.com/oshokin/vorbis-tagger/internal/app"
)

//nolint:gochecknoglobals,lll // Cobra command requires a global definition for proper command-line parsing and execution.
var exportCoversCmd = &cobra.Command{
	Use:   "export-covers [flags] {file}",
	Short: "Export the embedded cover art of a file to image files",
	Long: `Writes every embedded cover art image of the file into the output
directory. Filenames are derived from the source file, the picture type and
a unique suffix; the extension follows the image MIME type.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, paths []string) {
		outputDir, _ := cmd.Flags().GetString("output")

		app.ExecuteExportCoversCommand(cmd.Context(), appConfig, paths[0], outputDir)
	},
}

//nolint:gochecknoinits // Cobra requires the init function to set up flags before the command is executed.
func init() {
	exportCoversCmd.Flags().StringP(
		"output",
		"o",
		".",
		"directory to write cover files to (created if it doesn't exist).")

	rootCmd.AddCommand(exportCoversCmd)
}
