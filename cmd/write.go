package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/oshokin/vorbis-tagger/internal/app"
	"github.com/oshokin/vorbis-tagger/internal/config"
	"github.com/oshokin/vorbis-tagger/internal/logger"
	"github.com/oshokin/vorbis-tagger/internal/service/tagger"
)

//nolint:gochecknoglobals,lll // Cobra command requires a global definition for proper command-line parsing and execution.
var writeCmd = &cobra.Command{
	Use:   "write [flags] {files}",
	Short: "Apply tag edits to the given audio files",
	Long: `Applies the requested tag edits to every file in the batch.

Fields are addressed by their internal names (title, artist, performer:Piano,
totaltracks, ...). Edits that have no representation in the target format are
dropped with the same rules the loader uses in reverse.`,
	Args: cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, paths []string) {
		if err := bindFlagsToConfig(cmd.Flags(), appConfig); err != nil {
			logger.Fatalf(cmd.Context(), "Failed to parse flags: %v", err)
		}

		request, err := buildTagRequest(cmd.Flags(), paths)
		if err != nil {
			logger.Fatalf(cmd.Context(), "Failed to parse flags: %v", err)
		}

		app.ExecuteWriteCommand(cmd.Context(), appConfig, request)
	},
}

//nolint:gochecknoinits // Cobra requires the init function to set up flags before the command is executed.
func init() {
	writeCmdFlags := writeCmd.Flags()

	writeCmdFlags.StringArrayP(
		"set",
		"s",
		nil,
		"set a field, as name=value (repeatable).")

	writeCmdFlags.StringArrayP(
		"delete",
		"d",
		nil,
		"delete a field by name (repeatable).")

	writeCmdFlags.StringP(
		"cover",
		"i",
		"",
		"embed the given image file as front cover art in every file.")

	writeCmdFlags.Bool(
		"clear",
		false,
		"drop tags not present in the new metadata instead of merging.")

	writeCmdFlags.Bool(
		"remove-id3",
		false,
		"strip foreign ID3 tag blocks from FLAC files on save.")

	rootCmd.AddCommand(writeCmd)
}

func bindFlagsToConfig(flags *pflag.FlagSet, cfg *config.Config) error {
	if flag := flags.Lookup("clear"); flag != nil && flag.Changed {
		cfg.ClearExistingTags, _ = flags.GetBool("clear")
	}

	if flag := flags.Lookup("remove-id3"); flag != nil && flag.Changed {
		cfg.RemoveID3FromFLAC, _ = flags.GetBool("remove-id3")
	}

	return nil
}

func buildTagRequest(flags *pflag.FlagSet, paths []string) (*tagger.TagRequest, error) {
	setPairs, _ := flags.GetStringArray("set")
	deletes, _ := flags.GetStringArray("delete")
	coverPath, _ := flags.GetString("cover")

	set := make(map[string]string, len(setPairs))

	for _, pair := range setPairs {
		name, value, found := strings.Cut(pair, "=")
		if !found || name == "" {
			return nil, fmt.Errorf("invalid --set value %q, expected name=value", pair)
		}

		set[name] = value
	}

	return &tagger.TagRequest{
		Paths:     paths,
		Set:       set,
		Delete:    deletes,
		CoverPath: coverPath,
	}, nil
}
