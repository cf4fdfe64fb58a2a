package main

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/guidegen/internal/emoji"
	"github.com/pdiddy/guidegen/pkg/types"
)

// defaultEmojiGlobs covers the source docs, everything generated, and the
// top-level markdown files.
var defaultEmojiGlobs = []string{
	"docs/*.md",
	"generated/**/*.md",
	"*.md",
}

var emojiCmd = &cobra.Command{
	Use:   "emoji [globs...]",
	Short: "Strip emoji glyphs from markdown files in place",
	Long: `Emoji rewrites the matched markdown files with emoji characters removed.
The wide matcher (default) strips by Unicode block; --wide=false selects
the narrow matcher covering only the fixed glyph set the guide content
historically used. The pass is idempotent and best-effort: a file that
cannot be read or written is logged and skipped.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		wide, _ := cmd.Flags().GetBool("wide")
		if !cmd.Flags().Changed("wide") && viper.IsSet("emoji.wide") {
			wide = cfg.Emoji.Wide
		}

		globs := args
		if len(globs) == 0 {
			globs = cfg.Emoji.Globs
		}
		if len(globs) == 0 {
			globs = defaultEmojiGlobs
		}

		emoji.Clean(types.EmojiConfig{Globs: globs, Wide: wide}, cmd.OutOrStdout())
		return nil
	},
}

func init() {
	emojiCmd.Flags().Bool("wide", true, "strip by Unicode block instead of the fixed glyph set")

	rootCmd.AddCommand(emojiCmd)
}
