package main

import (
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/pdiddy/guidegen/internal/flashcards"
	"github.com/pdiddy/guidegen/pkg/types"
)

var renameCmd = &cobra.Command{
	Use:   "rename",
	Short: "Rename flashcard files carrying legacy emoji prefixes",
	Long: `Rename scans the flashcards directory for files whose names start with a
known emoji prefix and renames them to their clean pattern names. Files
without a recognized prefix are left untouched.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		rcfg := types.RenameConfig{
			FlashcardsDir: resolve(cmd, "flashcards-dir", cfg.Rename.FlashcardsDir),
		}
		_, err := flashcards.RenameAll(rcfg, cmd.OutOrStdout())
		return err
	},
}

func init() {
	renameCmd.Flags().String("flashcards-dir", filepath.Join("generated", "flashcards"), "directory of generated flashcard files")

	rootCmd.AddCommand(renameCmd)
}
