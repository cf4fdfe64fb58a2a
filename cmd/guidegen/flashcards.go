package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/pdiddy/guidegen/internal/flashcards"
	"github.com/pdiddy/guidegen/pkg/types"
)

var flashcardsCmd = &cobra.Command{
	Use:   "flashcards",
	Short: "Generate algorithm flashcards from the study guide",
	Long: `Flashcards extracts the pattern sections from the guide source and
synthesizes front/back study cards for each: key indicators, examples,
implementations from the section's code blocks, and complexity.

Output is written in three formats: a single expanded deck, a CSV import
file, and one file per pattern.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		fcfg := types.FlashcardsConfig{
			DocsDir:    resolve(cmd, "docs-dir", cfg.Flashcards.DocsDir),
			SourceFile: resolve(cmd, "source", cfg.Flashcards.SourceFile),
			OutputDir:  resolve(cmd, "out-dir", cfg.Flashcards.OutputDir),
		}

		out := cmd.OutOrStdout()
		fmt.Fprintln(out, "Generating algorithm flashcards...")

		if err := flashcards.Generate(fcfg, out); err != nil {
			return err
		}

		fmt.Fprintln(out, "Flashcard generation complete!")
		return nil
	},
}

func init() {
	flashcardsCmd.Flags().String("docs-dir", "docs", "directory containing the study guide sources")
	flashcardsCmd.Flags().String("source", "algo.md", "guide file containing the pattern sections")
	flashcardsCmd.Flags().String("out-dir", filepath.Join("generated", "flashcards"), "directory for generated flashcard files")

	rootCmd.AddCommand(flashcardsCmd)
}
