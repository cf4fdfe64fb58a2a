// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package flashcards

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/pdiddy/guidegen/internal/guide"
	"github.com/pdiddy/guidegen/pkg/types"
)

// Generate runs the full flashcard pipeline for cfg: extract the pattern
// sections from the guide source, synthesize the deck, and emit every
// output format to cfg.OutputDir. A missing guide source is fatal; a guide
// without pattern sections produces a notice and no output files.
func Generate(cfg types.FlashcardsConfig, w io.Writer) error {
	sourcePath := filepath.Join(cfg.DocsDir, cfg.SourceFile)
	if _, err := os.Stat(sourcePath); err != nil {
		return fmt.Errorf("guide source %s not found", sourcePath)
	}

	sections, err := guide.ExtractFile(sourcePath, w)
	if err != nil {
		return err
	}
	if len(sections) == 0 {
		fmt.Fprintln(w, "No pattern sections found")
		return nil
	}

	deck := BuildDeck(sections)
	if _, err := Emit(deck, cfg.OutputDir, w); err != nil {
		return err
	}
	return nil
}
