// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package flashcards

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pdiddy/guidegen/pkg/types"
)

const (
	// AnkiFileName is the single-file expanded deck.
	AnkiFileName = "algorithm-flashcards-anki.md"
	// CSVFileName is the two-column import file.
	CSVFileName = "algorithm-flashcards.csv"

	// previewRunes is the length of the truncated front preview in the
	// expanded deck's card headings.
	previewRunes = 50
)

// EmitResult summarizes one emit run.
type EmitResult struct {
	Cards    int
	Patterns int
	Failed   int
}

// HasFailures reports whether any output file failed to write.
func (r EmitResult) HasFailures() bool {
	return r.Failed > 0
}

// Emit writes the three flashcard artifacts under outDir: the expanded
// single-file deck, the CSV import file, and one file per pattern. The
// directory is created if absent and existing files are overwritten.
// Per-file write failures are logged to w and counted; only a failure to
// create the directory aborts the run.
func Emit(deck []types.PatternCards, outDir string, w io.Writer) (EmitResult, error) {
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return EmitResult{}, fmt.Errorf("creating output directory %s: %w", outDir, err)
	}

	var result EmitResult
	result.Patterns = len(deck)

	writeFile := func(name, content string) {
		path := filepath.Join(outDir, name)
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			fmt.Fprintf(w, "failed:  %s (%v)\n", name, err)
			result.Failed++
			return
		}
		fmt.Fprintf(w, "wrote:   %s\n", name)
	}

	writeFile(AnkiFileName, renderAnki(deck))

	csvContent, err := renderCSV(deck)
	if err != nil {
		fmt.Fprintf(w, "failed:  %s (%v)\n", CSVFileName, err)
		result.Failed++
	} else {
		writeFile(CSVFileName, csvContent)
	}

	for _, pc := range deck {
		writeFile(PatternSlug(pc.Pattern)+"-flashcards.md", renderPattern(pc))
		result.Cards += len(pc.Cards)
	}

	fmt.Fprintf(w, "\nGenerated %d flashcards across %d patterns in %s\n",
		result.Cards, result.Patterns, outDir)
	return result, nil
}

// renderAnki renders the expanded single-file deck with sequential card
// numbers across all patterns.
func renderAnki(deck []types.PatternCards) string {
	var b strings.Builder
	b.WriteString("# Algorithm Flashcards - Anki Format\n\n")
	b.WriteString("Generated for interview preparation\n\n")

	number := 1
	for _, pc := range deck {
		for _, card := range pc.Cards {
			fmt.Fprintf(&b, "## Card %d: %s\n\n", number, preview(card.Front))
			fmt.Fprintf(&b, "*Pattern: %s*\n\n", pc.Pattern)
			fmt.Fprintf(&b, "**Front:**\n%s\n\n", card.Front)
			fmt.Fprintf(&b, "**Back:**\n%s\n\n", card.Back)
			b.WriteString("---\n\n")
			number++
		}
	}
	return b.String()
}

// renderCSV renders the two-column import file. Backs routinely contain
// newlines, so encoding/csv quotes every row that needs it.
func renderCSV(deck []types.PatternCards) (string, error) {
	var b strings.Builder
	cw := csv.NewWriter(&b)
	if err := cw.Write([]string{"front", "back"}); err != nil {
		return "", err
	}
	for _, pc := range deck {
		for _, card := range pc.Cards {
			if err := cw.Write([]string{card.Front, card.Back}); err != nil {
				return "", err
			}
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return "", err
	}
	return b.String(), nil
}

// renderPattern renders the per-pattern file with card numbers local to
// the pattern.
func renderPattern(pc types.PatternCards) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s Flashcards\n\n", pc.Pattern)
	b.WriteString("Generated for interview preparation\n\n")
	for i, card := range pc.Cards {
		fmt.Fprintf(&b, "## Card %d\n\n", i+1)
		fmt.Fprintf(&b, "**Front:** %s\n\n", card.Front)
		fmt.Fprintf(&b, "**Back:** %s\n\n", card.Back)
	}
	return b.String()
}

// PatternSlug converts a pattern name to its file name form: lowercase
// with spaces replaced by hyphens.
func PatternSlug(name string) string {
	return strings.ReplaceAll(strings.ToLower(name), " ", "-")
}

// preview truncates a card front for use in a heading. The ellipsis is
// unconditional; short fronts keep it too.
func preview(front string) string {
	runes := []rune(front)
	if len(runes) > previewRunes {
		runes = runes[:previewRunes]
	}
	return string(runes) + "..."
}
