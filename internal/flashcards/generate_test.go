// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package flashcards

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pdiddy/guidegen/internal/guide"
	"github.com/pdiddy/guidegen/pkg/types"
)

const generateGuide = guide.AnchorHeading + `

#### **Two Pointers** Pattern

**Key indicators**:
- Sorted array input

**Examples**:
- Two Sum in sorted array
`

func TestGenerate(t *testing.T) {
	docsDir := t.TempDir()
	if err := os.WriteFile(filepath.Join(docsDir, "algo.md"), []byte(generateGuide), 0o644); err != nil {
		t.Fatal(err)
	}
	outDir := filepath.Join(t.TempDir(), "flashcards")

	var log bytes.Buffer
	cfg := types.FlashcardsConfig{
		DocsDir:    docsDir,
		SourceFile: "algo.md",
		OutputDir:  outDir,
	}
	if err := Generate(cfg, &log); err != nil {
		t.Fatalf("Generate: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(outDir, AnkiFileName))
	if err != nil {
		t.Fatalf("expanded deck not written: %v", err)
	}
	if !strings.Contains(string(data), "*Pattern: Two Pointers*") {
		t.Errorf("expanded deck missing pattern line: %q", data)
	}
	if _, err := os.Stat(filepath.Join(outDir, CSVFileName)); err != nil {
		t.Errorf("CSV not written: %v", err)
	}
}

func TestGenerate_MissingSource(t *testing.T) {
	var log bytes.Buffer
	cfg := types.FlashcardsConfig{
		DocsDir:    t.TempDir(),
		SourceFile: "algo.md",
		OutputDir:  t.TempDir(),
	}
	if err := Generate(cfg, &log); err == nil {
		t.Fatal("expected error for missing source file")
	}
}

func TestGenerate_NoPatternSections(t *testing.T) {
	docsDir := t.TempDir()
	if err := os.WriteFile(filepath.Join(docsDir, "algo.md"), []byte("# Notes\n\nNo guide here.\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	outDir := filepath.Join(t.TempDir(), "flashcards")

	var log bytes.Buffer
	cfg := types.FlashcardsConfig{
		DocsDir:    docsDir,
		SourceFile: "algo.md",
		OutputDir:  outDir,
	}
	if err := Generate(cfg, &log); err != nil {
		t.Fatalf("empty guide should not be an error: %v", err)
	}
	if !strings.Contains(log.String(), "No pattern sections found") {
		t.Errorf("expected the empty-guide notice, got %q", log.String())
	}
	if _, err := os.Stat(filepath.Join(outDir, AnkiFileName)); !os.IsNotExist(err) {
		t.Error("no outputs should be written for an empty guide")
	}
}
