// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package flashcards

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pdiddy/guidegen/pkg/types"
)

// prefixMapping maps a legacy emoji filename prefix to its clean name.
type prefixMapping struct {
	prefix string
	clean  string
}

// prefixMappings lists the emoji prefixes older generator runs put on
// flashcard filenames, with the clean names that replace them.
var prefixMappings = []prefixMapping{
	{"⚡", "common-interview-patterns"},
	{"🌳", "tree-traversal-pattern"},
	{"🎯", "problem-type-algorithm-pattern"},
	{"📊", "heap-pattern"},
	{"🔄", "backtracking-pattern"},
	{"🔢", "binary-search-pattern"},
	{"🕸️", "graph-traversal-pattern"},
	{"🪟", "sliding-window-pattern"},
	{"🎒", "knapsack-pattern"},
	{"💰", "classic-dp-pattern"},
	{"🔍", "two-pointers-pattern"},
}

// CleanName returns the clean filename for a flashcard file whose name
// starts with a known emoji prefix followed by a hyphen. ok is false for
// names without a recognized prefix; those are left untouched.
func CleanName(name string) (clean string, ok bool) {
	for _, m := range prefixMappings {
		if strings.HasPrefix(name, m.prefix+"-") {
			return m.clean + "-flashcards.md", true
		}
	}
	return "", false
}

// RenameAll renames every flashcard file in cfg.FlashcardsDir that carries
// an emoji prefix. A missing directory is a warning, not an error. Per-file
// rename failures are logged to w and the pass continues. Returns the
// number of files renamed.
func RenameAll(cfg types.RenameConfig, w io.Writer) (int, error) {
	dir := cfg.FlashcardsDir
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			fmt.Fprintf(w, "warning: flashcards directory %s not found\n", dir)
			return 0, nil
		}
		return 0, fmt.Errorf("reading flashcards directory %s: %w", dir, err)
	}

	renamed := 0
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".md") {
			continue
		}
		clean, ok := CleanName(entry.Name())
		if !ok {
			continue
		}
		oldPath := filepath.Join(dir, entry.Name())
		newPath := filepath.Join(dir, clean)
		if err := os.Rename(oldPath, newPath); err != nil {
			fmt.Fprintf(w, "failed:  %s (%v)\n", entry.Name(), err)
			continue
		}
		fmt.Fprintf(w, "renamed: %s -> %s\n", entry.Name(), clean)
		renamed++
	}

	fmt.Fprintf(w, "\nRenamed %d flashcard files.\n", renamed)
	return renamed, nil
}
