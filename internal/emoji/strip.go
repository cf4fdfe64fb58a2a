// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package emoji removes emoji glyphs from generated markdown files in place.
package emoji

import (
	"fmt"
	"io"
	"os"
	"regexp"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/pdiddy/guidegen/pkg/types"
)

// Narrow matches the fixed set of glyphs the guide content actually uses,
// plus the variation selector that rides along with some of them.
var Narrow = regexp.MustCompile(`[\x{26A1}\x{1F333}\x{1F392}\x{1F3AF}\x{1F4B0}\x{1F4CA}\x{1F504}\x{1F50D}\x{1F522}\x{1F578}\x{1FA9F}\x{1F5A8}\x{FE0F}]`)

// Wide matches emoji by Unicode block: emoticons, symbols and pictographs,
// transport and map symbols, flags, dingbats, enclosed characters, and the
// supplementary-plane range that catches the remainder.
var Wide = regexp.MustCompile(`[` +
	`\x{1F600}-\x{1F64F}` + // emoticons
	`\x{1F300}-\x{1F5FF}` + // symbols & pictographs
	`\x{1F680}-\x{1F6FF}` + // transport & map symbols
	`\x{1F1E0}-\x{1F1FF}` + // flags
	`\x{2702}-\x{27B0}` + // dingbats
	`\x{24C2}-\x{1F251}` + // enclosed characters
	`\x{1F004}-\x{1FFD5}` + // supplementary plane remainder
	`]+`)

// Counts summarizes one stripping run.
type Counts struct {
	Cleaned int
	Failed  int
}

// Total returns the number of files processed.
func (c Counts) Total() int {
	return c.Cleaned + c.Failed
}

// HasFailures reports whether any file failed.
func (c Counts) HasFailures() bool {
	return c.Failed > 0
}

// CleanFile rewrites the file at path with all matches of re removed.
// The substitution is idempotent: a cleaned file round-trips unchanged.
func CleanFile(path string, re *regexp.Regexp) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}
	cleaned := re.ReplaceAll(data, nil)
	if err := os.WriteFile(path, cleaned, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

// Clean runs the stripping pass for cfg: the wide matcher when cfg.Wide is
// set, the narrow glyph set otherwise, over cfg.Globs.
func Clean(cfg types.EmojiConfig, w io.Writer) Counts {
	re := Narrow
	if cfg.Wide {
		re = Wide
	}
	return CleanGlobs(cfg.Globs, re, w)
}

// CleanGlobs expands each doublestar pattern and strips every matching file
// in place. Failures on individual files are logged to w and counted; the
// batch continues. Each file is processed once even when patterns overlap.
func CleanGlobs(globs []string, re *regexp.Regexp, w io.Writer) Counts {
	seen := make(map[string]bool)
	var paths []string
	for _, pattern := range globs {
		matches, err := doublestar.FilepathGlob(pattern)
		if err != nil {
			fmt.Fprintf(w, "warning: bad pattern %q: %v\n", pattern, err)
			continue
		}
		for _, m := range matches {
			if !seen[m] {
				seen[m] = true
				paths = append(paths, m)
			}
		}
	}

	fmt.Fprintf(w, "Found %d markdown files to process\n", len(paths))

	var counts Counts
	for _, path := range paths {
		if err := CleanFile(path, re); err != nil {
			fmt.Fprintf(w, "failed:  %s (%v)\n", path, err)
			counts.Failed++
			continue
		}
		fmt.Fprintf(w, "cleaned: %s\n", path)
		counts.Cleaned++
	}

	fmt.Fprintf(w, "\nProcessed %d/%d files successfully.\n", counts.Cleaned, counts.Total())
	return counts
}
