//go:build mage

package main

import (
	"path/filepath"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

// Flashcards regenerates the algorithm flashcard files.
func Flashcards() error {
	mg.Deps(Build)
	return sh.RunV(filepath.Join(binDir, binName), "flashcards")
}

// Versions regenerates the combined printable and web editions.
func Versions() error {
	mg.Deps(Build)
	return sh.RunV(filepath.Join(binDir, binName), "assemble")
}

// CleanEmoji strips emoji from the source and generated markdown.
func CleanEmoji() error {
	mg.Deps(Build)
	return sh.RunV(filepath.Join(binDir, binName), "emoji")
}

// Regen rebuilds every generated artifact: flashcards, combined editions,
// and the emoji cleanup pass over the results.
func Regen() error {
	mg.SerialDeps(Flashcards, Versions, CleanEmoji)
	return nil
}
