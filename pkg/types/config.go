package types

// FlashcardsConfig holds settings for flashcard generation.
type FlashcardsConfig struct {
	// DocsDir is the directory containing the study guide sources.
	DocsDir string `json:"docs_dir" yaml:"docs_dir" mapstructure:"docs_dir"`

	// SourceFile is the guide file containing the pattern sections
	// (default "algo.md"), relative to DocsDir.
	SourceFile string `json:"source_file" yaml:"source_file" mapstructure:"source_file"`

	// OutputDir is the directory for generated flashcard files
	// (default "generated/flashcards").
	OutputDir string `json:"output_dir" yaml:"output_dir" mapstructure:"output_dir"`
}

// AssembleConfig holds settings for the combined document assembler.
type AssembleConfig struct {
	// DocsDir is the directory containing the study guide sources.
	DocsDir string `json:"docs_dir" yaml:"docs_dir" mapstructure:"docs_dir"`

	// OutputDir is the directory for the combined files (default "generated").
	OutputDir string `json:"output_dir" yaml:"output_dir" mapstructure:"output_dir"`

	// StructureFile optionally overrides the built-in document structure
	// with a YAML file of DocGroups.
	StructureFile string `json:"structure_file,omitempty" yaml:"structure_file,omitempty" mapstructure:"structure_file"`
}

// EmojiConfig holds settings for the emoji stripping pass.
type EmojiConfig struct {
	// Globs lists the file patterns to clean. Patterns support doublestar
	// syntax, e.g. "generated/**/*.md".
	Globs []string `json:"globs" yaml:"globs" mapstructure:"globs"`

	// Wide selects the Unicode-range matcher instead of the fixed
	// project glyph set.
	Wide bool `json:"wide" yaml:"wide" mapstructure:"wide"`
}

// RenameConfig holds settings for flashcard filename cleanup.
type RenameConfig struct {
	// FlashcardsDir is the directory of generated flashcard files
	// (default "generated/flashcards").
	FlashcardsDir string `json:"flashcards_dir" yaml:"flashcards_dir" mapstructure:"flashcards_dir"`
}

// BuildConfig groups all tool configurations.
type BuildConfig struct {
	Flashcards FlashcardsConfig `json:"flashcards" yaml:"flashcards" mapstructure:"flashcards"`
	Assemble   AssembleConfig   `json:"assemble" yaml:"assemble" mapstructure:"assemble"`
	Emoji      EmojiConfig      `json:"emoji" yaml:"emoji" mapstructure:"emoji"`
	Rename     RenameConfig     `json:"rename" yaml:"rename" mapstructure:"rename"`
}
