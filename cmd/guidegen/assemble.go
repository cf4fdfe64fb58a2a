package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pdiddy/guidegen/internal/assemble"
	"github.com/pdiddy/guidegen/pkg/types"
)

var assembleCmd = &cobra.Command{
	Use:   "assemble",
	Short: "Assemble the combined printable and web study guide editions",
	Long: `Assemble concatenates the study guide sources, in the order given by the
document structure, into two combined editions: a printable single file and
a web file with a metadata block and anchor navigation. Front matter and
per-file titles are stripped; section headings are generated from the
structure's display titles.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		acfg := types.AssembleConfig{
			DocsDir:       resolve(cmd, "docs-dir", cfg.Assemble.DocsDir),
			OutputDir:     resolve(cmd, "out-dir", cfg.Assemble.OutputDir),
			StructureFile: resolve(cmd, "structure", cfg.Assemble.StructureFile),
		}

		out := cmd.OutOrStdout()
		if err := assemble.Generate(acfg, out); err != nil {
			return err
		}

		fmt.Fprintln(out, "Generation complete!")
		return nil
	},
}

func init() {
	assembleCmd.Flags().String("docs-dir", "docs", "directory containing the study guide sources")
	assembleCmd.Flags().String("out-dir", "generated", "directory for the combined files")
	assembleCmd.Flags().String("structure", "", "YAML file overriding the built-in document structure")

	rootCmd.AddCommand(assembleCmd)
}
