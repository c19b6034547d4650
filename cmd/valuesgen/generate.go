package main

import (
	"github.com/nauticalab/values-engine/internal/cli"
	"github.com/spf13/cobra"
)

var (
	// Command-specific flags for generate
	schemaName   string
	defaultsFile string
	outputFile   string
	force        bool
	noBanner     bool
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Interactively generate a values file",
	Long: `Walk the schema and prompt for every field, then validate the answers
and write the resulting values file.

Enumerated fields offer their allowed options plus an "Other (enter
manually)" escape for free-text entry. Pressing enter on a pre-filled
prompt accepts the current default.

Examples:
  valuesgen generate
  valuesgen generate --defaults values.yaml --output values.yaml --force
  valuesgen generate --schema deployment --output ./deploy/values.yaml`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		opts := cli.GenerateOptions{
			SchemaName:   schemaName,
			DefaultsFile: defaultsFile,
			OutputFile:   outputFile,
			Force:        force,
			NoBanner:     noBanner,
			Verbose:      verbose,
		}
		cli.RunGenerate(opts)
	},
}

func init() {
	generateCmd.Flags().StringVar(&schemaName, "schema", "deployment", "Name of the built-in schema to collect values for")
	generateCmd.Flags().StringVar(&defaultsFile, "defaults", "values.yaml", "Existing values file used to pre-fill prompts")
	generateCmd.Flags().StringVarP(&outputFile, "output", "o", "generated-values.yaml", "Destination for the generated values file")
	generateCmd.Flags().BoolVar(&force, "force", false, "Overwrite the destination file if it exists")
	generateCmd.Flags().BoolVar(&noBanner, "no-banner", false, "Suppress the startup banner")
}
