package main

import (
	"github.com/nauticalab/values-engine/internal/cli"
	"github.com/spf13/cobra"
)

var (
	// Validate command flags
	validateSchemaName string
)

// validateCmd represents the validate command
var validateCmd = &cobra.Command{
	Use:   "validate <values-file>",
	Short: "Validate an existing values file against a schema",
	Long: `Validate a values file without regenerating it.

Every offending path is reported, not just the first. The command exits
non-zero if any issue is found.

Examples:
  valuesgen validate values.yaml
  valuesgen validate --schema deployment ./deploy/values.yaml`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		opts := cli.ValidateOptions{
			SchemaName: validateSchemaName,
			File:       args[0],
			Verbose:    verbose,
		}
		cli.RunValidate(opts)
	},
}

func init() {
	validateCmd.Flags().StringVar(&validateSchemaName, "schema", "deployment", "Name of the built-in schema to validate against")
}
