// Package cli implements the command logic behind the valuesgen binary:
// wiring the schema, defaults loader, interactive collector, validator and
// writer together, and turning failures into exit codes.
package cli

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/nauticalab/values-engine/internal/collect"
	"github.com/nauticalab/values-engine/internal/document"
	"github.com/nauticalab/values-engine/internal/output"
	"github.com/nauticalab/values-engine/internal/prompt"
	"github.com/nauticalab/values-engine/internal/schema"
	"github.com/nauticalab/values-engine/internal/tui"
	"github.com/nauticalab/values-engine/internal/validate"
)

// GenerateOptions holds configuration for the generate command.
type GenerateOptions struct {
	SchemaName   string
	DefaultsFile string
	OutputFile   string
	Force        bool
	NoBanner     bool
	Verbose      bool
}

// RunGenerate drives one interactive generation session: load defaults,
// collect a value for every schema leaf, validate, write. Validation
// failure blocks the write and reports every offending path.
func RunGenerate(opts GenerateOptions) {
	if !opts.NoBanner {
		tui.PrintBanner()
	}

	root, ok := schema.Lookup(opts.SchemaName)
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: unknown schema %q (available: %s)\n",
			opts.SchemaName, strings.Join(schema.Names(), ", "))
		os.Exit(1)
	}

	defaults := loadDefaults(opts)

	if opts.Verbose {
		fmt.Printf("Collecting %d values for schema %q\n", len(root.LeafPaths()), opts.SchemaName)
	}

	collector := collect.New(prompt.NewTerminal())
	doc, err := collector.Run(root, defaults)
	if err != nil {
		if errors.Is(err, prompt.ErrCanceled) {
			fmt.Fprintln(os.Stderr, "Canceled. Nothing was written.")
		} else {
			fmt.Fprintf(os.Stderr, "❌ Collection failed: %v\n", err)
		}
		os.Exit(1)
	}

	result := validate.Validate(doc, root)
	if !result.Valid() {
		fmt.Fprintln(os.Stderr, "❌ Collected values failed validation:")
		for _, issue := range result.Issues {
			fmt.Fprintf(os.Stderr, "  - %s: %s\n", issue.Path, issue.Reason)
		}
		fmt.Fprintln(os.Stderr, "Nothing was written.")
		os.Exit(1)
	}

	spinner := tui.StartSpinner("Writing " + opts.OutputFile)
	writeErr := output.NewWriter(opts.Force).Write(doc, opts.OutputFile)
	spinner.Stop()
	if writeErr != nil {
		fmt.Fprintf(os.Stderr, "❌ %v\n", writeErr)
		os.Exit(1)
	}

	fmt.Printf("🎉 Wrote %s\n", opts.OutputFile)
}

// loadDefaults reads the defaults file when one is configured. A missing
// file is not an error: collection simply starts without pre-filled values.
func loadDefaults(opts GenerateOptions) *document.Document {
	if opts.DefaultsFile == "" {
		return nil
	}

	defaults, err := document.Load(opts.DefaultsFile)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			if opts.Verbose {
				fmt.Printf("No defaults file at %s, starting fresh\n", opts.DefaultsFile)
			}
			return nil
		}
		fmt.Fprintf(os.Stderr, "Error loading defaults: %v\n", err)
		os.Exit(1)
	}
	return defaults
}
