package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/nauticalab/values-engine/internal/document"
	"github.com/nauticalab/values-engine/internal/schema"
	"github.com/nauticalab/values-engine/internal/validate"
)

// ValidateOptions holds configuration for the validate command.
type ValidateOptions struct {
	SchemaName string
	File       string
	Verbose    bool
}

// RunValidate checks an existing values file against a schema and reports
// every offending path. The process exits non-zero on any issue.
func RunValidate(opts ValidateOptions) {
	root, ok := schema.Lookup(opts.SchemaName)
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: unknown schema %q (available: %s)\n",
			opts.SchemaName, strings.Join(schema.Names(), ", "))
		os.Exit(1)
	}

	doc, err := document.Load(opts.File)
	if err != nil {
		fmt.Fprintf(os.Stderr, "❌ %v\n", err)
		os.Exit(1)
	}

	result := validate.Validate(doc, root)
	if !result.Valid() {
		fmt.Printf("❌ %s has %d issue(s):\n", opts.File, len(result.Issues))
		for _, issue := range result.Issues {
			fmt.Printf("  - %s: %s\n", issue.Path, issue.Reason)
		}
		os.Exit(1)
	}

	if opts.Verbose {
		flat := document.Flatten(doc)
		fmt.Printf("Checked %d values:\n", flat.Len())
		for _, path := range flat.Paths() {
			v, _ := flat.Get(path)
			fmt.Printf("  %s = %s\n", path, document.FormatScalar(v))
		}
	}
	fmt.Printf("✅ %s is valid against schema %q\n", opts.File, opts.SchemaName)
}
