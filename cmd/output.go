package cmd

import (
	"fmt"

	"github.com/haystacksec/kustodian/internal/jq"
	outputproviders "github.com/haystacksec/kustodian/internal/output_providers"
	"github.com/haystacksec/kustodian/pkg/types"
)

func fileOutputRequested() bool {
	return outputDir != "" || outFile != ""
}

func fileOutputDir() string {
	if outputDir != "" {
		return outputDir
	}
	return "."
}

// emitText prints rendered text to the console and, when file output
// is requested, writes it through the plain file provider.
func emitText(tool, rendered string) error {
	result := types.NewResult(tool, rendered, types.WithFilename(outFile))

	if err := outputproviders.NewConsoleProvider().Write(result); err != nil {
		return err
	}

	if fileOutputRequested() {
		if err := outputproviders.NewPlainFileProvider(fileOutputDir(), outFile).Write(result); err != nil {
			return &outputWriteError{err: err}
		}
	}

	return nil
}

// emitJSON prints a rendered JSON document (through the --jq filter
// when set) and, when file output is requested, writes the underlying
// document through the JSON file provider.
func emitJSON(tool string, doc interface{}, rendered string) error {
	display := rendered
	if jqFilter != "" {
		filtered, err := jq.PerformJqQuery([]byte(rendered), jqFilter)
		if err != nil {
			return fmt.Errorf("jq filter failed: %w", err)
		}
		display = string(filtered)
	}

	if err := outputproviders.NewConsoleProvider().Write(types.NewResult(tool, display)); err != nil {
		return err
	}

	if fileOutputRequested() {
		result := types.NewResult(tool, doc, types.WithFilename(outFile))
		if err := outputproviders.NewJsonFileProvider(fileOutputDir()).Write(result); err != nil {
			return &outputWriteError{err: err}
		}
	}

	return nil
}

// emitTable prints a markdown table and, when file output is
// requested, writes it through the markdown file provider.
func emitTable(tool string, table types.MarkdownTable) error {
	result := types.NewResult(tool, table, types.WithFilename(outFile))

	if err := outputproviders.NewConsoleProvider().Write(result); err != nil {
		return err
	}

	if fileOutputRequested() {
		if err := outputproviders.NewMarkdownFileProvider(fileOutputDir()).Write(result); err != nil {
			return &outputWriteError{err: err}
		}
	}

	return nil
}
