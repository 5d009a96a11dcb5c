// Package cmdutil provides shared command utilities for the generator
// commands. It centralizes flag groups, workspace construction and result
// output.
package cmdutil

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	oerrors "github.com/opmodel/modgen/internal/errors"
	"github.com/opmodel/modgen/internal/output"
)

// GenerateFlags holds flags common to commands that generate a class.
type GenerateFlags struct {
	Invokable bool
	Force     bool
}

// AddTo registers the generate flags on the given cobra command.
func (f *GenerateFlags) AddTo(cmd *cobra.Command) {
	cmd.Flags().BoolVarP(&f.Invokable, "invokable", "i", false,
		"Generate a single-action class with an __invoke method")
	cmd.Flags().BoolVarP(&f.Force, "force", "f", false,
		"Overwrite the file if it already exists")
}

// FormatFlags holds the output format flag of listing commands.
type FormatFlags struct {
	Output string
}

// AddTo registers the format flag on the given cobra command.
func (f *FormatFlags) AddTo(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.Output, "output", "o", "table",
		fmt.Sprintf("Output format (%s)", joinFormats()))
}

// Format parses the flag value.
func (f *FormatFlags) Format() (output.OutputFormat, error) {
	format, ok := output.ParseOutputFormat(f.Output)
	if !ok {
		return "", fmt.Errorf("%w: invalid output format %q, valid formats: %s",
			oerrors.ErrValidation, f.Output, joinFormats())
	}
	return format, nil
}

func joinFormats() string {
	return strings.Join(output.ValidFormats(), ", ")
}
