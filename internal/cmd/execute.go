package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/opmodel/modgen/internal/cmdtypes"
	oerrors "github.com/opmodel/modgen/internal/errors"
)

// Execute runs modgen with the process arguments and returns the exit code.
func Execute() int {
	gc := &cmdtypes.GlobalConfig{}
	return run(newRootCmd(gc), gc, os.Stderr)
}

// run executes root and reports a failure on stderr. Errors the command
// already printed are not repeated. With --verbose the exit code is named.
func run(root *cobra.Command, gc *cmdtypes.GlobalConfig, stderr io.Writer) int {
	err := root.Execute()
	if err == nil {
		return oerrors.ExitSuccess
	}

	code := oerrors.ExitCodeFromError(err)

	var exitErr *oerrors.ExitError
	if !errors.As(err, &exitErr) || !exitErr.Printed {
		fmt.Fprintln(stderr, err)
	}
	if gc.Verbose {
		fmt.Fprintf(stderr, "exit code %d (%s)\n", code, oerrors.ExitCodeName(code))
	}
	return code
}
