// Package main is the entry point for the modgen CLI.
package main

import (
	"os"

	"github.com/opmodel/modgen/internal/cmd"
)

func main() {
	os.Exit(cmd.Execute())
}
