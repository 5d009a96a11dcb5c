package cmdutil

import (
	"io"

	"github.com/opmodel/modgen/internal/output"
	"github.com/opmodel/modgen/internal/scaffold"
)

// WriteGenerateResult reports a written file on the module logger.
func WriteGenerateResult(res *scaffold.Result) {
	status := output.StatusCreated
	if res.Overwritten {
		status = output.StatusOverwritten
	}

	modLog := output.ModuleLogger(res.Module.Name)
	modLog.Info(output.FormatFileLine(res.Path, status))
	if res.Interface.Exists {
		modLog.Info("implements " + output.StyleNoun.Render(res.Names.Interface))
	}

	output.Println(output.FormatCheckmark(res.Names.Class + " created"))
}

// WriteVerboseResult writes the generation details (--verbose only).
func WriteVerboseResult(res *scaffold.Result, w io.Writer) error {
	return output.WriteVerboseResult(GenerationInfo(res), output.VerboseOptions{Writer: w})
}

// GenerationInfo converts a generator result for the output package.
func GenerationInfo(res *scaffold.Result) *output.GenerationInfo {
	return &output.GenerationInfo{
		Class:           res.Names.Class,
		Interface:       res.Names.Interface,
		ModuleName:      res.Module.Name,
		ModulePath:      res.Module.Path,
		Stub:            string(res.Stub),
		Path:            res.Path,
		InterfacePath:   res.Interface.Path,
		InterfaceExists: res.Interface.Exists,
		Placeholders:    res.Placeholders,
	}
}
