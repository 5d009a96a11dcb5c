package output

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"
)

// VerboseOptions controls verbose output.
type VerboseOptions struct {
	// JSON outputs structured JSON instead of human-readable text
	JSON bool
	// Writer is the output destination
	Writer io.Writer
}

// GenerationInfo describes one generated class without importing the
// generator package.
type GenerationInfo struct {
	Class           string
	Interface       string
	ModuleName      string
	ModulePath      string
	Stub            string
	Path            string
	InterfacePath   string
	InterfaceExists bool
	Placeholders    map[string]string
}

// verboseResult is the structured verbose output.
type verboseResult struct {
	Module       verboseModule        `json:"module"`
	Class        string               `json:"class"`
	Stub         string               `json:"stub"`
	Path         string               `json:"path"`
	Interface    verboseInterface     `json:"interface"`
	Placeholders []verbosePlaceholder `json:"placeholders"`
}

type verboseModule struct {
	Name string `json:"name"`
	Path string `json:"path"`
}

type verboseInterface struct {
	Name   string `json:"name"`
	Path   string `json:"path"`
	Exists bool   `json:"exists"`
}

type verbosePlaceholder struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// WriteVerboseResult writes the details of a generation.
func WriteVerboseResult(info *GenerationInfo, opts VerboseOptions) error {
	vr := buildVerboseResult(info)

	if opts.JSON {
		return writeVerboseJSON(vr, opts.Writer)
	}
	return writeVerboseHuman(vr, opts.Writer)
}

func buildVerboseResult(info *GenerationInfo) *verboseResult {
	vr := &verboseResult{
		Module: verboseModule{Name: info.ModuleName, Path: info.ModulePath},
		Class:  info.Class,
		Stub:   info.Stub,
		Path:   info.Path,
		Interface: verboseInterface{
			Name:   info.Interface,
			Path:   info.InterfacePath,
			Exists: info.InterfaceExists,
		},
		Placeholders: make([]verbosePlaceholder, 0, len(info.Placeholders)),
	}

	keys := make([]string, 0, len(info.Placeholders))
	for k := range info.Placeholders {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		vr.Placeholders = append(vr.Placeholders, verbosePlaceholder{Key: k, Value: info.Placeholders[k]})
	}

	return vr
}

// writeVerboseJSON writes verbose output as JSON.
func writeVerboseJSON(result *verboseResult, w io.Writer) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(result)
}

// writeVerboseHuman writes verbose output in human-readable format.
func writeVerboseHuman(result *verboseResult, w io.Writer) error {
	var sb strings.Builder

	sb.WriteString("Module:\n")
	sb.WriteString(fmt.Sprintf("  Name: %s\n", result.Module.Name))
	sb.WriteString(fmt.Sprintf("  Path: %s\n", result.Module.Path))
	sb.WriteString("\n")

	sb.WriteString("Class:\n")
	sb.WriteString(fmt.Sprintf("  Name: %s\n", result.Class))
	sb.WriteString(fmt.Sprintf("  Stub: %s\n", result.Stub))
	sb.WriteString(fmt.Sprintf("  Path: %s\n", result.Path))
	sb.WriteString("\n")

	sb.WriteString("Interface:\n")
	mark := "✗"
	if result.Interface.Exists {
		mark = "✓"
	}
	sb.WriteString(fmt.Sprintf("  %s %s\n", mark, result.Interface.Name))
	sb.WriteString(fmt.Sprintf("    %s\n", result.Interface.Path))
	sb.WriteString("\n")

	if len(result.Placeholders) > 0 {
		sb.WriteString("Placeholders:\n")
		for _, p := range result.Placeholders {
			sb.WriteString(fmt.Sprintf("  $%s$ = %q\n", p.Key, p.Value))
		}
	}

	_, err := w.Write([]byte(sb.String()))
	return err
}
