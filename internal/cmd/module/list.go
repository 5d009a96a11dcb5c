package module

import (
	"encoding/json"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"sigs.k8s.io/yaml"

	"github.com/opmodel/modgen/internal/cmdtypes"
	"github.com/opmodel/modgen/internal/cmdutil"
	"github.com/opmodel/modgen/internal/output"
)

// moduleEntry is one module in structured list output.
type moduleEntry struct {
	Name        string `json:"name"`
	Path        string `json:"path"`
	Description string `json:"description,omitempty"`
	Priority    int    `json:"priority"`
	Used        bool   `json:"used"`
}

// NewListCmd creates the module:list command.
func NewListCmd(gc *cmdtypes.GlobalConfig) *cobra.Command {
	var flags cmdutil.FormatFlags

	c := &cobra.Command{
		Use:   "module:list",
		Short: "List the modules found under the modules path",
		Args:  cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			format, err := flags.Format()
			if err != nil {
				return err
			}
			return runList(gc, format)
		},
	}

	flags.AddTo(c)

	return c
}

func runList(gc *cmdtypes.GlobalConfig, format output.OutputFormat) error {
	reg := cmdutil.NewRegistry(gc)

	mods, err := reg.All()
	if err != nil {
		return err
	}
	used, err := reg.UsedNow()
	if err != nil {
		return err
	}

	entries := make([]moduleEntry, 0, len(mods))
	for _, m := range mods {
		entries = append(entries, moduleEntry{
			Name:        m.Name,
			Path:        m.Path,
			Description: m.Manifest.Description,
			Priority:    m.Manifest.Priority,
			Used:        used != "" && strings.EqualFold(used, m.Name),
		})
	}

	switch format {
	case output.FormatJSON:
		data, err := json.MarshalIndent(entries, "", "  ")
		if err != nil {
			return err
		}
		output.Println(string(data))
	case output.FormatYAML:
		data, err := yaml.Marshal(entries)
		if err != nil {
			return err
		}
		output.Print(string(data))
	default:
		if len(entries) == 0 {
			output.Warn("no modules found", "path", reg.Root())
			return nil
		}
		tbl := output.NewTable("NAME", "PRIORITY", "PATH", "USED")
		for _, e := range entries {
			mark := ""
			if e.Used {
				mark = "✔"
			}
			tbl.Row(e.Name, strconv.Itoa(e.Priority), e.Path, mark)
		}
		output.Println(tbl.String())
	}
	return nil
}
