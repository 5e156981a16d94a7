package cli

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/initstate/pkg/panel"
)

// typesCommand creates the types command that lists known panel types.
func (c *CLI) typesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "types",
		Short: "List the known panel types and their colors",
		Long: `List every panel type accepted by tiles, network and merge: the built-in
types plus those configured under "types" in initstate.yaml.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := c.config()
			builtin := panel.DefaultRegistry()
			reg := cfg.Registry()

			t := newTable(cmd.OutOrStdout())
			t.AppendHeader(table.Row{"Type", "Color", "", "Source"})
			for _, name := range reg.Types() {
				color, _ := reg.Color(name)
				source := "built-in"
				if _, ok := cfg.Types[name]; ok {
					source = "config"
					if builtin.Has(name) {
						source = "config (override)"
					}
				}
				t.AppendRow(table.Row{name, color, swatch(color), source})
			}
			t.AppendFooter(table.Row{"", "", "", reg.Len()})
			t.Render()
			return nil
		},
	}
}

// swatch renders a small block in color, or nothing for uncolored types.
func swatch(color string) string {
	if color == "" {
		return ""
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color(color)).Render("██")
}
