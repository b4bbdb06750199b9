package commands

import (
	"fmt"
	"path/filepath"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/simonhull/firebird-suite/sprout/internal/templates"
)

var (
	idStyle     = lipgloss.NewStyle().Bold(true)
	originStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

func templatesCmd(s *session) *cobra.Command {
	return &cobra.Command{
		Use:   "templates",
		Short: "List templates and project overrides",
		Long: `List the built-in templates and the override files found under
.sprout/ at the project root.

To customize a template, copy it to .sprout/<id> and edit it. Placeholders
use the {{name}} syntax: pascalName, lowerName, styleImport, className and
props in component.txt, lowerName in the stylesheets.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			info, err := s.project("")
			if err != nil {
				return err
			}

			var root string
			if info != nil {
				root = info.Root
			}

			entries, err := templates.NewEngine(s.env.Fs, root).List()
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			if root == "" {
				s.printer.Info("No project found; only built-in templates are available.")
			} else {
				s.printer.Info("Override directory: " + filepath.Join(root, templates.OverrideDir))
			}

			for _, e := range entries {
				origin := string(e.Origin)
				switch {
				case !e.Used:
					origin = "unused override"
				case e.Origin == templates.OriginOverride:
					origin = "override of built-in"
				}
				fmt.Fprintf(w, "  %s %s\n", idStyle.Render(fmt.Sprintf("%-18s", e.ID)), originStyle.Render(origin))
				if e.Path != "" {
					fmt.Fprintf(w, "  %-18s %s\n", "", originStyle.Render(e.Path))
				}
			}
			return nil
		},
	}
}
