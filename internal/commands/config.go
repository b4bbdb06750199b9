package commands

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/simonhull/firebird-suite/sprout/internal/config"
	"github.com/simonhull/firebird-suite/sprout/logger"
)

func configCmd(s *session) *cobra.Command {
	var watch bool

	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show the effective settings",
		Long: `Print the effective settings as YAML and where they came from.

With --watch, keep running and print the settings again every time
sprout.yml changes.`,
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

			store, err := s.settings(root)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			if err := writeSettings(w, store.Source(), store.Current()); err != nil {
				return err
			}

			if !watch {
				return nil
			}
			if store.Source() == "" {
				return fmt.Errorf("nothing to watch: no %s in the project", config.FileName)
			}

			store.OnChange(func(old, updated config.Settings) {
				if old == updated {
					return
				}
				fmt.Fprintln(w, "---")
				if err := writeSettings(w, store.Source(), updated); err != nil {
					s.logger().Error("printing settings", logger.F("error", err.Error()))
				}
			})
			store.Watch()

			s.printer.Info("Watching " + store.Source() + " (Ctrl-C to stop)")
			<-cmd.Context().Done()
			return nil
		},
	}

	cmd.Flags().BoolVarP(&watch, "watch", "w", false, "Print the settings again whenever the file changes")

	return cmd
}

func writeSettings(w io.Writer, source string, settings config.Settings) error {
	if source == "" {
		source = "defaults and environment"
	}
	fmt.Fprintf(w, "# source: %s\n", source)

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(settings); err != nil {
		return fmt.Errorf("encoding settings: %w", err)
	}
	return enc.Close()
}
