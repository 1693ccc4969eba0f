package cli

import (
	"os"
	"path/filepath"
	"strings"

	"vent-cli/internal/format"
	"vent-cli/internal/store"
	"vent-cli/internal/tui"

	"github.com/spf13/cobra"
)

type App struct {
	StorePath    string
	TemplatePath string
	JSON         bool
	PrettyJSON   bool
}

func NewRootCmd() *cobra.Command {
	app := &App{}

	cmd := &cobra.Command{
		Use:          "vent",
		Short:        "vent (single-user message log) CLI + TUI",
		SilenceUsage: true,
		Example: strings.TrimSpace(`
  # Start the interactive log browser
  vent

  # Append a message
  vent add feeling better today

  # Reply to message 10
  vent add '>>10' same here

  # Direct message lookup (shortcut for: vent show <id>)
  vent 10

  # Render the document to stdout
  vent render
`),
		RunE: func(cmd *cobra.Command, args []string) error {
			// No subcommand => interactive browser.
			if cmd.HasSubCommands() && len(args) == 0 {
				return runTUI(app)
			}
			return cmd.Help()
		},
	}

	cmd.PersistentFlags().StringVar(&app.StorePath, "store", envOr("VENT_TXT_CSV", "vent.csv"), "Path to the backing store file")
	cmd.PersistentFlags().StringVar(&app.TemplatePath, "template", envOr("VENT_TXT_HBS", filepath.Join("template", "vent.hbs")), "Path to the render template")
	cmd.PersistentFlags().BoolVar(&app.JSON, "json", false, "Emit JSON output")
	cmd.PersistentFlags().BoolVar(&app.PrettyJSON, "pretty", false, "Pretty-print JSON output")

	cmd.AddCommand(newAddCmd(app))
	cmd.AddCommand(newEditCmd(app))
	cmd.AddCommand(newRmCmd(app))
	cmd.AddCommand(newShowCmd(app))
	cmd.AddCommand(newListCmd(app))
	cmd.AddCommand(newRenderCmd(app))

	return cmd
}

func runTUI(app *App) error {
	s := store.Store{Path: app.StorePath}
	l, err := s.Load()
	if err != nil {
		return err
	}
	return tui.Run(s, l)
}

func loadLog(app *App) (*store.Log, store.Store, error) {
	s := store.Store{Path: app.StorePath}
	l, err := s.Load()
	return l, s, err
}

func envOr(k, d string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return d
}

func writeOut(cmd *cobra.Command, app *App, v any) error {
	return format.WriteJSON(cmd.OutOrStdout(), v, app.PrettyJSON)
}
