package cli

import (
	"bytes"
	"os"

	"vent-cli/internal/render"

	"github.com/spf13/cobra"
)

func newRenderCmd(app *App) *cobra.Command {
	var outPath string

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render the log through the template to a document",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			l, _, err := loadLog(app)
			if err != nil {
				return err
			}
			eng, err := render.NewHandlebarsEngine(app.TemplatePath)
			if err != nil {
				return err
			}
			r := render.Renderer{Engine: eng}

			if outPath == "" {
				return r.Render(cmd.OutOrStdout(), l)
			}

			// Render fully before touching the output file, so a failed
			// render leaves an existing document intact.
			var buf bytes.Buffer
			if err := r.Render(&buf, l); err != nil {
				return err
			}
			return os.WriteFile(outPath, buf.Bytes(), 0o644)
		},
	}

	cmd.Flags().StringVarP(&outPath, "out", "o", "", "Write the document to a file instead of stdout")
	return cmd
}
