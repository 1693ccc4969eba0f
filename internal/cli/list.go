package cli

import (
	"fmt"

	"vent-cli/internal/model"

	"github.com/spf13/cobra"
)

func newListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Print the log in insertion order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			l, _, err := loadLog(app)
			if err != nil {
				return err
			}
			if app.JSON {
				msgs := l.Messages
				if msgs == nil {
					msgs = []model.Message{}
				}
				return writeOut(cmd, app, map[string]any{
					"data": msgs,
					"meta": map[string]any{"total": len(msgs)},
				})
			}
			w := cmd.OutOrStdout()
			for _, m := range l.Messages {
				fmt.Fprintln(w, formatMessageLine(m))
			}
			return nil
		},
	}
}

func formatMessageLine(m model.Message) string {
	if m.ReplyTo != nil {
		return fmt.Sprintf("%d\t%s\t>>%d\t%s", m.ID, m.DisplayTime(), *m.ReplyTo, m.Text)
	}
	return fmt.Sprintf("%d\t%s\t\t%s", m.ID, m.DisplayTime(), m.Text)
}
