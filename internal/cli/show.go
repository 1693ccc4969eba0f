package cli

import (
	"fmt"

	"vent-cli/internal/model"
	"vent-cli/internal/store"

	"github.com/spf13/cobra"
)

func newShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Print one message and its direct replies",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseMessageID(args[0])
			if err != nil {
				return err
			}
			l, _, err := loadLog(app)
			if err != nil {
				return err
			}
			m, ok := l.Find(id)
			if !ok {
				return store.NotFoundError{ID: id}
			}
			replies := directReplies(l, id)

			if app.JSON {
				return writeOut(cmd, app, map[string]any{
					"data": m,
					"meta": map[string]any{"replies": replies},
				})
			}
			w := cmd.OutOrStdout()
			fmt.Fprintln(w, formatMessageLine(m))
			for _, r := range replies {
				fmt.Fprintln(w, "  "+formatMessageLine(r))
			}
			return nil
		},
	}
}

func directReplies(l *store.Log, id int) []model.Message {
	out := []model.Message{}
	for _, m := range l.Messages {
		if m.ReplyTo != nil && *m.ReplyTo == id {
			out = append(out, m)
		}
	}
	return out
}
