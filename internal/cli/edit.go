package cli

import (
	"github.com/spf13/cobra"
)

func newEditCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "edit <id> [text...]",
		Short: "Replace a message's text (id, timestamp and reply stay)",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseMessageID(args[0])
			if err != nil {
				return err
			}
			text, err := collectMessage(args[1:])
			if err != nil {
				return err
			}
			l, s, err := loadLog(app)
			if err != nil {
				return err
			}
			m, err := l.Edit(id, text)
			if err != nil {
				return err
			}
			if err := s.Save(l); err != nil {
				return err
			}
			if app.JSON {
				return writeOut(cmd, app, map[string]any{"data": m})
			}
			return nil
		},
	}
}
