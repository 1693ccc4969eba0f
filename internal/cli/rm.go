package cli

import (
	"github.com/spf13/cobra"
)

func newRmCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "rm <id>",
		Short: "Delete a message (replies to it are kept, ids are not reused)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseMessageID(args[0])
			if err != nil {
				return err
			}
			l, s, err := loadLog(app)
			if err != nil {
				return err
			}
			if err := l.Remove(id); err != nil {
				return err
			}
			if err := s.Save(l); err != nil {
				return err
			}
			if app.JSON {
				return writeOut(cmd, app, map[string]any{"data": map[string]any{"removed": id}})
			}
			return nil
		},
	}
}
