package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newAddCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "add [text...]",
		Short: "Append a message (prefix with '>>ID' to reply)",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := collectMessage(args)
			if err != nil {
				return err
			}
			l, s, err := loadLog(app)
			if err != nil {
				return err
			}
			m, err := l.Add(raw)
			if err != nil {
				return err
			}
			if err := s.Save(l); err != nil {
				return err
			}
			if app.JSON {
				return writeOut(cmd, app, map[string]any{"data": m})
			}
			fmt.Fprintln(cmd.OutOrStdout(), m.ID)
			return nil
		},
	}
}
