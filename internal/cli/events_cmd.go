package cli

import (
	"fmt"

	"github.com/alexanderramin/agenda/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newEventsCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "events",
		Short: "List stored events in timeline order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			events, err := app.Events.List(cmd.Context())
			if err != nil {
				return err
			}
			if len(events) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), formatter.Dim("No events."))
				return nil
			}

			rows := make([][]string, 0, len(events))
			for _, e := range events {
				rows = append(rows, []string{
					formatter.TruncID(e.ID),
					string(e.Start),
					e.Title,
					formatter.FormatHours(e.DurationHours),
					formatter.EventBlock(e.Color).Render(" " + e.Color + " "),
				})
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.RenderTable(
				[]string{"ID", "START", "TITLE", "DURATION", "COLOR"}, rows))
			return nil
		},
	}
}
