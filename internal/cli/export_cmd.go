package cli

import (
	"github.com/alexanderramin/agenda/internal/ics"
	"github.com/spf13/cobra"
)

func newExportCmd(app *App) *cobra.Command {
	var date string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the agenda as iCalendar for one day",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			day, err := parseDayFlag(app, date)
			if err != nil {
				return err
			}
			events, err := app.Events.List(cmd.Context())
			if err != nil {
				return err
			}
			return ics.Export(cmd.OutOrStdout(), day, app.location(), events, app.now())
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "Day to anchor events on, YYYY-MM-DD (default: today)")
	return cmd
}
