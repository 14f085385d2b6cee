package cli

import (
	"fmt"

	"github.com/alexanderramin/agenda/internal/calendar"
	"github.com/alexanderramin/agenda/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newDaysCmd(app *App) *cobra.Command {
	var year int

	cmd := &cobra.Command{
		Use:   "days",
		Short: "List every day of the year shown in the day strip",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var days []calendar.Day
			if year != 0 {
				days = calendar.YearDays(year)
			} else {
				days = calendar.GenerateYear(app.now())
			}
			today := app.today()

			rows := make([][]string, 0, len(days))
			for i, d := range days {
				mark := ""
				if d.Equal(today) {
					mark = formatter.StyleGreen.Render("today")
				}
				rows = append(rows, []string{
					fmt.Sprintf("%d", i),
					d.String(),
					calendar.FormatDay(d),
					mark,
				})
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.RenderTable([]string{"#", "DATE", "DAY", ""}, rows))
			return nil
		},
	}

	cmd.Flags().IntVar(&year, "year", 0, "Year to list (default: current year)")
	return cmd
}

// parseDayFlag parses a --date flag value, defaulting to today.
func parseDayFlag(app *App, s string) (calendar.Day, error) {
	if s == "" {
		return app.today(), nil
	}
	d, err := calendar.ParseDay(s)
	if err != nil {
		return calendar.Day{}, fmt.Errorf("invalid date %q (want YYYY-MM-DD)", s)
	}
	return d, nil
}

