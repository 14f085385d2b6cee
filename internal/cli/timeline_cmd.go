package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/alexanderramin/agenda/internal/calendar"
	"github.com/alexanderramin/agenda/internal/cli/formatter"
	"github.com/alexanderramin/agenda/internal/config"
	"github.com/alexanderramin/agenda/internal/timeline"
	"github.com/spf13/cobra"
)

// plainTimelineWidth is the block width used when printing outside the TUI.
const plainTimelineWidth = 48

func newTimelineCmd(app *App) *cobra.Command {
	var hours string

	cmd := &cobra.Command{
		Use:   "timeline",
		Short: "Print the hourly timeline",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			r := app.config().HourRange()
			if hours != "" {
				var err error
				if r, err = config.ParseHourRange(hours); err != nil {
					return err
				}
			}
			return printTimeline(cmd.Context(), cmd.OutOrStdout(), app, r)
		},
	}

	cmd.Flags().StringVar(&hours, "hours", "", "Hour range to show, e.g. 6-23")
	return cmd
}

// printTimeline writes the timeline for r with one line per hour, followed
// by any events the layout could not show.
func printTimeline(ctx context.Context, w io.Writer, app *App, r timeline.HourRange) error {
	if ctx == nil {
		ctx = context.Background()
	}
	layout, err := app.Events.Timeline(ctx, r)
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "%s  %s\n\n", formatter.StyleHeader.Render("Calendar"), calendar.FormatHeader(app.today()))
	fmt.Fprintln(w, formatter.RenderTimeline(layout, formatter.TimelineOptions{
		Width:     plainTimelineWidth,
		RowHeight: 1,
		Cursor:    -1,
	}))

	if len(layout.Shadowed) > 0 {
		fmt.Fprintln(w)
		fmt.Fprintln(w, formatter.Dim("Hidden behind earlier events:"))
		for _, e := range layout.Shadowed {
			fmt.Fprintf(w, "  %s %s\n", e.Start, e.Title)
		}
	}
	if len(layout.Unplaced) > 0 {
		fmt.Fprintln(w)
		fmt.Fprintln(w, formatter.Dim(fmt.Sprintf("Outside %02d:00-%02d:00:", r.First, r.Last)))
		for _, e := range layout.Unplaced {
			fmt.Fprintf(w, "  %s %s\n", e.Start, e.Title)
		}
	}
	return nil
}
