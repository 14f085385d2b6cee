package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/alexanderramin/agenda/internal/calendar"
	"github.com/alexanderramin/agenda/internal/config"
	"github.com/alexanderramin/agenda/internal/domain"
	"github.com/alexanderramin/agenda/internal/ics"
	"github.com/alexanderramin/agenda/internal/service"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// App holds the services and settings used by CLI commands and the TUI.
type App struct {
	Events service.EventService
	Config *config.Config

	// Location decides which date is "today". Nil means local time.
	Location *time.Location
	// Now is the clock; nil means time.Now.
	Now func() time.Time

	// IsInteractive reports whether stdin is a terminal. When nil or false
	// the root command prints the timeline instead of starting the TUI.
	IsInteractive func() bool

	seeded bool
}

func (a *App) now() time.Time {
	if a.Now != nil {
		return a.Now().In(a.location())
	}
	return time.Now().In(a.location())
}

func (a *App) location() *time.Location {
	if a.Location != nil {
		return a.Location
	}
	return time.Local
}

func (a *App) config() *config.Config {
	if a.Config != nil {
		return a.Config
	}
	return config.DefaultConfig()
}

func (a *App) today() calendar.Day {
	return calendar.DayOf(a.now())
}

// seedOptions are the persistent flags that decide the starting agenda.
type seedOptions struct {
	importPath string
	noSeed     bool
}

func (o *seedOptions) register(fs *pflag.FlagSet) {
	fs.StringVar(&o.importPath, "import", "", "load timed events from an iCalendar file")
	fs.BoolVar(&o.noSeed, "no-seed", false, "start without the default events")
}

// seed fills the in-memory store once per process. Imported events are
// loaded first, so they win over configured seed events at the same hour.
func (a *App) seed(ctx context.Context, opts seedOptions, warn io.Writer) error {
	if a.seeded {
		return nil
	}
	a.seeded = true

	var events []domain.SeedEvent
	if opts.importPath != "" {
		f, err := os.Open(opts.importPath)
		if err != nil {
			return fmt.Errorf("opening import file: %w", err)
		}
		defer f.Close()

		res, err := ics.Import(f, a.location())
		if err != nil {
			return fmt.Errorf("importing %s: %w", opts.importPath, err)
		}
		for _, s := range res.Skipped {
			fmt.Fprintf(warn, "skipped %q: %s\n", s.Summary, s.Reason)
		}
		events = append(events, res.Events...)
	}
	if !opts.noSeed {
		events = append(events, a.config().SeedEvents()...)
	}
	if len(events) == 0 {
		return nil
	}
	_, err := a.Events.Seed(ctx, events)
	return err
}

// NewRootCmd creates the top-level "agenda" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	var opts seedOptions

	root := &cobra.Command{
		Use:           "agenda",
		Short:         "Year day strip and hourly timeline",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return app.seed(cmd.Context(), opts, cmd.ErrOrStderr())
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.IsInteractive != nil && app.IsInteractive() {
				return runTUI(app)
			}
			return printTimeline(cmd.Context(), cmd.OutOrStdout(), app, app.config().HourRange())
		},
	}
	opts.register(root.PersistentFlags())

	root.AddCommand(
		newTUICmd(app),
		newDaysCmd(app),
		newEventsCmd(app),
		newTimelineCmd(app),
		newExportCmd(app),
	)

	return root
}
