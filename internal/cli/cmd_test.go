package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/alexanderramin/agenda/internal/config"
	"github.com/alexanderramin/agenda/internal/domain"
	"github.com/alexanderramin/agenda/internal/repository"
	"github.com/alexanderramin/agenda/internal/service"
	"github.com/alexanderramin/agenda/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testApp wires a full App backed by an in-memory DB. The clock is pinned
// to testutil.FixedNow and the initial scroll fires without delay.
func testApp(t *testing.T) *App {
	t.Helper()
	db := testutil.NewTestDB(t)

	cfg := config.DefaultConfig()
	cfg.ScrollDelayMs = 0

	events, err := service.NewEventService(
		repository.NewSQLiteEventRepo(db),
		testutil.NewTestUoW(db),
		domain.Palette(cfg.Palette),
	)
	require.NoError(t, err)

	return &App{
		Events:   events,
		Config:   cfg,
		Location: time.UTC,
		Now:      func() time.Time { return testutil.FixedNow },
	}
}

// seededApp is testApp with the default starting events loaded.
func seededApp(t *testing.T) *App {
	t.Helper()
	app := testApp(t)
	_, err := app.Events.Seed(context.Background(), domain.DefaultSeed())
	require.NoError(t, err)
	return app
}

// executeCmd runs a cobra command and captures stdout/stderr.
func executeCmd(t *testing.T, app *App, args ...string) (string, error) {
	t.Helper()
	root := NewRootCmd(app)
	buf := new(bytes.Buffer)
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetArgs(args)
	err := root.Execute()
	return stripANSI(buf.String()), err
}

var ansiPattern = regexp.MustCompile(`\x1b\[[0-9;]*[a-zA-Z]`)

func stripANSI(s string) string {
	return ansiPattern.ReplaceAllString(s, "")
}

func TestRootCmd_NonInteractivePrintsTimeline(t *testing.T) {
	app := testApp(t)

	out, err := executeCmd(t, app)
	require.NoError(t, err)
	assert.Contains(t, out, "17 Oct 2026")
	assert.Contains(t, out, "08:00  Work")
	assert.Contains(t, out, "06:00  Drink 8 glasses of water")
	assert.NotContains(t, out, "09:00")
}

func TestRootCmd_NoSeed(t *testing.T) {
	app := testApp(t)

	out, err := executeCmd(t, app, "--no-seed", "timeline")
	require.NoError(t, err)
	assert.NotContains(t, out, "Work")
	assert.Contains(t, out, "09:00 ┄")

	events, err := app.Events.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, events)
}

func TestRootCmd_ConfiguredSeed(t *testing.T) {
	app := testApp(t)
	app.Config.Seed = []domain.SeedEvent{{Start: "07:00", Title: "Breakfast", DurationHours: 1}}

	out, err := executeCmd(t, app, "timeline")
	require.NoError(t, err)
	assert.Contains(t, out, "07:00  Breakfast")
	assert.NotContains(t, out, "Gym")
}

func TestRootCmd_ImportSeedsFromICS(t *testing.T) {
	app := testApp(t)
	path := filepath.Join(t.TempDir(), "in.ics")
	require.NoError(t, os.WriteFile(path, []byte(strings.Join([]string{
		"BEGIN:VCALENDAR",
		"VERSION:2.0",
		"PRODID:-//test//test//EN",
		"BEGIN:VEVENT",
		"UID:x@test",
		"DTSTAMP:20261001T000000Z",
		"DTSTART:20261017T080000Z",
		"DTEND:20261017T090000Z",
		"SUMMARY:Standup",
		"END:VEVENT",
		"BEGIN:VEVENT",
		"UID:y@test",
		"DTSTAMP:20261001T000000Z",
		"DTSTART:20261017T091500Z",
		"SUMMARY:Coffee",
		"END:VEVENT",
		"END:VCALENDAR",
		"",
	}, "\r\n")), 0o600))

	out, err := executeCmd(t, app, "--import", path, "timeline")
	require.NoError(t, err)

	// Imported events win over the default seed at the same hour.
	assert.Contains(t, out, "08:00  Standup")
	assert.Contains(t, out, `skipped "Coffee"`)
	assert.Contains(t, out, "18:00  Gym")
}

func TestRootCmd_ImportMissingFile(t *testing.T) {
	_, err := executeCmd(t, testApp(t), "--import", filepath.Join(t.TempDir(), "nope.ics"), "timeline")
	assert.Error(t, err)
}

func TestTimelineCmd_HoursFlag(t *testing.T) {
	out, err := executeCmd(t, testApp(t), "timeline", "--hours", "12-14")
	require.NoError(t, err)
	assert.Contains(t, out, "12:00  Take a nap")
	assert.Contains(t, out, "13:00  Work")
	assert.NotContains(t, out, "08:00  Work")
	assert.NotContains(t, out, "14:00  ", "14:00 is past the last row")
	assert.Contains(t, out, "Outside 12:00-14:00:")
}

func TestTimelineCmd_BadHours(t *testing.T) {
	_, err := executeCmd(t, testApp(t), "timeline", "--hours", "20-6")
	assert.ErrorIs(t, err, config.ErrInvalidHourRange)
}

func TestTimelineCmd_ListsShadowedEvents(t *testing.T) {
	app := testApp(t)
	app.Config.Seed = []domain.SeedEvent{
		{Start: "08:00", Title: "Work", DurationHours: 4},
		{Start: "10:00", Title: "Standup", DurationHours: 1},
	}

	out, err := executeCmd(t, app, "timeline")
	require.NoError(t, err)
	assert.Contains(t, out, "Hidden behind earlier events:")
	assert.Contains(t, out, "10:00 Standup")
}

func TestDaysCmd_ListsYear(t *testing.T) {
	out, err := executeCmd(t, testApp(t), "days")
	require.NoError(t, err)
	assert.Contains(t, out, "2026-01-01")
	assert.Contains(t, out, "2026-12-31")
	assert.Contains(t, out, "Sat 17")
	assert.Contains(t, out, "today")
	// header + separator + 365 rows
	assert.Equal(t, 367, strings.Count(out, "\n"))
}

func TestDaysCmd_LeapYear(t *testing.T) {
	out, err := executeCmd(t, testApp(t), "days", "--year", "2028")
	require.NoError(t, err)
	assert.Contains(t, out, "2028-02-29")
	assert.Equal(t, 368, strings.Count(out, "\n"))
	assert.NotContains(t, out, "today")
}

func TestExportCmd_WritesICS(t *testing.T) {
	out, err := executeCmd(t, testApp(t), "export", "--date", "2026-12-24")
	require.NoError(t, err)
	assert.Contains(t, out, "BEGIN:VCALENDAR")
	assert.Equal(t, 6, strings.Count(out, "BEGIN:VEVENT"))
	assert.Contains(t, out, "DTSTART:20261224T080000Z")
	assert.Contains(t, out, "SUMMARY:Gym")
}

func TestExportCmd_BadDate(t *testing.T) {
	_, err := executeCmd(t, testApp(t), "export", "--date", "24/12/2026")
	assert.Error(t, err)
}

func TestEventsCmd_ListsInTimelineOrder(t *testing.T) {
	out, err := executeCmd(t, testApp(t), "events")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 8)
	assert.Contains(t, lines[0], "START")
	assert.Contains(t, lines[2], "06:00")
	assert.Contains(t, lines[2], "Drink 8 glasses of water")
	assert.Contains(t, lines[2], "#A3BFFA")
	assert.Contains(t, lines[7], "20:00")
	assert.Contains(t, lines[7], "1 hour")
}

func TestEventsCmd_Empty(t *testing.T) {
	out, err := executeCmd(t, testApp(t), "--no-seed", "events")
	require.NoError(t, err)
	assert.Contains(t, out, "No events.")
}
