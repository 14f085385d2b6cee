package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/alexanderramin/agenda/internal/calendar"
	"github.com/alexanderramin/agenda/internal/domain"
	"github.com/alexanderramin/agenda/internal/timeline"
	"gopkg.in/yaml.v3"
)

// ErrInvalidHourRange is returned when first_hour/last_hour do not describe
// a non-empty range inside a day.
var ErrInvalidHourRange = errors.New("invalid hour range")

// Config is the agenda's runtime configuration. Every field is optional in
// the YAML file; Normalize fills what is missing.
type Config struct {
	// Timezone is the IANA zone used to decide "today". Empty means local.
	Timezone string `yaml:"timezone"`

	FirstHour int `yaml:"first_hour"`
	LastHour  int `yaml:"last_hour"`

	// RowHeight is the number of terminal lines per timeline hour.
	RowHeight int `yaml:"row_height"`

	Palette []string `yaml:"palette"`

	DayBoxWidth int `yaml:"day_box_width"`
	DayGap      int `yaml:"day_gap"`

	// ScrollDelayMs delays the initial scroll to today after the calendar
	// is mounted. Zero scrolls on the first update.
	ScrollDelayMs int `yaml:"scroll_delay_ms"`

	// LogFile receives structured use-case logs. Empty disables logging.
	LogFile string `yaml:"log_file"`

	// Seed replaces the built-in starting events when non-nil.
	Seed []domain.SeedEvent `yaml:"seed"`
}

const (
	defaultRowHeight     = 2
	defaultScrollDelayMs = 300
)

// DefaultConfig mirrors the stock agenda screen.
func DefaultConfig() *Config {
	r := timeline.DefaultRange()
	m := calendar.DefaultStripMetrics()
	return &Config{
		FirstHour:     r.First,
		LastHour:      r.Last,
		RowHeight:     defaultRowHeight,
		Palette:       domain.DefaultPalette(),
		DayBoxWidth:   m.BoxWidth,
		DayGap:        m.Gap,
		ScrollDelayMs: defaultScrollDelayMs,
	}
}

// Normalize fills zero values with defaults so partial files behave.
func (c *Config) Normalize() {
	def := DefaultConfig()
	if c.RowHeight <= 0 {
		c.RowHeight = def.RowHeight
	}
	if len(c.Palette) == 0 {
		c.Palette = def.Palette
	}
	if c.DayBoxWidth <= 0 {
		c.DayBoxWidth = def.DayBoxWidth
	}
	if c.DayGap < 0 {
		c.DayGap = def.DayGap
	}
	if c.ScrollDelayMs < 0 {
		c.ScrollDelayMs = 0
	}
}

// Validate rejects settings the agenda cannot render.
func (c *Config) Validate() error {
	if err := c.HourRange().Validate(); err != nil {
		return fmt.Errorf("%w: %d-%d", ErrInvalidHourRange, c.FirstHour, c.LastHour)
	}
	if err := domain.Palette(c.Palette).Validate(); err != nil {
		return err
	}
	if _, err := c.Location(); err != nil {
		return err
	}
	for _, se := range c.Seed {
		if _, err := domain.ParseHourKey(string(se.Start)); err != nil {
			return fmt.Errorf("seed event %q: %w", se.Title, err)
		}
	}
	return nil
}

// Load reads the YAML file at path over the defaults, applies AGENDA_* environment overrides
// and validates the result. An empty path or a missing file yields the
// defaults.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("parsing config %s: %w", path, err)
			}
		case errors.Is(err, fs.ErrNotExist):
		default:
			return nil, fmt.Errorf("reading config %s: %w", path, err)
		}
	}

	if err := applyEnv(cfg); err != nil {
		return nil, err
	}
	cfg.Normalize()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func applyEnv(cfg *Config) error {
	if v := os.Getenv("AGENDA_TIMEZONE"); v != "" {
		cfg.Timezone = v
	}
	if v := os.Getenv("AGENDA_LOG_FILE"); v != "" {
		cfg.LogFile = v
	}
	if v := os.Getenv("AGENDA_PALETTE"); v != "" {
		cfg.Palette = splitList(v)
	}
	if v := os.Getenv("AGENDA_HOURS"); v != "" {
		r, err := ParseHourRange(v)
		if err != nil {
			return err
		}
		cfg.FirstHour, cfg.LastHour = r.First, r.Last
	}
	applyIntEnv(&cfg.FirstHour, "AGENDA_FIRST_HOUR")
	applyIntEnv(&cfg.LastHour, "AGENDA_LAST_HOUR")
	applyIntEnv(&cfg.RowHeight, "AGENDA_ROW_HEIGHT")
	applyIntEnv(&cfg.DayBoxWidth, "AGENDA_DAY_BOX_WIDTH")
	applyIntEnv(&cfg.DayGap, "AGENDA_DAY_GAP")
	applyIntEnv(&cfg.ScrollDelayMs, "AGENDA_SCROLL_DELAY_MS")
	return nil
}

func applyIntEnv(dst *int, envName string) {
	v := os.Getenv(envName)
	if v == "" {
		return
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 0 {
		return
	}
	*dst = n
}

func splitList(v string) []string {
	var out []string
	for _, p := range strings.Split(v, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// ParseHourRange parses "6-23" into an hour range.
func ParseHourRange(s string) (timeline.HourRange, error) {
	first, last, ok := strings.Cut(strings.TrimSpace(s), "-")
	if !ok {
		return timeline.HourRange{}, fmt.Errorf("%w: %q", ErrInvalidHourRange, s)
	}
	f, err1 := strconv.Atoi(strings.TrimSpace(first))
	l, err2 := strconv.Atoi(strings.TrimSpace(last))
	if err1 != nil || err2 != nil {
		return timeline.HourRange{}, fmt.Errorf("%w: %q", ErrInvalidHourRange, s)
	}
	r := timeline.HourRange{First: f, Last: l}
	if err := r.Validate(); err != nil {
		return timeline.HourRange{}, fmt.Errorf("%w: %q", ErrInvalidHourRange, s)
	}
	return r, nil
}

func (c *Config) HourRange() timeline.HourRange {
	return timeline.HourRange{First: c.FirstHour, Last: c.LastHour}
}

func (c *Config) StripMetrics() calendar.StripMetrics {
	return calendar.StripMetrics{BoxWidth: c.DayBoxWidth, Gap: c.DayGap}
}

func (c *Config) ScrollDelay() time.Duration {
	return time.Duration(c.ScrollDelayMs) * time.Millisecond
}

// Location resolves Timezone, defaulting to the process's local zone.
func (c *Config) Location() (*time.Location, error) {
	if c.Timezone == "" {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("timezone %q: %w", c.Timezone, err)
	}
	return loc, nil
}

// SeedEvents returns the configured seed, or the built-in one when the file
// did not set any.
func (c *Config) SeedEvents() []domain.SeedEvent {
	if c.Seed != nil {
		return c.Seed
	}
	return domain.DefaultSeed()
}
