package cli

import (
	"github.com/alexanderramin/agenda/internal/cli/formatter"
	"github.com/alexanderramin/agenda/internal/domain"
	"github.com/charmbracelet/huh"
)

// titleInput returns the event title field. Blank titles are accepted by
// the form; confirming them discards the draft.
func titleInput(value *string) *huh.Input {
	return huh.NewInput().
		Title("Title").
		Placeholder("What's happening?").
		CharLimit(120).
		Value(value)
}

// durationSelect offers 0..MaxDurationHours whole hours.
func durationSelect(value *int) *huh.Select[int] {
	return huh.NewSelect[int]().
		Title("Duration").
		Options(durationOptions()...).
		Value(value)
}

func durationOptions() []huh.Option[int] {
	options := make([]huh.Option[int], 0, domain.MaxDurationHours+1)
	for h := 0; h <= domain.MaxDurationHours; h++ {
		options = append(options, huh.NewOption(formatter.FormatHours(h), h))
	}
	return options
}

// editorForm returns the themed two-field form behind the event editor.
func editorForm(f *editorFields) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			titleInput(&f.title),
			durationSelect(&f.duration),
		),
	).WithTheme(agendaHuhTheme()).WithShowHelp(false)
}
