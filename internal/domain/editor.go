package domain

import "strings"

// EditorState is the state of the event editor: either EditorClosed or
// EditingAt. The unexported marker keeps the set closed.
type EditorState interface {
	isEditorState()
}

// EditorClosed means no draft exists.
type EditorClosed struct{}

// EditingAt holds the draft for the slot being edited.
type EditingAt struct {
	Time     HourKey
	Title    string
	Duration int
}

func (EditorClosed) isEditorState() {}
func (EditingAt) isEditorState()    {}

// OpenEditor starts a draft at t, prefilled from existing when the slot is
// already occupied.
func OpenEditor(t HourKey, existing *Event) EditingAt {
	d := EditingAt{Time: t}
	if existing != nil {
		d.Title = existing.Title
		d.Duration = existing.DurationHours
	}
	return d
}

// Valid reports whether the draft would change the agenda. A blank title or
// a non-positive duration makes confirmation a no-op.
func (d EditingAt) Valid() bool {
	return strings.TrimSpace(d.Title) != "" && d.Duration > 0
}

// IsEditing reports whether s holds a draft.
func IsEditing(s EditorState) bool {
	_, ok := s.(EditingAt)
	return ok
}
