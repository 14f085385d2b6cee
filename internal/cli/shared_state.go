package cli

import "github.com/alexanderramin/agenda/internal/domain"

// SharedState holds context shared across all views via pointer.
type SharedState struct {
	App *App

	// Editor is EditorClosed or the draft being edited.
	Editor domain.EditorState

	// Terminal dimensions
	Width  int
	Height int

	mounts int
}

// draft returns the open draft, or a zero EditingAt when the editor is
// closed.
func (s *SharedState) draft() domain.EditingAt {
	d, _ := s.Editor.(domain.EditingAt)
	return d
}

// nextMountToken returns a token unique to one mounted view instance.
// Deferred messages carry it so a replaced view's timers are ignored.
func (s *SharedState) nextMountToken() int {
	s.mounts++
	return s.mounts
}

// ContentHeight returns the available height for view content,
// accounting for header (2 lines: title + separator) and
// status bar (2 lines: separator + hints).
func (s *SharedState) ContentHeight() int {
	h := s.Height - 4
	if h < 1 {
		return 1
	}
	return h
}

// headerLines is the number of lines the appModel draws above a view.
const headerLines = 2
