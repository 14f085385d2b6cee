package domain

import "errors"

// ErrEmptyPalette is returned when a palette has no colours.
var ErrEmptyPalette = errors.New("palette must contain at least one colour")

// Palette is the ordered set of colours cycled over the sorted event list.
// Colour follows list position, not event identity.
type Palette []string

// DefaultPalette returns the four-colour cycle used by the agenda.
func DefaultPalette() Palette {
	return Palette{"#A3BFFA", "#FBB6CE", "#C6F6D5", "#FDE68A"}
}

// ColorAt returns the colour for position i (i mod len).
func (p Palette) ColorAt(i int) string {
	if len(p) == 0 {
		return ""
	}
	i %= len(p)
	if i < 0 {
		i += len(p)
	}
	return p[i]
}

// Validate rejects empty palettes and blank entries.
func (p Palette) Validate() error {
	if len(p) == 0 {
		return ErrEmptyPalette
	}
	for _, c := range p {
		if c == "" {
			return errors.New("palette contains a blank colour")
		}
	}
	return nil
}
