package keyconfig

import "github.com/davidwl/keyhint/internal/utils"

// Marker tokens looked up (case-insensitively) in an entry's Keys field.
// They follow the variable conventions of the source i3 config: $mod is the
// bare super/meta key, $alt the alt variable, ctrl and shift the literal
// key names.
const (
	ShiftMarker   = "shift"
	ControlMarker = "ctrl"
	AltMarker     = "$alt"
	MetaMarker    = "$mod"
)

// Modifiers is the set of modifier keys held at query time. It has no
// identity beyond its four flags and is passed by value into every filter
// call; the event loop that tracks the live keyboard state owns the
// transitions.
type Modifiers struct {
	Shift   bool
	Control bool
	Alt     bool
	Meta    bool
}

// Any reports whether at least one modifier is held.
func (m Modifiers) Any() bool {
	return m.Shift || m.Control || m.Alt || m.Meta
}

// Satisfied reports whether keys carries the marker of every held modifier.
// An entry with empty keys can never satisfy a held modifier; with no
// modifiers held every entry passes.
func (m Modifiers) Satisfied(keys string) bool {
	if m.Shift && !utils.ContainsIgnoreCase(keys, ShiftMarker) {
		return false
	}
	if m.Control && !utils.ContainsIgnoreCase(keys, ControlMarker) {
		return false
	}
	if m.Alt && !utils.ContainsIgnoreCase(keys, AltMarker) {
		return false
	}
	if m.Meta && !utils.ContainsIgnoreCase(keys, MetaMarker) {
		return false
	}
	return true
}
