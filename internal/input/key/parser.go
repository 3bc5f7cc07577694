package key

import (
	"fmt"
	"unicode/utf8"
)

// specialNames maps spec names to keys.
var specialNames = map[string]Key{
	"Esc":    KeyEscape,
	"Escape": KeyEscape,
	"Enter":  KeyEnter,
	"CR":     KeyEnter,
	"Tab":    KeyTab,
	"BS":     KeyBackspace,
	"Del":    KeyDelete,
	"Home":   KeyHome,
	"End":    KeyEnd,
	"PgUp":   KeyPageUp,
	"PgDn":   KeyPageDown,
	"Up":     KeyUp,
	"Down":   KeyDown,
	"Left":   KeyLeft,
	"Right":  KeyRight,
	"F11":    KeyF11,
}

// Parse converts a key spec string into an event. Specs are a
// hyphen-separated modifier prefix followed by a key name: "a", "G",
// "C-f", "A-Left", "Tab", "Space".
func Parse(spec string) (Event, error) {
	if spec == "" {
		return Event{}, fmt.Errorf("empty key spec")
	}

	var mods Modifier
	rest := spec
	for len(rest) > 2 && rest[1] == '-' {
		switch rest[0] {
		case 'C':
			mods = mods.With(ModCtrl)
		case 'A':
			mods = mods.With(ModAlt)
		case 'S':
			mods = mods.With(ModShift)
		default:
			return Event{}, fmt.Errorf("unknown modifier %q in %q", rest[0], spec)
		}
		rest = rest[2:]
	}

	if rest == "Space" {
		return NewRuneEvent(' ', mods), nil
	}
	if k, ok := specialNames[rest]; ok {
		return NewSpecialEvent(k, mods), nil
	}
	if utf8.RuneCountInString(rest) == 1 {
		r, _ := utf8.DecodeRuneInString(rest)
		return NewRuneEvent(r, mods), nil
	}
	return Event{}, fmt.Errorf("unknown key %q in spec %q", rest, spec)
}

// MustParse is Parse that panics on error; for use in default tables.
func MustParse(spec string) Event {
	e, err := Parse(spec)
	if err != nil {
		panic(fmt.Sprintf("bad key spec: %v", err))
	}
	return e
}
