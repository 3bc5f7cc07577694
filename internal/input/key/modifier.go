package key

import "strings"

// Modifier is a bitmask of held modifier keys.
type Modifier uint8

const (
	// ModNone means no modifiers.
	ModNone Modifier = 0

	// ModCtrl is the Control key.
	ModCtrl Modifier = 1 << iota

	// ModAlt is the Alt key.
	ModAlt

	// ModShift is the Shift key. For character events Shift is part of
	// the character itself and normally not set.
	ModShift
)

// HasCtrl reports whether Control is held.
func (m Modifier) HasCtrl() bool {
	return m&ModCtrl != 0
}

// HasAlt reports whether Alt is held.
func (m Modifier) HasAlt() bool {
	return m&ModAlt != 0
}

// HasShift reports whether Shift is held.
func (m Modifier) HasShift() bool {
	return m&ModShift != 0
}

// With returns the modifier set with mod added.
func (m Modifier) With(mod Modifier) Modifier {
	return m | mod
}

// String returns the modifier prefix in spec notation ("C-A-").
func (m Modifier) String() string {
	var b strings.Builder
	if m.HasCtrl() {
		b.WriteString("C-")
	}
	if m.HasAlt() {
		b.WriteString("A-")
	}
	if m.HasShift() {
		b.WriteString("S-")
	}
	return b.String()
}
