// Package keymap maps key events to named viewer commands. Bindings
// are declared with textual key specs so they can come from the
// default table, the config file, or the rc script alike.
package keymap

import (
	"fmt"

	"github.com/dshills/folio/internal/input/key"
)

// Binding is one key-to-command mapping.
type Binding struct {
	// Keys is the key spec ("j", "C-f", "Tab").
	Keys string

	// Command is the named command to dispatch.
	Command string
}

// Keymap holds the lookup table. Later bindings for the same key
// replace earlier ones, so user remaps simply overlay the defaults.
type Keymap struct {
	bindings map[key.Event]string
}

// New creates an empty keymap.
func New() *Keymap {
	return &Keymap{bindings: make(map[key.Event]string)}
}

// Bind adds a binding from a key spec to a command name.
func (k *Keymap) Bind(spec, command string) error {
	if command == "" {
		return fmt.Errorf("binding %q: empty command", spec)
	}
	e, err := key.Parse(spec)
	if err != nil {
		return fmt.Errorf("binding %q: %w", spec, err)
	}
	k.bindings[e] = command
	return nil
}

// MustBind is Bind that panics on error; for the default table.
func (k *Keymap) MustBind(spec, command string) {
	if err := k.Bind(spec, command); err != nil {
		panic(err)
	}
}

// Resolve returns the command bound to an event.
func (k *Keymap) Resolve(e key.Event) (string, bool) {
	cmd, ok := k.bindings[e]
	return cmd, ok
}

// Apply adds a list of bindings, stopping at the first invalid one.
func (k *Keymap) Apply(bindings []Binding) error {
	for _, b := range bindings {
		if err := k.Bind(b.Keys, b.Command); err != nil {
			return err
		}
	}
	return nil
}

// Len returns the number of bound keys.
func (k *Keymap) Len() int {
	return len(k.bindings)
}
