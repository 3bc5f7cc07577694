// Package command routes named viewer commands to handler functions.
//
// The vocabulary is closed: handlers are registered once at session
// construction and looked up by name both from key bindings and from
// command-line input. Dispatching an unknown name is a logged no-op,
// never a panic.
package command

import (
	"sort"

	"github.com/rs/zerolog"
)

// HandlerFunc executes one named command.
type HandlerFunc func()

// Registry is the command name table.
type Registry struct {
	handlers map[string]HandlerFunc
	log      zerolog.Logger
}

// NewRegistry creates an empty registry.
func NewRegistry(log zerolog.Logger) *Registry {
	return &Registry{
		handlers: make(map[string]HandlerFunc),
		log:      log,
	}
}

// Register binds a command name to a handler. Re-registering a name
// replaces the previous handler.
func (r *Registry) Register(name string, fn HandlerFunc) {
	r.handlers[name] = fn
}

// Known reports whether a command name is registered.
func (r *Registry) Known(name string) bool {
	_, ok := r.handlers[name]
	return ok
}

// Dispatch executes the named command. Returns false for unknown
// names, which are logged and otherwise ignored.
func (r *Registry) Dispatch(name string) bool {
	fn, ok := r.handlers[name]
	if !ok {
		r.log.Debug().Str("command", name).Msg("unknown command")
		return false
	}
	fn()
	return true
}

// Names returns all registered command names, sorted.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.handlers))
	for name := range r.handlers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
