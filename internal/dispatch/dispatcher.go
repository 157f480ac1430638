package dispatch

import (
	"context"
	"strings"

	"github.com/rs/zerolog"
)

// Handler executes one command.
type Handler interface {
	Execute(ctx context.Context, inv *Invocation) error
}

// HandlerFunc adapts a plain function to a Handler.
type HandlerFunc func(ctx context.Context, inv *Invocation) error

// Execute calls f(ctx, inv).
func (f HandlerFunc) Execute(ctx context.Context, inv *Invocation) error {
	return f(ctx, inv)
}

// Dispatcher maps command names to handlers.
type Dispatcher struct {
	handlers       map[string]Handler
	overrides      map[string]Handler
	defaultCommand string
	log            zerolog.Logger
}

// Option configures a Dispatcher.
type Option func(*Dispatcher)

// WithOverride routes name to h regardless of what is registered for it.
func WithOverride(name string, h Handler) Option {
	return func(d *Dispatcher) {
		d.overrides[name] = h
	}
}

// WithDefaultCommand sets the command used when an invocation names none.
func WithDefaultCommand(name string) Option {
	return func(d *Dispatcher) {
		d.defaultCommand = name
	}
}

// WithLogger sets the logger used to trace routing decisions.
func WithLogger(log zerolog.Logger) Option {
	return func(d *Dispatcher) {
		d.log = log
	}
}

// New creates an empty Dispatcher.
func New(opts ...Option) *Dispatcher {
	d := &Dispatcher{
		handlers:  make(map[string]Handler),
		overrides: make(map[string]Handler),
		log:       zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Register binds h to the kebab-case command name. A later registration for
// the same name replaces the earlier one.
func (d *Dispatcher) Register(name string, h Handler) {
	d.handlers[name] = h
}

// Resolve returns the handler that would run for command, together with the
// effective command name. ok is false when nothing handles it.
func (d *Dispatcher) Resolve(command string) (h Handler, name string, ok bool) {
	name = command
	if name == "" {
		name = d.defaultCommand
	}
	if name == "" {
		return nil, "", false
	}
	if h, ok := d.overrides[name]; ok {
		return h, name, true
	}
	h, ok = d.handlers[name]
	return h, name, ok
}

// Dispatch runs the handler for inv.Command. An empty or unknown command
// does nothing and returns nil.
func (d *Dispatcher) Dispatch(ctx context.Context, inv *Invocation) error {
	h, name, ok := d.Resolve(inv.Command)
	if !ok {
		d.log.Debug().Str("command", inv.Command).Msg("no handler, nothing to do")
		return nil
	}
	d.log.Debug().Str("command", name).Str("handler", HandlerName(name)).Msg("dispatching")
	return h.Execute(ctx, inv)
}

// HandlerName returns the identifier of the handler for a kebab-case command:
// "get" → "commandGet", "foo-bar-baz" → "commandFooBarBaz".
func HandlerName(command string) string {
	var b strings.Builder
	b.WriteString("command")
	for _, seg := range strings.Split(command, "-") {
		if seg == "" {
			continue
		}
		b.WriteString(strings.ToUpper(seg[:1]))
		b.WriteString(seg[1:])
	}
	return b.String()
}
