package commands

import (
	"context"
	"io"

	"github.com/marekjm/pocket/internal/dispatch"
	"github.com/marekjm/pocket/internal/pocket"
	"github.com/rs/zerolog"
)

// API paths.
const (
	PathAdd = "/v3/add"
	PathGet = "/v3/get"
)

// Poster is the part of *pocket.Connection the handlers use.
type Poster interface {
	Post(ctx context.Context, path string, payload map[string]any) (*pocket.Response, error)
}

// Env is the runtime state shared by all handlers. It is built once at
// startup and never modified.
type Env struct {
	Conn  Poster
	Out   io.Writer
	Color bool
	Log   zerolog.Logger
}

// Register binds every handler in this package to its command name.
func Register(d *dispatch.Dispatcher, env *Env) {
	d.Register("add", &Add{Env: env})
	d.Register("get", &Get{Env: env})
}
