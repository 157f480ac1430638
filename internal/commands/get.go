package commands

import (
	"context"
	"fmt"
	"strconv"

	"github.com/marekjm/pocket/internal/dispatch"
	"github.com/marekjm/pocket/internal/pocket"
	"github.com/marekjm/pocket/internal/render"
)

// Get fetches the user's list and renders it.
type Get struct {
	Env *Env
}

// Execute runs `get [--count N] [--grep] [--excerpt]`.
func (g *Get) Execute(ctx context.Context, inv *dispatch.Invocation) error {
	payload := map[string]any{}
	if v, ok := inv.Get("--count"); ok {
		count, err := strconv.Atoi(v)
		if err != nil || count < 0 {
			return fmt.Errorf("invalid --count value %q", v)
		}
		payload["count"] = count
	}

	resp, err := g.Env.Conn.Post(ctx, PathGet, payload)
	if err != nil {
		return fmt.Errorf("fetching list: %w", err)
	}
	if err := resp.Err(); err != nil {
		return err
	}

	items, err := pocket.DecodeList(resp.Body)
	if err != nil {
		return err
	}
	g.Env.Log.Debug().Int("items", len(items)).Msg("list fetched")

	if inv.Has("--grep") {
		return render.Grep(g.Env.Out, items)
	}
	return render.Summary(g.Env.Out, items, render.Options{
		Excerpt: inv.Has("--excerpt"),
		Color:   g.Env.Color,
	})
}
