package commands

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/marekjm/pocket/internal/dispatch"
)

// ErrEmptyURL is returned by Add when the URL operand is blank.
var ErrEmptyURL = errors.New("empty URL")

// Add saves a URL, with an optional title, to the user's list.
type Add struct {
	Env *Env
}

// Execute runs `add <url> [title]`. It prints nothing on success.
func (a *Add) Execute(ctx context.Context, inv *dispatch.Invocation) error {
	url := strings.TrimSpace(inv.Operand(0))
	title := strings.TrimSpace(inv.Operand(1))
	if url == "" {
		return ErrEmptyURL
	}

	resp, err := a.Env.Conn.Post(ctx, PathAdd, map[string]any{
		"url":   url,
		"title": title,
	})
	if err != nil {
		return fmt.Errorf("adding %s: %w", url, err)
	}
	if err := resp.Err(); err != nil {
		return err
	}

	a.Env.Log.Debug().Str("url", url).Msg("item added")
	return nil
}
