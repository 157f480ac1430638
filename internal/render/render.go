// Package render formats saved items for the terminal: one grep-friendly
// line per item, or a multi-line summary with optional excerpts.
package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/marekjm/pocket/internal/pocket"
)

// Options controls the summary layout.
type Options struct {
	Excerpt bool
	Color   bool
}

// Grep writes "<resolved_url> <resolved_title>" for each item.
func Grep(w io.Writer, items []pocket.Item) error {
	var b strings.Builder
	for _, item := range items {
		fmt.Fprintf(&b, "%s %s\n", item.ResolvedURL, item.ResolvedTitle)
	}
	_, err := io.WriteString(w, b.String())
	return err
}

// Summary writes the human-readable listing. Items are separated by a blank
// line; a shown excerpt is preceded by one.
func Summary(w io.Writer, items []pocket.Item, opts Options) error {
	var b strings.Builder
	limit := len(items) - 1
	for i, item := range items {
		header := "url " + item.ResolvedURL
		if opts.Color {
			header = yellow(header)
		}
		fmt.Fprintln(&b, header)
		fmt.Fprintf(&b, "Title: %s\n", item.ResolvedTitle)

		showExcerpt := opts.Excerpt && item.Excerpt != ""
		if i < limit || showExcerpt {
			b.WriteByte('\n')
		}
		if showExcerpt {
			fmt.Fprintln(&b, FormatExcerpt(item.Excerpt))
			if i < limit {
				b.WriteByte('\n')
			}
		}
	}
	_, err := io.WriteString(w, b.String())
	return err
}

// FormatExcerpt breaks an excerpt into one indented line per sentence.
func FormatExcerpt(excerpt string) string {
	sentences := strings.Split(excerpt, ". ")
	for i, s := range sentences {
		sentences[i] = "    " + strings.TrimSpace(s)
	}
	return strings.Join(sentences, ".\n")
}
