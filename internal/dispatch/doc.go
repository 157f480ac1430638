// Package dispatch routes a parsed Invocation to the Handler registered for
// its command name. Overrides take precedence over registered handlers, and
// an empty command falls back to the configured default; a command nobody
// handles is a silent no-op.
package dispatch
