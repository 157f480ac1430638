// Package cli defines the Cobra command tree for the pocket CLI. Each file
// registers one top-level command with the root command. The API commands
// (add, get) share a single RunE that loads the settings, builds a
// dispatch.Invocation from the parsed flags and hands it to the dispatcher.
package cli
