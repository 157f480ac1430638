// Package commands implements the handlers behind `pocket add` and
// `pocket get`. Each handler performs a single request against the API and
// writes its result to the Env's output.
package commands
