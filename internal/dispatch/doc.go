// Package dispatch executes one keeper command end to end: it resolves the
// command identifier to its execution routine, populates a fresh SDK request
// builder from the parsed flags, lets the embedder's override adjust the
// request, sends it, and reports the outcome.
//
// Routing is closed-world: the switch in Execute covers every value of
// command.Command and panics on anything else. Customisation happens only
// through the Override interface; the generated-style routines themselves
// are not meant to be edited per deployment.
package dispatch
