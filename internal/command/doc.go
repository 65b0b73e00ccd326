// Package command enumerates the fixed set of keeper operations the CLI
// supports and declares, for each one, the argument schema the outer parser
// matches raw input against.
//
// The enumeration is closed: it is defined entirely at build time and the
// dispatcher's routing over it is exhaustive. Adding an operation means
// extending the enumeration, its schema constructor, and the dispatcher's
// execution routine together; the registry validation test keeps the three
// in sync.
package command
