// Package app wires the keeperctl application together: it builds the
// logger, resolves the active profile into a keeper endpoint and credential,
// constructs the SDK client, and hands invocations to the dispatcher.
package app
