// Package cli builds the keeperctl command tree. It registers every
// enumerated keeper operation's argument schema on a cobra root command,
// translates global flags into the application's configuration, and handles
// process-level concerns like exit codes.
package cli
