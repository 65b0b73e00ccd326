package cli

import (
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/vk/keeperctl/internal/app"
	"github.com/vk/keeperctl/internal/command"
	"github.com/vk/keeperctl/internal/dispatch"
)

func init() {
	// Help must list commands in registry declaration order, not
	// alphabetically.
	cobra.EnableCommandSorting = false
}

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// NewRoot builds the keeperctl root command and registers one sub-command
// per enumerated keeper operation, in registry order. Outcome reports go to
// outW, logs to logW. The override customises request construction per
// deployment; nil means identity.
func NewRoot(outW, logW io.Writer, over dispatch.Override) *cobra.Command {
	var (
		configDir string
		profile   string
		host      string
		token     string
		logLevel  string
		logFormat string
	)

	root := &cobra.Command{
		Use:           "keeperctl",
		Short:         "Command-line client for the keeper coordination service",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	flags := root.PersistentFlags()
	flags.StringVar(&configDir, "config", defaultConfigDir(), "Directory containing profile .hcl files.")
	flags.StringVar(&profile, "profile", "default", "Profile to resolve the keeper endpoint from.")
	flags.StringVar(&host, "host", "", "Keeper service base URL. Overrides environment and profile. A sub-command flag of the same name shadows it; use KEEPER_HOST or a profile there.")
	flags.StringVar(&token, "token", "", "Bearer token. Overrides environment and profile.")
	flags.StringVar(&logLevel, "log-level", "info", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")
	flags.StringVar(&logFormat, "log-format", "text", "Log output format. Options: 'text' or 'json'.")

	for _, c := range command.All() {
		sub := command.Schema(c)
		sub.RunE = func(cobraCmd *cobra.Command, args []string) error {
			cfg, err := app.NewConfig(app.Config{
				ConfigDir: configDir,
				Profile:   profile,
				Host:      host,
				Token:     token,
				LogFormat: logFormat,
				LogLevel:  logLevel,
			})
			if err != nil {
				return &ExitError{Code: 2, Message: err.Error()}
			}

			a := app.NewApp(outW, logW, cfg, over)
			defer a.Close()

			// cobraCmd.Flags() is the already-validated, typed view of
			// this sub-command's arguments; the dispatcher only ever
			// reads named values out of it.
			a.Execute(cobraCmd.Context(), c, cobraCmd.Flags())
			return nil
		}
		root.AddCommand(sub)
	}

	return root
}

// defaultConfigDir locates the per-user keeperctl configuration directory.
// It degrades to a relative path when the platform config dir is unknown.
func defaultConfigDir() string {
	base, err := os.UserConfigDir()
	if err != nil {
		return "keeperctl"
	}
	return filepath.Join(base, "keeperctl")
}
