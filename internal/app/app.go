package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/pflag"

	"github.com/vk/keeperctl/internal/command"
	"github.com/vk/keeperctl/internal/config"
	"github.com/vk/keeperctl/internal/ctxlog"
	"github.com/vk/keeperctl/internal/dispatch"
	"github.com/vk/keeperctl/keeper"
)

// EnvHost and EnvToken are the environment fallbacks for endpoint
// resolution, consulted between explicit flags and the profile file.
const (
	EnvHost  = "KEEPER_HOST"
	EnvToken = "KEEPER_TOKEN"
)

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	outW   io.Writer
	logger *slog.Logger
	client *keeper.Client
	cli    *dispatch.CLI
}

// NewApp is the constructor for the main application. It returns a fully
// initialized App instance with its own isolated logger and SDK client. A
// nil override leaves every command's request exactly as its flags built it.
//
// Failure to resolve a usable endpoint is a fatal startup error and panics;
// the caller recovers it into a clean exit message.
func NewApp(outW, logW io.Writer, appConfig *Config, over dispatch.Override) *App {
	logger := newLogger(appConfig, logW)
	ctx := ctxlog.WithLogger(context.Background(), logger)
	logger.Debug("Logger configured successfully.")

	profiles, err := config.Load(ctx, appConfig.ConfigDir)
	if err != nil {
		panic(fmt.Errorf("failed to load configuration: %w", err))
	}

	profile, err := profiles.Select(appConfig.Profile)
	if err != nil {
		panic(fmt.Errorf("failed to select profile: %w", err))
	}
	logger.Debug("Profile resolved.", "profile", appConfig.Profile, "loaded", profiles.Len())

	host, token := resolveEndpoint(appConfig, profile)
	if host == "" {
		panic(fmt.Errorf("no keeper host configured: use --host, %s, or a profile", EnvHost))
	}
	logger.Debug("Endpoint resolved.", "host", host)

	client := keeper.New(host, token)

	return &App{
		outW:   outW,
		logger: logger,
		client: client,
		cli:    dispatch.New(client, outW, over),
	}
}

// Client returns the application's SDK client. This is primarily for testing.
func (a *App) Client() *keeper.Client {
	return a.client
}

// Execute runs one command against the already-parsed flag set.
func (a *App) Execute(ctx context.Context, cmd command.Command, flags *pflag.FlagSet) {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Execute started.", "command", cmd.Name())
	a.cli.Execute(ctx, cmd, flags)
	a.logger.Debug("App.Execute finished.", "command", cmd.Name())
}

// Close releases the application's resources.
func (a *App) Close() error {
	return a.client.Close()
}

// resolveEndpoint applies the flag > environment > profile precedence for
// the host and token.
func resolveEndpoint(appConfig *Config, profile *config.Profile) (host, token string) {
	host = appConfig.Host
	if host == "" {
		host = os.Getenv(EnvHost)
	}
	if host == "" && profile != nil {
		host = profile.Host
	}

	token = appConfig.Token
	if token == "" {
		token = os.Getenv(EnvToken)
	}
	if token == "" && profile != nil {
		token = profile.Token
	}
	return host, token
}
