package cli

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vk/keeperctl/internal/command"
	"github.com/vk/keeperctl/internal/testutil"
)

func TestNewRoot_RegistersEveryCommand(t *testing.T) {
	t.Parallel()

	root := NewRoot(&testutil.SafeBuffer{}, &testutil.SafeBuffer{}, nil)

	registered := make(map[string]bool)
	for _, sub := range root.Commands() {
		registered[sub.Name()] = true
	}

	for _, c := range command.All() {
		assert.True(t, registered[c.Name()], "command %q is not registered", c)
	}
}

func TestNewRoot_GlobalFlags(t *testing.T) {
	t.Parallel()

	root := NewRoot(&testutil.SafeBuffer{}, &testutil.SafeBuffer{}, nil)

	for _, name := range []string{"config", "profile", "host", "token", "log-level", "log-format"} {
		assert.NotNil(t, root.PersistentFlags().Lookup(name), "missing global flag --%s", name)
	}
}

func TestNewRoot_UnknownSubcommandFails(t *testing.T) {
	t.Parallel()

	out := &testutil.SafeBuffer{}
	root := NewRoot(out, out, nil)
	root.SetArgs([]string{"frobnicate"})
	root.SetOut(out)
	root.SetErr(out)

	err := root.ExecuteContext(context.Background())
	require.Error(t, err)
}

func TestNewRoot_InvalidLogSettingExitsWithCode(t *testing.T) {
	t.Parallel()

	out := &testutil.SafeBuffer{}
	root := NewRoot(out, out, nil)
	root.SetArgs([]string{"ping", "--log-format", "xml", "--config", t.TempDir()})
	root.SetOut(out)
	root.SetErr(out)

	err := root.ExecuteContext(context.Background())
	require.Error(t, err)

	exitErr, ok := err.(*ExitError)
	require.True(t, ok, "expected *ExitError, got %T", err)
	assert.Equal(t, 2, exitErr.Code)
}

func TestNewRoot_ExecutesCommandEndToEnd(t *testing.T) {
	t.Parallel()

	srv := testutil.NewKeeperServer(t)

	out := &testutil.SafeBuffer{}
	logs := &testutil.SafeBuffer{}
	root := NewRoot(out, logs, nil)
	root.SetArgs([]string{
		"key-get",
		"--key=true",
		"--unique-key", "abc",
		"--host", srv.URL(),
		"--config", t.TempDir(),
	})
	root.SetOut(out)
	root.SetErr(logs)

	require.NoError(t, root.ExecuteContext(context.Background()))

	req := srv.LastRequest(t)
	assert.Equal(t, "true", req.Query.Get("key"))
	assert.Equal(t, "abc", req.Query.Get("unique_key"))
	assert.True(t, strings.HasPrefix(out.String(), "success\n"))
}

func TestNewRoot_EnrolHostShadowsEndpointFlag(t *testing.T) {
	// Enrol declares its own --host, which shadows the persistent endpoint
	// flag. The body field receives the value and the endpoint falls back
	// to the environment.
	srv := testutil.NewKeeperServer(t)
	t.Setenv("KEEPER_HOST", srv.URL())

	out := &testutil.SafeBuffer{}
	logs := &testutil.SafeBuffer{}
	root := NewRoot(out, logs, nil)
	root.SetArgs([]string{"enrol", "--host", "worker-1", "--config", t.TempDir()})
	root.SetOut(out)
	root.SetErr(logs)

	require.NoError(t, root.ExecuteContext(context.Background()))

	req := srv.LastRequest(t)
	assert.Equal(t, "/v1/enrol", req.Path)
	assert.Equal(t, "worker-1", req.Body["host"])
}

func TestNewRoot_HelpListsCommands(t *testing.T) {
	t.Parallel()

	out := &testutil.SafeBuffer{}
	root := NewRoot(out, out, nil)
	root.SetArgs([]string{"--help"})
	root.SetOut(out)
	root.SetErr(out)

	require.NoError(t, root.ExecuteContext(context.Background()))

	// Commands appear in registry declaration order, not alphabetically.
	help := out.String()
	last := -1
	for _, c := range command.All() {
		idx := strings.Index(help, c.Name())
		require.GreaterOrEqual(t, idx, 0, "command %q missing from help", c)
		assert.Greater(t, idx, last, "command %q listed out of order", c)
		last = idx
	}
}
