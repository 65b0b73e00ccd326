package testutil

import (
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/require"

	"github.com/vk/keeperctl/internal/command"
)

// ParseFlags builds the declared schema for a command and parses the given
// raw arguments against it, returning the typed flag set the dispatcher
// consumes. It fails the test on malformed input, mirroring how parse
// errors terminate before dispatch in the real binary.
func ParseFlags(t *testing.T, c command.Command, args ...string) *pflag.FlagSet {
	t.Helper()

	schema := command.Schema(c)
	require.NoError(t, schema.ParseFlags(args))
	return schema.Flags()
}
