package command

import (
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSchema_TotalOverEnumeration(t *testing.T) {
	t.Parallel()

	for _, c := range All() {
		schema := Schema(c)
		require.NotNil(t, schema, "Schema(%q) returned nil", c)
		assert.Equal(t, c.Name(), schema.Use)
		assert.NotEmpty(t, schema.Short)
	}
}

func TestSchema_UnknownCommandPanics(t *testing.T) {
	t.Parallel()

	require.Panics(t, func() {
		_ = Schema(Command(99))
	})
}

func TestSchema_AllFlagsOptionalWithHelp(t *testing.T) {
	t.Parallel()

	for _, c := range All() {
		schema := Schema(c)
		schema.Flags().VisitAll(func(f *pflag.Flag) {
			assert.Empty(t, f.Annotations[cobra.BashCompOneRequiredFlag],
				"%s flag --%s is marked required", c, f.Name)
			assert.NotEmpty(t, f.Usage, "%s flag --%s has no help text", c, f.Name)
		})
	}
}

func TestSchema_FreshValuePerCall(t *testing.T) {
	t.Parallel()

	a := Schema(KeyGet)
	b := Schema(KeyGet)
	require.NotSame(t, a, b)

	// Parsing one schema's flags must not leak into the other.
	require.NoError(t, a.ParseFlags([]string{"--unique-key", "abc"}))
	assert.True(t, a.Flags().Changed("unique-key"))
	assert.False(t, b.Flags().Changed("unique-key"))
}

func TestSchema_KeyGetDeclaredFlags(t *testing.T) {
	t.Parallel()

	flags := Schema(KeyGet).Flags()

	key := flags.Lookup("key")
	require.NotNil(t, key)
	assert.Equal(t, "bool", key.Value.Type())

	uniqueKey := flags.Lookup("unique-key")
	require.NotNil(t, uniqueKey)
	assert.Equal(t, "string", uniqueKey.Value.Type())
}

func TestSchema_PingHasNoFlags(t *testing.T) {
	t.Parallel()

	assert.False(t, Schema(Ping).Flags().HasFlags())
}
