package command

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAll_StableOrder(t *testing.T) {
	t.Parallel()

	first := All()
	second := All()

	if diff := cmp.Diff(first, second); diff != "" {
		t.Fatalf("All() is not stable across calls (-first +second):\n%s", diff)
	}
}

func TestAll_EachCommandExactlyOnce(t *testing.T) {
	t.Parallel()

	seen := make(map[Command]int)
	for _, c := range All() {
		seen[c]++
	}
	for c, n := range seen {
		assert.Equal(t, 1, n, "command %q appears %d times", c, n)
	}
}

func TestAll_ReturnsFreshSlice(t *testing.T) {
	t.Parallel()

	mutated := All()
	require.NotEmpty(t, mutated)
	mutated[0] = Command(0)

	// A second call must not observe the mutation.
	assert.Equal(t, KeyGet, All()[0])
}

func TestName_TotalOverEnumeration(t *testing.T) {
	t.Parallel()

	names := make(map[string]bool)
	for _, c := range All() {
		name := c.Name()
		require.NotEmpty(t, name)
		assert.False(t, names[name], "duplicate command name %q", name)
		names[name] = true
	}
}

func TestName_UnknownCommandPanics(t *testing.T) {
	t.Parallel()

	require.Panics(t, func() {
		_ = Command(0).Name()
	})
	require.Panics(t, func() {
		_ = Command(99).Name()
	})
}
