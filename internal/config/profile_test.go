package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeConfig drops an HCL file into a fresh config directory.
func writeConfig(t *testing.T, files map[string]string) string {
	t.Helper()

	dir := t.TempDir()
	for name, content := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o600))
	}
	return dir
}

func TestLoad_SingleProfile(t *testing.T) {
	t.Parallel()

	dir := writeConfig(t, map[string]string{
		"config.hcl": `
profile "default" {
  host  = "https://keeper.example.com"
  token = "secret"
}
`,
	})

	set, err := Load(context.Background(), dir)
	require.NoError(t, err)
	require.Equal(t, 1, set.Len())

	p, err := set.Select("default")
	require.NoError(t, err)
	assert.Equal(t, "https://keeper.example.com", p.Host)
	assert.Equal(t, "secret", p.Token)
}

func TestLoad_MergesMultipleFiles(t *testing.T) {
	t.Parallel()

	dir := writeConfig(t, map[string]string{
		"a.hcl": `
profile "prod" {
  host = "https://prod.example.com"
}
`,
		"b.hcl": `
profile "staging" {
  host = "https://staging.example.com"
}
`,
	})

	set, err := Load(context.Background(), dir)
	require.NoError(t, err)
	assert.Equal(t, 2, set.Len())

	p, err := set.Select("staging")
	require.NoError(t, err)
	assert.Equal(t, "https://staging.example.com", p.Host)
}

func TestLoad_TokenIsOptional(t *testing.T) {
	t.Parallel()

	dir := writeConfig(t, map[string]string{
		"config.hcl": `
profile "default" {
  host = "https://keeper.example.com"
}
`,
	})

	set, err := Load(context.Background(), dir)
	require.NoError(t, err)

	p, err := set.Select("default")
	require.NoError(t, err)
	assert.Empty(t, p.Token)
}

func TestLoad_EnvInterpolation(t *testing.T) {
	t.Setenv("KEEPER_TEST_TOKEN", "from-env")

	dir := writeConfig(t, map[string]string{
		"config.hcl": `
profile "default" {
  host  = "https://keeper.example.com"
  token = env.KEEPER_TEST_TOKEN
}
`,
	})

	set, err := Load(context.Background(), dir)
	require.NoError(t, err)

	p, err := set.Select("default")
	require.NoError(t, err)
	assert.Equal(t, "from-env", p.Token)
}

func TestLoad_DuplicateProfileFails(t *testing.T) {
	t.Parallel()

	dir := writeConfig(t, map[string]string{
		"config.hcl": `
profile "default" {
  host = "https://one.example.com"
}

profile "default" {
  host = "https://two.example.com"
}
`,
	})

	_, err := Load(context.Background(), dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate profile")
}

func TestLoad_EmptyHostFails(t *testing.T) {
	t.Parallel()

	dir := writeConfig(t, map[string]string{
		"config.hcl": `
profile "default" {
  host = ""
}
`,
	})

	_, err := Load(context.Background(), dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "empty host")
}

func TestLoad_MalformedHCLFails(t *testing.T) {
	t.Parallel()

	dir := writeConfig(t, map[string]string{
		"config.hcl": `profile "default" {`,
	})

	_, err := Load(context.Background(), dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse")
}

func TestLoad_MissingDirectoryYieldsEmptySet(t *testing.T) {
	t.Parallel()

	set, err := Load(context.Background(), filepath.Join(t.TempDir(), "does-not-exist"))
	require.NoError(t, err)
	assert.Equal(t, 0, set.Len())
}

func TestSelect_DefaultFromEmptySetIsNil(t *testing.T) {
	t.Parallel()

	set, err := Load(context.Background(), filepath.Join(t.TempDir(), "does-not-exist"))
	require.NoError(t, err)

	p, err := set.Select(DefaultProfileName)
	require.NoError(t, err)
	assert.Nil(t, p)
}

func TestSelect_UnknownProfileFails(t *testing.T) {
	t.Parallel()

	dir := writeConfig(t, map[string]string{
		"config.hcl": `
profile "prod" {
  host = "https://prod.example.com"
}
`,
	})

	set, err := Load(context.Background(), dir)
	require.NoError(t, err)

	_, err = set.Select("nope")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown profile "nope"`)
	assert.Contains(t, err.Error(), "prod")
}
