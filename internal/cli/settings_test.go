package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NikitaCOEUR/ding/internal/config"
	"github.com/NikitaCOEUR/ding/internal/logger"
)

func isolatedLoader(t *testing.T) *config.Loader {
	t.Helper()
	return config.New().WithGlobalPath(filepath.Join(t.TempDir(), "none.yml"))
}

func ptr[T any](v T) *T {
	return &v
}

func TestResolveSettings_ConfigOnly(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".ding.yml"), []byte("spec: petstore.yaml\npath_prefix: /api\njson: true\n"), 0644))

	s := ResolveSettings(dir, Overrides{}, isolatedLoader(t), logger.New("warn", &bytes.Buffer{}))
	assert.Equal(t, filepath.Join(dir, "petstore.yaml"), s.SpecPath)
	assert.Equal(t, "/api", s.PathPrefix)
	assert.True(t, s.JSON)
	assert.Equal(t, logger.DefaultLevel, s.LogLevel)
	assert.Equal(t, []string{filepath.Join(dir, ".ding.yml")}, s.ConfigFiles)
}

func TestResolveSettings_OverridesWin(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".ding.yml"), []byte("spec: petstore.yaml\njson: true\nlog_level: info\n"), 0644))

	s := ResolveSettings(dir, Overrides{
		SpecPath:   ptr("/other.yaml"),
		PathPrefix: ptr(""),
		LogLevel:   ptr("debug"),
		JSON:       ptr(false),
	}, isolatedLoader(t), logger.New("warn", &bytes.Buffer{}))

	assert.Equal(t, "/other.yaml", s.SpecPath)
	assert.Equal(t, "", s.PathPrefix)
	assert.Equal(t, "debug", s.LogLevel)
	assert.False(t, s.JSON)
}

func TestResolveSettings_InvalidConfigIsSkipped(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".ding.yml"), []byte("spec: [unclosed\n"), 0644))

	var logs bytes.Buffer
	s := ResolveSettings(dir, Overrides{SpecPath: ptr("api.yaml")}, isolatedLoader(t), logger.New("warn", &logs))

	assert.Equal(t, "api.yaml", s.SpecPath)
	assert.Empty(t, s.ConfigFiles)
	assert.Contains(t, logs.String(), "Ignoring configuration files")
}
