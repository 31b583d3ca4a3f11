package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NikitaCOEUR/ding/internal/derrors"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func TestConfig_LoadYAML(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, ".ding.yml")
	writeFile(t, configPath, `spec: api/openapi.yaml
path_prefix: /api/v1
json: true
log_level: debug
`)

	cfg, err := New().Load(configPath)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(tmpDir, "api", "openapi.yaml"), cfg.Spec)
	assert.Equal(t, "/api/v1", cfg.PathPrefix)
	assert.True(t, cfg.JSONOutput())
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.False(t, cfg.LocalOnly)
}

func TestConfig_LoadTOML(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, ".ding.toml")
	writeFile(t, configPath, `spec = "/abs/openapi.json"
local_only = true
`)

	cfg, err := New().Load(configPath)
	require.NoError(t, err)
	assert.Equal(t, "/abs/openapi.json", cfg.Spec)
	assert.True(t, cfg.LocalOnly)
	assert.Nil(t, cfg.JSON)
	assert.False(t, cfg.JSONOutput())
}

func TestConfig_LoadJSON(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, ".ding.json")
	writeFile(t, configPath, `{"spec": "petstore.yaml", "json": false}`)

	cfg, err := New().Load(configPath)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(tmpDir, "petstore.yaml"), cfg.Spec)
	require.NotNil(t, cfg.JSON)
	assert.False(t, *cfg.JSON)
}

func TestConfig_LoadErrors(t *testing.T) {
	tmpDir := t.TempDir()
	badPath := filepath.Join(tmpDir, ".ding.yml")
	writeFile(t, badPath, "spec: [unclosed")
	iniPath := filepath.Join(tmpDir, "config.ini")
	writeFile(t, iniPath, "spec=x")

	for _, path := range []string{filepath.Join(tmpDir, "missing.yml"), badPath, iniPath} {
		_, err := New().Load(path)
		require.Error(t, err, path)
		var cfgErr *derrors.ConfigurationError
		assert.ErrorAs(t, err, &cfgErr)
	}
}

func TestConfig_Merge(t *testing.T) {
	on := true
	off := false
	parent := &Config{Spec: "/p.yaml", PathPrefix: "/api", JSON: &on, LogLevel: "info"}
	child := &Config{Spec: "/c.yaml", JSON: &off}

	merged := Merge(parent, child)
	assert.Equal(t, "/c.yaml", merged.Spec)
	assert.Equal(t, "/api", merged.PathPrefix)
	assert.False(t, merged.JSONOutput())
	assert.Equal(t, "info", merged.LogLevel)

	// parent untouched
	assert.Equal(t, "/p.yaml", parent.Spec)
}

func TestConfig_MergeWithLocalOnly(t *testing.T) {
	parent := &Config{Spec: "/p.yaml", PathPrefix: "/api"}
	child := &Config{LocalOnly: true}

	merged := Merge(parent, child)
	assert.Same(t, child, merged)
	assert.Empty(t, merged.Spec)
}

func TestFindConfigFiles(t *testing.T) {
	tmpDir := t.TempDir()
	sub := filepath.Join(tmpDir, "a", "b")
	writeFile(t, filepath.Join(tmpDir, ".ding.yml"), "spec: root.yaml")
	writeFile(t, filepath.Join(tmpDir, ".ding.json"), `{}`)
	writeFile(t, filepath.Join(sub, ".ding.toml"), `spec = "leaf.yaml"`)

	files := FindConfigFiles(sub)
	require.GreaterOrEqual(t, len(files), 2)
	// Only one config per directory, preferred name first
	tail := files[len(files)-2:]
	assert.Equal(t, filepath.Join(tmpDir, ".ding.yml"), tail[0])
	assert.Equal(t, filepath.Join(sub, ".ding.toml"), tail[1])
}

func TestHasLocalConfig(t *testing.T) {
	tmpDir := t.TempDir()
	assert.False(t, HasLocalConfig(tmpDir))

	writeFile(t, filepath.Join(tmpDir, ".ding.yaml"), "json: true")
	assert.True(t, HasLocalConfig(tmpDir))
}

func TestGetGlobalConfigPath(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg")

	path, err := GetGlobalConfigPath()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("/tmp/xdg", "ding", GlobalConfigName), path)
}

func TestConfig_LoadHierarchy_WithGlobal(t *testing.T) {
	tmpDir := t.TempDir()
	globalPath := filepath.Join(tmpDir, "global", "config.yml")
	writeFile(t, globalPath, "log_level: info\npath_prefix: /global\n")

	project := filepath.Join(tmpDir, "project")
	writeFile(t, filepath.Join(project, ".ding.yml"), "spec: openapi.yaml\n")
	leaf := filepath.Join(project, "svc")
	writeFile(t, filepath.Join(leaf, ".ding.yml"), "path_prefix: /svc\n")

	cfg, files, err := New().WithGlobalPath(globalPath).LoadHierarchy(leaf)
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(project, "openapi.yaml"), cfg.Spec)
	assert.Equal(t, "/svc", cfg.PathPrefix)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, globalPath, files[0])
	assert.Equal(t, filepath.Join(leaf, ".ding.yml"), files[len(files)-1])
}

func TestConfig_LoadHierarchy_LocalOnly(t *testing.T) {
	tmpDir := t.TempDir()
	globalPath := filepath.Join(tmpDir, "global", "config.yml")
	writeFile(t, globalPath, "log_level: info\n")

	project := filepath.Join(tmpDir, "project")
	writeFile(t, filepath.Join(project, ".ding.yml"), "spec: parent.yaml\n")
	leaf := filepath.Join(project, "svc")
	writeFile(t, filepath.Join(leaf, ".ding.yml"), "local_only: true\nspec: leaf.yaml\n")

	cfg, files, err := New().WithGlobalPath(globalPath).LoadHierarchy(leaf)
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(leaf, "leaf.yaml"), cfg.Spec)
	assert.Empty(t, cfg.LogLevel)
	assert.Equal(t, []string{filepath.Join(leaf, ".ding.yml")}, files)
}

func TestConfig_LoadHierarchy_NoConfigs(t *testing.T) {
	tmpDir := t.TempDir()

	cfg, files, err := New().WithGlobalPath(filepath.Join(tmpDir, "none.yml")).LoadHierarchy(tmpDir)
	require.NoError(t, err)
	require.NotNil(t, cfg)
	assert.Empty(t, cfg.Spec)
	for _, f := range files {
		assert.NotContains(t, f, tmpDir)
	}
}

func TestConfig_LoadHierarchy_InvalidGlobal(t *testing.T) {
	tmpDir := t.TempDir()
	globalPath := filepath.Join(tmpDir, "config.yml")
	writeFile(t, globalPath, "spec: [unclosed")

	_, _, err := New().WithGlobalPath(globalPath).LoadHierarchy(tmpDir)
	assert.Error(t, err)
}
