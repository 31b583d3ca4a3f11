package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWidget_Zsh(t *testing.T) {
	var out bytes.Buffer
	err := Widget(WidgetParams{Shell: "zsh", Key: "^X^D", SpecPath: "/srv/openapi.yaml", Output: &out})
	require.NoError(t, err)

	code := out.String()
	assert.Contains(t, code, "--spec /srv/openapi.yaml --json")
	assert.Contains(t, code, "bindkey '^X^D' __ding_complete")
}

func TestWidget_RelativeSpecIsMadeAbsolute(t *testing.T) {
	wd, err := os.Getwd()
	require.NoError(t, err)

	var out bytes.Buffer
	err = Widget(WidgetParams{Shell: "bash", Key: "^X^D", SpecPath: "petstore.yaml", PathPrefix: "/api", Output: &out})
	require.NoError(t, err)

	code := out.String()
	assert.Contains(t, code, filepath.Join(wd, "petstore.yaml"))
	assert.Contains(t, code, "--path-prefix /api")
	assert.Contains(t, code, "READLINE_LINE")
}

func TestWidget_UnsupportedShell(t *testing.T) {
	err := Widget(WidgetParams{Shell: "tcsh", Key: "^X^D", Output: &bytes.Buffer{}})
	assert.Error(t, err)
}
