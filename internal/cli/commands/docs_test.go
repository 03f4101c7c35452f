package commands

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestDocsCommand_Markdown(t *testing.T) {
	out, err := execute(t, NewDocsCommand(), testConfig())
	require.NoError(t, err)

	assert.Contains(t, out, "# MySQL compatibility functions")
	assert.Contains(t, out, "## Numeric")
	assert.Contains(t, out, "### mysql.pi()")
	assert.Contains(t, out, "> Deviation:")

	// Categories come out in emission order, not alphabetically.
	assert.Less(t, strings.Index(out, "## Numeric"), strings.Index(out, "## Datetime"))
	assert.Less(t, strings.Index(out, "## Datetime"), strings.Index(out, "## Misc"))
}

func TestDocsCommand_YAML(t *testing.T) {
	out, err := execute(t, NewDocsCommand(), testConfig(), "--format", "yaml")
	require.NoError(t, err)

	var entries []struct {
		Name      string `yaml:"name"`
		Category  string `yaml:"category"`
		Signature string `yaml:"signature"`
		Returns   string `yaml:"returns"`
		Policy    string `yaml:"error_policy"`
	}
	require.NoError(t, yaml.Unmarshal([]byte(out), &entries))
	require.NotEmpty(t, entries)

	found := false
	for _, e := range entries {
		assert.NotEmpty(t, e.Signature)
		if e.Name == "date_format" {
			found = true
			assert.Equal(t, "datetime", e.Category)
			assert.Equal(t, "STRING", e.Returns)
		}
	}
	assert.True(t, found, "date_format should be documented")
}

func TestDocsCommand_ToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "reference.md")

	_, err := execute(t, NewDocsCommand(), testConfig(), "--file", path)
	require.NoError(t, err)

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(content), "# MySQL compatibility functions")
}

func TestDocsCommand_UnknownFormat(t *testing.T) {
	_, err := execute(t, NewDocsCommand(), testConfig(), "--format", "pdf")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown docs format")
}
