package commands

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateCommand(t *testing.T) {
	out, err := execute(t, NewGenerateCommand(), testConfig())
	require.NoError(t, err)

	assert.Contains(t, out, "CREATE SCHEMA mysql;")
	assert.Contains(t, out, "CREATE OR REPLACE FUNCTION mysql.pi()")
	assert.Contains(t, out, "CREATE OR REPLACE FUNCTION mysql.from_days(n INT64)")
	assert.Contains(t, out, "SQL SECURITY INVOKER")

	// Schema comes before the first function.
	assert.Less(t, strings.Index(out, "CREATE SCHEMA"), strings.Index(out, "CREATE OR REPLACE FUNCTION"))
}

func TestGenerateCommand_SkipSchema(t *testing.T) {
	out, err := execute(t, NewGenerateCommand(), testConfig(), "--skip-schema")
	require.NoError(t, err)

	assert.NotContains(t, out, "CREATE SCHEMA")
	assert.Contains(t, out, "CREATE OR REPLACE FUNCTION")
}

func TestGenerateCommand_CustomSchema(t *testing.T) {
	cfg := testConfig()
	cfg.Schema = "compat"

	out, err := execute(t, NewGenerateCommand(), cfg)
	require.NoError(t, err)

	assert.Contains(t, out, "CREATE SCHEMA compat;")
	assert.Contains(t, out, "FUNCTION compat.pi()")
	assert.NotContains(t, out, "mysql.")
}

func TestGenerateCommand_ToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "install.sql")

	out, err := execute(t, NewGenerateCommand(), testConfig(), "--file", path)
	require.NoError(t, err)
	assert.NotContains(t, out, "CREATE SCHEMA", "script should go to the file, not stdout")

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(content), "CREATE SCHEMA mysql;")
}

func TestGenerateCommand_NothingSelected(t *testing.T) {
	cfg := testConfig()
	cfg.Categories = []string{"numeric"}
	cfg.Exclude = func() []string {
		var names []string
		for _, e := range SelectEntries(cfg) {
			names = append(names, e.Name)
		}
		return names
	}()

	_, err := execute(t, NewGenerateCommand(), cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no functions selected")
}
