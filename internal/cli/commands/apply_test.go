package commands

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyCommand_RequiresDatabase(t *testing.T) {
	_, err := execute(t, NewApplyCommand(), testConfig(), "--dry-run")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no database configured")
}

func TestApplyCommand_DryRun(t *testing.T) {
	cfg := testConfig()
	cfg.Database = "projects/p/instances/i/databases/d"

	out, err := execute(t, NewApplyCommand(), cfg, "--dry-run")
	require.NoError(t, err)

	assert.Contains(t, out, "CREATE SCHEMA mysql;")
	assert.Contains(t, out, "CREATE OR REPLACE FUNCTION mysql.pi()")
	assert.NotContains(t, out, "applied", "dry run must not report an apply")
}

func TestApplyCommand_DryRunSkipSchema(t *testing.T) {
	cfg := testConfig()
	cfg.Database = "projects/p/instances/i/databases/d"

	out, err := execute(t, NewApplyCommand(), cfg, "--dry-run", "--skip-schema")
	require.NoError(t, err)

	assert.NotContains(t, out, "CREATE SCHEMA")
	assert.True(t, strings.HasPrefix(out, "CREATE OR REPLACE FUNCTION"))
}
