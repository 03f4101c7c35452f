package commands

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDescribeCommand(t *testing.T) {
	out, err := execute(t, NewDescribeCommand(), testConfig(), "from_days")
	require.NoError(t, err)

	assert.Contains(t, out, "from_days(n INT64) -> DATE")
	assert.Contains(t, out, "Deviations from MySQL:")
	assert.Contains(t, out, "CREATE OR REPLACE FUNCTION mysql.from_days")
}

func TestDescribeCommand_JSON(t *testing.T) {
	cfg := testConfig()
	cfg.OutputFormat = "json"

	out, err := execute(t, NewDescribeCommand(), cfg, "sha2")
	require.NoError(t, err)

	var detail struct {
		Name      string `json:"name"`
		Category  string `json:"category"`
		Signature string `json:"signature"`
		Policy    string `json:"error_policy"`
		DDL       string `json:"ddl"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &detail))

	assert.Equal(t, "sha2", detail.Name)
	assert.Equal(t, "encryption", detail.Category)
	assert.Equal(t, "null", detail.Policy)
	assert.Contains(t, detail.DDL, "CREATE OR REPLACE FUNCTION mysql.sha2")
}

func TestDescribeCommand_Unknown(t *testing.T) {
	_, err := execute(t, NewDescribeCommand(), testConfig(), "no_such_fn")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown function")
}

func TestDescribeCommand_RequiresArg(t *testing.T) {
	_, err := execute(t, NewDescribeCommand(), testConfig())
	assert.Error(t, err)
}
