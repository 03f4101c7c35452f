package mysql

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/googleapis/spanner-sql-udf/pkg/catalog"
)

func TestStringEntrySignatures(t *testing.T) {
	tests := []struct {
		name    string
		sig     string
		returns string
	}{
		{"concat_ws", "concat_ws(separator STRING, s1 STRING, s2 STRING)", "STRING"},
		{"locate", "locate(substr STRING, str STRING)", "INT64"},
		{"substring_index", "substring_index(str STRING, delim STRING, count INT64)", "STRING"},
		{"find_in_set", "find_in_set(needle STRING, strlist STRING)", "INT64"},
		{"strcmp", "strcmp(s1 STRING, s2 STRING)", "INT64"},
		{"ord", "ord(str STRING)", "INT64"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, ok := catalog.Lookup(tt.name)
			require.True(t, ok)
			assert.Equal(t, catalog.CategoryString, e.Category)
			assert.Equal(t, tt.sig, e.Signature())
			assert.Equal(t, tt.returns, e.Returns)
		})
	}
}

func TestSubstringIndexUsesArraySplit(t *testing.T) {
	e, ok := catalog.Lookup("substring_index")
	require.True(t, ok)
	assert.Contains(t, e.Body, "SPLIT(str, delim)")
	assert.Contains(t, e.Body, "ARRAY_TO_STRING")
}

func TestFindInSetEnumeratesWithOffset(t *testing.T) {
	e, ok := catalog.Lookup("find_in_set")
	require.True(t, ok)
	assert.Contains(t, e.Body, "UNNEST(SPLIT(strlist, ','))")
	assert.Contains(t, e.Body, "WITH OFFSET")
}

func TestUnhexIsNullOnBadInput(t *testing.T) {
	e, ok := catalog.Lookup("unhex")
	require.True(t, ok)
	assert.Equal(t, catalog.PolicyNull, e.ErrorPolicy)
	assert.Contains(t, e.Body, "SAFE.FROM_HEX")
}
