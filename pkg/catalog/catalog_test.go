package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSignature(t *testing.T) {
	tests := []struct {
		name  string
		entry Entry
		want  string
	}{
		{
			name:  "no params",
			entry: Entry{Name: "pi"},
			want:  "pi()",
		},
		{
			name: "single param",
			entry: Entry{
				Name:   "degrees",
				Params: []Param{{Name: "x", Type: "FLOAT64"}},
			},
			want: "degrees(x FLOAT64)",
		},
		{
			name: "multiple params",
			entry: Entry{
				Name: "locate",
				Params: []Param{
					{Name: "substr", Type: "STRING"},
					{Name: "str", Type: "STRING"},
				},
			},
			want: "locate(substr STRING, str STRING)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.entry.Signature())
			assert.Equal(t, len(tt.entry.Params), tt.entry.Arity())
		})
	}
}

func TestErrorPolicyString(t *testing.T) {
	assert.Equal(t, "error", PolicyError.String())
	assert.Equal(t, "null", PolicyNull.String())
	assert.Equal(t, "unknown", ErrorPolicy(99).String())
}

func TestValidCategory(t *testing.T) {
	for _, c := range Categories() {
		assert.True(t, ValidCategory(c), "category %s", c)
	}
	assert.False(t, ValidCategory("geometry"))
	assert.False(t, ValidCategory(""))
}
