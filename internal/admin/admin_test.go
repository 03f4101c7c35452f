package admin

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBatches(t *testing.T) {
	stmts := func(n int) []string {
		out := make([]string, n)
		for i := range out {
			out[i] = fmt.Sprintf("stmt-%d", i)
		}
		return out
	}

	tests := []struct {
		name     string
		in       []string
		size     int
		wantLens []int
	}{
		{"empty", nil, 10, nil},
		{"single batch", stmts(3), 10, []int{3}},
		{"exact fit", stmts(10), 5, []int{5, 5}},
		{"remainder", stmts(12), 5, []int{5, 5, 2}},
		{"size one", stmts(3), 1, []int{1, 1, 1}},
		{"zero size means one batch", stmts(7), 0, []int{7}},
		{"negative size means one batch", stmts(7), -3, []int{7}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Batches(tt.in, tt.size)
			require.Len(t, got, len(tt.wantLens))

			var total int
			for i, batch := range got {
				assert.Len(t, batch, tt.wantLens[i])
				total += len(batch)
			}
			assert.Equal(t, len(tt.in), total)

			// Order must be preserved across batches.
			if len(tt.in) > 0 {
				assert.Equal(t, tt.in[0], got[0][0])
				last := got[len(got)-1]
				assert.Equal(t, tt.in[len(tt.in)-1], last[len(last)-1])
			}
		})
	}
}
