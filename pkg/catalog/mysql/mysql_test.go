package mysql

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/googleapis/spanner-sql-udf/pkg/catalog"
	"github.com/googleapis/spanner-sql-udf/pkg/spanner"
)

// TestCatalogWellFormed checks the structural invariants every shipped
// entry must hold. The lint rules enforce the same properties at run
// time; this test pins them at development time.
func TestCatalogWellFormed(t *testing.T) {
	entries := catalog.All()
	require.NotEmpty(t, entries)

	for _, e := range entries {
		t.Run(e.Name, func(t *testing.T) {
			assert.Equal(t, strings.ToLower(e.Name), e.Name, "names are lowercase")
			assert.True(t, spanner.IsIdentifier(e.Name), "name is a legal identifier")
			assert.False(t, spanner.IsBuiltin(e.Name), "name must not shadow a native function")
			assert.True(t, catalog.ValidCategory(e.Category), "category is known")
			assert.True(t, spanner.IsScalarType(e.Returns), "return type %q is scalar", e.Returns)
			assert.NotEmpty(t, strings.TrimSpace(e.Body), "body present")
			assert.NotEmpty(t, e.Doc, "doc present")

			seen := map[string]bool{}
			for _, p := range e.Params {
				assert.True(t, spanner.IsIdentifier(p.Name), "param %q", p.Name)
				assert.True(t, spanner.IsScalarType(p.Type), "param type %q", p.Type)
				assert.False(t, seen[p.Name], "param %q repeated", p.Name)
				seen[p.Name] = true
			}
		})
	}
}

func TestCatalogBodiesBalanced(t *testing.T) {
	for _, e := range catalog.All() {
		depth := 0
		for _, r := range e.Body {
			switch r {
			case '(':
				depth++
			case ')':
				depth--
			}
			if depth < 0 {
				break
			}
		}
		assert.Zero(t, depth, "unbalanced parentheses in %s", e.Name)
	}
}

func TestNullPolicyEntriesGuarded(t *testing.T) {
	for _, e := range catalog.All() {
		if e.ErrorPolicy != catalog.PolicyNull {
			continue
		}
		guarded := strings.Contains(e.Body, "SAFE.") || strings.Contains(e.Body, "NULL")
		assert.True(t, guarded, "%s declares the null policy but has no guard", e.Name)
	}
}

func TestCategoriesPopulated(t *testing.T) {
	for _, c := range catalog.Categories() {
		assert.NotEmpty(t, catalog.ByCategory(c), "category %s has no entries", c)
	}
}

func TestKnownEntriesPresent(t *testing.T) {
	// A sample from each category, including the renamed sha.
	for _, name := range []string{
		"pi", "conv", "truncate",
		"from_days", "date_format", "unix_timestamp",
		"substring_index", "find_in_set",
		"sha", "sha2",
		"json_valid",
		"uuid", "inet_aton",
	} {
		_, ok := catalog.Lookup(name)
		assert.True(t, ok, "entry %s missing", name)
	}

	// Names shadowing native functions stay out of the catalog.
	for _, name := range []string{"md5", "sha1", "to_base64", "left", "right", "format"} {
		_, ok := catalog.Lookup(name)
		assert.False(t, ok, "entry %s collides with a native function", name)
	}
}
