package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testEntry(name string, cat Category) Entry {
	return Entry{
		Name:     name,
		Category: cat,
		Returns:  "INT64",
		Body:     "1",
	}
}

func TestRegistryRegisterAndLookup(t *testing.T) {
	r := NewRegistry()
	r.Register(testEntry("alpha", CategoryNumeric))
	r.Register(testEntry("beta", CategoryString))

	e, ok := r.Lookup("alpha")
	require.True(t, ok)
	assert.Equal(t, "alpha", e.Name)

	_, ok = r.Lookup("gamma")
	assert.False(t, ok)
	assert.Equal(t, 2, r.Len())
}

func TestRegistryDuplicatePanics(t *testing.T) {
	r := NewRegistry()
	r.Register(testEntry("alpha", CategoryNumeric))

	assert.PanicsWithValue(t, "catalog: duplicate entry: alpha", func() {
		r.Register(testEntry("alpha", CategoryString))
	})
}

func TestRegistryNamesSorted(t *testing.T) {
	r := NewRegistry()
	r.Register(testEntry("zeta", CategoryMisc))
	r.Register(testEntry("alpha", CategoryMisc))
	r.Register(testEntry("mid", CategoryMisc))

	assert.Equal(t, []string{"alpha", "mid", "zeta"}, r.Names())

	all := r.All()
	require.Len(t, all, 3)
	assert.Equal(t, "alpha", all[0].Name)
	assert.Equal(t, "zeta", all[2].Name)
}

func TestRegistryByCategory(t *testing.T) {
	r := NewRegistry()
	r.Register(testEntry("cot", CategoryNumeric))
	r.Register(testEntry("elt", CategoryString))
	r.Register(testEntry("conv", CategoryNumeric))

	numeric := r.ByCategory(CategoryNumeric)
	require.Len(t, numeric, 2)
	assert.Equal(t, "conv", numeric[0].Name)
	assert.Equal(t, "cot", numeric[1].Name)

	assert.Empty(t, r.ByCategory(CategoryJSON))
}

func TestResolveUnknown(t *testing.T) {
	_, err := Resolve([]string{"definitely_not_registered"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown function")
}
