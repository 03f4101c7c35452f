// Package catalog defines the mapping table that describes how MySQL
// built-in functions are emulated as Cloud Spanner user-defined
// functions. Each Entry pairs a MySQL function name with a GoogleSQL
// expression body, the fixed signature the emulation supports, and the
// behavioral deviations the mapping accepts.
//
// The package holds only declarative data: entries are authored once,
// registered at init time, and consumed by the DDL renderer and the
// validation rules. Nothing here executes SQL.
package catalog

import (
	"fmt"
	"strings"
)

// Category classifies an entry by the MySQL reference-manual chapter it
// comes from. Categories are informational; they drive grouping in
// generated scripts and documentation, nothing else.
type Category string

// Entry categories, in the order generated scripts emit them.
const (
	CategoryNumeric    Category = "numeric"
	CategoryDateTime   Category = "datetime"
	CategoryString     Category = "string"
	CategoryEncryption Category = "encryption"
	CategoryJSON       Category = "json"
	CategoryMisc       Category = "misc"
)

// Categories returns all categories in emission order.
func Categories() []Category {
	return []Category{
		CategoryNumeric,
		CategoryDateTime,
		CategoryString,
		CategoryEncryption,
		CategoryJSON,
		CategoryMisc,
	}
}

// ValidCategory reports whether c is one of the known categories.
func ValidCategory(c Category) bool {
	for _, known := range Categories() {
		if c == known {
			return true
		}
	}
	return false
}

// ErrorPolicy describes what an entry does when it is handed input the
// emulated MySQL function would tolerate but the host engine would not.
type ErrorPolicy int

const (
	// PolicyError accepts the host engine's stricter behavior: invalid
	// input aborts the containing statement.
	PolicyError ErrorPolicy = iota
	// PolicyNull wraps the computation in a null-propagating guard so
	// invalid input yields NULL, matching MySQL's result.
	PolicyNull
)

// String returns the policy name used in listings and documentation.
func (p ErrorPolicy) String() string {
	switch p {
	case PolicyError:
		return "error"
	case PolicyNull:
		return "null"
	default:
		return "unknown"
	}
}

// Param is one typed parameter of an entry's fixed signature.
type Param struct {
	Name string
	Type string
}

// Entry is one named scalar mapping from a MySQL built-in to a
// GoogleSQL expression. The signature is fixed: no overloading, no
// variadic forms. Where the MySQL original is polymorphic, the mapping
// narrows to one shape and records the removed forms in Deviations.
type Entry struct {
	// Name is the MySQL function identifier, lowercase. Unique across
	// the whole catalog.
	Name string

	// Category is the informational classification tag.
	Category Category

	// Params is the ordered, fixed parameter list.
	Params []Param

	// Returns is the GoogleSQL type the expression produces.
	Returns string

	// Body is the GoogleSQL expression implementing the mapped
	// behavior, written in terms of the parameter names.
	Body string

	// Doc is a one-line description used in generated comments.
	Doc string

	// Deviations lists documented behavioral differences from the
	// MySQL original: narrowed signatures, shifted error boundaries,
	// locale or time-zone fixations.
	Deviations []string

	// ErrorPolicy records the entry's chosen bad-input behavior.
	ErrorPolicy ErrorPolicy
}

// Arity returns the number of parameters.
func (e Entry) Arity() int { return len(e.Params) }

// Signature renders the entry as "name(param TYPE, ...)".
func (e Entry) Signature() string {
	parts := make([]string, len(e.Params))
	for i, p := range e.Params {
		parts[i] = fmt.Sprintf("%s %s", p.Name, p.Type)
	}
	return fmt.Sprintf("%s(%s)", e.Name, strings.Join(parts, ", "))
}
