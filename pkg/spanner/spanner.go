// Package spanner records the facts about the Cloud Spanner GoogleSQL
// dialect that the catalog depends on: the scalar types usable in
// function signatures, identifier rules, and the native function names
// that catalog entries must not collide with.
//
// This package is pure data with no client dependencies, so the
// catalog and its validation rules can be used without a database
// connection.
package spanner

import "regexp"

// DefaultSchema is the named schema the emulation functions live in.
// The schema must be created before any function referencing it.
const DefaultSchema = "mysql"

// scalarTypes are the GoogleSQL types allowed in UDF signatures.
var scalarTypes = map[string]bool{
	"BOOL":      true,
	"BYTES":     true,
	"DATE":      true,
	"FLOAT32":   true,
	"FLOAT64":   true,
	"INT64":     true,
	"JSON":      true,
	"NUMERIC":   true,
	"STRING":    true,
	"TIMESTAMP": true,
}

// IsScalarType reports whether t is a GoogleSQL scalar type legal in a
// function signature.
func IsScalarType(t string) bool { return scalarTypes[t] }

// identifierRE matches unquoted GoogleSQL identifiers. Catalog names
// additionally stay lowercase by convention, checked separately.
var identifierRE = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9_]*$`)

// IsIdentifier reports whether s is a legal unquoted identifier.
func IsIdentifier(s string) bool { return identifierRE.MatchString(s) }
