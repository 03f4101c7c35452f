// Package ddl renders catalog entries as Cloud Spanner DDL: a schema
// statement, one idempotent CREATE OR REPLACE FUNCTION per entry, and
// the matching DROP statements. Rendering is deterministic so that
// regenerating an unchanged catalog produces byte-identical output.
package ddl

import (
	"fmt"
	"sort"
	"strings"

	"github.com/googleapis/spanner-sql-udf/pkg/catalog"
)

// CreateSchema renders the statement that declares the named schema.
// It must run before any function referencing the schema.
func CreateSchema(schema string) string {
	return fmt.Sprintf("CREATE SCHEMA %s", schema)
}

// DropSchema renders the statement that removes the schema. The schema
// must be empty first.
func DropSchema(schema string) string {
	return fmt.Sprintf("DROP SCHEMA %s", schema)
}

// CreateFunction renders one entry as an idempotent create-or-replace
// statement. Redeclaring a name fully replaces its prior definition.
func CreateFunction(schema string, e catalog.Entry) string {
	params := make([]string, len(e.Params))
	for i, p := range e.Params {
		params[i] = fmt.Sprintf("%s %s", p.Name, p.Type)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "CREATE OR REPLACE FUNCTION %s.%s(%s)\n", schema, e.Name, strings.Join(params, ", "))
	fmt.Fprintf(&b, "RETURNS %s\n", e.Returns)
	b.WriteString("SQL SECURITY INVOKER\n")
	b.WriteString("AS (\n")
	for _, line := range strings.Split(e.Body, "\n") {
		b.WriteString("  ")
		b.WriteString(line)
		b.WriteString("\n")
	}
	b.WriteString(")")
	return b.String()
}

// DropFunction renders the statement that removes one entry by name.
func DropFunction(schema, name string) string {
	return fmt.Sprintf("DROP FUNCTION %s.%s", schema, name)
}

// comment renders the documentation block above a function: signature,
// description, and every documented deviation from MySQL.
func comment(e catalog.Entry) string {
	var b strings.Builder
	fmt.Fprintf(&b, "-- %s -> %s\n", e.Signature(), e.Returns)
	if e.Doc != "" {
		fmt.Fprintf(&b, "-- %s\n", e.Doc)
	}
	for _, d := range e.Deviations {
		fmt.Fprintf(&b, "-- Deviation: %s\n", d)
	}
	return b.String()
}

// ordered returns entries grouped by category in emission order, sorted
// by name within each category.
func ordered(entries []catalog.Entry) []catalog.Entry {
	byCat := make(map[catalog.Category][]catalog.Entry)
	for _, e := range entries {
		byCat[e.Category] = append(byCat[e.Category], e)
	}
	var out []catalog.Entry
	for _, c := range catalog.Categories() {
		group := byCat[c]
		sort.Slice(group, func(i, j int) bool { return group[i].Name < group[j].Name })
		out = append(out, group...)
	}
	return out
}

// ScriptOptions control installation-script rendering.
type ScriptOptions struct {
	// SkipSchema omits the leading CREATE SCHEMA statement, for
	// databases where the schema already exists.
	SkipSchema bool
}

// Script renders the full installation script for the given entries:
// header, schema declaration, then every function grouped by category
// with its documentation comment.
func Script(schema string, entries []catalog.Entry, opts ScriptOptions) string {
	var b strings.Builder
	b.WriteString("-- MySQL compatibility functions for Cloud Spanner (GoogleSQL dialect).\n")
	b.WriteString("-- Generated by spannerudf; do not edit by hand.\n\n")

	if !opts.SkipSchema {
		b.WriteString(CreateSchema(schema))
		b.WriteString(";\n\n")
	}

	var last catalog.Category
	for _, e := range ordered(entries) {
		if e.Category != last {
			fmt.Fprintf(&b, "---- %s functions\n\n", e.Category)
			last = e.Category
		}
		b.WriteString(comment(e))
		b.WriteString(CreateFunction(schema, e))
		b.WriteString(";\n\n")
	}
	return b.String()
}

// Statements returns the script as a statement list without trailing
// semicolons, the form the database admin API consumes.
func Statements(schema string, entries []catalog.Entry, opts ScriptOptions) []string {
	var stmts []string
	if !opts.SkipSchema {
		stmts = append(stmts, CreateSchema(schema))
	}
	for _, e := range ordered(entries) {
		stmts = append(stmts, CreateFunction(schema, e))
	}
	return stmts
}

// DropStatements returns the statements that remove the given entries,
// and optionally the schema itself once it is empty.
func DropStatements(schema string, entries []catalog.Entry, withSchema bool) []string {
	var stmts []string
	for _, e := range ordered(entries) {
		stmts = append(stmts, DropFunction(schema, e.Name))
	}
	if withSchema {
		stmts = append(stmts, DropSchema(schema))
	}
	return stmts
}
