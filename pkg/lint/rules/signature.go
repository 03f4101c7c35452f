package rules

import (
	"fmt"

	"github.com/googleapis/spanner-sql-udf/pkg/catalog"
	"github.com/googleapis/spanner-sql-udf/pkg/lint"
	"github.com/googleapis/spanner-sql-udf/pkg/spanner"
)

func init() {
	lint.Register(lint.RuleDef{
		ID:          "catalog/param-names",
		Description: "Parameter names must be unique legal identifiers",
		Severity:    lint.SeverityError,
		Check:       checkParamNames,
	})
	lint.Register(lint.RuleDef{
		ID:          "catalog/known-types",
		Description: "Parameter and return types must be GoogleSQL scalar types",
		Severity:    lint.SeverityError,
		Check:       checkKnownTypes,
	})
}

func checkParamNames(e catalog.Entry) []string {
	var out []string
	seen := make(map[string]bool, len(e.Params))
	for _, p := range e.Params {
		if !spanner.IsIdentifier(p.Name) {
			out = append(out, fmt.Sprintf("parameter name %q is not a legal identifier", p.Name))
		}
		if seen[p.Name] {
			out = append(out, fmt.Sprintf("duplicate parameter name %q", p.Name))
		}
		seen[p.Name] = true
	}
	return out
}

func checkKnownTypes(e catalog.Entry) []string {
	var out []string
	for _, p := range e.Params {
		if !spanner.IsScalarType(p.Type) {
			out = append(out, fmt.Sprintf("parameter %s has unknown type %q", p.Name, p.Type))
		}
	}
	if !spanner.IsScalarType(e.Returns) {
		out = append(out, fmt.Sprintf("unknown return type %q", e.Returns))
	}
	return out
}
