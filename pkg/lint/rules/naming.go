package rules

import (
	"fmt"
	"strings"

	"github.com/googleapis/spanner-sql-udf/pkg/catalog"
	"github.com/googleapis/spanner-sql-udf/pkg/lint"
	"github.com/googleapis/spanner-sql-udf/pkg/spanner"
)

func init() {
	lint.Register(lint.RuleDef{
		ID:          "catalog/identifier",
		Description: "Entry names must be legal lowercase identifiers",
		Severity:    lint.SeverityError,
		Check:       checkIdentifier,
	})
	lint.Register(lint.RuleDef{
		ID:          "catalog/builtin-collision",
		Description: "Entry names must not collide with native GoogleSQL functions",
		Severity:    lint.SeverityError,
		Check:       checkBuiltinCollision,
	})
	lint.Register(lint.RuleDef{
		ID:          "catalog/category",
		Description: "Entries must carry a known category",
		Severity:    lint.SeverityError,
		Check:       checkCategory,
	})
}

func checkIdentifier(e catalog.Entry) []string {
	var out []string
	if !spanner.IsIdentifier(e.Name) {
		out = append(out, fmt.Sprintf("name %q is not a legal identifier", e.Name))
	}
	if e.Name != strings.ToLower(e.Name) {
		out = append(out, fmt.Sprintf("name %q must be lowercase", e.Name))
	}
	return out
}

func checkBuiltinCollision(e catalog.Entry) []string {
	if spanner.IsBuiltin(e.Name) {
		return []string{fmt.Sprintf("name %q collides with a native GoogleSQL function", e.Name)}
	}
	return nil
}

func checkCategory(e catalog.Entry) []string {
	if !catalog.ValidCategory(e.Category) {
		return []string{fmt.Sprintf("unknown category %q", e.Category)}
	}
	return nil
}
