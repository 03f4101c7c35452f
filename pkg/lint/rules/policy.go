package rules

import (
	"strings"

	"github.com/googleapis/spanner-sql-udf/pkg/catalog"
	"github.com/googleapis/spanner-sql-udf/pkg/lint"
)

func init() {
	lint.Register(lint.RuleDef{
		ID:          "catalog/abort-documented",
		Description: "Entries that abort via ERROR() must document the behavior as a deviation",
		Severity:    lint.SeverityWarning,
		Check:       checkAbortDocumented,
	})
	lint.Register(lint.RuleDef{
		ID:          "catalog/null-guarded",
		Description: "PolicyNull entries must carry a SAFE. or NULL guard in the body",
		Severity:    lint.SeverityError,
		Check:       checkNullGuarded,
	})
	lint.Register(lint.RuleDef{
		ID:          "catalog/doc-present",
		Description: "Entries must have a one-line description",
		Severity:    lint.SeverityWarning,
		Check:       checkDocPresent,
	})
}

func checkAbortDocumented(e catalog.Entry) []string {
	if strings.Contains(stripLiterals(e.Body), "ERROR(") && len(e.Deviations) == 0 {
		return []string{"body aborts via ERROR() but no deviation documents when"}
	}
	return nil
}

func checkNullGuarded(e catalog.Entry) []string {
	if e.ErrorPolicy != catalog.PolicyNull {
		return nil
	}
	stripped := stripLiterals(e.Body)
	if strings.Contains(stripped, "SAFE.") || strings.Contains(stripped, "NULL") {
		return nil
	}
	return []string{"declared PolicyNull but the body has no SAFE. call or NULL guard"}
}

func checkDocPresent(e catalog.Entry) []string {
	if strings.TrimSpace(e.Doc) == "" {
		return []string{"missing description"}
	}
	return nil
}
