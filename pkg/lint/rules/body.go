package rules

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/googleapis/spanner-sql-udf/pkg/catalog"
	"github.com/googleapis/spanner-sql-udf/pkg/lint"
)

func init() {
	lint.Register(lint.RuleDef{
		ID:          "catalog/body-present",
		Description: "Entries must have a non-empty expression body",
		Severity:    lint.SeverityError,
		Check:       checkBodyPresent,
	})
	lint.Register(lint.RuleDef{
		ID:          "catalog/balanced-parens",
		Description: "Expression bodies must have balanced parentheses",
		Severity:    lint.SeverityError,
		Check:       checkBalancedParens,
	})
	lint.Register(lint.RuleDef{
		ID:          "catalog/single-expression",
		Description: "Expression bodies must be a single expression, no statements",
		Severity:    lint.SeverityError,
		Check:       checkSingleExpression,
	})
	lint.Register(lint.RuleDef{
		ID:          "catalog/param-referenced",
		Description: "Every declared parameter must appear in the body",
		Severity:    lint.SeverityError,
		Check:       checkParamReferenced,
	})
}

func checkBodyPresent(e catalog.Entry) []string {
	if strings.TrimSpace(e.Body) == "" {
		return []string{"empty body"}
	}
	return nil
}

// stripLiterals removes single- and double-quoted literal runs so that
// quoted parentheses and semicolons do not confuse the body checks.
// GoogleSQL backslash escapes inside literals are honored.
func stripLiterals(body string) string {
	var b strings.Builder
	var quote byte
	escaped := false
	for i := 0; i < len(body); i++ {
		c := body[i]
		if quote != 0 {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == quote:
				quote = 0
			}
			continue
		}
		if c == '\'' || c == '"' {
			quote = c
			continue
		}
		b.WriteByte(c)
	}
	return b.String()
}

func checkBalancedParens(e catalog.Entry) []string {
	depth := 0
	for _, c := range stripLiterals(e.Body) {
		switch c {
		case '(':
			depth++
		case ')':
			depth--
			if depth < 0 {
				return []string{"unbalanced parentheses: ')' before '('"}
			}
		}
	}
	if depth != 0 {
		return []string{fmt.Sprintf("unbalanced parentheses: %d unclosed", depth)}
	}
	return nil
}

func checkSingleExpression(e catalog.Entry) []string {
	if strings.Contains(stripLiterals(e.Body), ";") {
		return []string{"body contains a semicolon; entries are single expressions"}
	}
	return nil
}

func checkParamReferenced(e catalog.Entry) []string {
	stripped := stripLiterals(e.Body)
	var out []string
	for _, p := range e.Params {
		re := regexp.MustCompile(`\b` + regexp.QuoteMeta(p.Name) + `\b`)
		if !re.MatchString(stripped) {
			out = append(out, fmt.Sprintf("parameter %s is never referenced in the body", p.Name))
		}
	}
	return out
}
