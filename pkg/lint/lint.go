// Package lint provides data-driven validation for the catalog. Rules
// are stateless definitions checked per entry; the Analyzer runs every
// registered rule over a set of entries and collects diagnostics.
//
// Rule implementations live in the rules subpackage to keep this
// package free of policy; register them by importing it with a blank
// identifier:
//
//	import _ "github.com/googleapis/spanner-sql-udf/pkg/lint/rules"
package lint

import "github.com/googleapis/spanner-sql-udf/pkg/catalog"

// Severity indicates the importance of a diagnostic.
type Severity int

// Severity levels for diagnostics.
const (
	// SeverityError indicates a defect that must be fixed before the
	// catalog can be deployed.
	SeverityError Severity = iota
	// SeverityWarning indicates a potential issue that should be
	// reviewed.
	SeverityWarning
	// SeverityInfo indicates informational feedback.
	SeverityInfo
)

// String returns the string representation of the severity.
func (s Severity) String() string {
	switch s {
	case SeverityError:
		return "error"
	case SeverityWarning:
		return "warning"
	case SeverityInfo:
		return "info"
	default:
		return "unknown"
	}
}

// RuleDef is a data-driven rule definition. Rules are stateless - all
// context comes via the Check function parameters.
type RuleDef struct {
	ID          string    // Unique identifier, e.g. "catalog/builtin-collision"
	Description string    // Human-readable description
	Severity    Severity  // Default severity
	Check       CheckFunc // The check function
}

// CheckFunc analyzes one entry and returns any findings as messages.
// The analyzer attaches rule ID, severity and entry name.
type CheckFunc func(e catalog.Entry) []string

// Diagnostic represents one finding.
type Diagnostic struct {
	RuleID   string
	Severity Severity
	Entry    string
	Message  string
}
