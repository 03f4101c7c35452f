// Package mysql holds the catalog entries: one per emulated MySQL
// built-in, grouped into one file per category. Importing the package
// registers every entry with the default catalog registry.
//
// Entries follow a few house rules:
//
//   - Where GoogleSQL lacks an exact primitive, the body derives it
//     algebraically (ACOS(-1) reconstructs pi for the trigonometric
//     conversions).
//   - Where MySQL tolerates malformed input by returning NULL but the
//     host engine would raise, the entry either keeps the stricter
//     behavior (PolicyError) or guards the computation with SAFE. or an
//     IF so NULL comes back (PolicyNull). The choice is per entry and
//     every divergence is listed in Deviations.
//   - Variadic, polymorphic, and locale-sensitive MySQL forms narrow to
//     one fixed signature; the removed forms are documented.
//   - Names that collide with native GoogleSQL functions are not
//     registered at all.
package mysql

import "github.com/googleapis/spanner-sql-udf/pkg/catalog"

func register(entries []catalog.Entry) {
	for _, e := range entries {
		catalog.Register(e)
	}
}
