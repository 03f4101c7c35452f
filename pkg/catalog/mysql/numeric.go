package mysql

import "github.com/googleapis/spanner-sql-udf/pkg/catalog"

func init() { register(numericEntries) }

var numericEntries = []catalog.Entry{
	{
		Name:     "pi",
		Category: catalog.CategoryNumeric,
		Returns:  "FLOAT64",
		Body:     `ACOS(-1)`,
		Doc:      "The value of pi.",
		Deviations: []string{
			"returns the full FLOAT64 value; MySQL displays 6 decimal places but computes with full precision, so results agree",
		},
	},
	{
		Name:     "degrees",
		Category: catalog.CategoryNumeric,
		Params:   []catalog.Param{{Name: "x", Type: "FLOAT64"}},
		Returns:  "FLOAT64",
		Body:     `x * 180 / ACOS(-1)`,
		Doc:      "Converts radians to degrees.",
		Deviations: []string{
			"inputs with an absolute value above roughly 1e300 scale past the FLOAT64 range and abort the statement with OUT_OF_RANGE",
		},
	},
	{
		Name:     "radians",
		Category: catalog.CategoryNumeric,
		Params:   []catalog.Param{{Name: "x", Type: "FLOAT64"}},
		Returns:  "FLOAT64",
		Body:     `x * ACOS(-1) / 180`,
		Doc:      "Converts degrees to radians.",
	},
	{
		Name:     "cot",
		Category: catalog.CategoryNumeric,
		Params:   []catalog.Param{{Name: "x", Type: "FLOAT64"}},
		Returns:  "FLOAT64",
		Body:     `1 / TAN(x)`,
		Doc:      "Cotangent of x.",
		Deviations: []string{
			"COT(0) aborts with a division-by-zero error; MySQL aborts too but with an out-of-range error and different wording",
		},
	},
	{
		Name:        "log2",
		Category:    catalog.CategoryNumeric,
		Params:      []catalog.Param{{Name: "x", Type: "FLOAT64"}},
		Returns:     "FLOAT64",
		Body:        `IF(x <= 0, NULL, LOG(x, 2))`,
		Doc:         "Base-2 logarithm of x; NULL for non-positive input, as in MySQL.",
		ErrorPolicy: catalog.PolicyNull,
	},
	{
		Name:     "truncate",
		Category: catalog.CategoryNumeric,
		Params: []catalog.Param{
			{Name: "x", Type: "FLOAT64"},
			{Name: "d", Type: "INT64"},
		},
		Returns: "FLOAT64",
		Body:    `TRUNC(x, d)`,
		Doc:     "Truncates x to d decimal places, toward zero.",
		Deviations: []string{
			"DECIMAL arguments are unsupported; the FLOAT64 result can differ in the last place for values with no exact binary representation",
		},
	},
	{
		Name:     "conv",
		Category: catalog.CategoryNumeric,
		Params: []catalog.Param{
			{Name: "n", Type: "INT64"},
			{Name: "from_base", Type: "INT64"},
			{Name: "to_base", Type: "INT64"},
		},
		Returns: "STRING",
		Body: `CASE
  WHEN n IS NULL OR from_base IS NULL OR to_base IS NULL THEN NULL
  WHEN from_base != 10 THEN ERROR(FORMAT('CONV: unsupported from_base %d; only base 10 input is supported', from_base))
  WHEN to_base = 8 THEN FORMAT('%o', n)
  WHEN to_base = 10 THEN CAST(n AS STRING)
  WHEN to_base = 16 THEN UPPER(FORMAT('%x', n))
  ELSE ERROR(FORMAT('CONV: unsupported to_base %d; supported bases are 8, 10 and 16', to_base))
END`,
		Doc: "Converts a base-10 integer to its base-8, 10 or 16 digit string.",
		Deviations: []string{
			"string input and bases other than 8, 10 and 16 are unsupported and abort with an error; MySQL accepts bases 2 through 36",
			"negative values keep their minus sign; MySQL reinterprets them as 64-bit unsigned",
		},
	},
}
