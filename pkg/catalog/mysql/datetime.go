package mysql

import (
	"fmt"
	"strings"

	"github.com/googleapis/spanner-sql-udf/pkg/catalog"
)

// MySQL's day-number calendar starts at a pseudo year 0; Cloud Spanner
// DATEs start at 0001-01-01. The bridge constants below pin the two
// conventions together.
const (
	// DayNumberOfMinDate is TO_DAYS('0001-01-01') in MySQL's numbering,
	// the smallest day number the emulation can represent.
	DayNumberOfMinDate = 366

	// SecondsToUnixEpoch is TO_SECONDS('1970-01-01 00:00:00') in
	// MySQL's numbering: the distance in seconds from 0000-01-01 to the
	// unix epoch (719528 days).
	SecondsToUnixEpoch = 62167219200
)

// DirectiveReplacements maps MySQL DATE_FORMAT directives to their
// FORMAT_TIMESTAMP equivalents, applied in order. Order matters: %M and
// %W must be rewritten before %i and %r introduce GoogleSQL's own %M.
var DirectiveReplacements = [][2]string{
	{"%M", "%B"}, // full month name
	{"%W", "%A"}, // full weekday name
	{"%i", "%M"}, // minutes
	{"%h", "%I"}, // 12-hour clock, zero padded
	{"%s", "%S"}, // seconds, lowercase form
	{"%r", "%I:%M:%S %p"},
	{"%T", "%H:%M:%S"},
}

// UnsupportedDirectives are the MySQL DATE_FORMAT directives with no
// FORMAT_TIMESTAMP equivalent. A format string containing one aborts
// at evaluation time with an error naming the directive.
var UnsupportedDirectives = []string{"c", "k", "l", "D", "U", "u", "V", "v", "X", "x", "f"}

// UnsupportedDirectivePattern is the guard expression embedded in the
// date_format and str_to_date bodies.
const UnsupportedDirectivePattern = `%([cklDUuVvXxf])`

// TranslateFormat rewrites a MySQL format string into its
// FORMAT_TIMESTAMP equivalent, mirroring the REPLACE chain the SQL
// bodies apply. Used by tests as the reference for that chain.
func TranslateFormat(format string) string {
	for _, r := range DirectiveReplacements {
		format = strings.ReplaceAll(format, r[0], r[1])
	}
	return format
}

// replaceChain renders the nested REPLACE calls that apply
// DirectiveReplacements to expr inside a SQL body.
func replaceChain(expr string) string {
	for _, r := range DirectiveReplacements {
		expr = fmt.Sprintf("REPLACE(%s, '%s', '%s')", expr, r[0], r[1])
	}
	return expr
}

func init() { register(datetimeEntries) }

var datetimeEntries = []catalog.Entry{
	{
		Name:     "from_days",
		Category: catalog.CategoryDateTime,
		Params:   []catalog.Param{{Name: "n", Type: "INT64"}},
		Returns:  "DATE",
		Body: fmt.Sprintf(`CASE
  WHEN n IS NULL THEN NULL
  WHEN n < %d THEN ERROR(FORMAT('FROM_DAYS: day number %%d is earlier than 0001-01-01, the minimum Cloud Spanner DATE', n))
  ELSE DATE_ADD(DATE '0001-01-01', INTERVAL n - %d DAY)
END`, DayNumberOfMinDate, DayNumberOfMinDate),
		Doc: "Converts a MySQL day number to a DATE.",
		Deviations: []string{
			"day numbers below 366 fall before 0001-01-01 and abort with an error; MySQL fabricates year-0 pseudo dates for them",
		},
	},
	{
		Name:     "to_days",
		Category: catalog.CategoryDateTime,
		Params:   []catalog.Param{{Name: "d", Type: "DATE"}},
		Returns:  "INT64",
		Body:     fmt.Sprintf(`IF(d IS NULL, NULL, DATE_DIFF(d, DATE '0001-01-01', DAY) + %d)`, DayNumberOfMinDate),
		Doc:      "Converts a DATE to its MySQL day number.",
		Deviations: []string{
			"string and DATETIME arguments are unsupported; the signature is narrowed to DATE",
		},
	},
	{
		Name:     "to_seconds",
		Category: catalog.CategoryDateTime,
		Params:   []catalog.Param{{Name: "t", Type: "TIMESTAMP"}},
		Returns:  "INT64",
		Body:     fmt.Sprintf(`IF(t IS NULL, NULL, UNIX_SECONDS(t) + %d)`, SecondsToUnixEpoch),
		Doc:      "Seconds since year 0 of the given instant.",
		Deviations: []string{
			"evaluated against the UTC instant; MySQL interprets DATETIME input in the session time zone",
			"DATE and string arguments are unsupported; the signature is narrowed to TIMESTAMP",
		},
	},
	{
		Name:        "from_unixtime",
		Category:    catalog.CategoryDateTime,
		Params:      []catalog.Param{{Name: "ts", Type: "INT64"}},
		Returns:     "TIMESTAMP",
		Body:        `SAFE.TIMESTAMP_SECONDS(ts)`,
		Doc:         "Converts unix seconds to a TIMESTAMP; NULL when out of range, as in MySQL.",
		ErrorPolicy: catalog.PolicyNull,
		Deviations: []string{
			"the two-argument form with a format string is unsupported",
			"fractional input is unsupported; the signature is narrowed to INT64 seconds",
		},
	},
	{
		Name:     "unix_timestamp",
		Category: catalog.CategoryDateTime,
		Params:   []catalog.Param{{Name: "t", Type: "TIMESTAMP"}},
		Returns:  "INT64",
		Body:     `IF(t IS NULL, NULL, UNIX_SECONDS(t))`,
		Doc:      "Unix seconds of the given instant.",
		Deviations: []string{
			"the zero-argument and string forms are unsupported; the signature is narrowed to TIMESTAMP",
		},
	},
	{
		Name:     "now",
		Category: catalog.CategoryDateTime,
		Returns:  "TIMESTAMP",
		Body:     `CURRENT_TIMESTAMP()`,
		Doc:      "The current instant.",
		Deviations: []string{
			"returns a TIMESTAMP (a UTC instant); MySQL returns a DATETIME in the session time zone",
			"the fractional-seconds precision argument is unsupported",
		},
	},
	{
		Name:     "curdate",
		Category: catalog.CategoryDateTime,
		Returns:  "DATE",
		Body:     `CURRENT_DATE('UTC')`,
		Doc:      "The current date.",
		Deviations: []string{
			"the date is taken in UTC rather than the session time zone",
		},
	},
	{
		Name:     "utc_date",
		Category: catalog.CategoryDateTime,
		Returns:  "DATE",
		Body:     `CURRENT_DATE('UTC')`,
		Doc:      "The current UTC date.",
	},
	{
		Name:     "utc_timestamp",
		Category: catalog.CategoryDateTime,
		Returns:  "TIMESTAMP",
		Body:     `CURRENT_TIMESTAMP()`,
		Doc:      "The current UTC instant.",
		Deviations: []string{
			"returns a TIMESTAMP; MySQL returns a DATETIME rendered in UTC",
		},
	},
	{
		Name:     "year",
		Category: catalog.CategoryDateTime,
		Params:   []catalog.Param{{Name: "d", Type: "DATE"}},
		Returns:  "INT64",
		Body:     `EXTRACT(YEAR FROM d)`,
		Doc:      "Year of the date.",
		Deviations: []string{
			"string and DATETIME arguments are unsupported; the signature is narrowed to DATE",
		},
	},
	{
		Name:     "month",
		Category: catalog.CategoryDateTime,
		Params:   []catalog.Param{{Name: "d", Type: "DATE"}},
		Returns:  "INT64",
		Body:     `EXTRACT(MONTH FROM d)`,
		Doc:      "Month of the date, 1 through 12.",
		Deviations: []string{
			"string and DATETIME arguments are unsupported; the signature is narrowed to DATE",
		},
	},
	{
		Name:     "dayofmonth",
		Category: catalog.CategoryDateTime,
		Params:   []catalog.Param{{Name: "d", Type: "DATE"}},
		Returns:  "INT64",
		Body:     `EXTRACT(DAY FROM d)`,
		Doc:      "Day of the month, 1 through 31.",
		Deviations: []string{
			"string and DATETIME arguments are unsupported; the signature is narrowed to DATE",
		},
	},
	{
		Name:     "hour",
		Category: catalog.CategoryDateTime,
		Params:   []catalog.Param{{Name: "t", Type: "TIMESTAMP"}},
		Returns:  "INT64",
		Body:     `EXTRACT(HOUR FROM t AT TIME ZONE 'UTC')`,
		Doc:      "Hour of the instant, in UTC.",
		Deviations: []string{
			"extracted in UTC rather than the session time zone",
			"TIME arguments above 23 hours do not exist here; the signature is narrowed to TIMESTAMP",
		},
	},
	{
		Name:     "minute",
		Category: catalog.CategoryDateTime,
		Params:   []catalog.Param{{Name: "t", Type: "TIMESTAMP"}},
		Returns:  "INT64",
		Body:     `EXTRACT(MINUTE FROM t AT TIME ZONE 'UTC')`,
		Doc:      "Minute of the instant.",
		Deviations: []string{
			"TIME and string arguments are unsupported; the signature is narrowed to TIMESTAMP",
		},
	},
	{
		Name:     "second",
		Category: catalog.CategoryDateTime,
		Params:   []catalog.Param{{Name: "t", Type: "TIMESTAMP"}},
		Returns:  "INT64",
		Body:     `EXTRACT(SECOND FROM t AT TIME ZONE 'UTC')`,
		Doc:      "Second of the instant.",
		Deviations: []string{
			"TIME and string arguments are unsupported; the signature is narrowed to TIMESTAMP",
		},
	},
	{
		Name:     "dayofweek",
		Category: catalog.CategoryDateTime,
		Params:   []catalog.Param{{Name: "d", Type: "DATE"}},
		Returns:  "INT64",
		Body:     `EXTRACT(DAYOFWEEK FROM d)`,
		Doc:      "Weekday index, 1 = Sunday through 7 = Saturday.",
	},
	{
		Name:     "weekday",
		Category: catalog.CategoryDateTime,
		Params:   []catalog.Param{{Name: "d", Type: "DATE"}},
		Returns:  "INT64",
		Body:     `MOD(EXTRACT(DAYOFWEEK FROM d) + 5, 7)`,
		Doc:      "Weekday index, 0 = Monday through 6 = Sunday.",
	},
	{
		Name:     "dayofyear",
		Category: catalog.CategoryDateTime,
		Params:   []catalog.Param{{Name: "d", Type: "DATE"}},
		Returns:  "INT64",
		Body:     `EXTRACT(DAYOFYEAR FROM d)`,
		Doc:      "Day of the year, 1 through 366.",
	},
	{
		Name:     "dayname",
		Category: catalog.CategoryDateTime,
		Params:   []catalog.Param{{Name: "d", Type: "DATE"}},
		Returns:  "STRING",
		Body:     `FORMAT_DATE('%A', d)`,
		Doc:      "English weekday name of the date.",
		Deviations: []string{
			"always English; the lc_time_names locale is ignored",
		},
	},
	{
		Name:     "monthname",
		Category: catalog.CategoryDateTime,
		Params:   []catalog.Param{{Name: "d", Type: "DATE"}},
		Returns:  "STRING",
		Body:     `FORMAT_DATE('%B', d)`,
		Doc:      "English month name of the date.",
		Deviations: []string{
			"always English; the lc_time_names locale is ignored",
		},
	},
	{
		Name:     "quarter",
		Category: catalog.CategoryDateTime,
		Params:   []catalog.Param{{Name: "d", Type: "DATE"}},
		Returns:  "INT64",
		Body:     `EXTRACT(QUARTER FROM d)`,
		Doc:      "Quarter of the year, 1 through 4.",
	},
	{
		Name:     "week",
		Category: catalog.CategoryDateTime,
		Params:   []catalog.Param{{Name: "d", Type: "DATE"}},
		Returns:  "INT64",
		Body:     `EXTRACT(WEEK FROM d)`,
		Doc:      "Week of the year with weeks starting on Sunday (MySQL mode 0).",
		Deviations: []string{
			"the mode argument is unsupported; only the default mode 0 numbering is available",
		},
	},
	{
		Name:     "yearweek",
		Category: catalog.CategoryDateTime,
		Params:   []catalog.Param{{Name: "d", Type: "DATE"}},
		Returns:  "INT64",
		Body:     `EXTRACT(YEAR FROM d) * 100 + EXTRACT(WEEK FROM d)`,
		Doc:      "Year and week as a single YYYYWW number.",
		Deviations: []string{
			"early-January days that MySQL assigns to the final week of the prior year are reported as week 0 of the current year",
			"the mode argument is unsupported",
		},
	},
	{
		Name:     "last_day",
		Category: catalog.CategoryDateTime,
		Params:   []catalog.Param{{Name: "d", Type: "DATE"}},
		Returns:  "DATE",
		Body:     `DATE_SUB(DATE_ADD(DATE_TRUNC(d, MONTH), INTERVAL 1 MONTH), INTERVAL 1 DAY)`,
		Doc:      "Last day of the month containing d.",
	},
	{
		Name:     "makedate",
		Category: catalog.CategoryDateTime,
		Params: []catalog.Param{
			{Name: "y", Type: "INT64"},
			{Name: "dayofyear", Type: "INT64"},
		},
		Returns: "DATE",
		Body: `CASE
  WHEN y IS NULL OR dayofyear IS NULL THEN NULL
  WHEN dayofyear < 1 OR y < 1 OR y > 9999 THEN NULL
  ELSE SAFE.DATE_ADD(DATE(y, 1, 1), INTERVAL dayofyear - 1 DAY)
END`,
		Doc:         "Builds a date from a year and a day-of-year count; NULL for impossible input, as in MySQL.",
		ErrorPolicy: catalog.PolicyNull,
		Deviations: []string{
			"two-digit years are not promoted to 19xx/20xx; years outside 1..9999 yield NULL",
		},
	},
	{
		Name:     "datediff",
		Category: catalog.CategoryDateTime,
		Params: []catalog.Param{
			{Name: "a", Type: "DATE"},
			{Name: "b", Type: "DATE"},
		},
		Returns: "INT64",
		Body:    `DATE_DIFF(a, b, DAY)`,
		Doc:     "Days from b to a.",
		Deviations: []string{
			"DATETIME arguments are unsupported; the signature is narrowed to DATE",
		},
	},
	{
		Name:     "adddate",
		Category: catalog.CategoryDateTime,
		Params: []catalog.Param{
			{Name: "d", Type: "DATE"},
			{Name: "days", Type: "INT64"},
		},
		Returns: "DATE",
		Body:    `DATE_ADD(d, INTERVAL days DAY)`,
		Doc:     "Adds a number of days to a date.",
		Deviations: []string{
			"the INTERVAL-unit form is unsupported; only the day-count form is available",
		},
	},
	{
		Name:     "subdate",
		Category: catalog.CategoryDateTime,
		Params: []catalog.Param{
			{Name: "d", Type: "DATE"},
			{Name: "days", Type: "INT64"},
		},
		Returns: "DATE",
		Body:    `DATE_SUB(d, INTERVAL days DAY)`,
		Doc:     "Subtracts a number of days from a date.",
		Deviations: []string{
			"the INTERVAL-unit form is unsupported; only the day-count form is available",
		},
	},
	{
		Name:     "period_add",
		Category: catalog.CategoryDateTime,
		Params: []catalog.Param{
			{Name: "p", Type: "INT64"},
			{Name: "n", Type: "INT64"},
		},
		Returns: "INT64",
		Body: `IF(p IS NULL OR n IS NULL, NULL,
  CAST(FORMAT_DATE('%Y%m', DATE_ADD(DATE(DIV(p, 100), MOD(p, 100), 1), INTERVAL n MONTH)) AS INT64))`,
		Doc: "Adds n months to a period in YYYYMM form.",
		Deviations: []string{
			"two-digit-year periods (YYMM) are unsupported",
			"periods with a month outside 1..12 abort with an error; MySQL silently normalizes them",
		},
	},
	{
		Name:     "period_diff",
		Category: catalog.CategoryDateTime,
		Params: []catalog.Param{
			{Name: "p1", Type: "INT64"},
			{Name: "p2", Type: "INT64"},
		},
		Returns: "INT64",
		Body:    `(DIV(p1, 100) * 12 + MOD(p1, 100)) - (DIV(p2, 100) * 12 + MOD(p2, 100))`,
		Doc:     "Months between two periods in YYYYMM form.",
		Deviations: []string{
			"two-digit-year periods (YYMM) are unsupported",
		},
	},
	{
		Name:     "sec_to_time",
		Category: catalog.CategoryDateTime,
		Params:   []catalog.Param{{Name: "s", Type: "INT64"}},
		Returns:  "STRING",
		Body: `IF(s IS NULL, NULL,
  CONCAT(IF(s < 0, '-', ''), FORMAT('%02d:%02d:%02d', DIV(ABS(s), 3600), MOD(DIV(ABS(s), 60), 60), MOD(ABS(s), 60))))`,
		Doc: "Formats a second count as [-]HH:MM:SS.",
		Deviations: []string{
			"returns a STRING; the host engine has no TIME type",
			"values are not clamped to MySQL's TIME range of +/-838:59:59",
		},
	},
	{
		Name:     "time_to_sec",
		Category: catalog.CategoryDateTime,
		Params:   []catalog.Param{{Name: "t", Type: "STRING"}},
		Returns:  "INT64",
		Body: `CASE
  WHEN t IS NULL THEN NULL
  WHEN NOT REGEXP_CONTAINS(t, r'^-?\d{1,3}:[0-5]?\d:[0-5]?\d$') THEN ERROR(CONCAT('TIME_TO_SEC: malformed time value: ', t))
  ELSE IF(STARTS_WITH(t, '-'), -1, 1) * (
    CAST(REGEXP_EXTRACT(t, r'^-?(\d+):') AS INT64) * 3600
    + CAST(REGEXP_EXTRACT(t, r'^-?\d+:(\d+):') AS INT64) * 60
    + CAST(REGEXP_EXTRACT(t, r':(\d+)$') AS INT64))
END`,
		Doc: "Seconds represented by a [-]H:MM:SS string.",
		Deviations: []string{
			"TIME input does not exist here; the signature is narrowed to strings of the form [-]H:MM:SS",
			"malformed input aborts with an error; MySQL truncates or returns 0 with a warning",
		},
	},
	{
		Name:     "date_format",
		Category: catalog.CategoryDateTime,
		Params: []catalog.Param{
			{Name: "t", Type: "TIMESTAMP"},
			{Name: "format", Type: "STRING"},
		},
		Returns: "STRING",
		Body: fmt.Sprintf(`CASE
  WHEN t IS NULL OR format IS NULL THEN NULL
  WHEN REGEXP_CONTAINS(format, '%s') THEN ERROR(CONCAT('DATE_FORMAT: unsupported format directive %%', REGEXP_EXTRACT(format, '%s')))
  ELSE FORMAT_TIMESTAMP(%s, t, 'UTC')
END`, UnsupportedDirectivePattern, UnsupportedDirectivePattern, replaceChain("format")),
		Doc: "Formats an instant using MySQL format directives.",
		Deviations: []string{
			"rendered in UTC rather than the session time zone",
			"the %c, %k, %l, %D, %U, %u, %V, %v, %X, %x and %f directives are unsupported and abort with an error naming the directive",
			"literal %% sequences adjacent to a rewritten directive can be mangled by the directive translation",
		},
	},
	{
		Name:     "str_to_date",
		Category: catalog.CategoryDateTime,
		Params: []catalog.Param{
			{Name: "s", Type: "STRING"},
			{Name: "format", Type: "STRING"},
		},
		Returns: "TIMESTAMP",
		Body: fmt.Sprintf(`CASE
  WHEN s IS NULL OR format IS NULL THEN NULL
  WHEN REGEXP_CONTAINS(format, '%s') THEN ERROR(CONCAT('STR_TO_DATE: unsupported format directive %%', REGEXP_EXTRACT(format, '%s')))
  ELSE SAFE.PARSE_TIMESTAMP(%s, s, 'UTC')
END`, UnsupportedDirectivePattern, UnsupportedDirectivePattern, replaceChain("format")),
		Doc:         "Parses a string into an instant using MySQL format directives; NULL when it does not parse, as in MySQL.",
		ErrorPolicy: catalog.PolicyNull,
		Deviations: []string{
			"always returns a TIMESTAMP; MySQL picks DATE, TIME or DATETIME from the directives present",
			"parsed as UTC rather than the session time zone",
			"the same directive subset as date_format applies; unsupported directives abort",
		},
	},
}
