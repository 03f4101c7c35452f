package mysql

import (
	"fmt"

	"github.com/googleapis/spanner-sql-udf/pkg/catalog"
)

// UUIDPattern matches the canonical 8-4-4-4-12 hexadecimal UUID form.
const UUIDPattern = `^[0-9a-fA-F]{8}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{12}$`

// IPv4Pattern matches dotted-quad addresses with each octet in 0-255.
const IPv4Pattern = `^(25[0-5]|2[0-4][0-9]|1[0-9][0-9]|[1-9]?[0-9])(\.(25[0-5]|2[0-4][0-9]|1[0-9][0-9]|[1-9]?[0-9])){3}$`

func init() { register(miscEntries) }

var miscEntries = []catalog.Entry{
	{
		Name:     "uuid",
		Category: catalog.CategoryMisc,
		Returns:  "STRING",
		Body:     `GENERATE_UUID()`,
		Doc:      "A new UUID in canonical lowercase form.",
		Deviations: []string{
			"generates a random version-4 UUID; MySQL generates time-based version-1 values",
		},
	},
	{
		Name:     "is_uuid",
		Category: catalog.CategoryMisc,
		Params:   []catalog.Param{{Name: "str", Type: "STRING"}},
		Returns:  "INT64",
		Body:     fmt.Sprintf(`IF(str IS NULL, NULL, IF(REGEXP_CONTAINS(str, r'%s'), 1, 0))`, UUIDPattern),
		Doc:      "1 when the string is a canonical 8-4-4-4-12 UUID, 0 otherwise.",
		Deviations: []string{
			"the dashless and brace-wrapped forms MySQL accepts are reported as invalid",
		},
	},
	{
		Name:     "bin_to_uuid",
		Category: catalog.CategoryMisc,
		Params:   []catalog.Param{{Name: "b", Type: "BYTES"}},
		Returns:  "STRING",
		Body: `CASE
  WHEN b IS NULL THEN NULL
  WHEN BYTE_LENGTH(b) != 16 THEN ERROR(FORMAT('BIN_TO_UUID: expected 16 bytes, got %d', BYTE_LENGTH(b)))
  ELSE LOWER(CONCAT(
    SUBSTR(TO_HEX(b), 1, 8), '-',
    SUBSTR(TO_HEX(b), 9, 4), '-',
    SUBSTR(TO_HEX(b), 13, 4), '-',
    SUBSTR(TO_HEX(b), 17, 4), '-',
    SUBSTR(TO_HEX(b), 21, 12)))
END`,
		Doc: "Formats 16 bytes as a canonical UUID string.",
		Deviations: []string{
			"the swap_flag argument is unsupported",
		},
	},
	{
		Name:     "uuid_to_bin",
		Category: catalog.CategoryMisc,
		Params:   []catalog.Param{{Name: "str", Type: "STRING"}},
		Returns:  "BYTES",
		Body: fmt.Sprintf(`CASE
  WHEN str IS NULL THEN NULL
  WHEN NOT REGEXP_CONTAINS(str, r'%s') THEN ERROR(CONCAT('UUID_TO_BIN: malformed UUID value: ', str))
  ELSE FROM_HEX(REPLACE(str, '-', ''))
END`, UUIDPattern),
		Doc: "Decodes a canonical UUID string into 16 bytes.",
		Deviations: []string{
			"the swap_flag argument is unsupported",
			"the dashless form MySQL accepts is rejected with an error",
		},
	},
	{
		Name:     "inet_aton",
		Category: catalog.CategoryMisc,
		Params:   []catalog.Param{{Name: "expr", Type: "STRING"}},
		Returns:  "INT64",
		Body: fmt.Sprintf(`CASE
  WHEN expr IS NULL THEN NULL
  WHEN NOT REGEXP_CONTAINS(expr, r'%s') THEN NULL
  ELSE CAST(SPLIT(expr, '.')[OFFSET(0)] AS INT64) * 16777216
    + CAST(SPLIT(expr, '.')[OFFSET(1)] AS INT64) * 65536
    + CAST(SPLIT(expr, '.')[OFFSET(2)] AS INT64) * 256
    + CAST(SPLIT(expr, '.')[OFFSET(3)] AS INT64)
END`, IPv4Pattern),
		Doc:         "Numeric value of a dotted-quad IPv4 address; NULL for malformed input, as in MySQL.",
		ErrorPolicy: catalog.PolicyNull,
		Deviations: []string{
			"short forms such as '127.1' are reported as malformed; MySQL interprets them",
		},
	},
	{
		Name:     "inet_ntoa",
		Category: catalog.CategoryMisc,
		Params:   []catalog.Param{{Name: "expr", Type: "INT64"}},
		Returns:  "STRING",
		Body: `CASE
  WHEN expr IS NULL THEN NULL
  WHEN expr < 0 OR expr > 4294967295 THEN NULL
  ELSE FORMAT('%d.%d.%d.%d', DIV(expr, 16777216), MOD(DIV(expr, 65536), 256), MOD(DIV(expr, 256), 256), MOD(expr, 256))
END`,
		Doc:         "Dotted-quad form of a numeric IPv4 address; NULL when out of range, as in MySQL.",
		ErrorPolicy: catalog.PolicyNull,
	},
	{
		Name:     "is_ipv4",
		Category: catalog.CategoryMisc,
		Params:   []catalog.Param{{Name: "expr", Type: "STRING"}},
		Returns:  "INT64",
		Body:     fmt.Sprintf(`IF(expr IS NULL, NULL, IF(REGEXP_CONTAINS(expr, r'%s'), 1, 0))`, IPv4Pattern),
		Doc:      "1 when the string is a dotted-quad IPv4 address, 0 otherwise.",
	},
}
