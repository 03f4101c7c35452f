package mysql

import "github.com/googleapis/spanner-sql-udf/pkg/catalog"

// JSON_EXTRACT and friends take a path argument, and GoogleSQL requires
// JSON paths to be literals, so path-parameterized MySQL functions
// cannot be expressed as UDFs. JSON_OBJECT and JSON_ARRAY collide with
// native functions. What remains are the scalar document helpers.

func init() { register(jsonEntries) }

var jsonEntries = []catalog.Entry{
	{
		Name:     "json_quote",
		Category: catalog.CategoryJSON,
		Params:   []catalog.Param{{Name: "str", Type: "STRING"}},
		Returns:  "STRING",
		Body:     `IF(str IS NULL, NULL, TO_JSON_STRING(str))`,
		Doc:      "Wraps a string as a JSON string literal, escaping as needed.",
	},
	{
		Name:        "json_unquote",
		Category:    catalog.CategoryJSON,
		Params:      []catalog.Param{{Name: "doc", Type: "STRING"}},
		Returns:     "STRING",
		Body:        `IF(doc IS NULL, NULL, JSON_VALUE(SAFE.PARSE_JSON(doc), '$'))`,
		Doc:         "Unquotes a JSON string value.",
		ErrorPolicy: catalog.PolicyNull,
		Deviations: []string{
			"invalid JSON yields NULL; MySQL raises an error",
			"non-scalar documents yield NULL; MySQL returns them unchanged",
		},
	},
	{
		Name:        "json_valid",
		Category:    catalog.CategoryJSON,
		Params:      []catalog.Param{{Name: "val", Type: "STRING"}},
		Returns:     "INT64",
		Body:        `IF(val IS NULL, NULL, IF(SAFE.PARSE_JSON(val) IS NOT NULL, 1, 0))`,
		Doc:         "1 when the string parses as JSON, 0 otherwise.",
		ErrorPolicy: catalog.PolicyNull,
	},
	{
		Name:        "json_length",
		Category:    catalog.CategoryJSON,
		Params:      []catalog.Param{{Name: "doc", Type: "STRING"}},
		Returns:     "INT64",
		Body:        `IF(doc IS NULL, NULL, ARRAY_LENGTH(JSON_QUERY_ARRAY(SAFE.PARSE_JSON(doc), '$')))`,
		Doc:         "Number of elements in a JSON array document.",
		ErrorPolicy: catalog.PolicyNull,
		Deviations: []string{
			"arrays only: scalars and objects yield NULL, where MySQL returns 1 and the key count",
			"the path argument is unsupported",
		},
	},
}
