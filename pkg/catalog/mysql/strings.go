package mysql

import "github.com/googleapis/spanner-sql-udf/pkg/catalog"

func init() { register(stringEntries) }

var stringEntries = []catalog.Entry{
	{
		Name:     "concat_ws",
		Category: catalog.CategoryString,
		Params: []catalog.Param{
			{Name: "separator", Type: "STRING"},
			{Name: "s1", Type: "STRING"},
			{Name: "s2", Type: "STRING"},
		},
		Returns: "STRING",
		Body:    `IF(separator IS NULL, NULL, ARRAY_TO_STRING([s1, s2], separator))`,
		Doc:     "Concatenates two strings with a separator, skipping NULLs.",
		Deviations: []string{
			"narrowed to exactly two strings; MySQL accepts any number",
		},
	},
	{
		Name:     "insert",
		Category: catalog.CategoryString,
		Params: []catalog.Param{
			{Name: "str", Type: "STRING"},
			{Name: "pos", Type: "INT64"},
			{Name: "len", Type: "INT64"},
			{Name: "newstr", Type: "STRING"},
		},
		Returns: "STRING",
		Body: `CASE
  WHEN str IS NULL OR pos IS NULL OR len IS NULL OR newstr IS NULL THEN NULL
  WHEN pos < 1 OR pos > CHAR_LENGTH(str) THEN str
  ELSE CONCAT(SUBSTR(str, 1, pos - 1), newstr, IF(len < 0, '', SUBSTR(str, pos + len)))
END`,
		Doc: "Replaces len characters of str at pos with newstr.",
	},
	{
		Name:     "locate",
		Category: catalog.CategoryString,
		Params: []catalog.Param{
			{Name: "substr", Type: "STRING"},
			{Name: "str", Type: "STRING"},
		},
		Returns: "INT64",
		Body:    `STRPOS(str, substr)`,
		Doc:     "1-based position of the first occurrence of substr in str, 0 when absent.",
		Deviations: []string{
			"the three-argument form with a start position is unsupported",
		},
	},
	{
		Name:     "lcase",
		Category: catalog.CategoryString,
		Params:   []catalog.Param{{Name: "str", Type: "STRING"}},
		Returns:  "STRING",
		Body:     `LOWER(str)`,
		Doc:      "Lowercases a string.",
	},
	{
		Name:     "ucase",
		Category: catalog.CategoryString,
		Params:   []catalog.Param{{Name: "str", Type: "STRING"}},
		Returns:  "STRING",
		Body:     `UPPER(str)`,
		Doc:      "Uppercases a string.",
	},
	{
		Name:     "mid",
		Category: catalog.CategoryString,
		Params: []catalog.Param{
			{Name: "str", Type: "STRING"},
			{Name: "pos", Type: "INT64"},
			{Name: "len", Type: "INT64"},
		},
		Returns: "STRING",
		Body:    `IF(len < 0, '', SUBSTR(str, pos, len))`,
		Doc:     "len characters of str starting at pos; negative pos counts from the end.",
	},
	{
		Name:     "space",
		Category: catalog.CategoryString,
		Params:   []catalog.Param{{Name: "n", Type: "INT64"}},
		Returns:  "STRING",
		Body:     `IF(n IS NULL, NULL, IF(n < 1, '', REPEAT(' ', n)))`,
		Doc:      "A string of n spaces.",
	},
	{
		Name:     "strcmp",
		Category: catalog.CategoryString,
		Params: []catalog.Param{
			{Name: "s1", Type: "STRING"},
			{Name: "s2", Type: "STRING"},
		},
		Returns: "INT64",
		Body: `CASE
  WHEN s1 IS NULL OR s2 IS NULL THEN NULL
  WHEN s1 = s2 THEN 0
  WHEN s1 < s2 THEN -1
  ELSE 1
END`,
		Doc: "-1, 0 or 1 from comparing two strings.",
		Deviations: []string{
			"compares by code point; MySQL compares under the column or session collation",
		},
	},
	{
		Name:     "substring_index",
		Category: catalog.CategoryString,
		Params: []catalog.Param{
			{Name: "str", Type: "STRING"},
			{Name: "delim", Type: "STRING"},
			{Name: "count", Type: "INT64"},
		},
		Returns: "STRING",
		Body: `CASE
  WHEN str IS NULL OR delim IS NULL OR count IS NULL THEN NULL
  WHEN delim = '' OR count = 0 THEN ''
  WHEN count > 0 THEN ARRAY_TO_STRING(ARRAY(
    SELECT part FROM UNNEST(SPLIT(str, delim)) AS part WITH OFFSET off
    WHERE off < count ORDER BY off), delim)
  ELSE ARRAY_TO_STRING(ARRAY(
    SELECT part FROM UNNEST(SPLIT(str, delim)) AS part WITH OFFSET off
    WHERE off >= ARRAY_LENGTH(SPLIT(str, delim)) + count ORDER BY off), delim)
END`,
		Doc: "Everything before (count > 0) or after (count < 0) the count'th delimiter.",
	},
	{
		Name:     "find_in_set",
		Category: catalog.CategoryString,
		Params: []catalog.Param{
			{Name: "needle", Type: "STRING"},
			{Name: "strlist", Type: "STRING"},
		},
		Returns: "INT64",
		Body: `CASE
  WHEN needle IS NULL OR strlist IS NULL THEN NULL
  WHEN strlist = '' THEN 0
  ELSE COALESCE((
    SELECT off + 1 FROM UNNEST(SPLIT(strlist, ',')) AS item WITH OFFSET off
    WHERE item = needle ORDER BY off LIMIT 1), 0)
END`,
		Doc: "1-based position of needle in a comma-separated list, 0 when absent.",
	},
	{
		Name:     "quote",
		Category: catalog.CategoryString,
		Params:   []catalog.Param{{Name: "str", Type: "STRING"}},
		Returns:  "STRING",
		Body:     `IF(str IS NULL, 'NULL', CONCAT("'", REPLACE(REPLACE(str, '\\', '\\\\'), "'", "\\'"), "'"))`,
		Doc:      "Quotes a string for use in a SQL literal, or the word NULL.",
		Deviations: []string{
			"NUL and Control-Z bytes are not escaped; MySQL escapes both",
		},
	},
	{
		Name:     "hex",
		Category: catalog.CategoryString,
		Params:   []catalog.Param{{Name: "n", Type: "INT64"}},
		Returns:  "STRING",
		Body:     `IF(n IS NULL, NULL, UPPER(FORMAT('%x', n)))`,
		Doc:      "Uppercase hexadecimal digits of an integer.",
		Deviations: []string{
			"string input is unsupported; the signature is narrowed to INT64",
			"negative values keep their minus sign; MySQL prints the two's-complement digits",
		},
	},
	{
		Name:        "unhex",
		Category:    catalog.CategoryString,
		Params:      []catalog.Param{{Name: "str", Type: "STRING"}},
		Returns:     "BYTES",
		Body:        `SAFE.FROM_HEX(str)`,
		Doc:         "Bytes decoded from hexadecimal digits; NULL for non-hex input, as in MySQL.",
		ErrorPolicy: catalog.PolicyNull,
	},
	{
		Name:     "ord",
		Category: catalog.CategoryString,
		Params:   []catalog.Param{{Name: "str", Type: "STRING"}},
		Returns:  "INT64",
		Body: `CASE
  WHEN str IS NULL THEN NULL
  WHEN str = '' THEN 0
  ELSE TO_CODE_POINTS(str)[OFFSET(0)]
END`,
		Doc: "Code point of the leading character.",
		Deviations: []string{
			"returns the Unicode code point; MySQL returns the character's encoded byte value, which differs for multi-byte characters",
		},
	},
	{
		Name:     "oct",
		Category: catalog.CategoryString,
		Params:   []catalog.Param{{Name: "n", Type: "INT64"}},
		Returns:  "STRING",
		Body:     `IF(n IS NULL, NULL, FORMAT('%o', n))`,
		Doc:      "Octal digits of an integer.",
		Deviations: []string{
			"negative values keep their minus sign; MySQL prints the two's-complement digits",
		},
	},
	{
		Name:     "elt",
		Category: catalog.CategoryString,
		Params: []catalog.Param{
			{Name: "n", Type: "INT64"},
			{Name: "s1", Type: "STRING"},
			{Name: "s2", Type: "STRING"},
			{Name: "s3", Type: "STRING"},
		},
		Returns: "STRING",
		Body: `CASE n
  WHEN 1 THEN s1
  WHEN 2 THEN s2
  WHEN 3 THEN s3
  ELSE NULL
END`,
		Doc: "The n'th of three candidate strings, NULL when n is out of range.",
		Deviations: []string{
			"narrowed to exactly three candidates; MySQL accepts any number",
		},
	},
	{
		Name:     "field",
		Category: catalog.CategoryString,
		Params: []catalog.Param{
			{Name: "needle", Type: "STRING"},
			{Name: "s1", Type: "STRING"},
			{Name: "s2", Type: "STRING"},
			{Name: "s3", Type: "STRING"},
		},
		Returns: "INT64",
		Body: `CASE needle
  WHEN s1 THEN 1
  WHEN s2 THEN 2
  WHEN s3 THEN 3
  ELSE 0
END`,
		Doc: "1-based index of needle among three candidates, 0 when absent.",
		Deviations: []string{
			"narrowed to exactly three candidates; MySQL accepts any number",
		},
	},
}
