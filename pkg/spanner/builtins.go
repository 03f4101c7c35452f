package spanner

import "strings"

// builtins is the set of native GoogleSQL scalar function names, in
// lowercase. A catalog entry must not reuse one of these names: the
// engine rejects the declaration, and even where it would not, a
// same-named user function shadowing a native one is a trap for query
// authors. This is why the catalog carries sha instead of sha1, and
// omits md5 and to_base64 entirely.
var builtins = map[string]bool{}

func init() {
	for _, name := range builtinNames {
		builtins[name] = true
	}
}

// IsBuiltin reports whether name (case-insensitive) is a native
// GoogleSQL function.
func IsBuiltin(name string) bool { return builtins[strings.ToLower(name)] }

var builtinNames = []string{
	// Mathematical
	"abs", "acos", "acosh", "asin", "asinh", "atan", "atan2", "atanh",
	"cbrt", "ceil", "ceiling", "cos", "cosh", "div", "exp", "floor",
	"greatest", "ieee_divide", "is_inf", "is_nan", "least", "ln", "log",
	"log10", "mod", "pow", "power", "round", "sign", "sin", "sinh",
	"sqrt", "tan", "tanh", "trunc",

	// String
	"ascii", "byte_length", "char_length", "character_length", "chr",
	"code_points_to_bytes", "code_points_to_string", "concat",
	"ends_with", "format", "from_base32", "from_base64", "from_hex",
	"initcap", "instr", "left", "length", "lower", "lpad", "ltrim",
	"normalize", "normalize_and_casefold", "octet_length",
	"regexp_contains", "regexp_extract", "regexp_extract_all",
	"regexp_instr", "regexp_replace", "repeat", "replace", "reverse",
	"right", "rpad", "rtrim", "safe_convert_bytes_to_string", "soundex",
	"split", "starts_with", "strpos", "substr", "substring",
	"to_base32", "to_base64", "to_code_points", "to_hex", "translate",
	"trim", "unicode", "upper",

	// Hash
	"farm_fingerprint", "md5", "sha1", "sha256", "sha512",

	// Date and timestamp
	"current_date", "current_timestamp", "date", "date_add", "date_diff",
	"date_from_unix_date", "date_sub", "date_trunc", "extract",
	"format_date", "format_timestamp", "parse_date", "parse_timestamp",
	"timestamp", "timestamp_add", "timestamp_diff", "timestamp_micros",
	"timestamp_millis", "timestamp_seconds", "timestamp_sub",
	"timestamp_trunc", "unix_date", "unix_micros", "unix_millis",
	"unix_seconds",

	// JSON
	"json_query", "json_query_array", "json_value", "json_value_array",
	"parse_json", "to_json", "to_json_string",

	// Array
	"array_concat", "array_first", "array_includes", "array_last",
	"array_length", "array_max", "array_min", "array_reverse",
	"array_slice", "array_to_string", "generate_array",
	"generate_date_array",

	// Conditional and misc
	"cast", "coalesce", "error", "generate_uuid", "if", "ifnull",
	"nullif", "pending_commit_timestamp", "safe_cast",

	// Bit manipulation
	"bit_count", "bit_reverse",
}
