package mysql

import "github.com/googleapis/spanner-sql-udf/pkg/catalog"

// MD5 and SHA1 collide with the native Spanner functions of the same
// name and are omitted; MySQL's hex-string spelling of SHA1 survives
// under its alias sha. AES_ENCRYPT, AES_DECRYPT, RANDOM_BYTES and
// COMPRESS have no GoogleSQL primitives to build on.

func init() { register(encryptionEntries) }

var encryptionEntries = []catalog.Entry{
	{
		Name:     "sha",
		Category: catalog.CategoryEncryption,
		Params:   []catalog.Param{{Name: "str", Type: "STRING"}},
		Returns:  "STRING",
		Body:     `IF(str IS NULL, NULL, TO_HEX(SHA1(str)))`,
		Doc:      "Lowercase hex SHA-1 digest of a string.",
		Deviations: []string{
			"registered under the alias sha because SHA1 collides with the native digest function; results are identical",
		},
	},
	{
		Name:     "sha2",
		Category: catalog.CategoryEncryption,
		Params: []catalog.Param{
			{Name: "str", Type: "STRING"},
			{Name: "hash_length", Type: "INT64"},
		},
		Returns: "STRING",
		Body: `CASE
  WHEN str IS NULL OR hash_length IS NULL THEN NULL
  WHEN hash_length = 0 OR hash_length = 256 THEN TO_HEX(SHA256(str))
  WHEN hash_length = 512 THEN TO_HEX(SHA512(str))
  ELSE NULL
END`,
		Doc:         "Lowercase hex SHA-2 digest; 0 and 256 select SHA-256, 512 selects SHA-512.",
		ErrorPolicy: catalog.PolicyNull,
		Deviations: []string{
			"the 224- and 384-bit digests are unsupported and yield NULL; MySQL computes them",
		},
	},
}
