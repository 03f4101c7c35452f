// Package rules implements the catalog validation rules. Each file
// covers one concern and registers its rules with the lint registry at
// init time; import the package with a blank identifier to activate
// them all.
package rules
