// Package main is the entry point for the spannerudf CLI.
package main

import (
	"os"

	"github.com/googleapis/spanner-sql-udf/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
