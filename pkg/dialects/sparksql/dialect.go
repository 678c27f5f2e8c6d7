// Package sparksql provides the Spark SQL dialect definition.
package sparksql

import (
	"github.com/sqlshift-labs/sqlshift/pkg/dialect"
	"github.com/sqlshift-labs/sqlshift/pkg/dialects/ansi"
)

// Config is the Spark SQL dialect configuration: backtick identifiers,
// case preserved, backslash string escapes.
var Config = &dialect.Config{
	Name: "sparksql",
	Identifiers: dialect.IdentifierConfig{
		Quote:         "`",
		QuoteEnd:      "`",
		Escape:        "``",
		Normalization: dialect.NormCaseInsensitive,
	},
	Limit:            dialect.LimitOffset,
	BackslashStrings: true,
	ReservedWords:    append(ansi.CommonReservedWords(), "cluster", "distribute", "lateral", "sort"),
}

// SparkSQL is the built Spark SQL dialect.
var SparkSQL = dialect.New(Config)

func init() {
	dialect.Register(SparkSQL)
}
