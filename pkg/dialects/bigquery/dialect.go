// Package bigquery provides the BigQuery dialect definition.
package bigquery

import (
	"github.com/sqlshift-labs/sqlshift/pkg/dialect"
	"github.com/sqlshift-labs/sqlshift/pkg/dialects/ansi"
)

// Config is the BigQuery dialect configuration: backtick identifiers,
// case-blind comparison, backslash string escapes, QUALIFY supported.
var Config = &dialect.Config{
	Name: "bigquery",
	Identifiers: dialect.IdentifierConfig{
		Quote:         "`",
		QuoteEnd:      "`",
		Escape:        "``",
		Normalization: dialect.NormCaseInsensitive,
	},
	Limit:            dialect.LimitOffset,
	BackslashStrings: true,
	SupportsQualify:  true,
	ReservedWords:    append(ansi.CommonReservedWords(), "qualify", "struct", "unnest", "window"),
}

// BigQuery is the built BigQuery dialect.
var BigQuery = dialect.New(Config)

func init() {
	dialect.Register(BigQuery)
}
