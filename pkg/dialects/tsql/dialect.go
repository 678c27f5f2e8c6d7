// Package tsql provides the Microsoft SQL Server (T-SQL) dialect definition.
package tsql

import (
	"github.com/sqlshift-labs/sqlshift/pkg/dialect"
	"github.com/sqlshift-labs/sqlshift/pkg/dialects/ansi"
)

// Config is the T-SQL dialect configuration: bracket-quoted identifiers,
// case-blind comparison, row limits spelled SELECT TOP n.
var Config = &dialect.Config{
	Name: "tsql",
	Identifiers: dialect.IdentifierConfig{
		Quote:         "[",
		QuoteEnd:      "]",
		Escape:        "]]",
		Normalization: dialect.NormCaseInsensitive,
	},
	Limit:         dialect.LimitTop,
	ReservedWords: append(ansi.CommonReservedWords(), "top", "go", "identity", "merge", "pivot", "unpivot"),
}

// TSQL is the built T-SQL dialect.
var TSQL = dialect.New(Config)

func init() {
	dialect.Register(TSQL)
}
