// Package sqlite provides the SQLite dialect definition.
package sqlite

import (
	"github.com/sqlshift-labs/sqlshift/pkg/dialect"
	"github.com/sqlshift-labs/sqlshift/pkg/dialects/ansi"
)

// Config is the SQLite dialect configuration. SQLite quotes with double
// quotes, compares identifiers case-blind, and uses plain LIMIT/OFFSET.
var Config = &dialect.Config{
	Name: "sqlite",
	Identifiers: dialect.IdentifierConfig{
		Quote:         `"`,
		QuoteEnd:      `"`,
		Escape:        `""`,
		Normalization: dialect.NormCaseInsensitive,
	},
	Limit:         dialect.LimitOffset,
	ReservedWords: append(ansi.CommonReservedWords(), "autoincrement", "glob", "index", "transaction"),
}

// SQLite is the built SQLite dialect.
var SQLite = dialect.New(Config)

func init() {
	dialect.Register(SQLite)
}
