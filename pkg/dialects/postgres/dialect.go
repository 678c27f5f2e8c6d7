// Package postgres provides the PostgreSQL dialect definition.
package postgres

import (
	"github.com/sqlshift-labs/sqlshift/pkg/dialect"
	"github.com/sqlshift-labs/sqlshift/pkg/dialects/ansi"
)

// Config is the PostgreSQL dialect configuration: double-quoted identifiers,
// unquoted identifiers folded to lowercase, ILIKE and :: supported,
// OFFSET ... FETCH accepted next to LIMIT.
var Config = &dialect.Config{
	Name: "postgres",
	Identifiers: dialect.IdentifierConfig{
		Quote:         `"`,
		QuoteEnd:      `"`,
		Escape:        `""`,
		Normalization: dialect.NormLowercase,
	},
	Limit:                dialect.LimitOffset,
	SupportsIlike:        true,
	SupportsCastOperator: true,
	SupportsFetch:        true,
	ReservedWords: append(ansi.CommonReservedWords(),
		"analyze", "collate", "do", "fetch", "ilike", "lateral", "only",
		"placing", "returning", "variadic", "verbose", "window",
	),
}

// Postgres is the built PostgreSQL dialect.
var Postgres = dialect.New(Config)

func init() {
	dialect.Register(Postgres)
}
