// Package redshift provides the Amazon Redshift dialect definition.
package redshift

import (
	"github.com/sqlshift-labs/sqlshift/pkg/dialect"
	"github.com/sqlshift-labs/sqlshift/pkg/dialects/ansi"
)

// Config is the Redshift dialect configuration. Redshift follows Postgres
// quoting and operators but without the FETCH clause.
var Config = &dialect.Config{
	Name: "redshift",
	Identifiers: dialect.IdentifierConfig{
		Quote:         `"`,
		QuoteEnd:      `"`,
		Escape:        `""`,
		Normalization: dialect.NormLowercase,
	},
	Limit:                dialect.LimitOffset,
	SupportsIlike:        true,
	SupportsCastOperator: true,
	ReservedWords:        append(ansi.CommonReservedWords(), "ilike", "sortkey", "distkey", "unload"),
}

// Redshift is the built Redshift dialect.
var Redshift = dialect.New(Config)

func init() {
	dialect.Register(Redshift)
}
