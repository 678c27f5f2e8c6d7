// Package snowflake provides the Snowflake dialect definition.
package snowflake

import (
	"github.com/sqlshift-labs/sqlshift/pkg/dialect"
	"github.com/sqlshift-labs/sqlshift/pkg/dialects/ansi"
)

// Config is the Snowflake dialect configuration: double-quoted identifiers
// folded to uppercase, ILIKE, :: and QUALIFY supported.
var Config = &dialect.Config{
	Name: "snowflake",
	Identifiers: dialect.IdentifierConfig{
		Quote:         `"`,
		QuoteEnd:      `"`,
		Escape:        `""`,
		Normalization: dialect.NormUppercase,
	},
	Limit:                dialect.LimitOffset,
	SupportsIlike:        true,
	SupportsCastOperator: true,
	SupportsQualify:      true,
	SupportsFetch:        true,
	ReservedWords:        append(ansi.CommonReservedWords(), "ilike", "qualify", "sample", "minus"),
}

// Snowflake is the built Snowflake dialect.
var Snowflake = dialect.New(Config)

func init() {
	dialect.Register(Snowflake)
}
