// Package mysql provides the MySQL dialect definition.
package mysql

import (
	"github.com/sqlshift-labs/sqlshift/pkg/dialect"
	"github.com/sqlshift-labs/sqlshift/pkg/dialects/ansi"
)

// Config is the MySQL dialect configuration: backtick identifiers, case
// preserved, backslash escapes live in string literals.
var Config = &dialect.Config{
	Name: "mysql",
	Identifiers: dialect.IdentifierConfig{
		Quote:         "`",
		QuoteEnd:      "`",
		Escape:        "``",
		Normalization: dialect.NormCaseSensitive,
	},
	Limit:            dialect.LimitOffset,
	BackslashStrings: true,
	ReservedWords: append(ansi.CommonReservedWords(),
		"div", "key", "keys", "rank", "schema", "separator", "show",
	),
}

// MySQL is the built MySQL dialect.
var MySQL = dialect.New(Config)

func init() {
	dialect.Register(MySQL)
}
