// Package hive provides the Apache Hive dialect definition.
package hive

import (
	"github.com/sqlshift-labs/sqlshift/pkg/dialect"
	"github.com/sqlshift-labs/sqlshift/pkg/dialects/ansi"
)

// Config is the Hive dialect configuration: backtick identifiers folded to
// lowercase, backslash string escapes, plain LIMIT.
var Config = &dialect.Config{
	Name: "hive",
	Identifiers: dialect.IdentifierConfig{
		Quote:         "`",
		QuoteEnd:      "`",
		Escape:        "``",
		Normalization: dialect.NormLowercase,
	},
	Limit:            dialect.LimitOffset,
	BackslashStrings: true,
	ReservedWords:    append(ansi.CommonReservedWords(), "cluster", "partition", "sort", "transform"),
}

// Hive is the built Hive dialect.
var Hive = dialect.New(Config)

func init() {
	dialect.Register(Hive)
}
