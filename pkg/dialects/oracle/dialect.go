// Package oracle provides the Oracle dialect definition.
package oracle

import (
	"github.com/sqlshift-labs/sqlshift/pkg/dialect"
	"github.com/sqlshift-labs/sqlshift/pkg/dialects/ansi"
)

// Config is the Oracle dialect configuration: double-quoted identifiers
// folded to uppercase, row limits spelled OFFSET ... FETCH FIRST ... ROWS ONLY.
var Config = &dialect.Config{
	Name: "oracle",
	Identifiers: dialect.IdentifierConfig{
		Quote:         `"`,
		QuoteEnd:      `"`,
		Escape:        `""`,
		Normalization: dialect.NormUppercase,
	},
	Limit:         dialect.LimitFetch,
	ReservedWords: append(ansi.CommonReservedWords(), "connect", "level", "minus", "rownum", "start", "sysdate"),
}

// Oracle is the built Oracle dialect.
var Oracle = dialect.New(Config)

func init() {
	dialect.Register(Oracle)
}
