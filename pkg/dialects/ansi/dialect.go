// Package ansi provides the baseline SQL dialect, registered under the
// name "default". Other dialects deviate from this configuration only in
// quoting, normalization, limit style, and feature flags.
package ansi

import "github.com/sqlshift-labs/sqlshift/pkg/dialect"

// commonReservedWords are reserved in essentially every SQL dialect and are
// shared by the other dialect packages as a baseline.
var commonReservedWords = []string{
	"all", "and", "as", "asc", "between", "by", "case", "cast", "cross",
	"desc", "distinct", "else", "end", "except", "exists", "from", "full",
	"group", "having", "in", "inner", "intersect", "is", "join", "left",
	"like", "limit", "not", "null", "offset", "on", "or", "order", "outer",
	"right", "select", "table", "then", "union", "user", "using", "when",
	"where", "with",
}

// CommonReservedWords returns a copy of the baseline reserved-word list for
// use by other dialect packages.
func CommonReservedWords() []string {
	words := make([]string, len(commonReservedWords))
	copy(words, commonReservedWords)
	return words
}

// Config is the default dialect configuration: double-quoted identifiers,
// case preserved, LIMIT/OFFSET with FETCH accepted on parse (SQL:2008).
var Config = &dialect.Config{
	Name: "default",
	Identifiers: dialect.IdentifierConfig{
		Quote:         `"`,
		QuoteEnd:      `"`,
		Escape:        `""`,
		Normalization: dialect.NormCaseInsensitive,
	},
	Limit:         dialect.LimitOffset,
	SupportsFetch: true,
	ReservedWords: commonReservedWords,
}

// Default is the built default dialect.
var Default = dialect.New(Config)

func init() {
	dialect.Register(Default)
}
