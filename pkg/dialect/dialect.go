// Package dialect provides SQL dialect descriptors and their registry.
//
// A Dialect is pure configuration: identifier quoting rules, string escaping,
// the limit clause style, feature flags, and keyword/reserved-word sets.
// The parser and the renderer consult these fields at their decision points;
// there is no per-dialect behavior beyond lookup. Concrete dialects are
// registered from pkg/dialects/*/ packages.
package dialect

import (
	"strings"

	"github.com/sqlshift-labs/sqlshift/pkg/token"
)

// NormalizationStrategy defines how unquoted identifiers are normalized.
type NormalizationStrategy int

const (
	// NormLowercase folds unquoted identifiers to lowercase (postgres, hive).
	NormLowercase NormalizationStrategy = iota
	// NormUppercase folds unquoted identifiers to uppercase (oracle, snowflake).
	NormUppercase
	// NormCaseSensitive preserves identifier case exactly (mysql, sparksql).
	NormCaseSensitive
	// NormCaseInsensitive preserves case but compares case-blind (sqlite, tsql, bigquery).
	NormCaseInsensitive
)

// LimitStyle defines how a row-count limit is spelled in the dialect.
type LimitStyle int

const (
	// LimitOffset renders LIMIT n [OFFSET m] (most dialects).
	LimitOffset LimitStyle = iota
	// LimitTop renders SELECT TOP n ... (tsql).
	LimitTop
	// LimitFetch renders [OFFSET m ROWS] FETCH FIRST n ROWS ONLY (oracle).
	LimitFetch
)

// IdentifierConfig defines how identifiers are quoted and normalized.
type IdentifierConfig struct {
	Quote         string // opening quote: ", `, [
	QuoteEnd      string // closing quote (same as Quote except ] for [)
	Escape        string // escape for a closing quote inside the name: "", ``, ]]
	Normalization NormalizationStrategy
}

// Config holds the static configuration for a SQL dialect.
// This is pure data; Build derives the runtime lookup maps from it.
type Config struct {
	Name        string
	Identifiers IdentifierConfig

	// Limit controls both which limit syntax the parser accepts and which
	// form the renderer emits.
	Limit LimitStyle

	// BackslashStrings marks dialects where backslash escapes are live
	// inside string literals (mysql, bigquery, hive, sparksql).
	BackslashStrings bool

	// Feature flags, auto-wired into the keyword set by Build.
	SupportsIlike        bool // ILIKE operator
	SupportsQualify      bool // QUALIFY clause
	SupportsCastOperator bool // :: postfix cast
	SupportsFetch        bool // OFFSET ... FETCH clause accepted on parse

	// ReservedWords are identifiers that must be quoted on render.
	ReservedWords []string
}

// Dialect is a built, immutable dialect descriptor.
// It is shared read-only by the parser and the renderer.
type Dialect struct {
	Name        string
	Identifiers IdentifierConfig
	Limit       LimitStyle

	BackslashStrings     bool
	SupportsIlike        bool
	SupportsQualify      bool
	SupportsCastOperator bool
	SupportsFetch        bool

	keywords      map[string]token.Type
	reservedWords map[string]struct{}
}

// New builds a Dialect from its configuration, wiring feature flags into
// the dialect keyword set.
func New(cfg *Config) *Dialect {
	d := &Dialect{
		Name:                 cfg.Name,
		Identifiers:          cfg.Identifiers,
		Limit:                cfg.Limit,
		BackslashStrings:     cfg.BackslashStrings,
		SupportsIlike:        cfg.SupportsIlike,
		SupportsQualify:      cfg.SupportsQualify,
		SupportsCastOperator: cfg.SupportsCastOperator,
		SupportsFetch:        cfg.SupportsFetch,
		keywords:             make(map[string]token.Type),
		reservedWords:        make(map[string]struct{}),
	}

	if cfg.SupportsIlike {
		d.addKeyword("ilike")
	}
	if cfg.SupportsQualify {
		d.addKeyword("qualify")
	}
	if cfg.Limit == LimitTop {
		d.addKeyword("top")
		d.addKeyword("percent")
		d.addKeyword("ties")
	}
	if cfg.SupportsFetch || cfg.Limit == LimitFetch {
		d.addKeyword("fetch")
		d.addKeyword("next")
		d.addKeyword("only")
		d.addKeyword("percent")
		d.addKeyword("ties")
	}

	for _, w := range cfg.ReservedWords {
		d.reservedWords[strings.ToLower(w)] = struct{}{}
	}

	return d
}

func (d *Dialect) addKeyword(name string) {
	if t, ok := token.LookupExtended(name); ok {
		d.keywords[name] = t
	}
}

// GetName returns the dialect name.
func (d *Dialect) GetName() string {
	return d.Name
}

// LookupKeyword returns the token type for a dialect keyword.
// Returns IDENT and false if the word is not a keyword under this dialect.
func (d *Dialect) LookupKeyword(name string) (token.Type, bool) {
	if t, ok := d.keywords[strings.ToLower(name)]; ok {
		return t, true
	}
	return token.IDENT, false
}

// NormalizeName normalizes an unquoted identifier according to dialect rules.
func (d *Dialect) NormalizeName(name string) string {
	switch d.Identifiers.Normalization {
	case NormUppercase:
		return strings.ToUpper(name)
	case NormLowercase:
		return strings.ToLower(name)
	default:
		return name
	}
}

// IsReservedWord returns true if the word needs quoting when used as an identifier.
func (d *Dialect) IsReservedWord(word string) bool {
	_, ok := d.reservedWords[strings.ToLower(word)]
	return ok
}

// QuoteIdentifier quotes an identifier using the dialect's quote characters,
// escaping embedded closing quotes.
func (d *Dialect) QuoteIdentifier(name string) string {
	escaped := strings.ReplaceAll(name, d.Identifiers.QuoteEnd, d.Identifiers.Escape)
	return d.Identifiers.Quote + escaped + d.Identifiers.QuoteEnd
}

// NeedsQuoting reports whether an identifier must be quoted on render:
// reserved words, names with characters outside [A-Za-z0-9_], and names
// whose case would not survive the dialect's unquoted normalization.
func (d *Dialect) NeedsQuoting(name string) bool {
	if name == "" || d.IsReservedWord(name) {
		return true
	}
	if !isPlainIdent(name) {
		return true
	}
	switch d.Identifiers.Normalization {
	case NormLowercase:
		return name != strings.ToLower(name)
	case NormUppercase:
		return name != strings.ToUpper(name)
	default:
		return false
	}
}

// QuoteIdentifierIfNeeded quotes an identifier only when NeedsQuoting says so.
func (d *Dialect) QuoteIdentifierIfNeeded(name string) string {
	if d.NeedsQuoting(name) {
		return d.QuoteIdentifier(name)
	}
	return name
}

// EscapeString escapes a string literal body for this dialect. Single quotes
// are doubled everywhere; backslashes are doubled where they are live.
func (d *Dialect) EscapeString(s string) string {
	if d.BackslashStrings {
		s = strings.ReplaceAll(s, `\`, `\\`)
	}
	return strings.ReplaceAll(s, "'", "''")
}

func isPlainIdent(name string) bool {
	for i := 0; i < len(name); i++ {
		c := name[i]
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c == '_':
		case c >= '0' && c <= '9':
			if i == 0 {
				return false
			}
		default:
			return false
		}
	}
	return true
}
