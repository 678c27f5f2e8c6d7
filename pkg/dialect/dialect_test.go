package dialect_test

import (
	"testing"

	"github.com/sqlshift-labs/sqlshift/pkg/dialect"
	"github.com/sqlshift-labs/sqlshift/pkg/token"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestDialect(cfg dialect.Config) *dialect.Dialect {
	if cfg.Identifiers.Quote == "" {
		cfg.Identifiers = dialect.IdentifierConfig{Quote: `"`, QuoteEnd: `"`, Escape: `""`}
	}
	return dialect.New(&cfg)
}

func TestNormalizeName(t *testing.T) {
	tests := []struct {
		name     string
		strategy dialect.NormalizationStrategy
		in, want string
	}{
		{"lowercase", dialect.NormLowercase, "MyCol", "mycol"},
		{"uppercase", dialect.NormUppercase, "MyCol", "MYCOL"},
		{"case sensitive", dialect.NormCaseSensitive, "MyCol", "MyCol"},
		{"case insensitive", dialect.NormCaseInsensitive, "MyCol", "MyCol"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := newTestDialect(dialect.Config{
				Name: "test",
				Identifiers: dialect.IdentifierConfig{
					Quote: `"`, QuoteEnd: `"`, Escape: `""`,
					Normalization: tt.strategy,
				},
			})
			assert.Equal(t, tt.want, d.NormalizeName(tt.in))
		})
	}
}

func TestNeedsQuoting(t *testing.T) {
	d := newTestDialect(dialect.Config{
		Name: "test",
		Identifiers: dialect.IdentifierConfig{
			Quote: `"`, QuoteEnd: `"`, Escape: `""`,
			Normalization: dialect.NormLowercase,
		},
		ReservedWords: []string{"order", "select"},
	})

	assert.False(t, d.NeedsQuoting("plain_name"))
	assert.True(t, d.NeedsQuoting("order"), "reserved word")
	assert.True(t, d.NeedsQuoting("ORDER"), "reserved word, any case")
	assert.True(t, d.NeedsQuoting("has space"))
	assert.True(t, d.NeedsQuoting("1starts_with_digit"))
	assert.True(t, d.NeedsQuoting(""))
	// mixed case would not survive lowercase folding
	assert.True(t, d.NeedsQuoting("MyCol"))
}

func TestQuoteIdentifier(t *testing.T) {
	d := newTestDialect(dialect.Config{Name: "test"})
	assert.Equal(t, `"a"`, d.QuoteIdentifier("a"))
	assert.Equal(t, `"a""b"`, d.QuoteIdentifier(`a"b`))

	brackets := dialect.New(&dialect.Config{
		Name:        "brackets",
		Identifiers: dialect.IdentifierConfig{Quote: "[", QuoteEnd: "]", Escape: "]]"},
	})
	assert.Equal(t, "[a]]b]", brackets.QuoteIdentifier("a]b"))
}

func TestEscapeString(t *testing.T) {
	plain := newTestDialect(dialect.Config{Name: "plain"})
	assert.Equal(t, "it''s", plain.EscapeString("it's"))
	assert.Equal(t, `a\b`, plain.EscapeString(`a\b`))

	backslash := newTestDialect(dialect.Config{Name: "bs", BackslashStrings: true})
	assert.Equal(t, `a\\b`, backslash.EscapeString(`a\b`))
	assert.Equal(t, `it''s \\`, backslash.EscapeString(`it's \`))
}

func TestFeatureFlagsWireKeywords(t *testing.T) {
	d := newTestDialect(dialect.Config{
		Name:          "test",
		SupportsIlike: true,
		Limit:         dialect.LimitTop,
	})

	typ, ok := d.LookupKeyword("ilike")
	require.True(t, ok)
	assert.Equal(t, token.ILIKE, typ)

	typ, ok = d.LookupKeyword("TOP")
	require.True(t, ok, "keyword lookup is case-blind")
	assert.Equal(t, token.TOP, typ)

	_, ok = d.LookupKeyword("fetch")
	assert.False(t, ok, "fetch is not wired without the flag")

	_, ok = d.LookupKeyword("qualify")
	assert.False(t, ok)
}

func TestRegistry(t *testing.T) {
	d := newTestDialect(dialect.Config{Name: "registry-test"})
	dialect.Register(d)

	got, ok := dialect.Get("registry-test")
	require.True(t, ok)
	assert.Same(t, d, got)

	_, ok = dialect.Get("does-not-exist")
	assert.False(t, ok)

	assert.Contains(t, dialect.List(), "registry-test")
}
