// Package engine exposes the query surface: validate, manipulate, transpile,
// column extraction, and tree dump. It ties the dialect registry, the parser,
// the tree operations, and the renderer together behind one error taxonomy.
package engine

import (
	"sync"

	"github.com/golang/groupcache/lru"

	"github.com/sqlshift-labs/sqlshift/pkg/ast"
	"github.com/sqlshift-labs/sqlshift/pkg/dialect"
	"github.com/sqlshift-labs/sqlshift/pkg/parser"
	"github.com/sqlshift-labs/sqlshift/pkg/render"
)

// DefaultCacheSize is the validation cache capacity used when Options leaves
// CacheSize zero.
const DefaultCacheSize = 1024

// Options configures an Engine.
type Options struct {
	// CacheSize caps the validation result cache. Negative disables caching.
	CacheSize int

	// ReplaceOrder makes Manipulate replace an existing ORDER BY instead of
	// leaving the statement untouched.
	ReplaceOrder bool
}

// Engine implements the query operations. It is safe for concurrent use.
//
// Only validation outcomes are cached. Parsed trees are never cached:
// Manipulate mutates trees in place, and a shared cached tree would alias
// the mutation across requests.
type Engine struct {
	opts Options

	mu    sync.Mutex
	cache *lru.Cache
}

// New creates an Engine.
func New(opts Options) *Engine {
	e := &Engine{opts: opts}
	if opts.CacheSize >= 0 {
		size := opts.CacheSize
		if size == 0 {
			size = DefaultCacheSize
		}
		e.cache = lru.New(size)
	}
	return e
}

// ManipulateOptions are the per-call knobs of Manipulate.
type ManipulateOptions struct {
	// WithOrder attaches ORDER BY 1 when the statement has no ORDER BY.
	WithOrder bool
	// Limit attaches LIMIT n when positive; zero leaves the statement alone.
	Limit int
}

// lookup resolves a dialect name, mapping the empty name to "default".
func (e *Engine) lookup(name string) (*dialect.Dialect, *Error) {
	if name == "" {
		name = "default"
	}
	d, ok := dialect.Get(name)
	if !ok {
		return nil, invalidArgf("unknown dialect %q", name)
	}
	return d, nil
}

func (e *Engine) parse(sql, dialectName string) (*ast.SelectStmt, *dialect.Dialect, *Error) {
	d, eerr := e.lookup(dialectName)
	if eerr != nil {
		return nil, nil, eerr
	}
	stmt, err := parser.Parse(sql, d)
	if err != nil {
		return nil, nil, classify(err)
	}
	return stmt, d, nil
}

// Validate parses the statement under the named dialect and reports whether
// it is well formed. Outcomes are cached per (dialect, sql) pair.
func (e *Engine) Validate(sql, dialectName string) error {
	key := dialectName + "\x00" + sql

	if e.cache != nil {
		e.mu.Lock()
		v, ok := e.cache.Get(key)
		e.mu.Unlock()
		if ok {
			if v == nil {
				return nil
			}
			return v.(*Error)
		}
	}

	_, _, eerr := e.parse(sql, dialectName)

	if e.cache != nil {
		e.mu.Lock()
		if eerr == nil {
			e.cache.Add(key, nil)
		} else {
			e.cache.Add(key, eerr)
		}
		e.mu.Unlock()
	}

	if eerr != nil {
		return eerr
	}
	return nil
}

// Manipulate parses the statement under the default dialect, optionally
// attaches ORDER BY 1 and a LIMIT, and renders it in the target dialect.
func (e *Engine) Manipulate(sql, dialectName string, opts ManipulateOptions) (string, error) {
	if opts.Limit < 0 {
		return "", invalidArgf("limit must not be negative, got %d", opts.Limit)
	}

	target, eerr := e.lookup(dialectName)
	if eerr != nil {
		return "", eerr
	}

	stmt, _, eerr := e.parse(sql, "default")
	if eerr != nil {
		return "", eerr
	}

	if opts.WithOrder {
		if err := ast.AttachOrderBy(stmt, ast.PositionalOrderBy(1), e.opts.ReplaceOrder); err != nil {
			return "", classify(err)
		}
	}
	if opts.Limit > 0 {
		if err := ast.AttachLimit(stmt, opts.Limit); err != nil {
			return "", classify(err)
		}
	}

	out, err := render.SQL(stmt, target)
	if err != nil {
		return "", classify(err)
	}
	return out, nil
}

// Transpile parses the statement under the source dialect and renders it in
// the target dialect. Both names are checked before parsing.
func (e *Engine) Transpile(sql, from, to string) (string, error) {
	target, eerr := e.lookup(to)
	if eerr != nil {
		return "", eerr
	}
	stmt, _, eerr := e.parse(sql, from)
	if eerr != nil {
		return "", eerr
	}
	out, err := render.SQL(stmt, target)
	if err != nil {
		return "", classify(err)
	}
	return out, nil
}

// Columns returns the projection column texts of the outermost SELECT.
func (e *Engine) Columns(sql, dialectName string) ([]string, error) {
	stmt, _, eerr := e.parse(sql, dialectName)
	if eerr != nil {
		return nil, eerr
	}
	cols, err := ast.ProjectionColumns(stmt)
	if err != nil {
		return nil, classify(err)
	}
	return cols, nil
}

// ParseToTree returns an indented textual dump of the statement's tree.
func (e *Engine) ParseToTree(sql, dialectName string) (string, error) {
	stmt, _, eerr := e.parse(sql, dialectName)
	if eerr != nil {
		return "", eerr
	}
	return ast.Dump(stmt), nil
}

// Dialects returns the names of all registered dialects, sorted.
func (e *Engine) Dialects() []string {
	return dialect.List()
}

// CacheLen reports the number of cached validation outcomes.
func (e *Engine) CacheLen() int {
	if e.cache == nil {
		return 0
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.cache.Len()
}
