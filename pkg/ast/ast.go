// Package ast defines the typed SQL syntax tree and the structural
// operations on it: depth-first search, clause attachment, and projection
// extraction. Nodes exclusively own their children; a tree produced by the
// parser never shares subtrees with another tree, so in-place mutation of
// one statement cannot alias another.
package ast

import "github.com/sqlshift-labs/sqlshift/pkg/token"

// Node is the interface implemented by every syntax tree node.
type Node interface {
	node()
}

// Statement represents a SQL statement.
type Statement interface {
	Node
	stmtNode()
}

// Expr represents an expression.
type Expr interface {
	Node
	exprNode()
}

// TableRef represents a table reference in a FROM clause.
type TableRef interface {
	Node
	tableRefNode()
}

// ---------- Statements ----------

// SelectStmt is a complete SELECT statement with an optional WITH clause.
type SelectStmt struct {
	With *WithClause
	Body *SelectBody
}

func (*SelectStmt) node()     {}
func (*SelectStmt) stmtNode() {}

// WithClause holds the CTE list of a WITH clause.
type WithClause struct {
	Recursive bool
	CTEs      []*CTE
}

func (*WithClause) node() {}

// CTE is a single common table expression.
type CTE struct {
	Name   string
	Select *SelectStmt
}

func (*CTE) node() {}

// SelectBody is a SELECT core with possible chained set operations.
type SelectBody struct {
	Left  *SelectCore
	Op    SetOpType   // set operation joining Left to Right, or SetOpNone
	Right *SelectBody // nil unless Op is set
}

func (*SelectBody) node() {}

// SetOpType is the type of a set operation.
type SetOpType string

// Set operation types.
const (
	SetOpNone      SetOpType = ""
	SetOpUnion     SetOpType = "UNION"
	SetOpUnionAll  SetOpType = "UNION ALL"
	SetOpIntersect SetOpType = "INTERSECT"
	SetOpExcept    SetOpType = "EXCEPT"
)

// SelectCore is a single SELECT clause with its attached clauses.
type SelectCore struct {
	Distinct bool
	Columns  []SelectItem
	From     *FromClause
	Where    Expr
	GroupBy  []Expr
	Having   Expr
	Qualify  Expr // dialects with a QUALIFY clause
	OrderBy  *OrderByClause
	Limit    *LimitClause
	Offset   Expr
}

func (*SelectCore) node() {}

// SelectItem is one item of the SELECT list.
type SelectItem struct {
	Star      bool   // SELECT *
	TableStar string // SELECT t.*
	Expr      Expr
	Alias     string
}

// OrderByClause holds the ordered sequence of sort keys.
type OrderByClause struct {
	Items []OrderByItem
}

func (*OrderByClause) node() {}

// OrderByItem is one sort key of an ORDER BY clause.
type OrderByItem struct {
	Expr       Expr
	Desc       bool
	NullsFirst *bool // nil means dialect default
}

// LimitClause holds the row-count limit expression. The renderer decides the
// spelling (LIMIT, TOP, FETCH FIRST) from the target dialect.
type LimitClause struct {
	Count Expr
}

func (*LimitClause) node() {}

// FromClause is the FROM clause: one source and any number of joins.
type FromClause struct {
	Source TableRef
	Joins  []*Join
}

func (*FromClause) node() {}

// Join is a single JOIN attached to a FROM clause.
type Join struct {
	Type      JoinType
	Right     TableRef
	Condition Expr     // ON clause, mutually exclusive with Using
	Using     []string // USING (col, ...) columns
}

func (*Join) node() {}

// JoinType is the SQL keyword form of a join ("INNER", "LEFT", ...).
type JoinType string

// Join types. JoinComma is the implicit cross join written with a comma.
const (
	JoinInner JoinType = "INNER"
	JoinLeft  JoinType = "LEFT"
	JoinRight JoinType = "RIGHT"
	JoinFull  JoinType = "FULL"
	JoinCross JoinType = "CROSS"
	JoinComma JoinType = ","
)

// ---------- Table references ----------

// TableName is a possibly qualified table name reference.
type TableName struct {
	Catalog string
	Schema  string
	Name    string
	Alias   string
}

func (*TableName) node()         {}
func (*TableName) tableRefNode() {}

// DerivedTable is a subquery in a FROM clause.
type DerivedTable struct {
	Select *SelectStmt
	Alias  string
}

func (*DerivedTable) node()         {}
func (*DerivedTable) tableRefNode() {}

// LateralTable is a LATERAL subquery in a FROM clause.
type LateralTable struct {
	Select *SelectStmt
	Alias  string
}

func (*LateralTable) node()         {}
func (*LateralTable) tableRefNode() {}

// ---------- Expressions ----------

// ColumnRef is a possibly qualified column reference.
type ColumnRef struct {
	Table  string
	Column string
}

func (*ColumnRef) node()     {}
func (*ColumnRef) exprNode() {}

// LiteralType is the type of a literal value.
type LiteralType int

// Literal value types.
const (
	LiteralNumber LiteralType = iota
	LiteralString
	LiteralBool
	LiteralNull
)

// Literal is a literal value. Value holds the raw text for numbers and the
// unescaped body for strings.
type Literal struct {
	Type  LiteralType
	Value string
}

func (*Literal) node()     {}
func (*Literal) exprNode() {}

// BinaryExpr is a binary operation.
type BinaryExpr struct {
	Left  Expr
	Op    token.Type
	Right Expr
}

func (*BinaryExpr) node()     {}
func (*BinaryExpr) exprNode() {}

// UnaryExpr is a unary operation (NOT, -, +).
type UnaryExpr struct {
	Op   token.Type
	Expr Expr
}

func (*UnaryExpr) node()     {}
func (*UnaryExpr) exprNode() {}

// FuncCall is a function call, optionally windowed.
type FuncCall struct {
	Name     string
	Distinct bool
	Star     bool // COUNT(*)
	Args     []Expr
	Window   *WindowSpec // OVER clause
}

func (*FuncCall) node()     {}
func (*FuncCall) exprNode() {}

// WindowSpec is an OVER clause specification.
type WindowSpec struct {
	PartitionBy []Expr
	OrderBy     *OrderByClause
}

func (*WindowSpec) node() {}

// CaseExpr is a CASE expression.
type CaseExpr struct {
	Operand Expr // CASE operand WHEN ... (optional)
	Whens   []WhenClause
	Else    Expr
}

func (*CaseExpr) node()     {}
func (*CaseExpr) exprNode() {}

// WhenClause is one WHEN ... THEN ... arm of a CASE expression.
type WhenClause struct {
	Condition Expr
	Result    Expr
}

// CastExpr is a CAST(expr AS type) or expr::type expression.
type CastExpr struct {
	Expr     Expr
	TypeName string
	Operator bool // written with the :: operator
}

func (*CastExpr) node()     {}
func (*CastExpr) exprNode() {}

// InExpr is an [NOT] IN expression over a value list or a subquery.
type InExpr struct {
	Expr   Expr
	Not    bool
	Values []Expr
	Query  *SelectStmt
}

func (*InExpr) node()     {}
func (*InExpr) exprNode() {}

// BetweenExpr is a [NOT] BETWEEN expression.
type BetweenExpr struct {
	Expr Expr
	Not  bool
	Low  Expr
	High Expr
}

func (*BetweenExpr) node()     {}
func (*BetweenExpr) exprNode() {}

// IsNullExpr is an IS [NOT] NULL expression.
type IsNullExpr struct {
	Expr Expr
	Not  bool
}

func (*IsNullExpr) node()     {}
func (*IsNullExpr) exprNode() {}

// IsBoolExpr is an IS [NOT] TRUE/FALSE expression.
type IsBoolExpr struct {
	Expr  Expr
	Not   bool
	Value bool
}

func (*IsBoolExpr) node()     {}
func (*IsBoolExpr) exprNode() {}

// LikeExpr is a [NOT] LIKE or ILIKE expression.
type LikeExpr struct {
	Expr    Expr
	Not     bool
	Pattern Expr
	Op      token.Type // token.LIKE or token.ILIKE
}

func (*LikeExpr) node()     {}
func (*LikeExpr) exprNode() {}

// ParenExpr is a parenthesized expression.
type ParenExpr struct {
	Expr Expr
}

func (*ParenExpr) node()     {}
func (*ParenExpr) exprNode() {}

// StarExpr is a * expression, optionally table-qualified.
type StarExpr struct {
	Table string
}

func (*StarExpr) node()     {}
func (*StarExpr) exprNode() {}

// SubqueryExpr is a parenthesized subquery used as a scalar expression.
type SubqueryExpr struct {
	Select *SelectStmt
}

func (*SubqueryExpr) node()     {}
func (*SubqueryExpr) exprNode() {}

// ExistsExpr is an [NOT] EXISTS (subquery) expression.
type ExistsExpr struct {
	Not    bool
	Select *SelectStmt
}

func (*ExistsExpr) node()     {}
func (*ExistsExpr) exprNode() {}
