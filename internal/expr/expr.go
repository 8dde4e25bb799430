package expr

// Expr represents a boolean expression.
//
// The grammar is deliberately small:
//
//	<expr> = F | T | <variable> | (!<expr>) | (<expr> & <expr>) | (<expr> | <expr>)
//
// Every variant is an immutable value type, so larger expressions share
// subtrees freely instead of copying them.
type Expr interface {
	isExpr()
	String() string
}

// Bool represents a boolean constant, rendered as "T" or "F".
type Bool bool

const (
	False Bool = false
	True  Bool = true
)

func (Bool) isExpr() {}
func (b Bool) String() string {
	if b {
		return "T"
	}
	return "F"
}

// Var represents a variable reference. Names are restricted to single
// lowercase letters by the tokenizer.
type Var struct {
	Name byte
}

func (Var) isExpr() {}
func (v Var) String() string {
	return string(v.Name)
}

// BinOp represents the binary connectives.
type BinOp int

const (
	_ BinOp = iota
	OpAnd
	OpOr
)

func (op BinOp) String() string {
	switch op {
	case OpAnd:
		return "&"
	case OpOr:
		return "|"
	default:
		return "?"
	}
}

// Dual returns the other connective: And for Or, Or for And.
// Used for formulating distributivity and factoring.
func (op BinOp) Dual() BinOp {
	switch op {
	case OpAnd:
		return OpOr
	case OpOr:
		return OpAnd
	default:
		return op
	}
}

// NotExpr represents unary negation.
type NotExpr struct {
	Arg Expr
}

func (NotExpr) isExpr() {}
func (e NotExpr) String() string {
	return "(!" + e.Arg.String() + ")"
}

// BinaryExpr represents a binary connective applied to two subexpressions.
type BinaryExpr struct {
	Op    BinOp
	Left  Expr
	Right Expr
}

func (BinaryExpr) isExpr() {}
func (e BinaryExpr) String() string {
	return "(" + e.Left.String() + " " + e.Op.String() + " " + e.Right.String() + ")"
}

// Helper functions to construct expressions.

// V creates a variable reference.
func V(name byte) Expr {
	return Var{Name: name}
}

// Not creates a negation.
func Not(e Expr) Expr {
	return NotExpr{Arg: e}
}

// And creates a conjunction.
func And(left, right Expr) Expr {
	return BinaryExpr{Op: OpAnd, Left: left, Right: right}
}

// Or creates a disjunction.
func Or(left, right Expr) Expr {
	return BinaryExpr{Op: OpOr, Left: left, Right: right}
}

// Binary creates a binary expression with an explicit connective.
func Binary(op BinOp, left, right Expr) Expr {
	return BinaryExpr{Op: op, Left: left, Right: right}
}

// Equal reports whether two expressions are structurally equal.
func Equal(a, b Expr) bool {
	switch a := a.(type) {
	case Bool:
		b, ok := b.(Bool)
		return ok && a == b
	case Var:
		b, ok := b.(Var)
		return ok && a == b
	case NotExpr:
		b, ok := b.(NotExpr)
		return ok && Equal(a.Arg, b.Arg)
	case BinaryExpr:
		b, ok := b.(BinaryExpr)
		return ok && a.Op == b.Op && Equal(a.Left, b.Left) && Equal(a.Right, b.Right)
	default:
		return false
	}
}
