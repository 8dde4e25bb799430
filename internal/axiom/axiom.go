// Package axiom implements rewrites of boolean expressions into equivalent
// expressions via boolean algebra axioms.
//
// Each function takes an expression and returns an equivalent one, or an
// *ActionError when the input does not have a shape the axiom applies to.
// The axioms are commutativity, identity, distributivity, and complements;
// associativity and absorption are omitted since they are derivable from the
// others. Functions named Apply* and Distribute/Factor apply an axiom in one
// direction only; the Introduce*/Expand* functions are their converses.
package axiom

import (
	"strings"

	"github.com/gnoswap-labs/boolzip/internal/expr"
)

// ActionError is returned upon attempts to apply an axiom in an inapplicable
// manner. It carries the attempted action and the transformations the action
// does support, for direct user display.
type ActionError struct {
	Action string
	Valid  []string
}

func (e *ActionError) Error() string {
	return "cannot " + e.Action + " -- valid transformations are:\n" + strings.Join(e.Valid, "\n")
}

// ApplyCommutativity swaps the operands of a binary connective.
//
//	(a | b) -> (b | a), (a & b) -> (b & a)
func ApplyCommutativity(e expr.Expr) (expr.Expr, error) {
	bin, ok := e.(expr.BinaryExpr)
	if !ok {
		return nil, &ActionError{
			Action: "apply commutativity",
			Valid:  []string{"(a | b) -> (b | a)", "(a & b) -> (b & a)"},
		}
	}
	return expr.Binary(bin.Op, bin.Right, bin.Left), nil
}

// ApplyIdentity removes a neutral right operand.
//
//	(a | F) -> a, (a & T) -> a
func ApplyIdentity(e expr.Expr) (expr.Expr, error) {
	if bin, ok := e.(expr.BinaryExpr); ok {
		if c, ok := bin.Right.(expr.Bool); ok {
			if (bin.Op == expr.OpOr && c == expr.False) || (bin.Op == expr.OpAnd && c == expr.True) {
				return bin.Left, nil
			}
		}
	}
	return nil, &ActionError{
		Action: "apply identity",
		Valid:  []string{"(a | F) -> a", "(a & T) -> a"},
	}
}

// IntroduceOrFalse applies identity in reverse, OR version.
// Always applicable, so it never fails.
//
//	a -> (a | F)
func IntroduceOrFalse(e expr.Expr) (expr.Expr, error) {
	return expr.Or(e, expr.False), nil
}

// IntroduceAndTrue applies identity in reverse, AND version.
// Always applicable, so it never fails.
//
//	a -> (a & T)
func IntroduceAndTrue(e expr.Expr) (expr.Expr, error) {
	return expr.And(e, expr.True), nil
}

// Distribute applies distributivity left to right.
//
//	(a | [b & c]) -> ([a | b] & [a | c]), (a & [b | c]) -> ([a & b] | [a & c])
func Distribute(e expr.Expr) (expr.Expr, error) {
	if outer, ok := e.(expr.BinaryExpr); ok {
		if inner, ok := outer.Right.(expr.BinaryExpr); ok && outer.Op.Dual() == inner.Op {
			a, b, c := outer.Left, inner.Left, inner.Right
			return expr.Binary(inner.Op,
				expr.Binary(outer.Op, a, b),
				expr.Binary(outer.Op, a, c)), nil
		}
	}
	return nil, &ActionError{
		Action: "distribute",
		Valid: []string{
			"(a | [b & c]) -> ([a | b] & [a | c])",
			"(a & [b | c]) -> ([a & b] | [a & c])",
		},
	}
}

// Factor applies distributivity right to left. The left operands of both
// inner expressions must be structurally equal; matching right operands is
// deliberately not attempted, mirroring the one-directional Distribute.
//
//	([a | b] & [a | c]) -> (a | [b & c]), ([a & b] | [a & c]) -> (a & [b | c])
func Factor(e expr.Expr) (expr.Expr, error) {
	if outer, ok := e.(expr.BinaryExpr); ok {
		left, lok := outer.Left.(expr.BinaryExpr)
		right, rok := outer.Right.(expr.BinaryExpr)
		if lok && rok &&
			left.Op == right.Op &&
			left.Op.Dual() == outer.Op &&
			expr.Equal(left.Left, right.Left) {
			a, b, c := left.Left, left.Right, right.Right
			return expr.Binary(left.Op, a, expr.Binary(outer.Op, b, c)), nil
		}
	}
	return nil, &ActionError{
		Action: "factor",
		Valid: []string{
			"([a | b] & [a | c]) -> (a | [b & c])",
			"([a & b] | [a & c]) -> (a & [b | c])",
		},
	}
}

// ApplyComplements collapses an expression joined with its own negation.
//
//	(a | [!a]) -> T, (a & [!a]) -> F
func ApplyComplements(e expr.Expr) (expr.Expr, error) {
	if bin, ok := e.(expr.BinaryExpr); ok {
		if not, ok := bin.Right.(expr.NotExpr); ok && expr.Equal(bin.Left, not.Arg) {
			switch bin.Op {
			case expr.OpOr:
				return expr.True, nil
			case expr.OpAnd:
				return expr.False, nil
			}
		}
	}
	return nil, &ActionError{
		Action: "apply complements",
		Valid:  []string{"(a | [!a]) -> T", "(a & [!a]) -> F"},
	}
}

// ExpandIntoComplements applies complements in reverse. The witness must be
// provided explicitly, since it is not recoverable from a bare constant.
//
//	T -> (a | [!a]), F -> (a & [!a])
func ExpandIntoComplements(e, witness expr.Expr) (expr.Expr, error) {
	if c, ok := e.(expr.Bool); ok {
		if c == expr.True {
			return expr.Or(witness, expr.Not(witness)), nil
		}
		return expr.And(witness, expr.Not(witness)), nil
	}
	return nil, &ActionError{
		Action: "expand into complements",
		Valid:  []string{"T -> (a | [!a])", "F -> (a & [!a])"},
	}
}
