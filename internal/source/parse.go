package source

import (
	"fmt"

	"github.com/gnoswap-labs/boolzip/internal/expr"
)

// stackElem is an element of the parse stack: either a bare operator token
// or an already-reduced expression.
type stackElem struct {
	op   TokenType // TokenNot, TokenAnd, or TokenOr
	expr expr.Expr // non-nil for expression elements
}

// Parse reduces the token stream to a single expression, bottom-up. Values
// and operators are shifted onto the parse stack; a closing bracket reduces
// everything since the matching opening bracket into one expression.
//
// Precondition: brackets in the stream are balanced, which Tokenize checks.
//
// Example for (a & (b | c)):
//
//	[]            remaining: (, a, &, (, b, |, c, ), )
//	[a]           remaining: &, (, b, |, c, ), )
//	[a, &]        remaining: (, b, |, c, ), )
//	[a, &, b, |, c]  remaining: ), )
//	[a, &, (b | c)]  remaining: )
//	[(a & (b | c))]  done
func Parse(tokens []Token) (expr.Expr, error) {
	var stack []stackElem
	// Index into stack where each currently-open bracket's contents begin.
	var boundaries []int
	for _, token := range tokens {
		switch token.Type {
		case TokenFalse:
			stack = append(stack, stackElem{expr: expr.False})
		case TokenTrue:
			stack = append(stack, stackElem{expr: expr.True})
		case TokenVariable:
			stack = append(stack, stackElem{expr: expr.V(token.Name)})
		case TokenNot, TokenAnd, TokenOr:
			stack = append(stack, stackElem{op: token.Type})
		case TokenOpen:
			boundaries = append(boundaries, len(stack))
		case TokenClose:
			boundary := boundaries[len(boundaries)-1]
			boundaries = boundaries[:len(boundaries)-1]
			reduced, err := reduce(stack[boundary:])
			if err != nil {
				return nil, err
			}
			stack = append(stack[:boundary], stackElem{expr: reduced})
		}
	}
	if len(boundaries) != 0 {
		// Unreachable when the precondition holds.
		panic(fmt.Sprintf("brackets should be balanced: %v", tokens))
	}
	if len(stack) != 1 || stack[0].expr == nil {
		return nil, &ParseError{Msg: "invalid syntax in boolean expression"}
	}
	return stack[0].expr, nil
}

// reduce turns the stack elements between a bracket pair into a single
// expression: [! e], [e & e], or [e | e].
func reduce(within []stackElem) (expr.Expr, error) {
	switch {
	case len(within) == 2 && within[0].expr == nil && within[0].op == TokenNot && within[1].expr != nil:
		return expr.Not(within[1].expr), nil
	case len(within) == 3 && within[0].expr != nil && within[1].expr == nil && within[2].expr != nil:
		switch within[1].op {
		case TokenAnd:
			return expr.And(within[0].expr, within[2].expr), nil
		case TokenOr:
			return expr.Or(within[0].expr, within[2].expr), nil
		}
	}
	return nil, &ParseError{Msg: "invalid syntax in boolean expression"}
}
