package source

import (
	"strings"

	"github.com/gnoswap-labs/boolzip/internal/expr"
	"github.com/gnoswap-labs/boolzip/internal/zipper"
)

// focusPath tracks where the focused subexpression lies relative to the
// node currently being unparsed. It has three states:
//
//   - at focus: the remaining direction path is empty, so this node and all
//     of its descendants are under focus;
//   - on path: more directions remain, and only the child they name can
//     still reach the focus;
//   - off path: a different branch was taken, so the focus is unreachable
//     from here no matter what.
type focusPath struct {
	directions *zipper.List[zipper.Direction]
	off        bool
}

// under reports whether the current node is under focus.
func (p focusPath) under() bool {
	return !p.off && p.directions == nil
}

// move takes a direction and returns the focus path for that child.
func (p focusPath) move(d zipper.Direction) focusPath {
	switch {
	case p.off:
		return p
	case p.directions == nil:
		// Already under focus; children keep the focus indicator.
		return p
	case p.directions.Head == d:
		return focusPath{directions: p.directions.Tail}
	default:
		return focusPath{off: true}
	}
}

// Unparse converts a zipper to a stream of tokens with focus information.
func Unparse(z zipper.Zipper) []FocusToken {
	top, directions := z.ToTop()
	return unparseExpr(top, focusPath{directions: directions}, nil)
}

// unparseExpr appends the tokens for e to out, consuming one direction from
// the focus path per recursive step.
func unparseExpr(e expr.Expr, path focusPath, out []FocusToken) []FocusToken {
	under := path.under()
	ft := func(t Token) FocusToken {
		return FocusToken{Token: t, UnderFocus: under}
	}
	switch e := e.(type) {
	case expr.Bool:
		if e {
			return append(out, ft(Token{Type: TokenTrue}))
		}
		return append(out, ft(Token{Type: TokenFalse}))
	case expr.Var:
		return append(out, ft(Token{Type: TokenVariable, Name: e.Name}))
	case expr.NotExpr:
		out = append(out, ft(Token{Type: TokenOpen}), ft(Token{Type: TokenNot}))
		out = unparseExpr(e.Arg, path.move(zipper.DirArg), out)
		return append(out, ft(Token{Type: TokenClose}))
	case expr.BinaryExpr:
		out = append(out, ft(Token{Type: TokenOpen}))
		out = unparseExpr(e.Left, path.move(zipper.DirLeft), out)
		if e.Op == expr.OpAnd {
			out = append(out, ft(Token{Type: TokenAnd}))
		} else {
			out = append(out, ft(Token{Type: TokenOr}))
		}
		out = unparseExpr(e.Right, path.move(zipper.DirRight), out)
		return append(out, ft(Token{Type: TokenClose}))
	default:
		return out
	}
}

// Untokenize converts a stream of tokens with focus information into the
// expression text and a second string of equal length marking the focused
// span with '^'. The two are meant to be printed stacked, starts aligned.
func Untokenize(tokens []FocusToken) (string, string) {
	var text, indicator strings.Builder
	// 3n -> (), 3n+1 -> [], 3n+2 -> {}
	depth := 0
	for _, ft := range tokens {
		var rendered string
		switch ft.Token.Type {
		case TokenAnd:
			rendered = " & "
		case TokenOr:
			rendered = " | "
		case TokenOpen:
			rendered = string(openingBrackets[depth%3])
			depth++
		case TokenClose:
			// Decrease the depth first so the brackets match up.
			depth--
			rendered = string(closingBrackets[depth%3])
		default:
			rendered = ft.Token.String()
		}
		text.WriteString(rendered)
		focusChar := " "
		if ft.UnderFocus {
			focusChar = "^"
		}
		indicator.WriteString(strings.Repeat(focusChar, len(rendered)))
	}
	return text.String(), indicator.String()
}
