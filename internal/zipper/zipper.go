// Package zipper implements a cursor over a boolean expression tree.
//
// A Zipper pairs the subexpression currently under focus with the list of
// ancestor frames needed to rebuild the whole expression. Each frame is the
// parent operation with the focused child position left as a hole. Moving the
// focus pushes or pops a frame; neither direction copies the rest of the
// tree, so navigation costs O(1) per step and every intermediate zipper
// remains valid.
package zipper

import (
	"github.com/gnoswap-labs/boolzip/internal/expr"
)

// NavigationError is returned when a movement is requested that the current
// focus position does not support.
type NavigationError struct {
	Msg string
}

func (e *NavigationError) Error() string {
	return e.Msg
}

// Parent is an ancestor operation with exactly one child position replaced
// by a hole, marking where the focused subexpression reattaches.
type Parent interface {
	isParent()
}

// NotHole represents (!_).
type NotHole struct{}

// LeftHole represents (_ op Right): the hole is the left child.
type LeftHole struct {
	Op    expr.BinOp
	Right expr.Expr
}

// RightHole represents (Left op _): the hole is the right child.
type RightHole struct {
	Op   expr.BinOp
	Left expr.Expr
}

func (NotHole) isParent()   {}
func (LeftHole) isParent()  {}
func (RightHole) isParent() {}

// Direction indicates how to go from a parent subexpression to an immediate
// child subexpression.
type Direction int

const (
	// DirArg goes from (!a) to a.
	DirArg Direction = iota
	// DirLeft goes from (a & b) or (a | b) to a.
	DirLeft
	// DirRight goes from (a & b) or (a | b) to b.
	DirRight
)

func (d Direction) String() string {
	switch d {
	case DirArg:
		return "."
	case DirLeft:
		return "<"
	case DirRight:
		return ">"
	default:
		return "?"
	}
}

// Zipper is a boolean expression together with a focus on a specific
// subexpression. Parents is ordered innermost first; a nil Parents means the
// focus is the entire expression.
//
// A zipper like ([a | b] & [!{a & b}]) with focus on {a & b} is represented
// as Focus = (a & b), Parents = (!_) -> ([a | b] & _) -> nil.
type Zipper struct {
	Focus   expr.Expr
	Parents *List[Parent]
}

// New returns a zipper focused on the whole of e.
func New(e expr.Expr) Zipper {
	return Zipper{Focus: e}
}

// Up moves to the immediate parent of the focused subexpression.
func (z Zipper) Up() (Zipper, error) {
	up, _, err := z.upWithDirection()
	return up, err
}

// upWithDirection moves to the immediate parent and also reports the
// direction for moving back down. Helper for Up and ToTop.
func (z Zipper) upWithDirection() (Zipper, Direction, error) {
	if z.Parents == nil {
		return z, 0, &NavigationError{Msg: "cannot move to parent -- already at the top"}
	}
	grandparents := z.Parents.Tail
	switch p := z.Parents.Head.(type) {
	case NotHole:
		return Zipper{Focus: expr.Not(z.Focus), Parents: grandparents}, DirArg, nil
	case LeftHole:
		return Zipper{Focus: expr.Binary(p.Op, z.Focus, p.Right), Parents: grandparents}, DirLeft, nil
	case RightHole:
		return Zipper{Focus: expr.Binary(p.Op, p.Left, z.Focus), Parents: grandparents}, DirRight, nil
	default:
		return z, 0, &NavigationError{Msg: "cannot move to parent -- unknown parent frame"}
	}
}

// Arg moves from (!a) to its only argument a.
func (z Zipper) Arg() (Zipper, error) {
	not, ok := z.Focus.(expr.NotExpr)
	if !ok {
		return z, &NavigationError{Msg: "cannot move to only argument -- not at a unary operation"}
	}
	return Zipper{Focus: not.Arg, Parents: Push[Parent](NotHole{}, z.Parents)}, nil
}

// Left moves from (a & b) or (a | b) to the left argument a.
func (z Zipper) Left() (Zipper, error) {
	bin, ok := z.Focus.(expr.BinaryExpr)
	if !ok {
		return z, &NavigationError{Msg: "cannot move to left argument -- not at a binary operation"}
	}
	return Zipper{
		Focus:   bin.Left,
		Parents: Push[Parent](LeftHole{Op: bin.Op, Right: bin.Right}, z.Parents),
	}, nil
}

// Right moves from (a & b) or (a | b) to the right argument b.
func (z Zipper) Right() (Zipper, error) {
	bin, ok := z.Focus.(expr.BinaryExpr)
	if !ok {
		return z, &NavigationError{Msg: "cannot move to right argument -- not at a binary operation"}
	}
	return Zipper{
		Focus:   bin.Right,
		Parents: Push[Parent](RightHole{Op: bin.Op, Left: bin.Left}, z.Parents),
	}, nil
}

// ToTop returns the top-level expression along with the directions for
// moving from the top back to the focused subexpression, ordered outermost
// first. If the zipper is already at the top the path is nil. ToTop never
// fails.
func (z Zipper) ToTop() (expr.Expr, *List[Direction]) {
	var directions *List[Direction]
	curr := z
	// The path is built from inner to outer, so the outermost direction
	// ends up at the head.
	for curr.Parents != nil {
		up, dir, err := curr.upWithDirection()
		if err != nil {
			break // unreachable: Parents is non-nil
		}
		directions = Push(dir, directions)
		curr = up
	}
	return curr.Focus, directions
}

// Transform applies f to the focused subexpression, leaving the ancestors
// untouched. An error from f is propagated unchanged and the original
// zipper is returned.
func (z Zipper) Transform(f func(expr.Expr) (expr.Expr, error)) (Zipper, error) {
	transformed, err := f(z.Focus)
	if err != nil {
		return z, err
	}
	return Zipper{Focus: transformed, Parents: z.Parents}, nil
}

// Equal reports whether two zippers have structurally equal focuses and
// ancestor frames.
func Equal(a, b Zipper) bool {
	if !expr.Equal(a.Focus, b.Focus) {
		return false
	}
	pa, pb := a.Parents, b.Parents
	for pa != nil && pb != nil {
		if !parentEqual(pa.Head, pb.Head) {
			return false
		}
		pa, pb = pa.Tail, pb.Tail
	}
	return pa == nil && pb == nil
}

func parentEqual(a, b Parent) bool {
	switch a := a.(type) {
	case NotHole:
		_, ok := b.(NotHole)
		return ok
	case LeftHole:
		b, ok := b.(LeftHole)
		return ok && a.Op == b.Op && expr.Equal(a.Right, b.Right)
	case RightHole:
		b, ok := b.(RightHole)
		return ok && a.Op == b.Op && expr.Equal(a.Left, b.Left)
	default:
		return false
	}
}
