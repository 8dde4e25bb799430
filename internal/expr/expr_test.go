package expr

import "testing"

func TestString(t *testing.T) {
	tests := []struct {
		expr Expr
		want string
	}{
		{True, "T"},
		{False, "F"},
		{V('a'), "a"},
		{Not(V('a')), "(!a)"},
		{And(V('a'), V('b')), "(a & b)"},
		{Or(V('a'), False), "(a | F)"},
		{And(Or(V('a'), V('b')), Not(And(V('a'), V('b')))), "((a | b) & (!(a & b)))"},
	}
	for _, tt := range tests {
		if got := tt.expr.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}

func TestDual(t *testing.T) {
	if OpAnd.Dual() != OpOr {
		t.Errorf("Dual of And should be Or")
	}
	if OpOr.Dual() != OpAnd {
		t.Errorf("Dual of Or should be And")
	}
	// Dual is an involution.
	for _, op := range []BinOp{OpAnd, OpOr} {
		if op.Dual().Dual() != op {
			t.Errorf("Dual(Dual(%v)) = %v, want %v", op, op.Dual().Dual(), op)
		}
	}
}

func TestEqual(t *testing.T) {
	xor := And(Or(V('a'), V('b')), Not(And(V('a'), V('b'))))
	tests := []struct {
		name string
		a, b Expr
		want bool
	}{
		{"same constant", True, True, true},
		{"different constants", True, False, false},
		{"same variable", V('a'), V('a'), true},
		{"different variables", V('a'), V('b'), false},
		{"constant vs variable", True, V('t'), false},
		{"structurally equal trees", xor, And(Or(V('a'), V('b')), Not(And(V('a'), V('b')))), true},
		{"different operators", And(V('a'), V('b')), Or(V('a'), V('b')), false},
		{"swapped operands", And(V('a'), V('b')), And(V('b'), V('a')), false},
		{"nested mismatch", Not(V('a')), Not(V('b')), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Equal(tt.a, tt.b); got != tt.want {
				t.Errorf("Equal(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}
