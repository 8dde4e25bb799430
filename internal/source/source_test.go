package source

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gnoswap-labs/boolzip/internal/expr"
	"github.com/gnoswap-labs/boolzip/internal/zipper"
)

var (
	a = expr.V('a')
	b = expr.V('b')

	tOpen  = Token{Type: TokenOpen}
	tClose = Token{Type: TokenClose}
	tTrue  = Token{Type: TokenTrue}
	tFalse = Token{Type: TokenFalse}
	tNot   = Token{Type: TokenNot}
	tAnd   = Token{Type: TokenAnd}
	tOr    = Token{Type: TokenOr}
)

func tVar(name byte) Token {
	return Token{Type: TokenVariable, Name: name}
}

// Token stream for ([a | b] & [!{a & b}]).
var xorTokens = []Token{
	tOpen, tOpen, tVar('a'), tOr, tVar('b'), tClose, tAnd,
	tOpen, tNot, tOpen, tVar('a'), tAnd, tVar('b'), tClose, tClose, tClose,
}

func TestTokenize(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    []Token
		wantErr bool
	}{
		{
			name:  "round brackets",
			input: "(T | F)",
			want:  []Token{tOpen, tTrue, tOr, tFalse, tClose},
		},
		{
			name:  "curly brackets",
			input: "{T & F}",
			want:  []Token{tOpen, tTrue, tAnd, tFalse, tClose},
		},
		{
			name:  "nested square brackets",
			input: "[![!T]]",
			want:  []Token{tOpen, tNot, tOpen, tNot, tTrue, tClose, tClose},
		},
		{
			name:  "whitespace ignored",
			input: " ( ! { ! T } ) ",
			want:  []Token{tOpen, tNot, tOpen, tNot, tTrue, tClose, tClose},
		},
		{
			name:  "mixed bracket styles",
			input: "([a | b] & [!{a & b}])",
			want:  xorTokens,
		},
		{
			name:  "no whitespace",
			input: "((a|b)&(!(a&b)))",
			want:  xorTokens,
		},
		{name: "uppercase variables", input: "([A | B] & [!{A & B}])", wantErr: true},
		{name: "unknown bracket glyphs", input: "<!<!T>>", wantErr: true},
		{name: "unrecognized character", input: "[~[~T]]", wantErr: true},
		{name: "extra closing bracket", input: "![!T]]", wantErr: true},
		{name: "missing closing bracket", input: "[![!T]", wantErr: true},
		{name: "mismatched bracket pair", input: "(![!T)]", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Tokenize(tt.input)
			if tt.wantErr {
				var parseErr *ParseError
				assert.ErrorAs(t, err, &parseErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		tokens  []Token
		want    expr.Expr
		wantErr bool
	}{
		{
			name:   "or",
			tokens: []Token{tOpen, tTrue, tOr, tFalse, tClose},
			want:   expr.Or(expr.True, expr.False),
		},
		{
			name:   "and",
			tokens: []Token{tOpen, tTrue, tAnd, tFalse, tClose},
			want:   expr.And(expr.True, expr.False),
		},
		{
			name:   "nested not",
			tokens: []Token{tOpen, tNot, tOpen, tNot, tTrue, tClose, tClose},
			want:   expr.Not(expr.Not(expr.True)),
		},
		{
			name:   "xor formula",
			tokens: xorTokens,
			want:   expr.And(expr.Or(a, b), expr.Not(expr.And(a, b))),
		},
		{name: "two values", tokens: []Token{tFalse, tTrue}, wantErr: true},
		{name: "not between values", tokens: []Token{tOpen, tTrue, tNot, tFalse, tClose}, wantErr: true},
		{name: "not after value", tokens: []Token{tOpen, tTrue, tNot, tClose}, wantErr: true},
		{name: "leading and", tokens: []Token{tOpen, tAnd, tTrue, tClose}, wantErr: true},
		{name: "leading or", tokens: []Token{tOpen, tOr, tTrue, tClose}, wantErr: true},
		{name: "double and", tokens: []Token{tOpen, tTrue, tAnd, tAnd, tFalse, tClose}, wantErr: true},
		{name: "double or", tokens: []Token{tOpen, tTrue, tOr, tOr, tFalse, tClose}, wantErr: true},
		{name: "superfluous brackets", tokens: []Token{tOpen, tFalse, tClose}, wantErr: true},
		{name: "unbracketed not", tokens: []Token{tNot, tTrue}, wantErr: true},
		{name: "unbracketed and", tokens: []Token{tTrue, tAnd, tFalse}, wantErr: true},
		{name: "unbracketed or", tokens: []Token{tTrue, tOr, tFalse}, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.tokens)
			if tt.wantErr {
				var parseErr *ParseError
				assert.ErrorAs(t, err, &parseErr)
				return
			}
			require.NoError(t, err)
			assert.True(t, expr.Equal(got, tt.want), "got %v, want %v", got, tt.want)
		})
	}
}

// Stringification tests: rather than spelling out per-token focus flags,
// give the half-open index range of focused tokens. The test data covers
// every possible focus for ([a | b] & [!{a & b}]), plus a simple (T | F)
// case to make sure the constants are accounted for.

type moveFunc func(zipper.Zipper) (zipper.Zipper, error)

var (
	moveArg   = zipper.Zipper.Arg
	moveLeft  = zipper.Zipper.Left
	moveRight = zipper.Zipper.Right
)

func navigate(t *testing.T, z zipper.Zipper, moves ...moveFunc) zipper.Zipper {
	t.Helper()
	var err error
	for _, m := range moves {
		z, err = m(z)
		require.NoError(t, err)
	}
	return z
}

func xorZipper() zipper.Zipper {
	return zipper.New(expr.And(expr.Or(a, b), expr.Not(expr.And(a, b))))
}

var zipperRenderTests = []struct {
	name       string
	moves      []moveFunc
	text       string
	indicator  string
	focusStart int // first focused token index
	focusStop  int // one past the last focused token index
}{
	{
		name:      "whole expression",
		text:      "([a | b] & [!{a & b}])",
		indicator: "^^^^^^^^^^^^^^^^^^^^^^",
		focusStart: 0x0, focusStop: 0x10,
	},
	{
		name:      "left or",
		moves:     []moveFunc{moveLeft},
		text:      "([a | b] & [!{a & b}])",
		indicator: " ^^^^^^^              ",
		focusStart: 0x1, focusStop: 0x6,
	},
	{
		name:      "left a",
		moves:     []moveFunc{moveLeft, moveLeft},
		text:      "([a | b] & [!{a & b}])",
		indicator: "  ^                   ",
		focusStart: 0x2, focusStop: 0x3,
	},
	{
		name:      "left b",
		moves:     []moveFunc{moveLeft, moveRight},
		text:      "([a | b] & [!{a & b}])",
		indicator: "      ^               ",
		focusStart: 0x4, focusStop: 0x5,
	},
	{
		name:      "right not",
		moves:     []moveFunc{moveRight},
		text:      "([a | b] & [!{a & b}])",
		indicator: "           ^^^^^^^^^^ ",
		focusStart: 0x7, focusStop: 0xf,
	},
	{
		name:      "inner and",
		moves:     []moveFunc{moveRight, moveArg},
		text:      "([a | b] & [!{a & b}])",
		indicator: "             ^^^^^^^  ",
		focusStart: 0x9, focusStop: 0xe,
	},
	{
		name:      "inner a",
		moves:     []moveFunc{moveRight, moveArg, moveLeft},
		text:      "([a | b] & [!{a & b}])",
		indicator: "              ^       ",
		focusStart: 0xa, focusStop: 0xb,
	},
	{
		name:      "inner b",
		moves:     []moveFunc{moveRight, moveArg, moveRight},
		text:      "([a | b] & [!{a & b}])",
		indicator: "                  ^   ",
		focusStart: 0xc, focusStop: 0xd,
	},
}

func TestUnparse(t *testing.T) {
	for _, tt := range zipperRenderTests {
		t.Run(tt.name, func(t *testing.T) {
			z := navigate(t, xorZipper(), tt.moves...)
			focusTokens := Unparse(z)

			tokens := make([]Token, len(focusTokens))
			for i, ft := range focusTokens {
				tokens[i] = ft.Token
			}
			assert.Equal(t, xorTokens, tokens)

			for i, ft := range focusTokens {
				wantFocus := i >= tt.focusStart && i < tt.focusStop
				assert.Equal(t, wantFocus, ft.UnderFocus, "token %d", i)
			}
		})
	}
}

func TestUnparseConstants(t *testing.T) {
	z := navigate(t, zipper.New(expr.Or(expr.True, expr.False)), moveLeft)
	focusTokens := Unparse(z)
	want := []FocusToken{
		{Token: tOpen},
		{Token: tTrue, UnderFocus: true},
		{Token: tOr},
		{Token: tFalse},
		{Token: tClose},
	}
	assert.Equal(t, want, focusTokens)
}

func TestUntokenize(t *testing.T) {
	for _, tt := range zipperRenderTests {
		t.Run(tt.name, func(t *testing.T) {
			focusTokens := make([]FocusToken, len(xorTokens))
			for i, token := range xorTokens {
				focusTokens[i] = FocusToken{
					Token:      token,
					UnderFocus: i >= tt.focusStart && i < tt.focusStop,
				}
			}
			text, indicator := Untokenize(focusTokens)
			assert.Equal(t, tt.text, text)
			assert.Equal(t, tt.indicator, indicator)
			assert.Len(t, indicator, len(text))
		})
	}
}

func TestUntokenizeConstants(t *testing.T) {
	focusTokens := []FocusToken{
		{Token: tOpen},
		{Token: tTrue, UnderFocus: true},
		{Token: tOr},
		{Token: tFalse},
		{Token: tClose},
	}
	text, indicator := Untokenize(focusTokens)
	assert.Equal(t, "(T | F)", text)
	assert.Equal(t, " ^     ", indicator)
}

// TestRoundTrip checks that tokenize/parse followed by unparse/untokenize
// reproduces the canonical rendering of the input.
func TestRoundTrip(t *testing.T) {
	tests := []struct {
		input     string
		canonical string
	}{
		{"F", "F"},
		{"T", "T"},
		{"x", "x"},
		{"(!a)", "(!a)"},
		{"(a&b)", "(a & b)"},
		{"{a | b}", "(a | b)"},
		{"([a | b] & [!{a & b}])", "([a | b] & [!{a & b}])"},
		{"((a|b)&(!(a&b)))", "([a | b] & [!{a & b}])"},
		// The bracket cycle applies outer to inner regardless of input style.
		{"(((a&b)|c)|(!d))", "([{a & b} | c] | [!d])"},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			tokens, err := Tokenize(tt.input)
			require.NoError(t, err)
			parsed, err := Parse(tokens)
			require.NoError(t, err)
			text, indicator := Untokenize(Unparse(zipper.New(parsed)))
			assert.Equal(t, tt.canonical, text)
			assert.Equal(t, len(text), len(indicator))
		})
	}
}
