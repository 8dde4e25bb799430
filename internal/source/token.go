// Package source converts boolean expressions between their textual form and
// the tree form the rest of the program works with.
//
// Parsing an expression from user input:
//
//	string --Tokenize--> []Token --Parse--> expr.Expr
//
// Printing the expression being manipulated along with its focus:
//
//	zipper.Zipper --Unparse--> []FocusToken --Untokenize--> (text, indicator)
//
// Syntax: F and T are the constants, single lowercase letters are variables,
// and every operation must be explicitly bracketed: (!a), (a & b), (a | b).
// Brackets may be any of () [] {} as long as they pair correctly. The printer
// cycles () -> [] -> {} from outer to inner for readability, puts single
// spaces around & and |, and marks the focused subexpression with '^' in a
// second line of equal length.
package source

// TokenType defines the kinds of tokens produced by the tokenizer.
type TokenType int

const (
	TokenFalse    TokenType = iota // "F"
	TokenTrue                      // "T"
	TokenVariable                  // single lowercase letter
	TokenNot                       // "!"
	TokenAnd                       // "&"
	TokenOr                        // "|"
	TokenOpen                      // any of ( [ {
	TokenClose                     // any of ) ] }
)

// Token is a single lexical token. Brackets are normalized: TokenOpen and
// TokenClose stand for all three bracket styles, whose pairing is checked
// during tokenization. Name is only set for TokenVariable.
type Token struct {
	Type TokenType
	Name byte
}

func (t Token) String() string {
	switch t.Type {
	case TokenFalse:
		return "F"
	case TokenTrue:
		return "T"
	case TokenVariable:
		return string(t.Name)
	case TokenNot:
		return "!"
	case TokenAnd:
		return "&"
	case TokenOr:
		return "|"
	case TokenOpen:
		return "("
	case TokenClose:
		return ")"
	default:
		return "?"
	}
}

// FocusToken is a token along with information on whether the subexpression
// it belongs to is under focus.
type FocusToken struct {
	Token      Token
	UnderFocus bool
}

// ParseError is returned during tokenization or parsing upon encountering
// syntactic problems with an expression string. The message is written for
// direct user display.
type ParseError struct {
	Msg string
}

func (e *ParseError) Error() string {
	return e.Msg
}
