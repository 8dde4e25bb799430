package source

import "fmt"

var (
	openingBrackets = [3]byte{'(', '[', '{'}
	closingBrackets = [3]byte{')', ']', '}'}
)

func bracketsPair(open, close byte) bool {
	for i := range openingBrackets {
		if openingBrackets[i] == open {
			return closingBrackets[i] == close
		}
	}
	return false
}

func isOpeningBracket(c byte) bool {
	return c == '(' || c == '[' || c == '{'
}

func isClosingBracket(c byte) bool {
	return c == ')' || c == ']' || c == '}'
}

func isWhitespace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r'
}

// Tokenize scans the input left to right and produces the token stream.
// Bracket balancing is checked here rather than in Parse because the
// stack-based check is simpler over raw characters; the emitted TokenOpen
// and TokenClose tokens no longer carry the concrete glyph.
func Tokenize(input string) ([]Token, error) {
	tokens := make([]Token, 0, len(input))
	var unclosed []byte
	for i := 0; i < len(input); i++ {
		switch c := input[i]; {
		case c == 'F':
			tokens = append(tokens, Token{Type: TokenFalse})
		case c == 'T':
			tokens = append(tokens, Token{Type: TokenTrue})
		case c == '!':
			tokens = append(tokens, Token{Type: TokenNot})
		case c == '&':
			tokens = append(tokens, Token{Type: TokenAnd})
		case c == '|':
			tokens = append(tokens, Token{Type: TokenOr})
		case c >= 'a' && c <= 'z':
			tokens = append(tokens, Token{Type: TokenVariable, Name: c})
		case isOpeningBracket(c):
			unclosed = append(unclosed, c)
			tokens = append(tokens, Token{Type: TokenOpen})
		case isClosingBracket(c):
			if len(unclosed) == 0 {
				return nil, &ParseError{Msg: fmt.Sprintf("unmatched bracket -- %q", string(c))}
			}
			open := unclosed[len(unclosed)-1]
			unclosed = unclosed[:len(unclosed)-1]
			if !bracketsPair(open, c) {
				return nil, &ParseError{
					Msg: fmt.Sprintf("bad bracket match -- %q with %q", string(open), string(c)),
				}
			}
			tokens = append(tokens, Token{Type: TokenClose})
		case isWhitespace(c):
			// skip
		default:
			return nil, &ParseError{
				Msg: fmt.Sprintf("unrecognized character in boolean expression -- %q", string(c)),
			}
		}
	}
	if len(unclosed) > 0 {
		// Report the outermost unclosed opener.
		return nil, &ParseError{Msg: fmt.Sprintf("unmatched bracket -- %q", string(unclosed[0]))}
	}
	return tokens, nil
}
