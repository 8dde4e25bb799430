// Package session implements the interactive part of boolzip: the command
// table, dispatch, and the display of the expression being manipulated with
// its focus indicator. It drives the expression/zipper core but holds no
// state beyond the current zipper, so every command either fully succeeds
// and replaces it or fails and leaves it untouched.
package session

import (
	"strings"

	"go.uber.org/zap"

	"github.com/gnoswap-labs/boolzip/internal/expr"
	"github.com/gnoswap-labs/boolzip/internal/source"
	"github.com/gnoswap-labs/boolzip/internal/zipper"
)

// Session holds the expression being manipulated.
type Session struct {
	z      zipper.Zipper
	logger *zap.Logger
}

// New creates a session focused on the whole of start.
func New(start expr.Expr, logger *zap.Logger) *Session {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Session{z: zipper.New(start), logger: logger}
}

// NewFromText parses start and creates a session for it.
func NewFromText(start string, logger *zap.Logger) (*Session, error) {
	tokens, err := source.Tokenize(start)
	if err != nil {
		return nil, err
	}
	parsed, err := source.Parse(tokens)
	if err != nil {
		return nil, err
	}
	return New(parsed, logger), nil
}

// Zipper returns the current zipper.
func (s *Session) Zipper() zipper.Zipper {
	return s.z
}

// Render returns the current expression text and the focus indicator line,
// meant to be displayed stacked with their starts aligned.
func (s *Session) Render() (string, string) {
	return source.Untokenize(source.Unparse(s.z))
}

// Apply executes one line of user input against the current zipper. On any
// error the session state is unchanged. Blank input is a no-op.
func (s *Session) Apply(input string) error {
	input = strings.TrimSpace(input)
	if input == "" {
		return nil
	}
	transform, err := Dispatch(input)
	if err != nil {
		s.logger.Debug("rejected command", zap.String("input", input), zap.Error(err))
		return err
	}
	next, err := transform(s.z)
	if err != nil {
		s.logger.Debug("command failed", zap.String("input", input), zap.Error(err))
		return err
	}
	s.logger.Debug("applied command", zap.String("input", input))
	s.z = next
	return nil
}

// HelpText returns the help text shown for the help command.
func HelpText() string {
	var b strings.Builder
	b.WriteString("Focus:\n")
	b.WriteString("'^' under the current expression denotes the subexpression currently under focus\n")
	b.WriteString("Use '^', '.', '<', '>' to move focus around (more info under Commands)\n")
	b.WriteString("Transformations are always applied to the current subexpression under focus\n")
	b.WriteString("\n")
	b.WriteString("Boolean expression syntax (for giving arguments to 'r!' and 'x'):\n")
	b.WriteString("F - False, T - True\n")
	b.WriteString("Single lowercase letters - variables\n")
	b.WriteString("(!a) - not a, (a & b) - a and b, (a | b) - a or b\n")
	b.WriteString("No operator precedence -- operations must be explicitly written in brackets\n")
	b.WriteString("Allowed bracket types (interchangeable, but must be paired correctly): (), [], {}\n")
	b.WriteString("\n")
	b.WriteString("Commands:\n")
	for _, cmd := range Commands {
		b.WriteString(cmd.Help)
		b.WriteString("\n")
	}
	b.WriteString("help - print help\n")
	b.WriteString("q! - quit\n")
	return b.String()
}
