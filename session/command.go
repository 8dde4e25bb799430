package session

import (
	"fmt"
	"strings"

	"github.com/gnoswap-labs/boolzip/internal/axiom"
	"github.com/gnoswap-labs/boolzip/internal/expr"
	"github.com/gnoswap-labs/boolzip/internal/source"
	"github.com/gnoswap-labs/boolzip/internal/zipper"
)

// CommandError is returned for user input that does not denote a valid
// command invocation.
type CommandError struct {
	Msg string
}

func (e *CommandError) Error() string {
	return e.Msg
}

// Command describes one session command. Commands without an argument must
// be entered exactly as their name; commands with an argument take the name
// followed by a space and a boolean expression. Apply receives the parsed
// argument, or nil when TakesArg is false.
type Command struct {
	Name     string
	TakesArg bool
	Help     string
	Apply    func(z zipper.Zipper, arg expr.Expr) (zipper.Zipper, error)
}

// transformer lifts an Expr -> Expr rewrite to a zipper command by applying
// it to the subexpression under focus.
func transformer(action func(expr.Expr) (expr.Expr, error)) func(zipper.Zipper, expr.Expr) (zipper.Zipper, error) {
	return func(z zipper.Zipper, _ expr.Expr) (zipper.Zipper, error) {
		return z.Transform(action)
	}
}

// Commands is the table of all commands that change the expression being
// manipulated, including the focus moves. Dispatch searches it in order.
var Commands = []Command{
	{
		Name:     "r!",
		TakesArg: true,
		Help:     "r! a - replace current subexpression under focus with a",
		Apply: func(z zipper.Zipper, arg expr.Expr) (zipper.Zipper, error) {
			return z.Transform(func(expr.Expr) (expr.Expr, error) { return arg, nil })
		},
	},
	{
		Name: "^",
		Help: "^ - move focus to the parent of the current subexpression under focus",
		Apply: func(z zipper.Zipper, _ expr.Expr) (zipper.Zipper, error) {
			return z.Up()
		},
	},
	{
		Name: ".",
		Help: ". - move focus from (!a) to its only argument a",
		Apply: func(z zipper.Zipper, _ expr.Expr) (zipper.Zipper, error) {
			return z.Arg()
		},
	},
	{
		Name: "<",
		Help: "< - move focus from (a & b) or (a | b) to the left argument a",
		Apply: func(z zipper.Zipper, _ expr.Expr) (zipper.Zipper, error) {
			return z.Left()
		},
	},
	{
		Name: ">",
		Help: "> - move focus from (a & b) or (a | b) to the right argument b",
		Apply: func(z zipper.Zipper, _ expr.Expr) (zipper.Zipper, error) {
			return z.Right()
		},
	},
	{
		Name:  "c",
		Help:  "c - [c]ommutativity -- (a | b) -> (b | a), (a & b) -> (b & a)",
		Apply: transformer(axiom.ApplyCommutativity),
	},
	{
		Name:  "i",
		Help:  "i - [i]dentity -- (a | F) -> a, (a & T) -> a",
		Apply: transformer(axiom.ApplyIdentity),
	},
	{
		Name:  "|F",
		Help:  "|F - expand via identity -- a -> (a | F)",
		Apply: transformer(axiom.IntroduceOrFalse),
	},
	{
		Name:  "&T",
		Help:  "&T - expand via identity -- a -> (a & T)",
		Apply: transformer(axiom.IntroduceAndTrue),
	},
	{
		Name:  "d",
		Help:  "d - [d]istributivity -- (a | [b & c]) -> ([a | b] & [a | c]), (a & [b | c]) -> ([a & b] | [a & c])",
		Apply: transformer(axiom.Distribute),
	},
	{
		Name:  "f",
		Help:  "f - [f]actoring -- ([a | b] & [a | c]) -> (a | [b & c]), ([a & b] | [a & c]) -> (a & [b | c])",
		Apply: transformer(axiom.Factor),
	},
	{
		Name:  "v",
		Help:  "v - complements/in[v]erses -- (a | [!a]) -> T, (a & [!a]) -> F",
		Apply: transformer(axiom.ApplyComplements),
	},
	{
		Name:     "x",
		TakesArg: true,
		Help:     "x a - e[x]pand into complements -- T -> (a | [!a]), F -> (a & [!a])",
		Apply: func(z zipper.Zipper, arg expr.Expr) (zipper.Zipper, error) {
			return z.Transform(func(e expr.Expr) (expr.Expr, error) {
				return axiom.ExpandIntoComplements(e, arg)
			})
		},
	},
}

// Dispatch resolves stripped user input to a zipper transformation. It
// returns a *CommandError for unknown commands or wrong argument usage; an
// invalid expression argument surfaces as a *source.ParseError.
func Dispatch(input string) (func(zipper.Zipper) (zipper.Zipper, error), error) {
	for i := range Commands {
		cmd := &Commands[i]
		switch {
		case input == cmd.Name:
			if cmd.TakesArg {
				return nil, &CommandError{Msg: fmt.Sprintf("command %q requires an argument", cmd.Name)}
			}
			return func(z zipper.Zipper) (zipper.Zipper, error) {
				return cmd.Apply(z, nil)
			}, nil
		case strings.HasPrefix(input, cmd.Name+" "):
			if !cmd.TakesArg {
				return nil, &CommandError{Msg: fmt.Sprintf("command %q does not take an argument", cmd.Name)}
			}
			argInput := strings.TrimSpace(strings.TrimPrefix(input, cmd.Name))
			tokens, err := source.Tokenize(argInput)
			if err != nil {
				return nil, err
			}
			arg, err := source.Parse(tokens)
			if err != nil {
				return nil, err
			}
			return func(z zipper.Zipper) (zipper.Zipper, error) {
				return cmd.Apply(z, arg)
			}, nil
		}
	}
	return nil, &CommandError{Msg: "unrecognized command"}
}
