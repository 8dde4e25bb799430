package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gnoswap-labs/boolzip/internal/source"
	"github.com/gnoswap-labs/boolzip/internal/zipper"
	"github.com/gnoswap-labs/boolzip/session"
)

var evalCmd = &cobra.Command{
	Use:   "eval <expression>",
	Short: "Parse an expression and print its canonical rendering",
	Long: `Parses the given boolean expression and prints it back with canonical
bracket cycling and spacing. Useful for checking the syntax of an expression
before using it in a script or the repl.`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) == 0 {
			fmt.Println("error: Please provide a boolean expression")
			os.Exit(1)
		}
		input := strings.Join(args, " ")
		tokens, err := source.Tokenize(input)
		if err != nil {
			session.DisplayError(os.Stderr, err)
			os.Exit(1)
		}
		parsed, err := source.Parse(tokens)
		if err != nil {
			session.DisplayError(os.Stderr, err)
			os.Exit(1)
		}
		text, _ := source.Untokenize(source.Unparse(zipper.New(parsed)))
		fmt.Println(text)
	},
}
