package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/gnoswap-labs/boolzip/session"
)

var startExpr string

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Start the interactive expression manipulation loop",
	Run: func(cmd *cobra.Command, args []string) {
		config, err := session.LoadConfig(cfgFile)
		if err != nil {
			logger.Fatal("Failed to load configuration", zap.Error(err))
		}
		if startExpr != "" {
			config.Start = startExpr
		}
		if config.NoColor {
			color.NoColor = true
		}

		s, err := session.NewFromText(config.Start, logger)
		if err != nil {
			session.DisplayError(os.Stderr, err)
			os.Exit(1)
		}
		runREPL(s, config)
	},
}

func init() {
	replCmd.Flags().StringVarP(&startExpr, "expr", "e", "", "Starting expression (overrides the config file)")
}

func runREPL(s *session.Session, config session.Config) {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:      config.Prompt,
		HistoryFile: config.HistoryFile,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return
	}
	defer rl.Close()

	fmt.Println("---boolzip---")
	fmt.Println("For help, type 'help'")
	for {
		s.Display(os.Stdout)
		line, err := rl.Readline()
		if err != nil { // Ctrl-C or Ctrl-D
			return
		}
		line = strings.TrimSpace(line)
		switch line {
		case "":
			continue
		case "help":
			fmt.Println()
			fmt.Print(session.HelpText())
		case "q!":
			return
		default:
			if err := s.Apply(line); err != nil {
				session.DisplayError(os.Stdout, err)
			}
		}
	}
}
