package cmd

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	cfgFile string
	verbose bool

	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "boolzip",
	Short: "boolzip - manipulate boolean expressions by applying boolean algebra axioms",
	Long: `boolzip allows you to manipulate boolean expressions by applying boolean
algebra axioms to transform them into equivalent expressions. A "focusing"
navigation system allows for the manipulation of subexpressions, implemented
via the functional programming concept of zippers (hence the name).`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		if verbose {
			logger, err = zap.NewDevelopment()
		} else {
			logger = zap.NewNop()
		}
		return err
	},
	Run: func(cmd *cobra.Command, args []string) {
		// no subcommand: behave like the repl subcommand
		replCmd.Run(replCmd, args)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", ".boolzip.yaml", "Path to the configuration file")
	rootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "Enable debug logging")
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(replCmd)
	rootCmd.AddCommand(evalCmd)
	rootCmd.AddCommand(runCmd)
}
