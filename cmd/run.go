package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/gnoswap-labs/boolzip/session"
)

var (
	runStartExpr string
	watchScript  bool
)

var runCmd = &cobra.Command{
	Use:   "run <script>",
	Short: "Run a file of session commands against a starting expression",
	Long: `Executes the commands in the given script file, one per line, against the
starting expression, then prints the final expression and focus. Blank lines
and lines starting with '#' are skipped.

Example) boolzip run --expr '(a & (b | c))' proof.bz`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) != 1 {
			fmt.Println("error: Please provide a script file")
			os.Exit(1)
		}
		config, err := session.LoadConfig(cfgFile)
		if err != nil {
			logger.Fatal("Failed to load configuration", zap.Error(err))
		}
		start := config.Start
		if runStartExpr != "" {
			start = runStartExpr
		}

		scriptPath := args[0]
		if watchScript {
			watchAndRun(scriptPath, start)
			return
		}
		if err := runScriptFile(scriptPath, start); err != nil {
			session.DisplayError(os.Stderr, err)
			os.Exit(1)
		}
	},
}

func init() {
	runCmd.Flags().StringVarP(&runStartExpr, "expr", "e", "", "Starting expression (overrides the config file)")
	runCmd.Flags().BoolVarP(&watchScript, "watch", "w", false, "Re-run the script whenever the file changes")
}

func runScriptFile(path, start string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("error opening script %s: %w", path, err)
	}
	defer f.Close()

	s, err := session.NewFromText(start, logger)
	if err != nil {
		return err
	}
	if err := s.RunScript(f); err != nil {
		return fmt.Errorf("error running script %s: %w", path, err)
	}
	s.Display(os.Stdout)
	return nil
}

// watchAndRun re-executes the script on every write to it until interrupted.
func watchAndRun(path, start string) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		logger.Fatal("Failed to create file watcher", zap.Error(err))
	}
	defer watcher.Close()

	if err := watcher.Add(path); err != nil {
		logger.Fatal("Failed to watch script", zap.String("path", path), zap.Error(err))
	}

	if err := runScriptFile(path, start); err != nil {
		session.DisplayError(os.Stderr, err)
	}
	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return
			}
			if event.Op&fsnotify.Write == fsnotify.Write {
				// Wait for a while after the change so that multiple
				// writes are handled as one.
				time.Sleep(100 * time.Millisecond)
				if err := runScriptFile(path, start); err != nil {
					session.DisplayError(os.Stderr, err)
				}
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			logger.Error("Watcher error", zap.Error(err))
		}
	}
}
