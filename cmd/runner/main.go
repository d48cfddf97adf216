// runner is Campus Runner, an endless side-scroller played in the terminal.
//
// Usage:
//
//	runner play              - Pick a character and run
//	runner characters        - List characters and unlock state
//	runner unlock <id>       - Spend knowledge to unlock a character
//	runner scores            - Show the run history
//	runner list              - List registered games
//	runner serve             - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>       - Set tick rate (default: 60)
//	--seed <value>     - Set RNG seed for reproducible runs
//	--db <path>        - Set database path (default: ~/.campus-runner/runner.db)
//	--profile <name>   - Progress profile (default: local)
//	--log <path>       - Write logs to a file
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/campus-runner/internal/config"
	"github.com/vovakirdan/campus-runner/internal/storage"

	// Register the runner game
	_ "github.com/vovakirdan/campus-runner/internal/games/runner"
)

var (
	// Global flags
	flagFPS     int
	flagSeed    int64
	flagDBPath  string
	flagProfile string
	flagLogPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "runner",
	Short: "Campus Runner - survive four years of university in your terminal",
	Long: `Campus Runner is an endless side-scroller. Jump over lab work, tests,
projects and exams, duck under flying obstacles, collect coffee, cheat
sheets and notes, and earn knowledge to unlock new majors.

Available commands:
  play        - Pick a character and run
  characters  - Show characters and what they cost
  unlock      - Unlock a character with knowledge
  scores      - View the run history
  list        - Show registered games
  serve       - Start SSH server for remote play

Examples:
  runner play
  runner play --character humanities --difficulty hard
  runner unlock medical
  runner scores --all
  runner serve --ssh :2222`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/"+config.AppDir+"/runner.db", "Path to progress database")
	rootCmd.PersistentFlags().StringVar(&flagProfile, "profile", storage.DefaultProfile, "Progress profile name")
	rootCmd.PersistentFlags().StringVar(&flagLogPath, "log", "", "Write logs to this file")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(charactersCmd)
	rootCmd.AddCommand(unlockCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(serveCmd)
}

// openLogger returns a logger writing to --log, or a silent one. The returned
// closer must be called on exit.
func openLogger() (*log.Logger, io.Closer, error) {
	if flagLogPath == "" {
		return log.New(io.Discard), io.NopCloser(nil), nil
	}

	f, err := os.OpenFile(flagLogPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot open log file: %w", err)
	}

	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          "runner",
		Level:           log.DebugLevel,
	})
	return logger, f, nil
}

// openStore opens the progress database, exiting on failure.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening progress database: %v\n", err)
		os.Exit(1)
	}
	return store
}
