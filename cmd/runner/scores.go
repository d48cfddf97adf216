package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/campus-runner/internal/games/runner"
	"github.com/vovakirdan/campus-runner/internal/platform/tui"
	"github.com/vovakirdan/campus-runner/internal/storage"
)

var (
	flagScoresAll   bool
	flagScoresPlain bool
	flagScoresLimit int
	flagScoresList  bool
	flagScoresClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the run history",
	Long: `Display the best runs for the current profile, or for every profile
with --all. Opens an interactive table unless --plain is given or the
output is not a terminal.

Examples:
  runner scores
  runner scores --all --plain
  runner scores --profile alice --limit 20
  runner scores --profiles
  runner scores --clear --profile alice`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagScoresAll, "all", false, "Show runs from every profile")
	scoresCmd.Flags().BoolVar(&flagScoresPlain, "plain", false, "Print a plain table instead of the TUI")
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of runs to print with --plain")
	scoresCmd.Flags().BoolVar(&flagScoresList, "profiles", false, "List every profile with its progress")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete the run history of the current profile")
	scoresCmd.MarkFlagsMutuallyExclusive("profiles", "clear")
}

func runScores(_ *cobra.Command, _ []string) {
	store := openStore()
	defer store.Close()

	switch {
	case flagScoresClear:
		if err := store.ClearRuns(flagProfile); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return
		}
		fmt.Printf("Cleared the run history of %s. Knowledge and unlocks are kept.\n", flagProfile)
		return
	case flagScoresList:
		printProfiles(store)
		return
	}

	profile := flagProfile
	if flagScoresAll {
		profile = ""
	}

	if !flagScoresPlain && term.IsTerminal(int(os.Stdout.Fd())) {
		width, height := 80, 24
		if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
			width, height = w, h
		}
		if _, err := tui.RunScoreboard(store, flagProfile, width, height); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		return
	}

	runs, err := store.TopRuns(profile, flagScoresLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving runs: %v\n", err)
		return
	}

	if profile == "" {
		fmt.Println("High Scores - All players")
	} else {
		fmt.Printf("High Scores - %s\n", profile)
	}
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Play 'runner play' to set the first high score!")
		return
	}

	// Print header
	fmt.Printf("  %-4s  %-12s  %-16s  %-8s  %-4s  %s\n", "Rank", "Player", "Character", "Score", "Year", "Date")
	fmt.Printf("  %-4s  %-12s  %-16s  %-8s  %-4s  %s\n", "----", "------", "---------", "-----", "----", "----")

	for i, r := range runs {
		name := string(r.Run.Character)
		if c, ok := runner.CharacterByID(r.Run.Character); ok {
			name = c.Name
		}
		fmt.Printf("  %-4d  %-12s  %-16s  %-8d  %-4d  %s\n",
			i+1, r.Profile, name, r.Run.Score, r.Run.Semester+1, r.CreatedAt.Format("2006-01-02 15:04"))
	}

	if profile == "" {
		if best, err := store.HighScore(); err == nil {
			fmt.Println()
			fmt.Printf("Best run ever: %d\n", best)
		}
		return
	}

	// Show profile totals
	stats, err := store.Stats(profile)
	if err == nil {
		fmt.Println()
		fmt.Printf("Runs: %d  Best: %d  Average: %.0f  Knowledge earned: %d\n",
			stats.Runs, stats.HighScore, stats.AvgScore, stats.Knowledge)
	}
}

// printProfiles prints every stored profile, best first.
func printProfiles(store *storage.Store) {
	profiles, err := store.Profiles()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving profiles: %v\n", err)
		return
	}
	if len(profiles) == 0 {
		fmt.Println("No profiles yet.")
		return
	}

	fmt.Printf("  %-12s  %-8s  %-9s  %-8s  %s\n", "Profile", "Best", "Knowledge", "Unlocked", "Updated")
	fmt.Printf("  %-12s  %-8s  %-9s  %-8s  %s\n", "-------", "----", "---------", "--------", "-------")
	for _, p := range profiles {
		fmt.Printf("  %-12s  %-8d  %-9d  %-8s  %s\n",
			p.Name, p.Progress.HighScore, p.Progress.Knowledge,
			fmt.Sprintf("%d/%d", len(p.Progress.Unlocked), len(runner.Characters())),
			p.UpdatedAt.Format("2006-01-02 15:04"))
	}
}
