package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/campus-runner/internal/config"
	"github.com/vovakirdan/campus-runner/internal/games/runner"
)

var charactersCmd = &cobra.Command{
	Use:   "characters",
	Short: "List characters and unlock state",
	Long: `Shows every character, its perk, its unlock cost and whether the
current profile has unlocked it, followed by the semester themes.

Examples:
  runner characters
  runner characters --profile alice`,
	Args: cobra.NoArgs,
	Run:  runCharacters,
}

var unlockCmd = &cobra.Command{
	Use:   "unlock <character>",
	Short: "Spend knowledge to unlock a character",
	Long: `Unlock a character for the current profile. Knowledge is earned by
running: one point per 100 score.

Examples:
  runner unlock humanities
  runner unlock medical --profile alice`,
	Args: cobra.ExactArgs(1),
	Run:  runUnlock,
}

// openProgression loads the profile's progress. Save failures are reported
// on stderr.
func openProgression() (*runner.Progression, func()) {
	store := openStore()
	logger := log.NewWithOptions(os.Stderr, log.Options{Prefix: "runner"})
	return runner.NewProgression(store.Profile(flagProfile), logger), func() { store.Close() }
}

func runCharacters(_ *cobra.Command, _ []string) {
	progress, closeStore := openProgression()
	defer closeStore()

	p := progress.Progress()
	fmt.Printf("Profile %s - knowledge %d, best %d\n", flagProfile, p.Knowledge, p.HighScore)
	fmt.Println()

	// Calculate column widths
	maxIDLen, maxNameLen := 2, 4 // "ID", "Name" headers
	for _, c := range runner.Characters() {
		maxIDLen = max(maxIDLen, len(c.ID))
		maxNameLen = max(maxNameLen, len(c.Name))
	}

	// Print header
	fmt.Printf("  %-*s  %-*s  %-20s  %-6s  %s\n", maxIDLen, "ID", maxNameLen, "Name", "Perk", "Cost", "State")
	fmt.Printf("  %-*s  %-*s  %-20s  %-6s  %s\n", maxIDLen, "--", maxNameLen, "----", "----", "----", "-----")

	for _, c := range runner.Characters() {
		state := "locked"
		if p.IsUnlocked(c.ID) {
			state = "unlocked"
		}
		fmt.Printf("  %-*s  %-*s  %-20s  %-6d  %s\n", maxIDLen, c.ID, maxNameLen, c.Name, c.Perk, c.UnlockCost, state)
	}

	printSemesters()

	fmt.Println()
	fmt.Println("Run 'runner unlock <id>' to unlock a character.")
}

// printSemesters lists the score at which each campus theme begins.
func printSemesters() {
	cfg, err := config.LoadRunner("")
	if err != nil {
		cfg = config.DefaultRunnerConfig()
	}
	span := cfg.Progression.SemesterSpan

	fmt.Println()
	fmt.Println("Semesters:")
	for i, s := range runner.Semesters() {
		fmt.Printf("  %d. %-16s from score %d\n", i+1, s.Name, i*span)
	}
}

func runUnlock(_ *cobra.Command, args []string) {
	id := runner.CharacterID(args[0])

	progress, closeStore := openProgression()
	defer closeStore()

	if progress.Progress().IsUnlocked(id) {
		fmt.Printf("%s is already unlocked.\n", id)
		return
	}

	if err := progress.Unlock(id); err != nil {
		closeStore()
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		if errors.Is(err, runner.ErrUnknownCharacter) {
			fmt.Fprintln(os.Stderr, "Run 'runner characters' to see available characters.")
		}
		os.Exit(1)
	}

	c, _ := runner.CharacterByID(id)
	fmt.Printf("Unlocked %s (%s). Knowledge left: %d\n", c.Name, c.Perk, progress.Knowledge())
}
