package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/campus-runner/internal/audio"
	"github.com/vovakirdan/campus-runner/internal/core"
	"github.com/vovakirdan/campus-runner/internal/games/runner"
	"github.com/vovakirdan/campus-runner/internal/platform/tui"
	"github.com/vovakirdan/campus-runner/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
	flagCharacter  string
	flagSound      bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Pick a character and run",
	Long: `Open the character select screen and start a run.

Controls:
  Space/Up/W   - Jump (or tap with the mouse)
  Down/S       - Duck (or drag the mouse down)
  P/Esc        - Pause
  C            - Continue after game over (costs knowledge)
  R            - Restart after game over
  B/Esc        - Back to the menu (paused or game over)
  Ctrl+S       - Save a screenshot
  Q/Ctrl+C     - Quit

Difficulty options:
  easy   - Slower start and sparser obstacles
  normal - The default campus
  hard   - Faster start and denser obstacles
  fixed  - Speed never ramps up

Examples:
  runner play
  runner play --character humanities
  runner play --difficulty hard --sound
  runner play --config ./my-runner.yaml --log runner.log`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom runner config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	playCmd.Flags().StringVar(&flagCharacter, "character", "", "Preselect a character: stem, humanities, medical")
	playCmd.Flags().BoolVar(&flagSound, "sound", false, "Play sound cues")
}

func runPlay(_ *cobra.Command, _ []string) {
	logger, logFile, err := openLogger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer logFile.Close()

	runner.SetConfigPath(flagConfig)
	runner.SetDifficultyPreset(flagDifficulty)

	// Open progress storage
	var opts []runner.Option
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open progress database: %v\n", err)
		// Continue without storage - progress lasts for this session only
		store = nil
	} else {
		opts = append(opts, runner.WithStore(store.Profile(flagProfile)))
	}
	opts = append(opts, runner.WithLogger(logger))

	game := runner.New(opts...)

	if flagCharacter != "" {
		if selErr := game.SelectCharacter(runner.CharacterID(flagCharacter)); selErr != nil {
			if store != nil {
				store.Close()
			}
			fmt.Fprintf(os.Stderr, "Error: %v\n", selErr)
			if errors.Is(selErr, runner.ErrLocked) {
				fmt.Fprintf(os.Stderr, "Run 'runner unlock %s' first.\n", flagCharacter)
			}
			os.Exit(1)
		}
	}

	// Get terminal size
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	var cues tui.CuePlayer
	if flagSound {
		player := audio.NewPlayer()
		if audioErr := player.Initialize(); audioErr != nil {
			logger.Warn("sound disabled", "error", audioErr)
		} else {
			defer player.Close()
			cues = player
		}
	}

	runErr := tui.Run(game, store, flagProfile, cfg, cues)

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
