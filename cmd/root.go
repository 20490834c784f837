package cmd

import (
	"fmt"
	"io"
	"os"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/they4kman/gotris/game"
	"github.com/they4kman/gotris/terminal"
)

var (
	gameConfig = game.NewConfig()
	replayPath string
	logPath    string
)

var rootCmd = &cobra.Command{
	Use:   "gotris",
	Short: "Play a falling-block puzzle in your terminal",
	Long: `gotris is a terminal falling-block puzzle game.

Run with no arguments to play
	gotris

Record finished sessions and play them back later
	gotris --record replays
	gotris --replay replays/20240102_150405_gameover.yaml
`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := setupLogging(); err != nil {
			return err
		}

		if gameConfig.Seed == 0 {
			gameConfig.Seed = time.Now().UnixNano()
		}

		if replayPath != "" {
			playthrough, err := game.LoadPlaythrough(replayPath)
			if err != nil {
				return err
			}
			gameConfig.Replay = playthrough
		}

		screen, err := terminal.New()
		if err != nil {
			return err
		}
		defer screen.Close()

		game.Run(gameConfig, screen, screen)
		return nil
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

// setupLogging sends the game log to the requested file. The terminal
// itself belongs to the game screen, so without a file the log is dropped.
func setupLogging() error {
	if logPath == "" {
		log.SetOutput(io.Discard)
		return nil
	}

	file, err := os.OpenFile(logPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return err
	}
	log.SetOutput(file)
	return nil
}

func init() {
	rootCmd.Flags().Int64VarP(&gameConfig.Seed, "seed", "s", 0, "Seed for the piece randomizer (0 picks one)")
	rootCmd.Flags().UintVarP(&gameConfig.StartLevel, "level", "l", 0, "Level to start at; higher levels tick faster")
	rootCmd.Flags().StringVar(&gameConfig.RecordDir, "record", "", "Directory to save playthroughs of finished sessions into")
	rootCmd.Flags().StringVar(&replayPath, "replay", "", "Play back a recorded playthrough file")
	rootCmd.Flags().StringVar(&logPath, "log", "", "File to append the game log to")
}
