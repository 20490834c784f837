package game

import (
	"time"

	log "github.com/sirupsen/logrus"
)

// replayDelay paces updates fed back from a recorded playthrough.
const replayDelay = 50 * time.Millisecond

// tickInterval computes the gravity period for a session starting at level.
// It is computed once when the loop starts and never recomputed, so the
// speed is fixed for the whole session.
func tickInterval(level uint) time.Duration {
	ms := 1000 - int(level)*50
	if ms < 100 {
		ms = 100
	}
	return time.Duration(ms) * time.Millisecond
}

// Run owns a session: it spawns the tick and key producers, consumes their
// merged update stream one event at a time, mutates the game and renders
// after every event. All game state is confined to this goroutine; the
// channel is the only synchronization. The producers are never joined;
// their lifetime is the process lifetime.
func Run(config Config, display Display, keys KeySource) {
	replaying := config.Replay != nil
	if replaying {
		config.Seed = config.Replay.Seed
	}

	game := NewGame(config)
	journal := newJournal(config.Seed)

	log.WithFields(log.Fields{
		"seed":   config.Seed,
		"level":  game.level,
		"replay": replaying,
	}).Info("game started")

	updates := make(chan Update)

	if replaying {
		go func() {
			for _, update := range config.Replay.Updates() {
				time.Sleep(replayDelay)
				update.replayed = true
				updates <- update
			}
		}()
	} else {
		interval := tickInterval(game.level)
		go func() {
			for {
				time.Sleep(interval)
				updates <- Update{Kind: TickUpdate}
			}
		}()
	}

	go func() {
		for {
			ev, ok := keys.ReadKey()
			if !ok {
				return
			}
			updates <- Update{Kind: KeyPressUpdate, Key: ev}
		}
	}()

	for {
		display.ClearBuffer()
		if game.gameOver {
			game.RenderGameOver(display)
		} else {
			game.Render(display)
		}
		display.Render()

		update := <-updates

		if update.Kind == KeyPressUpdate && update.Key.Key == KeyCtrlC {
			savePlaythrough(journal, config, game)
			return
		}

		// Live keys during playback only quit; the recording drives
		// everything else.
		if replaying && update.Kind == KeyPressUpdate && !update.replayed {
			continue
		}

		switch update.Kind {
		case TickUpdate:
			if !game.gameOver {
				journal.record(update)
				game.AdvanceGame()
			}

		case KeyPressUpdate:
			if game.gameOver {
				switch {
				case update.Key.Key == KeyChar && update.Key.Char == 'r':
					savePlaythrough(journal, config, game)
					config.Seed = game.bag.rand.Int63()
					game = NewGame(config)
					journal = newJournal(config.Seed)
					log.WithField("seed", config.Seed).Info("game restarted")
				case update.Key.Key == KeyChar && update.Key.Char == 'q':
					savePlaythrough(journal, config, game)
					return
				}
			} else {
				journal.record(update)
				game.Keypress(update.Key)
			}
		}
	}
}

func savePlaythrough(journal *journal, config Config, game *Game) {
	if config.RecordDir == "" || config.Replay != nil {
		return
	}

	path, err := journal.save(config.RecordDir, game.gameOver)
	if err != nil {
		log.WithError(err).Error("could not save playthrough")
		return
	}
	log.WithField("path", path).Info("saved playthrough")
}
