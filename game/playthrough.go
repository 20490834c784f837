package game

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gammazero/deque"
	"github.com/google/uuid"
	"gopkg.in/yaml.v2"
)

const (
	moveKindTick = "tick"
	moveKindKey  = "key"
)

// Move is one recorded update in a playthrough file.
type Move struct {
	Kind string `yaml:"kind"`
	Key  string `yaml:"key,omitempty"`
	Char string `yaml:"char,omitempty"`
}

// Playthrough is a fully recorded session: the bag seed plus every update
// the loop consumed, in order. Feeding it back through the same engine
// reproduces the session.
type Playthrough struct {
	ID    string `yaml:"id"`
	Seed  int64  `yaml:"seed"`
	Moves []Move `yaml:"moves"`
}

// Serialize renders the playthrough as YAML. Marshaling can only fail on a
// logic defect, so failure panics.
func (playthrough *Playthrough) Serialize() string {
	out, err := yaml.Marshal(playthrough)
	if err != nil {
		panic(err)
	}

	return string(out)
}

// LoadPlaythrough reads a playthrough file saved by a previous session.
func LoadPlaythrough(path string) (*Playthrough, error) {
	in, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var playthrough Playthrough
	if err := yaml.Unmarshal(in, &playthrough); err != nil {
		return nil, err
	}
	return &playthrough, nil
}

// Updates decodes the recorded moves back into loop updates. Malformed
// moves are skipped rather than replayed as spurious events.
func (playthrough *Playthrough) Updates() []Update {
	updates := make([]Update, 0, len(playthrough.Moves))
	for _, move := range playthrough.Moves {
		switch move.Kind {
		case moveKindTick:
			updates = append(updates, Update{Kind: TickUpdate})

		case moveKindKey:
			key, ok := parseKey(move.Key)
			if !ok {
				continue
			}
			ev := KeyEvent{Key: key}
			if key == KeyChar {
				if move.Char == "" {
					continue
				}
				ev.Char = []rune(move.Char)[0]
			}
			updates = append(updates, Update{Kind: KeyPressUpdate, Key: ev})
		}
	}
	return updates
}

// journal accumulates the updates a session consumes, in order.
type journal struct {
	seed  int64
	moves deque.Deque[Move]
}

func newJournal(seed int64) *journal {
	return &journal{seed: seed}
}

func (j *journal) record(update Update) {
	move := Move{Kind: moveKindTick}
	if update.Kind == KeyPressUpdate {
		move = Move{Kind: moveKindKey, Key: update.Key.Key.String()}
		if update.Key.Key == KeyChar {
			move.Char = string(update.Key.Char)
		}
	}
	j.moves.PushBack(move)
}

func (j *journal) playthrough() *Playthrough {
	playthrough := &Playthrough{
		ID:    uuid.NewString(),
		Seed:  j.seed,
		Moves: make([]Move, 0, j.moves.Len()),
	}
	for i := 0; i < j.moves.Len(); i++ {
		playthrough.Moves = append(playthrough.Moves, j.moves.At(i))
	}
	return playthrough
}

// save writes the journal into dir with a timestamped filename, creating
// the directory if needed, and returns the path written.
func (j *journal) save(dir string, gameOver bool) (string, error) {
	if err := os.MkdirAll(dir, 0777); err != nil {
		return "", err
	}

	path := filepath.Join(dir, generateReplayFilename(time.Now(), gameOver))
	if err := os.WriteFile(path, []byte(j.playthrough().Serialize()), 0644); err != nil {
		return "", err
	}
	return path, nil
}

func generateReplayFilename(t time.Time, gameOver bool) string {
	filenameBuilder := strings.Builder{}

	filenameBuilder.WriteString(t.Format("20060102_150405_"))
	if gameOver {
		filenameBuilder.WriteString("gameover")
	} else {
		filenameBuilder.WriteString("quit")
	}
	filenameBuilder.WriteString(".yaml")

	return filenameBuilder.String()
}
