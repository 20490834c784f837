package game

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeyNamesRoundTrip(t *testing.T) {
	for _, key := range []Key{KeyUp, KeyDown, KeyLeft, KeyRight, KeySpace, KeyCtrlC, KeyChar} {
		parsed, ok := parseKey(key.String())
		assert.True(t, ok)
		assert.Equal(t, key, parsed)
	}

	_, ok := parseKey("bogus")
	assert.False(t, ok)
}

func TestJournalSaveAndLoadRoundTrip(t *testing.T) {
	journal := newJournal(55)
	updates := []Update{
		{Kind: TickUpdate},
		{Kind: KeyPressUpdate, Key: KeyEvent{Key: KeyLeft}},
		{Kind: KeyPressUpdate, Key: KeyEvent{Key: KeyChar, Char: 'e'}},
		{Kind: KeyPressUpdate, Key: KeyEvent{Key: KeySpace}},
		{Kind: TickUpdate},
	}
	for _, update := range updates {
		journal.record(update)
	}

	dir := t.TempDir()
	path, err := journal.save(dir, true)
	require.NoError(t, err)

	loaded, err := LoadPlaythrough(path)
	require.NoError(t, err)
	assert.NotEmpty(t, loaded.ID)
	assert.Equal(t, int64(55), loaded.Seed)
	assert.Equal(t, updates, loaded.Updates())
}

func TestUpdatesSkipsMalformedMoves(t *testing.T) {
	playthrough := &Playthrough{
		Seed: 1,
		Moves: []Move{
			{Kind: moveKindTick},
			{Kind: "noise"},
			{Kind: moveKindKey, Key: "not-a-key"},
			{Kind: moveKindKey, Key: "char"}, // char key without a character
			{Kind: moveKindKey, Key: "down"},
		},
	}

	assert.Equal(t, []Update{
		{Kind: TickUpdate},
		{Kind: KeyPressUpdate, Key: KeyEvent{Key: KeyDown}},
	}, playthrough.Updates())
}

func TestLoadPlaythroughMissingFile(t *testing.T) {
	_, err := LoadPlaythrough("does/not/exist.yaml")
	assert.Error(t, err)
}

func TestGenerateReplayFilename(t *testing.T) {
	ts := time.Date(2024, 1, 2, 15, 4, 5, 0, time.UTC)
	assert.Equal(t, "20240102_150405_gameover.yaml", generateReplayFilename(ts, true))
	assert.Equal(t, "20240102_150405_quit.yaml", generateReplayFilename(ts, false))
}
