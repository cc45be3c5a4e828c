package main

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var codePattern = regexp.MustCompile(`^[A-Z0-9]{6}$`)

func TestRoomRegistryCreate(t *testing.T) {
	rr := newRoomRegistry()

	room := rr.create(Creator{ID: "client-1", Name: "Alice"})
	require.NotNil(t, room)

	assert.Regexp(t, codePattern, room.code)
	assert.Same(t, room, rr.byID(room.id))
	assert.Same(t, room, rr.byCode(room.code))
	assert.Equal(t, room.id, rr.idForCode(room.code))

	snapshot := room.snapshot()
	require.Len(t, snapshot.Players, 1)
	assert.Equal(t, "client-1", snapshot.Players[0].ClientID)
	assert.Equal(t, "Alice", snapshot.Players[0].Name)
	assert.Zero(t, snapshot.Players[0].Score)
	assert.False(t, snapshot.Started)
	assert.Nil(t, snapshot.Question)
	assert.Zero(t, snapshot.CurrentRound.RoundNumber)
}

func TestRoomRegistryCodeUniqueness(t *testing.T) {
	rr := newRoomRegistry()

	seen := make(map[string]bool)
	for i := 0; i < 200; i++ {
		room := rr.create(Creator{ID: "client", Name: "tester"})
		assert.False(t, seen[room.code], "duplicate live code on room %d", i)
		seen[room.code] = true
	}
}

func TestRoomRegistryDestroy(t *testing.T) {
	rr := newRoomRegistry()
	room := rr.create(Creator{ID: "client-1", Name: "Alice"})

	rr.destroy(room.id)

	assert.Nil(t, rr.byID(room.id), "destroyed room should not resolve by id")
	assert.Nil(t, rr.byCode(room.code), "destroyed room should not resolve by code")
	assert.Empty(t, rr.idForCode(room.code))

	// Repeat destroy is a no-op.
	rr.destroy(room.id)
}

func TestRoomRoster(t *testing.T) {
	rr := newRoomRegistry()
	room := rr.create(Creator{ID: "a", Name: "Alice"})

	room.addPlayer("b", "Bob")
	room.addPlayer("b", "Bob") // duplicate join is ignored
	assert.Equal(t, []string{"a", "b"}, room.playerIDs())

	room.removePlayer("a")
	assert.Equal(t, []string{"b"}, room.playerIDs())

	room.removePlayer("missing")
	assert.Equal(t, []string{"b"}, room.playerIDs())
}

func TestRoomMarkStarted(t *testing.T) {
	rr := newRoomRegistry()
	room := rr.create(Creator{ID: "a", Name: "Alice"})
	room.addPlayer("b", "Bob")

	assert.False(t, room.markStarted("b"), "only the creator may start")
	assert.False(t, room.snapshot().Started)

	assert.True(t, room.markStarted("a"))
	assert.True(t, room.snapshot().Started)

	assert.False(t, room.markStarted("a"), "starting twice is rejected")
	assert.True(t, room.snapshot().Started, "started never reverts")
}

func TestRoomRounds(t *testing.T) {
	rr := newRoomRegistry()
	room := rr.create(Creator{ID: "a", Name: "Alice"})

	q := &Question{Title: "What is the capital of France?", Answers: []string{"Paris"}}

	for round := 1; round <= 3; round++ {
		room.beginRound(q)

		snapshot := room.snapshot()
		assert.Equal(t, round, snapshot.CurrentRound.RoundNumber)
		assert.Empty(t, snapshot.CurrentRound.RoundScores, "round scores reset at round start")
		require.NotNil(t, snapshot.Question)
		assert.Equal(t, q.Title, *snapshot.Question)

		room.endRound()
		assert.Nil(t, room.snapshot().Question)
	}
}

func TestRoomGrade(t *testing.T) {
	rr := newRoomRegistry()
	room := rr.create(Creator{ID: "a", Name: "Alice"})
	room.addPlayer("b", "Bob")

	q := &Question{Title: "What is the capital of France?", Answers: []string{"Paris"}}
	room.beginRound(q)

	correct, display := room.grade("a", "Paris")
	require.True(t, correct)
	assert.Equal(t, "Paris", display)

	// Second player hits the same canonical answer in the same round.
	correct, display = room.grade("b", "paris")
	assert.False(t, correct)
	assert.Equal(t, "paris", display, "incorrect guesses echo the raw content")

	snapshot := room.snapshot()
	assert.Equal(t, pointsPerAnswer, snapshot.Players[0].Score)
	assert.Zero(t, snapshot.Players[1].Score)
	assert.Equal(t, map[string]int{"a": 1}, snapshot.CurrentRound.RoundScores)

	// After the round ends, nothing is gradable.
	room.endRound()
	correct, display = room.grade("b", "Paris")
	assert.False(t, correct)
	assert.Equal(t, "Paris", display)

	// A fresh round clears the ledger and scores again.
	room.beginRound(q)
	correct, _ = room.grade("b", "Paris")
	assert.True(t, correct)
	assert.Equal(t, pointsPerAnswer, room.snapshot().Players[1].Score)
}
