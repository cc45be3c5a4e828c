package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClosestMatches(t *testing.T) {
	tests := []struct {
		name       string
		word       string
		candidates []string
		want       []string
	}{
		{
			name:       "exact hit",
			word:       "Paris",
			candidates: []string{"Paris"},
			want:       []string{"Paris"},
		},
		{
			name:       "case folded",
			word:       "paris",
			candidates: []string{"Paris"},
			want:       []string{"Paris"},
		},
		{
			name:       "one typo",
			word:       "Pariss",
			candidates: []string{"Paris", "London"},
			want:       []string{"Paris"},
		},
		{
			name:       "ties at minimal distance keep order",
			word:       "rat",
			candidates: []string{"cat", "bat"},
			want:       []string{"cat", "bat"},
		},
		{
			name:       "closer match discards earlier ones",
			word:       "cat",
			candidates: []string{"cats", "cat"},
			want:       []string{"cat"},
		},
		{
			name:       "similarity below floor despite small distance",
			word:       "xy",
			candidates: []string{"ab"},
			want:       nil,
		},
		{
			name:       "distance above ceiling despite high similarity",
			word:       "aaaaaabbbb",
			candidates: []string{"aaaaaaaaaa"},
			want:       nil,
		},
		{
			name:       "nothing close",
			word:       "zebra",
			candidates: []string{"Mercury", "Venus"},
			want:       nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, closestMatches(tt.word, tt.candidates))
		})
	}
}

func TestGradeGuessExactAndLedger(t *testing.T) {
	q := &Question{
		Title:   "What is the capital of France?",
		Answers: []string{"Paris"},
	}
	var ledger guessLedger

	correct, canonical := gradeGuess("paris", q, &ledger)
	require.True(t, correct)
	assert.Equal(t, "Paris", canonical)

	// Same canonical answer again in the same round: already credited.
	correct, _ = gradeGuess("Paris", q, &ledger)
	assert.False(t, correct)

	// A typo landing on the same canonical answer is also blocked.
	correct, _ = gradeGuess("pariss", q, &ledger)
	assert.False(t, correct)

	// A new round clears the ledger.
	ledger.reset()
	correct, canonical = gradeGuess("Paris", q, &ledger)
	assert.True(t, correct)
	assert.Equal(t, "Paris", canonical)
}

func TestGradeGuessDistinctCanonicals(t *testing.T) {
	q := &Question{
		Title:   "Name a primary color",
		Answers: []string{"Red", "Blue", "Yellow"},
	}
	var ledger guessLedger

	correct, canonical := gradeGuess("red", q, &ledger)
	require.True(t, correct)
	assert.Equal(t, "Red", canonical)

	// Different canonical answers each earn credit once.
	correct, canonical = gradeGuess("blue", q, &ledger)
	require.True(t, correct)
	assert.Equal(t, "Blue", canonical)

	correct, _ = gradeGuess("blue", q, &ledger)
	assert.False(t, correct)
}

func TestGradeGuessFuzzy(t *testing.T) {
	q := &Question{
		Title:   "Name a planet in our solar system",
		Answers: []string{"Mercury", "Venus", "Earth", "Mars"},
	}
	var ledger guessLedger

	correct, canonical := gradeGuess("mercry", q, &ledger)
	require.True(t, correct)
	assert.Equal(t, "Mercury", canonical)

	// Far-off guesses never match regardless of length.
	correct, _ = gradeGuess("pluto", q, &ledger)
	assert.False(t, correct)
}

func TestGradeGuessNoQuestion(t *testing.T) {
	var ledger guessLedger

	correct, canonical := gradeGuess("anything", nil, &ledger)
	assert.False(t, correct)
	assert.Empty(t, canonical)
	assert.Empty(t, ledger.credited)
}
