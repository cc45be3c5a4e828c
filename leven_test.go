package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLevenshtein(t *testing.T) {
	tests := []struct {
		name string
		a    string
		b    string
		want int
	}{
		{name: "identical", a: "paris", b: "paris", want: 0},
		{name: "empty both", a: "", b: "", want: 0},
		{name: "empty left", a: "", b: "abc", want: 3},
		{name: "empty right", a: "abc", b: "", want: 3},
		{name: "single substitution", a: "cat", b: "bat", want: 1},
		{name: "single deletion", a: "paris", b: "pari", want: 1},
		{name: "single insertion", a: "pari", b: "paris", want: 1},
		{name: "classic kitten", a: "kitten", b: "sitting", want: 3},
		{name: "shared prefix and suffix", a: "unhappy", b: "unsnappy", want: 2},
		{name: "disjoint", a: "abcd", b: "wxyz", want: 4},
		{name: "unicode rune", a: "café", b: "cafe", want: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, levenshtein(tt.a, tt.b))
			assert.Equal(t, tt.want, levenshtein(tt.b, tt.a), "distance should be symmetric")
		})
	}
}

func TestLevenshteinProperties(t *testing.T) {
	words := []string{"", "a", "trivia", "question", "Mercury", "paris", "parris"}

	for _, w := range words {
		assert.Zero(t, levenshtein(w, w))
		assert.Equal(t, len([]rune(w)), levenshtein(w, ""))
	}
}
