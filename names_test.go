package main

import (
	"regexp"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var namePattern = regexp.MustCompile(`^([A-Z][a-z]+)([A-Z][a-z]+)([0-9]+)$`)

func TestRandomName(t *testing.T) {
	for i := 0; i < 100; i++ {
		name := randomName()

		parts := namePattern.FindStringSubmatch(name)
		require.NotNil(t, parts, "unexpected name shape: %q", name)

		assert.Contains(t, nameAdjectives, lower(parts[1]))
		assert.Contains(t, nameNouns, lower(parts[2]))

		suffix, err := strconv.Atoi(parts[3])
		require.NoError(t, err)
		assert.Less(t, suffix, 20)
	}
}

func lower(word string) string {
	if word == "" {
		return word
	}
	return string(word[0]|0x20) + word[1:]
}

func TestCapitalize(t *testing.T) {
	assert.Equal(t, "Paris", capitalize("paris"))
	assert.Equal(t, "A", capitalize("a"))
	assert.Equal(t, "", capitalize(""))
}
