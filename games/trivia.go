// Package games documents the gameplay rules.
package games

// Timed trivia over a shared room
// One player creates a room and shares its 6-character code; others join by code or room id
// When the creator starts the game, a shuffled batch of up to ten questions is played in order
// Each question stays on screen for a fixed window plus a short grace period, then disappears
// Guesses are plain chat messages; close-enough answers count thanks to fuzzy matching
// Each accepted answer is only worth credit once per round, first player to land it wins the points
// After the last question final scores are broadcast and the room is torn down

// Implementation details:
// - One websocket per client, identified by a secret session token issued on connect
// - Rooms live only in memory; codes are returned to the pool when a room ends
// - Grading tolerates typos via edit distance (similarity >= 0.6, at most 3 edits)
