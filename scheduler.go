package main

import (
	"time"
)

// shuffledQuestions shuffles a copy of the question pool and takes the
// first n, or the whole pool when it is smaller.
func shuffledQuestions(pool []Question, n int) []Question {
	batch := make([]Question, len(pool))
	copy(batch, pool)

	// Fisher-Yates using crypto/rand
	for i := len(batch) - 1; i > 0; i-- {
		j := randomIndex(i + 1)
		batch[i], batch[j] = batch[j], batch[i]
	}

	if n < len(batch) {
		batch = batch[:n]
	}
	return batch
}

// runRounds drives a started room through its question batch and tears the
// room down afterwards. It runs on its own goroutine per room; guesses and
// roster changes interleave freely during the timed waits since they only
// take the room lock briefly. There is no cancellation: a room always plays
// its batch to the end, and broadcasts to departed players are silently
// skipped.
func (s *server) runRounds(room *Room) {
	batch := shuffledQuestions(s.pool, s.cfg.questionCount)

	for i := range batch {
		question := &batch[i]

		room.beginRound(question)
		s.broadcast(room, questionEvent{
			Method:   "question",
			Question: question.Title,
			Game:     room.snapshot(),
		})
		logf(s.cfg, "GAMES: Question %d of %d in %s", i+1, len(batch), room.code)

		// Late guesses are still graded during the grace extension; the
		// question only disappears once both windows expire.
		time.Sleep(s.cfg.questionTime + s.cfg.answerGrace)

		room.endRound()
		s.broadcast(room, questionEndEvent{
			Method:                "question end",
			TimeUntilNextQuestion: s.cfg.intermission.Milliseconds(),
			Game:                  room.snapshot(),
		})

		if i == len(batch)-1 {
			break
		}

		time.Sleep(s.cfg.intermission)
	}

	final := room.snapshot()
	s.broadcast(room, gameEvent{
		Method: "end",
		Game:   final,
	})

	for _, p := range final.Players {
		s.clients.clearGameFor(p.ClientID)
	}
	s.rooms.destroy(room.id)

	logf(s.cfg, "GAMES: Game %s finished after %d rounds", room.code, final.CurrentRound.RoundNumber)
}
