package main

import (
	"crypto/rand"
	"encoding/hex"
	"sync"
)

// Player is a room roster entry. Name is copied from the connection at join
// time; Score only ever increases.
type Player struct {
	ClientID string `json:"clientId"`
	Name     string `json:"name"`
	Score    int    `json:"score"`
}

type Creator struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// RoundState tracks the current round. RoundNumber never resets within a
// room's life; RoundScores is cleared at the start of every round.
type RoundState struct {
	RoundNumber int            `json:"roundNumber"`
	RoundScores map[string]int `json:"roundScores"`
}

const pointsPerAnswer = 25

// Room is one live game session. All mutable state is guarded by mu; the
// scheduler goroutine and the per-client reader goroutines both touch it.
type Room struct {
	id      string
	code    string
	creator Creator

	mu       sync.Mutex
	players  []Player
	started  bool
	question *Question
	round    RoundState
	ledger   guessLedger
}

// RoomSnapshot is the wire representation of a room, attached to every
// broadcast. Question is null whenever no round is active.
type RoomSnapshot struct {
	ID           string     `json:"id"`
	Code         string     `json:"code"`
	Players      []Player   `json:"players"`
	Question     *string    `json:"question"`
	CurrentRound RoundState `json:"currentRound"`
	Creator      Creator    `json:"creator"`
	Started      bool       `json:"started"`
}

func (r *Room) snapshot() RoomSnapshot {
	r.mu.Lock()
	defer r.mu.Unlock()

	players := make([]Player, len(r.players))
	copy(players, r.players)

	scores := make(map[string]int, len(r.round.RoundScores))
	for id, count := range r.round.RoundScores {
		scores[id] = count
	}

	var question *string
	if r.question != nil {
		title := r.question.Title
		question = &title
	}

	return RoomSnapshot{
		ID:       r.id,
		Code:     r.code,
		Players:  players,
		Question: question,
		CurrentRound: RoundState{
			RoundNumber: r.round.RoundNumber,
			RoundScores: scores,
		},
		Creator: r.creator,
		Started: r.started,
	}
}

// addPlayer appends a roster entry unless the client is already present.
func (r *Room) addPlayer(clientID, name string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, p := range r.players {
		if p.ClientID == clientID {
			return
		}
	}

	r.players = append(r.players, Player{
		ClientID: clientID,
		Name:     name,
		Score:    0,
	})
}

func (r *Room) removePlayer(clientID string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	dst := r.players[:0]
	for _, p := range r.players {
		if p.ClientID == clientID {
			continue
		}
		dst = append(dst, p)
	}
	r.players = dst
}

// playerIDs returns the roster's client ids for broadcast fan-out.
func (r *Room) playerIDs() []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	ids := make([]string, 0, len(r.players))
	for _, p := range r.players {
		ids = append(ids, p.ClientID)
	}
	return ids
}

// markStarted flips the room to started if clientID is the creator and the
// room has not started yet. Returns false otherwise; the caller reports both
// failure modes as one "not found" error so neither can be probed apart.
func (r *Room) markStarted(clientID string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.creator.ID != clientID || r.started {
		return false
	}
	r.started = true
	return true
}

// beginRound advances the round counter, clears per-round scores and the
// guess ledger, and makes q the visible question.
func (r *Room) beginRound(q *Question) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.round.RoundNumber++
	r.round.RoundScores = make(map[string]int)
	r.ledger.reset()
	r.question = q
}

// endRound hides the question; guesses arriving afterwards are ungradable.
func (r *Room) endRound() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.question = nil
}

// grade evaluates a guess against the live room state. On a correct guess
// the player's total and round score are credited and the matched canonical
// answer is returned as the display content; otherwise the raw content
// passes through.
func (r *Room) grade(clientID, content string) (correct bool, display string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.question == nil {
		return false, content
	}

	correct, canonical := gradeGuess(content, r.question, &r.ledger)
	if !correct {
		return false, content
	}

	for i := range r.players {
		if r.players[i].ClientID == clientID {
			r.players[i].Score += pointsPerAnswer
			break
		}
	}
	r.round.RoundScores[clientID]++

	return true, canonical
}

// RoomRegistry indexes live rooms by id and by join code. Both indexes are
// updated under one lock, so a room is never reachable through only one.
type RoomRegistry struct {
	mu    sync.RWMutex
	rooms map[string]*Room
	codes map[string]string
}

func newRoomRegistry() *RoomRegistry {
	return &RoomRegistry{
		rooms: make(map[string]*Room),
		codes: make(map[string]string),
	}
}

const codeAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// newGameCode generates a 6-character join code, retrying on collision with
// any currently-live code. Caller must hold rr.mu.
func (rr *RoomRegistry) newGameCode() string {
	for {
		buf := make([]byte, 6)
		if _, err := rand.Read(buf); err != nil {
			panic("crypto/rand failure: " + err.Error())
		}
		out := make([]byte, 6)
		for i := range out {
			out[i] = codeAlphabet[int(buf[i])%len(codeAlphabet)]
		}
		code := string(out)

		if _, exists := rr.codes[code]; !exists {
			return code
		}
	}
}

func newID() string {
	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err != nil {
		panic("crypto/rand failure: " + err.Error())
	}
	return hex.EncodeToString(buf)
}

// create allocates a room with a fresh id and join code, seeded with the
// creator as its only player.
func (rr *RoomRegistry) create(creator Creator) *Room {
	rr.mu.Lock()
	defer rr.mu.Unlock()

	room := &Room{
		id:      newID(),
		code:    rr.newGameCode(),
		creator: creator,
		players: []Player{{
			ClientID: creator.ID,
			Name:     creator.Name,
			Score:    0,
		}},
		round: RoundState{
			RoundScores: make(map[string]int),
		},
	}

	rr.rooms[room.id] = room
	rr.codes[room.code] = room.id

	return room
}

func (rr *RoomRegistry) byID(id string) *Room {
	rr.mu.RLock()
	defer rr.mu.RUnlock()
	return rr.rooms[id]
}

func (rr *RoomRegistry) byCode(code string) *Room {
	rr.mu.RLock()
	defer rr.mu.RUnlock()

	id, ok := rr.codes[code]
	if !ok {
		return nil
	}
	return rr.rooms[id]
}

// idForCode resolves a join code, returning "" when unknown.
func (rr *RoomRegistry) idForCode(code string) string {
	rr.mu.RLock()
	defer rr.mu.RUnlock()
	return rr.codes[code]
}

// destroy drops the room from both indexes, freeing its code for reuse.
func (rr *RoomRegistry) destroy(id string) {
	rr.mu.Lock()
	defer rr.mu.Unlock()

	room, ok := rr.rooms[id]
	if !ok {
		return
	}
	delete(rr.rooms, id)
	delete(rr.codes, room.code)
}
