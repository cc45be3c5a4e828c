// Head-to-head trivia
//
// Clients hold a persistent websocket to the server. On connect each client
// is issued a secret session token plus a public client id, and either keeps
// its chosen display name or receives a generated one. Any client can create
// a room, which mints a shareable 6-character join code; others join by room
// id or by code. When the creator starts the room, a shuffled batch of
// questions is played as timed rounds: each question stays open for a fixed
// window plus a grace extension, free-text guesses are graded with fuzzy
// matching against the question's accepted answers, and each accepted answer
// is only credited once per round, to whoever lands it first. After the last
// round the room broadcasts final scores and is torn down, freeing its code.

package main

import (
	"log"
	"net/http"

	"github.com/gorilla/websocket"
	"github.com/julienschmidt/httprouter"
)

// Inbound envelope. Every method except the implicit connect carries the
// caller's session token. Fields are trusted as-is; anything unresolvable
// makes the handler return without replying.
type clientEnvelope struct {
	Method  string `json:"method"`
	Token   string `json:"token,omitempty"`
	GameID  string `json:"gameId,omitempty"`
	Code    string `json:"code,omitempty"`
	Type    string `json:"type,omitempty"` // "join" or "leave"
	Content string `json:"content,omitempty"`
}

// Sent once per socket, immediately after registration. The token never
// appears in any other message.
type connectEvent struct {
	Method   string `json:"method"` // "connect"
	Token    string `json:"token"`
	ClientID string `json:"clientId"`
	Name     string `json:"name"`
}

// gameEvent covers the broadcasts that carry nothing but a room snapshot:
// "create", "start", "join", "end".
type gameEvent struct {
	Method string       `json:"method"`
	Game   RoomSnapshot `json:"game"`
}

type questionEvent struct {
	Method   string       `json:"method"` // "question"
	Question string       `json:"question"`
	Game     RoomSnapshot `json:"game"`
}

type questionEndEvent struct {
	Method                string       `json:"method"` // "question end"
	TimeUntilNextQuestion int64        `json:"timeUntilNextQuestion"`
	Game                  RoomSnapshot `json:"game"`
}

type messageAuthor struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type messageEvent struct {
	Method  string        `json:"method"` // "message"
	Author  messageAuthor `json:"author"`
	Game    RoomSnapshot  `json:"game"`
	Content string        `json:"content"`
	Correct bool          `json:"correct"`
}

type errorEvent struct {
	Method    string `json:"method"`
	ErrorCode int    `json:"errorCode"`
	Error     string `json:"error"`
}

// Client owns the outbound side of one socket.
type Client struct {
	conn *websocket.Conn
	send chan any
	done chan struct{}
}

// trySend queues a message without blocking. A full buffer or a departed
// client drops the message silently.
func (c *Client) trySend(msg any) {
	select {
	case c.send <- msg:
	case <-c.done:
	default:
	}
}

func (c *Client) writePump() {
	defer c.conn.Close()

	for {
		select {
		case msg := <-c.send:
			if err := c.conn.WriteJSON(msg); err != nil {
				return
			}
		case <-c.done:
			return
		}
	}
}

func (c *Client) readPump(s *server, token string) {
	defer func() {
		close(c.done)
		_ = c.conn.Close()
		s.disconnect(token)
	}()

	for {
		var env clientEnvelope
		if err := c.conn.ReadJSON(&env); err != nil {
			return
		}

		switch env.Method {
		case "create":
			s.handleCreate(env)
		case "start":
			s.handleStart(env)
		case "join code":
			s.handleJoinCode(env)
		case "join":
			s.handleJoin(env)
		case "message":
			s.handleMessage(env)
		default:
			// ignore unknown methods
		}
	}
}

// server owns the process-wide registries. Everything is per-instance so
// tests can run several independent servers side by side.
type server struct {
	cfg     *Config
	clients *ConnectionRegistry
	rooms   *RoomRegistry
	pool    []Question
}

func newServer(cfg *Config) *server {
	return &server{
		cfg:     cfg,
		clients: newConnectionRegistry(),
		rooms:   newRoomRegistry(),
		pool:    questionPool,
	}
}

// broadcast fans a message out to every roster member's live connection.
// Members without one are skipped, never retried.
func (s *server) broadcast(room *Room, msg any) {
	for _, clientID := range room.playerIDs() {
		conn := s.clients.lookupClient(clientID)
		if conn == nil {
			continue
		}
		conn.client.trySend(msg)
	}
}

func (s *server) handleCreate(env clientEnvelope) {
	conn := s.clients.lookup(env.Token)
	if conn == nil {
		return
	}

	room := s.rooms.create(Creator{
		ID:   conn.clientID,
		Name: conn.name,
	})
	s.clients.setGame(env.Token, room.id)

	logf(s.cfg, "GAMES: %q created game %s", conn.name, room.code)

	conn.client.trySend(gameEvent{
		Method: "create",
		Game:   room.snapshot(),
	})
}

func (s *server) handleStart(env clientEnvelope) {
	conn := s.clients.lookup(env.Token)
	if conn == nil {
		return
	}

	// A missing room, a caller who is not the creator, and a re-start all
	// answer identically, so callers cannot probe which check failed.
	room := s.rooms.byID(env.GameID)
	if room == nil || !room.markStarted(conn.clientID) {
		conn.client.trySend(errorEvent{
			Method:    "start",
			ErrorCode: 404,
			Error:     "Game not found",
		})
		return
	}

	logf(s.cfg, "GAMES: %q started game %s", conn.name, room.code)

	s.broadcast(room, gameEvent{
		Method: "start",
		Game:   room.snapshot(),
	})

	go s.runRounds(room)
}

// handleJoinCode resolves a short join code and re-enters as a plain join.
// Unknown codes resolve to no room and surface as join's 404.
func (s *server) handleJoinCode(env clientEnvelope) {
	env.Method = "join"
	env.GameID = s.rooms.idForCode(env.Code)
	s.handleJoin(env)
}

func (s *server) handleJoin(env clientEnvelope) {
	conn := s.clients.lookup(env.Token)
	if conn == nil {
		return
	}

	room := s.rooms.byID(env.GameID)
	if room == nil {
		conn.client.trySend(errorEvent{
			Method:    "join",
			ErrorCode: 404,
			Error:     "Game not found",
		})
		return
	}

	kind := env.Type
	if kind == "" {
		kind = "join"
	}

	if kind == "join" {
		if s.clients.currentGame(env.Token) != "" {
			conn.client.trySend(errorEvent{
				Method:    "join",
				ErrorCode: 409,
				Error:     "Already connected to a game",
			})
			return
		}

		room.addPlayer(conn.clientID, conn.name)
		s.clients.setGame(env.Token, room.id)
		logf(s.cfg, "GAMES: %q joined game %s", conn.name, room.code)
	} else {
		room.removePlayer(conn.clientID)
		s.clients.setGame(env.Token, "")
		logf(s.cfg, "GAMES: %q left game %s", conn.name, room.code)
	}

	s.broadcast(room, gameEvent{
		Method: "join",
		Game:   room.snapshot(),
	})
}

func (s *server) handleMessage(env clientEnvelope) {
	conn := s.clients.lookup(env.Token)
	if conn == nil {
		return
	}

	room := s.rooms.byID(env.GameID)
	if room == nil {
		conn.client.trySend(errorEvent{
			Method:    "message",
			ErrorCode: 404,
			Error:     "Game not found",
		})
		return
	}

	// Grading happens against the room state at this instant; once the
	// scheduler has cleared the question, every guess is incorrect.
	correct, content := room.grade(conn.clientID, env.Content)
	if correct {
		logf(s.cfg, "GAMES: %q answered %q in %s", conn.name, content, room.code)
	}

	s.broadcast(room, messageEvent{
		Method: "message",
		Author: messageAuthor{
			ID:   conn.clientID,
			Name: conn.name,
		},
		Game:    room.snapshot(),
		Content: content,
		Correct: correct,
	})
}

// disconnect tears down a closed socket's registry entry. If the connection
// occupied a room, remaining occupants get a roster broadcast first; the
// player entry itself stays in the roster, but future broadcasts will skip
// its dead connection.
func (s *server) disconnect(token string) {
	conn := s.clients.remove(token)
	if conn == nil {
		return
	}

	logf(s.cfg, "WS: %q disconnected", conn.name)

	if conn.game == "" {
		return
	}

	room := s.rooms.byID(conn.game)
	if room == nil {
		return
	}

	msg := gameEvent{
		Method: "join",
		Game:   room.snapshot(),
	}
	for _, clientID := range room.playerIDs() {
		if clientID == conn.clientID {
			continue
		}
		if occupant := s.clients.lookupClient(clientID); occupant != nil {
			occupant.client.trySend(msg)
		}
	}
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

func serveWS(cfg *Config, s *server) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			log.Println("upgrade error:", err)
			return
		}

		client := &Client{
			conn: conn,
			send: make(chan any, 8),
			done: make(chan struct{}),
		}

		registered := s.clients.register(client, r.URL.Query().Get("name"))
		logf(cfg, "WS: %q connected from %s", registered.name, realIP(r))

		client.trySend(connectEvent{
			Method:   "connect",
			Token:    registered.token,
			ClientID: registered.clientID,
			Name:     registered.name,
		})

		go client.writePump()
		client.readPump(s, registered.token)
	}
}

// registerTriviaGame sets up the game routes:
//   - $prefix/ws            → per-client websocket
//   - $prefix/code/:code    → join code lookup
//   - $prefix/game/:code/qr → PNG QR code for sharing a live room
func registerTriviaGame(cfg *Config, s *server, mux *httprouter.Router) {
	mux.GET(cfg.prefix+"/ws", serveWS(cfg, s))
	mux.GET(cfg.prefix+"/code/:code", serveCodeLookup(cfg, s))
	mux.GET(cfg.prefix+"/game/:code/qr", serveGameQR(cfg, s))
}
