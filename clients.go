package main

import "sync"

// Connection is the server-side state for one live socket. The token is a
// bearer secret sent only to the owning client; the clientID is the public
// identity other players see. game holds the id of the room this connection
// currently occupies, and is only read or written through the registry so
// it stays under the registry lock.
type Connection struct {
	token    string
	clientID string
	name     string
	client   *Client
	game     string
}

// ConnectionRegistry maps session tokens to live connections. A secondary
// clientID index backs broadcast fan-out without scanning every entry.
type ConnectionRegistry struct {
	mu       sync.RWMutex
	byToken  map[string]*Connection
	byClient map[string]string
}

func newConnectionRegistry() *ConnectionRegistry {
	return &ConnectionRegistry{
		byToken:  make(map[string]*Connection),
		byClient: make(map[string]string),
	}
}

// register issues a fresh token and clientID for a socket. An empty name
// gets a generated one.
func (cr *ConnectionRegistry) register(client *Client, name string) *Connection {
	if name == "" {
		name = randomName()
	}

	conn := &Connection{
		token:    newID(),
		clientID: newID(),
		name:     name,
		client:   client,
	}

	cr.mu.Lock()
	cr.byToken[conn.token] = conn
	cr.byClient[conn.clientID] = conn.token
	cr.mu.Unlock()

	return conn
}

func (cr *ConnectionRegistry) lookup(token string) *Connection {
	cr.mu.RLock()
	defer cr.mu.RUnlock()
	return cr.byToken[token]
}

func (cr *ConnectionRegistry) lookupClient(clientID string) *Connection {
	cr.mu.RLock()
	defer cr.mu.RUnlock()

	token, ok := cr.byClient[clientID]
	if !ok {
		return nil
	}
	return cr.byToken[token]
}

func (cr *ConnectionRegistry) currentGame(token string) string {
	cr.mu.RLock()
	defer cr.mu.RUnlock()

	conn, ok := cr.byToken[token]
	if !ok {
		return ""
	}
	return conn.game
}

func (cr *ConnectionRegistry) setGame(token, gameID string) {
	cr.mu.Lock()
	defer cr.mu.Unlock()

	if conn, ok := cr.byToken[token]; ok {
		conn.game = gameID
	}
}

// clearGameFor drops the room association of a connection found by its
// public id. Used by the scheduler during room teardown; a missing
// connection is a no-op.
func (cr *ConnectionRegistry) clearGameFor(clientID string) {
	cr.mu.Lock()
	defer cr.mu.Unlock()

	token, ok := cr.byClient[clientID]
	if !ok {
		return
	}
	if conn, ok := cr.byToken[token]; ok {
		conn.game = ""
	}
}

// remove deletes both index entries and returns the removed connection with
// its final room association, so the caller can notify remaining occupants.
func (cr *ConnectionRegistry) remove(token string) *Connection {
	cr.mu.Lock()
	defer cr.mu.Unlock()

	conn, ok := cr.byToken[token]
	if !ok {
		return nil
	}
	delete(cr.byToken, token)
	delete(cr.byClient, conn.clientID)

	return conn
}
