package hub

import "sync"

// Room is an explicit broadcast group: either the participant set of a
// single chat (the customer plus anyone viewing it) or the global agent
// group.
type Room struct {
	ID      string
	clients map[*Client]bool
	mu      sync.RWMutex
}

// NewRoom creates an empty broadcast group.
func NewRoom(id string) *Room {
	return &Room{
		ID:      id,
		clients: make(map[*Client]bool),
	}
}

// addClient adds a client to the room.
func (r *Room) addClient(client *Client) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.clients[client] = true
}

// removeClient removes a client from the room.
func (r *Room) removeClient(client *Client) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.clients, client)
}

// empty reports whether the room has no members left.
func (r *Room) empty() bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.clients) == 0
}

// broadcast delivers a message to every member except the given sender
// (nil means everyone). Members with a full send queue are skipped; their
// pumps tear the connection down.
func (r *Room) broadcast(message []byte, except *Client) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for client := range r.clients {
		if client == except {
			continue
		}
		select {
		case client.Send <- message:
		default:
		}
	}
}
