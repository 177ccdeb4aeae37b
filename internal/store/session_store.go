package store

import (
	"sort"
	"sync"
	"time"

	"github.com/onlybot12/costumer-service/internal/domain"
)

// sessionEntry pairs a chat with its lock and pending removal timer.
// The timer field is guarded by the store's map lock, everything else by mu.
type sessionEntry struct {
	mu      sync.Mutex
	chat    *domain.ChatSession
	removal *time.Timer
}

// SessionStore owns every chat session in the process. Mutations on the
// same chat are serialized by a per-session lock; different chats proceed
// in parallel.
type SessionStore struct {
	mu        sync.RWMutex
	sessions  map[string]*sessionEntry
	retention time.Duration
	closed    bool
}

// NewSessionStore creates a store. retention is how long an ended chat
// remains queryable before its deferred removal.
func NewSessionStore(retention time.Duration) *SessionStore {
	return &SessionStore{
		sessions:  make(map[string]*sessionEntry),
		retention: retention,
	}
}

// Create registers a new session. A duplicate chat id overwrites the
// previous entry (last write wins).
func (s *SessionStore) Create(chat *domain.ChatSession) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if prev, ok := s.sessions[chat.ID]; ok && prev.removal != nil {
		prev.removal.Stop()
	}
	s.sessions[chat.ID] = &sessionEntry{chat: chat}
}

// Get returns a point-in-time copy of a session, or false if unknown.
func (s *SessionStore) Get(chatID string) (*domain.ChatSession, bool) {
	e, ok := s.entry(chatID)
	if !ok {
		return nil, false
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	return snapshot(e.chat), true
}

// List returns copies of every session, oldest first.
func (s *SessionStore) List() []*domain.ChatSession {
	s.mu.RLock()
	entries := make([]*sessionEntry, 0, len(s.sessions))
	for _, e := range s.sessions {
		entries = append(entries, e)
	}
	s.mu.RUnlock()

	chats := make([]*domain.ChatSession, 0, len(entries))
	for _, e := range entries {
		e.mu.Lock()
		chats = append(chats, snapshot(e.chat))
		e.mu.Unlock()
	}
	sort.Slice(chats, func(i, j int) bool {
		return chats[i].CreatedAt.Before(chats[j].CreatedAt)
	})
	return chats
}

// AppendMessage adds a message to a chat's log. Unknown chat ids drop the
// message silently.
func (s *SessionStore) AppendMessage(chatID string, msg *domain.Message) bool {
	e, ok := s.entry(chatID)
	if !ok {
		return false
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	e.chat.Messages = append(e.chat.Messages, msg)
	return true
}

// AssignAgent binds an agent to an unclaimed chat and moves it to active.
// The first claim wins; any later call reports false and changes nothing.
func (s *SessionStore) AssignAgent(chatID string, agent *domain.Agent) bool {
	e, ok := s.entry(chatID)
	if !ok {
		return false
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.chat.Agent != nil {
		return false
	}
	e.chat.Agent = agent
	e.chat.Status = domain.StatusActive
	return true
}

// End appends the terminal message, marks the chat ended and schedules its
// removal after the retention period. Ending an already-ended or unknown
// chat is a no-op.
func (s *SessionStore) End(chatID string, msg *domain.Message) bool {
	e, ok := s.entry(chatID)
	if !ok {
		return false
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.chat.Status == domain.StatusEnded {
		return false
	}
	e.chat.Messages = append(e.chat.Messages, msg)
	e.chat.Status = domain.StatusEnded

	s.mu.Lock()
	if !s.closed {
		e.removal = time.AfterFunc(s.retention, func() { s.Remove(chatID) })
	}
	s.mu.Unlock()
	return true
}

// MarkCustomerDisconnected flags a live chat whose customer dropped. The
// session stays listed and an ended chat keeps its terminal status.
func (s *SessionStore) MarkCustomerDisconnected(chatID string) bool {
	e, ok := s.entry(chatID)
	if !ok {
		return false
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.chat.Status == domain.StatusEnded {
		return false
	}
	e.chat.Status = domain.StatusCustomerDisconnected
	return true
}

// Remove deletes a session immediately and cancels any pending removal.
// Removing an unknown chat id is a no-op, so a late-firing timer is safe.
func (s *SessionStore) Remove(chatID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if e, ok := s.sessions[chatID]; ok {
		if e.removal != nil {
			e.removal.Stop()
		}
		delete(s.sessions, chatID)
	}
}

// Close cancels every pending removal timer and stops scheduling new ones.
func (s *SessionStore) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	for _, e := range s.sessions {
		if e.removal != nil {
			e.removal.Stop()
		}
	}
}

func (s *SessionStore) entry(chatID string) (*sessionEntry, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	e, ok := s.sessions[chatID]
	return e, ok
}

func snapshot(chat *domain.ChatSession) *domain.ChatSession {
	copied := *chat
	copied.Messages = append([]*domain.Message(nil), chat.Messages...)
	return &copied
}
