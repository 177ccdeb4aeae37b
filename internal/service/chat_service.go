package service

import (
	"github.com/onlybot12/costumer-service/internal/domain"
)

// SelectResult is the outcome of an agent selecting a chat.
type SelectResult struct {
	Assigned bool
	Chat     *domain.ChatSession
	Stats    domain.Stats
}

// DisconnectResult reports what a closing connection left behind.
type DisconnectResult struct {
	Customer           *domain.Customer
	Agent              *domain.Agent
	CustomerChatMarked bool
}

// ChatService implements the session transition rules and keeps the stats
// aggregator in step with them.
type ChatService struct {
	sessions  ISessionStore
	directory IDirectory
	stats     IStatsAggregator
}

// NewChatService creates a new ChatService.
func NewChatService(sessions ISessionStore, directory IDirectory, stats IStatsAggregator) *ChatService {
	return &ChatService{sessions: sessions, directory: directory, stats: stats}
}

// RegisterCustomer creates the customer record and their waiting session,
// appends the localized welcome message and bumps the counters. The
// returned session snapshot includes the welcome message.
func (s *ChatService) RegisterCustomer(connectionID string, p domain.JoinCustomerPayload) (*domain.ChatSession, domain.Stats) {
	customer := &domain.Customer{
		ConnectionID: connectionID,
		Name:         p.Name,
		Username:     p.Username,
		Subject:      p.Subject,
		ChatID:       domain.NewChatID(),
	}
	s.directory.PutCustomer(customer)

	chat := domain.NewChatSession(customer.ChatID, customer)
	s.sessions.Create(chat)
	s.sessions.AppendMessage(chat.ID, domain.WelcomeMessage(customer))

	stats := s.stats.ChatCreated()
	created, _ := s.sessions.Get(chat.ID)
	return created, stats
}

// RegisterAgent stores the agent record and returns the dashboard snapshot,
// so a newly joined agent is consistent without racing later events.
func (s *ChatService) RegisterAgent(connectionID string, p domain.JoinAgentPayload) (*domain.Agent, domain.InitialDataPayload) {
	agent := &domain.Agent{ConnectionID: connectionID, Name: p.Name, Status: domain.AgentOnline}
	s.directory.PutAgent(agent)
	return agent, domain.InitialDataPayload{
		Chats: s.sessions.List(),
		Stats: s.stats.Snapshot(),
	}
}

// CustomerByConnection resolves a connection to its customer record.
func (s *ChatService) CustomerByConnection(connectionID string) (*domain.Customer, bool) {
	return s.directory.Customer(connectionID)
}

// AgentByConnection resolves a connection to its agent record.
func (s *ChatService) AgentByConnection(connectionID string) (*domain.Agent, bool) {
	return s.directory.Agent(connectionID)
}

// SendCustomerMessage appends a customer message to the sender's own chat.
// Unknown senders and removed chats drop the message silently.
func (s *ChatService) SendCustomerMessage(connectionID, text string) (string, *domain.Message, bool) {
	customer, ok := s.directory.Customer(connectionID)
	if !ok {
		return "", nil, false
	}
	msg := domain.NewMessage(domain.KindCustomer, text, customer.Name)
	if !s.sessions.AppendMessage(customer.ChatID, msg) {
		return "", nil, false
	}
	return customer.ChatID, msg, true
}

// SendAgentMessage appends an agent message to the addressed chat. The
// append succeeds even when the customer has disconnected; delivery is the
// router's concern.
func (s *ChatService) SendAgentMessage(connectionID, chatID, text string) (*domain.Message, bool) {
	agent, ok := s.directory.Agent(connectionID)
	if !ok {
		return nil, false
	}
	msg := domain.NewMessage(domain.KindAgent, text, agent.DisplayName())
	if !s.sessions.AppendMessage(chatID, msg) {
		return nil, false
	}
	return msg, true
}

// SelectChat runs the first-claim-wins assignment and always returns the
// full history for the selecting agent, whether or not the claim won.
func (s *ChatService) SelectChat(connectionID, chatID string) (*SelectResult, bool) {
	agent, ok := s.directory.Agent(connectionID)
	if !ok {
		return nil, false
	}
	assigned := s.sessions.AssignAgent(chatID, agent)
	stats := s.stats.Snapshot()
	if assigned {
		stats = s.stats.ChatAssigned()
	}
	chat, ok := s.sessions.Get(chatID)
	if !ok {
		return nil, false
	}
	return &SelectResult{Assigned: assigned, Chat: chat, Stats: stats}, true
}

// TransferChat appends the transfer notice. The agent binding is left
// untouched; the handoff is acknowledged out-of-band.
func (s *ChatService) TransferChat(chatID, agentName string) (*domain.Message, bool) {
	msg := domain.TransferMessage(agentName)
	if !s.sessions.AppendMessage(chatID, msg) {
		return nil, false
	}
	return msg, true
}

// EndChat closes a session exactly once. Repeated or unknown ends change
// nothing, including the counters.
func (s *ChatService) EndChat(chatID string) (*domain.Message, domain.Stats, bool) {
	msg := domain.EndMessage()
	if !s.sessions.End(chatID, msg) {
		return nil, s.stats.Snapshot(), false
	}
	return msg, s.stats.ChatEnded(), true
}

// Disconnect resolves and removes whatever identity the connection held.
// A customer's live chat is flagged customer_disconnected, never removed
// here; an agent's chats stay bound to them.
func (s *ChatService) Disconnect(connectionID string) DisconnectResult {
	customer, agent := s.directory.Remove(connectionID)
	res := DisconnectResult{Customer: customer, Agent: agent}
	if customer != nil {
		res.CustomerChatMarked = s.sessions.MarkCustomerDisconnected(customer.ChatID)
	}
	return res
}

// Stats returns the current counters.
func (s *ChatService) Stats() domain.Stats {
	return s.stats.Snapshot()
}
