package service

import "github.com/onlybot12/costumer-service/internal/domain"

// --- Service Interfaces ---

// IChatService defines the transition and routing rules of the chat core.
type IChatService interface {
	RegisterCustomer(connectionID string, p domain.JoinCustomerPayload) (*domain.ChatSession, domain.Stats)
	RegisterAgent(connectionID string, p domain.JoinAgentPayload) (*domain.Agent, domain.InitialDataPayload)
	CustomerByConnection(connectionID string) (*domain.Customer, bool)
	AgentByConnection(connectionID string) (*domain.Agent, bool)
	SendCustomerMessage(connectionID, text string) (string, *domain.Message, bool)
	SendAgentMessage(connectionID, chatID, text string) (*domain.Message, bool)
	SelectChat(connectionID, chatID string) (*SelectResult, bool)
	TransferChat(chatID, agentName string) (*domain.Message, bool)
	EndChat(chatID string) (*domain.Message, domain.Stats, bool)
	Disconnect(connectionID string) DisconnectResult
	Stats() domain.Stats
}

// IStatsAggregator maintains the live chat counters. It is pure
// bookkeeping: it only moves when told about a transition.
type IStatsAggregator interface {
	ChatCreated() domain.Stats
	ChatAssigned() domain.Stats
	ChatEnded() domain.Stats
	Snapshot() domain.Stats
}

// --- Store Interfaces ---

// ISessionStore defines the session table owned for the lifetime of the
// process.
type ISessionStore interface {
	Create(chat *domain.ChatSession)
	Get(chatID string) (*domain.ChatSession, bool)
	List() []*domain.ChatSession
	AppendMessage(chatID string, msg *domain.Message) bool
	AssignAgent(chatID string, agent *domain.Agent) bool
	End(chatID string, msg *domain.Message) bool
	MarkCustomerDisconnected(chatID string) bool
	Remove(chatID string)
	Close()
}

// IDirectory defines the connection-to-identity lookup table.
type IDirectory interface {
	PutCustomer(c *domain.Customer)
	PutAgent(a *domain.Agent)
	Customer(connectionID string) (*domain.Customer, bool)
	Agent(connectionID string) (*domain.Agent, bool)
	Remove(connectionID string) (*domain.Customer, *domain.Agent)
}
