package domain

import "time"

// WebSocketMessage is the standard envelope exchanged with clients.
type WebSocketMessage struct {
	Type    string      `json:"type"`
	Payload interface{} `json:"payload"`
}

// --- Inbound payloads ---

// JoinCustomerPayload is the 'join-as-customer' request payload.
type JoinCustomerPayload struct {
	Name     string  `json:"name"`
	Username string  `json:"username"`
	Subject  Subject `json:"subject"`
}

// JoinAgentPayload is the 'join-as-agent' request payload.
type JoinAgentPayload struct {
	Name string `json:"name"`
}

// CustomerMessagePayload is the 'customer-message' request payload.
type CustomerMessagePayload struct {
	Message string `json:"message"`
}

// AgentMessagePayload is the 'agent-message' request payload.
type AgentMessagePayload struct {
	ChatID  string `json:"chatId"`
	Message string `json:"message"`
}

// ChatRefPayload addresses a single chat; used by 'select-chat', 'end-chat',
// the typing events and 'customer-disconnected'.
type ChatRefPayload struct {
	ChatID string `json:"chatId"`
}

// TransferPayload is the 'transfer-chat' request payload.
type TransferPayload struct {
	ChatID    string `json:"chatId"`
	AgentName string `json:"agentName"`
}

// --- Outbound payloads ---

// ChatStartedPayload acknowledges a new customer session.
type ChatStartedPayload struct {
	ChatID  string   `json:"chatId"`
	Message *Message `json:"message"`
}

// NewChatPayload notifies the agent group of a freshly created session.
type NewChatPayload struct {
	ChatID    string    `json:"chatId"`
	Customer  *Customer `json:"customer"`
	Timestamp time.Time `json:"timestamp"`
}

// InitialDataPayload is the dashboard snapshot sent to a newly joined agent.
type InitialDataPayload struct {
	Chats []*ChatSession `json:"chats"`
	Stats Stats          `json:"stats"`
}

// NewMessagePayload carries a message appended to a chat.
type NewMessagePayload struct {
	ChatID  string   `json:"chatId"`
	Message *Message `json:"message"`
}

// ChatHistoryPayload answers an agent selecting a chat.
type ChatHistoryPayload struct {
	ChatID   string     `json:"chatId"`
	Messages []*Message `json:"messages"`
	Customer *Customer  `json:"customer"`
}

// UserTypingPayload notifies the agent group a customer is typing.
type UserTypingPayload struct {
	ChatID   string `json:"chatId"`
	UserName string `json:"userName,omitempty"`
}

// AgentTypingPayload notifies a chat room its agent is typing.
type AgentTypingPayload struct {
	ChatID    string `json:"chatId"`
	AgentName string `json:"agentName,omitempty"`
}

// ChatTransferredPayload notifies the agent group of a handoff announcement.
type ChatTransferredPayload struct {
	ChatID  string   `json:"chatId"`
	Message *Message `json:"message"`
}

// ChatEndedPayload closes a chat. The chat room receives the terminal
// message; the agent group only gets the chat id.
type ChatEndedPayload struct {
	ChatID  string   `json:"chatId"`
	Message *Message `json:"message,omitempty"`
}

// AgentDisconnectedPayload tells remaining agents a colleague left.
type AgentDisconnectedPayload struct {
	AgentID string `json:"agentId"`
}
