package hub

import (
	"encoding/json"
	"errors"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"

	"github.com/onlybot12/costumer-service/internal/domain"
	"github.com/onlybot12/costumer-service/internal/service"
)

// ClientRequest bundles a client with their incoming event.
type ClientRequest struct {
	Client  *Client
	Message domain.WebSocketMessage
}

// Hub routes every inbound event to the chat core and fans the results
// out to exactly two scopes: a chat's participant group and the agent
// broadcast group. Events from connections the directory does not know
// are silent no-ops.
type Hub struct {
	connections map[*Client]bool
	rooms       map[string]*Room // chat id -> participant group
	agents      *Room
	events      chan *ClientRequest
	register    chan *Client
	unregister  chan *Client
	chatService service.IChatService
	log         *logrus.Entry
}

// NewHub creates a new Hub.
func NewHub(chatService service.IChatService) *Hub {
	return &Hub{
		connections: make(map[*Client]bool),
		rooms:       make(map[string]*Room),
		agents:      NewRoom("cs-agents"),
		events:      make(chan *ClientRequest),
		register:    make(chan *Client),
		unregister:  make(chan *Client),
		chatService: chatService,
		log:         logrus.WithField("component", "hub"),
	}
}

// Run is the hub's single-writer loop: every registration, disconnect and
// event dispatch is serialized through it.
func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.connections[client] = true
			h.log.WithField("connection", client.ID).Info("connected")
		case client := <-h.unregister:
			if _, ok := h.connections[client]; ok {
				h.handleDisconnect(client)
				delete(h.connections, client)
				close(client.Send)
			}
		case request := <-h.events:
			h.handleEvent(request)
		}
	}
}

// ServeWs registers a new connection and starts its pumps.
func (h *Hub) ServeWs(conn *websocket.Conn) {
	client := &Client{ID: uuid.NewString(), Hub: h, Conn: conn, Send: make(chan []byte, 256)}
	h.register <- client
	go client.writePump()
	go client.readPump()
}

func (h *Hub) handleEvent(req *ClientRequest) {
	switch req.Message.Type {
	case "join-as-customer":
		h.handleJoinAsCustomer(req)
	case "join-as-agent":
		h.handleJoinAsAgent(req)
	case "customer-message":
		h.handleCustomerMessage(req)
	case "agent-message":
		h.handleAgentMessage(req)
	case "select-chat":
		h.handleSelectChat(req)
	case "typing-start":
		h.handleTypingStart(req)
	case "typing-stop":
		h.handleTypingStop(req)
	case "transfer-chat":
		h.handleTransferChat(req)
	case "end-chat":
		h.handleEndChat(req)
	default:
		h.log.WithField("type", req.Message.Type).Debug("unknown event type")
	}
}

// --- Event Handlers ---

func (h *Hub) handleJoinAsCustomer(req *ClientRequest) {
	var payload domain.JoinCustomerPayload
	if err := parsePayload(req.Message.Payload, &payload); err != nil {
		return
	}

	chat, stats := h.chatService.RegisterCustomer(req.Client.ID, payload)
	h.joinRoom(chat.ID, req.Client)

	h.broadcastToAgents("new-chat", domain.NewChatPayload{
		ChatID:    chat.ID,
		Customer:  chat.Customer,
		Timestamp: chat.CreatedAt,
	}, nil)

	if len(chat.Messages) > 0 {
		req.Client.sendEvent("chat-started", domain.ChatStartedPayload{
			ChatID:  chat.ID,
			Message: chat.Messages[len(chat.Messages)-1],
		})
	}

	h.broadcastToAgents("stats-update", stats, nil)
}

func (h *Hub) handleJoinAsAgent(req *ClientRequest) {
	var payload domain.JoinAgentPayload
	if err := parsePayload(req.Message.Payload, &payload); err != nil {
		return
	}

	_, initial := h.chatService.RegisterAgent(req.Client.ID, payload)
	h.agents.addClient(req.Client)
	req.Client.sendEvent("initial-data", initial)
}

func (h *Hub) handleCustomerMessage(req *ClientRequest) {
	var payload domain.CustomerMessagePayload
	if err := parsePayload(req.Message.Payload, &payload); err != nil {
		return
	}

	chatID, msg, ok := h.chatService.SendCustomerMessage(req.Client.ID, payload.Message)
	if !ok {
		return
	}

	h.broadcastToAgents("new-message", domain.NewMessagePayload{ChatID: chatID, Message: msg}, nil)
	req.Client.sendEvent("message-sent", msg)
}

func (h *Hub) handleAgentMessage(req *ClientRequest) {
	var payload domain.AgentMessagePayload
	if err := parsePayload(req.Message.Payload, &payload); err != nil {
		return
	}

	msg, ok := h.chatService.SendAgentMessage(req.Client.ID, payload.ChatID, payload.Message)
	if !ok {
		return
	}

	h.broadcastToRoom(payload.ChatID, "new-message", domain.NewMessagePayload{ChatID: payload.ChatID, Message: msg}, nil)
	h.broadcastToAgents("new-message", domain.NewMessagePayload{ChatID: payload.ChatID, Message: msg}, req.Client)
}

func (h *Hub) handleSelectChat(req *ClientRequest) {
	var payload domain.ChatRefPayload
	if err := parsePayload(req.Message.Payload, &payload); err != nil {
		return
	}

	result, ok := h.chatService.SelectChat(req.Client.ID, payload.ChatID)
	if !ok {
		return
	}

	if result.Assigned {
		h.broadcastToAgents("stats-update", result.Stats, nil)
	}

	req.Client.sendEvent("chat-history", domain.ChatHistoryPayload{
		ChatID:   payload.ChatID,
		Messages: result.Chat.Messages,
		Customer: result.Chat.Customer,
	})
}

// Typing indicators are forwarded to the opposite party's scope, never both.
func (h *Hub) handleTypingStart(req *ClientRequest) {
	var payload domain.ChatRefPayload
	if err := parsePayload(req.Message.Payload, &payload); err != nil {
		return
	}

	if customer, ok := h.chatService.CustomerByConnection(req.Client.ID); ok {
		h.broadcastToAgents("user-typing", domain.UserTypingPayload{
			ChatID:   customer.ChatID,
			UserName: customer.Name,
		}, nil)
		return
	}
	if agent, ok := h.chatService.AgentByConnection(req.Client.ID); ok && payload.ChatID != "" {
		h.broadcastToRoom(payload.ChatID, "agent-typing", domain.AgentTypingPayload{
			ChatID:    payload.ChatID,
			AgentName: agent.DisplayName(),
		}, nil)
	}
}

func (h *Hub) handleTypingStop(req *ClientRequest) {
	var payload domain.ChatRefPayload
	if err := parsePayload(req.Message.Payload, &payload); err != nil {
		return
	}

	if customer, ok := h.chatService.CustomerByConnection(req.Client.ID); ok {
		h.broadcastToAgents("user-typing-stop", domain.UserTypingPayload{ChatID: customer.ChatID}, nil)
		return
	}
	if _, ok := h.chatService.AgentByConnection(req.Client.ID); ok && payload.ChatID != "" {
		h.broadcastToRoom(payload.ChatID, "agent-typing-stop", domain.AgentTypingPayload{ChatID: payload.ChatID}, nil)
	}
}

func (h *Hub) handleTransferChat(req *ClientRequest) {
	var payload domain.TransferPayload
	if err := parsePayload(req.Message.Payload, &payload); err != nil {
		return
	}

	msg, ok := h.chatService.TransferChat(payload.ChatID, payload.AgentName)
	if !ok {
		return
	}

	h.broadcastToRoom(payload.ChatID, "new-message", domain.NewMessagePayload{ChatID: payload.ChatID, Message: msg}, nil)
	h.broadcastToAgents("chat-transferred", domain.ChatTransferredPayload{ChatID: payload.ChatID, Message: msg}, nil)
}

func (h *Hub) handleEndChat(req *ClientRequest) {
	var payload domain.ChatRefPayload
	if err := parsePayload(req.Message.Payload, &payload); err != nil {
		return
	}

	msg, stats, ok := h.chatService.EndChat(payload.ChatID)
	if !ok {
		return
	}

	h.broadcastToRoom(payload.ChatID, "chat-ended", domain.ChatEndedPayload{ChatID: payload.ChatID, Message: msg}, nil)
	h.broadcastToAgents("stats-update", stats, nil)
	h.broadcastToAgents("chat-ended", domain.ChatEndedPayload{ChatID: payload.ChatID}, nil)
}

// handleDisconnect applies the lifecycle side effects of a dropped
// connection before the client is forgotten.
func (h *Hub) handleDisconnect(client *Client) {
	res := h.chatService.Disconnect(client.ID)
	switch {
	case res.Customer != nil:
		h.leaveRooms(client)
		if res.CustomerChatMarked {
			h.broadcastToAgents("customer-disconnected", domain.ChatRefPayload{ChatID: res.Customer.ChatID}, nil)
		}
	case res.Agent != nil:
		h.agents.removeClient(client)
		h.broadcastToAgents("agent-disconnected", domain.AgentDisconnectedPayload{AgentID: client.ID}, client)
	default:
		h.leaveRooms(client)
	}
	h.log.WithField("connection", client.ID).Info("disconnected")
}

// --- Helper Functions ---

func (h *Hub) joinRoom(chatID string, client *Client) {
	room, ok := h.rooms[chatID]
	if !ok {
		room = NewRoom(chatID)
		h.rooms[chatID] = room
	}
	room.addClient(client)
}

func (h *Hub) leaveRooms(client *Client) {
	for id, room := range h.rooms {
		room.removeClient(client)
		if room.empty() {
			delete(h.rooms, id)
		}
	}
}

// broadcastToRoom emits to a chat's participant group. An unknown chat has
// no members, so the event goes nowhere.
func (h *Hub) broadcastToRoom(chatID, eventType string, payload interface{}, except *Client) {
	room, ok := h.rooms[chatID]
	if !ok {
		return
	}
	msg, err := json.Marshal(domain.WebSocketMessage{Type: eventType, Payload: payload})
	if err != nil {
		return
	}
	room.broadcast(msg, except)
}

// broadcastToAgents emits to every connected agent, optionally excluding one.
func (h *Hub) broadcastToAgents(eventType string, payload interface{}, except *Client) {
	msg, err := json.Marshal(domain.WebSocketMessage{Type: eventType, Payload: payload})
	if err != nil {
		return
	}
	h.agents.broadcast(msg, except)
}

// parsePayload re-marshals an untyped payload into its concrete struct.
func parsePayload(payload interface{}, result interface{}) error {
	payloadBytes, err := json.Marshal(payload)
	if err != nil {
		return errors.New("failed to marshal payload")
	}
	return json.Unmarshal(payloadBytes, result)
}
