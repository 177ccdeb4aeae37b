package domain

import (
	"fmt"
	"sync/atomic"
	"time"
)

// MessageKind classifies who produced a message.
type MessageKind string

const (
	KindCustomer MessageKind = "customer"
	KindAgent    MessageKind = "agent"
	KindSystem   MessageKind = "system"
)

// Message is a single entry in a chat session's log. Immutable once created.
type Message struct {
	ID        string      `json:"id"`
	Kind      MessageKind `json:"kind"`
	Text      string      `json:"text"`
	Timestamp time.Time   `json:"timestamp"`
	Sender    string      `json:"sender"`
}

var messageSeq atomic.Uint64

// NewMessage creates a message whose id is unique for the lifetime of the
// process and follows creation order.
func NewMessage(kind MessageKind, text, sender string) *Message {
	now := time.Now()
	return &Message{
		ID:        fmt.Sprintf("msg_%d_%d", now.UnixMilli(), messageSeq.Add(1)),
		Kind:      kind,
		Text:      text,
		Timestamp: now,
		Sender:    sender,
	}
}
