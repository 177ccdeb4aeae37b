package store

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/onlybot12/costumer-service/internal/domain"
)

func newWaitingChat(id string) *domain.ChatSession {
	return domain.NewChatSession(id, &domain.Customer{Name: "Ana", Username: "ana1", ChatID: id})
}

func TestGetUnknownChat(t *testing.T) {
	s := NewSessionStore(time.Minute)
	defer s.Close()

	chat, ok := s.Get("chat_missing")
	assert.False(t, ok)
	assert.Nil(t, chat)
}

func TestAppendMessageUnknownChatIsNoOp(t *testing.T) {
	s := NewSessionStore(time.Minute)
	defer s.Close()

	ok := s.AppendMessage("chat_missing", domain.NewMessage(domain.KindCustomer, "hi", "Ana"))
	assert.False(t, ok)
}

func TestAppendMessageKeepsInsertionOrder(t *testing.T) {
	s := NewSessionStore(time.Minute)
	defer s.Close()
	s.Create(newWaitingChat("chat_1"))

	for i := 0; i < 5; i++ {
		require.True(t, s.AppendMessage("chat_1", domain.NewMessage(domain.KindCustomer, fmt.Sprintf("msg %d", i), "Ana")))
	}

	chat, ok := s.Get("chat_1")
	require.True(t, ok)
	require.Len(t, chat.Messages, 5)
	for i, msg := range chat.Messages {
		assert.Equal(t, fmt.Sprintf("msg %d", i), msg.Text)
	}
}

func TestConcurrentAppendsAllLand(t *testing.T) {
	s := NewSessionStore(time.Minute)
	defer s.Close()
	s.Create(newWaitingChat("chat_1"))

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			s.AppendMessage("chat_1", domain.NewMessage(domain.KindCustomer, "from customer", "Ana"))
		}()
		go func() {
			defer wg.Done()
			s.AppendMessage("chat_1", domain.NewMessage(domain.KindAgent, "from agent", "Budi"))
		}()
	}
	wg.Wait()

	chat, ok := s.Get("chat_1")
	require.True(t, ok)
	assert.Len(t, chat.Messages, 100)
}

func TestAssignAgentFirstClaimWins(t *testing.T) {
	s := NewSessionStore(time.Minute)
	defer s.Close()
	s.Create(newWaitingChat("chat_1"))

	first := &domain.Agent{ConnectionID: "conn_a", Name: "Budi"}
	second := &domain.Agent{ConnectionID: "conn_b", Name: "Citra"}

	assert.True(t, s.AssignAgent("chat_1", first))
	assert.False(t, s.AssignAgent("chat_1", second))

	chat, ok := s.Get("chat_1")
	require.True(t, ok)
	assert.Equal(t, domain.StatusActive, chat.Status)
	require.NotNil(t, chat.Agent)
	assert.Equal(t, "Budi", chat.Agent.Name)
}

func TestAssignAgentConcurrentExactlyOneWinner(t *testing.T) {
	s := NewSessionStore(time.Minute)
	defer s.Close()
	s.Create(newWaitingChat("chat_1"))

	const agents = 32
	var wg sync.WaitGroup
	wins := make(chan string, agents)
	for i := 0; i < agents; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			agent := &domain.Agent{ConnectionID: fmt.Sprintf("conn_%d", i), Name: fmt.Sprintf("Agent %d", i)}
			if s.AssignAgent("chat_1", agent) {
				wins <- agent.Name
			}
		}(i)
	}
	wg.Wait()
	close(wins)

	var winners []string
	for name := range wins {
		winners = append(winners, name)
	}
	require.Len(t, winners, 1)

	chat, ok := s.Get("chat_1")
	require.True(t, ok)
	require.NotNil(t, chat.Agent)
	assert.Equal(t, winners[0], chat.Agent.Name)
}

func TestAssignAgentUnknownChat(t *testing.T) {
	s := NewSessionStore(time.Minute)
	defer s.Close()

	assert.False(t, s.AssignAgent("chat_missing", &domain.Agent{Name: "Budi"}))
}

func TestEndIsIdempotent(t *testing.T) {
	s := NewSessionStore(time.Minute)
	defer s.Close()
	s.Create(newWaitingChat("chat_1"))

	assert.True(t, s.End("chat_1", domain.EndMessage()))
	assert.False(t, s.End("chat_1", domain.EndMessage()))
	assert.False(t, s.End("chat_missing", domain.EndMessage()))

	chat, ok := s.Get("chat_1")
	require.True(t, ok)
	assert.Equal(t, domain.StatusEnded, chat.Status)

	var terminal int
	for _, msg := range chat.Messages {
		if msg.Kind == domain.KindSystem {
			terminal++
		}
	}
	assert.Equal(t, 1, terminal)
}

func TestEndedChatRetainedUntilRemoval(t *testing.T) {
	s := NewSessionStore(150 * time.Millisecond)
	defer s.Close()
	s.Create(newWaitingChat("chat_1"))

	require.True(t, s.End("chat_1", domain.EndMessage()))

	// Still queryable within the grace period.
	time.Sleep(30 * time.Millisecond)
	_, ok := s.Get("chat_1")
	assert.True(t, ok)

	require.Eventually(t, func() bool {
		_, ok := s.Get("chat_1")
		return !ok
	}, 2*time.Second, 10*time.Millisecond)
}

func TestRemoveCancelsPendingRemoval(t *testing.T) {
	s := NewSessionStore(50 * time.Millisecond)
	defer s.Close()
	s.Create(newWaitingChat("chat_1"))

	require.True(t, s.End("chat_1", domain.EndMessage()))
	s.Remove("chat_1")
	s.Remove("chat_1") // no-op on an already removed chat

	time.Sleep(100 * time.Millisecond)
	_, ok := s.Get("chat_1")
	assert.False(t, ok)
}

func TestCloseStopsScheduledRemovals(t *testing.T) {
	s := NewSessionStore(50 * time.Millisecond)
	s.Create(newWaitingChat("chat_1"))

	require.True(t, s.End("chat_1", domain.EndMessage()))
	s.Close()

	time.Sleep(100 * time.Millisecond)
	_, ok := s.Get("chat_1")
	assert.True(t, ok, "timer should not fire after Close")
}

func TestMarkCustomerDisconnected(t *testing.T) {
	s := NewSessionStore(time.Minute)
	defer s.Close()
	s.Create(newWaitingChat("chat_1"))
	s.Create(newWaitingChat("chat_2"))

	require.True(t, s.AssignAgent("chat_1", &domain.Agent{Name: "Budi"}))
	assert.True(t, s.MarkCustomerDisconnected("chat_1"))

	chat, ok := s.Get("chat_1")
	require.True(t, ok)
	assert.Equal(t, domain.StatusCustomerDisconnected, chat.Status)

	// The session is still listed and still accepts appends.
	assert.True(t, s.AppendMessage("chat_1", domain.NewMessage(domain.KindAgent, "masih di sana?", "Budi")))

	// An ended chat keeps its terminal status.
	require.True(t, s.End("chat_2", domain.EndMessage()))
	assert.False(t, s.MarkCustomerDisconnected("chat_2"))
	chat, ok = s.Get("chat_2")
	require.True(t, ok)
	assert.Equal(t, domain.StatusEnded, chat.Status)

	assert.False(t, s.MarkCustomerDisconnected("chat_missing"))
}

func TestGetReturnsSnapshot(t *testing.T) {
	s := NewSessionStore(time.Minute)
	defer s.Close()
	s.Create(newWaitingChat("chat_1"))
	require.True(t, s.AppendMessage("chat_1", domain.NewMessage(domain.KindCustomer, "hi", "Ana")))

	snap, ok := s.Get("chat_1")
	require.True(t, ok)
	snap.Status = domain.StatusEnded
	snap.Messages = append(snap.Messages, domain.NewMessage(domain.KindCustomer, "tampered", "Ana"))

	fresh, ok := s.Get("chat_1")
	require.True(t, ok)
	assert.Equal(t, domain.StatusWaiting, fresh.Status)
	assert.Len(t, fresh.Messages, 1)
}

func TestListOrderedByCreation(t *testing.T) {
	s := NewSessionStore(time.Minute)
	defer s.Close()

	for i := 0; i < 3; i++ {
		chat := newWaitingChat(fmt.Sprintf("chat_%d", i))
		chat.CreatedAt = chat.CreatedAt.Add(time.Duration(i) * time.Second)
		s.Create(chat)
	}

	chats := s.List()
	require.Len(t, chats, 3)
	for i, chat := range chats {
		assert.Equal(t, fmt.Sprintf("chat_%d", i), chat.ID)
	}
}
