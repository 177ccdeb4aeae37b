package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/onlybot12/costumer-service/internal/domain"
)

func TestStatsTransitions(t *testing.T) {
	s := NewStatsService()

	stats := s.ChatCreated()
	assert.Equal(t, domain.Stats{ActiveChats: 1, WaitingChats: 1, TotalChats: 1}, stats)

	stats = s.ChatAssigned()
	assert.Equal(t, domain.Stats{ActiveChats: 1, WaitingChats: 0, TotalChats: 1}, stats)

	stats = s.ChatEnded()
	assert.Equal(t, domain.Stats{ActiveChats: 0, WaitingChats: 0, TotalChats: 1}, stats)
}

func TestStatsNeverNegative(t *testing.T) {
	s := NewStatsService()

	for i := 0; i < 3; i++ {
		s.ChatAssigned()
		s.ChatEnded()
	}

	stats := s.Snapshot()
	assert.GreaterOrEqual(t, stats.ActiveChats, 0)
	assert.GreaterOrEqual(t, stats.WaitingChats, 0)
	assert.Equal(t, 0, stats.TotalChats)
}
