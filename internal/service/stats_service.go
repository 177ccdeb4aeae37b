package service

import (
	"sync"

	"github.com/onlybot12/costumer-service/internal/domain"
)

// StatsService keeps the process-wide chat counters. Counters never go
// negative; decrements floor at zero.
type StatsService struct {
	mu    sync.Mutex
	stats domain.Stats
}

// NewStatsService creates a zeroed aggregator.
func NewStatsService() *StatsService {
	return &StatsService{}
}

// ChatCreated counts a new waiting session.
func (s *StatsService) ChatCreated() domain.Stats {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stats.TotalChats++
	s.stats.ActiveChats++
	s.stats.WaitingChats++
	return s.stats
}

// ChatAssigned moves one chat out of the waiting pool.
func (s *StatsService) ChatAssigned() domain.Stats {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.stats.WaitingChats > 0 {
		s.stats.WaitingChats--
	}
	return s.stats
}

// ChatEnded retires one active chat.
func (s *StatsService) ChatEnded() domain.Stats {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.stats.ActiveChats > 0 {
		s.stats.ActiveChats--
	}
	return s.stats
}

// Snapshot returns the current counters.
func (s *StatsService) Snapshot() domain.Stats {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stats
}
