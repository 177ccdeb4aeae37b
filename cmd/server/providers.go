package main

import (
	"github.com/onlybot12/costumer-service/internal/config"
	"github.com/onlybot12/costumer-service/internal/store"
)

func provideSessionStore(cfg *config.Config) (*store.SessionStore, func()) {
	s := store.NewSessionStore(cfg.ChatRetention)
	cleanup := func() { s.Close() }
	return s, cleanup
}
