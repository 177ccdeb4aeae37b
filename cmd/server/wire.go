//go:build wireinject
// +build wireinject

package main

import (
	"github.com/google/wire"

	"github.com/onlybot12/costumer-service/internal/config"
	"github.com/onlybot12/costumer-service/internal/hub"
	"github.com/onlybot12/costumer-service/internal/service"
	"github.com/onlybot12/costumer-service/internal/store"
)

// InitializeApp creates a new application.
func InitializeApp() (*App, func(), error) {
	wire.Build(
		config.Load,
		// Store Providers
		wire.NewSet(
			provideSessionStore,
			wire.Bind(new(service.ISessionStore), new(*store.SessionStore)),

			store.NewDirectory,
			wire.Bind(new(service.IDirectory), new(*store.Directory)),
		),
		// Service Providers
		wire.NewSet(
			service.NewStatsService,
			wire.Bind(new(service.IStatsAggregator), new(*service.StatsService)),

			service.NewChatService,
			wire.Bind(new(service.IChatService), new(*service.ChatService)),
		),
		// Hub Provider
		hub.NewHub,
		// App Provider
		wire.NewSet(
			wire.Struct(new(App), "*"),
		),
	)
	return nil, nil, nil
}
