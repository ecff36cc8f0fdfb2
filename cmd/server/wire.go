// File: cmd/server/wire.go
//go:build wireinject
// +build wireinject

package main

import (
	"huglu_mobile_backend/internal/app"
	"huglu_mobile_backend/internal/auth"
	"huglu_mobile_backend/internal/config"
	"huglu_mobile_backend/internal/gamification"
	"huglu_mobile_backend/internal/gateway"
	"huglu_mobile_backend/internal/jobs"
	"huglu_mobile_backend/internal/notification"
	"huglu_mobile_backend/internal/platform/database"
	"huglu_mobile_backend/internal/platform/logger"
	"huglu_mobile_backend/internal/referral"
	"huglu_mobile_backend/internal/returns"
	"huglu_mobile_backend/internal/session"
	"huglu_mobile_backend/internal/shared"
	"huglu_mobile_backend/internal/twofactor"
	"huglu_mobile_backend/internal/user"
	"huglu_mobile_backend/internal/wishlist"

	"github.com/google/wire"
)

// initializeServer is the main Wire injector.
func initializeServer(cfg *config.Config) (*app.Server, func(), error) {
	wire.Build(
		// Platform Layer
		logger.New,
		database.NewGORM,
		provideCleanup,

		// Upstream commerce gateway; every module's Gateway slice is the
		// same concrete client.
		gateway.NewClient,
		wire.Bind(new(auth.Gateway), new(*gateway.Client)),
		wire.Bind(new(notification.Gateway), new(*gateway.Client)),
		wire.Bind(new(wishlist.Gateway), new(*gateway.Client)),
		wire.Bind(new(gamification.Gateway), new(*gateway.Client)),
		wire.Bind(new(referral.Gateway), new(*gateway.Client)),
		wire.Bind(new(returns.Gateway), new(*gateway.Client)),
		wire.Bind(new(twofactor.Gateway), new(*gateway.Client)),
		wire.Bind(new(user.Gateway), new(*gateway.Client)),

		// Session store
		session.NewGORMRepository,
		session.NewService,
		wire.Bind(new(session.Store), new(*session.Service)),

		// Tokens
		shared.NewJWTTokenService,
		wire.Bind(new(shared.TokenService), new(*shared.JWTTokenService)),

		// Modules
		auth.NewService,
		auth.NewHandler,
		notification.NewService,
		notification.NewHandler,
		wishlist.NewService,
		wishlist.NewHandler,
		gamification.NewService,
		gamification.NewHandler,
		referral.NewService,
		referral.NewHandler,
		returns.NewService,
		returns.NewHandler,
		twofactor.NewService,
		twofactor.NewHandler,
		user.NewService,
		user.NewHandler,

		// Jobs
		jobs.NewSessionPurgeJob,

		// Application Layer
		app.NewServer,
	)
	return nil, nil, nil
}
