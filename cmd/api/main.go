package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"logisocial/internal/adapter/api/handler"
	"logisocial/internal/adapter/api/router"
	"logisocial/internal/adapter/repository"
	"logisocial/internal/infrastructure/mongodb"
	"logisocial/internal/infrastructure/websocket"
	"logisocial/internal/usecase"
	"logisocial/pkg/config"
	"logisocial/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.ErrorWithCause(err, "Failed to load configuration")
		os.Exit(1)
	}

	logger.Init(cfg.Environment, cfg.Log.Level)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	mongoClient, err := mongodb.Connect(ctx, cfg.Mongo)
	if err != nil {
		logger.ErrorWithCause(err, "Failed to connect to database")
		os.Exit(1)
	}

	db := mongoClient.Database()
	timeout := cfg.Mongo.OperationTimeout

	userRepo := repository.NewMongoUserRepository(db, timeout)
	providerRepo := repository.NewMongoLogisticProviderRepository(db, timeout)
	reviewRepo := repository.NewMongoReviewRepository(db, timeout)
	postRepo := repository.NewMongoPostRepository(db, timeout)
	messageRepo := repository.NewMongoMessageRepository(db, timeout)

	wsCtx, stopWS := context.WithCancel(context.Background())
	wsManager := websocket.NewManager()
	wsManager.Start(wsCtx)

	userUseCase := usecase.NewUserUseCase(userRepo)
	providerUseCase := usecase.NewLogisticProviderUseCase(providerRepo)
	reviewUseCase := usecase.NewReviewUseCase(reviewRepo)
	postUseCase := usecase.NewPostUseCase(postRepo)
	messageUseCase := usecase.NewMessageUseCase(messageRepo, wsManager)

	origins := cfg.Server.AllowedOrigins()

	e := router.New(router.Dependencies{
		Handlers: &handler.Handlers{
			User:             handler.NewUserHandler(userUseCase),
			LogisticProvider: handler.NewLogisticProviderHandler(providerUseCase),
			Review:           handler.NewReviewHandler(reviewUseCase),
			Post:             handler.NewPostHandler(postUseCase),
			Message:          handler.NewMessageHandler(messageUseCase),
			Health:           handler.NewHealthHandler(),
			WebSocket:        handler.NewWebSocketHandler(wsManager, origins),
		},
		Store:       mongoClient,
		RateLimit:   cfg.RateLimit,
		CORSOrigins: origins,
	})

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      e,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.Info("Server running on port %s", cfg.Server.Port)
		logger.Info("Health check: http://localhost:%s/health", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	exitCode := 0
	select {
	case <-ctx.Done():
		logger.Info("Shutdown signal received")
	case err := <-serverErr:
		if err != nil {
			logger.ErrorWithCause(err, "Server stopped unexpectedly")
			exitCode = 1
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.ErrorWithCause(err, "HTTP server shutdown failed")
		exitCode = 1
	}

	stopWS()
	select {
	case <-wsManager.Done():
	case <-time.After(time.Second):
		logger.Warn("Websocket manager did not stop in time")
	}

	if err := mongoClient.Close(shutdownCtx); err != nil {
		logger.ErrorWithCause(err, "Failed to close database connection")
		exitCode = 1
	}

	logger.Info("Server stopped")
	if exitCode != 0 {
		os.Exit(exitCode)
	}
}
