package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	intconfig "rentaldesk/internal/config"
	intdb "rentaldesk/internal/db"
	"rentaldesk/internal/events"
	router "rentaldesk/internal/http"
	"rentaldesk/internal/utils"
)

func main() {
	env := intconfig.LoadEnv()
	if env.GinMode != "" {
		gin.SetMode(env.GinMode)
	}

	logger, err := utils.NewLogger(env.LogLevel)
	if err != nil {
		utils.Fatal("invalid LOG_LEVEL", err)
	}
	utils.SetLogger(logger)
	defer func() { _ = logger.Sync() }()

	db, err := intconfig.ConnectDB(env)
	if err != nil {
		utils.Fatal("failed to connect to MySQL", err)
	}
	defer intconfig.CloseDB()

	if env.AutoMigrate {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		err := intdb.EnsureSchema(ctx, db)
		cancel()
		if err != nil {
			utils.Fatal("failed to provision schema", err)
		}
	}

	bus := events.NewBus(logger)
	auditCtx, stopAudit := context.WithCancel(context.Background())
	audit := &events.AuditLogger{Bus: bus, Logger: logger}
	if err := audit.Start(auditCtx); err != nil {
		utils.Fatal("failed to start audit logger", err)
	}

	r := router.NewRouter(env, router.Deps{DB: db, Events: bus})

	srv := &http.Server{
		Addr:              env.AppAddr,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       20 * time.Second,
		WriteTimeout:      20 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		logger.Info("server listening", zap.String("addr", env.AppAddr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			utils.Fatal("server failed", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("server shutdown failed", zap.Error(err))
	}

	stopAudit()
	if err := bus.Close(); err != nil {
		logger.Warn("event bus close failed", zap.Error(err))
	}
	audit.Wait()

	logger.Info("server stopped cleanly")
}
