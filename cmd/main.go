package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/squirtles/musicroad/api/route"
	"github.com/squirtles/musicroad/bootstrap"
	"github.com/squirtles/musicroad/mongo"
	"go.uber.org/zap"
)

func main() {
	envFile := flag.String("env", ".env", "path to the .env file")
	flag.Parse()

	app, err := bootstrap.App(*envFile)
	if err != nil {
		log.Fatalf("failed to initialize app: %v", err)
	}
	defer app.CloseDBConnection()

	env := app.Env
	logger := app.Logger

	db := app.Mongo.Database(env.DBName)
	if failed := mongo.CreateIndexes(db, logger); failed > 0 {
		logger.Warn("some indexes were not created", zap.Int("failed", failed))
	}

	timeout := time.Duration(env.ContextTimeout) * time.Second

	if !env.IsDevelopment() {
		gin.SetMode(gin.ReleaseMode)
	}
	engine := gin.New()
	engine.Use(gin.Recovery())

	route.Setup(app, timeout, db, engine)

	srv := &http.Server{
		Addr:    env.ServerAddress,
		Handler: engine,
	}

	go func() {
		logger.Info("server starting", zap.String("addr", srv.Addr), zap.String("env", env.AppEnv))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("server error", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("forced shutdown", zap.Error(err))
	}
}
