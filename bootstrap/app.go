package bootstrap

import (
	"fmt"

	"github.com/redis/go-redis/v9"
	"github.com/squirtles/musicroad/mongo"
	"go.uber.org/zap"
)

type Application struct {
	Env    *Env
	Mongo  mongo.Client
	Redis  *redis.Client
	Logger *zap.Logger
}

func App(envFile string) (*Application, error) {
	env, err := NewEnv(envFile)
	if err != nil {
		return nil, err
	}

	logger, err := NewLogger(env)
	if err != nil {
		return nil, err
	}

	app := &Application{Env: env, Logger: logger}

	app.Mongo, err = NewMongoDatabase(env, logger)
	if err != nil {
		return nil, err
	}

	app.Redis, err = NewRedisClient(env, logger)
	if err != nil {
		app.CloseDBConnection()
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	return app, nil
}

func (app *Application) CloseDBConnection() {
	if app.Redis != nil {
		if err := app.Redis.Close(); err != nil {
			app.Logger.Warn("failed to close Redis connection", zap.Error(err))
		}
	}
	CloseMongoDBConnection(app.Mongo, app.Logger)
	_ = app.Logger.Sync()
}
