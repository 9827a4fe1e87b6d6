package route

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/squirtles/musicroad/api/controller/controller_health"
	"github.com/squirtles/musicroad/api/middleware"
	"github.com/squirtles/musicroad/api/route/route_pick"
	"github.com/squirtles/musicroad/bootstrap"
	"github.com/squirtles/musicroad/mongo"
)

func Setup(app *bootstrap.Application, timeout time.Duration, db mongo.Database, gin *gin.Engine) {
	gin.Use(middleware.Logger(app.Logger))

	publicRouter := gin.Group("/api/v1")
	protectedRouter := gin.Group("/api/v1")
	protectedRouter.Use(middleware.JwtAuthMiddleware(app.Env.AccessTokenSecret))

	healthCtrl := controller_health.NewHealthController(app.Mongo, timeout)
	publicRouter.GET("/health", healthCtrl.Health)

	cacheTTL := time.Duration(app.Env.PickCacheTTL) * time.Second
	// nil 的 *redis.Client 不能直接当作 Cmdable 传入
	if app.Redis != nil {
		route_pick.NewPickRouter(timeout, db, app.Redis, cacheTTL, app.Logger, publicRouter, protectedRouter)
		return
	}
	route_pick.NewPickRouter(timeout, db, nil, cacheTTL, app.Logger, publicRouter, protectedRouter)
}
