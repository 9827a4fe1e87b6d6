package controller_health

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/squirtles/musicroad/api/controller"
)

// Pinger 任何可以做连通性检查的依赖
type Pinger interface {
	Ping(ctx context.Context) error
}

type HealthController struct {
	Mongo   Pinger
	Timeout time.Duration
}

func NewHealthController(mongo Pinger, timeout time.Duration) *HealthController {
	return &HealthController{Mongo: mongo, Timeout: timeout}
}

func (c *HealthController) Health(ctx *gin.Context) {
	pingCtx, cancel := context.WithTimeout(ctx.Request.Context(), c.Timeout)
	defer cancel()

	if err := c.Mongo.Ping(pingCtx); err != nil {
		controller.ErrorResponse(ctx, http.StatusServiceUnavailable, "DB_UNAVAILABLE", err.Error())
		return
	}

	controller.SuccessResponse(ctx, "status", "ok", 1)
}
