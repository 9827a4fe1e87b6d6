package route_pick

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/squirtles/musicroad/api/controller/controller_pick"
	"github.com/squirtles/musicroad/domain/domain_pick"
	"github.com/squirtles/musicroad/mongo"
	"github.com/squirtles/musicroad/repository/repository_pick"
	"github.com/squirtles/musicroad/usecase/usecase_pick"
	"github.com/squirtles/musicroad/util/geo"
	"go.uber.org/zap"
)

func NewPickRouter(
	timeout time.Duration,
	db mongo.Database,
	rdb redis.Cmdable,
	cacheTTL time.Duration,
	logger *zap.Logger,
	publicGroup *gin.RouterGroup,
	protectedGroup *gin.RouterGroup,
) {
	// 初始化repository
	var pickRepo domain_pick.PickRepository = repository_pick.NewPickRepository(db)
	if rdb != nil {
		pickRepo = repository_pick.NewCachedPickRepository(pickRepo, rdb, cacheTTL, logger)
	}

	// 初始化usecase
	finder := usecase_pick.NewProximityPickFinder(geo.GeoHashIndex{}, pickRepo, logger)
	pickUsecase := usecase_pick.NewPickUsecase(pickRepo, finder, timeout)

	// 初始化controller
	pickCtrl := controller_pick.NewPickController(pickUsecase)

	// 注册路由
	publicPicks := publicGroup.Group("/picks")
	{
		// GET /picks/area?lat=37.5665&lng=126.9780&radius=1000
		publicPicks.GET("/area", pickCtrl.GetPicksInArea)
		publicPicks.GET("/:id", pickCtrl.GetPick)
	}

	protectedPicks := protectedGroup.Group("/picks")
	{
		protectedPicks.POST("", pickCtrl.CreatePick)
		protectedPicks.DELETE("/:id", pickCtrl.DeletePick)
		protectedPicks.POST("/:id/favorite", pickCtrl.FavoritePick)
		protectedPicks.DELETE("/:id/favorite", pickCtrl.UnfavoritePick)
	}
}
