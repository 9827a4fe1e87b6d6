package controller_pick

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/squirtles/musicroad/api/controller"
	"github.com/squirtles/musicroad/api/middleware"
	"github.com/squirtles/musicroad/domain"
	"github.com/squirtles/musicroad/domain/domain_pick"
	"github.com/squirtles/musicroad/util/geo"
)

type PickController struct {
	PickUsecase domain_pick.PickUsecase
}

func NewPickController(uc domain_pick.PickUsecase) *PickController {
	return &PickController{
		PickUsecase: uc,
	}
}

type addPickRequest struct {
	Song struct {
		Title       string   `json:"title" binding:"required"`
		AlbumTitle  string   `json:"album_title"`
		Artists     []string `json:"artists"`
		ImageURL    string   `json:"image_url"`
		PreviewURL  string   `json:"preview_url"`
		ExternalURL string   `json:"external_url"`
	} `json:"song"`
	Comment  string `json:"comment"`
	Location struct {
		Lat *float64 `json:"lat" binding:"required"`
		Lng *float64 `json:"lng" binding:"required"`
	} `json:"location"`
}

// GetPicksInArea GET /picks/area?lat=37.5665&lng=126.9780&radius=1000
func (c *PickController) GetPicksInArea(ctx *gin.Context) {
	var params struct {
		Lat    string `form:"lat" binding:"required"`
		Lng    string `form:"lng" binding:"required"`
		Radius string `form:"radius" binding:"required"`
	}
	if err := ctx.ShouldBindQuery(&params); err != nil {
		controller.ErrorResponse(ctx, http.StatusBadRequest, "INVALID_ARGUMENT", "lat、lng、radius参数不能为空")
		return
	}

	lat, err := strconv.ParseFloat(params.Lat, 64)
	if err != nil {
		controller.ErrorResponse(ctx, http.StatusBadRequest, "INVALID_ARGUMENT", "lat参数必须是数字")
		return
	}
	lng, err := strconv.ParseFloat(params.Lng, 64)
	if err != nil {
		controller.ErrorResponse(ctx, http.StatusBadRequest, "INVALID_ARGUMENT", "lng参数必须是数字")
		return
	}
	radius, err := strconv.ParseFloat(params.Radius, 64)
	if err != nil {
		controller.ErrorResponse(ctx, http.StatusBadRequest, "INVALID_ARGUMENT", "radius参数必须是数字")
		return
	}

	picks, err := c.PickUsecase.FetchPicksInArea(ctx.Request.Context(), lat, lng, radius)
	if err != nil {
		pickErrorResponse(ctx, err)
		return
	}

	controller.SuccessResponse(ctx, "picks", picks, len(picks))
}

func (c *PickController) GetPick(ctx *gin.Context) {
	pick, err := c.PickUsecase.FetchPick(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		pickErrorResponse(ctx, err)
		return
	}

	controller.SuccessResponse(ctx, "pick", pick, 1)
}

// CreatePick 作者取自登录用户，请求体中的 created_by 会被忽略
func (c *PickController) CreatePick(ctx *gin.Context) {
	var req addPickRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		controller.ErrorResponse(ctx, http.StatusBadRequest, "INVALID_ARGUMENT", err.Error())
		return
	}

	pick := &domain_pick.Pick{
		Song: domain_pick.Song{
			Title:       req.Song.Title,
			AlbumTitle:  req.Song.AlbumTitle,
			Artists:     req.Song.Artists,
			ImageURL:    req.Song.ImageURL,
			PreviewURL:  req.Song.PreviewURL,
			ExternalURL: req.Song.ExternalURL,
		},
		Comment:   req.Comment,
		CreatedBy: middleware.CurrentUserName(ctx),
		Location:  geo.NewLocation(*req.Location.Lat, *req.Location.Lng),
	}

	created, err := c.PickUsecase.AddPick(ctx.Request.Context(), pick)
	if err != nil {
		pickErrorResponse(ctx, err)
		return
	}

	controller.CreatedResponse(ctx, "pick", created)
}

func (c *PickController) DeletePick(ctx *gin.Context) {
	if err := c.PickUsecase.DeletePick(ctx.Request.Context(), ctx.Param("id")); err != nil {
		pickErrorResponse(ctx, err)
		return
	}

	controller.SuccessResponse(ctx, "id", ctx.Param("id"), 1)
}

func (c *PickController) FavoritePick(ctx *gin.Context) {
	pick, err := c.PickUsecase.FavoritePick(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		pickErrorResponse(ctx, err)
		return
	}

	controller.SuccessResponse(ctx, "pick", pick, 1)
}

func (c *PickController) UnfavoritePick(ctx *gin.Context) {
	pick, err := c.PickUsecase.UnfavoritePick(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		pickErrorResponse(ctx, err)
		return
	}

	controller.SuccessResponse(ctx, "pick", pick, 1)
}

func pickErrorResponse(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, domain_pick.ErrInvalidArgument):
		controller.ErrorResponse(ctx, http.StatusBadRequest, "INVALID_ARGUMENT", err.Error())
	case errors.Is(err, domain.ErrNotFound):
		controller.ErrorResponse(ctx, http.StatusNotFound, "PICK_NOT_FOUND", err.Error())
	case errors.Is(err, domain_pick.ErrRemoteQuery):
		controller.ErrorResponse(ctx, http.StatusBadGateway, "REMOTE_QUERY_FAILURE", err.Error())
	default:
		controller.ErrorResponse(ctx, http.StatusInternalServerError, "SERVER_ERROR", err.Error())
	}
}
