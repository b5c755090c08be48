package rest

import (
	"context"
	"net/http"

	"influencerMDP/domain"

	"github.com/AMFarhan21/fres"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type InfluencerService interface {
	ListInfluencers(ctx context.Context) ([]domain.Influencer, error)
	AddInfluencer(ctx context.Context, inf domain.Influencer) (domain.Influencer, error)
}

type InfluencerHandler struct {
	influencerService InfluencerService
	validator         *validator.Validate
}

func NewInfluencerHandler(influencerService InfluencerService) *InfluencerHandler {
	return &InfluencerHandler{
		influencerService: influencerService,
		validator:         validator.New(),
	}
}

type CreateInfluencerRequest struct {
	Username       string   `json:"username" validate:"required"`
	Followers      int64    `json:"followers" validate:"gte=0"`
	Likes          float64  `json:"likes" validate:"gte=0"`
	Comments       float64  `json:"comments" validate:"gte=0"`
	Saves          float64  `json:"saves" validate:"gte=0"`
	BaseCost       float64  `json:"base_cost" validate:"required,gt=0"`
	EngagementRate *float64 `json:"engagement_rate" validate:"omitempty,gte=0"`
	Group          string   `json:"group" validate:"required"`
}

func (h *InfluencerHandler) GetAllInfluencers(c echo.Context) error {
	influencers, err := h.influencerService.ListInfluencers(c.Request().Context())
	if err != nil {
		return serviceError(c, err)
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(influencers))
}

func (h *InfluencerHandler) CreateInfluencer(c echo.Context) error {
	var req CreateInfluencerRequest

	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}
	if err := h.validator.Struct(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	inf, err := h.influencerService.AddInfluencer(c.Request().Context(), domain.Influencer{
		Username:       req.Username,
		Followers:      req.Followers,
		Likes:          req.Likes,
		Comments:       req.Comments,
		Saves:          req.Saves,
		BaseCost:       req.BaseCost,
		EngagementRate: req.EngagementRate,
		Group:          req.Group,
	})
	if err != nil {
		return serviceError(c, err)
	}

	return c.JSON(http.StatusCreated, fres.Response.StatusCreated(inf))
}
