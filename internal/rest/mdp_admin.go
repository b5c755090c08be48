package rest

import (
	"context"
	"net/http"

	"influencerMDP/domain"

	"github.com/AMFarhan21/fres"
	"github.com/labstack/echo/v4"
)

type MDPConfigService interface {
	GetConfig(ctx context.Context, name string) (domain.MDPConfig, error)
	UpsertConfig(ctx context.Context, rec domain.MDPConfig) (domain.MDPConfig, error)
}

type MDPAdminHandler struct {
	cfgService MDPConfigService
}

func NewMDPAdminHandler(cfgService MDPConfigService) *MDPAdminHandler {
	return &MDPAdminHandler{
		cfgService: cfgService,
	}
}

// GET /api/v1/admin/mdp/config?name=default
// Returns the effective parameters, defaults filled in.
func (h *MDPAdminHandler) GetConfig(c echo.Context) error {
	cfg, err := h.cfgService.GetConfig(c.Request().Context(), c.QueryParam("name"))
	if err != nil {
		return serviceError(c, err)
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(cfg))
}

// PUT /api/v1/admin/mdp/config
// body: MDPConfig JSON; zero fields keep the defaults
func (h *MDPAdminHandler) UpsertConfig(c echo.Context) error {
	var body domain.MDPConfig
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: "invalid body: " + err.Error()})
	}

	cfg, err := h.cfgService.UpsertConfig(c.Request().Context(), body)
	if err != nil {
		return serviceError(c, err)
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(cfg))
}
