package rest

import (
	"context"
	"net/http"
	"strconv"

	"influencerMDP/business/selection"
	"influencerMDP/domain"

	"github.com/AMFarhan21/fres"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type (
	SelectionHandler struct {
		validate         *validator.Validate
		selectionService SelectionService
	}

	SelectionService interface {
		Plan(ctx context.Context, req selection.PlanRequest) (*selection.PlanResult, error)
		Compare(ctx context.Context, req selection.PlanRequest) (*domain.Comparison, error)
		GetRun(ctx context.Context, id string) (domain.SelectionRun, error)
		ListRuns(ctx context.Context, limit int) ([]domain.SelectionRun, error)
	}
)

func NewSelectionHandler(svc SelectionService) *SelectionHandler {
	return &SelectionHandler{
		validate:         validator.New(),
		selectionService: svc,
	}
}

func (h *SelectionHandler) bindPlan(c echo.Context) (selection.PlanRequest, error) {
	var req selection.PlanRequest
	if err := c.Bind(&req); err != nil {
		return req, err
	}
	return req, h.validate.Struct(&req)
}

// POST /api/v1/selections
// body: { "budget": 1000, "horizon": 5, "config_name": "default" }
func (h *SelectionHandler) Plan(c echo.Context) error {
	req, err := h.bindPlan(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	res, err := h.selectionService.Plan(c.Request().Context(), req)
	if err != nil {
		return serviceError(c, err)
	}

	return c.JSON(http.StatusCreated, fres.Response.StatusCreated(res))
}

// POST /api/v1/selections/compare
func (h *SelectionHandler) Compare(c echo.Context) error {
	req, err := h.bindPlan(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	cmp, err := h.selectionService.Compare(c.Request().Context(), req)
	if err != nil {
		return serviceError(c, err)
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(cmp))
}

// GET /api/v1/selections/:id
func (h *SelectionHandler) GetRun(c echo.Context) error {
	run, err := h.selectionService.GetRun(c.Request().Context(), c.Param("id"))
	if err != nil {
		return serviceError(c, err)
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(run))
}

// GET /api/v1/selections?limit=20
func (h *SelectionHandler) ListRuns(c echo.Context) error {
	limit := 0
	if raw := c.QueryParam("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			return c.JSON(http.StatusBadRequest, ResponseError{Message: "invalid limit"})
		}
		limit = n
	}

	runs, err := h.selectionService.ListRuns(c.Request().Context(), limit)
	if err != nil {
		return serviceError(c, err)
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(runs))
}
