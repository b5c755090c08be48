//go:build !integration

package rest

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"influencerMDP/business/mdp"
	"influencerMDP/business/selection"
	"influencerMDP/domain"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeService struct {
	lastPlan  selection.PlanRequest
	lastLimit int
	planErr   error
	stored    []domain.Influencer
	configs   map[string]domain.MDPConfig
}

func (f *fakeService) Plan(ctx context.Context, req selection.PlanRequest) (*selection.PlanResult, error) {
	f.lastPlan = req
	if f.planErr != nil {
		return nil, f.planErr
	}
	res := &selection.PlanResult{RunID: "run-42"}
	if req.Horizon != nil {
		res.Horizon = *req.Horizon
	}
	return res, nil
}

func (f *fakeService) Compare(ctx context.Context, req selection.PlanRequest) (*domain.Comparison, error) {
	f.lastPlan = req
	return &domain.Comparison{Results: []domain.SelectionSummary{{Strategy: domain.StrategyMDP}}}, nil
}

func (f *fakeService) GetRun(ctx context.Context, id string) (domain.SelectionRun, error) {
	if id != "run-42" {
		return domain.SelectionRun{}, selection.ErrRunNotFound
	}
	return domain.SelectionRun{ID: id}, nil
}

func (f *fakeService) ListRuns(ctx context.Context, limit int) ([]domain.SelectionRun, error) {
	f.lastLimit = limit
	return []domain.SelectionRun{{ID: "run-42"}}, nil
}

func (f *fakeService) ListInfluencers(ctx context.Context) ([]domain.Influencer, error) {
	return f.stored, nil
}

func (f *fakeService) AddInfluencer(ctx context.Context, inf domain.Influencer) (domain.Influencer, error) {
	inf.ID = 10
	f.stored = append(f.stored, inf)
	return inf, nil
}

func (f *fakeService) GetConfig(ctx context.Context, name string) (domain.MDPConfig, error) {
	if name == "" {
		name = "default"
	}
	return f.configs[name], nil
}

func (f *fakeService) UpsertConfig(ctx context.Context, rec domain.MDPConfig) (domain.MDPConfig, error) {
	if rec.AffirmativeDiscount != nil && *rec.AffirmativeDiscount > 1 {
		return domain.MDPConfig{}, &mdp.ConfigurationError{Field: "affirmative_discount", Reason: "must be in (0, 1]"}
	}
	f.configs[rec.Name] = rec
	return rec, nil
}

func newTestServer(svc *fakeService) *echo.Echo {
	e := echo.New()
	sel := NewSelectionHandler(svc)
	inf := NewInfluencerHandler(svc)
	admin := NewMDPAdminHandler(svc)

	e.POST("/selections", sel.Plan)
	e.POST("/selections/compare", sel.Compare)
	e.GET("/selections", sel.ListRuns)
	e.GET("/selections/:id", sel.GetRun)
	e.GET("/influencers", inf.GetAllInfluencers)
	e.POST("/influencers", inf.CreateInfluencer)
	e.GET("/admin/mdp/config", admin.GetConfig)
	e.PUT("/admin/mdp/config", admin.UpsertConfig)
	return e
}

func call(e *echo.Echo, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func errorMessage(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var body ResponseError
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body.Message
}

func TestPlanHandler(t *testing.T) {
	svc := &fakeService{}
	e := newTestServer(svc)

	rec := call(e, http.MethodPost, "/selections", `{"budget":150,"horizon":3,"config_name":"spring"}`)
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), "run-42")
	require.NotNil(t, svc.lastPlan.Budget)
	assert.Equal(t, 150.0, *svc.lastPlan.Budget)
	require.NotNil(t, svc.lastPlan.Horizon)
	assert.Equal(t, 3, *svc.lastPlan.Horizon)
	assert.Equal(t, "spring", svc.lastPlan.ConfigName)

	rec = call(e, http.MethodPost, "/selections", `{}`)
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Nil(t, svc.lastPlan.Budget)
	assert.Nil(t, svc.lastPlan.Horizon)

	// zero is passed through, not treated as unset
	rec = call(e, http.MethodPost, "/selections", `{"horizon":0}`)
	assert.Equal(t, http.StatusCreated, rec.Code)
	require.NotNil(t, svc.lastPlan.Horizon)
	assert.Equal(t, 0, *svc.lastPlan.Horizon)
}

func TestPlanHandler_Errors(t *testing.T) {
	svc := &fakeService{}
	e := newTestServer(svc)

	rec := call(e, http.MethodPost, "/selections", `{"budget":-5,"horizon":3}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = call(e, http.MethodPost, "/selections", `{"budget":`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	svc.planErr = &mdp.ConfigurationError{Field: "max_states", Reason: "too many"}
	rec = call(e, http.MethodPost, "/selections", `{"budget":10}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, errorMessage(t, rec), "max_states")

	svc.planErr = errors.New("db down")
	rec = call(e, http.MethodPost, "/selections", `{"budget":10}`)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "db down", errorMessage(t, rec))
}

func TestCompareHandler(t *testing.T) {
	svc := &fakeService{}
	e := newTestServer(svc)

	rec := call(e, http.MethodPost, "/selections/compare", `{"budget":500,"horizon":2}`)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), domain.StrategyMDP)
	require.NotNil(t, svc.lastPlan.Horizon)
	assert.Equal(t, 2, *svc.lastPlan.Horizon)
}

func TestRunHandlers(t *testing.T) {
	svc := &fakeService{}
	e := newTestServer(svc)

	rec := call(e, http.MethodGet, "/selections/run-42", "")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = call(e, http.MethodGet, "/selections/nope", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, selection.ErrRunNotFound.Error(), errorMessage(t, rec))

	rec = call(e, http.MethodGet, "/selections?limit=7", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 7, svc.lastLimit)

	rec = call(e, http.MethodGet, "/selections?limit=seven", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestInfluencerHandlers(t *testing.T) {
	svc := &fakeService{}
	e := newTestServer(svc)

	rec := call(e, http.MethodPost, "/influencers", `{"username":"bo","followers":100,"likes":5,"base_cost":40,"group":"Black"}`)
	assert.Equal(t, http.StatusCreated, rec.Code)
	require.Len(t, svc.stored, 1)
	assert.Equal(t, "Black", svc.stored[0].Group)

	rec = call(e, http.MethodPost, "/influencers", `{"username":"x","base_cost":40}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = call(e, http.MethodPost, "/influencers", `{"username":"x","likes":-1,"base_cost":40,"group":"X"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = call(e, http.MethodGet, "/influencers", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"bo"`)
}

func TestMDPAdminHandlers(t *testing.T) {
	svc := &fakeService{configs: map[string]domain.MDPConfig{"default": {Name: "default"}}}
	e := newTestServer(svc)

	rec := call(e, http.MethodGet, "/admin/mdp/config", "")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = call(e, http.MethodPut, "/admin/mdp/config", `{"name":"spring","horizon":3}`)
	assert.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, svc.configs["spring"].Horizon)
	assert.Equal(t, 3, *svc.configs["spring"].Horizon)

	rec = call(e, http.MethodPut, "/admin/mdp/config", `{"name":"bad","affirmative_discount":3}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, errorMessage(t, rec), "affirmative_discount")
}
