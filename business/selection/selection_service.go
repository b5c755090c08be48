package selection

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"influencerMDP/business/mdp"
	"influencerMDP/domain"
	"influencerMDP/pkg/logger"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

const (
	DefaultConfigName = "default"

	defaultListLimit = 20
	maxListLimit     = 100
)

var ErrRunNotFound = errors.New("selection run not found")

// ---- Repository interfaces ----

type InfluencerRepository interface {
	FindAll(ctx context.Context) ([]domain.Influencer, error)
	Create(ctx context.Context, inf *domain.Influencer) error
}

type RunRepository interface {
	SaveRun(ctx context.Context, run domain.SelectionRun) error
	GetRun(ctx context.Context, id string) (domain.SelectionRun, error)
	ListRuns(ctx context.Context, limit int) ([]domain.SelectionRun, error)
}

type ConfigRepository interface {
	GetConfig(ctx context.Context, name string) (domain.MDPConfig, bool, error)
	UpsertConfig(ctx context.Context, cfg domain.MDPConfig) error
}

type SolutionCache interface {
	Get(ctx context.Context, fingerprint string) (Outcome, bool, error)
	Set(ctx context.Context, fingerprint string, outcome Outcome, ttl time.Duration) error
}

// ---- Request / result ----

type PlanRequest struct {
	// nil falls back to the configured value. A zero budget is valid; a
	// zero horizon is rejected by the solver.
	Budget     *float64 `json:"budget" validate:"omitempty,gte=0"`
	Horizon    *int     `json:"horizon" validate:"omitempty,gte=0"`
	ConfigName string   `json:"config_name"`
}

// Outcome is an executed optimal plan. It is what the solution cache stores.
type Outcome struct {
	InitialValue float64                 `json:"initial_value"`
	States       int                     `json:"states"`
	Steps        []domain.SelectionStep  `json:"steps"`
	Summary      domain.SelectionSummary `json:"summary"`
}

type PlanResult struct {
	RunID           string  `json:"run_id"`
	ConfigName      string  `json:"config_name"`
	Budget          float64 `json:"budget"`
	Horizon         int     `json:"horizon"`
	Fingerprint     string  `json:"fingerprint"`
	Cached          bool    `json:"cached"`
	SolveDurationMs int64   `json:"solve_duration_ms"`
	Outcome
}

// ---- Service ----

type SelectionService struct {
	influencerRepo InfluencerRepository
	runRepo        RunRepository
	cfgRepo        ConfigRepository
	cache          SolutionCache
	defaultCfg     mdp.Config
	cacheTTL       time.Duration
}

func NewSelectionService(
	influencerRepo InfluencerRepository,
	runRepo RunRepository,
	cfgRepo ConfigRepository,
	cache SolutionCache,
	defaultCfg mdp.Config,
	cacheTTL time.Duration,
) *SelectionService {
	return &SelectionService{
		influencerRepo: influencerRepo,
		runRepo:        runRepo,
		cfgRepo:        cfgRepo,
		cache:          cache,
		defaultCfg:     defaultCfg,
		cacheTTL:       cacheTTL,
	}
}

// planInputs is everything a solve depends on, resolved from the request.
type planInputs struct {
	configName  string
	cfg         mdp.Config
	catalog     mdp.Catalog
	budget      float64
	horizon     int
	fingerprint string
}

func (s *SelectionService) resolve(ctx context.Context, req PlanRequest) (planInputs, error) {
	if err := ctx.Err(); err != nil {
		return planInputs{}, fmt.Errorf("context error: %w", err)
	}

	name := req.ConfigName
	if name == "" {
		name = DefaultConfigName
	}

	cfg, err := s.loadConfig(ctx, name)
	if err != nil {
		return planInputs{}, err
	}

	budget := cfg.Budget
	if req.Budget != nil {
		budget = *req.Budget
	}
	horizon := cfg.Horizon
	if req.Horizon != nil {
		horizon = *req.Horizon
	}

	influencers, err := s.influencerRepo.FindAll(ctx)
	if err != nil {
		return planInputs{}, fmt.Errorf("failed to load influencers: %w", err)
	}
	catalog, err := mdp.NewCatalog(influencers)
	if err != nil {
		return planInputs{}, fmt.Errorf("invalid catalog: %w", err)
	}

	fp, err := Fingerprint(catalog.All(), cfg, budget, horizon)
	if err != nil {
		return planInputs{}, err
	}

	return planInputs{
		configName:  name,
		cfg:         cfg,
		catalog:     catalog,
		budget:      budget,
		horizon:     horizon,
		fingerprint: fp,
	}, nil
}

// outcome returns the cached plan for in, or solves and caches it.
func (s *SelectionService) outcome(ctx context.Context, in planInputs) (Outcome, bool, time.Duration, error) {
	traceID := TraceIDFromContext(ctx)

	if s.cache != nil {
		cached, ok, err := s.cache.Get(ctx, in.fingerprint)
		if err != nil {
			logger.Warn("solution cache read failed", "trace_id", traceID, "error", err)
		} else if ok {
			return cached, true, 0, nil
		}
	}

	out, elapsed, err := Solve(in.catalog, in.cfg, in.budget, in.horizon)
	if err != nil {
		return Outcome{}, false, 0, err
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, in.fingerprint, out, s.cacheTTL); err != nil {
			logger.Warn("solution cache write failed", "trace_id", traceID, "error", err)
		}
	}

	return out, false, elapsed, nil
}

// Plan solves the selection MDP over the stored catalog, executes the
// optimal policy and records the run.
func (s *SelectionService) Plan(ctx context.Context, req PlanRequest) (*PlanResult, error) {
	traceID := TraceIDFromContext(ctx)

	in, err := s.resolve(ctx, req)
	if err != nil {
		PlansTotal.WithLabelValues(outcomeLabel(err)).Inc()
		return nil, err
	}

	out, cached, elapsed, err := s.outcome(ctx, in)
	if err != nil {
		PlansTotal.WithLabelValues(outcomeLabel(err)).Inc()
		logger.Error("plan failed",
			"trace_id", traceID,
			"config", in.configName,
			"budget", in.budget,
			"horizon", in.horizon,
			"error", err,
		)
		return nil, err
	}

	steps, err := json.Marshal(out.Steps)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal steps: %w", err)
	}
	summary, err := json.Marshal(out.Summary)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal summary: %w", err)
	}

	run := domain.SelectionRun{
		ID:            uuid.NewString(),
		ConfigName:    in.configName,
		Budget:        in.budget,
		Horizon:       in.horizon,
		CatalogSize:   in.catalog.Len(),
		States:        out.States,
		InitialValue:  out.InitialValue,
		Steps:         datatypes.JSON(steps),
		Summary:       datatypes.JSON(summary),
		Fingerprint:   in.fingerprint,
		SolveDuration: elapsed.Milliseconds(),
	}
	if err := s.runRepo.SaveRun(ctx, run); err != nil {
		PlansTotal.WithLabelValues("error").Inc()
		return nil, fmt.Errorf("failed to save selection run: %w", err)
	}

	label := "solved"
	if cached {
		label = "cached"
	}
	PlansTotal.WithLabelValues(label).Inc()

	logger.Info("plan ready",
		"trace_id", traceID,
		"run_id", run.ID,
		"config", in.configName,
		"budget", in.budget,
		"horizon", in.horizon,
		"states", out.States,
		"value", out.InitialValue,
		"selected", out.Summary.NumSelected,
		"cached", cached,
		"solve_ms", run.SolveDuration,
	)

	return &PlanResult{
		RunID:           run.ID,
		ConfigName:      in.configName,
		Budget:          in.budget,
		Horizon:         in.horizon,
		Fingerprint:     in.fingerprint,
		Cached:          cached,
		SolveDurationMs: run.SolveDuration,
		Outcome:         out,
	}, nil
}

// Compare runs the MDP plan next to the greedy and random baselines on the
// same catalog and budget. Baselines are capped at the horizon so every
// strategy gets the same number of picks. Nothing is persisted.
func (s *SelectionService) Compare(ctx context.Context, req PlanRequest) (*domain.Comparison, error) {
	in, err := s.resolve(ctx, req)
	if err != nil {
		return nil, err
	}

	out, _, _, err := s.outcome(ctx, in)
	if err != nil {
		return nil, err
	}

	baselines, err := Baselines(in.catalog, in.cfg, in.budget, in.horizon)
	if err != nil {
		return nil, err
	}

	logger.Debug("comparison ready",
		"trace_id", TraceIDFromContext(ctx),
		"mdp_reward", out.Summary.TotalReward,
		"greedy_reward", baselines[0].TotalReward,
		"random_reward", baselines[1].TotalReward,
	)

	return &domain.Comparison{
		Budget:  in.budget,
		Horizon: in.horizon,
		Results: append([]domain.SelectionSummary{out.Summary}, baselines...),
	}, nil
}

func (s *SelectionService) GetRun(ctx context.Context, id string) (domain.SelectionRun, error) {
	if err := ctx.Err(); err != nil {
		return domain.SelectionRun{}, fmt.Errorf("context error: %w", err)
	}
	return s.runRepo.GetRun(ctx, id)
}

func (s *SelectionService) ListRuns(ctx context.Context, limit int) ([]domain.SelectionRun, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}
	if limit <= 0 {
		limit = defaultListLimit
	}
	if limit > maxListLimit {
		limit = maxListLimit
	}
	return s.runRepo.ListRuns(ctx, limit)
}

func outcomeLabel(err error) string {
	var cfgErr *mdp.ConfigurationError
	if errors.As(err, &cfgErr) {
		return "rejected"
	}
	return "error"
}
