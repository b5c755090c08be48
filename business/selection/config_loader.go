package selection

import (
	"context"
	"fmt"

	"influencerMDP/business/mdp"
	"influencerMDP/domain"
	"influencerMDP/pkg/logger"
)

// loadConfig overlays the stored parameter set called name on the service
// defaults. A missing row is not an error.
func (s *SelectionService) loadConfig(ctx context.Context, name string) (mdp.Config, error) {
	if s.cfgRepo == nil {
		return s.defaultCfg, nil
	}

	rec, ok, err := s.cfgRepo.GetConfig(ctx, name)
	if err != nil {
		return mdp.Config{}, fmt.Errorf("failed to load mdp config %q: %w", name, err)
	}
	if !ok {
		if name != DefaultConfigName {
			logger.Debug("mdp config not found, using defaults", "config", name, "trace_id", TraceIDFromContext(ctx))
		}
		return s.defaultCfg, nil
	}

	cfg := s.defaultCfg.WithRecord(rec)
	if err := cfg.Validate(); err != nil {
		return mdp.Config{}, err
	}
	return cfg, nil
}

// GetConfig returns the effective parameters for name, defaults included.
func (s *SelectionService) GetConfig(ctx context.Context, name string) (domain.MDPConfig, error) {
	if err := ctx.Err(); err != nil {
		return domain.MDPConfig{}, fmt.Errorf("context error: %w", err)
	}
	if name == "" {
		name = DefaultConfigName
	}

	cfg, err := s.loadConfig(ctx, name)
	if err != nil {
		return domain.MDPConfig{}, err
	}
	return cfg.Record(name), nil
}

// UpsertConfig validates rec against the defaults and stores it.
func (s *SelectionService) UpsertConfig(ctx context.Context, rec domain.MDPConfig) (domain.MDPConfig, error) {
	if err := ctx.Err(); err != nil {
		return domain.MDPConfig{}, fmt.Errorf("context error: %w", err)
	}
	if s.cfgRepo == nil {
		return domain.MDPConfig{}, fmt.Errorf("mdp config storage is not configured")
	}
	if rec.Name == "" {
		rec.Name = DefaultConfigName
	}

	cfg := s.defaultCfg.WithRecord(rec)
	if err := cfg.Validate(); err != nil {
		return domain.MDPConfig{}, err
	}

	if err := s.cfgRepo.UpsertConfig(ctx, rec); err != nil {
		return domain.MDPConfig{}, fmt.Errorf("failed to save mdp config: %w", err)
	}

	logger.Info("mdp config updated", "config", rec.Name, "trace_id", TraceIDFromContext(ctx))
	return cfg.Record(rec.Name), nil
}
