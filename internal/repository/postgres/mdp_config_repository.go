package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"influencerMDP/business/selection"
	"influencerMDP/domain"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type MDPConfigRepository struct {
	DB *gorm.DB
}

var _ selection.ConfigRepository = (*MDPConfigRepository)(nil)

func NewMDPConfigRepository(db *gorm.DB) *MDPConfigRepository {
	return &MDPConfigRepository{DB: db}
}

func (r *MDPConfigRepository) GetConfig(ctx context.Context, name string) (domain.MDPConfig, bool, error) {
	var cfg domain.MDPConfig

	err := r.DB.WithContext(ctx).
		Where("name = ?", name).
		First(&cfg).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.MDPConfig{}, false, nil
	}
	if err != nil {
		return domain.MDPConfig{}, false, fmt.Errorf("failed to query mdp_configs: %w", err)
	}

	if len(cfg.GroupsRaw) > 0 {
		if err := json.Unmarshal(cfg.GroupsRaw, &cfg.UnderrepresentedGroups); err != nil {
			return domain.MDPConfig{}, false, fmt.Errorf("failed to unmarshal underrepresented_groups: %w", err)
		}
	}
	return cfg, true, nil
}

func (r *MDPConfigRepository) UpsertConfig(ctx context.Context, cfg domain.MDPConfig) error {
	if len(cfg.UnderrepresentedGroups) > 0 {
		raw, err := json.Marshal(cfg.UnderrepresentedGroups)
		if err != nil {
			return fmt.Errorf("failed to marshal underrepresented_groups: %w", err)
		}
		cfg.GroupsRaw = raw
	}

	return r.DB.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "name"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"budget",
				"horizon",
				"weight_likes",
				"weight_comments",
				"weight_saves",
				"diversity_bonus",
				"affirmative_discount",
				"engagement_cost_weight",
				"follower_cost_weight",
				"min_effective_cost",
				"budget_granularity",
				"max_states",
				"underrepresented_groups",
				"updated_at",
			}),
		}).
		Create(&cfg).Error
}
