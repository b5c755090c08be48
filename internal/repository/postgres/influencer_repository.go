package postgres

import (
	"context"
	"fmt"

	"influencerMDP/business/selection"
	"influencerMDP/domain"

	"gorm.io/gorm"
)

type InfluencerRepository struct {
	DB *gorm.DB
}

var _ selection.InfluencerRepository = (*InfluencerRepository)(nil)

func NewInfluencerRepository(db *gorm.DB) *InfluencerRepository {
	return &InfluencerRepository{
		DB: db,
	}
}

func (r *InfluencerRepository) Create(ctx context.Context, inf *domain.Influencer) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	if err := r.DB.WithContext(ctx).Create(inf).Error; err != nil {
		return fmt.Errorf("failed to create influencer: %w", err)
	}

	return nil
}

// CreateBatch inserts influencers in one transaction; used by the CSV import.
func (r *InfluencerRepository) CreateBatch(ctx context.Context, influencers []domain.Influencer) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}
	if len(influencers) == 0 {
		return nil
	}

	if err := r.DB.WithContext(ctx).CreateInBatches(influencers, 500).Error; err != nil {
		return fmt.Errorf("failed to import influencers: %w", err)
	}

	return nil
}

// FindAll returns the catalog in id order, so catalog indices are stable
// between solves.
func (r *InfluencerRepository) FindAll(ctx context.Context) ([]domain.Influencer, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	var influencers []domain.Influencer
	err := r.DB.WithContext(ctx).Order("id ASC").Find(&influencers).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find influencers: %w", err)
	}

	return influencers, nil
}
