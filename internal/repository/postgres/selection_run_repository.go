package postgres

import (
	"context"
	"errors"
	"fmt"

	"influencerMDP/business/selection"
	"influencerMDP/domain"

	"gorm.io/gorm"
)

type SelectionRunRepository struct {
	DB *gorm.DB
}

var _ selection.RunRepository = (*SelectionRunRepository)(nil)

func NewSelectionRunRepository(db *gorm.DB) *SelectionRunRepository {
	return &SelectionRunRepository{DB: db}
}

func (r *SelectionRunRepository) SaveRun(ctx context.Context, run domain.SelectionRun) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	if err := r.DB.WithContext(ctx).Create(&run).Error; err != nil {
		return fmt.Errorf("failed to save selection run: %w", err)
	}

	return nil
}

func (r *SelectionRunRepository) GetRun(ctx context.Context, id string) (domain.SelectionRun, error) {
	if err := ctx.Err(); err != nil {
		return domain.SelectionRun{}, fmt.Errorf("context error: %w", err)
	}

	var run domain.SelectionRun
	err := r.DB.WithContext(ctx).First(&run, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.SelectionRun{}, selection.ErrRunNotFound
		}
		return domain.SelectionRun{}, fmt.Errorf("failed to find selection run: %w", err)
	}

	return run, nil
}

// ListRuns returns the newest runs first.
func (r *SelectionRunRepository) ListRuns(ctx context.Context, limit int) ([]domain.SelectionRun, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	var runs []domain.SelectionRun
	err := r.DB.WithContext(ctx).
		Order("created_at DESC").
		Limit(limit).
		Find(&runs).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list selection runs: %w", err)
	}

	return runs, nil
}
