package selection

import (
	"context"
	"fmt"

	"influencerMDP/business/mdp"
	"influencerMDP/domain"
)

func (s *SelectionService) ListInfluencers(ctx context.Context) ([]domain.Influencer, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}
	return s.influencerRepo.FindAll(ctx)
}

// AddInfluencer validates inf with the same rules the catalog applies and
// stores it. The stored record, with its id, is returned.
func (s *SelectionService) AddInfluencer(ctx context.Context, inf domain.Influencer) (domain.Influencer, error) {
	if err := ctx.Err(); err != nil {
		return domain.Influencer{}, fmt.Errorf("context error: %w", err)
	}
	if _, err := mdp.NewCatalog([]domain.Influencer{inf}); err != nil {
		return domain.Influencer{}, &mdp.ConfigurationError{Field: "influencer", Reason: err.Error()}
	}

	inf.ID = 0
	if err := s.influencerRepo.Create(ctx, &inf); err != nil {
		return domain.Influencer{}, fmt.Errorf("failed to create influencer: %w", err)
	}
	return inf, nil
}
