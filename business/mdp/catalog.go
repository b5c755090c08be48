package mdp

import (
	"fmt"
	"math"

	"influencerMDP/domain"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// Catalog is the immutable, validated list of candidate influencers. Indices
// into it are the action space of the solver.
type Catalog struct {
	items []domain.Influencer
}

// NewCatalog validates every record and keeps its own copy of the slice.
func NewCatalog(influencers []domain.Influencer) (Catalog, error) {
	items := make([]domain.Influencer, len(influencers))
	for i, inf := range influencers {
		if err := validate.Struct(inf); err != nil {
			return Catalog{}, fmt.Errorf("influencer %d (%s): %w", i, inf.Username, err)
		}
		if field, ok := nonFinite(inf); ok {
			return Catalog{}, fmt.Errorf("influencer %d (%s): %s must be a finite number", i, inf.Username, field)
		}
		if inf.EngagementRate != nil {
			rate := *inf.EngagementRate
			inf.EngagementRate = &rate
		}
		items[i] = inf
	}
	return Catalog{items: items}, nil
}

// nonFinite names the first NaN or infinite numeric field of inf.
func nonFinite(inf domain.Influencer) (string, bool) {
	names := []string{"likes", "comments", "saves", "base_cost"}
	values := []float64{inf.Likes, inf.Comments, inf.Saves, inf.BaseCost}
	if inf.EngagementRate != nil {
		names = append(names, "engagement_rate")
		values = append(values, *inf.EngagementRate)
	}

	for i, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return names[i], true
		}
	}
	return "", false
}

func (c Catalog) Len() int {
	return len(c.items)
}

func (c Catalog) At(i int) domain.Influencer {
	return c.items[i]
}

// All returns a copy of the records in catalog order.
func (c Catalog) All() []domain.Influencer {
	out := make([]domain.Influencer, len(c.items))
	copy(out, c.items)
	return out
}
