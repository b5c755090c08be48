package mdp

import "influencerMDP/domain"

// Breakdown splits a step reward into its engagement and diversity parts.
type Breakdown struct {
	Engagement     float64
	DiversityBonus float64
	Total          float64
}

// RewardModel scores a selection. Selecting nobody is worth 0; there is no
// step penalty.
type RewardModel struct {
	weights domain.EngagementWeights
	bonus   float64
	groups  groupSet
}

func NewRewardModel(cfg Config) RewardModel {
	return RewardModel{
		weights: cfg.Weights,
		bonus:   cfg.DiversityBonus,
		groups:  newGroupSet(cfg.UnderrepresentedGroups),
	}
}

func (m RewardModel) Underrepresented(inf domain.Influencer) bool {
	return m.groups.contains(inf.Group)
}

func (m RewardModel) Engagement(inf domain.Influencer) float64 {
	return m.weights.Likes*inf.Likes + m.weights.Comments*inf.Comments + m.weights.Saves*inf.Saves
}

// Reward is the reward for selecting inf in state s; a nil inf means
// "select none". The diversity bonus is paid only by the selection that
// flips DiversityCovered, so at most once per trajectory.
func (m RewardModel) Reward(s State, inf *domain.Influencer) Breakdown {
	if inf == nil {
		return Breakdown{}
	}

	b := Breakdown{Engagement: m.Engagement(*inf)}
	if !s.DiversityCovered && m.Underrepresented(*inf) {
		b.DiversityBonus = m.bonus
	}
	b.Total = b.Engagement + b.DiversityBonus
	return b
}
