package selection

import (
	"encoding/json"
	"fmt"
	"time"

	"influencerMDP/business/mdp"
	"influencerMDP/domain"

	"github.com/pobyzaarif/goshortcute"
	"golang.org/x/crypto/blake2b"
)

type fingerprintInput struct {
	Influencers []domain.Influencer `json:"influencers"`
	Config      mdp.Config          `json:"config"`
	Budget      float64             `json:"budget"`
	Horizon     int                 `json:"horizon"`
}

// Fingerprint identifies a solve by everything that can change its result.
// Record timestamps are zeroed so re-reading the same rows gives the same key.
func Fingerprint(influencers []domain.Influencer, cfg mdp.Config, budget float64, horizon int) (string, error) {
	in := fingerprintInput{
		Influencers: make([]domain.Influencer, len(influencers)),
		Config:      cfg,
		Budget:      budget,
		Horizon:     horizon,
	}
	for i, inf := range influencers {
		inf.CreatedAt = time.Time{}
		in.Influencers[i] = inf
	}

	raw, err := json.Marshal(in)
	if err != nil {
		return "", fmt.Errorf("failed to marshal fingerprint input: %w", err)
	}

	sum := blake2b.Sum256(raw)
	return goshortcute.StringtoBase64Encode(string(sum[:])), nil
}
