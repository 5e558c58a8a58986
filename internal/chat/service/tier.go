package service

import "github.com/memetrics/memetrics-bfa-go/internal/chat/domain"

// tiers are evaluated in ascending order; the first whose High exceeds the score wins.
var tiers = []domain.TierDefinition{
	{Low: 0, High: 300, Name: "Foundation", Guidance: "Focus on verifying identity, uploading evidence, and logging consistent progress so your DVI climbs steadily."},
	{Low: 300, High: 600, Name: "Momentum", Guidance: "Layer public milestones with proof, request recommendations, and keep your repayment streak clean for higher credit tiers."},
	{Low: 600, High: 901, Name: "Catalyst", Guidance: "Expand across regions, publish measurable impact, and activate cross-border sponsors to push into the 800s."},
}

const (
	topTierName     = "Catalyst"
	topTierGuidance = "You are already operating at catalyst tier. Keep mentoring others and documenting your influence."

	// maxDisplayedCap is the largest cap ever shown as "next". The last band ends at 901,
	// so scores 600..900 never get a finite cap (900 included).
	maxDisplayedCap = 900
)

// ClassifyTier maps a DVI score to its tier.
func ClassifyTier(score int) domain.Tier {
	for _, t := range tiers {
		if score < t.High {
			tier := domain.Tier{Name: t.Name, Guidance: t.Guidance}
			if t.High <= maxDisplayedCap {
				next := t.High
				tier.NextCap = &next
			}
			return tier
		}
	}
	return domain.Tier{Name: topTierName, Guidance: topTierGuidance}
}
