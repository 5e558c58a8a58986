package service

import (
	"fmt"
	"strings"

	"github.com/memetrics/memetrics-bfa-go/internal/chat/domain"
)

// ============================================================
// Rule engine: deterministic Mitra replies
// ============================================================

type keywordHint struct {
	keyword string
	hint    string
}

// keywordHints is matched against the lowercased message. Slice order is suggestion order.
var keywordHints = []keywordHint{
	{"loan", "Draft a repayments plan and share a proof-of-income feed post."},
	{"sponsor", "Send a sponsor-ready update that highlights DVI change + social proof."},
	{"resume", "Export a resume snippet from your achievements and attach metrics."},
	{"visa", "Collect verified ID, financial statements, and language certificates into one folder."},
	{"bank", "Review cashflow, repay micro-loans, and request a Mitra credit boost."},
}

var tierSuggestions = map[string][]string{
	"Foundation": {
		"Complete ID verification and upload proof-of-work clips.",
		"Log a new milestone with metrics and supporting media.",
	},
	"Momentum": {
		"Post a sponsor-ready update highlighting DVI growth.",
		"Request a mentor testimonial to boost credibility.",
	},
	"Catalyst": {
		"Share your DVI dashboard with an investor for a funding call.",
		"Bundle repayments plus community impact into a sponsor brief.",
	},
}

const (
	defaultUserID    = "explorer"
	hintTopOfScale   = "You are at the top of the scale. Focus on mentorship and global sponsorships."
	hintKeepStacking = "Keep stacking weekly proof to unlock more achievements."
)

// RuleReply composes a reply and up to four suggestions from the snapshot and message.
// It never fails and has no side effects.
func RuleReply(message string, user domain.UserSnapshot) (string, []string) {
	userID := user.ID
	if userID == "" {
		userID = defaultUserID
	}
	region := user.Region
	if region == "" {
		region = domain.DefaultRegion
	}
	dvi := user.DVI

	tier := ClassifyTier(dvi)

	reply := fmt.Sprintf(
		"Hey %s, your DVI is %d which places you in the %s band for %s. "+
			"%s Focus on measurable outcomes, attach proof, and update your feed so Mitra can advocate for you.",
		userID, dvi, tier.Name, region, tier.Guidance,
	)

	lower := strings.ToLower(message)
	suggestions := make([]string, 0, domain.MaxSuggestions+1)
	for _, kh := range keywordHints {
		if strings.Contains(lower, kh.keyword) {
			suggestions = append(suggestions, kh.hint)
		}
	}
	if len(suggestions) == 0 {
		pair, ok := tierSuggestions[tier.Name]
		if !ok {
			pair = tierSuggestions[topTierName]
		}
		suggestions = append(suggestions, pair...)
	}
	suggestions = append(suggestions, progressHint(tier, dvi))

	// Four or more keyword hits push the progress hint out.
	if len(suggestions) > domain.MaxSuggestions {
		suggestions = suggestions[:domain.MaxSuggestions]
	}
	return reply, suggestions
}

func progressHint(tier domain.Tier, dvi int) string {
	switch {
	case tier.NextCap != nil && *tier.NextCap > dvi:
		return fmt.Sprintf("Only %d DVI more to unlock the next achievement slot.", *tier.NextCap-dvi)
	case dvi >= maxDisplayedCap:
		return hintTopOfScale
	default:
		return hintKeepStacking
	}
}
