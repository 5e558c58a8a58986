package service

import "testing"

func TestClassifyTier(t *testing.T) {
	tests := []struct {
		score   int
		name    string
		nextCap int // 0 = nil
	}{
		{-50, "Foundation", 300},
		{0, "Foundation", 300},
		{299, "Foundation", 300},
		{300, "Momentum", 600},
		{599, "Momentum", 600},
		{600, "Catalyst", 0},
		{768, "Catalyst", 0},
		{900, "Catalyst", 0},
		{901, "Catalyst", 0},
		{5000, "Catalyst", 0},
	}

	for _, tt := range tests {
		tier := ClassifyTier(tt.score)
		if tier.Name != tt.name {
			t.Errorf("ClassifyTier(%d).Name = %q, want %q", tt.score, tier.Name, tt.name)
		}
		switch {
		case tt.nextCap == 0 && tier.NextCap != nil:
			t.Errorf("ClassifyTier(%d).NextCap = %d, want nil", tt.score, *tier.NextCap)
		case tt.nextCap != 0 && (tier.NextCap == nil || *tier.NextCap != tt.nextCap):
			t.Errorf("ClassifyTier(%d).NextCap = %v, want %d", tt.score, tier.NextCap, tt.nextCap)
		}
	}
}

func TestClassifyTier_AboveScaleUsesTerminalGuidance(t *testing.T) {
	if got := ClassifyTier(901).Guidance; got != topTierGuidance {
		t.Errorf("guidance = %q, want terminal guidance", got)
	}
	if got := ClassifyTier(900).Guidance; got == topTierGuidance {
		t.Error("900 is still inside the last band and should use its guidance")
	}
}
