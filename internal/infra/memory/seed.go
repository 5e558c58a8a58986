package memory

import "github.com/memetrics/memetrics-bfa-go/internal/domain"

// seed fills the store with the demo content. IDs come from the store's sequences,
// so a store built with DefaultSequences starts at 1000/2000/3000.
func (s *Store) seed() {
	now := s.now().UTC()

	s.user = domain.User{
		UserID:   "mitra",
		Name:     "Mitra Explorer",
		Role:     "Student",
		Region:   "Global",
		DVI:      768,
		Band:     "Catalyst",
		Headline: "Designing inclusion-ready fintech experiences.",
		About:    "Mitra pairs lived experience with AI to surface the hidden potential in underrepresented builders.",
		Skills:   []string{"AI Ethics", "Financial Inclusion", "Product Strategy", "Community Leadership"},
		Achievements: []domain.Achievement{
			{ID: s.allocAchievement(), Title: "EU Inclusion Fellowship", Year: 2024},
			{ID: s.allocAchievement(), Title: "Launched community micro-loan pilot", Year: 2023},
			{ID: s.allocAchievement(), Title: "Data storytelling bootcamp mentor", Year: 2022},
		},
	}

	s.manifesto = domain.Manifesto{
		Hero: domain.ManifestoHero{
			Title: "MeMetrics is your proof. Mitra is your guardian.",
			Summary: "The Development Value Index (DVI) translates lived resilience into the language banks, " +
				"sponsors, and visas understand. Every milestone you capture with MeMetrics is a " +
				"receipt that you exist, that you deliver, and that you deserve to unlock the next door.",
			Tags: []string{"Verified credibility", "AI mentorship", "DVI-powered banking"},
		},
		Pillars: []domain.Pillar{
			{Title: "Identity, verified", Body: "Video + document verification protects the community and accelerates trust in every region."},
			{Title: "Banking inclusion", Body: "Track balances, payments, and micro-loans even if traditional institutions said no."},
			{Title: "Mitra beside you", Body: "Get coaching, accountability, and tailored opportunities every time you check in."},
		},
		Voices: []domain.Voice{
			{UserID: "amira", Quote: "My DVI hit 780 after Mitra guided me into a cybersecurity scholarship. I now mentor others here."},
			{UserID: "leo", Quote: "The banking cockpit gave me my first official account. Sponsors finally saw my real track record."},
			{UserID: "sofia", Quote: "I was told 'you do not exist.' Now I walk into interviews with a DVI-backed story."},
		},
	}

	s.tips = domain.MitraTips{
		Tips: []string{
			"Log evidence weekly so your DVI momentum never stalls.",
			"Pair each milestone with proof — docs, video, and sponsor notes.",
			"Keep your financial story tidy: repayments on time unlock new credit tiers.",
		},
		Prompts: []string{
			"Draft a sponsor update for this week",
			"Design a 30-day banking credibility sprint",
			"Map scholarships aligned with my DVI band",
			"Prep my documents for a cross-border visa",
		},
	}

	s.feed = []domain.Post{
		{
			ID: s.allocPost(), UserID: "fatima", DisplayName: "Fatima Idrissi", DVI: 742,
			Text:      "Just completed the fintech bootcamp and accepted an offer at a digital bank! Mitra kept me accountable.",
			CreatedAt: now, LikeCount: 42,
		},
		{
			ID: s.allocPost(), UserID: "youssef", DisplayName: "Youssef El-Hassan", DVI: 701,
			Text:      "Published v2 of my Android budgeting app. Looking for beta sponsors this quarter.",
			CreatedAt: now, LikeCount: 27,
		},
		{
			ID: s.allocPost(), UserID: "li", DisplayName: "Li Wei", DVI: 715,
			Text:      "IELTS 8.0 secured! Next up: scholarships across the EU - open to referrals.",
			CreatedAt: now, LikeCount: 35,
		},
	}

	s.opportunities = []domain.Opportunity{
		{
			ID: "opp-1", Title: "Scholarship Pool - Data Science", Org: "Future of Finance Lab", Type: "Scholarship",
			Summary:  "12-week applied AI residency for inclusion-focused builders.",
			Tags:     []string{"AI", "Scholarship", "Remote"},
			Deadline: "2025-11-15", Link: "https://example.com/opportunity/data-science",
		},
		{
			ID: "opp-2", Title: "Micro-loan Tranche - EU Students", Org: "Mitra Capital", Type: "Micro-loan",
			Summary:  "EUR 5k - 25k flexible micro-loans for high DVI students scaling their impact.",
			Tags:     []string{"Micro-loan", "Europe", "Finance"},
			Deadline: "2025-12-01", Link: "https://example.com/opportunity/microloan",
		},
		{
			ID: "opp-3", Title: "Mentorship Grants - Cybersecurity", Org: "Parity Guild", Type: "Grant",
			Summary:  "Funded mentorship for emerging security researchers in the global south.",
			Tags:     []string{"Mentorship", "Security", "Grant"},
			Deadline: "2026-01-10", Link: "https://example.com/opportunity/mentorship",
		},
	}

	s.banking = domain.Banking{
		Balance:  12850.72,
		Income:   4150.00,
		Spend:    1890.43,
		IBANLike: "ME00MTRA0001",
		Categories: map[string]float64{
			"Housing":    640.0,
			"Education":  320.5,
			"Community":  220.75,
			"Operations": 708.18,
		},
		Transactions: []domain.BankingTransaction{
			{ID: "txn-1", Counterparty: "Impact Fellowship", Reference: "Scholarship disbursement", Amount: 2200.00, Timestamp: now},
			{ID: "txn-2", Counterparty: "City Housing Co-op", Reference: "Housing", Amount: -640.00, Timestamp: now},
			{ID: "txn-3", Counterparty: "Learning Partner", Reference: "Education stipend", Amount: -320.50, Timestamp: now},
			{ID: "txn-4", Counterparty: "Community Kitchen", Reference: "Mutual aid", Amount: -220.75, Timestamp: now},
			{ID: "txn-5", Counterparty: "Inclusive Bank", Reference: "Salary", Amount: 1950.00, Timestamp: now},
		},
	}

	s.notifications = []domain.Notification{
		{ID: s.allocNotification(), Title: "Sponsor follow-up", Body: "Tech Angels requested your updated DVI summary.", CreatedAt: now},
		{ID: s.allocNotification(), Title: "Banking milestone", Body: "Three on-time repayments logged. Eligible for higher limit.", CreatedAt: now},
	}

	s.investor = domain.InvestorDashboard{
		AUM:                120000.0,
		ActiveSponsorships: 5,
		ROI:                7.2,
		Funds: []domain.Fund{
			{Title: "Scholarship Pool - Data Science", Target: 10000, Funded: 6000, Focus: "STEM scholarships"},
			{Title: "Micro-loan Tranche - EU Students", Target: 25000, Funded: 8750, Focus: "Micro-loans"},
			{Title: "Mentorship Grants - Cybersecurity", Target: 5000, Funded: 4500, Focus: "Mentorship grants"},
		},
	}
}
