// Package memory is the in-process implementation of port.StateStore.
// State lives for the lifetime of the process; every restart reseeds it.
package memory

import (
	"context"
	"sync"
	"time"

	chatdomain "github.com/memetrics/memetrics-bfa-go/internal/chat/domain"
	"github.com/memetrics/memetrics-bfa-go/internal/domain"
)

// Sequences are the first IDs handed out for each record kind.
type Sequences struct {
	Post         int
	Achievement  int
	Notification int
}

// DefaultSequences matches the seeded IDs.
var DefaultSequences = Sequences{Post: 1000, Achievement: 2000, Notification: 3000}

// Store guards a seeded demo state with a RWMutex.
type Store struct {
	mu  sync.RWMutex
	now func() time.Time

	nextPost         int
	nextAchievement  int
	nextNotification int

	user          domain.User
	manifesto     domain.Manifesto
	tips          domain.MitraTips
	feed          []domain.Post
	opportunities []domain.Opportunity
	banking       domain.Banking
	notifications []domain.Notification
	investor      domain.InvestorDashboard
}

// NewStore returns a store seeded with the demo content. now is used for every
// timestamp the store produces; pass nil for time.Now.
func NewStore(seq Sequences, now func() time.Time) *Store {
	if now == nil {
		now = time.Now
	}
	s := &Store{
		now:              now,
		nextPost:         seq.Post,
		nextAchievement:  seq.Achievement,
		nextNotification: seq.Notification,
	}
	s.seed()
	return s
}

// ============================================================
// User
// ============================================================

func (s *Store) GetUser(_ context.Context) (*domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	u := s.user
	u.Skills = append([]string(nil), s.user.Skills...)
	u.Achievements = append([]domain.Achievement(nil), s.user.Achievements...)
	return &u, nil
}

// Snapshot returns the fields the Mitra engine reads, with defaults applied.
func (s *Store) Snapshot(_ context.Context) (chatdomain.UserSnapshot, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := chatdomain.UserSnapshot{ID: s.user.UserID, Region: s.user.Region, DVI: s.user.DVI}
	if snap.Region == "" {
		snap.Region = chatdomain.DefaultRegion
	}
	return snap, nil
}

// ============================================================
// Achievements
// ============================================================

func (s *Store) ListAchievements(_ context.Context) ([]domain.Achievement, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]domain.Achievement{}, s.user.Achievements...), nil
}

// AddAchievement prepends a new achievement to the user's profile.
func (s *Store) AddAchievement(_ context.Context, title string, year int) (*domain.Achievement, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	a := domain.Achievement{ID: s.allocAchievement(), Title: title, Year: year}
	s.user.Achievements = append([]domain.Achievement{a}, s.user.Achievements...)
	return &a, nil
}

// ============================================================
// Feed
// ============================================================

func (s *Store) ListPosts(_ context.Context) ([]domain.Post, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]domain.Post{}, s.feed...), nil
}

// AddPost prepends a post authored under userID, displayed with the current
// user's name and DVI.
func (s *Store) AddPost(_ context.Context, userID, text string) (*domain.Post, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	name := s.user.Name
	if name == "" {
		name = "Community member"
	}
	p := domain.Post{
		ID:          s.allocPost(),
		UserID:      userID,
		DisplayName: name,
		DVI:         s.user.DVI,
		Text:        text,
		CreatedAt:   s.now().UTC(),
		LikeCount:   0,
	}
	s.feed = append([]domain.Post{p}, s.feed...)
	return &p, nil
}

// ============================================================
// Content
// ============================================================

func (s *Store) GetManifesto(_ context.Context) (*domain.Manifesto, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	m := s.manifesto
	m.Hero.Tags = append([]string(nil), s.manifesto.Hero.Tags...)
	m.Pillars = append([]domain.Pillar(nil), s.manifesto.Pillars...)
	m.Voices = append([]domain.Voice(nil), s.manifesto.Voices...)
	return &m, nil
}

func (s *Store) ListOpportunities(_ context.Context) ([]domain.Opportunity, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Opportunity, len(s.opportunities))
	for i, o := range s.opportunities {
		o.Tags = append([]string(nil), o.Tags...)
		out[i] = o
	}
	return out, nil
}

func (s *Store) GetBanking(_ context.Context) (*domain.Banking, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	b := s.banking
	b.Categories = make(map[string]float64, len(s.banking.Categories))
	for k, v := range s.banking.Categories {
		b.Categories[k] = v
	}
	b.Transactions = append([]domain.BankingTransaction(nil), s.banking.Transactions...)
	return &b, nil
}

func (s *Store) ListNotifications(_ context.Context) ([]domain.Notification, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]domain.Notification{}, s.notifications...), nil
}

func (s *Store) GetMitraTips(_ context.Context) (*domain.MitraTips, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return &domain.MitraTips{
		Tips:    append([]string{}, s.tips.Tips...),
		Prompts: append([]string{}, s.tips.Prompts...),
	}, nil
}

func (s *Store) GetInvestorDashboard(_ context.Context) (*domain.InvestorDashboard, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	d := s.investor
	d.Funds = append([]domain.Fund(nil), s.investor.Funds...)
	return &d, nil
}

// ============================================================
// Sequences (caller holds s.mu)
// ============================================================

func (s *Store) allocPost() int {
	id := s.nextPost
	s.nextPost++
	return id
}

func (s *Store) allocAchievement() int {
	id := s.nextAchievement
	s.nextAchievement++
	return id
}

func (s *Store) allocNotification() int {
	id := s.nextNotification
	s.nextNotification++
	return id
}
