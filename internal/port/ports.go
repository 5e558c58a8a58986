// Package port defines the interfaces (ports) for external dependencies.
// Following hexagonal architecture, these ports decouple the domain/service
// layer from concrete implementations.
package port

import (
	"context"

	chatdomain "github.com/memetrics/memetrics-bfa-go/internal/chat/domain"
	"github.com/memetrics/memetrics-bfa-go/internal/domain"
)

// Cache provides generic caching with TTL.
type Cache[T any] interface {
	Get(ctx context.Context, key string) (T, bool)
	Set(ctx context.Context, key string, value T)
	Delete(ctx context.Context, key string)
}

// StateStore holds the demo app state: one user plus the mock content around them.
// Read methods return copies; mutators allocate IDs from the store's own sequences.
type StateStore interface {
	// User
	GetUser(ctx context.Context) (*domain.User, error)
	Snapshot(ctx context.Context) (chatdomain.UserSnapshot, error)

	// Achievements
	ListAchievements(ctx context.Context) ([]domain.Achievement, error)
	AddAchievement(ctx context.Context, title string, year int) (*domain.Achievement, error)

	// Feed
	ListPosts(ctx context.Context) ([]domain.Post, error)
	AddPost(ctx context.Context, userID, text string) (*domain.Post, error)

	// Content
	GetManifesto(ctx context.Context) (*domain.Manifesto, error)
	ListOpportunities(ctx context.Context) ([]domain.Opportunity, error)
	GetBanking(ctx context.Context) (*domain.Banking, error)
	ListNotifications(ctx context.Context) ([]domain.Notification, error)
	GetMitraTips(ctx context.Context) (*domain.MitraTips, error)
	GetInvestorDashboard(ctx context.Context) (*domain.InvestorDashboard, error)
}
