package service

import (
	"context"
	"fmt"
	"time"

	"github.com/memetrics/memetrics-bfa-go/internal/domain"
	"github.com/memetrics/memetrics-bfa-go/internal/infra/observability"
	"github.com/memetrics/memetrics-bfa-go/internal/port"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// ProfileService assembles the profile screen and records achievements.
type ProfileService struct {
	store   port.StateStore
	metrics *observability.Metrics
	logger  *zap.Logger
}

func NewProfileService(store port.StateStore, metrics *observability.Metrics, logger *zap.Logger) *ProfileService {
	return &ProfileService{store: store, metrics: metrics, logger: logger}
}

// GetProfile fetches user, achievements and notifications concurrently.
func (s *ProfileService) GetProfile(ctx context.Context) (*domain.Profile, error) {
	ctx, span := tracer.Start(ctx, "ProfileService.GetProfile")
	defer span.End()

	start := time.Now()
	defer func() {
		s.metrics.RecordRequestDuration("profile", time.Since(start))
	}()

	var (
		user          *domain.User
		achievements  []domain.Achievement
		notifications []domain.Notification
	)

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		u, err := s.store.GetUser(gCtx)
		if err != nil {
			return fmt.Errorf("user fetch: %w", err)
		}
		user = u
		return nil
	})

	g.Go(func() error {
		a, err := s.store.ListAchievements(gCtx)
		if err != nil {
			return fmt.Errorf("achievements fetch: %w", err)
		}
		achievements = a
		return nil
	})

	g.Go(func() error {
		n, err := s.store.ListNotifications(gCtx)
		if err != nil {
			return fmt.Errorf("notifications fetch: %w", err)
		}
		notifications = n
		return nil
	})

	if err := g.Wait(); err != nil {
		s.logger.Error("failed to assemble profile", zap.Error(err))
		return nil, err
	}

	region := user.Region
	if region == "" {
		region = "Global"
	}
	skills := user.Skills
	if skills == nil {
		skills = []string{}
	}

	return &domain.Profile{
		User: domain.ProfileUser{
			UserID:   user.UserID,
			Name:     user.Name,
			Role:     user.Role,
			Region:   region,
			DVI:      user.DVI,
			Band:     user.Band,
			Headline: user.Headline,
			About:    user.About,
			Skills:   skills,
		},
		Achievements:  achievements,
		Notifications: notifications,
	}, nil
}

// AddAchievement records a milestone at the top of the profile.
func (s *ProfileService) AddAchievement(ctx context.Context, req domain.AchievementRequest) (*domain.Achievement, error) {
	ctx, span := tracer.Start(ctx, "ProfileService.AddAchievement")
	defer span.End()

	a, err := s.store.AddAchievement(ctx, req.Title, req.Year)
	if err != nil {
		return nil, fmt.Errorf("add achievement: %w", err)
	}
	s.logger.Info("achievement added", zap.Int("achievement_id", a.ID), zap.Int("year", a.Year))
	return a, nil
}
