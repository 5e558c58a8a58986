package service

import (
	"context"
	"fmt"

	"github.com/memetrics/memetrics-bfa-go/internal/domain"
	"github.com/memetrics/memetrics-bfa-go/internal/port"

	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"
)

// FeedService lists and creates social feed posts.
type FeedService struct {
	store  port.StateStore
	logger *zap.Logger
}

func NewFeedService(store port.StateStore, logger *zap.Logger) *FeedService {
	return &FeedService{store: store, logger: logger}
}

// List returns the feed, newest first.
func (s *FeedService) List(ctx context.Context) ([]domain.Post, error) {
	ctx, span := tracer.Start(ctx, "FeedService.List")
	defer span.End()

	posts, err := s.store.ListPosts(ctx)
	if err != nil {
		return nil, fmt.Errorf("list posts: %w", err)
	}
	return posts, nil
}

// Create publishes a post. The request is assumed to be schema-validated.
func (s *FeedService) Create(ctx context.Context, req domain.PostRequest) (*domain.Post, error) {
	ctx, span := tracer.Start(ctx, "FeedService.Create")
	defer span.End()
	span.SetAttributes(attribute.String("user.id", req.UserID))

	post, err := s.store.AddPost(ctx, req.UserID, req.Text)
	if err != nil {
		return nil, fmt.Errorf("add post: %w", err)
	}

	s.logger.Info("post created",
		zap.Int("post_id", post.ID),
		zap.String("user_id", req.UserID),
		zap.Int("text_length", len(req.Text)),
	)
	return post, nil
}
