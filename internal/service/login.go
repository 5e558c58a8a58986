package service

import (
	"context"
	"strings"

	"github.com/memetrics/memetrics-bfa-go/internal/domain"
	"github.com/memetrics/memetrics-bfa-go/internal/port"

	"go.opentelemetry.io/otel"
	"go.uber.org/zap"
)

var tracer = otel.Tracer("service")

// LoginService echoes the demo user back under the name the visitor typed.
// Nothing is persisted: the store's user record is never modified.
type LoginService struct {
	store  port.StateStore
	logger *zap.Logger
}

func NewLoginService(store port.StateStore, logger *zap.Logger) *LoginService {
	return &LoginService{store: store, logger: logger}
}

// Login returns a copy of the current user renamed to name, with user_id derived from it.
func (s *LoginService) Login(ctx context.Context, name string) (*domain.User, error) {
	ctx, span := tracer.Start(ctx, "LoginService.Login")
	defer span.End()

	user, err := s.store.GetUser(ctx)
	if err != nil {
		return nil, err
	}

	user.Name = strings.TrimSpace(name)
	user.UserID = Slug(name)

	s.logger.Info("login", zap.String("user_id", user.UserID))
	return user, nil
}

// Slug lowercases the trimmed name and replaces spaces with "-"; empty becomes "guest".
func Slug(name string) string {
	slug := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), " ", "-")
	if slug == "" {
		return "guest"
	}
	return slug
}
