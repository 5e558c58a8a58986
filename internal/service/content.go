package service

import (
	"context"

	"github.com/memetrics/memetrics-bfa-go/internal/domain"
	"github.com/memetrics/memetrics-bfa-go/internal/port"
)

// ContentService serves the read-only screens: manifesto, opportunities,
// banking cockpit, investor dashboard and Mitra tips.
type ContentService struct {
	store port.StateStore
}

func NewContentService(store port.StateStore) *ContentService {
	return &ContentService{store: store}
}

func (s *ContentService) Manifesto(ctx context.Context) (*domain.Manifesto, error) {
	ctx, span := tracer.Start(ctx, "ContentService.Manifesto")
	defer span.End()
	return s.store.GetManifesto(ctx)
}

func (s *ContentService) Opportunities(ctx context.Context) ([]domain.Opportunity, error) {
	ctx, span := tracer.Start(ctx, "ContentService.Opportunities")
	defer span.End()
	return s.store.ListOpportunities(ctx)
}

func (s *ContentService) Banking(ctx context.Context) (*domain.Banking, error) {
	ctx, span := tracer.Start(ctx, "ContentService.Banking")
	defer span.End()
	return s.store.GetBanking(ctx)
}

func (s *ContentService) Investor(ctx context.Context) (*domain.InvestorDashboard, error) {
	ctx, span := tracer.Start(ctx, "ContentService.Investor")
	defer span.End()
	return s.store.GetInvestorDashboard(ctx)
}

func (s *ContentService) MitraTips(ctx context.Context) (*domain.MitraTips, error) {
	ctx, span := tracer.Start(ctx, "ContentService.MitraTips")
	defer span.End()
	return s.store.GetMitraTips(ctx)
}
