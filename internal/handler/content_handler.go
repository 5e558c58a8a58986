package handler

import (
	"net/http"

	"github.com/memetrics/memetrics-bfa-go/internal/domain"
	"github.com/memetrics/memetrics-bfa-go/internal/service"

	"go.uber.org/zap"
)

// ============================================================
// Conteúdo estático do app (somente leitura)
// ============================================================

func manifestoHandler(svc *service.ContentService, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, span := tracer.Start(r.Context(), "GET /api/manifesto")
		defer span.End()

		m, err := svc.Manifesto(ctx)
		if err != nil {
			handleServiceError(w, err, logger)
			return
		}
		writeJSON(w, http.StatusOK, m)
	}
}

func opportunitiesHandler(svc *service.ContentService, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, span := tracer.Start(r.Context(), "GET /api/opportunities")
		defer span.End()

		items, err := svc.Opportunities(ctx)
		if err != nil {
			handleServiceError(w, err, logger)
			return
		}
		writeJSON(w, http.StatusOK, domain.ItemsResponse[domain.Opportunity]{Items: items})
	}
}

func bankingHandler(svc *service.ContentService, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, span := tracer.Start(r.Context(), "GET /api/banking")
		defer span.End()

		b, err := svc.Banking(ctx)
		if err != nil {
			handleServiceError(w, err, logger)
			return
		}
		writeJSON(w, http.StatusOK, b)
	}
}

func investorHandler(svc *service.ContentService, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, span := tracer.Start(r.Context(), "GET /api/investor")
		defer span.End()

		d, err := svc.Investor(ctx)
		if err != nil {
			handleServiceError(w, err, logger)
			return
		}
		writeJSON(w, http.StatusOK, d)
	}
}

func mitraTipsHandler(svc *service.ContentService, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		tips, err := svc.MitraTips(r.Context())
		if err != nil {
			handleServiceError(w, err, logger)
			return
		}
		writeJSON(w, http.StatusOK, tips)
	}
}
