package handler

import (
	"net/http"

	"github.com/memetrics/memetrics-bfa-go/internal/domain"
	"github.com/memetrics/memetrics-bfa-go/internal/service"
	"github.com/memetrics/memetrics-bfa-go/internal/validation"

	"go.uber.org/zap"
)

func getProfileHandler(svc *service.ProfileService, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, span := tracer.Start(r.Context(), "GET /api/profile")
		defer span.End()

		p, err := svc.GetProfile(ctx)
		if err != nil {
			handleServiceError(w, err, logger)
			return
		}
		writeJSON(w, http.StatusOK, p)
	}
}

func addAchievementHandler(svc *service.ProfileService, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, span := tracer.Start(r.Context(), "POST /api/profile/achievements")
		defer span.End()

		var req domain.AchievementRequest
		if err := decodeValidated(r, validation.Achievement, &req); err != nil {
			handleServiceError(w, err, logger)
			return
		}

		a, err := svc.AddAchievement(ctx, req)
		if err != nil {
			handleServiceError(w, err, logger)
			return
		}
		writeJSON(w, http.StatusOK, domain.AchievementCreated{Achievement: a, OK: true})
	}
}
