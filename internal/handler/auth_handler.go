package handler

import (
	"net/http"

	"github.com/memetrics/memetrics-bfa-go/internal/domain"
	"github.com/memetrics/memetrics-bfa-go/internal/service"
	"github.com/memetrics/memetrics-bfa-go/internal/validation"

	"go.uber.org/zap"
)

// loginHandler handles POST /api/auth/login. There is no credential check:
// the response is the demo user renamed after the submitted name.
func loginHandler(svc *service.LoginService, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, span := tracer.Start(r.Context(), "POST /api/auth/login")
		defer span.End()

		var req domain.LoginRequest
		if err := decodeValidated(r, validation.Login, &req); err != nil {
			handleServiceError(w, err, logger)
			return
		}

		user, err := svc.Login(ctx, req.Name)
		if err != nil {
			handleServiceError(w, err, logger)
			return
		}
		writeJSON(w, http.StatusOK, domain.LoginResponse{User: user})
	}
}
