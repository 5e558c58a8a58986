package handler

import (
	"mime"
	"net/http"
	"strings"

	"github.com/memetrics/memetrics-bfa-go/internal/domain"
	"github.com/memetrics/memetrics-bfa-go/internal/service"
	"github.com/memetrics/memetrics-bfa-go/internal/validation"

	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"
)

// maxFormBytes bounds multipart posts; the optional photo is accepted but not stored.
const maxFormBytes = 10 << 20

func listFeedHandler(svc *service.FeedService, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, span := tracer.Start(r.Context(), "GET /api/feed")
		defer span.End()

		posts, err := svc.List(ctx)
		if err != nil {
			handleServiceError(w, err, logger)
			return
		}
		writeJSON(w, http.StatusOK, domain.ItemsResponse[domain.Post]{Items: posts})
	}
}

// createPostHandler accepts JSON or a form (multipart or urlencoded) with user_id and text.
func createPostHandler(svc *service.FeedService, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, span := tracer.Start(r.Context(), "POST /api/feed")
		defer span.End()

		req, err := decodePostRequest(r, logger)
		if err != nil {
			handleServiceError(w, err, logger)
			return
		}
		span.SetAttributes(attribute.String("user.id", req.UserID))

		post, err := svc.Create(ctx, req)
		if err != nil {
			handleServiceError(w, err, logger)
			return
		}
		writeJSON(w, http.StatusOK, domain.PostCreated{Post: post, OK: true})
	}
}

func decodePostRequest(r *http.Request, logger *zap.Logger) (domain.PostRequest, error) {
	var req domain.PostRequest

	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	switch {
	case mediaType == "multipart/form-data" || mediaType == "application/x-www-form-urlencoded":
		if mediaType == "multipart/form-data" {
			if err := r.ParseMultipartForm(maxFormBytes); err != nil {
				return req, &domain.ErrValidation{Field: "body", Message: "invalid multipart form: " + err.Error()}
			}
			if r.MultipartForm != nil && len(r.MultipartForm.File["photo"]) > 0 {
				logger.Debug("feed post photo ignored", zap.String("filename", r.MultipartForm.File["photo"][0].Filename))
			}
		} else if err := r.ParseForm(); err != nil {
			return req, &domain.ErrValidation{Field: "body", Message: "invalid form: " + err.Error()}
		}

		doc := map[string]any{}
		for _, field := range []string{"user_id", "text"} {
			if v, ok := r.Form[field]; ok && len(v) > 0 {
				doc[field] = v[0]
			}
		}
		if err := validation.Post.ValidateGo(doc); err != nil {
			return req, err
		}
		req.UserID = strings.TrimSpace(r.FormValue("user_id"))
		req.Text = r.FormValue("text")
		return req, nil
	default:
		err := decodeValidated(r, validation.Post, &req)
		return req, err
	}
}
