package infra

import (
	"context"
	"fmt"

	"github.com/memetrics/memetrics-bfa-go/internal/chat/domain"
	maindomain "github.com/memetrics/memetrics-bfa-go/internal/domain"
	"github.com/memetrics/memetrics-bfa-go/internal/infra/resilience"

	"github.com/sony/gobreaker"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"google.golang.org/genai"
)

// ServiceGemini labels errors, metrics and breaker state for the Gemini provider.
const ServiceGemini = "gemini"

// contentGenerator is the slice of *genai.Models the replier uses.
type contentGenerator interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

// GeminiConfig configures the Gemini Developer API client.
type GeminiConfig struct {
	APIKey string
	Model  string
}

// GeminiReplier asks Gemini for the same JSON contract the OpenAI replier uses.
type GeminiReplier struct {
	models contentGenerator
	model  string
	cb     *gobreaker.CircuitBreaker
	retry  resilience.Config
}

// NewGeminiReplier builds a genai client for the Gemini API backend.
// An empty key is reported as *ErrNotConfigured so callers can swap in an UnavailableReplier.
func NewGeminiReplier(ctx context.Context, cfg GeminiConfig, cb *gobreaker.CircuitBreaker, retry resilience.Config) (*GeminiReplier, error) {
	if cfg.APIKey == "" {
		return nil, &maindomain.ErrNotConfigured{Service: ServiceGemini, Reason: "GEMINI_API_KEY not set"}
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("creating gemini client: %w", err)
	}

	return newGeminiReplier(client.Models, cfg.Model, cb, retry), nil
}

func newGeminiReplier(models contentGenerator, model string, cb *gobreaker.CircuitBreaker, retry resilience.Config) *GeminiReplier {
	return &GeminiReplier{models: models, model: model, cb: cb, retry: retry}
}

func (g *GeminiReplier) GenerateReply(ctx context.Context, req *domain.RemoteRequest) (*domain.RemoteReply, error) {
	ctx, span := tracer.Start(ctx, "GeminiReplier.GenerateReply")
	defer span.End()
	span.SetAttributes(
		attribute.String("llm.model", g.model),
		attribute.String("user.id", req.UserID),
	)

	temp := float32(temperature)
	cfg := &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(systemPrompt, genai.RoleUser),
		Temperature:       &temp,
		ResponseMIMEType:  "application/json",
	}
	contents := []*genai.Content{genai.NewContentFromText(userContent(req), genai.RoleUser)}

	var text string
	_, err := g.cb.Execute(func() (any, error) {
		innerErr := resilience.RetryWithBackoff(ctx, g.retry, func() error {
			res, err := g.models.GenerateContent(ctx, g.model, contents, cfg)
			if err != nil {
				return fmt.Errorf("gemini generate content: %w", err)
			}
			text = res.Text()
			return nil
		})
		return nil, innerErr
	})
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		if resilience.IsBreakerRejection(err) {
			return nil, &maindomain.ErrCircuitOpen{Service: ServiceGemini}
		}
		return nil, &maindomain.ErrExternalService{Service: ServiceGemini, Err: err}
	}

	return ParseReply(ServiceGemini, text)
}
