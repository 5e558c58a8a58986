package infra

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/memetrics/memetrics-bfa-go/internal/chat/domain"
	maindomain "github.com/memetrics/memetrics-bfa-go/internal/domain"
	"github.com/memetrics/memetrics-bfa-go/internal/infra/resilience"

	"github.com/sony/gobreaker"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

// tracer é o tracer OpenTelemetry para o módulo chat/infra.
var tracer = otel.Tracer("chat/infra")

// ServiceOpenAI labels errors, metrics and breaker state for the OpenAI provider.
const ServiceOpenAI = "openai"

// ============================================================
// OpenAIReplier: cliente HTTP para /chat/completions
// ============================================================
//
// Works against api.openai.com and any OpenAI-compatible gateway:
//
//	Request:  {"model": "...", "messages": [system, user], "temperature": 0.6,
//	           "response_format": {"type": "json_object"}}
//	Response: {"choices": [{"message": {"content": "{\"reply\": ..., \"suggestions\": [...]}"}}]}

// OpenAIConfig configures the OpenAI-compatible client.
type OpenAIConfig struct {
	APIKey  string
	Model   string
	BaseURL string // ex: https://api.openai.com/v1
}

type OpenAIReplier struct {
	httpClient *http.Client
	cfg        OpenAIConfig
	cb         *gobreaker.CircuitBreaker
	retry      resilience.Config
}

func NewOpenAIReplier(httpClient *http.Client, cfg OpenAIConfig, cb *gobreaker.CircuitBreaker, retry resilience.Config) *OpenAIReplier {
	cfg.BaseURL = strings.TrimRight(cfg.BaseURL, "/")
	return &OpenAIReplier{
		httpClient: httpClient,
		cfg:        cfg,
		cb:         cb,
		retry:      retry,
	}
}

type openAIMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type openAIResponseFormat struct {
	Type string `json:"type"`
}

type openAIRequest struct {
	Model          string               `json:"model"`
	Messages       []openAIMessage      `json:"messages"`
	Temperature    float64              `json:"temperature"`
	ResponseFormat openAIResponseFormat `json:"response_format"`
}

type openAIResponse struct {
	Choices []struct {
		Message struct {
			Content *string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

// GenerateReply asks the model for a structured Mitra reply.
//
// Fluxo:
//  1. Sem API key → *ErrNotConfigured (nenhuma chamada HTTP)
//  2. POST {base}/chat/completions dentro do circuit breaker + retry
//  3. Breaker aberto → *ErrCircuitOpen; falha de transporte/status → *ErrExternalService
//  4. O conteúdo da primeira choice passa por ParseReply
func (c *OpenAIReplier) GenerateReply(ctx context.Context, req *domain.RemoteRequest) (*domain.RemoteReply, error) {
	if c.cfg.APIKey == "" {
		return nil, &maindomain.ErrNotConfigured{Service: ServiceOpenAI, Reason: "OPENAI_API_KEY not set"}
	}

	ctx, span := tracer.Start(ctx, "OpenAIReplier.GenerateReply")
	defer span.End()
	span.SetAttributes(
		attribute.String("llm.model", c.cfg.Model),
		attribute.String("user.id", req.UserID),
	)

	var content string
	_, err := c.cb.Execute(func() (any, error) {
		innerErr := resilience.RetryWithBackoff(ctx, c.retry, func() error {
			text, err := c.complete(ctx, req)
			if err != nil {
				return err
			}
			content = text
			return nil
		})
		return nil, innerErr
	})
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		if resilience.IsBreakerRejection(err) {
			return nil, &maindomain.ErrCircuitOpen{Service: ServiceOpenAI}
		}
		return nil, &maindomain.ErrExternalService{Service: ServiceOpenAI, Err: err}
	}

	return ParseReply(ServiceOpenAI, content)
}

// complete performs one HTTP round trip and returns the first choice's content.
// 4xx answers other than 429 are permanent: retrying them cannot succeed.
func (c *OpenAIReplier) complete(ctx context.Context, req *domain.RemoteRequest) (string, error) {
	body, err := json.Marshal(openAIRequest{
		Model: c.cfg.Model,
		Messages: []openAIMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: userContent(req)},
		},
		Temperature:    temperature,
		ResponseFormat: openAIResponseFormat{Type: "json_object"},
	})
	if err != nil {
		return "", resilience.Permanent(fmt.Errorf("marshal completion request: %w", err))
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.BaseURL+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return "", resilience.Permanent(fmt.Errorf("create http request: %w", err))
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("http call to openai: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return "", fmt.Errorf("read completion response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		statusErr := fmt.Errorf("openai /chat/completions returned status %d: %s", resp.StatusCode, strings.TrimSpace(string(raw)))
		if resp.StatusCode >= 400 && resp.StatusCode < 500 && resp.StatusCode != http.StatusTooManyRequests {
			return "", resilience.Permanent(statusErr)
		}
		return "", statusErr
	}

	var completion openAIResponse
	if err := json.Unmarshal(raw, &completion); err != nil {
		return "", resilience.Permanent(fmt.Errorf("decode completion response: %w", err))
	}
	if completion.Error != nil {
		return "", resilience.Permanent(fmt.Errorf("openai error: %s", completion.Error.Message))
	}
	if len(completion.Choices) == 0 {
		return "", resilience.Permanent(fmt.Errorf("openai returned no choices"))
	}

	content := completion.Choices[0].Message.Content
	if content == nil {
		return "", nil
	}
	return *content, nil
}
