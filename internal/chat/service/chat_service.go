// Package service implements the Mitra reply engine: tier classification, the
// deterministic rule engine and the ChatService that orchestrates the remote model.
//
// Fluxo do ChatService.GenerateReply:
//  1. Mensagem vazia (após trim) → *ErrValidation, único erro que sobe ao handler
//  2. Remote desligado → resposta do rule engine, source "rule"
//  3. Remote ligado → cache, bulkhead e timeout; o erro é classificado em
//     classifyRemoteError ("fallback" ou "error")
//  4. Resposta remota vazia ou falha → rule engine preenche reply e suggestions
package service

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/memetrics/memetrics-bfa-go/internal/chat/domain"
	"github.com/memetrics/memetrics-bfa-go/internal/chat/port"
	maindomain "github.com/memetrics/memetrics-bfa-go/internal/domain"
	"github.com/memetrics/memetrics-bfa-go/internal/infra/observability"
	"github.com/memetrics/memetrics-bfa-go/internal/infra/resilience"
	mainport "github.com/memetrics/memetrics-bfa-go/internal/port"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"
)

// chatTracer é o tracer OpenTelemetry para o módulo de chat.
var chatTracer = otel.Tracer("chat/service")

// replyCacheName labels cache hit/miss metrics for memoised remote replies.
const replyCacheName = "mitra_reply"

// Config controls the remote path of the ChatService.
type Config struct {
	// RemoteEnabled is true when the selected provider has a credential.
	RemoteEnabled bool
	// Timeout bounds one remote attempt, bulkhead wait included.
	Timeout time.Duration
}

// ChatService é o orquestrador da rota POST /api/mitra/chat.
type ChatService struct {
	remote   port.RemoteReplier
	cache    mainport.Cache[domain.RemoteReply] // optional
	bulkhead *resilience.Bulkhead
	metrics  *observability.Metrics
	cfg      Config
	logger   *zap.Logger
}

func NewChatService(
	remote port.RemoteReplier,
	replyCache mainport.Cache[domain.RemoteReply],
	bulkhead *resilience.Bulkhead,
	metrics *observability.Metrics,
	cfg Config,
	logger *zap.Logger,
) *ChatService {
	if cfg.Timeout <= 0 {
		cfg.Timeout = 20 * time.Second
	}
	if bulkhead == nil {
		bulkhead = resilience.NewBulkhead(1)
	}
	return &ChatService{
		remote:   remote,
		cache:    replyCache,
		bulkhead: bulkhead,
		metrics:  metrics,
		cfg:      cfg,
		logger:   logger,
	}
}

// GenerateReply always returns a non-empty reply with at most four suggestions,
// unless the trimmed message is empty.
func (s *ChatService) GenerateReply(ctx context.Context, message string, user domain.UserSnapshot) (*domain.AssistantResponse, error) {
	ctx, span := chatTracer.Start(ctx, "ChatService.GenerateReply")
	defer span.End()

	message = strings.TrimSpace(message)
	if message == "" {
		return nil, &maindomain.ErrValidation{Field: "message", Message: "Message cannot be empty"}
	}

	start := time.Now()
	logger := observability.LoggerFromContext(ctx, s.logger)

	resp := &domain.AssistantResponse{Source: domain.SourceRule}

	if s.cfg.RemoteEnabled && s.remote != nil {
		reply, err := s.attemptRemote(ctx, remoteRequest(message, user))
		resp.Source = classifyRemoteError(err)

		switch resp.Source {
		case domain.SourceRemote:
			resp.Reply = reply.Reply
			resp.Suggestions = reply.Suggestions
		case domain.SourceFallback:
			logger.Warn("mitra remote unavailable, using rule engine", zap.Error(err))
		case domain.SourceError:
			resp.Detail = err.Error()
			logger.Error("mitra remote failed, using rule engine", zap.Error(err))
		}
	}

	if strings.TrimSpace(resp.Reply) == "" {
		if resp.Source == domain.SourceRemote {
			resp.Source = domain.SourceFallback
		}
		resp.Reply, resp.Suggestions = RuleReply(message, user)
	}

	if resp.Suggestions == nil {
		resp.Suggestions = []string{}
	}
	if len(resp.Suggestions) > domain.MaxSuggestions {
		resp.Suggestions = resp.Suggestions[:domain.MaxSuggestions]
	}

	span.SetAttributes(attribute.String("mitra.source", string(resp.Source)))
	if s.metrics != nil {
		s.metrics.IncrReply(string(resp.Source))
		s.metrics.RecordRequestDuration("mitra_reply", time.Since(start))
	}
	logger.Info("mitra reply",
		zap.String("source", string(resp.Source)),
		zap.Int("suggestions", len(resp.Suggestions)),
		zap.Duration("latency", time.Since(start)),
	)

	return resp, nil
}

// classifyRemoteError maps the outcome of a remote attempt to a reply source.
// A missing credential or an open breaker means the remote is unavailable;
// everything else is a failure worth surfacing in Detail.
func classifyRemoteError(err error) domain.Source {
	if err == nil {
		return domain.SourceRemote
	}

	var notConfigured *maindomain.ErrNotConfigured
	var circuitOpen *maindomain.ErrCircuitOpen
	switch {
	case errors.As(err, &notConfigured), errors.As(err, &circuitOpen):
		return domain.SourceFallback
	default:
		return domain.SourceError
	}
}

type remoteResult struct {
	reply *domain.RemoteReply
	err   error
}

// attemptRemote runs one provider call on its own goroutine and gives up at cfg.Timeout.
// The goroutine owns the bulkhead slot and exits once the provider honours ctx.
func (s *ChatService) attemptRemote(ctx context.Context, req *domain.RemoteRequest) (*domain.RemoteReply, error) {
	ctx, cancel := context.WithTimeout(ctx, s.cfg.Timeout)
	defer cancel()

	key := cacheKey(req)
	if s.cache != nil {
		if cached, ok := s.cache.Get(ctx, key); ok {
			s.incrCache(true)
			cached.Suggestions = append([]string(nil), cached.Suggestions...)
			return &cached, nil
		}
		s.incrCache(false)
	}

	if err := s.bulkhead.Acquire(ctx); err != nil {
		return nil, &maindomain.ErrTimeout{Operation: "mitra remote (waiting for a free slot)"}
	}

	results := make(chan remoteResult, 1)
	go func() {
		defer s.bulkhead.Release()
		reply, err := s.remote.GenerateReply(ctx, req)
		results <- remoteResult{reply: reply, err: err}
	}()

	select {
	case res := <-results:
		if res.err != nil {
			if errors.Is(res.err, context.DeadlineExceeded) {
				return nil, &maindomain.ErrTimeout{Operation: "mitra remote"}
			}
			return nil, res.err
		}
		if res.reply == nil {
			return &domain.RemoteReply{}, nil
		}
		if s.cache != nil && strings.TrimSpace(res.reply.Reply) != "" {
			s.cache.Set(ctx, key, *res.reply)
		}
		return res.reply, nil
	case <-ctx.Done():
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return nil, &maindomain.ErrTimeout{Operation: "mitra remote"}
		}
		return nil, fmt.Errorf("mitra remote: %w", ctx.Err())
	}
}

func (s *ChatService) incrCache(hit bool) {
	if s.metrics == nil {
		return
	}
	if hit {
		s.metrics.IncrCacheHit(replyCacheName)
	} else {
		s.metrics.IncrCacheMiss(replyCacheName)
	}
}

func remoteRequest(message string, user domain.UserSnapshot) *domain.RemoteRequest {
	req := &domain.RemoteRequest{
		Message: message,
		UserID:  user.ID,
		Region:  user.Region,
		DVI:     user.DVI,
	}
	if req.UserID == "" {
		req.UserID = defaultUserID
	}
	if req.Region == "" {
		req.Region = domain.DefaultRegion
	}
	return req
}

// cacheKey identifies a remote request; the same user state and message map to the same reply.
func cacheKey(req *domain.RemoteRequest) string {
	sum := sha256.Sum256([]byte(fmt.Sprintf("%s|%s|%d|%s", req.UserID, req.Region, req.DVI, strings.ToLower(req.Message))))
	return hex.EncodeToString(sum[:])
}
