package integration_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	chatdomain "github.com/memetrics/memetrics-bfa-go/internal/chat/domain"
	chatinfra "github.com/memetrics/memetrics-bfa-go/internal/chat/infra"
	chatservice "github.com/memetrics/memetrics-bfa-go/internal/chat/service"
	"github.com/memetrics/memetrics-bfa-go/internal/domain"
	"github.com/memetrics/memetrics-bfa-go/internal/handler"
	"github.com/memetrics/memetrics-bfa-go/internal/infra/cache"
	"github.com/memetrics/memetrics-bfa-go/internal/infra/memory"
	"github.com/memetrics/memetrics-bfa-go/internal/infra/observability"
	"github.com/memetrics/memetrics-bfa-go/internal/infra/resilience"
	"github.com/memetrics/memetrics-bfa-go/internal/service"

	"go.uber.org/zap"
)

// newApp wires the whole backend against an OpenAI-compatible mock at baseURL.
func newApp(t *testing.T, baseURL, apiKey string) (http.Handler, *observability.Metrics) {
	t.Helper()
	logger := zap.NewNop()
	metrics := observability.NewMetrics()
	store := memory.NewStore(memory.DefaultSequences, nil)

	cb := resilience.NewCircuitBreaker("test-"+t.Name(), logger)
	cfg := resilience.Config{MaxRetries: 1, InitialBackoff: 10 * time.Millisecond, MaxConcurrency: 10}
	httpClient := &http.Client{Timeout: 5 * time.Second}

	remote := chatinfra.NewOpenAIReplier(httpClient, chatinfra.OpenAIConfig{
		APIKey:  apiKey,
		Model:   "gpt-4o-mini",
		BaseURL: baseURL,
	}, cb, cfg)

	replyCache := cache.New[chatdomain.RemoteReply](time.Minute)
	t.Cleanup(func() { _ = replyCache.Close() })

	chat := chatservice.NewChatService(remote, replyCache, resilience.NewBulkhead(cfg.MaxConcurrency), metrics,
		chatservice.Config{RemoteEnabled: true, Timeout: 3 * time.Second}, logger)

	router := handler.NewRouter(handler.Services{
		Store:   store,
		Login:   service.NewLoginService(store, logger),
		Feed:    service.NewFeedService(store, logger),
		Profile: service.NewProfileService(store, metrics, logger),
		Content: service.NewContentService(store),
		Chat:    chat,
	}, handler.Options{CORSOrigins: []string{"*"}}, metrics, logger)

	return router, metrics
}

func completion(content string) []byte {
	b, _ := json.Marshal(map[string]any{
		"choices": []any{
			map[string]any{"message": map[string]any{"role": "assistant", "content": content}},
		},
	})
	return b
}

func chat(t *testing.T, router http.Handler, message string) chatdomain.AssistantResponse {
	t.Helper()
	body, _ := json.Marshal(chatdomain.ChatRequest{Message: message})
	req := httptest.NewRequest(http.MethodPost, "/api/mitra/chat", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d. Body: %s", rec.Code, rec.Body.String())
	}
	if rec.Header().Get("X-Mitra-Reply-Id") == "" {
		t.Error("expected reply id header")
	}

	var result chatdomain.AssistantResponse
	if err := json.NewDecoder(rec.Body).Decode(&result); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	return result
}

// TestIntegration_RemoteReply runs a chat turn through the full stack against a mock model.
func TestIntegration_RemoteReply(t *testing.T) {
	var calls atomic.Int32
	var userContent atomic.Value
	llm := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		raw, _ := io.ReadAll(r.Body)
		userContent.Store(string(raw))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write(completion(`{"reply":"Apply to the EU fellowship this week.","suggestions":["Fellowship","Mentors","Loans","Budget","Extra"]}`))
	}))
	defer llm.Close()

	router, metrics := newApp(t, llm.URL, "sk-test")

	result := chat(t, router, "What should I do next?")
	if result.Source != chatdomain.SourceRemote {
		t.Fatalf("expected source remote, got %q (detail %q)", result.Source, result.Detail)
	}
	if result.Reply != "Apply to the EU fellowship this week." {
		t.Errorf("unexpected reply: %q", result.Reply)
	}
	if len(result.Suggestions) != chatdomain.MaxSuggestions {
		t.Errorf("expected %d suggestions, got %v", chatdomain.MaxSuggestions, result.Suggestions)
	}
	if sent, _ := userContent.Load().(string); !strings.Contains(sent, "User: mitra") {
		t.Errorf("expected store user in prompt, got %s", sent)
	}

	// Same question again is served from the reply cache.
	_ = chat(t, router, "what should i do next?")
	if calls.Load() != 1 {
		t.Errorf("expected 1 upstream call, got %d", calls.Load())
	}

	snap := metrics.GetMitraSnapshot()
	if snap.TotalReplies != 2 || snap.BySource["remote"] != 2 {
		t.Errorf("unexpected metrics: %+v", snap)
	}

	fmt.Printf("✅ Integration test passed: %s\n", result.Reply)
}

// TestIntegration_UpstreamFailure checks the rule fallback carries the failure detail.
func TestIntegration_UpstreamFailure(t *testing.T) {
	llm := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer llm.Close()

	router, metrics := newApp(t, llm.URL, "sk-test")

	result := chat(t, router, "sponsor tips?")
	if result.Source != chatdomain.SourceError {
		t.Fatalf("expected source error, got %q", result.Source)
	}
	if result.Detail == "" {
		t.Error("expected detail on error replies")
	}
	if result.Reply == "" || len(result.Suggestions) == 0 {
		t.Error("expected a rule reply with suggestions")
	}

	if snap := metrics.GetMitraSnapshot(); snap.ErrorRate != 1 {
		t.Errorf("expected error rate 1, got %v", snap.ErrorRate)
	}
}

// TestIntegration_MissingKey answers from the rule engine without calling out.
func TestIntegration_MissingKey(t *testing.T) {
	var calls atomic.Int32
	llm := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
	}))
	defer llm.Close()

	router, _ := newApp(t, llm.URL, "")

	result := chat(t, router, "help")
	if result.Source != chatdomain.SourceFallback {
		t.Errorf("expected source fallback, got %q", result.Source)
	}
	if result.Detail != "" {
		t.Errorf("fallback should not carry detail, got %q", result.Detail)
	}
	if calls.Load() != 0 {
		t.Errorf("expected no upstream calls, got %d", calls.Load())
	}
}

// TestIntegration_EmptyRemoteReply treats an empty model answer as a fallback.
func TestIntegration_EmptyRemoteReply(t *testing.T) {
	llm := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write(completion(`{"reply":"   ","suggestions":[]}`))
	}))
	defer llm.Close()

	router, _ := newApp(t, llm.URL, "sk-test")

	if result := chat(t, router, "loan?"); result.Source != chatdomain.SourceFallback {
		t.Errorf("expected source fallback, got %q", result.Source)
	}
}

// TestIntegration_FeedRoundTrip posts to the feed and reads it back.
func TestIntegration_FeedRoundTrip(t *testing.T) {
	router, _ := newApp(t, "http://127.0.0.1:0", "")

	body := []byte(`{"user_id":"amara","text":"Got my first sponsor!"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/feed", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/feed", nil))

	var feed domain.ItemsResponse[domain.Post]
	if err := json.NewDecoder(rec.Body).Decode(&feed); err != nil {
		t.Fatalf("failed to decode feed: %v", err)
	}
	if len(feed.Items) == 0 || feed.Items[0].Text != "Got my first sponsor!" {
		t.Errorf("expected new post first, got %+v", feed.Items)
	}
}
