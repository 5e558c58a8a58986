package handler_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/memetrics/memetrics-bfa-go/internal/chat/domain"
	"github.com/memetrics/memetrics-bfa-go/internal/chat/handler"
	"github.com/memetrics/memetrics-bfa-go/internal/chat/service"
	maindomain "github.com/memetrics/memetrics-bfa-go/internal/domain"
	"github.com/memetrics/memetrics-bfa-go/internal/infra/observability"
	"github.com/memetrics/memetrics-bfa-go/internal/infra/resilience"
)

type fixedSnapshot struct {
	user domain.UserSnapshot
	err  error
}

func (f fixedSnapshot) Snapshot(context.Context) (domain.UserSnapshot, error) { return f.user, f.err }

type failingReplier struct{}

func (failingReplier) GenerateReply(context.Context, *domain.RemoteRequest) (*domain.RemoteReply, error) {
	return nil, &maindomain.ErrExternalService{Service: "openai", Err: errors.New("dial tcp: connection refused")}
}

func newHandler(remoteEnabled bool, users fixedSnapshot) http.HandlerFunc {
	svc := service.NewChatService(failingReplier{}, nil, resilience.NewBulkhead(2), observability.NewMetrics(),
		service.Config{RemoteEnabled: remoteEnabled, Timeout: time.Second}, zap.NewNop())
	return handler.ChatHandler(svc, users, zap.NewNop())
}

func post(h http.HandlerFunc, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/mitra/chat", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h(rec, req)
	return rec
}

func TestChatHandler_RuleReply(t *testing.T) {
	h := newHandler(false, fixedSnapshot{user: domain.UserSnapshot{ID: "amara", Region: "Asia", DVI: 250}})

	rec := post(h, `{"message":"How do I get a loan?","user_id":"ignored","region":"Mars","dvi":999}`)
	require.Equal(t, http.StatusOK, rec.Code)

	_, err := uuid.Parse(rec.Header().Get(handler.ReplyIDHeader))
	assert.NoError(t, err, "reply id header should be a uuid")

	raw := rec.Body.String()
	assert.NotContains(t, raw, `"detail"`)

	var resp domain.AssistantResponse
	require.NoError(t, json.Unmarshal([]byte(raw), &resp))
	assert.Equal(t, domain.SourceRule, resp.Source)
	assert.Contains(t, resp.Reply, "Hey amara, your DVI is 250")
	assert.Contains(t, resp.Reply, "for Asia.")
	assert.Contains(t, resp.Suggestions, "Only 50 DVI more to unlock the next achievement slot.")
}

func TestChatHandler_RemoteErrorCarriesDetail(t *testing.T) {
	h := newHandler(true, fixedSnapshot{user: domain.UserSnapshot{ID: "mitra", Region: "Global", DVI: 768}})

	rec := post(h, `{"message":"hello"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp domain.AssistantResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, domain.SourceError, resp.Source)
	assert.Contains(t, resp.Detail, "connection refused")
	assert.NotEmpty(t, resp.Reply)
}

func TestChatHandler_BadRequests(t *testing.T) {
	h := newHandler(false, fixedSnapshot{})

	tests := []struct {
		name string
		body string
	}{
		{"whitespace message", `{"message":"   "}`},
		{"empty message", `{"message":""}`},
		{"missing message", `{}`},
		{"not json", `message=hi`},
		{"too long", `{"message":"` + strings.Repeat("a", 2001) + `"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := post(h, tt.body)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Contains(t, rec.Body.String(), `"error"`)
		})
	}
}

func TestChatHandler_SnapshotFailure(t *testing.T) {
	h := newHandler(false, fixedSnapshot{err: errors.New("store unavailable")})

	rec := post(h, `{"message":"hi"}`)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
