package infra

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"google.golang.org/genai"

	maindomain "github.com/memetrics/memetrics-bfa-go/internal/domain"
	"github.com/memetrics/memetrics-bfa-go/internal/infra/resilience"
)

type fakeModels struct {
	text string
	err  error

	gotModel  string
	gotConfig *genai.GenerateContentConfig
	gotText   string
}

func (f *fakeModels) GenerateContent(_ context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error) {
	f.gotModel = model
	f.gotConfig = config
	if len(contents) > 0 && len(contents[0].Parts) > 0 {
		f.gotText = contents[0].Parts[0].Text
	}
	if f.err != nil {
		return nil, f.err
	}
	return &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{{Content: genai.NewContentFromText(f.text, genai.RoleModel)}},
	}, nil
}

func newTestGemini(models contentGenerator) *GeminiReplier {
	return newGeminiReplier(models, "gemini-2.5-flash",
		resilience.NewCircuitBreaker("gemini-test", zap.NewNop()),
		resilience.Config{InitialBackoff: time.Millisecond},
	)
}

func TestGeminiReplier_Success(t *testing.T) {
	fake := &fakeModels{text: `{"reply":"Ask a sponsor","suggestions":["x"]}`}

	reply, err := newTestGemini(fake).GenerateReply(context.Background(), testRequest)
	require.NoError(t, err)
	assert.Equal(t, "Ask a sponsor", reply.Reply)
	assert.Equal(t, []string{"x"}, reply.Suggestions)

	assert.Equal(t, "gemini-2.5-flash", fake.gotModel)
	assert.Equal(t, "application/json", fake.gotConfig.ResponseMIMEType)
	require.NotNil(t, fake.gotConfig.Temperature)
	assert.InDelta(t, 0.6, *fake.gotConfig.Temperature, 1e-6)
	assert.Equal(t, "User: amara | Region: Asia | DVI: 250. Message: need a loan", fake.gotText)
}

func TestGeminiReplier_TransportError(t *testing.T) {
	fake := &fakeModels{err: errors.New("quota exceeded")}

	_, err := newTestGemini(fake).GenerateReply(context.Background(), testRequest)

	var ext *maindomain.ErrExternalService
	require.True(t, errors.As(err, &ext))
	assert.Equal(t, ServiceGemini, ext.Service)
}

func TestNewGeminiReplier_NoKey(t *testing.T) {
	_, err := NewGeminiReplier(context.Background(), GeminiConfig{Model: "gemini-2.5-flash"}, nil, resilience.Config{})

	var notConfigured *maindomain.ErrNotConfigured
	require.True(t, errors.As(err, &notConfigured))
}

func TestUnavailableReplier(t *testing.T) {
	_, err := UnavailableReplier{Service: ServiceGemini, Reason: "client init failed"}.GenerateReply(context.Background(), testRequest)

	var notConfigured *maindomain.ErrNotConfigured
	require.True(t, errors.As(err, &notConfigured))
	assert.Contains(t, err.Error(), "client init failed")
}
