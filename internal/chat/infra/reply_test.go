package infra

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	maindomain "github.com/memetrics/memetrics-bfa-go/internal/domain"
)

func TestParseReply(t *testing.T) {
	tests := []struct {
		name        string
		text        string
		reply       string
		suggestions []string
	}{
		{
			name:        "well formed",
			text:        `{"reply":"Keep going","suggestions":["a","b"]}`,
			reply:       "Keep going",
			suggestions: []string{"a", "b"},
		},
		{
			name:        "blank body uses the empty payload",
			text:        "  ",
			reply:       "(empty)",
			suggestions: []string{"+50 plan"},
		},
		{
			name:        "missing reply",
			text:        `{"suggestions":["a"]}`,
			reply:       "Sorry, something went wrong.",
			suggestions: []string{"a"},
		},
		{
			name:        "missing suggestions",
			text:        `{"reply":"hi"}`,
			reply:       "hi",
			suggestions: []string{"+50 plan", "Match opps"},
		},
		{
			name:        "scalar suggestions",
			text:        `{"reply":"hi","suggestions":"just one"}`,
			reply:       "hi",
			suggestions: []string{"just one"},
		},
		{
			name:        "non-string items",
			text:        `{"reply":42,"suggestions":[1,true,"x"]}`,
			reply:       "42",
			suggestions: []string{"1", "true", "x"},
		},
		{
			name:        "truncated to four",
			text:        `{"reply":"hi","suggestions":["1","2","3","4","5","6"]}`,
			reply:       "hi",
			suggestions: []string{"1", "2", "3", "4"},
		},
		{
			name:        "null reply is empty",
			text:        `{"reply":null,"suggestions":[]}`,
			reply:       "",
			suggestions: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseReply("test", tt.text)
			require.NoError(t, err)
			assert.Equal(t, tt.reply, got.Reply)
			assert.Equal(t, tt.suggestions, got.Suggestions)
		})
	}
}

func TestParseReply_Malformed(t *testing.T) {
	for _, text := range []string{"not json", `["a","b"]`, `{"reply":`, "null", " null "} {
		_, err := ParseReply("openai", text)

		var malformed *maindomain.ErrMalformedReply
		require.True(t, errors.As(err, &malformed), "text %q should be malformed, got %v", text, err)
		assert.Equal(t, "openai", malformed.Service)
	}
}
