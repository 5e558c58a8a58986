package infra

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/memetrics/memetrics-bfa-go/internal/chat/domain"
	maindomain "github.com/memetrics/memetrics-bfa-go/internal/domain"
)

const (
	// emptyPayload stands in for a provider answer with no content.
	emptyPayload = `{"reply":"(empty)","suggestions":["+50 plan"]}`

	defaultReply = "Sorry, something went wrong."
)

var defaultSuggestions = []string{"+50 plan", "Match opps"}

// ParseReply normalises a provider's raw text into a RemoteReply.
//
//   - blank text is treated as emptyPayload
//   - text that is not a JSON object yields *ErrMalformedReply
//   - a missing "reply" becomes defaultReply; null becomes "" so the caller falls back
//   - a missing or null "suggestions" becomes defaultSuggestions; a scalar becomes a one-item list
//   - suggestions are capped at domain.MaxSuggestions
func ParseReply(service, text string) (*domain.RemoteReply, error) {
	if strings.TrimSpace(text) == "" {
		text = emptyPayload
	}

	var raw map[string]any
	if err := json.Unmarshal([]byte(text), &raw); err != nil {
		return nil, &maindomain.ErrMalformedReply{Service: service, Err: err}
	}
	if raw == nil {
		return nil, &maindomain.ErrMalformedReply{Service: service, Err: errors.New("payload is not a JSON object")}
	}

	out := &domain.RemoteReply{Reply: defaultReply}
	if v, ok := raw["reply"]; ok {
		out.Reply = stringify(v)
	}

	switch v := raw["suggestions"].(type) {
	case nil: // absent and explicit null both get the defaults
		out.Suggestions = append([]string(nil), defaultSuggestions...)
	case []any:
		out.Suggestions = make([]string, 0, len(v))
		for _, item := range v {
			out.Suggestions = append(out.Suggestions, stringify(item))
		}
	default:
		out.Suggestions = []string{stringify(v)}
	}

	if len(out.Suggestions) > domain.MaxSuggestions {
		out.Suggestions = out.Suggestions[:domain.MaxSuggestions]
	}
	return out, nil
}

func stringify(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(t)
	default:
		b, err := json.Marshal(t)
		if err != nil {
			return fmt.Sprint(t)
		}
		return string(b)
	}
}
