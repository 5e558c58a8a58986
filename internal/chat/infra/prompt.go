package infra

import (
	"fmt"

	"github.com/memetrics/memetrics-bfa-go/internal/chat/domain"
)

// systemPrompt is sent as the system instruction to every provider.
const systemPrompt = `You are Mitra, a warm, practical career and opportunity coach inside the MeMetrics app.
Return concise, supportive, actionable replies.
Always respond in strict JSON with:
- reply: string
- suggestions: list of up to 4 strings.
`

// temperature is shared by all providers.
const temperature = 0.6

// userContent renders the single user turn: a one-line context header followed by the message.
func userContent(req *domain.RemoteRequest) string {
	return fmt.Sprintf("User: %s | Region: %s | DVI: %d. Message: %s",
		req.UserID, req.Region, req.DVI, req.Message)
}
