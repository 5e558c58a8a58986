// Package port defines the ports the Mitra chat service depends on.
//
// Following the hexagonal layout of the rest of the BFA, ChatService only knows
// these interfaces; the OpenAI and Gemini clients in chat/infra implement them.
package port

import (
	"context"

	chatdomain "github.com/memetrics/memetrics-bfa-go/internal/chat/domain"
)

// RemoteReplier asks an external language model for a structured Mitra reply.
//
// Implementations must return:
//   - *domain.ErrNotConfigured when no credential/client is available,
//   - *domain.ErrCircuitOpen when the breaker refuses the call,
//   - *domain.ErrMalformedReply when the provider payload is not the JSON we asked for,
//   - *domain.ErrExternalService for any transport failure.
type RemoteReplier interface {
	GenerateReply(ctx context.Context, req *chatdomain.RemoteRequest) (*chatdomain.RemoteReply, error)
}

// SnapshotProvider supplies the current user snapshot.
type SnapshotProvider interface {
	Snapshot(ctx context.Context) (chatdomain.UserSnapshot, error)
}
