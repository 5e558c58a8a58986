package infra

import (
	"context"

	"github.com/memetrics/memetrics-bfa-go/internal/chat/domain"
	maindomain "github.com/memetrics/memetrics-bfa-go/internal/domain"
)

// UnavailableReplier stands in for a provider whose client could not be built.
// Every call returns *ErrNotConfigured, so the chat service answers from the rule engine.
type UnavailableReplier struct {
	Service string
	Reason  string
}

func (u UnavailableReplier) GenerateReply(context.Context, *domain.RemoteRequest) (*domain.RemoteReply, error) {
	return nil, &maindomain.ErrNotConfigured{Service: u.Service, Reason: u.Reason}
}
