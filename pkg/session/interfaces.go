package session

import (
	"context"

	"github.com/XFlexDev/MCPE-AFKBOT-FOR-BEDROCK/pkg/models"
)

//go:generate mockgen -destination=mock_session.go -package=session github.com/XFlexDev/MCPE-AFKBOT-FOR-BEDROCK/pkg/session Dialer,Client,Observer

// Dialer instantiates a protocol client for the endpoint. Open must not
// block on the network; connecting happens in Client.Run.
type Dialer interface {
	Open(endpoint models.Endpoint) (Client, error)
}

// Client is one protocol connection. Run connects, reports lifecycle
// signals on events until the connection ends, and must stop sending once
// ctx is done.
type Client interface {
	Run(ctx context.Context, events chan<- Event)
	Move(m Movement) error
	Chat(message string) error
	Close() error
}

// Observer receives every state the controller moves through, in order.
// Observers are called with the controller lock held and must not call
// back into the controller.
type Observer interface {
	SessionChanged(state models.SessionState)
	ChatReceived(entry models.ChatEntry)
}
