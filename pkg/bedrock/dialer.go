// Package bedrock adapts gophertunnel to the session controller.
package bedrock

import (
	"context"

	"github.com/XFlexDev/MCPE-AFKBOT-FOR-BEDROCK/pkg/models"
	"github.com/XFlexDev/MCPE-AFKBOT-FOR-BEDROCK/pkg/session"
	"github.com/sandertv/gophertunnel/minecraft"
	"github.com/sandertv/gophertunnel/minecraft/protocol/login"
	"go.uber.org/zap"
	"golang.org/x/oauth2"
)

// Dialer builds gophertunnel clients. Online endpoints authenticate through
// tokens; offline endpoints log in with the configured display name.
type Dialer struct {
	tokens oauth2.TokenSource
	logger *zap.Logger
}

func NewDialer(tokens oauth2.TokenSource, logger *zap.Logger) *Dialer {
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Dialer{tokens: tokens, logger: logger}
}

func (d *Dialer) Open(endpoint models.Endpoint) (session.Client, error) {
	md := minecraft.Dialer{}

	if endpoint.Offline {
		if endpoint.Username == "" {
			return nil, errNoUsername
		}

		md.IdentityData = login.IdentityData{DisplayName: endpoint.Username}
	} else {
		if d.tokens == nil {
			return nil, errNoTokenSource
		}

		md.TokenSource = d.tokens
	}

	addr := endpoint.Address()
	dial := func(ctx context.Context) (conn, error) {
		cn, err := md.DialContext(ctx, "raknet", addr)
		if err != nil {
			return nil, err
		}

		return cn, nil
	}

	return newClient(addr, dial, d.logger.With(zap.String("endpoint", addr))), nil
}
