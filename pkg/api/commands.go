package api

import (
	"context"

	"github.com/XFlexDev/MCPE-AFKBOT-FOR-BEDROCK/pkg/session"
	"go.uber.org/zap"
)

const reasonDashboard = "dashboard disconnect"

// runCommand executes one dashboard command. Reconnect runs detached from
// the request so a client hanging up does not cancel the new session.
func (s *APIServer) runCommand(ctx context.Context, command, message string) CommandResult {
	res := CommandResult{Command: command}

	switch command {
	case CommandStop:
		s.sessions.StopActions()
		res.OK = true

	case CommandDisconnect:
		res.OK = true
		if !s.sessions.Stop(reasonDashboard) {
			res.Outcome = "no session"
		}

	case CommandReconnect:
		ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), commandTimeout)
		defer cancel()

		if err := s.sessions.Reconnect(ctx); err != nil {
			s.logger.Warn("Reconnect failed", zap.Error(err))
			res.Error = err.Error()

			return res
		}

		res.OK = true

	case CommandChat:
		out := s.sessions.Chat(message)
		res.OK = out == session.Sent
		res.Outcome = out.String()

	default:
		res.Error = errUnknownCommand.Error()
		return res
	}

	s.logger.Info("Dashboard command", zap.String("command", command), zap.Bool("ok", res.OK))

	return res
}
