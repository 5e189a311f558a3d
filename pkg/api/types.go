package api

import (
	"github.com/XFlexDev/MCPE-AFKBOT-FOR-BEDROCK/pkg/models"
)

const (
	CommandStop       = "stop"
	CommandDisconnect = "disconnect"
	CommandReconnect  = "reconnect"
	CommandChat       = "chat"
)

// CommandRequest is the body of POST /api/chat and every inbound websocket
// frame.
type CommandRequest struct {
	Command string `json:"command,omitempty"`
	Message string `json:"message,omitempty"`
}

// CommandResult is returned for every command.
type CommandResult struct {
	Command string `json:"command"`
	OK      bool   `json:"ok"`
	Outcome string `json:"outcome,omitempty"`
	Error   string `json:"error,omitempty"`
}

// wsMessage is one outbound websocket frame.
type wsMessage struct {
	Type   string                 `json:"type"`
	Stats  *models.StatusSnapshot `json:"stats,omitempty"`
	Result *CommandResult         `json:"result,omitempty"`
}

type configResponse struct {
	Host     string `json:"host"`
	Port     int    `json:"port"`
	Username string `json:"username,omitempty"`
	Offline  bool   `json:"offline"`
}

type errorResponse struct {
	Error string `json:"error"`
}
