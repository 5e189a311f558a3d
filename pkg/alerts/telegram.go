package alerts

import (
	"encoding/json"
	"fmt"
	"strings"

	"go.uber.org/zap"
)

const DefaultTelegramAPIBase = "https://api.telegram.org"

const telegramTemplate = `{
  "chat_id": %s,
  "text": {{json (printf "%%s\n%%s" .alert.Title .alert.Message)}},
  "disable_web_page_preview": true
}`

// NewTelegramAlerter sends alerts through the Bot API sendMessage method.
// apiBase may be empty to use the public API.
func NewTelegramAlerter(apiBase, token, chatID string, logger *zap.Logger) *WebhookAlerter {
	if apiBase == "" {
		apiBase = DefaultTelegramAPIBase
	}

	chat, _ := json.Marshal(chatID)

	return NewWebhookAlerter(WebhookConfig{
		Enabled:  token != "" && chatID != "",
		URL:      fmt.Sprintf("%s/bot%s/sendMessage", strings.TrimRight(apiBase, "/"), token),
		Template: fmt.Sprintf(telegramTemplate, chat),
	}, logger)
}
