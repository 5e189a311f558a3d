package alerts

import "context"

//go:generate mockgen -destination=mock_alerts.go -package=alerts github.com/XFlexDev/MCPE-AFKBOT-FOR-BEDROCK/pkg/alerts AlertService

// AlertService is one outbound alert transport.
type AlertService interface {
	Alert(ctx context.Context, alert *WebhookAlert) error
	IsEnabled() bool
}
