package notifications

import (
	"context"

	"go.uber.org/zap"

	"fieldops/internal/usecase/interfaces"
)

// LogNotifier only logs; it is used when no push transport is configured.
type LogNotifier struct {
	log *zap.Logger
}

var _ interfaces.INotifier = (*LogNotifier)(nil)

func NewLogNotifier(logger *zap.Logger) *LogNotifier {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &LogNotifier{log: logger}
}

func (n *LogNotifier) Notify(_ context.Context, msg interfaces.Notification) error {
	n.log.Debug("notification",
		zap.String("kind", msg.Kind),
		zap.String("tenant_id", msg.TenantID),
		zap.String("entity_id", msg.EntityID),
		zap.String("recipient_id", msg.RecipientID),
	)
	return nil
}
