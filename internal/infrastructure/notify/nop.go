package notify

import (
	"context"

	"alumninet/internal/core/domain"
	"alumninet/internal/core/ports"
)

// NopNotifier drops every event. Used when no event bus is configured.
type NopNotifier struct{}

var _ ports.Notifier = NopNotifier{}

func (NopNotifier) MessageCreated(ctx context.Context, msg *domain.Message) error {
	return nil
}
