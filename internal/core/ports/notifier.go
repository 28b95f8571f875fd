package ports

import (
	"context"

	"alumninet/internal/core/domain"
)

// Notifier is the outbound real-time collaborator. The core's contract is
// publish-after-persist only; delivery is not guaranteed.
type Notifier interface {
	MessageCreated(ctx context.Context, msg *domain.Message) error
}
