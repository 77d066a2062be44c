package ports

import (
	"context"

	"tms/internal/core/domain/events"
)

// EventPublisher delivers domain events after the transaction that produced
// them has committed. Delivery is at most once.
type EventPublisher interface {
	Publish(ctx context.Context, evts ...events.Event) error
}
