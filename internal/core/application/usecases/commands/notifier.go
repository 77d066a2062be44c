package commands

import (
	"context"
	"log/slog"

	"tms/internal/core/domain/events"
	"tms/internal/core/ports"
)

// notifier delivers events once the transaction is committed. A delivery
// failure cannot undo the commit, so it is logged and not returned.
type notifier struct {
	publisher ports.EventPublisher
	logger    *slog.Logger
}

func newNotifier(publisher ports.EventPublisher, logger *slog.Logger) notifier {
	if logger == nil {
		logger = slog.Default()
	}
	return notifier{publisher: publisher, logger: logger}
}

func (n notifier) publish(ctx context.Context, evts ...events.Event) {
	if n.publisher == nil || len(evts) == 0 {
		return
	}
	if err := n.publisher.Publish(ctx, evts...); err != nil {
		n.logger.ErrorContext(ctx, "failed to publish events",
			"type", string(evts[0].EventType()),
			"key", evts[0].Key(),
			"count", len(evts),
			"error", err,
		)
	}
}
