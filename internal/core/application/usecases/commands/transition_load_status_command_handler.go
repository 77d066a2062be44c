package commands

import (
	"context"
	"log/slog"

	"tms/internal/core/domain/events"
	"tms/internal/core/ports"
)

// TransitionLoadStatusCommandHandler applies a status change with a
// version checked update. Disallowed edges, including any attempt to enter
// dispatched without an assignment, fail with a BusinessLogicError.
type TransitionLoadStatusCommandHandler struct {
	uowFactory LoadUoWFactory
	metrics    ports.DispatchMetrics
	notifier   notifier
}

func NewTransitionLoadStatusCommandHandler(
	uowFactory LoadUoWFactory,
	publisher ports.EventPublisher,
	metrics ports.DispatchMetrics,
	logger *slog.Logger,
) TransitionLoadStatusCommandHandler {
	return TransitionLoadStatusCommandHandler{
		uowFactory: uowFactory,
		metrics:    metrics,
		notifier:   newNotifier(publisher, logger),
	}
}

func (h TransitionLoadStatusCommandHandler) Handle(ctx context.Context, cmd TransitionLoadStatusCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	loadRepo := uow.LoadRepository()

	l, err := loadRepo.Get(ctx, cmd.CompanyID(), cmd.LoadID())
	if err != nil {
		return err
	}

	from := l.Status()
	if err = l.TransitionTo(cmd.Status()); err != nil {
		return err
	}

	if err = loadRepo.Update(ctx, l); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.metrics.LoadStatusChanged(from.String(), l.Status().String())
	h.notifier.publish(ctx, events.NewLoadStatusChanged(l, from))
	return nil
}
