package commands

import (
	"context"
	"errors"
	"log/slog"

	"tms/internal/core/domain/events"
	"tms/internal/core/domain/model/load"
	"tms/internal/core/ports"
	"tms/internal/pkg/errs"
)

// CreateLoadCommandHandler persists a new pending, unassigned load after
// checking that the referenced customer exists in the same company.
type CreateLoadCommandHandler struct {
	uowFactory LoadUoWFactory
	metrics    ports.DispatchMetrics
	notifier   notifier
}

func NewCreateLoadCommandHandler(
	uowFactory LoadUoWFactory,
	publisher ports.EventPublisher,
	metrics ports.DispatchMetrics,
	logger *slog.Logger,
) CreateLoadCommandHandler {
	return CreateLoadCommandHandler{
		uowFactory: uowFactory,
		metrics:    metrics,
		notifier:   newNotifier(publisher, logger),
	}
}

// Handle returns a ValidationError for bad input or an unknown customer.
func (h CreateLoadCommandHandler) Handle(ctx context.Context, cmd CreateLoadCommand) error {
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

	customerRepo := uow.CustomerRepository()
	loadRepo := uow.LoadRepository()

	customerID := cmd.CustomerID()
	if _, err := customerRepo.Get(ctx, cmd.CompanyID(), customerID); err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return errs.NewValueIsInvalidErrorWithCause("customer_id", err)
		}
		return err
	}

	details := cmd.Details()
	l, err := load.NewLoad(
		cmd.LoadID(),
		cmd.CompanyID(),
		details.LoadNumber,
		cmd.LoadType(),
		cmd.Schedule(),
		&customerID,
		details.Cargo,
	)
	if err != nil {
		return err
	}
	l.SetReferences(details.ReferenceNumber, details.BOLNumber)

	if err = loadRepo.Add(ctx, l); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.metrics.LoadCreated()
	h.notifier.publish(ctx, events.NewLoadCreated(l))
	return nil
}
