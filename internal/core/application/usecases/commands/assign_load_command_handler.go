package commands

import (
	"context"
	"errors"
	"log/slog"

	"tms/internal/core/domain/events"
	"tms/internal/core/domain/model/equipment"
	"tms/internal/core/domain/model/kernel"
	"tms/internal/core/domain/services"
	"tms/internal/core/ports"
	"tms/internal/pkg/errs"
)

// AssignLoadCommandHandler is the dispatch assignment engine. Within one
// transaction it loads the load and its candidate resources from the acting
// company, enforces eligibility, assigns, and writes the load back guarded by
// its version.
//
// Example:
//
//	handler := NewAssignLoadCommandHandler(uowFactory, publisher, metrics, logger)
//	cmd, _ := NewAssignLoadCommand(companyID, loadID, driverID, truckID, nil)
//
//	err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, errs.ErrObjectNotFound):
//	    // no such load in the company, nothing was written
//	case errors.Is(err, errs.ErrConcurrentModification):
//	    // another writer updated the load first
//	case errs.IsValidation(err):
//	    // unknown or foreign driver/equipment, wrong equipment kind
//	case errors.Is(err, errs.ErrBusinessRuleViolated):
//	    // ineligible driver or equipment, load not assignable in its status
//	}
type AssignLoadCommandHandler struct {
	uowFactory DispatchUoWFactory
	checker    services.EligibilityChecker
	metrics    ports.DispatchMetrics
	notifier   notifier
}

func NewAssignLoadCommandHandler(
	uowFactory DispatchUoWFactory,
	publisher ports.EventPublisher,
	metrics ports.DispatchMetrics,
	logger *slog.Logger,
) AssignLoadCommandHandler {
	return AssignLoadCommandHandler{
		uowFactory: uowFactory,
		checker:    services.NewEligibilityChecker(),
		metrics:    metrics,
		notifier:   newNotifier(publisher, logger),
	}
}

func (h AssignLoadCommandHandler) Handle(ctx context.Context, cmd AssignLoadCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	evt, err := h.assign(ctx, cmd)
	if err != nil {
		if reason := rejectionReason(err); reason != "" {
			h.metrics.AssignmentRejected(reason)
		}
		return err
	}

	h.metrics.LoadAssigned(evt.Reassigned())
	h.notifier.publish(ctx, evt)
	return nil
}

func (h AssignLoadCommandHandler) assign(ctx context.Context, cmd AssignLoadCommand) (events.LoadAssigned, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return events.LoadAssigned{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	loadRepo := uow.LoadRepository()
	driverRepo := uow.DriverRepository()
	equipmentRepo := uow.EquipmentRepository()

	companyID := cmd.CompanyID()
	assignment := cmd.Assignment()

	l, err := loadRepo.Get(ctx, companyID, cmd.LoadID())
	if err != nil {
		return events.LoadAssigned{}, err
	}

	d, err := driverRepo.Get(ctx, companyID, assignment.DriverID())
	if err != nil {
		return events.LoadAssigned{}, unresolvedReference("driver_id", err)
	}

	truck, err := equipmentRepo.Get(ctx, companyID, assignment.TruckID())
	if err != nil {
		return events.LoadAssigned{}, unresolvedReference("truck_id", err)
	}

	var trailer *equipment.Equipment
	if trailerID := assignment.TrailerID(); trailerID != nil {
		if trailer, err = h.getTrailer(ctx, equipmentRepo, companyID, *trailerID); err != nil {
			return events.LoadAssigned{}, err
		}
	}

	if err = h.checker.Check(l, d, truck, trailer); err != nil {
		return events.LoadAssigned{}, err
	}

	from := l.Status()
	previous, err := l.Assign(assignment)
	if err != nil {
		return events.LoadAssigned{}, err
	}

	if err = loadRepo.Update(ctx, l); err != nil {
		return events.LoadAssigned{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return events.LoadAssigned{}, err
	}

	return events.NewLoadAssigned(l, from, previous), nil
}

func (h AssignLoadCommandHandler) getTrailer(
	ctx context.Context,
	repo ports.EquipmentRepository,
	companyID, trailerID kernel.UUID,
) (*equipment.Equipment, error) {
	trailer, err := repo.Get(ctx, companyID, trailerID)
	if err != nil {
		return nil, unresolvedReference("trailer_id", err)
	}
	return trailer, nil
}

// unresolvedReference turns a missing referenced resource into a validation
// failure of the request. Store errors pass through unchanged.
func unresolvedReference(param string, err error) error {
	if errors.Is(err, errs.ErrObjectNotFound) {
		return errs.NewValueIsInvalidErrorWithCause(param, err)
	}
	return err
}

func rejectionReason(err error) string {
	switch {
	case errors.Is(err, errs.ErrConcurrentModification):
		return "conflict"
	case errors.Is(err, errs.ErrObjectNotFound):
		return "not_found"
	case errs.IsValidation(err):
		return "validation"
	case errors.Is(err, errs.ErrBusinessRuleViolated):
		return "business_rule"
	default:
		return ""
	}
}
