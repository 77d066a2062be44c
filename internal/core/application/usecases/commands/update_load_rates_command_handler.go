package commands

import (
	"context"
)

type UpdateLoadRatesCommandHandler struct {
	uowFactory LoadUoWFactory
}

func NewUpdateLoadRatesCommandHandler(uowFactory LoadUoWFactory) UpdateLoadRatesCommandHandler {
	return UpdateLoadRatesCommandHandler{uowFactory: uowFactory}
}

// Handle derives revenue, cost and profit margin from the new rates and
// writes the load guarded by its version.
func (h UpdateLoadRatesCommandHandler) Handle(ctx context.Context, cmd UpdateLoadRatesCommand) error {
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

	if err = l.Reprice(cmd.Rates(), cmd.TotalMiles()); err != nil {
		return err
	}

	if err = loadRepo.Update(ctx, l); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
