package commands

import (
	"context"

	"tms/internal/core/domain/model/equipment"
)

type CreateEquipmentCommandHandler struct {
	uowFactory EquipmentUoWFactory
}

func NewCreateEquipmentCommandHandler(uowFactory EquipmentUoWFactory) CreateEquipmentCommandHandler {
	return CreateEquipmentCommandHandler{uowFactory: uowFactory}
}

func (h CreateEquipmentCommandHandler) Handle(ctx context.Context, cmd CreateEquipmentCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	e, err := equipment.NewEquipment(cmd.EquipmentID(), cmd.CompanyID(), cmd.Kind(), cmd.UnitNumber())
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.EquipmentRepository().Add(ctx, e); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
