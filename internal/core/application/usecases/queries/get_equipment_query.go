package queries

import (
	"context"
	"errors"

	"tms/internal/core/domain/model/kernel"
	"tms/internal/core/ports"
)

var ErrGetEquipmentQueryIsNotConstructed = errors.New("GetEquipmentQuery must be created via NewGetEquipmentQuery constructor")

type GetEquipmentQuery struct { //nolint:recvcheck //using for validation
	byID
}

func NewGetEquipmentQuery(companyID, equipmentID kernel.UUID) (GetEquipmentQuery, error) {
	q, err := newByID(companyID, equipmentID, "equipment_id")
	if err != nil {
		return GetEquipmentQuery{}, err
	}
	return GetEquipmentQuery{byID: q}, nil
}

func (q GetEquipmentQuery) Validate() error {
	return q.guard.Validate(ErrGetEquipmentQueryIsNotConstructed)
}

func (q GetEquipmentQuery) CompanyID() kernel.UUID {
	return q.companyID
}

func (q GetEquipmentQuery) EquipmentID() kernel.UUID {
	return q.id
}

type GetEquipmentQueryHandler struct {
	reader ports.EquipmentReader
}

func NewGetEquipmentQueryHandler(reader ports.EquipmentReader) GetEquipmentQueryHandler {
	return GetEquipmentQueryHandler{reader: reader}
}

func (h GetEquipmentQueryHandler) Handle(ctx context.Context, query GetEquipmentQuery) (EquipmentResponse, error) {
	if err := query.Validate(); err != nil {
		return EquipmentResponse{}, err
	}

	aggregate, err := h.reader.Get(ctx, query.CompanyID(), query.EquipmentID())
	if err != nil {
		return EquipmentResponse{}, err
	}
	return newEquipmentResponse(aggregate), nil
}
