package ports

import (
	"context"

	"tms/internal/core/domain/model/equipment"
	"tms/internal/core/domain/model/kernel"
)

type EquipmentReader interface {
	Get(ctx context.Context, companyID, id kernel.UUID) (*equipment.Equipment, error)
}

type EquipmentRepository interface {
	EquipmentReader

	Add(ctx context.Context, aggregate *equipment.Equipment) error
}
