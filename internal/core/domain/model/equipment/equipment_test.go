package equipment_test

import (
	"testing"

	"tms/internal/core/domain/model/equipment"
	"tms/internal/core/domain/model/kernel"
	"tms/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEquipment(t *testing.T) {
	companyID := kernel.NewUUID()
	e, err := equipment.NewEquipment(kernel.NewUUID(), companyID, equipment.Truck, " T-101 ")

	require.NoError(t, err)
	assert.Equal(t, "T-101", e.UnitNumber())
	assert.Equal(t, equipment.InService, e.Status())
	assert.True(t, e.BelongsTo(companyID))
}

func TestNewEquipment_Validation(t *testing.T) {
	_, err := equipment.NewEquipment(kernel.NewUUID(), kernel.NewUUID(), equipment.Kind("forklift"), "")

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	require.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestEquipment_CheckDispatchable(t *testing.T) {
	truck, err := equipment.NewEquipment(kernel.NewUUID(), kernel.NewUUID(), equipment.Truck, "T-1")
	require.NoError(t, err)

	require.NoError(t, truck.CheckDispatchable(equipment.Truck))

	err = truck.CheckDispatchable(equipment.Trailer)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	assert.Contains(t, err.Error(), "trailer_id")

	parked, err := equipment.RestoreEquipment(truck.ID(), truck.CompanyID(), equipment.Truck, "T-1",
		equipment.OutOfService, truck.CreatedAt(), truck.UpdatedAt())
	require.NoError(t, err)
	err = parked.CheckDispatchable(equipment.Truck)
	require.ErrorIs(t, err, errs.ErrBusinessRuleViolated)
}
