package commands_test

import (
	"errors"
	"testing"

	"tms/internal/core/application/usecases/commands"
	"tms/internal/core/domain/events"
	"tms/internal/core/domain/model/driver"
	"tms/internal/core/domain/model/kernel"
	"tms/internal/core/domain/model/load"
	"tms/internal/pkg/errs"
	"tms/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type assignFixture struct {
	loadRepo      *MockLoadRepository
	driverRepo    *MockDriverRepository
	equipmentRepo *MockEquipmentRepository
	uow           *MockUoW
	factory       *MockUoWFactory[commands.DispatchUoW]
	publisher     *MockEventPublisher
	metrics       *MockDispatchMetrics
}

func newAssignFixture() assignFixture {
	f := assignFixture{
		loadRepo:      new(MockLoadRepository),
		driverRepo:    new(MockDriverRepository),
		equipmentRepo: new(MockEquipmentRepository),
		uow:           new(MockUoW),
		factory:       new(MockUoWFactory[commands.DispatchUoW]),
		publisher:     new(MockEventPublisher),
		metrics:       new(MockDispatchMetrics),
	}
	f.factory.On("Create").Return(f.uow).Once()
	return f
}

func (f assignFixture) handler() commands.AssignLoadCommandHandler {
	return commands.NewAssignLoadCommandHandler(f.factory, f.publisher, f.metrics, nil)
}

func (f assignFixture) expectRepositories(t *testing.T) {
	t.Helper()
	ctx := t.Context()
	f.uow.On("Begin", ctx).Return(nil).Once()
	f.uow.On("LoadRepository").Return(f.loadRepo).Once()
	f.uow.On("DriverRepository").Return(f.driverRepo).Once()
	f.uow.On("EquipmentRepository").Return(f.equipmentRepo).Once()
	f.uow.On("Rollback", ctx).Return(nil).Once()
}

func (f assignFixture) assertExpectations(t *testing.T) {
	t.Helper()
	f.loadRepo.AssertExpectations(t)
	f.driverRepo.AssertExpectations(t)
	f.equipmentRepo.AssertExpectations(t)
	f.uow.AssertExpectations(t)
	f.factory.AssertExpectations(t)
	f.publisher.AssertExpectations(t)
	f.metrics.AssertExpectations(t)
}

func TestAssignLoadCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	companyID := kernel.NewUUID()

	l := testutil.BuildLoad(t, companyID, testutil.LoadSpec{Number: "L1"})
	d := testutil.AvailableDriver(t, companyID, "Dana", "Diaz")
	truck := testutil.Truck(t, companyID)
	trailer := testutil.Trailer(t, companyID)
	trailerID := trailer.ID()

	cmd, err := commands.NewAssignLoadCommand(companyID, l.ID(), d.ID(), truck.ID(), &trailerID)
	require.NoError(t, err)

	f := newAssignFixture()
	f.expectRepositories(t)
	mock.InOrder(
		f.loadRepo.On("Get", ctx, companyID, l.ID()).Return(l, nil).Once(),
		f.driverRepo.On("Get", ctx, companyID, d.ID()).Return(d, nil).Once(),
		f.equipmentRepo.On("Get", ctx, companyID, truck.ID()).Return(truck, nil).Once(),
		f.equipmentRepo.On("Get", ctx, companyID, trailerID).Return(trailer, nil).Once(),
		f.loadRepo.On("Update", ctx, l).Return(nil).Once(),
		f.uow.On("Commit", ctx).Return(nil).Once(),
	)
	f.metrics.On("LoadAssigned", false).Once()
	f.publisher.On("Publish", ctx, mock.MatchedBy(func(evts []events.Event) bool {
		if len(evts) != 1 {
			return false
		}
		evt, ok := evts[0].(events.LoadAssigned)
		return ok && evt.Key() == l.ID().String() && evt.Previous == nil
	})).Return(nil).Once()

	err = f.handler().Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, load.Dispatched, l.Status())
	require.NotNil(t, l.Assignment())
	assert.True(t, l.Assignment().DriverID().IsEqual(d.ID()))
	assert.True(t, l.Assignment().TruckID().IsEqual(truck.ID()))
	require.NotNil(t, l.Assignment().TrailerID())
	assert.True(t, l.Assignment().TrailerID().IsEqual(trailerID))
	f.assertExpectations(t)
}

func TestAssignLoadCommandHandler_Handle_Reassignment(t *testing.T) {
	ctx := t.Context()
	companyID := kernel.NewUUID()

	l := testutil.BuildLoad(t, companyID, testutil.LoadSpec{Status: load.Dispatched})
	previous := l.Assignment()
	d := testutil.AvailableDriver(t, companyID, "Eli", "Moss")
	truck := testutil.Truck(t, companyID)

	cmd, err := commands.NewAssignLoadCommand(companyID, l.ID(), d.ID(), truck.ID(), nil)
	require.NoError(t, err)

	f := newAssignFixture()
	f.expectRepositories(t)
	f.loadRepo.On("Get", ctx, companyID, l.ID()).Return(l, nil).Once()
	f.driverRepo.On("Get", ctx, companyID, d.ID()).Return(d, nil).Once()
	f.equipmentRepo.On("Get", ctx, companyID, truck.ID()).Return(truck, nil).Once()
	f.loadRepo.On("Update", ctx, l).Return(nil).Once()
	f.uow.On("Commit", ctx).Return(nil).Once()
	f.metrics.On("LoadAssigned", true).Once()
	f.publisher.On("Publish", ctx, mock.MatchedBy(func(evts []events.Event) bool {
		evt, ok := evts[0].(events.LoadAssigned)
		return ok && evt.Previous != nil && evt.Previous.DriverID == previous.DriverID().String()
	})).Return(nil).Once()

	err = f.handler().Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, load.Dispatched, l.Status())
	assert.Nil(t, l.Assignment().TrailerID())
	f.assertExpectations(t)
}

func TestAssignLoadCommandHandler_Handle_LoadNotFound(t *testing.T) {
	ctx := t.Context()
	companyID := kernel.NewUUID()
	loadID := kernel.NewUUID()

	cmd, err := commands.NewAssignLoadCommand(companyID, loadID, kernel.NewUUID(), kernel.NewUUID(), nil)
	require.NoError(t, err)

	f := newAssignFixture()
	f.expectRepositories(t)
	f.loadRepo.On("Get", ctx, companyID, loadID).Return(nil, errs.NewObjectNotFoundError("load_id", loadID)).Once()
	f.metrics.On("AssignmentRejected", "not_found").Once()

	err = f.handler().Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	f.loadRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	f.uow.AssertNotCalled(t, "Commit", mock.Anything)
	f.publisher.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything)
	f.assertExpectations(t)
}

func TestAssignLoadCommandHandler_Handle_UnknownResourcesAreInvalid(t *testing.T) {
	ctx := t.Context()
	companyID := kernel.NewUUID()
	l := testutil.BuildLoad(t, companyID, testutil.LoadSpec{})
	d := testutil.AvailableDriver(t, companyID, "Fay", "Ortiz")
	truck := testutil.Truck(t, companyID)

	t.Run("driver", func(t *testing.T) {
		driverID := kernel.NewUUID()
		cmd, err := commands.NewAssignLoadCommand(companyID, l.ID(), driverID, truck.ID(), nil)
		require.NoError(t, err)

		f := newAssignFixture()
		f.expectRepositories(t)
		f.loadRepo.On("Get", ctx, companyID, l.ID()).Return(l, nil).Once()
		f.driverRepo.On("Get", ctx, companyID, driverID).Return(nil, errs.NewObjectNotFoundError("driver_id", driverID)).Once()
		f.metrics.On("AssignmentRejected", "validation").Once()

		err = f.handler().Handle(ctx, cmd)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.NotErrorIs(t, err, errs.ErrObjectNotFound)
		assert.Contains(t, err.Error(), "driver_id")
		f.assertExpectations(t)
	})

	t.Run("trailer", func(t *testing.T) {
		trailerID := kernel.NewUUID()
		cmd, err := commands.NewAssignLoadCommand(companyID, l.ID(), d.ID(), truck.ID(), &trailerID)
		require.NoError(t, err)

		f := newAssignFixture()
		f.expectRepositories(t)
		f.loadRepo.On("Get", ctx, companyID, l.ID()).Return(l, nil).Once()
		f.driverRepo.On("Get", ctx, companyID, d.ID()).Return(d, nil).Once()
		f.equipmentRepo.On("Get", ctx, companyID, truck.ID()).Return(truck, nil).Once()
		f.equipmentRepo.On("Get", ctx, companyID, trailerID).
			Return(nil, errs.NewObjectNotFoundError("equipment_id", trailerID)).Once()
		f.metrics.On("AssignmentRejected", "validation").Once()

		err = f.handler().Handle(ctx, cmd)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Contains(t, err.Error(), "trailer_id")
		f.assertExpectations(t)
	})
}

func TestAssignLoadCommandHandler_Handle_IneligibleDriver(t *testing.T) {
	ctx := t.Context()
	companyID := kernel.NewUUID()
	l := testutil.BuildLoad(t, companyID, testutil.LoadSpec{})
	d := testutil.BuildDriver(t, companyID, "Gus", "Hale", driver.EmploymentTerminated, driver.DutyAvailable)
	truck := testutil.Truck(t, companyID)

	cmd, err := commands.NewAssignLoadCommand(companyID, l.ID(), d.ID(), truck.ID(), nil)
	require.NoError(t, err)

	f := newAssignFixture()
	f.expectRepositories(t)
	f.loadRepo.On("Get", ctx, companyID, l.ID()).Return(l, nil).Once()
	f.driverRepo.On("Get", ctx, companyID, d.ID()).Return(d, nil).Once()
	f.equipmentRepo.On("Get", ctx, companyID, truck.ID()).Return(truck, nil).Once()
	f.metrics.On("AssignmentRejected", "business_rule").Once()

	err = f.handler().Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrBusinessRuleViolated)
	assert.Equal(t, load.Pending, l.Status())
	assert.Nil(t, l.Assignment())
	f.loadRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	f.assertExpectations(t)
}

func TestAssignLoadCommandHandler_Handle_LoadNotAssignable(t *testing.T) {
	ctx := t.Context()
	companyID := kernel.NewUUID()
	d := testutil.AvailableDriver(t, companyID, "Ivy", "Kerr")
	truck := testutil.Truck(t, companyID)

	for _, status := range []load.Status{load.InTransit, load.Delivered, load.Completed, load.Cancelled} {
		t.Run(status.String(), func(t *testing.T) {
			l := testutil.BuildLoad(t, companyID, testutil.LoadSpec{Status: status})
			cmd, err := commands.NewAssignLoadCommand(companyID, l.ID(), d.ID(), truck.ID(), nil)
			require.NoError(t, err)

			f := newAssignFixture()
			f.expectRepositories(t)
			f.loadRepo.On("Get", ctx, companyID, l.ID()).Return(l, nil).Once()
			f.driverRepo.On("Get", ctx, companyID, d.ID()).Return(d, nil).Once()
			f.equipmentRepo.On("Get", ctx, companyID, truck.ID()).Return(truck, nil).Once()
			f.metrics.On("AssignmentRejected", "business_rule").Once()

			err = f.handler().Handle(ctx, cmd)

			require.ErrorIs(t, err, errs.ErrBusinessRuleViolated)
			assert.Equal(t, status, l.Status())
			f.assertExpectations(t)
		})
	}
}

func TestAssignLoadCommandHandler_Handle_Conflict(t *testing.T) {
	ctx := t.Context()
	companyID := kernel.NewUUID()
	l := testutil.BuildLoad(t, companyID, testutil.LoadSpec{})
	d := testutil.AvailableDriver(t, companyID, "Jo", "Lin")
	truck := testutil.Truck(t, companyID)

	cmd, err := commands.NewAssignLoadCommand(companyID, l.ID(), d.ID(), truck.ID(), nil)
	require.NoError(t, err)

	f := newAssignFixture()
	f.expectRepositories(t)
	f.loadRepo.On("Get", ctx, companyID, l.ID()).Return(l, nil).Once()
	f.driverRepo.On("Get", ctx, companyID, d.ID()).Return(d, nil).Once()
	f.equipmentRepo.On("Get", ctx, companyID, truck.ID()).Return(truck, nil).Once()
	f.loadRepo.On("Update", ctx, l).Return(errs.NewConcurrentModificationError("load", l.ID(), l.Version())).Once()
	f.metrics.On("AssignmentRejected", "conflict").Once()

	err = f.handler().Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrConcurrentModification)
	f.uow.AssertNotCalled(t, "Commit", mock.Anything)
	f.assertExpectations(t)
}

func TestAssignLoadCommandHandler_Handle_CommitError(t *testing.T) {
	ctx := t.Context()
	companyID := kernel.NewUUID()
	l := testutil.BuildLoad(t, companyID, testutil.LoadSpec{})
	d := testutil.AvailableDriver(t, companyID, "Kim", "Park")
	truck := testutil.Truck(t, companyID)

	cmd, err := commands.NewAssignLoadCommand(companyID, l.ID(), d.ID(), truck.ID(), nil)
	require.NoError(t, err)

	f := newAssignFixture()
	f.expectRepositories(t)
	f.loadRepo.On("Get", ctx, companyID, l.ID()).Return(l, nil).Once()
	f.driverRepo.On("Get", ctx, companyID, d.ID()).Return(d, nil).Once()
	f.equipmentRepo.On("Get", ctx, companyID, truck.ID()).Return(truck, nil).Once()
	f.loadRepo.On("Update", ctx, l).Return(nil).Once()
	f.uow.On("Commit", ctx).Return(errors.New("commit error")).Once()

	err = f.handler().Handle(ctx, cmd)

	require.EqualError(t, err, "commit error")
	f.metrics.AssertNotCalled(t, "AssignmentRejected", mock.Anything)
	f.publisher.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything)
	f.assertExpectations(t)
}

func TestAssignLoadCommandHandler_Handle_PublishFailureIsNotReturned(t *testing.T) {
	ctx := t.Context()
	companyID := kernel.NewUUID()
	l := testutil.BuildLoad(t, companyID, testutil.LoadSpec{})
	d := testutil.AvailableDriver(t, companyID, "Lou", "Reed")
	truck := testutil.Truck(t, companyID)

	cmd, err := commands.NewAssignLoadCommand(companyID, l.ID(), d.ID(), truck.ID(), nil)
	require.NoError(t, err)

	f := newAssignFixture()
	f.expectRepositories(t)
	f.loadRepo.On("Get", ctx, companyID, l.ID()).Return(l, nil).Once()
	f.driverRepo.On("Get", ctx, companyID, d.ID()).Return(d, nil).Once()
	f.equipmentRepo.On("Get", ctx, companyID, truck.ID()).Return(truck, nil).Once()
	f.loadRepo.On("Update", ctx, l).Return(nil).Once()
	f.uow.On("Commit", ctx).Return(nil).Once()
	f.metrics.On("LoadAssigned", false).Once()
	f.publisher.On("Publish", ctx, mock.Anything).Return(errors.New("broker down")).Once()

	require.NoError(t, f.handler().Handle(ctx, cmd))
	f.assertExpectations(t)
}

func TestAssignLoadCommandHandler_Handle_NotConstructed(t *testing.T) {
	factory := new(MockUoWFactory[commands.DispatchUoW])
	handler := commands.NewAssignLoadCommandHandler(factory, nil, new(MockDispatchMetrics), nil)

	err := handler.Handle(t.Context(), commands.AssignLoadCommand{})

	require.ErrorIs(t, err, commands.ErrAssignLoadCommandIsNotConstructed)
	factory.AssertNotCalled(t, "Create")
}
