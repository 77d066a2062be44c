package queries_test

import (
	"testing"

	"tms/internal/adapters/out/memory"
	"tms/internal/core/application/usecases/queries"
	"tms/internal/core/domain/model/driver"
	"tms/internal/core/domain/model/equipment"
	"tms/internal/core/domain/model/kernel"
	"tms/internal/core/domain/model/load"
	"tms/internal/core/ports"
	"tms/internal/pkg/errs"
	"tms/internal/testutil"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type QueryHandlersTestSuite struct {
	suite.Suite
	uow       ports.UnitOfWork
	companyID kernel.UUID
}

func (suite *QueryHandlersTestSuite) SetupTest() {
	suite.uow = memory.NewUnitOfWorkFactory(memory.NewStore()).Create()
	suite.companyID = kernel.NewUUID()
}

func (suite *QueryHandlersTestSuite) TestGetLoad() {
	ctx := suite.T().Context()
	trailerID := kernel.NewUUID()
	assignment := testutil.Assignment(suite.T(), &trailerID)
	l := testutil.BuildLoad(suite.T(), suite.companyID, testutil.LoadSpec{
		Status: load.Dispatched, Assignment: &assignment, CustomerRate: testutil.Money(900),
	})
	suite.Require().NoError(suite.uow.LoadRepository().Add(ctx, l))
	handler := queries.NewGetLoadQueryHandler(suite.uow.LoadRepository())

	query, err := queries.NewGetLoadQuery(suite.companyID, l.ID())
	suite.Require().NoError(err)
	first, err := handler.Handle(ctx, query)
	suite.Require().NoError(err)
	second, err := handler.Handle(ctx, query)
	suite.Require().NoError(err)

	suite.Equal(first, second, "repeated reads return identical data")
	suite.Equal(load.Dispatched, first.Status)
	suite.Require().NotNil(first.DriverID)
	suite.Equal(assignment.DriverID(), *first.DriverID)
	suite.Equal(assignment.TruckID(), *first.TruckID)
	suite.Equal(trailerID, *first.TrailerID)
	suite.True(decimal.NewFromInt(900).Equal(first.TotalRevenue.Decimal))

	query, err = queries.NewGetLoadQuery(kernel.NewUUID(), l.ID())
	suite.Require().NoError(err)
	_, err = handler.Handle(ctx, query)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *QueryHandlersTestSuite) TestGetLoad_PendingHasNoResources() {
	ctx := suite.T().Context()
	l := testutil.BuildLoad(suite.T(), suite.companyID, testutil.LoadSpec{})
	suite.Require().NoError(suite.uow.LoadRepository().Add(ctx, l))

	query, err := queries.NewGetLoadQuery(suite.companyID, l.ID())
	suite.Require().NoError(err)
	got, err := queries.NewGetLoadQueryHandler(suite.uow.LoadRepository()).Handle(ctx, query)

	suite.Require().NoError(err)
	suite.Nil(got.DriverID)
	suite.Nil(got.TruckID)
	suite.Nil(got.TrailerID)
}

func (suite *QueryHandlersTestSuite) TestListActiveLoads() {
	ctx := suite.T().Context()
	for _, spec := range []testutil.LoadSpec{
		{Number: "L-2", Pickup: "2024-01-05", Status: load.InTransit},
		{Number: "L-1", Pickup: "2024-01-02", Status: load.Pending},
		{Number: "L-3", Pickup: "2024-01-01", Status: load.Delivered},
		{Number: "L-4", Pickup: "2024-01-01", Status: load.Completed},
		{Number: "L-5", Pickup: "2024-01-01", Status: load.Cancelled},
	} {
		suite.Require().NoError(suite.uow.LoadRepository().Add(ctx, testutil.BuildLoad(suite.T(), suite.companyID, spec)))
	}

	query, err := queries.NewListActiveLoadsQuery(suite.companyID)
	suite.Require().NoError(err)
	loads, err := queries.NewListActiveLoadsQueryHandler(suite.uow.LoadRepository()).Handle(ctx, query)

	suite.Require().NoError(err)
	suite.Require().Len(loads, 2)
	suite.Equal("L-1", loads[0].LoadNumber)
	suite.Equal("L-2", loads[1].LoadNumber)
}

func (suite *QueryHandlersTestSuite) TestListActiveLoads_EmptyCompany() {
	query, err := queries.NewListActiveLoadsQuery(suite.companyID)
	suite.Require().NoError(err)

	loads, err := queries.NewListActiveLoadsQueryHandler(suite.uow.LoadRepository()).Handle(suite.T().Context(), query)

	suite.Require().NoError(err)
	suite.NotNil(loads)
	suite.Empty(loads)
}

func (suite *QueryHandlersTestSuite) TestDriverQueries() {
	ctx := suite.T().Context()
	ready := testutil.AvailableDriver(suite.T(), suite.companyID, "Ann", "Lee")
	busy := testutil.BuildDriver(suite.T(), suite.companyID, "Bo", "Ray", driver.EmploymentActive, driver.DutyDriving)
	suite.Require().NoError(suite.uow.DriverRepository().Add(ctx, ready))
	suite.Require().NoError(suite.uow.DriverRepository().Add(ctx, busy))

	getQuery, err := queries.NewGetDriverQuery(suite.companyID, busy.ID())
	suite.Require().NoError(err)
	got, err := queries.NewGetDriverQueryHandler(suite.uow.DriverRepository()).Handle(ctx, getQuery)
	suite.Require().NoError(err)
	suite.Equal(driver.DutyDriving, got.DutyStatus)
	suite.Equal("Bo", got.Profile.FirstName)

	listQuery, err := queries.NewListAvailableDriversQuery(suite.companyID)
	suite.Require().NoError(err)
	available, err := queries.NewListAvailableDriversQueryHandler(suite.uow.DriverRepository()).Handle(ctx, listQuery)
	suite.Require().NoError(err)
	suite.Require().Len(available, 1)
	suite.Equal(ready.ID(), available[0].ID)
}

func (suite *QueryHandlersTestSuite) TestCustomerEquipmentInvoiceQueries() {
	ctx := suite.T().Context()
	c := testutil.Customer(suite.T(), suite.companyID, 30)
	truck := testutil.Truck(suite.T(), suite.companyID)
	loadID := kernel.NewUUID()
	inv := testutil.Invoice(suite.T(), suite.companyID, "INV-1", &loadID, decimal.NewFromInt(750),
		testutil.Date(suite.T(), "2024-02-01"))
	suite.Require().NoError(inv.RecordPayment(decimal.NewFromInt(250)))
	suite.Require().NoError(suite.uow.CustomerRepository().Add(ctx, c))
	suite.Require().NoError(suite.uow.EquipmentRepository().Add(ctx, truck))
	suite.Require().NoError(suite.uow.InvoiceRepository().Add(ctx, inv))

	customerQuery, err := queries.NewGetCustomerQuery(suite.companyID, c.ID())
	suite.Require().NoError(err)
	gotCustomer, err := queries.NewGetCustomerQueryHandler(suite.uow.CustomerRepository()).Handle(ctx, customerQuery)
	suite.Require().NoError(err)
	suite.Equal("Acme Foods", gotCustomer.Name)
	suite.Equal(30, gotCustomer.PaymentTerms)

	equipmentQuery, err := queries.NewGetEquipmentQuery(suite.companyID, truck.ID())
	suite.Require().NoError(err)
	gotTruck, err := queries.NewGetEquipmentQueryHandler(suite.uow.EquipmentRepository()).Handle(ctx, equipmentQuery)
	suite.Require().NoError(err)
	suite.Equal(equipment.Truck, gotTruck.Kind)

	invoiceQuery, err := queries.NewGetInvoiceQuery(suite.companyID, inv.ID())
	suite.Require().NoError(err)
	gotInvoice, err := queries.NewGetInvoiceQueryHandler(suite.uow.InvoiceRepository()).Handle(ctx, invoiceQuery)
	suite.Require().NoError(err)
	suite.True(decimal.NewFromInt(500).Equal(gotInvoice.BalanceDue))
	suite.Equal("2024-03-02", gotInvoice.DueDate.String())
}

// Two completed January loads: revenue 1000 + 800, cost 600 + 500.
func (suite *QueryHandlersTestSuite) TestFinancialSummary() {
	ctx := suite.T().Context()
	for _, spec := range []testutil.LoadSpec{
		{Pickup: "2024-01-03", Status: load.Completed, CustomerRate: testutil.Money(1000), CarrierRate: testutil.Money(600)},
		{Pickup: "2024-01-20", Status: load.Completed, CustomerRate: testutil.Money(800), CarrierRate: testutil.Money(500)},
		{Pickup: "2024-02-01", Status: load.Completed, CustomerRate: testutil.Money(999)},
		{Pickup: "2024-01-10", Status: load.InTransit, CustomerRate: testutil.Money(999)},
	} {
		suite.Require().NoError(suite.uow.LoadRepository().Add(ctx, testutil.BuildLoad(suite.T(), suite.companyID, spec)))
	}
	handler := queries.NewGetFinancialSummaryQueryHandler(suite.uow.LoadRepository())

	query, err := queries.NewGetFinancialSummaryQuery(suite.companyID,
		testutil.Date(suite.T(), "2024-01-01"), testutil.Date(suite.T(), "2024-01-31"))
	suite.Require().NoError(err)
	summary, err := handler.Handle(ctx, query)

	suite.Require().NoError(err)
	suite.Equal(2, summary.TotalLoads)
	suite.True(decimal.NewFromInt(1800).Equal(summary.TotalRevenue))
	suite.True(decimal.NewFromInt(1100).Equal(summary.TotalCost))
	suite.True(decimal.NewFromInt(700).Equal(summary.TotalProfit))

	again, err := handler.Handle(ctx, query)
	suite.Require().NoError(err)
	suite.Equal(summary, again)
}

func TestQueryHandlersTestSuite(t *testing.T) {
	suite.Run(t, new(QueryHandlersTestSuite))
}

func TestQueryConstructors(t *testing.T) {
	t.Run("financial summary rejects an inverted window", func(t *testing.T) {
		_, err := queries.NewGetFinancialSummaryQuery(kernel.NewUUID(),
			testutil.Date(t, "2024-02-01"), testutil.Date(t, "2024-01-01"))
		require.Error(t, err)
		assert.True(t, errs.IsValidation(err))
	})

	t.Run("financial summary requires both dates", func(t *testing.T) {
		_, err := queries.NewGetFinancialSummaryQuery(kernel.NewUUID(), kernel.Date{}, kernel.Date{})
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Contains(t, err.Error(), "start_date")
		assert.Contains(t, err.Error(), "end_date")
	})

	t.Run("single day window is valid", func(t *testing.T) {
		_, err := queries.NewGetFinancialSummaryQuery(kernel.NewUUID(),
			testutil.Date(t, "2024-01-01"), testutil.Date(t, "2024-01-01"))
		require.NoError(t, err)
	})

	t.Run("lookups require ids", func(t *testing.T) {
		_, err := queries.NewGetLoadQuery(kernel.UUID{}, kernel.NewUUID())
		require.ErrorIs(t, err, errs.ErrValueIsRequired)

		_, err = queries.NewGetDriverQuery(kernel.NewUUID(), kernel.UUID{})
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Contains(t, err.Error(), "driver_id")

		_, err = queries.NewListActiveLoadsQuery(kernel.UUID{})
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("zero values are not constructed", func(t *testing.T) {
		assert.ErrorIs(t, queries.GetLoadQuery{}.Validate(), queries.ErrGetLoadQueryIsNotConstructed)
		assert.ErrorIs(t, queries.ListAvailableDriversQuery{}.Validate(), queries.ErrListAvailableDriversQueryIsNotConstructed)
		assert.ErrorIs(t, queries.GetFinancialSummaryQuery{}.Validate(), queries.ErrGetFinancialSummaryQueryIsNotConstructed)

		_, err := queries.NewGetInvoiceQueryHandler(nil).Handle(t.Context(), queries.GetInvoiceQuery{})
		assert.ErrorIs(t, err, queries.ErrGetInvoiceQueryIsNotConstructed)
	})
}
