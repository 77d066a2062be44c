package commands_test

import (
	"testing"

	"tms/internal/core/application/usecases/commands"
	"tms/internal/core/domain/model/invoice"
	"tms/internal/core/domain/model/kernel"
	"tms/internal/core/domain/model/load"
	"tms/internal/pkg/errs"
	"tms/internal/testutil"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type billingFixture struct {
	loadRepo     *MockLoadRepository
	customerRepo *MockCustomerRepository
	invoiceRepo  *MockInvoiceRepository
	uow          *MockUoW
	factory      *MockUoWFactory[commands.BillingUoW]
	metrics      *MockDispatchMetrics
}

func newBillingFixture(t *testing.T) billingFixture {
	t.Helper()
	f := billingFixture{
		loadRepo:     new(MockLoadRepository),
		customerRepo: new(MockCustomerRepository),
		invoiceRepo:  new(MockInvoiceRepository),
		uow:          new(MockUoW),
		factory:      new(MockUoWFactory[commands.BillingUoW]),
		metrics:      new(MockDispatchMetrics),
	}
	f.factory.On("Create").Return(f.uow).Once()
	f.uow.On("Begin", t.Context()).Return(nil).Once()
	f.uow.On("Rollback", t.Context()).Return(nil).Once()
	return f
}

func TestIssueInvoiceCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	companyID := kernel.NewUUID()
	c := testutil.Customer(t, companyID, 45)
	customerID := c.ID()
	l := testutil.BuildLoad(t, companyID, testutil.LoadSpec{
		Number:       "L-77",
		Status:       load.Delivered,
		CustomerID:   &customerID,
		CustomerRate: testutil.Money(2500),
		CarrierRate:  testutil.Money(2000),
	})
	invoiceDate := testutil.Date(t, "2024-02-01")

	cmd, err := commands.NewIssueInvoiceCommand(kernel.NewUUID(), companyID, l.ID(), invoiceDate)
	require.NoError(t, err)

	f := newBillingFixture(t)
	var added *invoice.Invoice
	f.uow.On("LoadRepository").Return(f.loadRepo).Once()
	f.uow.On("InvoiceRepository").Return(f.invoiceRepo).Once()
	f.uow.On("CustomerRepository").Return(f.customerRepo).Once()
	mock.InOrder(
		f.loadRepo.On("Get", ctx, companyID, l.ID()).Return(l, nil).Once(),
		f.invoiceRepo.On("GetByLoad", ctx, companyID, l.ID()).
			Return(nil, errs.NewObjectNotFoundError("load_id", l.ID())).Once(),
		f.customerRepo.On("Get", ctx, companyID, customerID).Return(c, nil).Once(),
		f.invoiceRepo.On("Add", ctx, mock.AnythingOfType("*invoice.Invoice")).
			Run(func(args mock.Arguments) { added = args.Get(1).(*invoice.Invoice) }).
			Return(nil).Once(),
		f.uow.On("Commit", ctx).Return(nil).Once(),
	)
	f.metrics.On("InvoiceIssued").Once()

	err = commands.NewIssueInvoiceCommandHandler(f.factory, f.metrics).Handle(ctx, cmd)

	require.NoError(t, err)
	require.NotNil(t, added)
	assert.Equal(t, "INV-L-77", added.InvoiceNumber())
	assert.True(t, decimal.NewFromInt(2500).Equal(added.TotalAmount()))
	assert.True(t, decimal.NewFromInt(2500).Equal(added.BalanceDue()))
	assert.Equal(t, "2024-03-17", added.DueDate().String())
	assert.Equal(t, invoice.Open, added.Status())
	require.NotNil(t, added.LoadID())
	assert.True(t, added.LoadID().IsEqual(l.ID()))
	f.uow.AssertExpectations(t)
	f.invoiceRepo.AssertExpectations(t)
	f.metrics.AssertExpectations(t)
}

func TestIssueInvoiceCommandHandler_Handle_Rejected(t *testing.T) {
	companyID := kernel.NewUUID()
	customerID := kernel.NewUUID()

	tests := []struct {
		name string
		spec testutil.LoadSpec
	}{
		{"in transit load", testutil.LoadSpec{Status: load.InTransit, CustomerID: &customerID, CustomerRate: testutil.Money(10)}},
		{"cancelled load", testutil.LoadSpec{Status: load.Cancelled, CustomerID: &customerID, CustomerRate: testutil.Money(10)}},
		{"unpriced load", testutil.LoadSpec{Status: load.Completed, CustomerID: &customerID}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := t.Context()
			l := testutil.BuildLoad(t, companyID, tt.spec)
			cmd, err := commands.NewIssueInvoiceCommand(kernel.NewUUID(), companyID, l.ID(), testutil.Date(t, "2024-02-01"))
			require.NoError(t, err)

			f := newBillingFixture(t)
			f.uow.On("LoadRepository").Return(f.loadRepo).Once()
			f.loadRepo.On("Get", ctx, companyID, l.ID()).Return(l, nil).Once()

			err = commands.NewIssueInvoiceCommandHandler(f.factory, f.metrics).Handle(ctx, cmd)

			require.ErrorIs(t, err, errs.ErrBusinessRuleViolated)
			f.invoiceRepo.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
			f.metrics.AssertNotCalled(t, "InvoiceIssued")
		})
	}
}

func TestIssueInvoiceCommandHandler_Handle_AlreadyInvoiced(t *testing.T) {
	ctx := t.Context()
	companyID := kernel.NewUUID()
	customerID := kernel.NewUUID()
	l := testutil.BuildLoad(t, companyID, testutil.LoadSpec{
		Status: load.Completed, CustomerID: &customerID, CustomerRate: testutil.Money(900),
	})
	loadID := l.ID()
	existing, err := invoice.NewInvoice(kernel.NewUUID(), companyID, "INV-"+l.LoadNumber(), &customerID, &loadID,
		decimal.NewFromInt(900), testutil.Date(t, "2024-02-01"), testutil.Date(t, "2024-03-02"))
	require.NoError(t, err)

	cmd, err := commands.NewIssueInvoiceCommand(kernel.NewUUID(), companyID, l.ID(), testutil.Date(t, "2024-02-02"))
	require.NoError(t, err)

	f := newBillingFixture(t)
	f.uow.On("LoadRepository").Return(f.loadRepo).Once()
	f.uow.On("InvoiceRepository").Return(f.invoiceRepo).Once()
	f.loadRepo.On("Get", ctx, companyID, l.ID()).Return(l, nil).Once()
	f.invoiceRepo.On("GetByLoad", ctx, companyID, l.ID()).Return(existing, nil).Once()

	err = commands.NewIssueInvoiceCommandHandler(f.factory, f.metrics).Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrBusinessRuleViolated)
	assert.Contains(t, err.Error(), "already invoiced")
	f.invoiceRepo.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
}

func TestRecordInvoicePaymentCommandHandler_Handle(t *testing.T) {
	companyID := kernel.NewUUID()
	customerID := kernel.NewUUID()

	newInvoice := func(t *testing.T) *invoice.Invoice {
		t.Helper()
		inv, err := invoice.NewInvoice(kernel.NewUUID(), companyID, "INV-1", &customerID, nil,
			decimal.NewFromInt(1000), testutil.Date(t, "2024-02-01"), testutil.Date(t, "2024-03-02"))
		require.NoError(t, err)
		return inv
	}

	t.Run("partial payment", func(t *testing.T) {
		ctx := t.Context()
		inv := newInvoice(t)
		cmd, err := commands.NewRecordInvoicePaymentCommand(companyID, inv.ID(), decimal.NewFromInt(400))
		require.NoError(t, err)

		f := newBillingFixture(t)
		f.uow.On("InvoiceRepository").Return(f.invoiceRepo).Once()
		mock.InOrder(
			f.invoiceRepo.On("Get", ctx, companyID, inv.ID()).Return(inv, nil).Once(),
			f.invoiceRepo.On("Update", ctx, inv).Return(nil).Once(),
			f.uow.On("Commit", ctx).Return(nil).Once(),
		)
		f.metrics.On("PaymentRecorded").Once()

		err = commands.NewRecordInvoicePaymentCommandHandler(f.factory, f.metrics).Handle(ctx, cmd)

		require.NoError(t, err)
		assert.Equal(t, invoice.PartiallyPaid, inv.Status())
		assert.True(t, decimal.NewFromInt(600).Equal(inv.BalanceDue()))
		f.invoiceRepo.AssertExpectations(t)
		f.metrics.AssertExpectations(t)
	})

	t.Run("overpayment", func(t *testing.T) {
		ctx := t.Context()
		inv := newInvoice(t)
		cmd, err := commands.NewRecordInvoicePaymentCommand(companyID, inv.ID(), decimal.NewFromInt(1001))
		require.NoError(t, err)

		f := newBillingFixture(t)
		f.uow.On("InvoiceRepository").Return(f.invoiceRepo).Once()
		f.invoiceRepo.On("Get", ctx, companyID, inv.ID()).Return(inv, nil).Once()

		err = commands.NewRecordInvoicePaymentCommandHandler(f.factory, f.metrics).Handle(ctx, cmd)

		require.ErrorIs(t, err, errs.ErrBusinessRuleViolated)
		assert.Equal(t, invoice.Open, inv.Status())
		f.invoiceRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})

	t.Run("non positive amount", func(t *testing.T) {
		_, err := commands.NewRecordInvoicePaymentCommand(companyID, kernel.NewUUID(), decimal.Zero)
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})
}
