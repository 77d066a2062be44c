package invoicerepo_test

import (
	"context"
	"testing"

	"tms/internal/adapters/out/postgres/invoicerepo"
	"tms/internal/adapters/out/postgres/loadrepo"
	"tms/internal/core/domain/model/invoice"
	"tms/internal/core/domain/model/kernel"
	"tms/internal/core/domain/model/load"
	"tms/internal/pkg/errs"
	"tms/internal/testutil"
	"tms/internal/testutil/pgtest"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type InvoiceRepositoryIntegrationTestSuite struct {
	suite.Suite
	db         *pgtest.Database
	repository *invoicerepo.GormInvoiceRepository
	loads      *loadrepo.GormLoadRepository
	companyID  kernel.UUID
}

func (suite *InvoiceRepositoryIntegrationTestSuite) SetupSuite() {
	db, err := pgtest.Start(context.Background())
	suite.Require().NoError(err)
	suite.db = db
}

func (suite *InvoiceRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Truncate(context.Background()))
	suite.repository = invoicerepo.NewGormInvoiceRepository(suite.db.Gorm, nil)
	suite.loads = loadrepo.NewGormLoadRepository(suite.db.Gorm, nil)
	suite.companyID = kernel.NewUUID()
}

func (suite *InvoiceRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.db != nil {
		suite.Require().NoError(suite.db.Close(context.Background()))
	}
}

func (suite *InvoiceRepositoryIntegrationTestSuite) TestIssueAndPay() {
	ctx := context.Background()
	inv := suite.issue(1200)

	suite.Require().NoError(suite.repository.Add(ctx, inv))

	byLoad, err := suite.repository.GetByLoad(ctx, suite.companyID, *inv.LoadID())
	suite.Require().NoError(err)
	suite.Equal(inv.ID(), byLoad.ID())
	suite.Equal(invoice.Open, byLoad.Status())
	suite.Equal("2024-02-01", byLoad.InvoiceDate().String())
	suite.Equal("2024-03-02", byLoad.DueDate().String())

	suite.Require().NoError(byLoad.RecordPayment(decimal.NewFromInt(200)))
	suite.Require().NoError(suite.repository.Update(ctx, byLoad))

	got, err := suite.repository.Get(ctx, suite.companyID, inv.ID())
	suite.Require().NoError(err)
	suite.Equal(invoice.PartiallyPaid, got.Status())
	suite.True(decimal.NewFromInt(1000).Equal(got.BalanceDue()))
}

func (suite *InvoiceRepositoryIntegrationTestSuite) TestAdd_SecondInvoiceForLoad() {
	ctx := context.Background()
	first := suite.issue(500)
	suite.Require().NoError(suite.repository.Add(ctx, first))

	second, err := invoice.NewInvoice(kernel.NewUUID(), suite.companyID, "INV-2", first.CustomerID(), first.LoadID(),
		decimal.NewFromInt(500), first.InvoiceDate(), first.DueDate())
	suite.Require().NoError(err)

	suite.Require().ErrorIs(suite.repository.Add(ctx, second), errs.ErrBusinessRuleViolated)
}

func (suite *InvoiceRepositoryIntegrationTestSuite) TestGetByLoad_NotInvoiced() {
	_, err := suite.repository.GetByLoad(context.Background(), suite.companyID, kernel.NewUUID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *InvoiceRepositoryIntegrationTestSuite) TestUpdate_OtherCompanyIsNotFound() {
	ctx := context.Background()
	inv := suite.issue(300)
	suite.Require().NoError(suite.repository.Add(ctx, inv))

	foreign, err := invoice.RestoreInvoice(inv.ID(), kernel.NewUUID(), inv.InvoiceNumber(), inv.Type(),
		inv.CustomerID(), inv.LoadID(), inv.TotalAmount(), decimal.NewFromInt(300),
		inv.InvoiceDate(), inv.DueDate(), inv.CreatedAt())
	suite.Require().NoError(err)

	suite.Require().ErrorIs(suite.repository.Update(ctx, foreign), errs.ErrObjectNotFound)
}

// issue stores a delivered load and builds an unsaved invoice for it.
func (suite *InvoiceRepositoryIntegrationTestSuite) issue(amount int64) *invoice.Invoice {
	customerID := kernel.NewUUID()
	l := testutil.BuildLoad(suite.T(), suite.companyID, testutil.LoadSpec{
		Status: load.Delivered, CustomerID: &customerID, CustomerRate: testutil.Money(amount),
	})
	suite.Require().NoError(suite.loads.Add(context.Background(), l))

	loadID := l.ID()
	inv, err := invoice.NewInvoice(kernel.NewUUID(), suite.companyID, "INV-"+l.LoadNumber(), &customerID, &loadID,
		decimal.NewFromInt(amount), testutil.Date(suite.T(), "2024-02-01"), testutil.Date(suite.T(), "2024-03-02"))
	suite.Require().NoError(err)
	return inv
}

func TestInvoiceRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(InvoiceRepositoryIntegrationTestSuite))
}
