package customerrepo_test

import (
	"context"
	"testing"

	"tms/internal/adapters/out/postgres/customerrepo"
	"tms/internal/core/domain/model/customer"
	"tms/internal/core/domain/model/kernel"
	"tms/internal/pkg/errs"
	"tms/internal/testutil"
	"tms/internal/testutil/pgtest"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type CustomerRepositoryIntegrationTestSuite struct {
	suite.Suite
	db         *pgtest.Database
	repository *customerrepo.GormCustomerRepository
}

func (suite *CustomerRepositoryIntegrationTestSuite) SetupSuite() {
	db, err := pgtest.Start(context.Background())
	suite.Require().NoError(err)
	suite.db = db
}

func (suite *CustomerRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Truncate(context.Background()))
	suite.repository = customerrepo.NewGormCustomerRepository(suite.db.Gorm, nil)
}

func (suite *CustomerRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.db != nil {
		suite.Require().NoError(suite.db.Close(context.Background()))
	}
}

func (suite *CustomerRepositoryIntegrationTestSuite) TestAddAndGet() {
	ctx := context.Background()
	companyID := kernel.NewUUID()
	c, err := customer.NewCustomer(kernel.NewUUID(), companyID, "Northwind Freight", customer.Broker,
		"billing@northwind.test", "+1-555-0142", 45, testutil.Money(50000))
	suite.Require().NoError(err)

	suite.Require().NoError(suite.repository.Add(ctx, c))

	got, err := suite.repository.Get(ctx, companyID, c.ID())
	suite.Require().NoError(err)
	suite.Equal("Northwind Freight", got.Name())
	suite.Equal(customer.Broker, got.Type())
	suite.Equal(45, got.PaymentTerms())
	suite.Require().True(got.CreditLimit().Valid)
	suite.True(decimal.NewFromInt(50000).Equal(got.CreditLimit().Decimal))
	suite.Equal(customer.Active, got.Status())
}

func (suite *CustomerRepositoryIntegrationTestSuite) TestGet_OtherCompanyIsNotFound() {
	ctx := context.Background()
	c := testutil.Customer(suite.T(), kernel.NewUUID(), 30)
	suite.Require().NoError(suite.repository.Add(ctx, c))

	_, err := suite.repository.Get(ctx, kernel.NewUUID(), c.ID())

	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func TestCustomerRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(CustomerRepositoryIntegrationTestSuite))
}
