package memory_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/SscSPs/warehouse_management_app/internal/apperrors"
	"github.com/SscSPs/warehouse_management_app/internal/core/domain"
	portsrepo "github.com/SscSPs/warehouse_management_app/internal/core/ports/repositories"
	"github.com/SscSPs/warehouse_management_app/internal/repositories/memory"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type StoreTestSuite struct {
	suite.Suite
	ctx   context.Context
	at    time.Time
	repos portsrepo.RepositoryProvider
	key   domain.BalanceKey
}

func TestStoreTestSuite(t *testing.T) {
	suite.Run(t, new(StoreTestSuite))
}

func (suite *StoreTestSuite) SetupTest() {
	suite.ctx = context.Background()
	suite.at = time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	suite.repos = memory.NewRepositoryProvider(memory.NewStore())
	suite.key = domain.BalanceKey{ResourceID: "res", UnitID: "unit"}
}

func (suite *StoreTestSuite) receipt(id, number string) domain.Receipt {
	return domain.Receipt{
		ReceiptID: id,
		Number:    number,
		Date:      suite.at,
		Items:     []domain.LineItem{{ResourceID: suite.key.ResourceID, UnitID: suite.key.UnitID, Quantity: decimal.NewFromInt(5)}},
	}
}

func (suite *StoreTestSuite) amount() string {
	amount, err := suite.repos.BalanceRepo.FindBalance(suite.ctx, suite.key)
	suite.Require().NoError(err)
	return amount.String()
}

func (suite *StoreTestSuite) TestCommitKeepsChanges() {
	err := suite.repos.TxManager.WithinTransaction(suite.ctx, func(ctx context.Context, repos portsrepo.TxRepositories) error {
		if err := repos.Receipts().SaveReceipt(ctx, suite.receipt("r1", "R-1")); err != nil {
			return err
		}
		return repos.Balances().IncreaseBalance(ctx, suite.key, decimal.NewFromInt(5), suite.at)
	})

	suite.Require().NoError(err)
	suite.Equal("5", suite.amount())
	_, err = suite.repos.ReceiptRepo.FindReceiptByID(suite.ctx, "r1")
	suite.NoError(err)
}

func (suite *StoreTestSuite) TestErrorRollsBackEveryWrite() {
	failure := errors.New("boom")
	err := suite.repos.TxManager.WithinTransaction(suite.ctx, func(ctx context.Context, repos portsrepo.TxRepositories) error {
		if err := repos.Receipts().SaveReceipt(ctx, suite.receipt("r1", "R-1")); err != nil {
			return err
		}
		if err := repos.Balances().IncreaseBalance(ctx, suite.key, decimal.NewFromInt(5), suite.at); err != nil {
			return err
		}
		return failure
	})

	suite.ErrorIs(err, failure)
	suite.Equal("0", suite.amount())
	_, err = suite.repos.ReceiptRepo.FindReceiptByID(suite.ctx, "r1")
	suite.ErrorIs(err, apperrors.ErrNotFound)

	balances, err := suite.repos.BalanceRepo.ListBalances(suite.ctx, domain.BalanceFilter{})
	suite.Require().NoError(err)
	suite.Empty(balances)
}

func (suite *StoreTestSuite) TestRollbackRestoresPreviousValues() {
	suite.Require().NoError(suite.repos.BalanceRepo.IncreaseBalance(suite.ctx, suite.key, decimal.NewFromInt(7), suite.at))

	err := suite.repos.TxManager.WithinTransaction(suite.ctx, func(ctx context.Context, repos portsrepo.TxRepositories) error {
		if err := repos.Balances().DecreaseBalance(ctx, suite.key, decimal.NewFromInt(3), suite.at); err != nil {
			return err
		}
		return repos.Balances().DecreaseBalance(ctx, suite.key, decimal.NewFromInt(5), suite.at)
	})

	suite.ErrorIs(err, apperrors.ErrInsufficientStock)
	suite.Equal("7", suite.amount())
}

func (suite *StoreTestSuite) TestPanicRollsBackAndRepanics() {
	suite.Panics(func() {
		_ = suite.repos.TxManager.WithinTransaction(suite.ctx, func(ctx context.Context, repos portsrepo.TxRepositories) error {
			if err := repos.Balances().IncreaseBalance(ctx, suite.key, decimal.NewFromInt(2), suite.at); err != nil {
				return err
			}
			panic("boom")
		})
	})

	suite.Equal("0", suite.amount())

	// the lock must have been released
	suite.NoError(suite.repos.TxManager.WithinTransaction(suite.ctx, func(context.Context, portsrepo.TxRepositories) error {
		return nil
	}))
}

func (suite *StoreTestSuite) TestCancelledContext() {
	ctx, cancel := context.WithCancel(suite.ctx)
	cancel()
	called := false

	err := suite.repos.TxManager.WithinTransaction(ctx, func(context.Context, portsrepo.TxRepositories) error {
		called = true
		return nil
	})

	suite.ErrorIs(err, context.Canceled)
	suite.False(called)
}

func (suite *StoreTestSuite) TestReceiptNumbersAreUniqueIgnoringCase() {
	suite.Require().NoError(suite.repos.ReceiptRepo.SaveReceipt(suite.ctx, suite.receipt("r1", "R-1")))

	err := suite.repos.ReceiptRepo.SaveReceipt(suite.ctx, suite.receipt("r2", "r-1"))
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.ErrorIs(err, apperrors.ErrDuplicate)

	exists, err := suite.repos.ReceiptRepo.ReceiptNumberExists(suite.ctx, "r-1", "r1")
	suite.Require().NoError(err)
	suite.False(exists)
}

func (suite *StoreTestSuite) TestReturnedReceiptsAreCopies() {
	suite.Require().NoError(suite.repos.ReceiptRepo.SaveReceipt(suite.ctx, suite.receipt("r1", "R-1")))

	got, err := suite.repos.ReceiptRepo.FindReceiptByID(suite.ctx, "r1")
	suite.Require().NoError(err)
	got.Items[0].Quantity = decimal.NewFromInt(99)

	again, err := suite.repos.ReceiptRepo.FindReceiptByID(suite.ctx, "r1")
	suite.Require().NoError(err)
	suite.Equal("5", again.Items[0].Quantity.String())
}

func (suite *StoreTestSuite) TestListReceiptsOrdering() {
	older := suite.receipt("r1", "B")
	older.Date = suite.at.AddDate(0, 0, -1)
	suite.Require().NoError(suite.repos.ReceiptRepo.SaveReceipt(suite.ctx, older))
	suite.Require().NoError(suite.repos.ReceiptRepo.SaveReceipt(suite.ctx, suite.receipt("r2", "C")))
	suite.Require().NoError(suite.repos.ReceiptRepo.SaveReceipt(suite.ctx, suite.receipt("r3", "A")))

	list, err := suite.repos.ReceiptRepo.ListReceipts(suite.ctx, domain.MovementFilter{})
	suite.Require().NoError(err)
	suite.Require().Len(list, 3)
	suite.Equal([]string{"A", "C", "B"}, []string{list[0].Number, list[1].Number, list[2].Number})

	numbers, err := suite.repos.ReceiptRepo.ListReceiptNumbers(suite.ctx)
	suite.Require().NoError(err)
	suite.Equal([]string{"A", "B", "C"}, numbers)
}

func (suite *StoreTestSuite) TestReferenceInUse() {
	res := domain.Reference{ID: "res", Kind: domain.KindResource, Name: "Bolt", State: domain.StateActive}
	suite.Require().NoError(suite.repos.ReferenceRepo.SaveReference(suite.ctx, res))

	inUse, err := suite.repos.ReferenceRepo.IsReferenceInUse(suite.ctx, domain.KindResource, "res")
	suite.Require().NoError(err)
	suite.False(inUse)

	suite.Require().NoError(suite.repos.ReceiptRepo.SaveReceipt(suite.ctx, suite.receipt("r1", "R-1")))

	inUse, err = suite.repos.ReferenceRepo.IsReferenceInUse(suite.ctx, domain.KindResource, "res")
	suite.Require().NoError(err)
	suite.True(inUse)
}
