package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/SscSPs/warehouse_management_app/internal/apperrors"
	"github.com/SscSPs/warehouse_management_app/internal/core/domain"
	portsrepo "github.com/SscSPs/warehouse_management_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/warehouse_management_app/internal/core/ports/services"
	"github.com/SscSPs/warehouse_management_app/internal/core/services"
	"github.com/SscSPs/warehouse_management_app/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock ReceiptRepository ---
type MockReceiptRepository struct {
	mock.Mock
}

var _ portsrepo.ReceiptRepositoryFacade = (*MockReceiptRepository)(nil)

func (m *MockReceiptRepository) FindReceiptByID(ctx context.Context, receiptID string) (*domain.Receipt, error) {
	args := m.Called(ctx, receiptID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Receipt), args.Error(1)
}

func (m *MockReceiptRepository) FindReceiptByIDForUpdate(ctx context.Context, receiptID string) (*domain.Receipt, error) {
	args := m.Called(ctx, receiptID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Receipt), args.Error(1)
}

func (m *MockReceiptRepository) ListReceipts(ctx context.Context, filter domain.MovementFilter) ([]domain.Receipt, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Receipt), args.Error(1)
}

func (m *MockReceiptRepository) ReceiptNumberExists(ctx context.Context, number string, excludeID string) (bool, error) {
	args := m.Called(ctx, number, excludeID)
	return args.Bool(0), args.Error(1)
}

func (m *MockReceiptRepository) ListReceiptNumbers(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockReceiptRepository) SaveReceipt(ctx context.Context, receipt domain.Receipt) error {
	return m.Called(ctx, receipt).Error(0)
}

func (m *MockReceiptRepository) UpdateReceipt(ctx context.Context, receipt domain.Receipt) error {
	return m.Called(ctx, receipt).Error(0)
}

func (m *MockReceiptRepository) DeleteReceipt(ctx context.Context, receiptID string) error {
	return m.Called(ctx, receiptID).Error(0)
}

// --- Mock ReferenceReader ---
type MockReferenceRepository struct {
	mock.Mock
	portsrepo.ReferenceWriter
}

func (m *MockReferenceRepository) FindReferenceByID(ctx context.Context, kind domain.ReferenceKind, id string) (*domain.Reference, error) {
	args := m.Called(ctx, kind, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Reference), args.Error(1)
}

func (m *MockReferenceRepository) ListReferences(ctx context.Context, kind domain.ReferenceKind, state *domain.EntityState) ([]domain.Reference, error) {
	args := m.Called(ctx, kind, state)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Reference), args.Error(1)
}

func (m *MockReferenceRepository) ReferenceNameExists(ctx context.Context, kind domain.ReferenceKind, name string, excludeID string) (bool, error) {
	args := m.Called(ctx, kind, name, excludeID)
	return args.Bool(0), args.Error(1)
}

func (m *MockReferenceRepository) IsReferenceInUse(ctx context.Context, kind domain.ReferenceKind, id string) (bool, error) {
	args := m.Called(ctx, kind, id)
	return args.Bool(0), args.Error(1)
}

// --- Mock BalanceRepository (write path only) ---
type MockBalanceWriter struct {
	mock.Mock
	portsrepo.BalanceReader
}

func (m *MockBalanceWriter) LockBalances(ctx context.Context, keys []domain.BalanceKey) (map[domain.BalanceKey]decimal.Decimal, error) {
	args := m.Called(ctx, keys)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[domain.BalanceKey]decimal.Decimal), args.Error(1)
}

func (m *MockBalanceWriter) IncreaseBalance(ctx context.Context, key domain.BalanceKey, qty decimal.Decimal, at time.Time) error {
	return m.Called(ctx, key, qty.String(), at).Error(0)
}

func (m *MockBalanceWriter) DecreaseBalance(ctx context.Context, key domain.BalanceKey, qty decimal.Decimal, at time.Time) error {
	return m.Called(ctx, key, qty.String(), at).Error(0)
}

// stubTxManager runs the unit of work directly against the mocks and records the outcome.
type stubTxManager struct {
	receipts   *MockReceiptRepository
	references *MockReferenceRepository
	balances   *MockBalanceWriter
	committed  bool
	rolledBack bool
}

func (t *stubTxManager) WithinTransaction(ctx context.Context, fn portsrepo.TxFunc) error {
	if err := fn(ctx, t); err != nil {
		t.rolledBack = true
		return err
	}
	t.committed = true
	return nil
}

func (t *stubTxManager) Balances() portsrepo.BalanceRepositoryFacade     { return t.balances }
func (t *stubTxManager) Receipts() portsrepo.ReceiptRepositoryFacade     { return t.receipts }
func (t *stubTxManager) Shipments() portsrepo.ShipmentRepositoryFacade   { return nil }
func (t *stubTxManager) References() portsrepo.ReferenceRepositoryFacade { return t.references }

// --- Test Suite ---
type ReceiptServiceMockTestSuite struct {
	suite.Suite
	ctx     context.Context
	tx      *stubTxManager
	service portssvc.ReceiptSvcFacade
	req     dto.CreateReceiptRequest
}

func TestReceiptServiceMockTestSuite(t *testing.T) {
	suite.Run(t, new(ReceiptServiceMockTestSuite))
}

func (suite *ReceiptServiceMockTestSuite) SetupTest() {
	suite.ctx = context.Background()
	suite.tx = &stubTxManager{
		receipts:   new(MockReceiptRepository),
		references: new(MockReferenceRepository),
		balances:   new(MockBalanceWriter),
	}
	suite.service = services.NewReceiptService(suite.tx.receipts, suite.tx, services.WithClock(func() time.Time { return fixedNow }))
	suite.req = dto.CreateReceiptRequest{
		Number: "R-1",
		Items:  []dto.LineItemRequest{{ResourceID: "res", UnitID: "unit", Quantity: decimal.NewFromInt(4)}},
	}
}

func (suite *ReceiptServiceMockTestSuite) expectActiveReferences() {
	suite.tx.references.On("FindReferenceByID", suite.ctx, domain.KindResource, "res").
		Return(&domain.Reference{ID: "res", Kind: domain.KindResource, State: domain.StateActive}, nil).Once()
	suite.tx.references.On("FindReferenceByID", suite.ctx, domain.KindUnit, "unit").
		Return(&domain.Reference{ID: "unit", Kind: domain.KindUnit, State: domain.StateActive}, nil).Once()
}

func (suite *ReceiptServiceMockTestSuite) TestCreateReceipt_Success() {
	key := domain.BalanceKey{ResourceID: "res", UnitID: "unit"}
	suite.tx.receipts.On("ReceiptNumberExists", suite.ctx, "R-1", "").Return(false, nil).Once()
	suite.expectActiveReferences()
	suite.tx.receipts.On("SaveReceipt", suite.ctx, mock.MatchedBy(func(r domain.Receipt) bool {
		return r.Number == "R-1" && len(r.Items) == 1 && r.CreatedBy == "op"
	})).Return(nil).Once()
	suite.tx.balances.On("LockBalances", suite.ctx, []domain.BalanceKey{key}).
		Return(map[domain.BalanceKey]decimal.Decimal{key: decimal.Zero}, nil).Once()
	suite.tx.balances.On("IncreaseBalance", suite.ctx, key, "4", fixedNow).Return(nil).Once()

	receipt, err := suite.service.CreateReceipt(suite.ctx, suite.req, "op")

	suite.Require().NoError(err)
	suite.Equal("R-1", receipt.Number)
	suite.True(suite.tx.committed)
	suite.tx.receipts.AssertExpectations(suite.T())
	suite.tx.balances.AssertExpectations(suite.T())
}

func (suite *ReceiptServiceMockTestSuite) TestCreateReceipt_SaveErrorSkipsBalances() {
	suite.tx.receipts.On("ReceiptNumberExists", suite.ctx, "R-1", "").Return(false, nil).Once()
	suite.expectActiveReferences()
	suite.tx.receipts.On("SaveReceipt", suite.ctx, mock.AnythingOfType("domain.Receipt")).Return(assert.AnError).Once()

	receipt, err := suite.service.CreateReceipt(suite.ctx, suite.req, "op")

	suite.Nil(receipt)
	suite.ErrorIs(err, assert.AnError)
	suite.True(suite.tx.rolledBack)
	suite.tx.balances.AssertNotCalled(suite.T(), "LockBalances", mock.Anything, mock.Anything)
}

func (suite *ReceiptServiceMockTestSuite) TestCreateReceipt_BalanceErrorRollsBack() {
	key := domain.BalanceKey{ResourceID: "res", UnitID: "unit"}
	suite.tx.receipts.On("ReceiptNumberExists", suite.ctx, "R-1", "").Return(false, nil).Once()
	suite.expectActiveReferences()
	suite.tx.receipts.On("SaveReceipt", suite.ctx, mock.AnythingOfType("domain.Receipt")).Return(nil).Once()
	suite.tx.balances.On("LockBalances", suite.ctx, []domain.BalanceKey{key}).Return(nil, assert.AnError).Once()

	_, err := suite.service.CreateReceipt(suite.ctx, suite.req, "op")

	suite.ErrorIs(err, assert.AnError)
	suite.True(suite.tx.rolledBack)
	suite.False(suite.tx.committed)
}

func (suite *ReceiptServiceMockTestSuite) TestDeleteReceipt_NotFound() {
	suite.tx.receipts.On("FindReceiptByIDForUpdate", suite.ctx, "missing").Return(nil, apperrors.ErrNotFound).Once()

	err := suite.service.DeleteReceipt(suite.ctx, "missing", "op")

	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.tx.receipts.AssertNotCalled(suite.T(), "DeleteReceipt", mock.Anything, mock.Anything)
}

func (suite *ReceiptServiceMockTestSuite) TestGetReceiptByID_RepositoryError() {
	suite.tx.receipts.On("FindReceiptByID", suite.ctx, "r1").Return(nil, assert.AnError).Once()

	receipt, err := suite.service.GetReceiptByID(suite.ctx, "r1")

	suite.Nil(receipt)
	suite.ErrorIs(err, assert.AnError)
}
