package services_test

import (
	"context"
	"time"

	"github.com/SscSPs/warehouse_management_app/internal/core/domain"
	portssvc "github.com/SscSPs/warehouse_management_app/internal/core/ports/services"
	"github.com/SscSPs/warehouse_management_app/internal/core/services"
	"github.com/SscSPs/warehouse_management_app/internal/dto"
	"github.com/SscSPs/warehouse_management_app/internal/repositories/memory"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

const operator = "operator"

var fixedNow = time.Date(2024, 3, 15, 10, 30, 0, 0, time.UTC)

// ledgerSuite wires every service to a fresh in-memory store with a small catalogue.
type ledgerSuite struct {
	suite.Suite
	ctx   context.Context
	store *memory.Store
	svc   *portssvc.ServiceContainer
	refs  map[string]string // name -> id
}

func (s *ledgerSuite) SetupTest() {
	s.ctx = context.Background()
	s.store = memory.NewStore()
	s.svc = services.NewServiceContainer(memory.NewRepositoryProvider(s.store), services.WithClock(func() time.Time { return fixedNow }))
	s.refs = make(map[string]string)

	for _, name := range []string{"Bolt", "Nut", "Washer"} {
		s.newReference(domain.KindResource, name)
	}
	for _, name := range []string{"pcs", "kg"} {
		s.newReference(domain.KindUnit, name)
	}
	s.newReference(domain.KindClient, "ACME")
}

func (s *ledgerSuite) newReference(kind domain.ReferenceKind, name string) *domain.Reference {
	ref, err := s.svc.Reference.CreateReference(s.ctx, kind, dto.ReferenceRequest{Name: name}, operator)
	s.Require().NoError(err)
	s.refs[name] = ref.ID
	return ref
}

func (s *ledgerSuite) id(name string) string {
	id, ok := s.refs[name]
	s.Require().True(ok, "unknown reference %s", name)
	return id
}

func (s *ledgerSuite) item(resource, unit, qty string) dto.LineItemRequest {
	return dto.LineItemRequest{
		ResourceID: s.id(resource),
		UnitID:     s.id(unit),
		Quantity:   decimal.RequireFromString(qty),
	}
}

func (s *ledgerSuite) receive(number string, items ...dto.LineItemRequest) *domain.Receipt {
	receipt, err := s.svc.Receipt.CreateReceipt(s.ctx, dto.CreateReceiptRequest{Number: number, Items: items}, operator)
	s.Require().NoError(err)
	return receipt
}

func (s *ledgerSuite) draft(number string, items ...dto.LineItemRequest) *domain.Shipment {
	shipment, err := s.svc.Shipment.CreateShipment(s.ctx, dto.CreateShipmentRequest{
		Number:   number,
		ClientID: s.id("ACME"),
		Items:    items,
	}, operator)
	s.Require().NoError(err)
	return shipment
}

func (s *ledgerSuite) balance(resource, unit string) decimal.Decimal {
	balances, err := s.svc.Balance.SearchBalances(s.ctx, domain.BalanceFilter{
		ResourceIDs: []string{s.id(resource)},
		UnitIDs:     []string{s.id(unit)},
	})
	s.Require().NoError(err)
	if len(balances) == 0 {
		return decimal.Zero
	}
	s.Require().Len(balances, 1)
	return balances[0].Amount
}

func (s *ledgerSuite) assertBalance(resource, unit, want string) {
	got := s.balance(resource, unit)
	s.True(decimal.RequireFromString(want).Equal(got), "balance %s/%s: want %s, got %s", resource, unit, want, got)
}

// assertConserved checks the stored balances against the movements.
func (s *ledgerSuite) assertConserved() {
	report, err := s.svc.Audit.VerifyBalances(s.ctx)
	s.Require().NoError(err)
	s.True(report.OK(), "ledger drift: %+v", report.Drifts)
}
