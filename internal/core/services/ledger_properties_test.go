package services_test

import (
	"errors"
	"fmt"
	"math/rand"
	"sync"
	"testing"

	"github.com/SscSPs/warehouse_management_app/internal/apperrors"
	"github.com/SscSPs/warehouse_management_app/internal/core/domain"
	"github.com/SscSPs/warehouse_management_app/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type LedgerPropertiesTestSuite struct {
	ledgerSuite
}

func TestLedgerPropertiesTestSuite(t *testing.T) {
	suite.Run(t, new(LedgerPropertiesTestSuite))
}

func (s *LedgerPropertiesTestSuite) randomItems(rng *rand.Rand) []dto.LineItemRequest {
	resources := []string{"Bolt", "Nut", "Washer"}
	units := []string{"pcs", "kg"}
	n := 1 + rng.Intn(3)
	items := make([]dto.LineItemRequest, n)
	for i := range items {
		qty := decimal.New(int64(1+rng.Intn(20000)), -3)
		items[i] = s.item(resources[rng.Intn(len(resources))], units[rng.Intn(len(units))], qty.String())
	}
	return items
}

// Random sequences of ledger operations never leave a negative balance and
// always keep balances equal to receipts minus signed shipments. Failed
// operations must be business errors only.
func (s *LedgerPropertiesTestSuite) TestRandomOperationsPreserveInvariants() {
	rng := rand.New(rand.NewSource(42))
	var receipts, shipments []string

	pick := func(ids []string) string { return ids[rng.Intn(len(ids))] }

	for step := 0; step < 400; step++ {
		var err error
		switch op := rng.Intn(7); {
		case op == 0 || len(receipts) == 0:
			var r *domain.Receipt
			r, err = s.svc.Receipt.CreateReceipt(s.ctx, dto.CreateReceiptRequest{Number: fmt.Sprintf("R-%d", step), Items: s.randomItems(rng)}, operator)
			if err == nil {
				receipts = append(receipts, r.ReceiptID)
			}
		case op == 1:
			_, err = s.svc.Receipt.UpdateReceipt(s.ctx, pick(receipts), dto.UpdateReceiptRequest{Number: fmt.Sprintf("RU-%d", step), Items: s.randomItems(rng)}, operator)
		case op == 2:
			err = s.svc.Receipt.DeleteReceipt(s.ctx, pick(receipts), operator)
		case op == 3 || len(shipments) == 0:
			var sh *domain.Shipment
			sh, err = s.svc.Shipment.CreateShipment(s.ctx, dto.CreateShipmentRequest{Number: fmt.Sprintf("S-%d", step), ClientID: s.id("ACME"), Items: s.randomItems(rng)}, operator)
			if err == nil {
				shipments = append(shipments, sh.ShipmentID)
			}
		case op == 4 || op == 5:
			_, err = s.svc.Shipment.SignShipment(s.ctx, pick(shipments), operator)
		default:
			_, err = s.svc.Shipment.RevokeShipment(s.ctx, pick(shipments), operator)
		}

		if err != nil {
			s.True(errors.Is(err, apperrors.ErrInsufficientStock) || errors.Is(err, apperrors.ErrNotFound),
				"step %d: unexpected error %v", step, err)
		}

		balances, err := s.svc.Balance.SearchBalances(s.ctx, domain.BalanceFilter{})
		s.Require().NoError(err)
		for _, b := range balances {
			s.Require().False(b.Amount.IsNegative(), "step %d: negative balance %s", step, b.Key())
		}
		s.assertConserved()
	}
}

// Signing then revoking restores every balance exactly.
func (s *LedgerPropertiesTestSuite) TestSignRevokeRoundTrip() {
	s.receive("R-1", s.item("Bolt", "pcs", "10.125"), s.item("Nut", "kg", "3"))
	before, err := s.svc.Balance.SearchBalances(s.ctx, domain.BalanceFilter{})
	s.Require().NoError(err)

	shipment := s.draft("S-1", s.item("Bolt", "pcs", "10.125"), s.item("Nut", "kg", "0.001"))
	_, err = s.svc.Shipment.SignShipment(s.ctx, shipment.ShipmentID, operator)
	s.Require().NoError(err)
	s.assertBalance("Bolt", "pcs", "0")
	_, err = s.svc.Shipment.RevokeShipment(s.ctx, shipment.ShipmentID, operator)
	s.Require().NoError(err)

	after, err := s.svc.Balance.SearchBalances(s.ctx, domain.BalanceFilter{})
	s.Require().NoError(err)
	s.Require().Len(after, len(before))
	for i := range before {
		s.Equal(before[i].Key(), after[i].Key())
		s.True(before[i].Amount.Equal(after[i].Amount))
	}
}

// Concurrent signs competing for the same stock never oversell.
func (s *LedgerPropertiesTestSuite) TestConcurrentSignsNeverOversell() {
	s.receive("R-1", s.item("Bolt", "pcs", "10"))
	var ids []string
	for i := 0; i < 8; i++ {
		ids = append(ids, s.draft(fmt.Sprintf("S-%d", i), s.item("Bolt", "pcs", "3")).ShipmentID)
	}

	var (
		wg     sync.WaitGroup
		mu     sync.Mutex
		signed int
	)
	for _, id := range ids {
		wg.Add(1)
		go func(id string) {
			defer wg.Done()
			_, err := s.svc.Shipment.SignShipment(s.ctx, id, operator)
			if err == nil {
				mu.Lock()
				signed++
				mu.Unlock()
				return
			}
			if !errors.Is(err, apperrors.ErrInsufficientStock) {
				s.T().Errorf("unexpected error: %v", err)
			}
		}(id)
	}
	wg.Wait()

	s.Equal(3, signed)
	s.assertBalance("Bolt", "pcs", "1")
	s.assertConserved()
}

// Signing the same shipment from many goroutines deducts once.
func (s *LedgerPropertiesTestSuite) TestConcurrentSignOfOneShipment() {
	s.receive("R-1", s.item("Bolt", "pcs", "10"))
	shipment := s.draft("S-1", s.item("Bolt", "pcs", "4"))

	var wg sync.WaitGroup
	for i := 0; i < 5; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := s.svc.Shipment.SignShipment(s.ctx, shipment.ShipmentID, operator); err != nil {
				s.T().Errorf("sign failed: %v", err)
			}
		}()
	}
	wg.Wait()

	s.assertBalance("Bolt", "pcs", "6")
}
