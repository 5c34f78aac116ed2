package services_test

import (
	"context"
	"testing"

	"github.com/SscSPs/warehouse_management_app/internal/apperrors"
	"github.com/SscSPs/warehouse_management_app/internal/core/domain"
	portsrepo "github.com/SscSPs/warehouse_management_app/internal/core/ports/repositories"
	"github.com/SscSPs/warehouse_management_app/internal/dto"
	"github.com/SscSPs/warehouse_management_app/internal/repositories/memory"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

type ShipmentServiceTestSuite struct {
	ledgerSuite
}

func TestShipmentServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ShipmentServiceTestSuite))
}

func (s *ShipmentServiceTestSuite) TestCreateShipment_DraftHasNoBalanceEffect() {
	s.receive("R-1", s.item("Bolt", "pcs", "5"))

	shipment := s.draft("S-1", s.item("Bolt", "pcs", "50"))

	s.Equal(domain.ShipmentDraft, shipment.State)
	s.Equal(s.id("ACME"), shipment.ClientID)
	s.assertBalance("Bolt", "pcs", "5")
}

func (s *ShipmentServiceTestSuite) TestCreateShipment_Validation() {
	_, err := s.svc.Shipment.CreateShipment(s.ctx, dto.CreateShipmentRequest{Number: "S-1", ClientID: s.id("ACME")}, operator)
	s.ErrorIs(err, apperrors.ErrValidation, "items are required")

	_, err = s.svc.Shipment.CreateShipment(s.ctx, dto.CreateShipmentRequest{
		Number: "S-1", ClientID: "nobody", Items: []dto.LineItemRequest{s.item("Bolt", "pcs", "1")},
	}, operator)
	s.ErrorIs(err, apperrors.ErrNotFound)

	_, err = s.svc.Reference.SetReferenceState(s.ctx, domain.KindClient, s.id("ACME"), domain.StateArchived, operator)
	s.Require().NoError(err)
	_, err = s.svc.Shipment.CreateShipment(s.ctx, dto.CreateShipmentRequest{
		Number: "S-1", ClientID: s.id("ACME"), Items: []dto.LineItemRequest{s.item("Bolt", "pcs", "1")},
	}, operator)
	s.ErrorIs(err, apperrors.ErrArchivedReference)
}

func (s *ShipmentServiceTestSuite) TestCreateShipment_DuplicateNumber() {
	s.draft("S-1", s.item("Bolt", "pcs", "1"))

	_, err := s.svc.Shipment.CreateShipment(s.ctx, dto.CreateShipmentRequest{
		Number: " s-1", ClientID: s.id("ACME"), Items: []dto.LineItemRequest{s.item("Bolt", "pcs", "1")},
	}, operator)

	s.ErrorIs(err, apperrors.ErrDuplicate)
}

// Receive 10, draft 7, sign: balance 3.
func (s *ShipmentServiceTestSuite) TestSignShipment_DeductsStock() {
	s.receive("R-1", s.item("Bolt", "pcs", "10"))
	shipment := s.draft("S-1", s.item("Bolt", "pcs", "7"))

	signed, err := s.svc.Shipment.SignShipment(s.ctx, shipment.ShipmentID, "signer")

	s.Require().NoError(err)
	s.Equal(domain.ShipmentSigned, signed.State)
	s.Equal("signer", signed.LastUpdatedBy)
	s.assertBalance("Bolt", "pcs", "3")
	s.assertConserved()
}

// Balances 5 and 5; a shipment wanting 3 and 7 fails as a whole.
func (s *ShipmentServiceTestSuite) TestSignShipment_AllOrNothing() {
	s.receive("R-1", s.item("Bolt", "pcs", "5"), s.item("Nut", "pcs", "5"))
	shipment := s.draft("S-1", s.item("Bolt", "pcs", "3"), s.item("Nut", "pcs", "7"))

	_, err := s.svc.Shipment.SignShipment(s.ctx, shipment.ShipmentID, operator)

	s.ErrorIs(err, apperrors.ErrInsufficientStock)
	s.Contains(err.Error(), s.id("Nut"))
	s.assertBalance("Bolt", "pcs", "5")
	s.assertBalance("Nut", "pcs", "5")
	stored, err := s.svc.Shipment.GetShipmentByID(s.ctx, shipment.ShipmentID)
	s.Require().NoError(err)
	s.Equal(domain.ShipmentDraft, stored.State)
}

func (s *ShipmentServiceTestSuite) TestSignShipment_AggregatesDuplicateKeys() {
	s.receive("R-1", s.item("Bolt", "pcs", "5"))
	shipment := s.draft("S-1", s.item("Bolt", "pcs", "3"), s.item("Bolt", "pcs", "3"))

	_, err := s.svc.Shipment.SignShipment(s.ctx, shipment.ShipmentID, operator)

	s.ErrorIs(err, apperrors.ErrInsufficientStock)
	s.assertBalance("Bolt", "pcs", "5")
}

func (s *ShipmentServiceTestSuite) TestSignShipment_Idempotent() {
	s.receive("R-1", s.item("Bolt", "pcs", "10"))
	shipment := s.draft("S-1", s.item("Bolt", "pcs", "4"))

	_, err := s.svc.Shipment.SignShipment(s.ctx, shipment.ShipmentID, operator)
	s.Require().NoError(err)
	again, err := s.svc.Shipment.SignShipment(s.ctx, shipment.ShipmentID, operator)

	s.Require().NoError(err)
	s.Equal(domain.ShipmentSigned, again.State)
	s.assertBalance("Bolt", "pcs", "6")
}

func (s *ShipmentServiceTestSuite) TestRevokeShipment_RestoresStock() {
	s.receive("R-1", s.item("Bolt", "pcs", "10"))
	shipment := s.draft("S-1", s.item("Bolt", "pcs", "7"))
	_, err := s.svc.Shipment.SignShipment(s.ctx, shipment.ShipmentID, operator)
	s.Require().NoError(err)

	revoked, err := s.svc.Shipment.RevokeShipment(s.ctx, shipment.ShipmentID, operator)

	s.Require().NoError(err)
	s.Equal(domain.ShipmentDraft, revoked.State)
	s.assertBalance("Bolt", "pcs", "10")

	again, err := s.svc.Shipment.RevokeShipment(s.ctx, shipment.ShipmentID, operator)
	s.Require().NoError(err)
	s.Equal(domain.ShipmentDraft, again.State)
	s.assertBalance("Bolt", "pcs", "10")
	s.assertConserved()
}

func (s *ShipmentServiceTestSuite) TestSignedShipmentIsReadOnly() {
	s.receive("R-1", s.item("Bolt", "pcs", "10"))
	shipment := s.draft("S-1", s.item("Bolt", "pcs", "2"))
	_, err := s.svc.Shipment.SignShipment(s.ctx, shipment.ShipmentID, operator)
	s.Require().NoError(err)

	_, err = s.svc.Shipment.UpdateShipment(s.ctx, shipment.ShipmentID, dto.UpdateShipmentRequest{
		Number: "S-1", ClientID: s.id("ACME"), Items: []dto.LineItemRequest{s.item("Bolt", "pcs", "1")},
	}, operator)
	s.ErrorIs(err, apperrors.ErrInvalidState)

	err = s.svc.Shipment.DeleteShipment(s.ctx, shipment.ShipmentID, operator)
	s.ErrorIs(err, apperrors.ErrInvalidState)

	s.assertBalance("Bolt", "pcs", "8")
}

func (s *ShipmentServiceTestSuite) TestUpdateAndDeleteDraft() {
	shipment := s.draft("S-1", s.item("Bolt", "pcs", "2"))

	updated, err := s.svc.Shipment.UpdateShipment(s.ctx, shipment.ShipmentID, dto.UpdateShipmentRequest{
		Number: "S-2", Date: "2024-02-01", ClientID: s.id("ACME"), Items: []dto.LineItemRequest{s.item("Nut", "kg", "1.5")},
	}, operator)
	s.Require().NoError(err)
	s.Equal("S-2", updated.Number)
	s.Equal("2024-02-01", dto.FormatDate(updated.Date))
	s.Require().Len(updated.Items, 1)
	s.Equal(s.id("Nut"), updated.Items[0].ResourceID)

	s.Require().NoError(s.svc.Shipment.DeleteShipment(s.ctx, shipment.ShipmentID, operator))
	_, err = s.svc.Shipment.GetShipmentByID(s.ctx, shipment.ShipmentID)
	s.ErrorIs(err, apperrors.ErrNotFound)
}

// A shipment stored without items cannot be signed.
func (s *ShipmentServiceTestSuite) TestSignShipment_EmptyRejected() {
	repos := memory.NewRepositoryProvider(s.store)
	id := uuid.NewString()
	err := repos.TxManager.WithinTransaction(s.ctx, func(ctx context.Context, tx portsrepo.TxRepositories) error {
		return tx.Shipments().SaveShipment(ctx, domain.Shipment{
			ShipmentID: id,
			Number:     "S-EMPTY",
			Date:       fixedNow,
			ClientID:   s.id("ACME"),
			State:      domain.ShipmentDraft,
		})
	})
	s.Require().NoError(err)

	_, err = s.svc.Shipment.SignShipment(s.ctx, id, operator)

	s.ErrorIs(err, apperrors.ErrValidation)
	stored, err := s.svc.Shipment.GetShipmentByID(s.ctx, id)
	s.Require().NoError(err)
	s.Equal(domain.ShipmentDraft, stored.State)
}

func (s *ShipmentServiceTestSuite) TestSignShipment_NotFound() {
	_, err := s.svc.Shipment.SignShipment(s.ctx, "missing", operator)
	s.ErrorIs(err, apperrors.ErrNotFound)
}

func (s *ShipmentServiceTestSuite) TestSearchShipments_ByState() {
	s.receive("R-1", s.item("Bolt", "pcs", "10"))
	signed := s.draft("S-1", s.item("Bolt", "pcs", "1"))
	s.draft("S-2", s.item("Bolt", "pcs", "1"))
	_, err := s.svc.Shipment.SignShipment(s.ctx, signed.ShipmentID, operator)
	s.Require().NoError(err)

	filter, err := dto.MovementSearchParams{State: "SIGNED"}.ToFilter()
	s.Require().NoError(err)
	result, err := s.svc.Shipment.SearchShipments(s.ctx, filter)

	s.Require().NoError(err)
	s.Require().Len(result, 1)
	s.Equal(signed.ShipmentID, result[0].ShipmentID)

	numbers, err := s.svc.Shipment.ListShipmentNumbers(s.ctx)
	s.Require().NoError(err)
	s.Equal([]string{"S-1", "S-2"}, numbers)
}
