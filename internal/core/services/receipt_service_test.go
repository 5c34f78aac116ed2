package services_test

import (
	"testing"

	"github.com/SscSPs/warehouse_management_app/internal/apperrors"
	"github.com/SscSPs/warehouse_management_app/internal/core/domain"
	"github.com/SscSPs/warehouse_management_app/internal/dto"
	"github.com/stretchr/testify/suite"
)

type ReceiptServiceTestSuite struct {
	ledgerSuite
}

func TestReceiptServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ReceiptServiceTestSuite))
}

func (s *ReceiptServiceTestSuite) TestCreateReceipt_IncreasesBalances() {
	receipt := s.receive("R-1", s.item("Bolt", "pcs", "10"), s.item("Bolt", "pcs", "2.5"), s.item("Nut", "kg", "1.125"))

	s.Equal("R-1", receipt.Number)
	s.Equal(domain.DateOnly(fixedNow), receipt.Date, "date defaults to today")
	s.Equal(operator, receipt.CreatedBy)
	s.Len(receipt.Items, 3)
	s.assertBalance("Bolt", "pcs", "12.5")
	s.assertBalance("Nut", "kg", "1.125")
	s.assertBalance("Bolt", "kg", "0")
	s.assertConserved()
}

func (s *ReceiptServiceTestSuite) TestCreateReceipt_NormalizesNumberAndKeepsDate() {
	receipt, err := s.svc.Receipt.CreateReceipt(s.ctx, dto.CreateReceiptRequest{
		Number: "  R   7 ",
		Date:   "2024-01-31",
		Items:  []dto.LineItemRequest{s.item("Bolt", "pcs", "1")},
	}, operator)

	s.Require().NoError(err)
	s.Equal("R 7", receipt.Number)
	s.Equal("2024-01-31", dto.FormatDate(receipt.Date))
}

func (s *ReceiptServiceTestSuite) TestCreateReceipt_DuplicateNumberIgnoresCase() {
	s.receive("R-1", s.item("Bolt", "pcs", "1"))

	_, err := s.svc.Receipt.CreateReceipt(s.ctx, dto.CreateReceiptRequest{
		Number: "r-1",
		Items:  []dto.LineItemRequest{s.item("Bolt", "pcs", "5")},
	}, operator)

	s.ErrorIs(err, apperrors.ErrValidation)
	s.ErrorIs(err, apperrors.ErrDuplicate)
	s.assertBalance("Bolt", "pcs", "1")
}

func (s *ReceiptServiceTestSuite) TestCreateReceipt_RejectsInvalidInput() {
	tests := []struct {
		name    string
		req     dto.CreateReceiptRequest
		wantErr error
	}{
		{"blank number", dto.CreateReceiptRequest{Number: "   ", Items: []dto.LineItemRequest{s.item("Bolt", "pcs", "1")}}, apperrors.ErrValidation},
		{"no items", dto.CreateReceiptRequest{Number: "R-2"}, apperrors.ErrValidation},
		{"zero quantity", dto.CreateReceiptRequest{Number: "R-2", Items: []dto.LineItemRequest{s.item("Bolt", "pcs", "0")}}, apperrors.ErrValidation},
		{"negative quantity", dto.CreateReceiptRequest{Number: "R-2", Items: []dto.LineItemRequest{s.item("Bolt", "pcs", "-3")}}, apperrors.ErrValidation},
		{"too many decimals", dto.CreateReceiptRequest{Number: "R-2", Items: []dto.LineItemRequest{s.item("Bolt", "pcs", "1.0005")}}, apperrors.ErrValidation},
		{"bad date", dto.CreateReceiptRequest{Number: "R-2", Date: "31/01/2024", Items: []dto.LineItemRequest{s.item("Bolt", "pcs", "1")}}, apperrors.ErrValidation},
		{"unknown resource", dto.CreateReceiptRequest{Number: "R-2", Items: []dto.LineItemRequest{{ResourceID: "missing", UnitID: s.id("pcs"), Quantity: s.item("Bolt", "pcs", "1").Quantity}}}, apperrors.ErrNotFound},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			_, err := s.svc.Receipt.CreateReceipt(s.ctx, tt.req, operator)
			s.ErrorIs(err, tt.wantErr)
		})
	}
	s.assertBalance("Bolt", "pcs", "0")
	numbers, err := s.svc.Receipt.ListReceiptNumbers(s.ctx)
	s.Require().NoError(err)
	s.Empty(numbers)
}

func (s *ReceiptServiceTestSuite) TestCreateReceipt_ArchivedResourceRejected() {
	_, err := s.svc.Reference.SetReferenceState(s.ctx, domain.KindResource, s.id("Washer"), domain.StateArchived, operator)
	s.Require().NoError(err)

	_, err = s.svc.Receipt.CreateReceipt(s.ctx, dto.CreateReceiptRequest{
		Number: "R-9",
		Items:  []dto.LineItemRequest{s.item("Washer", "pcs", "1")},
	}, operator)

	s.ErrorIs(err, apperrors.ErrArchivedReference)
	s.assertBalance("Washer", "pcs", "0")
}

func (s *ReceiptServiceTestSuite) TestUpdateReceipt_AppliesDelta() {
	receipt := s.receive("R-1", s.item("Bolt", "pcs", "10"), s.item("Nut", "pcs", "4"))

	updated, err := s.svc.Receipt.UpdateReceipt(s.ctx, receipt.ReceiptID, dto.UpdateReceiptRequest{
		Number: "R-1a",
		Items:  []dto.LineItemRequest{s.item("Bolt", "pcs", "6"), s.item("Washer", "kg", "2")},
	}, "editor")

	s.Require().NoError(err)
	s.Equal("R-1a", updated.Number)
	s.Equal(receipt.Date, updated.Date, "empty date keeps the stored one")
	s.Equal("editor", updated.LastUpdatedBy)
	s.assertBalance("Bolt", "pcs", "6")
	s.assertBalance("Nut", "pcs", "0")
	s.assertBalance("Washer", "kg", "2")
	s.assertConserved()
}

// A receipt whose stock was already shipped cannot be reduced below what remains.
func (s *ReceiptServiceTestSuite) TestUpdateReceipt_ShortageLeavesEverythingUnchanged() {
	receipt := s.receive("R-1", s.item("Bolt", "pcs", "10"))
	shipment := s.draft("S-1", s.item("Bolt", "pcs", "7"))
	_, err := s.svc.Shipment.SignShipment(s.ctx, shipment.ShipmentID, operator)
	s.Require().NoError(err)
	s.assertBalance("Bolt", "pcs", "3")

	_, err = s.svc.Receipt.UpdateReceipt(s.ctx, receipt.ReceiptID, dto.UpdateReceiptRequest{
		Number: "R-1",
		Items:  []dto.LineItemRequest{s.item("Bolt", "pcs", "5"), s.item("Nut", "pcs", "1")},
	}, operator)

	s.ErrorIs(err, apperrors.ErrInsufficientStock)
	s.assertBalance("Bolt", "pcs", "3")
	s.assertBalance("Nut", "pcs", "0")
	stored, err := s.svc.Receipt.GetReceiptByID(s.ctx, receipt.ReceiptID)
	s.Require().NoError(err)
	s.Require().Len(stored.Items, 1)
	s.True(stored.Items[0].Quantity.Equal(s.item("Bolt", "pcs", "10").Quantity))
	s.assertConserved()
}

func (s *ReceiptServiceTestSuite) TestUpdateReceipt_NotFound() {
	_, err := s.svc.Receipt.UpdateReceipt(s.ctx, "missing", dto.UpdateReceiptRequest{
		Number: "R-1",
		Items:  []dto.LineItemRequest{s.item("Bolt", "pcs", "1")},
	}, operator)

	s.ErrorIs(err, apperrors.ErrNotFound)
}

func (s *ReceiptServiceTestSuite) TestUpdateReceipt_KeepsOwnNumber() {
	receipt := s.receive("R-1", s.item("Bolt", "pcs", "1"))

	_, err := s.svc.Receipt.UpdateReceipt(s.ctx, receipt.ReceiptID, dto.UpdateReceiptRequest{
		Number: "r-1",
		Items:  []dto.LineItemRequest{s.item("Bolt", "pcs", "2")},
	}, operator)

	s.Require().NoError(err)
	s.assertBalance("Bolt", "pcs", "2")
}

func (s *ReceiptServiceTestSuite) TestDeleteReceipt_RemovesStock() {
	receipt := s.receive("R-1", s.item("Bolt", "pcs", "10"))

	s.Require().NoError(s.svc.Receipt.DeleteReceipt(s.ctx, receipt.ReceiptID, operator))

	s.assertBalance("Bolt", "pcs", "0")
	_, err := s.svc.Receipt.GetReceiptByID(s.ctx, receipt.ReceiptID)
	s.ErrorIs(err, apperrors.ErrNotFound)
	s.assertConserved()
}

func (s *ReceiptServiceTestSuite) TestDeleteReceipt_ShortageKeepsReceipt() {
	receipt := s.receive("R-1", s.item("Bolt", "pcs", "10"))
	shipment := s.draft("S-1", s.item("Bolt", "pcs", "4"))
	_, err := s.svc.Shipment.SignShipment(s.ctx, shipment.ShipmentID, operator)
	s.Require().NoError(err)

	err = s.svc.Receipt.DeleteReceipt(s.ctx, receipt.ReceiptID, operator)

	s.ErrorIs(err, apperrors.ErrInsufficientStock)
	s.assertBalance("Bolt", "pcs", "6")
	_, err = s.svc.Receipt.GetReceiptByID(s.ctx, receipt.ReceiptID)
	s.NoError(err)
}

func (s *ReceiptServiceTestSuite) TestSearchReceipts() {
	early, err := s.svc.Receipt.CreateReceipt(s.ctx, dto.CreateReceiptRequest{
		Number: "R-B", Date: "2024-01-05", Items: []dto.LineItemRequest{s.item("Bolt", "pcs", "1")},
	}, operator)
	s.Require().NoError(err)
	late, err := s.svc.Receipt.CreateReceipt(s.ctx, dto.CreateReceiptRequest{
		Number: "R-A", Date: "2024-02-05", Items: []dto.LineItemRequest{s.item("Nut", "kg", "1")},
	}, operator)
	s.Require().NoError(err)

	all, err := s.svc.Receipt.SearchReceipts(s.ctx, domain.MovementFilter{})
	s.Require().NoError(err)
	s.Require().Len(all, 2)
	s.Equal(late.ReceiptID, all[0].ReceiptID, "newest first")

	filter, err := dto.MovementSearchParams{From: "2024-01-01", To: "2024-01-05"}.ToFilter()
	s.Require().NoError(err)
	byDate, err := s.svc.Receipt.SearchReceipts(s.ctx, filter)
	s.Require().NoError(err)
	s.Require().Len(byDate, 1)
	s.Equal(early.ReceiptID, byDate[0].ReceiptID)

	byResource, err := s.svc.Receipt.SearchReceipts(s.ctx, domain.MovementFilter{ResourceIDs: []string{s.id("Nut")}})
	s.Require().NoError(err)
	s.Require().Len(byResource, 1)
	s.Equal(late.ReceiptID, byResource[0].ReceiptID)

	numbers, err := s.svc.Receipt.ListReceiptNumbers(s.ctx)
	s.Require().NoError(err)
	s.Equal([]string{"R-A", "R-B"}, numbers)
}
