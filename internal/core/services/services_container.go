package services

import (
	portsrepo "github.com/SscSPs/warehouse_management_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/warehouse_management_app/internal/core/ports/services"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(repos portsrepo.RepositoryProvider, options ...ServiceOption) *portssvc.ServiceContainer {
	return &portssvc.ServiceContainer{
		Receipt:   NewReceiptService(repos.ReceiptRepo, repos.TxManager, options...),
		Shipment:  NewShipmentService(repos.ShipmentRepo, repos.TxManager, options...),
		Reference: NewReferenceService(repos.ReferenceRepo, repos.TxManager, options...),
		Balance:   NewBalanceService(repos.BalanceRepo, repos.ReferenceRepo, options...),
		Audit:     NewLedgerAuditService(repos.TxManager, options...),
	}
}
