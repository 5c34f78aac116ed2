package services

import (
	"context"

	"github.com/SscSPs/warehouse_management_app/internal/core/domain"
	"github.com/SscSPs/warehouse_management_app/internal/dto"
)

// ReferenceReaderSvc defines read operations for resources, units and clients
type ReferenceReaderSvc interface {
	GetReference(ctx context.Context, kind domain.ReferenceKind, id string) (*domain.Reference, error)
	ListReferences(ctx context.Context, kind domain.ReferenceKind, state *domain.EntityState) ([]domain.Reference, error)
}

// ReferenceWriterSvc defines write operations for resources, units and clients
type ReferenceWriterSvc interface {
	CreateReference(ctx context.Context, kind domain.ReferenceKind, req dto.ReferenceRequest, userID string) (*domain.Reference, error)
	UpdateReference(ctx context.Context, kind domain.ReferenceKind, id string, req dto.ReferenceRequest, userID string) (*domain.Reference, error)
	SetReferenceState(ctx context.Context, kind domain.ReferenceKind, id string, state domain.EntityState, userID string) (*domain.Reference, error)
	DeleteReference(ctx context.Context, kind domain.ReferenceKind, id string) error
}

// ReferenceSvcFacade combines all reference-related service interfaces
type ReferenceSvcFacade interface {
	ReferenceReaderSvc
	ReferenceWriterSvc
}
