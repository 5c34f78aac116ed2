package repositories

import (
	"context"

	"github.com/SscSPs/warehouse_management_app/internal/core/domain"
)

// ReferenceReader defines read operations for resources, units and clients
type ReferenceReader interface {
	// FindReferenceByID retrieves a reference of the given kind.
	FindReferenceByID(ctx context.Context, kind domain.ReferenceKind, id string) (*domain.Reference, error)

	// ListReferences lists references of a kind ordered by name, optionally by state.
	ListReferences(ctx context.Context, kind domain.ReferenceKind, state *domain.EntityState) ([]domain.Reference, error)

	// ReferenceNameExists checks case-insensitively whether name is taken by another reference of the kind.
	ReferenceNameExists(ctx context.Context, kind domain.ReferenceKind, name string, excludeID string) (bool, error)

	// IsReferenceInUse reports whether any movement points at the reference.
	IsReferenceInUse(ctx context.Context, kind domain.ReferenceKind, id string) (bool, error)
}

// ReferenceWriter defines write operations for resources, units and clients
type ReferenceWriter interface {
	SaveReference(ctx context.Context, ref domain.Reference) error
	UpdateReference(ctx context.Context, ref domain.Reference) error
	DeleteReference(ctx context.Context, kind domain.ReferenceKind, id string) error
}

// ReferenceRepositoryFacade combines all reference-related repository interfaces
type ReferenceRepositoryFacade interface {
	ReferenceReader
	ReferenceWriter
}
