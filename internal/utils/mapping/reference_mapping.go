package mapping

import (
	"github.com/SscSPs/warehouse_management_app/internal/core/domain"
	"github.com/SscSPs/warehouse_management_app/internal/models"
)

// ToModelReference converts a domain Reference to a model Reference
func ToModelReference(d domain.Reference) models.Reference {
	return models.Reference{
		ID:          d.ID,
		Name:        d.Name,
		Address:     d.Address,
		State:       string(d.State),
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainReference converts a model Reference of the given kind to a domain Reference
func ToDomainReference(kind domain.ReferenceKind, m models.Reference) domain.Reference {
	return domain.Reference{
		ID:          m.ID,
		Kind:        kind,
		Name:        m.Name,
		Address:     m.Address,
		State:       domain.EntityState(m.State),
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}
