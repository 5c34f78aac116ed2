package domain

// EntityState is the lifecycle state of reference data.
type EntityState string

const (
	StateActive   EntityState = "ACTIVE"
	StateArchived EntityState = "ARCHIVED"
)

// IsValid reports whether s is a known state.
func (s EntityState) IsValid() bool {
	return s == StateActive || s == StateArchived
}

// ReferenceKind identifies which reference catalogue an entity belongs to.
type ReferenceKind string

const (
	KindResource ReferenceKind = "resource"
	KindUnit     ReferenceKind = "unit"
	KindClient   ReferenceKind = "client"
)

// IsValid reports whether k is a known reference kind.
func (k ReferenceKind) IsValid() bool {
	switch k {
	case KindResource, KindUnit, KindClient:
		return true
	}
	return false
}

// Reference is a resource, a measurement unit or a client. Archived references
// stay valid for historical movements but cannot be used in new ones.
type Reference struct {
	ID      string        `json:"id"`
	Kind    ReferenceKind `json:"kind"`
	Name    string        `json:"name"`
	Address string        `json:"address,omitempty"` // clients only
	State   EntityState   `json:"state"`
	AuditFields
}

// IsActive reports whether the reference may be used in new movements.
func (r Reference) IsActive() bool {
	return r.State == StateActive
}
