package memory

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/SscSPs/warehouse_management_app/internal/apperrors"
	"github.com/SscSPs/warehouse_management_app/internal/core/domain"
	portsrepo "github.com/SscSPs/warehouse_management_app/internal/core/ports/repositories"
)

type referenceRepository struct {
	*scope
}

var _ portsrepo.ReferenceRepositoryFacade = (*referenceRepository)(nil)

func (r *referenceRepository) catalogue(kind domain.ReferenceKind) (map[string]domain.Reference, error) {
	refs, ok := r.store.references[kind]
	if !ok {
		return nil, fmt.Errorf("%w: unknown reference kind %q", apperrors.ErrValidation, kind)
	}
	return refs, nil
}

func (r *referenceRepository) FindReferenceByID(_ context.Context, kind domain.ReferenceKind, id string) (*domain.Reference, error) {
	var (
		ref domain.Reference
		ok  bool
		err error
	)
	r.read(func() {
		var refs map[string]domain.Reference
		if refs, err = r.catalogue(kind); err == nil {
			ref, ok = refs[id]
		}
	})
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("%w: %s %s", apperrors.ErrNotFound, kind, id)
	}
	return &ref, nil
}

func (r *referenceRepository) ListReferences(_ context.Context, kind domain.ReferenceKind, state *domain.EntityState) ([]domain.Reference, error) {
	out := []domain.Reference{}
	var err error
	r.read(func() {
		var refs map[string]domain.Reference
		if refs, err = r.catalogue(kind); err != nil {
			return
		}
		for _, ref := range refs {
			if state == nil || ref.State == *state {
				out = append(out, ref)
			}
		}
	})
	if err != nil {
		return nil, err
	}
	sort.Slice(out, func(i, j int) bool { return strings.ToLower(out[i].Name) < strings.ToLower(out[j].Name) })
	return out, nil
}

func (r *referenceRepository) ReferenceNameExists(_ context.Context, kind domain.ReferenceKind, name string, excludeID string) (bool, error) {
	var (
		exists bool
		err    error
	)
	r.read(func() {
		exists, err = r.nameTaken(kind, name, excludeID)
	})
	return exists, err
}

func (r *referenceRepository) IsReferenceInUse(_ context.Context, kind domain.ReferenceKind, id string) (bool, error) {
	var used bool
	r.read(func() {
		for _, s := range r.store.shipments {
			if kind == domain.KindClient && s.ClientID == id {
				used = true
				return
			}
			if itemsReference(s.Items, kind, id) {
				used = true
				return
			}
		}
		for _, rc := range r.store.receipts {
			if itemsReference(rc.Items, kind, id) {
				used = true
				return
			}
		}
	})
	return used, nil
}

func (r *referenceRepository) SaveReference(_ context.Context, ref domain.Reference) error {
	return r.write(func() (func(), error) {
		refs, err := r.catalogue(ref.Kind)
		if err != nil {
			return nil, err
		}
		if taken, _ := r.nameTaken(ref.Kind, ref.Name, ""); taken {
			return nil, fmt.Errorf("%w: %w: %s %q", apperrors.ErrValidation, apperrors.ErrDuplicate, ref.Kind, ref.Name)
		}
		refs[ref.ID] = ref
		return func() { delete(refs, ref.ID) }, nil
	})
}

func (r *referenceRepository) UpdateReference(_ context.Context, ref domain.Reference) error {
	return r.write(func() (func(), error) {
		refs, err := r.catalogue(ref.Kind)
		if err != nil {
			return nil, err
		}
		prev, ok := refs[ref.ID]
		if !ok {
			return nil, fmt.Errorf("%w: %s %s", apperrors.ErrNotFound, ref.Kind, ref.ID)
		}
		if taken, _ := r.nameTaken(ref.Kind, ref.Name, ref.ID); taken {
			return nil, fmt.Errorf("%w: %w: %s %q", apperrors.ErrValidation, apperrors.ErrDuplicate, ref.Kind, ref.Name)
		}
		refs[ref.ID] = ref
		return func() { refs[ref.ID] = prev }, nil
	})
}

func (r *referenceRepository) DeleteReference(_ context.Context, kind domain.ReferenceKind, id string) error {
	return r.write(func() (func(), error) {
		refs, err := r.catalogue(kind)
		if err != nil {
			return nil, err
		}
		prev, ok := refs[id]
		if !ok {
			return nil, fmt.Errorf("%w: %s %s", apperrors.ErrNotFound, kind, id)
		}
		delete(refs, id)
		return func() { refs[id] = prev }, nil
	})
}

// nameTaken must be called with the store lock held.
func (r *referenceRepository) nameTaken(kind domain.ReferenceKind, name, excludeID string) (bool, error) {
	refs, err := r.catalogue(kind)
	if err != nil {
		return false, err
	}
	for id, ref := range refs {
		if id != excludeID && strings.EqualFold(ref.Name, name) {
			return true, nil
		}
	}
	return false, nil
}

func itemsReference(items []domain.LineItem, kind domain.ReferenceKind, id string) bool {
	for _, item := range items {
		switch kind {
		case domain.KindResource:
			if item.ResourceID == id {
				return true
			}
		case domain.KindUnit:
			if item.UnitID == id {
				return true
			}
		}
	}
	return false
}
