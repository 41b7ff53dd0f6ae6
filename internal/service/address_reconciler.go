package service

import (
	"errors"
	"fmt"

	"therapy-clinic-api/internal/domain/entity"
	"therapy-clinic-api/internal/domain/repository"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrAddressNotOwned  = errors.New("address does not belong to this person")
	ErrDuplicateAddress = errors.New("address listed more than once")
)

// AddressPlan is the set of writes that turns the stored address list into
// the edited one.
type AddressPlan struct {
	Deletes []int64
	Updates []entity.Address
	Inserts []entity.Address

	// updates and inserts interleaved in edited order
	writes []entity.Address
}

// Writes returns updates and inserts in the order they appeared in the edited list.
func (p *AddressPlan) Writes() []entity.Address {
	return p.writes
}

// IsEmpty reports whether applying the plan would touch no address row.
func (p *AddressPlan) IsEmpty() bool {
	return len(p.Deletes) == 0 && len(p.writes) == 0
}

// PlanAddressChanges diffs edited against original. Originals absent from
// edited are deleted, entries with a known id are updated, entries without
// an id are inserted. An edited id that is not in original fails the whole
// plan with ErrAddressNotOwned.
func PlanAddressChanges(original, edited []entity.Address) (*AddressPlan, error) {
	known := make(map[int64]struct{}, len(original))
	for _, a := range original {
		known[a.ID] = struct{}{}
	}

	plan := &AddressPlan{}
	kept := make(map[int64]struct{}, len(edited))
	for _, a := range edited {
		if !a.IsPersisted() {
			plan.Inserts = append(plan.Inserts, a)
			plan.writes = append(plan.writes, a)
			continue
		}
		if _, ok := known[a.ID]; !ok {
			return nil, fmt.Errorf("address %d: %w", a.ID, ErrAddressNotOwned)
		}
		if _, seen := kept[a.ID]; seen {
			return nil, fmt.Errorf("address %d: %w", a.ID, ErrDuplicateAddress)
		}
		kept[a.ID] = struct{}{}
		plan.Updates = append(plan.Updates, a)
		plan.writes = append(plan.writes, a)
	}

	for _, a := range original {
		if _, ok := kept[a.ID]; !ok {
			plan.Deletes = append(plan.Deletes, a.ID)
		}
	}

	return plan, nil
}

// AddressReconciler applies an AddressPlan for one person.
type AddressReconciler struct {
	log         *logrus.Logger
	addressRepo repository.AddressRepository
}

func NewAddressReconciler(log *logrus.Logger, addressRepo repository.AddressRepository) *AddressReconciler {
	return &AddressReconciler{log: log, addressRepo: addressRepo}
}

// Apply runs deletes first, then updates and inserts in edited order. Each
// step is its own statement; the first failure stops the rest and earlier
// steps stay applied. It returns the resulting address list.
func (r *AddressReconciler) Apply(db *gorm.DB, personID int64, plan *AddressPlan) ([]entity.Address, error) {
	for _, id := range plan.Deletes {
		if _, err := r.addressRepo.Delete(db, personID, id); err != nil {
			return nil, fmt.Errorf("delete address %d: %w", id, err)
		}
	}

	result := make([]entity.Address, 0, len(plan.writes))
	for _, a := range plan.writes {
		a.PersonID = personID
		if a.IsPersisted() {
			affected, err := r.addressRepo.Update(db, &a)
			if err != nil {
				return nil, fmt.Errorf("update address %d: %w", a.ID, err)
			}
			if affected == 0 {
				return nil, fmt.Errorf("update address %d: %w", a.ID, ErrAddressNotOwned)
			}
		} else {
			if err := r.addressRepo.Create(db, &a); err != nil {
				return nil, fmt.Errorf("insert address: %w", err)
			}
		}
		result = append(result, a)
	}

	r.log.Debugf("Reconciled addresses for person %d: %d deleted, %d updated, %d inserted",
		personID, len(plan.Deletes), len(plan.Updates), len(plan.Inserts))
	return result, nil
}
