package localstore

import (
	"context"
	"errors"
	"fmt"

	"github.com/drepanocare/drepano-care-api/models"
)

// VaccinationStore persists the one-per-patient vaccination checklist
// under the vaccination- prefix, keyed by the patient's own id
type VaccinationStore struct {
	*Repository[models.VaccinationRecord, *models.VaccinationRecord]
}

// NewVaccinationStore creates a vaccination store over kv
func NewVaccinationStore(kv KV) *VaccinationStore {
	return &VaccinationStore{NewRepository[models.VaccinationRecord, *models.VaccinationRecord](kv, VaccinationPrefix)}
}

// GetByPatient returns the checklist for patientID, or ErrNotFound
// when the patient has none yet
func (s *VaccinationStore) GetByPatient(ctx context.Context, patientID string) (*models.VaccinationRecord, error) {
	return s.GetByID(ctx, patientID)
}

// Upsert creates the checklist on first save and updates it afterwards,
// preserving created_at across updates. The record id is forced to the
// patient id.
func (s *VaccinationStore) Upsert(ctx context.Context, rec *models.VaccinationRecord) error {
	if rec.PatientID == "" {
		return fmt.Errorf("vaccination record has no patient_id: %w", ErrUnknownPatient)
	}
	rec.ID = rec.PatientID
	_, err := s.GetByID(ctx, rec.ID)
	switch {
	case errors.Is(err, ErrNotFound), errors.Is(err, ErrCorrupt):
		// a corrupt stored checklist is unrecoverable, write it fresh
		return s.Create(ctx, rec)
	case err != nil:
		return err
	}
	return s.Update(ctx, rec)
}
