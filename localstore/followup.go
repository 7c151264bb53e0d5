package localstore

import (
	"context"
	"fmt"

	"github.com/drepanocare/drepano-care-api/models"
)

// FollowUpStore persists quarterly follow-up records under the
// followup- prefix
type FollowUpStore struct {
	*Repository[models.FollowUpData, *models.FollowUpData]
	patients *PatientStore
}

// NewFollowUpStore creates a follow-up store over kv
func NewFollowUpStore(kv KV, patients *PatientStore) *FollowUpStore {
	return &FollowUpStore{
		Repository: NewRepository[models.FollowUpData, *models.FollowUpData](kv, FollowUpPrefix),
		patients:   patients,
	}
}

// Create rejects a follow-up whose patient_id does not resolve, then
// persists it with fresh timestamps
func (s *FollowUpStore) Create(ctx context.Context, rec *models.FollowUpData) error {
	if rec.PatientID == "" {
		return fmt.Errorf("follow-up has no patient_id: %w", ErrUnknownPatient)
	}
	ok, err := s.patients.Exists(ctx, rec.PatientID)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("follow-up references patient %q: %w", rec.PatientID, ErrUnknownPatient)
	}
	return s.Repository.Create(ctx, rec)
}

// NextNumber computes the follow-up number for a new record as the
// count of follow-ups already stored for the patient, plus one
func (s *FollowUpStore) NextNumber(ctx context.Context, patientID string) (int, error) {
	existing, err := s.GetByPatientID(ctx, patientID)
	if err != nil {
		return 0, err
	}
	return len(existing) + 1, nil
}
