package localstore

import (
	"context"
	"fmt"

	"github.com/drepanocare/drepano-care-api/models"
)

// ConsultationStore persists consultation records under the
// consultation- prefix
type ConsultationStore struct {
	*Repository[models.ConsultationData, *models.ConsultationData]
	patients *PatientStore
}

// NewConsultationStore creates a consultation store over kv. The
// patient store is consulted to validate references at write time.
func NewConsultationStore(kv KV, patients *PatientStore) *ConsultationStore {
	return &ConsultationStore{
		Repository: NewRepository[models.ConsultationData, *models.ConsultationData](kv, ConsultationPrefix),
		patients:   patients,
	}
}

// Create rejects a consultation whose patient_id does not resolve,
// then persists it with fresh timestamps
func (s *ConsultationStore) Create(ctx context.Context, rec *models.ConsultationData) error {
	if rec.PatientID == "" {
		return fmt.Errorf("consultation has no patient_id: %w", ErrUnknownPatient)
	}
	ok, err := s.patients.Exists(ctx, rec.PatientID)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("consultation references patient %q: %w", rec.PatientID, ErrUnknownPatient)
	}
	return s.Repository.Create(ctx, rec)
}
