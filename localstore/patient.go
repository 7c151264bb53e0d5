package localstore

import (
	"context"
	"errors"
	"strings"

	"github.com/drepanocare/drepano-care-api/models"
)

// PatientStore persists patient profiles under the patient- prefix
type PatientStore struct {
	*Repository[models.PatientProfile, *models.PatientProfile]
}

// NewPatientStore creates a patient store over kv
func NewPatientStore(kv KV) *PatientStore {
	return &PatientStore{NewRepository[models.PatientProfile, *models.PatientProfile](kv, PatientPrefix)}
}

// Search returns the patients whose nom, prenom or unique
// identification number contains query, case-insensitively. An empty
// query returns every patient.
func (s *PatientStore) Search(ctx context.Context, query string) ([]*models.PatientProfile, error) {
	all, err := s.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return all, nil
	}
	out := make([]*models.PatientProfile, 0, len(all))
	for _, p := range all {
		if strings.Contains(strings.ToLower(p.Nom), q) ||
			strings.Contains(strings.ToLower(p.Prenom), q) ||
			strings.Contains(strings.ToLower(p.NumeroIdentificationUnique), q) {
			out = append(out, p)
		}
	}
	return out, nil
}

// Exists reports whether a patient record resolves for id
func (s *PatientStore) Exists(ctx context.Context, id string) (bool, error) {
	_, err := s.GetByID(ctx, id)
	if errors.Is(err, ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}
