package wizard

import (
	"context"
	"errors"
	"math"
	"time"

	"github.com/drepanocare/drepano-care-api/localstore"
	"github.com/drepanocare/drepano-care-api/models"
)

// Checklist drives the single-screen vaccination form for one patient,
// checked against the fixed PEV reference schedule
type Checklist struct {
	store  *localstore.VaccinationStore
	record *models.VaccinationRecord
}

// OpenChecklist loads the patient's checklist, starting an empty
// in-memory record when none is stored yet
func OpenChecklist(ctx context.Context, store *localstore.VaccinationStore, patientID string) (*Checklist, error) {
	rec, err := store.GetByPatient(ctx, patientID)
	switch {
	case errors.Is(err, localstore.ErrNotFound):
		rec = &models.VaccinationRecord{ID: patientID, PatientID: patientID}
	case err != nil:
		return nil, err
	}
	if rec.Vaccinations == nil {
		rec.Vaccinations = make(map[string]bool)
	}
	return &Checklist{store: store, record: rec}, nil
}

// Toggle sets the received flag for a vaccine and stamps the record
func (c *Checklist) Toggle(vaccine string, received bool) {
	c.record.Vaccinations[vaccine] = received
	c.record.UpdatedAt = time.Now().UTC()
}

// Received reports whether a vaccine is marked received
func (c *Checklist) Received(vaccine string) bool {
	return c.record.Vaccinations[vaccine]
}

// CompletionPercentage is the rounded share of the reference schedule
// marked received; vaccines outside the schedule never count
func (c *Checklist) CompletionPercentage() int {
	received := 0
	for _, entry := range models.PEVSchedule {
		if c.record.Vaccinations[entry.Vaccine] {
			received++
		}
	}
	return int(math.Round(100 * float64(received) / float64(len(models.PEVSchedule))))
}

// Record returns the underlying vaccination record
func (c *Checklist) Record() *models.VaccinationRecord { return c.record }

// Save upserts the checklist through the vaccination store
func (c *Checklist) Save(ctx context.Context) error {
	return c.store.Upsert(ctx, c.record)
}
