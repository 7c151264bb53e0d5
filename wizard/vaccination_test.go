package wizard

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/drepanocare/drepano-care-api/localstore"
	"github.com/drepanocare/drepano-care-api/models"
)

func TestChecklist_OpenWithoutStoredRecord(t *testing.T) {
	ctx := context.Background()
	store := localstore.NewVaccinationStore(localstore.NewMemStore())

	c, err := OpenChecklist(ctx, store, "pat-1")
	assert.NoError(t, err)
	assert.Equal(t, 0, c.CompletionPercentage())
	assert.False(t, c.Received("BCG"))

	// the empty record was not persisted by opening
	_, err = store.GetByPatient(ctx, "pat-1")
	assert.ErrorIs(t, err, localstore.ErrNotFound)
}

func TestChecklist_ToggleAndSave(t *testing.T) {
	ctx := context.Background()
	store := localstore.NewVaccinationStore(localstore.NewMemStore())

	c, err := OpenChecklist(ctx, store, "pat-1")
	assert.NoError(t, err)

	c.Toggle("BCG", true)
	c.Toggle("VPO-0", true)
	assert.True(t, c.Received("BCG"))
	assert.NoError(t, c.Save(ctx))

	stored, err := store.GetByPatient(ctx, "pat-1")
	assert.NoError(t, err)
	assert.Equal(t, "pat-1", stored.ID)
	assert.Equal(t, "pat-1", stored.PatientID)
	assert.True(t, stored.Vaccinations["BCG"])
	assert.True(t, stored.Vaccinations["VPO-0"])

	// reopening sees the stored state
	c2, err := OpenChecklist(ctx, store, "pat-1")
	assert.NoError(t, err)
	assert.True(t, c2.Received("BCG"))

	// unchecking persists too
	c2.Toggle("BCG", false)
	assert.NoError(t, c2.Save(ctx))
	stored, _ = store.GetByPatient(ctx, "pat-1")
	assert.False(t, stored.Vaccinations["BCG"])
}

func TestChecklist_CompletionPercentage(t *testing.T) {
	ctx := context.Background()
	store := localstore.NewVaccinationStore(localstore.NewMemStore())

	c, err := OpenChecklist(ctx, store, "pat-1")
	assert.NoError(t, err)

	assert.Len(t, models.PEVSchedule, 16)

	// 1 of 16 rounds to 6
	c.Toggle("BCG", true)
	assert.Equal(t, 6, c.CompletionPercentage())

	// 4 of 16 is exactly 25
	c.Toggle("VPO-0", true)
	c.Toggle("DTC-HepB-Hib 1", true)
	c.Toggle("VPO-1", true)
	assert.Equal(t, 25, c.CompletionPercentage())

	// vaccines outside the reference schedule never count
	c.Toggle("Grippe", true)
	assert.Equal(t, 25, c.CompletionPercentage())

	for _, entry := range models.PEVSchedule {
		c.Toggle(entry.Vaccine, true)
	}
	assert.Equal(t, 100, c.CompletionPercentage())
}
