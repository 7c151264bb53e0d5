package wizard

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/drepanocare/drepano-care-api/localstore"
	"github.com/drepanocare/drepano-care-api/models"
)

func newFollowUpFixture(t *testing.T) (*localstore.FollowUpStore, string) {
	t.Helper()
	ctx := context.Background()
	kv := localstore.NewMemStore()
	patients := localstore.NewPatientStore(kv)
	followUps := localstore.NewFollowUpStore(kv, patients)

	p := &models.PatientProfile{Nom: "Mbarga", Prenom: "Alice"}
	assert.NoError(t, patients.Create(ctx, p))
	return followUps, p.ID
}

func fillFollowUp(w *Wizard) {
	w.Set("follow_up_date", "2024-09-01")
	w.Set("fosa", "CMA Nkoldongo")
	w.Set("nom_medecin", "Dr Essomba")
	w.Set("poids", "21.5")
	w.Set("temperature", "37.1")
	w.Set("nombre_crises", "2")
}

func TestFollowUpWizard_NumberComputedAtOpen(t *testing.T) {
	followUps, patientID := newFollowUpFixture(t)
	ctx := context.Background()

	assert.NoError(t, followUps.Create(ctx, &models.FollowUpData{PatientID: patientID, FollowUpNumber: 1}))
	assert.NoError(t, followUps.Create(ctx, &models.FollowUpData{PatientID: patientID, FollowUpNumber: 2}))

	w, err := NewFollowUpWizard(ctx, followUps, patientID)
	assert.NoError(t, err)
	assert.Equal(t, 3, w.Field("follow_up_number"))
	assert.Equal(t, 5, w.Steps())
}

func TestFollowUpWizard_RequiredSteps(t *testing.T) {
	followUps, patientID := newFollowUpFixture(t)
	ctx := context.Background()

	w, err := NewFollowUpWizard(ctx, followUps, patientID)
	assert.NoError(t, err)

	assert.False(t, w.Next())
	assert.Equal(t, "Veuillez renseigner la date de suivi, la FOSA et le nom du medecin", w.StepError())

	w.Set("follow_up_date", "2024-09-01")
	w.Set("fosa", "CMA Nkoldongo")
	w.Set("nom_medecin", "Dr Essomba")
	assert.True(t, w.Next())

	assert.False(t, w.Next())
	assert.Equal(t, "Veuillez renseigner le poids et la temperature", w.StepError())

	w.Set("poids", "21.5")
	w.Set("temperature", "37.1")
	assert.True(t, w.Next())

	assert.False(t, w.Next())
	w.Set("nombre_crises", "0")
	assert.True(t, w.Next())

	// steps 4 and 5 carry no required fields
	assert.True(t, w.Next())
	assert.Equal(t, 5, w.Current())
}

func TestFollowUpWizard_SubmitPersistsNumber(t *testing.T) {
	followUps, patientID := newFollowUpFixture(t)
	ctx := context.Background()

	assert.NoError(t, followUps.Create(ctx, &models.FollowUpData{PatientID: patientID, FollowUpNumber: 1}))
	assert.NoError(t, followUps.Create(ctx, &models.FollowUpData{PatientID: patientID, FollowUpNumber: 2}))

	w, err := NewFollowUpWizard(ctx, followUps, patientID)
	assert.NoError(t, err)

	fillFollowUp(w)
	assert.NoError(t, w.Submit(ctx))

	stored, err := followUps.GetByPatientID(ctx, patientID)
	assert.NoError(t, err)
	assert.Len(t, stored, 3)

	found := false
	for _, f := range stored {
		if f.FollowUpNumber == 3 {
			found = true
			assert.Equal(t, "2024-09-01", f.FollowUpDate)
			assert.Equal(t, "2", f.NombreCrises)
		}
	}
	assert.True(t, found, "submitted follow-up should carry number 3")
}
