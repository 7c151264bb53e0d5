package wizard

import (
	"context"

	"github.com/drepanocare/drepano-care-api/localstore"
	"github.com/drepanocare/drepano-care-api/models"
)

// followUpSteps is the five section schema of the quarterly follow-up
// form; the first three sections enforce required fields
func followUpSteps() []Step {
	return []Step{
		{
			Title:    "Informations administratives",
			Required: []string{"follow_up_date", "fosa", "nom_medecin"},
			Message:  "Veuillez renseigner la date de suivi, la FOSA et le nom du medecin",
		},
		{
			Title:    "Etat clinique",
			Required: []string{"poids", "temperature"},
			Message:  "Veuillez renseigner le poids et la temperature",
		},
		{
			Title:    "Evenements depuis la derniere visite",
			Required: []string{"nombre_crises"},
			Message:  "Veuillez renseigner le nombre de crises depuis la derniere visite",
		},
		{Title: "Observance du traitement"},
		{Title: "Laboratoire et plan"},
	}
}

// NewFollowUpWizard builds the five step follow-up wizard for one
// patient. The follow-up number is computed when the wizard opens,
// before any user input, from the follow-ups already stored.
func NewFollowUpWizard(ctx context.Context, store *localstore.FollowUpStore, patientID string) (*Wizard, error) {
	n, err := store.NextNumber(ctx, patientID)
	if err != nil {
		return nil, err
	}
	cfg := Config{
		Steps: followUpSteps(),
		Seed: func() Draft {
			return Draft{
				"patient_id":       patientID,
				"follow_up_number": n,
			}
		},
	}
	return New(cfg, &followUpSaver{store: store}), nil
}

type followUpSaver struct {
	store *localstore.FollowUpStore
}

func (s *followUpSaver) SaveDraft(ctx context.Context, draft Draft) error {
	var rec models.FollowUpData
	if err := decodeDraft(draft, &rec); err != nil {
		return err
	}
	return s.store.Create(ctx, &rec)
}
