package wizard

import (
	"context"
	"strings"

	"github.com/drepanocare/drepano-care-api/localstore"
	"github.com/drepanocare/drepano-care-api/models"
)

// consultationSteps is the nine section schema of the consultation
// form. Only the first three sections enforce required fields; the
// demographic requirements of section 2 beyond the civil identity, and
// all of section 3's, are normally satisfied by the intake bridge
// before the wizard becomes visible.
func consultationSteps() []Step {
	return []Step{
		{
			Title:    "Informations administratives",
			Required: []string{"date_consultation", "fosa", "nom_medecin"},
			Message:  "Veuillez renseigner la date, la FOSA et le nom du medecin",
		},
		{
			Title:    "Identite du patient",
			Required: []string{"nom", "prenom", "date_naissance", "sexe"},
			Message:  "Veuillez renseigner l'identite complete du patient",
		},
		{
			Title:    "Antecedents medicaux",
			Required: []string{"type_drepanocytose", "groupe_sanguin"},
			Message:  "Veuillez renseigner le type de drepanocytose et le groupe sanguin",
		},
		{Title: "Complications"},
		{Title: "Traitements"},
		{Title: "Resultats de laboratoire"},
		{Title: "Impact psychosocial"},
		{Title: "Plan de suivi"},
		{Title: "Commentaires"},
	}
}

// NewConsultationWizard builds the nine step consultation wizard for
// one patient. consultationType is models.ConsultationTypeInitial or
// models.ConsultationTypeFollowUp.
func NewConsultationWizard(store *localstore.ConsultationStore, patientID, consultationType string) *Wizard {
	cfg := Config{
		Steps:    consultationSteps(),
		Derive:   deriveAdresse,
		MinItems: map[string]int{"examens": 1},
		Seed: func() Draft {
			return Draft{
				"patient_id":        patientID,
				"consultation_type": consultationType,
				"examens":           []any{map[string]any{"nom": "", "resultat": "", "date": ""}},
			}
		},
	}
	return New(cfg, &consultationSaver{store: store})
}

// deriveAdresse recomputes the composite address whenever either of
// its two source fields changes
func deriveAdresse(d Draft, field string) {
	if field != "quartier" && field != "ville" {
		return
	}
	quartier, _ := d["quartier"].(string)
	ville, _ := d["ville"].(string)
	parts := make([]string, 0, 2)
	for _, p := range []string{quartier, ville} {
		if strings.TrimSpace(p) != "" {
			parts = append(parts, strings.TrimSpace(p))
		}
	}
	d["adresse"] = strings.Join(parts, ", ")
}

type consultationSaver struct {
	store *localstore.ConsultationStore
}

func (s *consultationSaver) SaveDraft(ctx context.Context, draft Draft) error {
	var rec models.ConsultationData
	if err := decodeDraft(draft, &rec); err != nil {
		return err
	}
	return s.store.Create(ctx, &rec)
}
