package models

import "time"

// FollowUpData holds a quarterly follow-up record. FollowUpNumber is
// monotonically increasing per patient and is computed when the form is
// opened, from the count of follow-ups already stored for the patient.
type FollowUpData struct {
	ID             string `json:"id" bson:"id"`
	PatientID      string `json:"patient_id" bson:"patient_id"`
	FollowUpNumber int    `json:"follow_up_number" bson:"follow_up_number"`
	FollowUpDate   string `json:"follow_up_date,omitempty" bson:"follow_up_date,omitempty"`

	// section 1: administrative
	Fosa       string `json:"fosa,omitempty" bson:"fosa,omitempty"`
	NomMedecin string `json:"nom_medecin,omitempty" bson:"nom_medecin,omitempty"`

	// section 2: clinical state
	Poids            string `json:"poids,omitempty" bson:"poids,omitempty"`
	Taille           string `json:"taille,omitempty" bson:"taille,omitempty"`
	Temperature      string `json:"temperature,omitempty" bson:"temperature,omitempty"`
	TensionArterielle string `json:"tension_arterielle,omitempty" bson:"tension_arterielle,omitempty"`
	EtatGeneral      string `json:"etat_general,omitempty" bson:"etat_general,omitempty"`

	// section 3: events since last visit
	NombreCrises     string   `json:"nombre_crises,omitempty" bson:"nombre_crises,omitempty"`
	Hospitalisations string   `json:"hospitalisations,omitempty" bson:"hospitalisations,omitempty"`
	Transfusions     string   `json:"transfusions,omitempty" bson:"transfusions,omitempty"`
	Complications    []string `json:"complications,omitempty" bson:"complications,omitempty"`

	// section 4: treatment adherence
	Observance             string `json:"observance,omitempty" bson:"observance,omitempty"`
	EffetsSecondaires      string `json:"effets_secondaires,omitempty" bson:"effets_secondaires,omitempty"`
	ModificationTraitement string `json:"modification_traitement,omitempty" bson:"modification_traitement,omitempty"`

	// section 5: labs and plan
	TauxHb         string `json:"taux_hb,omitempty" bson:"taux_hb,omitempty"`
	TauxHbF        string `json:"taux_hbf,omitempty" bson:"taux_hbf,omitempty"`
	TauxHbS        string `json:"taux_hbs,omitempty" bson:"taux_hbs,omitempty"`
	ProchaineVisite string `json:"prochaine_visite,omitempty" bson:"prochaine_visite,omitempty"`
	Commentaires   string `json:"commentaires,omitempty" bson:"commentaires,omitempty"`

	CreatedAt time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt time.Time `json:"updated_at" bson:"updated_at"`
}

// GetID returns the record ID
func (f *FollowUpData) GetID() string { return f.ID }

// SetID sets the record ID
func (f *FollowUpData) SetID(id string) { f.ID = id }

// GetPatientID returns the referenced patient ID
func (f *FollowUpData) GetPatientID() string { return f.PatientID }

// GetCreatedAt returns the creation timestamp
func (f *FollowUpData) GetCreatedAt() time.Time { return f.CreatedAt }

// SetCreatedAt sets the creation timestamp
func (f *FollowUpData) SetCreatedAt(t time.Time) { f.CreatedAt = t }

// SetUpdatedAt sets the update timestamp
func (f *FollowUpData) SetUpdatedAt(t time.Time) { f.UpdatedAt = t }
