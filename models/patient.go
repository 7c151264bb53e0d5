package models

import "time"

// PatientProfile holds the identity, demographic and medical history
// details of a sickle-cell patient. Records are keyed by a
// client-generated ID; the NumeroIdentificationUnique is the
// human-readable identifier used for search.
type PatientProfile struct {
	ID                          string    `json:"id" bson:"id"`
	NumeroIdentificationUnique  string    `json:"numero_identification_unique" bson:"numero_identification_unique"`
	Nom                         string    `json:"nom" bson:"nom"`
	Prenom                      string    `json:"prenom" bson:"prenom"`
	Sexe                        string    `json:"sexe" bson:"sexe"`
	DateNaissance               string    `json:"date_naissance" bson:"date_naissance"`
	LieuNaissance               string    `json:"lieu_naissance,omitempty" bson:"lieu_naissance,omitempty"`
	TypeDrepanocytose           string    `json:"type_drepanocytose" bson:"type_drepanocytose"`
	GroupeSanguin               string    `json:"groupe_sanguin" bson:"groupe_sanguin"`
	Assurance                   string    `json:"assurance,omitempty" bson:"assurance,omitempty"`
	Quartier                    string    `json:"quartier,omitempty" bson:"quartier,omitempty"`
	Ville                       string    `json:"ville,omitempty" bson:"ville,omitempty"`
	Region                      string    `json:"region,omitempty" bson:"region,omitempty"`
	Adresse                     string    `json:"adresse,omitempty" bson:"adresse,omitempty"`
	Telephone                   string    `json:"telephone,omitempty" bson:"telephone,omitempty"`
	ContactUrgenceNom           string    `json:"contact_urgence_nom,omitempty" bson:"contact_urgence_nom,omitempty"`
	ContactUrgenceTelephone     string    `json:"contact_urgence_telephone,omitempty" bson:"contact_urgence_telephone,omitempty"`
	ContactUrgenceLien          string    `json:"contact_urgence_lien,omitempty" bson:"contact_urgence_lien,omitempty"`
	Cohabitation                string    `json:"cohabitation,omitempty" bson:"cohabitation,omitempty"`
	LienParente                 string    `json:"lien_parente,omitempty" bson:"lien_parente,omitempty"`
	FosaReference               string    `json:"fosa_reference,omitempty" bson:"fosa_reference,omitempty"`
	MedecinReferent             string    `json:"medecin_referent,omitempty" bson:"medecin_referent,omitempty"`
	CreatedAt                   time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt                   time.Time `json:"updated_at" bson:"updated_at"`
}

// GetID returns the record ID
func (p *PatientProfile) GetID() string { return p.ID }

// SetID sets the record ID
func (p *PatientProfile) SetID(id string) { p.ID = id }

// GetPatientID returns the owning patient ID, which for a patient
// profile is the record itself
func (p *PatientProfile) GetPatientID() string { return p.ID }

// GetCreatedAt returns the creation timestamp
func (p *PatientProfile) GetCreatedAt() time.Time { return p.CreatedAt }

// SetCreatedAt sets the creation timestamp
func (p *PatientProfile) SetCreatedAt(t time.Time) { p.CreatedAt = t }

// SetUpdatedAt sets the update timestamp
func (p *PatientProfile) SetUpdatedAt(t time.Time) { p.UpdatedAt = t }
