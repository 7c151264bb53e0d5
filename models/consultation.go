package models

import "time"

// Consultation types supported by the consultation form
const (
	ConsultationTypeInitial  = "initial"
	ConsultationTypeFollowUp = "follow_up"
)

// ExamEntry is one row of the repeatable complementary exams list on
// the lab results section of a consultation
type ExamEntry struct {
	Nom      string `json:"nom" bson:"nom"`
	Resultat string `json:"resultat" bson:"resultat"`
	Date     string `json:"date" bson:"date"`
}

// ConsultationData holds the full consultation record captured by the
// nine section consultation form. All clinical fields are optional
// strings so a partially filled form still serializes cleanly; the
// section grouping below mirrors the form steps.
type ConsultationData struct {
	ID               string `json:"id" bson:"id"`
	PatientID        string `json:"patient_id" bson:"patient_id"`
	ConsultationType string `json:"consultation_type" bson:"consultation_type"`

	// section 1: administrative
	DateConsultation string `json:"date_consultation,omitempty" bson:"date_consultation,omitempty"`
	Fosa             string `json:"fosa,omitempty" bson:"fosa,omitempty"`
	DistrictSante    string `json:"district_sante,omitempty" bson:"district_sante,omitempty"`
	Region           string `json:"region,omitempty" bson:"region,omitempty"`
	NomMedecin       string `json:"nom_medecin,omitempty" bson:"nom_medecin,omitempty"`
	NumeroDossier    string `json:"numero_dossier,omitempty" bson:"numero_dossier,omitempty"`

	// section 2: identity and demographics
	Nom                  string `json:"nom,omitempty" bson:"nom,omitempty"`
	Prenom               string `json:"prenom,omitempty" bson:"prenom,omitempty"`
	DateNaissance        string `json:"date_naissance,omitempty" bson:"date_naissance,omitempty"`
	Sexe                 string `json:"sexe,omitempty" bson:"sexe,omitempty"`
	Quartier             string `json:"quartier,omitempty" bson:"quartier,omitempty"`
	Ville                string `json:"ville,omitempty" bson:"ville,omitempty"`
	Adresse              string `json:"adresse,omitempty" bson:"adresse,omitempty"`
	PatientPhoneNumber   string `json:"patient_phone_number,omitempty" bson:"patient_phone_number,omitempty"`
	ContactUrgenceNom    string `json:"contact_urgence_nom,omitempty" bson:"contact_urgence_nom,omitempty"`
	ContactUrgencePhone  string `json:"contact_urgence_telephone,omitempty" bson:"contact_urgence_telephone,omitempty"`
	ContactUrgenceLien   string `json:"contact_urgence_lien,omitempty" bson:"contact_urgence_lien,omitempty"`
	Cohabitation         string `json:"cohabitation,omitempty" bson:"cohabitation,omitempty"`
	LienParente          string `json:"lien_parente,omitempty" bson:"lien_parente,omitempty"`
	RegionOrigine        string `json:"region_origine,omitempty" bson:"region_origine,omitempty"`
	GroupeSanguin        string `json:"groupe_sanguin,omitempty" bson:"groupe_sanguin,omitempty"`
	TypeDrepanocytose    string `json:"type_drepanocytose,omitempty" bson:"type_drepanocytose,omitempty"`

	// section 3: medical history
	AgePremiereCrise       string   `json:"age_premiere_crise,omitempty" bson:"age_premiere_crise,omitempty"`
	NombreCrisesAnnee      string   `json:"nombre_crises_annee,omitempty" bson:"nombre_crises_annee,omitempty"`
	NombreHospitalisations string   `json:"nombre_hospitalisations,omitempty" bson:"nombre_hospitalisations,omitempty"`
	NombreTransfusions     string   `json:"nombre_transfusions,omitempty" bson:"nombre_transfusions,omitempty"`
	DateDerniereTransfusion string  `json:"date_derniere_transfusion,omitempty" bson:"date_derniere_transfusion,omitempty"`
	AntecedentsFamiliaux   string   `json:"antecedents_familiaux,omitempty" bson:"antecedents_familiaux,omitempty"`
	Comorbidites           []string `json:"comorbidites,omitempty" bson:"comorbidites,omitempty"`

	// section 4: complications
	Complications          []string `json:"complications,omitempty" bson:"complications,omitempty"`
	FrequenceCVO           string   `json:"frequence_cvo,omitempty" bson:"frequence_cvo,omitempty"`
	DernieresComplications string   `json:"dernieres_complications,omitempty" bson:"dernieres_complications,omitempty"`

	// section 5: treatments
	TraitementFond    string   `json:"traitement_fond,omitempty" bson:"traitement_fond,omitempty"`
	DoseHydroxyuree   string   `json:"dose_hydroxyuree,omitempty" bson:"dose_hydroxyuree,omitempty"`
	AcideFolique      string   `json:"acide_folique,omitempty" bson:"acide_folique,omitempty"`
	Penicilline       string   `json:"penicilline,omitempty" bson:"penicilline,omitempty"`
	AutresTraitements []string `json:"autres_traitements,omitempty" bson:"autres_traitements,omitempty"`
	Observance        string   `json:"observance,omitempty" bson:"observance,omitempty"`

	// section 6: lab results
	TauxHb        string      `json:"taux_hb,omitempty" bson:"taux_hb,omitempty"`
	TauxHbF       string      `json:"taux_hbf,omitempty" bson:"taux_hbf,omitempty"`
	TauxHbS       string      `json:"taux_hbs,omitempty" bson:"taux_hbs,omitempty"`
	GlobulesBlancs string     `json:"globules_blancs,omitempty" bson:"globules_blancs,omitempty"`
	Plaquettes    string      `json:"plaquettes,omitempty" bson:"plaquettes,omitempty"`
	Reticulocytes string      `json:"reticulocytes,omitempty" bson:"reticulocytes,omitempty"`
	Ferritine     string      `json:"ferritine,omitempty" bson:"ferritine,omitempty"`
	Bilirubine    string      `json:"bilirubine,omitempty" bson:"bilirubine,omitempty"`
	LDH           string      `json:"ldh,omitempty" bson:"ldh,omitempty"`
	Creatinine    string      `json:"creatinine,omitempty" bson:"creatinine,omitempty"`
	Examens       []ExamEntry `json:"examens,omitempty" bson:"examens,omitempty"`

	// section 7: psychosocial impact
	Scolarisation       string `json:"scolarisation,omitempty" bson:"scolarisation,omitempty"`
	AbsenteismeScolaire string `json:"absenteisme_scolaire,omitempty" bson:"absenteisme_scolaire,omitempty"`
	ImpactActivite      string `json:"impact_activite,omitempty" bson:"impact_activite,omitempty"`
	SoutienPsychologique string `json:"soutien_psychologique,omitempty" bson:"soutien_psychologique,omitempty"`
	GroupeSoutien       string `json:"groupe_soutien,omitempty" bson:"groupe_soutien,omitempty"`
	SituationFinanciere string `json:"situation_financiere,omitempty" bson:"situation_financiere,omitempty"`

	// section 8: follow-up plan
	ProchaineConsultation string `json:"prochaine_consultation,omitempty" bson:"prochaine_consultation,omitempty"`
	ExamensPrescrits      string `json:"examens_prescrits,omitempty" bson:"examens_prescrits,omitempty"`
	VaccinationsAJour     string `json:"vaccinations_a_jour,omitempty" bson:"vaccinations_a_jour,omitempty"`
	Conseils              string `json:"conseils,omitempty" bson:"conseils,omitempty"`
	OrientationSpecialiste string `json:"orientation_specialiste,omitempty" bson:"orientation_specialiste,omitempty"`

	// section 9: comments
	Commentaires        string `json:"commentaires,omitempty" bson:"commentaires,omitempty"`
	ObservationsMedecin string `json:"observations_medecin,omitempty" bson:"observations_medecin,omitempty"`

	CreatedAt time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt time.Time `json:"updated_at" bson:"updated_at"`
}

// GetID returns the record ID
func (c *ConsultationData) GetID() string { return c.ID }

// SetID sets the record ID
func (c *ConsultationData) SetID(id string) { c.ID = id }

// GetPatientID returns the referenced patient ID
func (c *ConsultationData) GetPatientID() string { return c.PatientID }

// GetCreatedAt returns the creation timestamp
func (c *ConsultationData) GetCreatedAt() time.Time { return c.CreatedAt }

// SetCreatedAt sets the creation timestamp
func (c *ConsultationData) SetCreatedAt(t time.Time) { c.CreatedAt = t }

// SetUpdatedAt sets the update timestamp
func (c *ConsultationData) SetUpdatedAt(t time.Time) { c.UpdatedAt = t }
