// Package export renders plain-text summaries of patient records for
// printing and for handing over to a referral facility.
package export

import (
	"strings"
	"text/template"

	"github.com/drepanocare/drepano-care-api/models"
)

var patientSummaryTmpl = template.Must(template.New("patientSummary").Parse(`DOSSIER PATIENT DREPANOCYTAIRE
==============================

Identification
--------------
Numero d'identification : {{.Patient.NumeroIdentificationUnique}}
Nom                     : {{.Patient.Nom}}
Prenom                  : {{.Patient.Prenom}}
Sexe                    : {{.Patient.Sexe}}
Date de naissance       : {{.Patient.DateNaissance}}
Type de drepanocytose   : {{.Patient.TypeDrepanocytose}}
Groupe sanguin          : {{.Patient.GroupeSanguin}}
{{- if .Patient.Adresse}}
Adresse                 : {{.Patient.Adresse}}
{{- end}}
{{- if .Patient.Telephone}}
Telephone               : {{.Patient.Telephone}}
{{- end}}
{{- if .Patient.ContactUrgenceNom}}
Contact d'urgence       : {{.Patient.ContactUrgenceNom}} ({{.Patient.ContactUrgenceLien}}) {{.Patient.ContactUrgenceTelephone}}
{{- end}}
{{- if .Patient.FosaReference}}
FOSA de reference       : {{.Patient.FosaReference}}
{{- end}}
{{- if .Patient.MedecinReferent}}
Medecin referent        : {{.Patient.MedecinReferent}}
{{- end}}

Consultations ({{len .Consultations}})
-------------
{{- range .Consultations}}
* {{.DateConsultation}} [{{.ConsultationType}}] {{.Fosa}}{{if .NomMedecin}} / Dr {{.NomMedecin}}{{end}}
{{- if .TauxHb}}
    Hb: {{.TauxHb}} g/dL
{{- end}}
{{- if .Commentaires}}
    {{.Commentaires}}
{{- end}}
{{- else}}
(aucune)
{{- end}}

Suivis trimestriels ({{len .FollowUps}})
-------------------
{{- range .FollowUps}}
* Suivi n.{{.FollowUpNumber}} du {{.FollowUpDate}}{{if .NombreCrises}}, crises: {{.NombreCrises}}{{end}}{{if .TauxHb}}, Hb: {{.TauxHb}} g/dL{{end}}
{{- else}}
(aucun)
{{- end}}

Vaccination PEV : {{.VaccinationsRecues}}/{{.VaccinationsTotal}} recus
{{- range .Schedule}}
  [{{if index $.Vaccinations .Vaccine}}x{{else}} {{end}}] {{.Vaccine}} ({{.Period}})
{{- end}}
`))

// PatientSummary bundles everything the summary template needs
type PatientSummary struct {
	Patient            models.PatientProfile
	Consultations      []models.ConsultationData
	FollowUps          []models.FollowUpData
	Vaccinations       map[string]bool
	Schedule           []models.ScheduleEntry
	VaccinationsRecues int
	VaccinationsTotal  int
}

// RenderPatientSummary renders the full printable record of a patient:
// profile, consultation history, follow-up history and the PEV
// checklist state.
func RenderPatientSummary(patient models.PatientProfile, consultations []models.ConsultationData,
	followUps []models.FollowUpData, vaccination models.VaccinationRecord) (string, error) {

	received := 0
	vaccinations := vaccination.Vaccinations
	if vaccinations == nil {
		vaccinations = map[string]bool{}
	}
	for _, entry := range models.PEVSchedule {
		if vaccinations[entry.Vaccine] {
			received++
		}
	}

	data := PatientSummary{
		Patient:            patient,
		Consultations:      consultations,
		FollowUps:          followUps,
		Vaccinations:       vaccinations,
		Schedule:           models.PEVSchedule,
		VaccinationsRecues: received,
		VaccinationsTotal:  len(models.PEVSchedule),
	}

	var sb strings.Builder
	if err := patientSummaryTmpl.Execute(&sb, data); err != nil {
		return "", err
	}
	return sb.String(), nil
}
