package localstore

// Key prefixes for each entity type. The flat key space is shared by
// every repository and the prefix is the only namespace separation, so
// keys must always be built through these helpers.
const (
	PatientPrefix      = "patient-"
	ConsultationPrefix = "consultation-"
	FollowUpPrefix     = "followup-"
	VaccinationPrefix  = "vaccination-"
)

// PatientKey returns the store key for a patient record
func PatientKey(id string) string { return PatientPrefix + id }

// ConsultationKey returns the store key for a consultation record
func ConsultationKey(id string) string { return ConsultationPrefix + id }

// FollowUpKey returns the store key for a follow-up record
func FollowUpKey(id string) string { return FollowUpPrefix + id }

// VaccinationKey returns the store key for a vaccination record. The
// id is the patient id, vaccination records being one-per-patient.
func VaccinationKey(patientID string) string { return VaccinationPrefix + patientID }
