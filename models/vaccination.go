package models

import "time"

// VaccinationRecord is the one-per-patient vaccination checklist. The
// record ID and the patient ID are the same string for this entity
// only; Vaccinations maps a vaccine name from the PEV schedule to a
// received flag.
type VaccinationRecord struct {
	ID           string          `json:"id" bson:"id"`
	PatientID    string          `json:"patient_id" bson:"patient_id"`
	Vaccinations map[string]bool `json:"vaccinations" bson:"vaccinations"`
	CreatedAt    time.Time       `json:"created_at" bson:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at" bson:"updated_at"`
}

// ScheduleEntry is one line of the PEV reference schedule
type ScheduleEntry struct {
	Period  string `json:"period"`
	Vaccine string `json:"vaccine"`
}

// PEVSchedule is the fixed Expanded Program on Immunization reference
// schedule the checklist is checked against
var PEVSchedule = []ScheduleEntry{
	{Period: "Naissance", Vaccine: "BCG"},
	{Period: "Naissance", Vaccine: "VPO-0"},
	{Period: "6 semaines", Vaccine: "DTC-HepB-Hib 1"},
	{Period: "6 semaines", Vaccine: "VPO-1"},
	{Period: "6 semaines", Vaccine: "Pneumo 1"},
	{Period: "6 semaines", Vaccine: "Rota 1"},
	{Period: "10 semaines", Vaccine: "DTC-HepB-Hib 2"},
	{Period: "10 semaines", Vaccine: "VPO-2"},
	{Period: "10 semaines", Vaccine: "Pneumo 2"},
	{Period: "10 semaines", Vaccine: "Rota 2"},
	{Period: "14 semaines", Vaccine: "DTC-HepB-Hib 3"},
	{Period: "14 semaines", Vaccine: "VPO-3"},
	{Period: "14 semaines", Vaccine: "Pneumo 3"},
	{Period: "14 semaines", Vaccine: "VPI"},
	{Period: "9 mois", Vaccine: "Rougeole-Rubeole"},
	{Period: "9 mois", Vaccine: "Fievre jaune"},
}

// GetID returns the record ID
func (v *VaccinationRecord) GetID() string { return v.ID }

// SetID sets the record ID
func (v *VaccinationRecord) SetID(id string) { v.ID = id }

// GetPatientID returns the referenced patient ID
func (v *VaccinationRecord) GetPatientID() string { return v.PatientID }

// GetCreatedAt returns the creation timestamp
func (v *VaccinationRecord) GetCreatedAt() time.Time { return v.CreatedAt }

// SetCreatedAt sets the creation timestamp
func (v *VaccinationRecord) SetCreatedAt(t time.Time) { v.CreatedAt = t }

// SetUpdatedAt sets the update timestamp
func (v *VaccinationRecord) SetUpdatedAt(t time.Time) { v.UpdatedAt = t }
