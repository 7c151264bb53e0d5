package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"

	"github.com/drepanocare/drepano-care-api/api"
	"github.com/drepanocare/drepano-care-api/config"
	"github.com/drepanocare/drepano-care-api/databases"
	"github.com/drepanocare/drepano-care-api/models"
)

// Vaccination exported for testing purposes
type Vaccination struct {
	DB databases.VaccinationDatabase
}

// ScheduleHandler returns the expanded program of immunization schedule
// in checklist order
func (v Vaccination) ScheduleHandler(w http.ResponseWriter, r *http.Request) {
	b, err := json.Marshal(models.PEVSchedule)
	if err != nil {
		config.ErrorStatus("failed to marshal response", http.StatusInternalServerError, w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write(b)
}

// VaccinationByPatientHandler returns the vaccination record for the given
// patient. Patients without a stored record get an empty checklist back, the
// record is only persisted on the first save.
func (v Vaccination) VaccinationByPatientHandler(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	patientID := mux.Vars(r)["patient_id"]

	zap.S().Debugf("patient_id: %v", patientID)

	dbResp, err := v.DB.FindOne(ctx, bson.M{"patient_id": patientID})
	if err != nil {
		dbResp = &models.VaccinationRecord{
			ID:           patientID,
			PatientID:    patientID,
			Vaccinations: map[string]bool{},
		}
	}

	b, err := json.Marshal(dbResp)
	if err != nil {
		config.ErrorStatus("failed to marshal response", http.StatusInternalServerError, w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write(b)
}

// UpsertVaccinationHandler stores the vaccination checklist for the given
// patient, creating the record on first save. A patient holds exactly one
// vaccination record so the record ID is pinned to the patient ID.
func (v Vaccination) UpsertVaccinationHandler(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	patientID := mux.Vars(r)["patient_id"]

	var record models.VaccinationRecord
	if err := json.NewDecoder(r.Body).Decode(&record); err != nil {
		config.ErrorStatus("failed to decode request body", http.StatusBadRequest, w, err)
		return
	}

	record.ID = patientID
	record.PatientID = patientID
	if record.Vaccinations == nil {
		record.Vaccinations = map[string]bool{}
	}

	existing, err := v.DB.FindOne(ctx, bson.M{"patient_id": patientID})
	if err != nil {
		record.CreatedAt = time.Now().UTC()
		record.UpdatedAt = record.CreatedAt
		_, err = v.DB.InsertOne(ctx, record)
		if err != nil {
			config.ErrorStatus("failed to create vaccination record", http.StatusInternalServerError, w, err)
			return
		}
		BroadcastRecordEvent("vaccination.created", record.ID, patientID)
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(record)
		return
	}

	record.CreatedAt = existing.CreatedAt
	record.UpdatedAt = time.Now().UTC()

	err = v.DB.UpdateOne(ctx, bson.M{"patient_id": patientID}, bson.M{"$set": record})
	if err != nil {
		config.ErrorStatus("failed to update vaccination record", http.StatusInternalServerError, w, err)
		return
	}

	BroadcastRecordEvent("vaccination.updated", record.ID, patientID)

	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(record)
}
