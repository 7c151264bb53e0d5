package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"

	"github.com/drepanocare/drepano-care-api/api"
	"github.com/drepanocare/drepano-care-api/config"
	"github.com/drepanocare/drepano-care-api/databases"
	"github.com/drepanocare/drepano-care-api/models"
)

// Patient exported for testing purposes
type Patient struct {
	DB databases.PatientDatabase
}

// PatientHandler returns all patients, paginated
func (p Patient) PatientHandler(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	Limit, err := strconv.Atoi(r.URL.Query().Get("limit"))
	if err != nil {
		zap.S().Warnf(fmt.Sprintf("limit not set, using default of %v, err: %v", Limit|10, err))
	}
	limit64 := int64(Limit)
	page := getPage(r)
	skip64 := int64(page * Limit)
	dbResp, err := p.DB.Find(ctx, bson.D{}, &options.FindOptions{Limit: &limit64, Skip: &skip64})
	if err != nil {
		config.ErrorStatus("failed to get patients", http.StatusNotFound, w, err)
		return
	}
	// The frontend expects the data element to exist, so if len == 0
	// we return an empty list instead of null
	if len(dbResp) == 0 {
		dbResp = []models.PatientProfile{}
	}
	b, err := json.Marshal(dbResp)
	if err != nil {
		config.ErrorStatus("failed to marshal response", http.StatusInternalServerError, w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write(b)
}

// PatientByIDHandler returns a patient by ID
func (p Patient) PatientByIDHandler(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	patientID := mux.Vars(r)["patient_id"]

	zap.S().Debugf("patient_id: %v", patientID)

	dbResp, err := p.DB.FindOne(ctx, bson.M{"id": patientID})
	if err != nil {
		config.ErrorStatus("failed to get patient by ID", http.StatusNotFound, w, err)
		return
	}

	b, err := json.Marshal(dbResp)
	if err != nil {
		config.ErrorStatus("failed to marshal response", http.StatusInternalServerError, w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write(b)
}

// PatientsSearchHandler returns a paginated list of patients whose name or
// unique identification number matches the given query
func (p Patient) PatientsSearchHandler(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	query := mux.Vars(r)["query"]
	Limit, err := strconv.Atoi(r.URL.Query().Get("limit"))
	if err != nil {
		zap.S().Warnf(fmt.Sprintf("limit not set, using default of %v", Limit|10))
	}
	limit64 := int64(Limit)
	page := getPage(r)
	skip64 := int64(page * Limit)

	zap.S().Debugf("query: '%v'", query)

	filter := bson.M{"$or": []bson.M{
		{"nom": bson.M{"$regex": query, "$options": "i"}},
		{"prenom": bson.M{"$regex": query, "$options": "i"}},
		{"numero_identification_unique": bson.M{"$regex": query, "$options": "i"}},
	}}

	dbResp, err := p.DB.Find(ctx, filter, &options.FindOptions{Limit: &limit64, Skip: &skip64})
	if err != nil {
		config.ErrorStatus("failed to search patients", http.StatusNotFound, w, err)
		return
	}

	if len(dbResp) == 0 {
		dbResp = []models.PatientProfile{}
	}
	b, err := json.Marshal(dbResp)
	if err != nil {
		config.ErrorStatus("failed to marshal response", http.StatusInternalServerError, w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write(b)
}

// getPage reads the page query param, defaulting to the first page. The
// result is per-request, never shared between handlers.
func getPage(r *http.Request) int {
	page := 0
	if r.URL.Query().Get("page") == "" {
		zap.S().Warnf("page not set, using default of %v", page)
	} else {
		var err error
		page, err = strconv.Atoi(r.URL.Query().Get("page"))
		if err != nil {
			zap.S().Errorf(fmt.Sprintf("error parsing page number: %v", err))
		}
		if page < 0 {
			zap.S().Warnf(fmt.Sprintf("cannot process page number less than 1. Got: %v", page))
			return 0
		}
	}
	return page
}

// CreatePatientHandler creates a patient profile
func (p Patient) CreatePatientHandler(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	var patient models.PatientProfile
	if err := json.NewDecoder(r.Body).Decode(&patient); err != nil {
		config.ErrorStatus("failed to decode request body", http.StatusBadRequest, w, err)
		return
	}

	if patient.ID == "" {
		patient.ID = uuid.NewString()
	}
	// Timestamps are stamped server-side, whatever the client sent is ignored
	patient.CreatedAt = time.Now().UTC()
	patient.UpdatedAt = patient.CreatedAt

	_, err := p.DB.InsertOne(ctx, patient)
	if err != nil {
		config.ErrorStatus("failed to create patient", http.StatusInternalServerError, w, err)
		return
	}

	BroadcastRecordEvent("patient.created", patient.ID, patient.ID)

	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(patient)
}

// UpdatePatientHandler updates a patient profile, preserving the original
// creation timestamp
func (p Patient) UpdatePatientHandler(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	patientID := mux.Vars(r)["patient_id"]

	existing, err := p.DB.FindOne(ctx, bson.M{"id": patientID})
	if err != nil {
		config.ErrorStatus("failed to get patient by ID", http.StatusNotFound, w, err)
		return
	}

	var patient models.PatientProfile
	if err := json.NewDecoder(r.Body).Decode(&patient); err != nil {
		config.ErrorStatus("failed to decode request body", http.StatusBadRequest, w, err)
		return
	}

	patient.ID = patientID
	patient.CreatedAt = existing.CreatedAt
	patient.UpdatedAt = time.Now().UTC()

	err = p.DB.UpdateOne(ctx, bson.M{"id": patientID}, bson.M{"$set": patient})
	if err != nil {
		config.ErrorStatus("failed to update patient", http.StatusInternalServerError, w, err)
		return
	}

	BroadcastRecordEvent("patient.updated", patientID, patientID)

	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(patient)
}

// DeletePatientHandler deletes a patient by ID
func (p Patient) DeletePatientHandler(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	patientID := mux.Vars(r)["patient_id"]

	err := p.DB.DeleteOne(ctx, bson.M{"id": patientID})
	if err != nil {
		config.ErrorStatus("failed to delete patient", http.StatusInternalServerError, w, err)
		return
	}

	BroadcastRecordEvent("patient.deleted", patientID, patientID)

	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"message": "Patient deleted successfully",
	})
}
