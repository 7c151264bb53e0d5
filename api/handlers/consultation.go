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

// Consultation exported for testing purposes
type Consultation struct {
	DB  databases.ConsultationDatabase
	PDB databases.PatientDatabase
}

// ConsultationHandler returns all consultations, paginated
func (c Consultation) ConsultationHandler(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	Limit, err := strconv.Atoi(r.URL.Query().Get("limit"))
	if err != nil {
		zap.S().Warnf(fmt.Sprintf("limit not set, using default of %v, err: %v", Limit|10, err))
	}
	limit64 := int64(Limit)
	page := getPage(r)
	skip64 := int64(page * Limit)
	dbResp, err := c.DB.Find(ctx, bson.D{}, &options.FindOptions{Limit: &limit64, Skip: &skip64})
	if err != nil {
		config.ErrorStatus("failed to get consultations", http.StatusNotFound, w, err)
		return
	}
	if len(dbResp) == 0 {
		dbResp = []models.ConsultationData{}
	}
	b, err := json.Marshal(dbResp)
	if err != nil {
		config.ErrorStatus("failed to marshal response", http.StatusInternalServerError, w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write(b)
}

// ConsultationByIDHandler returns a consultation by ID
func (c Consultation) ConsultationByIDHandler(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	consultationID := mux.Vars(r)["consultation_id"]

	zap.S().Debugf("consultation_id: %v", consultationID)

	dbResp, err := c.DB.FindOne(ctx, bson.M{"id": consultationID})
	if err != nil {
		config.ErrorStatus("failed to get consultation by ID", http.StatusNotFound, w, err)
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

// ConsultationsByPatientIDHandler returns all consultations for the given patient
func (c Consultation) ConsultationsByPatientIDHandler(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	patientID := mux.Vars(r)["patient_id"]
	Limit, err := strconv.Atoi(r.URL.Query().Get("limit"))
	if err != nil {
		zap.S().Warnf(fmt.Sprintf("limit not set, using default of %v", Limit|10))
	}
	limit64 := int64(Limit)
	page := getPage(r)
	skip64 := int64(page * Limit)

	zap.S().Debugf("patient_id: '%v'", patientID)

	dbResp, err := c.DB.Find(ctx, bson.M{"patient_id": patientID},
		&options.FindOptions{Limit: &limit64, Skip: &skip64})
	if err != nil {
		config.ErrorStatus("failed to get consultations by patient ID", http.StatusNotFound, w, err)
		return
	}

	if len(dbResp) == 0 {
		dbResp = []models.ConsultationData{}
	}
	b, err := json.Marshal(dbResp)
	if err != nil {
		config.ErrorStatus("failed to marshal response", http.StatusInternalServerError, w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write(b)
}

// CreateConsultationHandler creates a consultation. The referenced patient
// must exist, dangling consultations are rejected up front.
func (c Consultation) CreateConsultationHandler(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	var consultation models.ConsultationData
	if err := json.NewDecoder(r.Body).Decode(&consultation); err != nil {
		config.ErrorStatus("failed to decode request body", http.StatusBadRequest, w, err)
		return
	}

	if consultation.PatientID == "" {
		config.ErrorStatus("patient_id is required", http.StatusBadRequest, w, fmt.Errorf("missing patient_id"))
		return
	}
	if _, err := c.PDB.FindOne(ctx, bson.M{"id": consultation.PatientID}); err != nil {
		config.ErrorStatus("unknown patient", http.StatusUnprocessableEntity, w, err)
		return
	}

	if consultation.ID == "" {
		consultation.ID = uuid.NewString()
	}
	consultation.CreatedAt = time.Now().UTC()
	consultation.UpdatedAt = consultation.CreatedAt

	_, err := c.DB.InsertOne(ctx, consultation)
	if err != nil {
		config.ErrorStatus("failed to create consultation", http.StatusInternalServerError, w, err)
		return
	}

	BroadcastRecordEvent("consultation.created", consultation.ID, consultation.PatientID)

	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(consultation)
}

// UpdateConsultationHandler updates a consultation, preserving the original
// creation timestamp
func (c Consultation) UpdateConsultationHandler(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	consultationID := mux.Vars(r)["consultation_id"]

	existing, err := c.DB.FindOne(ctx, bson.M{"id": consultationID})
	if err != nil {
		config.ErrorStatus("failed to get consultation by ID", http.StatusNotFound, w, err)
		return
	}

	var consultation models.ConsultationData
	if err := json.NewDecoder(r.Body).Decode(&consultation); err != nil {
		config.ErrorStatus("failed to decode request body", http.StatusBadRequest, w, err)
		return
	}

	consultation.ID = consultationID
	consultation.PatientID = existing.PatientID
	consultation.CreatedAt = existing.CreatedAt
	consultation.UpdatedAt = time.Now().UTC()

	err = c.DB.UpdateOne(ctx, bson.M{"id": consultationID}, bson.M{"$set": consultation})
	if err != nil {
		config.ErrorStatus("failed to update consultation", http.StatusInternalServerError, w, err)
		return
	}

	BroadcastRecordEvent("consultation.updated", consultationID, consultation.PatientID)

	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(consultation)
}

// DeleteConsultationHandler deletes a consultation by ID
func (c Consultation) DeleteConsultationHandler(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	consultationID := mux.Vars(r)["consultation_id"]

	err := c.DB.DeleteOne(ctx, bson.M{"id": consultationID})
	if err != nil {
		config.ErrorStatus("failed to delete consultation", http.StatusInternalServerError, w, err)
		return
	}

	BroadcastRecordEvent("consultation.deleted", consultationID, "")

	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"message": "Consultation deleted successfully",
	})
}
