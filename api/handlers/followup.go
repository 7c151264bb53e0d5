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

// FollowUp exported for testing purposes
type FollowUp struct {
	DB  databases.FollowUpDatabase
	PDB databases.PatientDatabase
}

// FollowUpHandler returns all follow-up visits, paginated
func (f FollowUp) FollowUpHandler(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	Limit, err := strconv.Atoi(r.URL.Query().Get("limit"))
	if err != nil {
		zap.S().Warnf(fmt.Sprintf("limit not set, using default of %v, err: %v", Limit|10, err))
	}
	limit64 := int64(Limit)
	page := getPage(r)
	skip64 := int64(page * Limit)
	dbResp, err := f.DB.Find(ctx, bson.D{}, &options.FindOptions{Limit: &limit64, Skip: &skip64})
	if err != nil {
		config.ErrorStatus("failed to get follow-ups", http.StatusNotFound, w, err)
		return
	}
	if len(dbResp) == 0 {
		dbResp = []models.FollowUpData{}
	}
	b, err := json.Marshal(dbResp)
	if err != nil {
		config.ErrorStatus("failed to marshal response", http.StatusInternalServerError, w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write(b)
}

// FollowUpByIDHandler returns a follow-up visit by ID
func (f FollowUp) FollowUpByIDHandler(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	followUpID := mux.Vars(r)["follow_up_id"]

	zap.S().Debugf("follow_up_id: %v", followUpID)

	dbResp, err := f.DB.FindOne(ctx, bson.M{"id": followUpID})
	if err != nil {
		config.ErrorStatus("failed to get follow-up by ID", http.StatusNotFound, w, err)
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

// FollowUpsByPatientIDHandler returns all follow-up visits for the given patient
func (f FollowUp) FollowUpsByPatientIDHandler(w http.ResponseWriter, r *http.Request) {
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

	dbResp, err := f.DB.Find(ctx, bson.M{"patient_id": patientID},
		&options.FindOptions{Limit: &limit64, Skip: &skip64})
	if err != nil {
		config.ErrorStatus("failed to get follow-ups by patient ID", http.StatusNotFound, w, err)
		return
	}

	if len(dbResp) == 0 {
		dbResp = []models.FollowUpData{}
	}
	b, err := json.Marshal(dbResp)
	if err != nil {
		config.ErrorStatus("failed to marshal response", http.StatusInternalServerError, w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write(b)
}

// FollowUpNextNumberHandler returns the sequence number the next follow-up
// visit for the given patient should carry
func (f FollowUp) FollowUpNextNumberHandler(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	patientID := mux.Vars(r)["patient_id"]

	count, err := f.DB.CountDocuments(ctx, bson.M{"patient_id": patientID})
	if err != nil {
		config.ErrorStatus("failed to count follow-ups", http.StatusInternalServerError, w, err)
		return
	}

	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"patient_id":  patientID,
		"next_number": count + 1,
	})
}

// CreateFollowUpHandler creates a follow-up visit. The referenced patient
// must exist. If the client did not assign a sequence number, the next one
// for the patient is assigned here.
func (f FollowUp) CreateFollowUpHandler(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	var followUp models.FollowUpData
	if err := json.NewDecoder(r.Body).Decode(&followUp); err != nil {
		config.ErrorStatus("failed to decode request body", http.StatusBadRequest, w, err)
		return
	}

	if followUp.PatientID == "" {
		config.ErrorStatus("patient_id is required", http.StatusBadRequest, w, fmt.Errorf("missing patient_id"))
		return
	}
	if _, err := f.PDB.FindOne(ctx, bson.M{"id": followUp.PatientID}); err != nil {
		config.ErrorStatus("unknown patient", http.StatusUnprocessableEntity, w, err)
		return
	}

	if followUp.FollowUpNumber == 0 {
		count, err := f.DB.CountDocuments(ctx, bson.M{"patient_id": followUp.PatientID})
		if err != nil {
			config.ErrorStatus("failed to count follow-ups", http.StatusInternalServerError, w, err)
			return
		}
		followUp.FollowUpNumber = int(count) + 1
	}

	if followUp.ID == "" {
		followUp.ID = uuid.NewString()
	}
	followUp.CreatedAt = time.Now().UTC()
	followUp.UpdatedAt = followUp.CreatedAt

	_, err := f.DB.InsertOne(ctx, followUp)
	if err != nil {
		config.ErrorStatus("failed to create follow-up", http.StatusInternalServerError, w, err)
		return
	}

	BroadcastRecordEvent("follow_up.created", followUp.ID, followUp.PatientID)

	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(followUp)
}

// UpdateFollowUpHandler updates a follow-up visit, preserving the original
// creation timestamp and sequence number
func (f FollowUp) UpdateFollowUpHandler(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	followUpID := mux.Vars(r)["follow_up_id"]

	existing, err := f.DB.FindOne(ctx, bson.M{"id": followUpID})
	if err != nil {
		config.ErrorStatus("failed to get follow-up by ID", http.StatusNotFound, w, err)
		return
	}

	var followUp models.FollowUpData
	if err := json.NewDecoder(r.Body).Decode(&followUp); err != nil {
		config.ErrorStatus("failed to decode request body", http.StatusBadRequest, w, err)
		return
	}

	followUp.ID = followUpID
	followUp.PatientID = existing.PatientID
	followUp.FollowUpNumber = existing.FollowUpNumber
	followUp.CreatedAt = existing.CreatedAt
	followUp.UpdatedAt = time.Now().UTC()

	err = f.DB.UpdateOne(ctx, bson.M{"id": followUpID}, bson.M{"$set": followUp})
	if err != nil {
		config.ErrorStatus("failed to update follow-up", http.StatusInternalServerError, w, err)
		return
	}

	BroadcastRecordEvent("follow_up.updated", followUpID, followUp.PatientID)

	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(followUp)
}

// DeleteFollowUpHandler deletes a follow-up visit by ID
func (f FollowUp) DeleteFollowUpHandler(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	followUpID := mux.Vars(r)["follow_up_id"]

	err := f.DB.DeleteOne(ctx, bson.M{"id": followUpID})
	if err != nil {
		config.ErrorStatus("failed to delete follow-up", http.StatusInternalServerError, w, err)
		return
	}

	BroadcastRecordEvent("follow_up.deleted", followUpID, "")

	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"message": "Follow-up deleted successfully",
	})
}
