package handlers

import (
	"net/http"

	"github.com/gorilla/mux"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/drepanocare/drepano-care-api/api"
	"github.com/drepanocare/drepano-care-api/config"
	"github.com/drepanocare/drepano-care-api/databases"
	"github.com/drepanocare/drepano-care-api/export"
	"github.com/drepanocare/drepano-care-api/models"
)

// Summary exported for testing purposes
type Summary struct {
	PDB databases.PatientDatabase
	CDB databases.ConsultationDatabase
	FDB databases.FollowUpDatabase
	VDB databases.VaccinationDatabase
}

// PatientSummaryHandler renders a printable plain-text summary of the
// full patient record
func (s Summary) PatientSummaryHandler(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	patientID := mux.Vars(r)["patient_id"]

	patient, err := s.PDB.FindOne(ctx, bson.M{"id": patientID})
	if err != nil {
		config.ErrorStatus("failed to get patient by ID", http.StatusNotFound, w, err)
		return
	}

	consultations, err := s.CDB.Find(ctx, bson.M{"patient_id": patientID}, nil)
	if err != nil {
		config.ErrorStatus("failed to get consultations", http.StatusInternalServerError, w, err)
		return
	}

	followUps, err := s.FDB.Find(ctx, bson.M{"patient_id": patientID}, nil)
	if err != nil {
		config.ErrorStatus("failed to get follow-ups", http.StatusInternalServerError, w, err)
		return
	}

	vaccination, err := s.VDB.FindOne(ctx, bson.M{"patient_id": patientID})
	if err != nil {
		vaccination = &models.VaccinationRecord{PatientID: patientID, Vaccinations: map[string]bool{}}
	}

	text, err := export.RenderPatientSummary(*patient, consultations, followUps, *vaccination)
	if err != nil {
		config.ErrorStatus("failed to render summary", http.StatusInternalServerError, w, err)
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(text))
}
