package handlers_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/drepanocare/drepano-care-api/api/handlers"
	"github.com/drepanocare/drepano-care-api/databases"
	"github.com/drepanocare/drepano-care-api/databases/mocks"
	"github.com/drepanocare/drepano-care-api/models"
)

func TestVaccination_VaccinationByPatientHandlerNoRecordYet(t *testing.T) {
	req, err := http.NewRequest("GET", "/api/v1/vaccinations/patient/pat-1", nil)
	if err != nil {
		t.Fatal(err)
	}
	req = mux.SetURLVars(req, map[string]string{"patient_id": "pat-1"})
	req.Header.Set("Authorization", "Bearer abc123")

	var db databases.DatabaseHelper
	var conn databases.CollectionHelper
	var singleResultHelper databases.SingleResultHelper

	db = &MockDatabaseHelper{}
	conn = &mocks.CollectionHelper{}
	singleResultHelper = &mocks.SingleResultHelper{}

	singleResultHelper.(*mocks.SingleResultHelper).On("Decode", mock.Anything).Return(errors.New("mongo: no documents in result"))
	conn.(*mocks.CollectionHelper).On("FindOne", mock.Anything, mock.Anything).Return(singleResultHelper)
	db.(*MockDatabaseHelper).On("Collection", "vaccinations").Return(conn)

	v := handlers.Vaccination{DB: databases.NewVaccinationDatabase(db)}

	rr := httptest.NewRecorder()
	handler := http.HandlerFunc(v.VaccinationByPatientHandler)

	handler.ServeHTTP(rr, req)

	// patients without a stored record get an empty checklist, not a 404
	assert.Equal(t, http.StatusOK, rr.Code)

	var got models.VaccinationRecord
	assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
	assert.Equal(t, "pat-1", got.PatientID)
	assert.Equal(t, "pat-1", got.ID)
	assert.Empty(t, got.Vaccinations)
}

func TestVaccination_UpsertVaccinationHandlerFirstSaveCreates(t *testing.T) {
	body := strings.NewReader(`{"patient_id":"other","id":"other","vaccinations":{"BCG":true}}`)
	req, err := http.NewRequest("PUT", "/api/v1/vaccinations/patient/pat-1", body)
	if err != nil {
		t.Fatal(err)
	}
	req = mux.SetURLVars(req, map[string]string{"patient_id": "pat-1"})
	req.Header.Set("Authorization", "Bearer abc123")

	var db databases.DatabaseHelper
	var conn databases.CollectionHelper
	var singleResultHelper databases.SingleResultHelper

	db = &MockDatabaseHelper{}
	conn = &mocks.CollectionHelper{}
	singleResultHelper = &mocks.SingleResultHelper{}

	singleResultHelper.(*mocks.SingleResultHelper).On("Decode", mock.Anything).Return(errors.New("mongo: no documents in result"))
	conn.(*mocks.CollectionHelper).On("FindOne", mock.Anything, mock.Anything).Return(singleResultHelper)
	conn.(*mocks.CollectionHelper).On("InsertOne", mock.Anything, mock.Anything).Return(&mocks.InsertOneResultHelper{})
	db.(*MockDatabaseHelper).On("Collection", "vaccinations").Return(conn)

	v := handlers.Vaccination{DB: databases.NewVaccinationDatabase(db)}

	rr := httptest.NewRecorder()
	handler := http.HandlerFunc(v.UpsertVaccinationHandler)

	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusCreated, rr.Code)

	var got models.VaccinationRecord
	assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
	// the record is pinned to the patient in the route, whatever the body said
	assert.Equal(t, "pat-1", got.ID)
	assert.Equal(t, "pat-1", got.PatientID)
	assert.True(t, got.Vaccinations["BCG"])
	assert.False(t, got.CreatedAt.IsZero())
}

func TestVaccination_ScheduleHandler(t *testing.T) {
	req, err := http.NewRequest("GET", "/api/v1/vaccinations/schedule", nil)
	if err != nil {
		t.Fatal(err)
	}
	req.Header.Set("Authorization", "Bearer abc123")

	v := handlers.Vaccination{}

	rr := httptest.NewRecorder()
	handler := http.HandlerFunc(v.ScheduleHandler)

	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)

	var got []models.ScheduleEntry
	assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
	assert.Len(t, got, 16)
	assert.Equal(t, "BCG", got[0].Vaccine)
	assert.Equal(t, "Fievre jaune", got[15].Vaccine)
}
