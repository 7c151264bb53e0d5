package handlers_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/drepanocare/drepano-care-api/api/handlers"
	"github.com/drepanocare/drepano-care-api/databases"
	"github.com/drepanocare/drepano-care-api/databases/mocks"
	"github.com/drepanocare/drepano-care-api/models"
)

type MockDatabaseHelper struct {
	mock.Mock
}

// Client provides a mock function.
func (_m *MockDatabaseHelper) Client() databases.ClientHelper {
	ret := _m.Called()

	var r0 databases.ClientHelper
	if rf, ok := ret.Get(0).(func() databases.ClientHelper); ok {
		r0 = rf()
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(databases.ClientHelper)
		}
	}

	return r0
}

// Collection provides a mock function.
func (_m *MockDatabaseHelper) Collection(name string) databases.CollectionHelper {
	ret := _m.Called(name)

	var r0 databases.CollectionHelper
	if rf, ok := ret.Get(0).(func(string) databases.CollectionHelper); ok {
		r0 = rf(name)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(databases.CollectionHelper)
		}
	}

	return r0
}

func mustParseTime(t *testing.T, s string) time.Time {
	t.Helper()
	ts, err := time.Parse(time.RFC3339, s)
	if err != nil {
		t.Fatal(err)
	}
	return ts
}

func TestPatient_PatientByIDHandlerSuccess(t *testing.T) {
	req, err := http.NewRequest("GET", "/api/v1/patients/pat-1", nil)
	if err != nil {
		t.Fatal(err)
	}

	req = mux.SetURLVars(req, map[string]string{"patient_id": "pat-1"})
	req.Header.Set("Authorization", "Bearer abc123")

	var db databases.DatabaseHelper
	var conn databases.CollectionHelper
	var singleResultHelper databases.SingleResultHelper

	db = &MockDatabaseHelper{} // can be used as db = &mocks.DatabaseHelper{}
	conn = &mocks.CollectionHelper{}
	singleResultHelper = &mocks.SingleResultHelper{}

	singleResultHelper.(*mocks.SingleResultHelper).On("Decode", mock.Anything).Return(nil).Run(func(args mock.Arguments) {
		arg := args.Get(0).(**models.PatientProfile)
		(*arg).ID = "pat-1"
		(*arg).Nom = "Mbarga"
		(*arg).Prenom = "Alice"
	})
	conn.(*mocks.CollectionHelper).On("FindOne", mock.Anything, mock.Anything).Return(singleResultHelper)
	db.(*MockDatabaseHelper).On("Collection", "patients").Return(conn)

	patientDatabase := databases.NewPatientDatabase(db)
	p := handlers.Patient{
		DB: patientDatabase,
	}

	rr := httptest.NewRecorder()
	handler := http.HandlerFunc(p.PatientByIDHandler)

	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)

	var got models.PatientProfile
	assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
	assert.Equal(t, "pat-1", got.ID)
	assert.Equal(t, "Mbarga", got.Nom)
}

func TestPatient_PatientByIDHandlerFailedToFindOne(t *testing.T) {
	req, err := http.NewRequest("GET", "/api/v1/patients/pat-1", nil)
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

	singleResultHelper.(*mocks.SingleResultHelper).On("Decode", mock.Anything).Return(errors.New("mocked-error"))
	conn.(*mocks.CollectionHelper).On("FindOne", mock.Anything, mock.Anything).Return(singleResultHelper)
	db.(*MockDatabaseHelper).On("Collection", "patients").Return(conn)

	patientDatabase := databases.NewPatientDatabase(db)
	p := handlers.Patient{
		DB: patientDatabase,
	}

	rr := httptest.NewRecorder()
	handler := http.HandlerFunc(p.PatientByIDHandler)

	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusNotFound, rr.Code)

	expected := models.ErrorMessageResponse{Response: models.MessageError{Message: "failed to get patient by ID", Error: "mocked-error"}}
	b, _ := json.Marshal(expected)
	assert.Equal(t, string(b), strings.TrimSpace(rr.Body.String()))
}

func TestPatient_CreatePatientHandlerStampsServerSideFields(t *testing.T) {
	body := strings.NewReader(`{"nom":"Mbarga","prenom":"Alice","sexe":"F","date_naissance":"2015-03-12","created_at":"1999-01-01T00:00:00Z"}`)
	req, err := http.NewRequest("POST", "/api/v1/patients", body)
	if err != nil {
		t.Fatal(err)
	}
	req.Header.Set("Authorization", "Bearer abc123")

	var db databases.DatabaseHelper
	var conn databases.CollectionHelper

	db = &MockDatabaseHelper{}
	conn = &mocks.CollectionHelper{}

	insertResult := &mocks.InsertOneResultHelper{}
	conn.(*mocks.CollectionHelper).On("InsertOne", mock.Anything, mock.Anything).Return(insertResult)
	db.(*MockDatabaseHelper).On("Collection", "patients").Return(conn)

	patientDatabase := databases.NewPatientDatabase(db)
	p := handlers.Patient{
		DB: patientDatabase,
	}

	rr := httptest.NewRecorder()
	handler := http.HandlerFunc(p.CreatePatientHandler)

	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusCreated, rr.Code)

	var got models.PatientProfile
	assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
	assert.NotEmpty(t, got.ID)
	// whatever the client claimed, timestamps are stamped server-side
	assert.True(t, got.CreatedAt.Year() >= 2024)
	assert.Equal(t, got.CreatedAt, got.UpdatedAt)
}

func TestPatient_CreatePatientHandlerBadBody(t *testing.T) {
	req, err := http.NewRequest("POST", "/api/v1/patients", strings.NewReader("{truncated"))
	if err != nil {
		t.Fatal(err)
	}
	req.Header.Set("Authorization", "Bearer abc123")

	p := handlers.Patient{DB: databases.NewPatientDatabase(&MockDatabaseHelper{})}

	rr := httptest.NewRecorder()
	handler := http.HandlerFunc(p.CreatePatientHandler)

	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestPatient_UpdatePatientHandlerPreservesCreatedAt(t *testing.T) {
	body := strings.NewReader(`{"nom":"Mbarga","prenom":"Alice","ville":"Yaounde"}`)
	req, err := http.NewRequest("PUT", "/api/v1/patients/pat-1", body)
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

	singleResultHelper.(*mocks.SingleResultHelper).On("Decode", mock.Anything).Return(nil).Run(func(args mock.Arguments) {
		arg := args.Get(0).(**models.PatientProfile)
		(*arg).ID = "pat-1"
		(*arg).CreatedAt = mustParseTime(t, "2024-01-15T10:00:00Z")
	})
	conn.(*mocks.CollectionHelper).On("FindOne", mock.Anything, mock.Anything).Return(singleResultHelper)
	conn.(*mocks.CollectionHelper).On("UpdateOne", mock.Anything, mock.Anything, mock.Anything).Return(nil)
	db.(*MockDatabaseHelper).On("Collection", "patients").Return(conn)

	patientDatabase := databases.NewPatientDatabase(db)
	p := handlers.Patient{
		DB: patientDatabase,
	}

	rr := httptest.NewRecorder()
	handler := http.HandlerFunc(p.UpdatePatientHandler)

	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)

	var got models.PatientProfile
	assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
	assert.Equal(t, "pat-1", got.ID)
	assert.Equal(t, mustParseTime(t, "2024-01-15T10:00:00Z"), got.CreatedAt)
	assert.True(t, got.UpdatedAt.After(got.CreatedAt))
}

func TestPatient_DeletePatientHandler(t *testing.T) {
	req, err := http.NewRequest("DELETE", "/api/v1/patients/pat-1", nil)
	if err != nil {
		t.Fatal(err)
	}
	req = mux.SetURLVars(req, map[string]string{"patient_id": "pat-1"})
	req.Header.Set("Authorization", "Bearer abc123")

	var db databases.DatabaseHelper
	var conn databases.CollectionHelper

	db = &MockDatabaseHelper{}
	conn = &mocks.CollectionHelper{}

	conn.(*mocks.CollectionHelper).On("DeleteOne", mock.Anything, mock.Anything).Return(nil)
	db.(*MockDatabaseHelper).On("Collection", "patients").Return(conn)

	p := handlers.Patient{DB: databases.NewPatientDatabase(db)}

	rr := httptest.NewRecorder()
	handler := http.HandlerFunc(p.DeletePatientHandler)

	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "Patient deleted successfully")
}

func TestPatient_PatientHandlerPaginationIsPerRequest(t *testing.T) {
	var db databases.DatabaseHelper
	var conn databases.CollectionHelper
	var cursor databases.CursorHelper

	db = &MockDatabaseHelper{}
	conn = &mocks.CollectionHelper{}
	cursor = &mocks.CursorHelper{}

	var skips []int64
	cursor.(*mocks.CursorHelper).On("Decode", mock.Anything).Return(nil)
	conn.(*mocks.CollectionHelper).On("Find", mock.Anything, mock.Anything, mock.Anything).Return(cursor).Run(func(args mock.Arguments) {
		opts := args.Get(2).(*options.FindOptions)
		skips = append(skips, *opts.Skip)
	})
	db.(*MockDatabaseHelper).On("Collection", "patients").Return(conn)

	p := handlers.Patient{DB: databases.NewPatientDatabase(db)}
	handler := http.HandlerFunc(p.PatientHandler)

	first, err := http.NewRequest("GET", "/api/v1/patients?limit=10&page=5", nil)
	if err != nil {
		t.Fatal(err)
	}
	handler.ServeHTTP(httptest.NewRecorder(), first)

	// a request without a page param starts from the first page, whatever
	// the previous request asked for
	second, err := http.NewRequest("GET", "/api/v1/patients?limit=10", nil)
	if err != nil {
		t.Fatal(err)
	}
	handler.ServeHTTP(httptest.NewRecorder(), second)

	assert.Equal(t, []int64{50, 0}, skips)
}

func TestPatient_PatientByIDHandlerAppliesQueryDeadline(t *testing.T) {
	req, err := http.NewRequest("GET", "/api/v1/patients/pat-1", nil)
	if err != nil {
		t.Fatal(err)
	}
	req = mux.SetURLVars(req, map[string]string{"patient_id": "pat-1"})

	var db databases.DatabaseHelper
	var conn databases.CollectionHelper
	var singleResultHelper databases.SingleResultHelper

	db = &MockDatabaseHelper{}
	conn = &mocks.CollectionHelper{}
	singleResultHelper = &mocks.SingleResultHelper{}

	hasDeadline := mock.MatchedBy(func(ctx context.Context) bool {
		_, ok := ctx.Deadline()
		return ok
	})

	singleResultHelper.(*mocks.SingleResultHelper).On("Decode", mock.Anything).Return(nil)
	conn.(*mocks.CollectionHelper).On("FindOne", hasDeadline, mock.Anything).Return(singleResultHelper)
	db.(*MockDatabaseHelper).On("Collection", "patients").Return(conn)

	p := handlers.Patient{DB: databases.NewPatientDatabase(db)}

	rr := httptest.NewRecorder()
	handler := http.HandlerFunc(p.PatientByIDHandler)

	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	conn.(*mocks.CollectionHelper).AssertExpectations(t)
}
