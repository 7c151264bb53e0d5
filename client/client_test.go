package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/drepanocare/drepano-care-api/models"
)

func TestClient_CreatePatientSendsBearerToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/v1/patients", r.URL.Path)
		assert.Equal(t, "Bearer abc123", r.Header.Get("Authorization"))

		var p models.PatientProfile
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&p))
		assert.Equal(t, "Mbarga", p.Nom)

		p.ID = "pat-1"
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(p)
	}))
	defer srv.Close()

	c := New(srv.URL, "abc123")
	out, err := c.CreatePatient(context.Background(), models.PatientProfile{Nom: "Mbarga", Prenom: "Alice"})
	assert.NoError(t, err)
	assert.Equal(t, "pat-1", out.ID)
	assert.Equal(t, "Mbarga", out.Nom)
}

func TestClient_ErrorResponsesBecomeAPIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_ = json.NewEncoder(w).Encode(models.ErrorMessageResponse{
			Response: models.MessageError{Message: "failed to get patient by ID", Error: "mongo: no documents in result"},
		})
	}))
	defer srv.Close()

	c := New(srv.URL, "abc123")
	_, err := c.GetPatient(context.Background(), "ghost")
	assert.Error(t, err)

	apiErr, ok := err.(*APIError)
	assert.True(t, ok)
	assert.Equal(t, http.StatusNotFound, apiErr.StatusCode)
	assert.Contains(t, apiErr.Message, "failed to get patient by ID")
}

func TestClient_NextFollowUpNumber(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/follow-ups/patient/pat-1/next-number", r.URL.Path)
		_ = json.NewEncoder(w).Encode(map[string]interface{}{"patient_id": "pat-1", "next_number": 3})
	}))
	defer srv.Close()

	c := New(srv.URL, "")
	n, err := c.NextFollowUpNumber(context.Background(), "pat-1")
	assert.NoError(t, err)
	assert.Equal(t, 3, n)
}

func TestClient_LoginInstallsToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/v1/auth/login":
			var body map[string]string
			_ = json.NewDecoder(r.Body).Decode(&body)
			assert.Equal(t, "doc@example.org", body["email"])
			_ = json.NewEncoder(w).Encode(map[string]string{"token": "jwt-token"})
		case "/api/v1/patients/pat-1":
			assert.Equal(t, "Bearer jwt-token", r.Header.Get("Authorization"))
			_ = json.NewEncoder(w).Encode(models.PatientProfile{ID: "pat-1"})
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer srv.Close()

	c := New(srv.URL, "")
	token, err := c.Login(context.Background(), "doc@example.org", "s3cret")
	assert.NoError(t, err)
	assert.Equal(t, "jwt-token", token)

	_, err = c.GetPatient(context.Background(), "pat-1")
	assert.NoError(t, err)
}

func TestClient_UpsertVaccinationUsesPatientRoute(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/api/v1/vaccinations/patient/pat-1", r.URL.Path)

		var rec models.VaccinationRecord
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&rec))
		rec.ID = "pat-1"
		_ = json.NewEncoder(w).Encode(rec)
	}))
	defer srv.Close()

	c := New(srv.URL, "abc123")
	out, err := c.UpsertVaccination(context.Background(), models.VaccinationRecord{
		PatientID:    "pat-1",
		Vaccinations: map[string]bool{"BCG": true},
	})
	assert.NoError(t, err)
	assert.Equal(t, "pat-1", out.ID)
	assert.True(t, out.Vaccinations["BCG"])
}
