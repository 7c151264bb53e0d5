// Package client is a small typed HTTP client for the drepano-care
// REST API, used by wizards and tooling that run outside the service.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/drepanocare/drepano-care-api/models"
)

// Client talks to the drepano-care REST API with bearer token auth
type Client struct {
	baseURL string
	token   string
	http    *http.Client
}

// New creates a client for the API at baseURL
func New(baseURL, token string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		token:   token,
		http:    &http.Client{Timeout: 30 * time.Second},
	}
}

// APIError is the error returned for non-2xx responses
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api: status %d: %s", e.StatusCode, e.Message)
}

func (c *Client) do(ctx context.Context, method, path string, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var errResp models.ErrorMessageResponse
		msg := resp.Status
		if decodeErr := json.NewDecoder(resp.Body).Decode(&errResp); decodeErr == nil && errResp.Response.Message != "" {
			msg = errResp.Response.Message
		}
		return &APIError{StatusCode: resp.StatusCode, Message: msg}
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
	}
	return nil
}

// CreatePatient creates a patient profile and returns the stored record
func (c *Client) CreatePatient(ctx context.Context, patient models.PatientProfile) (models.PatientProfile, error) {
	var out models.PatientProfile
	err := c.do(ctx, http.MethodPost, "/api/v1/patients", patient, &out)
	return out, err
}

// GetPatient fetches one patient by ID
func (c *Client) GetPatient(ctx context.Context, patientID string) (models.PatientProfile, error) {
	var out models.PatientProfile
	err := c.do(ctx, http.MethodGet, "/api/v1/patients/"+url.PathEscape(patientID), nil, &out)
	return out, err
}

// UpdatePatient replaces a patient profile
func (c *Client) UpdatePatient(ctx context.Context, patient models.PatientProfile) (models.PatientProfile, error) {
	var out models.PatientProfile
	err := c.do(ctx, http.MethodPut, "/api/v1/patients/"+url.PathEscape(patient.ID), patient, &out)
	return out, err
}

// DeletePatient deletes one patient by ID
func (c *Client) DeletePatient(ctx context.Context, patientID string) error {
	return c.do(ctx, http.MethodDelete, "/api/v1/patients/"+url.PathEscape(patientID), nil, nil)
}

// SearchPatients searches patients by name or unique identification number
func (c *Client) SearchPatients(ctx context.Context, query string) ([]models.PatientProfile, error) {
	var out []models.PatientProfile
	err := c.do(ctx, http.MethodGet, "/api/v1/patients/search/"+url.PathEscape(query), nil, &out)
	return out, err
}

// PatientSummary fetches the printable plain-text summary of a patient record
func (c *Client) PatientSummary(ctx context.Context, patientID string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		c.baseURL+"/api/v1/patients/"+url.PathEscape(patientID)+"/summary", nil)
	if err != nil {
		return "", err
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return "", &APIError{StatusCode: resp.StatusCode, Message: resp.Status}
	}
	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// CreateConsultation creates a consultation record
func (c *Client) CreateConsultation(ctx context.Context, consultation models.ConsultationData) (models.ConsultationData, error) {
	var out models.ConsultationData
	err := c.do(ctx, http.MethodPost, "/api/v1/consultations", consultation, &out)
	return out, err
}

// ConsultationsByPatient lists the consultations of a patient
func (c *Client) ConsultationsByPatient(ctx context.Context, patientID string) ([]models.ConsultationData, error) {
	var out []models.ConsultationData
	err := c.do(ctx, http.MethodGet, "/api/v1/consultations/patient/"+url.PathEscape(patientID), nil, &out)
	return out, err
}

// CreateFollowUp creates a follow-up visit record
func (c *Client) CreateFollowUp(ctx context.Context, followUp models.FollowUpData) (models.FollowUpData, error) {
	var out models.FollowUpData
	err := c.do(ctx, http.MethodPost, "/api/v1/follow-ups", followUp, &out)
	return out, err
}

// FollowUpsByPatient lists the follow-up visits of a patient
func (c *Client) FollowUpsByPatient(ctx context.Context, patientID string) ([]models.FollowUpData, error) {
	var out []models.FollowUpData
	err := c.do(ctx, http.MethodGet, "/api/v1/follow-ups/patient/"+url.PathEscape(patientID), nil, &out)
	return out, err
}

// NextFollowUpNumber returns the sequence number the next follow-up for
// the patient should carry
func (c *Client) NextFollowUpNumber(ctx context.Context, patientID string) (int, error) {
	var out struct {
		NextNumber int `json:"next_number"`
	}
	err := c.do(ctx, http.MethodGet, "/api/v1/follow-ups/patient/"+url.PathEscape(patientID)+"/next-number", nil, &out)
	return out.NextNumber, err
}

// VaccinationByPatient fetches the vaccination checklist of a patient
func (c *Client) VaccinationByPatient(ctx context.Context, patientID string) (models.VaccinationRecord, error) {
	var out models.VaccinationRecord
	err := c.do(ctx, http.MethodGet, "/api/v1/vaccinations/patient/"+url.PathEscape(patientID), nil, &out)
	return out, err
}

// UpsertVaccination stores the vaccination checklist of a patient
func (c *Client) UpsertVaccination(ctx context.Context, record models.VaccinationRecord) (models.VaccinationRecord, error) {
	var out models.VaccinationRecord
	err := c.do(ctx, http.MethodPut, "/api/v1/vaccinations/patient/"+url.PathEscape(record.PatientID), record, &out)
	return out, err
}

// Login authenticates a staff account and returns the session JWT. The
// token is also installed on the client for subsequent calls.
func (c *Client) Login(ctx context.Context, email, password string) (string, error) {
	var out struct {
		Token string `json:"token"`
	}
	body := map[string]string{"email": email, "password": password}
	if err := c.do(ctx, http.MethodPost, "/api/v1/auth/login", body, &out); err != nil {
		return "", err
	}
	c.token = out.Token
	return out.Token, nil
}
