package handlers

import (
	"crypto/hmac"
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/drepanocare/drepano-care-api/config"
)

// DocumentHandler handles signed upload requests for scanned documents
// (lab results, referral letters) attached to a record
type DocumentHandler struct{}

type signatureRequest struct {
	PatientID string `json:"patient_id"`
}

// GenerateSignature generates a signed upload ticket for the document store.
// Uploads are scoped to a per-patient folder so the signature only authorizes
// attaching documents to that patient's record. Signed params are ordered
// alphabetically, as the upload API requires.
func (d DocumentHandler) GenerateSignature(w http.ResponseWriter, r *http.Request) {
	var req signatureRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		config.ErrorStatus("failed to decode request body", http.StatusBadRequest, w, err)
		return
	}
	if req.PatientID == "" {
		config.ErrorStatus("patient_id is required", http.StatusBadRequest, w, fmt.Errorf("missing patient_id"))
		return
	}

	timestamp := strconv.FormatInt(time.Now().Unix(), 10)
	folder := "patients/" + req.PatientID
	uploadPreset := os.Getenv("DOCUMENT_UPLOAD_PRESET")
	apiSecret := os.Getenv("DOCUMENT_API_SECRET")

	// Create the signature
	h := hmac.New(sha1.New, []byte(apiSecret))
	h.Write([]byte("folder=" + folder + "&timestamp=" + timestamp + "&upload_preset=" + uploadPreset))
	signature := hex.EncodeToString(h.Sum(nil))

	response := map[string]string{
		"timestamp": timestamp,
		"folder":    folder,
		"signature": signature,
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}
