package wizard

import (
	"fmt"
	"strings"
)

// intakeRequired is the fixed, ordered field list of the intake bridge
// form; validation reports the first missing field in this order
var intakeRequired = []string{
	"quartier",
	"patient_phone",
	"contact_urgence_nom",
	"contact_urgence_telephone",
	"contact_urgence_lien",
	"cohabitation",
	"lien_parente",
	"type_drepanocytose",
	"region_origine",
	"groupe_sanguin",
}

// intakeRenames maps bridge field names to the names the consultation
// draft uses; fields not listed keep their name
var intakeRenames = map[string]string{
	"patient_phone": "patient_phone_number",
}

// IntakeBridge is the short-lived identity form that gates entry into
// the consultation wizard. Its submission copies the collected values
// into the wizard's draft before the wizard becomes visible.
type IntakeBridge struct {
	fields map[string]string
	err    string
}

// NewIntakeBridge creates an empty bridge form
func NewIntakeBridge() *IntakeBridge {
	return &IntakeBridge{fields: make(map[string]string)}
}

// Set records one bridge field value
func (b *IntakeBridge) Set(field, value string) {
	b.fields[field] = value
}

// Field returns the recorded value for field
func (b *IntakeBridge) Field(field string) string {
	return b.fields[field]
}

// Validate checks every required field in order and records an error
// naming the first missing one
func (b *IntakeBridge) Validate() bool {
	for _, f := range intakeRequired {
		if strings.TrimSpace(b.fields[f]) == "" {
			b.err = fmt.Sprintf("Veuillez renseigner le champ %s", f)
			return false
		}
	}
	b.err = ""
	return true
}

// Error returns the last validation message, empty when validation
// passed
func (b *IntakeBridge) Error() string { return b.err }

// Submit validates the bridge and, on success, resets the wizard to
// step 1 with a fresh draft and copies the bridge fields into it under
// their wizard names. Returns false, leaving the wizard untouched,
// when validation fails.
func (b *IntakeBridge) Submit(w *Wizard) bool {
	if !b.Validate() {
		return false
	}
	w.Reset()
	for _, f := range intakeRequired {
		name := f
		if renamed, ok := intakeRenames[f]; ok {
			name = renamed
		}
		w.Set(name, b.fields[f])
	}
	return true
}
