// Package wizard implements the multi-step form controllers for
// consultations and follow-ups: one engine driven by a declarative
// step schema, configured per form type, plus the intake bridge form
// and the vaccination checklist.
package wizard

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
)

// Draft is the partially filled target record of a form session,
// string-keyed like the entity JSON it becomes on submit
type Draft map[string]any

// Step describes one form step: its title, the fields that must be
// non-empty before leaving it, and the message shown when one is not
type Step struct {
	Title    string
	Required []string
	Message  string
}

// Saver persists a finished draft
type Saver interface {
	SaveDraft(ctx context.Context, draft Draft) error
}

// Config fixes a wizard's shape: the ordered steps, derived field
// recomputation, minimum lengths for repeatable lists, and the seed
// values of a fresh draft
type Config struct {
	Steps    []Step
	Derive   func(d Draft, field string)
	MinItems map[string]int
	Seed     func() Draft
}

// Wizard is a multi-step form session. The step index is 1-based; the
// draft lives only in memory until Submit.
type Wizard struct {
	cfg     Config
	saver   Saver
	current int
	draft   Draft
	stepErr string
}

// New creates a wizard at step 1 with a freshly seeded draft
func New(cfg Config, saver Saver) *Wizard {
	w := &Wizard{cfg: cfg, saver: saver}
	w.reset()
	return w
}

func (w *Wizard) reset() {
	w.current = 1
	w.stepErr = ""
	if w.cfg.Seed != nil {
		w.draft = w.cfg.Seed()
	} else {
		w.draft = Draft{}
	}
}

// Reset discards the session and returns to step 1 with a fresh draft
func (w *Wizard) Reset() { w.reset() }

// Current returns the 1-based current step index
func (w *Wizard) Current() int { return w.current }

// Steps returns the total step count
func (w *Wizard) Steps() int { return len(w.cfg.Steps) }

// StepError returns the current step's validation message, empty when
// the last transition passed
func (w *Wizard) StepError() string { return w.stepErr }

// Draft returns the live draft
func (w *Wizard) Draft() Draft { return w.draft }

// Field returns the draft value for field
func (w *Wizard) Field(field string) any { return w.draft[field] }

// Next validates the current step; on failure it records the step
// error and stays put. On the last step a passing validation reports
// readiness to submit without moving.
func (w *Wizard) Next() bool {
	step := w.cfg.Steps[w.current-1]
	if f := w.missing(step); f != "" {
		w.stepErr = stepMessage(step, f)
		return false
	}
	w.stepErr = ""
	if w.current < len(w.cfg.Steps) {
		w.current++
	}
	return true
}

// Previous never validates; back navigation must always succeed
func (w *Wizard) Previous() {
	if w.current > 1 {
		w.current--
	}
	w.stepErr = ""
}

// Set merges one field into the draft and recomputes any derived
// fields keyed on it
func (w *Wizard) Set(field string, value any) {
	w.draft[field] = value
	if w.cfg.Derive != nil {
		w.cfg.Derive(w.draft, field)
	}
}

// Toggle adds value to the field's list when absent and removes it
// when present; the remaining elements keep insertion order
func (w *Wizard) Toggle(field, value string) {
	list := toStrings(w.draft[field])
	for i, v := range list {
		if v == value {
			w.draft[field] = append(list[:i:i], list[i+1:]...)
			return
		}
	}
	w.draft[field] = append(list, value)
}

// AppendItem appends an element to a repeatable list field
func (w *Wizard) AppendItem(field string, item any) {
	list, _ := w.draft[field].([]any)
	w.draft[field] = append(list, item)
}

// RemoveItem drops the element at index, honoring the configured
// minimum length for the field; out-of-range indexes are ignored
func (w *Wizard) RemoveItem(field string, index int) {
	list, _ := w.draft[field].([]any)
	if index < 0 || index >= len(list) {
		return
	}
	if len(list) <= w.cfg.MinItems[field] {
		return
	}
	w.draft[field] = append(list[:index:index], list[index+1:]...)
}

// Submit validates the required fields of every step, persists the
// draft and starts a fresh session at step 1. On a validation failure
// the wizard jumps to the offending step with its error set.
func (w *Wizard) Submit(ctx context.Context) error {
	for i, step := range w.cfg.Steps {
		if f := w.missing(step); f != "" {
			w.current = i + 1
			w.stepErr = stepMessage(step, f)
			return fmt.Errorf("etape %d: %s", i+1, w.stepErr)
		}
	}
	if err := w.saver.SaveDraft(ctx, w.draft); err != nil {
		return err
	}
	w.reset()
	return nil
}

// missing returns the first required field of step that is empty in
// the draft, or "" when the step validates
func (w *Wizard) missing(step Step) string {
	for _, f := range step.Required {
		if isEmpty(w.draft[f]) {
			return f
		}
	}
	return ""
}

func stepMessage(step Step, field string) string {
	if step.Message != "" {
		return step.Message
	}
	return fmt.Sprintf("champ obligatoire manquant: %s", field)
}

func isEmpty(v any) bool {
	switch t := v.(type) {
	case nil:
		return true
	case string:
		return strings.TrimSpace(t) == ""
	case []string:
		return len(t) == 0
	case []any:
		return len(t) == 0
	default:
		return false
	}
}

func toStrings(v any) []string {
	switch t := v.(type) {
	case []string:
		return t
	case []any:
		out := make([]string, 0, len(t))
		for _, e := range t {
			if s, ok := e.(string); ok {
				out = append(out, s)
			}
		}
		return out
	default:
		return nil
	}
}

// decodeDraft round-trips a draft through JSON into the typed record
func decodeDraft(draft Draft, out any) error {
	b, err := json.Marshal(draft)
	if err != nil {
		return fmt.Errorf("encode draft: %w", err)
	}
	if err := json.Unmarshal(b, out); err != nil {
		return fmt.Errorf("decode draft: %w", err)
	}
	return nil
}
