package localstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	// ErrNotFound is returned when no record exists under the requested key
	ErrNotFound = errors.New("record not found")
	// ErrCorrupt is returned when a stored value exists but no longer parses
	ErrCorrupt = errors.New("stored record is corrupt")
	// ErrUnknownPatient is returned when a record references a patient id
	// that does not resolve
	ErrUnknownPatient = errors.New("unknown patient")
)

// Record is implemented by every entity stored through a Repository
type Record interface {
	GetID() string
	SetID(id string)
	GetPatientID() string
	GetCreatedAt() time.Time
	SetCreatedAt(t time.Time)
	SetUpdatedAt(t time.Time)
}

// recordPtr constrains PT to a pointer to T that satisfies Record
type recordPtr[T any] interface {
	*T
	Record
}

// Repository maps one entity type to and from JSON strings stored
// under a namespaced key prefix. Listing and filtering scan every key
// under the prefix; there is no index structure.
type Repository[T any, PT recordPtr[T]] struct {
	kv     KV
	prefix string
}

// NewRepository creates a repository over kv for keys under prefix
func NewRepository[T any, PT recordPtr[T]](kv KV, prefix string) *Repository[T, PT] {
	return &Repository[T, PT]{kv: kv, prefix: prefix}
}

func (r *Repository[T, PT]) key(id string) string { return r.prefix + id }

// Create stamps created_at and updated_at, generates an id when the
// record has none, and writes the record
func (r *Repository[T, PT]) Create(ctx context.Context, rec PT) error {
	if rec.GetID() == "" {
		rec.SetID(uuid.New().String())
	}
	now := time.Now().UTC()
	rec.SetCreatedAt(now)
	rec.SetUpdatedAt(now)
	return r.put(ctx, rec)
}

// Update restamps only updated_at and preserves the stored created_at.
// Updating a record that was never created fails with ErrNotFound.
func (r *Repository[T, PT]) Update(ctx context.Context, rec PT) error {
	if rec.GetID() == "" {
		return errors.New("update requires a record id")
	}
	existing, err := r.GetByID(ctx, rec.GetID())
	if err != nil {
		return fmt.Errorf("update %s: %w", rec.GetID(), err)
	}
	rec.SetCreatedAt(existing.GetCreatedAt())
	rec.SetUpdatedAt(time.Now().UTC())
	return r.put(ctx, rec)
}

func (r *Repository[T, PT]) put(ctx context.Context, rec PT) error {
	b, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("marshal record %s: %w", rec.GetID(), err)
	}
	return r.kv.Set(ctx, r.key(rec.GetID()), string(b))
}

// GetByID reads and parses one record. Absence and corruption are
// distinct outcomes: ErrNotFound for a missing key, ErrCorrupt for a
// value that no longer parses.
func (r *Repository[T, PT]) GetByID(ctx context.Context, id string) (PT, error) {
	raw, ok, err := r.kv.Get(ctx, r.key(id))
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrNotFound
	}
	rec := PT(new(T))
	if err := json.Unmarshal([]byte(raw), rec); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorrupt, err)
	}
	return rec, nil
}

// GetAll lists every record under the prefix, in no guaranteed order.
// Corrupt entries are skipped from the result but logged.
func (r *Repository[T, PT]) GetAll(ctx context.Context) ([]PT, error) {
	keys, err := r.kv.Keys(ctx)
	if err != nil {
		return nil, err
	}
	matched := keys[:0]
	for _, k := range keys {
		if strings.HasPrefix(k, r.prefix) {
			matched = append(matched, k)
		}
	}
	values, err := r.kv.MultiGet(ctx, matched)
	if err != nil {
		return nil, err
	}
	out := make([]PT, 0, len(values))
	for k, raw := range values {
		rec := PT(new(T))
		if err := json.Unmarshal([]byte(raw), rec); err != nil {
			zap.S().Warnw("skipping corrupt record",
				"key", k,
				"error", err,
			)
			continue
		}
		out = append(out, rec)
	}
	return out, nil
}

// GetByPatientID returns the subset of GetAll referencing patientID
func (r *Repository[T, PT]) GetByPatientID(ctx context.Context, patientID string) ([]PT, error) {
	all, err := r.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]PT, 0, len(all))
	for _, rec := range all {
		if rec.GetPatientID() == patientID {
			out = append(out, rec)
		}
	}
	return out, nil
}

// Delete removes the record under id; deleting a missing record is a
// no-op
func (r *Repository[T, PT]) Delete(ctx context.Context, id string) error {
	return r.kv.Delete(ctx, r.key(id))
}
