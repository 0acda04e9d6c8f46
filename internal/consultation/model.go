package consultation

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"tabeeb-ai-agent/internal/engine"
)

// Consultation is the aggregate owning one conversation's in-memory state.
// The turn mutex serializes processing: one utterance is fully handled before
// the next is accepted for the same consultation.
type Consultation struct {
	ID        uuid.UUID
	Session   *engine.Session
	Diagnosis *engine.Diagnosis
	CreatedAt time.Time
	UpdatedAt time.Time

	turnMu sync.Mutex
}

// Snapshot is an immutable copy of a consultation handed to reporting so the
// report never races a turn in flight.
type Snapshot struct {
	ID        uuid.UUID
	CreatedAt time.Time
	UpdatedAt time.Time
	History   []string
	Symptoms  []string
	Step      int
	Notes     []string
	Diagnosis *engine.Diagnosis
}

// Snapshot copies the consultation state. Callers must hold the turn lock.
func (c *Consultation) Snapshot() Snapshot {
	snap := Snapshot{
		ID:        c.ID,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
		History:   append([]string(nil), c.Session.History...),
		Symptoms:  append([]string(nil), c.Session.Symptoms...),
		Step:      c.Session.Step,
		Notes:     append([]string(nil), c.Session.Notes...),
	}
	if c.Diagnosis != nil {
		d := *c.Diagnosis
		snap.Diagnosis = &d
	}
	return snap
}

// Wire types for the HTTP handlers.

type ChatRequest struct {
	ConsultationID string `json:"consultation_id"`
	Text           string `json:"text"`
}

type ResetRequest struct {
	ConsultationID string `json:"consultation_id"`
}
