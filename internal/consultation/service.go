package consultation

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/google/uuid"

	"tabeeb-ai-agent/internal/engine"
)

// ReportService defines what the consultation service needs from reporting.
// We declare it here to stay decoupled from the report implementation.
type ReportService interface {
	Render(snap Snapshot) ([]byte, error)
	SendUrgentAlert(ctx context.Context, snap Snapshot) error
}

type Service interface {
	CreateConsultation(ctx context.Context) (*Consultation, error)
	ProcessMessage(ctx context.Context, id uuid.UUID, text string) (engine.Response, error)
	Reset(ctx context.Context, id uuid.UUID) error
	BuildReport(ctx context.Context, id uuid.UUID) ([]byte, error)
}

type service struct {
	store     *Store
	eng       *engine.Engine
	delayer   Delayer
	reportSvc ReportService
}

// NewService wires the engine, the in-memory store, the latency simulator and
// the optional report service (nil disables reporting and escalation).
func NewService(store *Store, eng *engine.Engine, delayer Delayer, reportSvc ReportService) Service {
	return &service{
		store:     store,
		eng:       eng,
		delayer:   delayer,
		reportSvc: reportSvc,
	}
}

func (s *service) CreateConsultation(ctx context.Context) (*Consultation, error) {
	return s.store.Create(), nil
}

// ProcessMessage runs one full turn: simulated latency, then the engine
// pipeline. The turn lock serializes turns per consultation, and the delay
// runs before any session mutation so a cancelled call leaves no partial
// state behind.
func (s *service) ProcessMessage(ctx context.Context, id uuid.UUID, text string) (engine.Response, error) {
	c, err := s.store.Get(id)
	if err != nil {
		return engine.Response{}, err
	}

	c.turnMu.Lock()
	defer c.turnMu.Unlock()

	if err := s.delayer.Wait(ctx); err != nil {
		return engine.Response{}, err
	}

	resp := s.eng.ProcessTurn(c.Session, text)
	c.UpdatedAt = time.Now()

	if resp.Diagnosis != nil {
		c.Diagnosis = resp.Diagnosis
		if resp.Diagnosis.Severity == engine.SeverityUrgent && s.reportSvc != nil {
			snap := c.Snapshot()
			go func() {
				if err := s.reportSvc.SendUrgentAlert(context.Background(), snap); err != nil {
					log.Printf("urgent alert for consultation %s failed: %v", snap.ID, err)
				}
			}()
		}
	}

	return resp, nil
}

// Reset wipes the conversation back to its initial state. It is idempotent:
// resetting an already-fresh consultation is a no-op.
func (s *service) Reset(ctx context.Context, id uuid.UUID) error {
	c, err := s.store.Get(id)
	if err != nil {
		return err
	}

	c.turnMu.Lock()
	defer c.turnMu.Unlock()

	c.Session.Reset()
	c.Diagnosis = nil
	c.UpdatedAt = time.Now()
	return nil
}

func (s *service) BuildReport(ctx context.Context, id uuid.UUID) ([]byte, error) {
	if s.reportSvc == nil {
		return nil, errors.New("reporting is not configured")
	}
	c, err := s.store.Get(id)
	if err != nil {
		return nil, err
	}

	c.turnMu.Lock()
	snap := c.Snapshot()
	c.turnMu.Unlock()

	return s.reportSvc.Render(snap)
}
