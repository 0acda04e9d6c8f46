// Package engine implements the rule-based symptom-intake core: small-talk
// interception, keyword symptom extraction, multi-turn accumulation, condition
// scoring and typed response composition. The engine itself is synchronous and
// free of I/O; latency simulation and session ownership live in the caller.
package engine

import (
	"math/rand"
	"sync"
	"time"
)

// Mode selects the scoring and composition variant.
type Mode string

const (
	// ModeBasic reports each condition's baseline confidence.
	ModeBasic Mode = "basic"
	// ModeClinical adds red-flag analysis, urgency bonuses and score-derived
	// confidence with a diagnostic trace.
	ModeClinical Mode = "clinical"
)

// DefaultDiagnosisThreshold is the minimum number of distinct accumulated
// symptoms before a diagnosis is attempted.
const DefaultDiagnosisThreshold = 2

// Options configures an Engine. Zero values select the defaults; Rand and Now
// exist so tests can pin down the presentation-layer randomness and clock.
type Options struct {
	Mode               Mode
	DiagnosisThreshold int
	Rand               *rand.Rand
	Now                func() time.Time
}

// Engine processes conversation turns against the static lexicon and
// condition tables. It holds no session state of its own: every call takes
// the session it should mutate, so independent sessions never share state.
type Engine struct {
	mode      Mode
	threshold int
	scorer    Scorer
	now       func() time.Time

	rndMu sync.Mutex
	rnd   *rand.Rand
}

// pick selects a random reply from the pool. Sessions are independent but one
// engine serves all of them, so access to the generator is serialized.
func (e *Engine) pick(pool []string) string {
	e.rndMu.Lock()
	defer e.rndMu.Unlock()
	return pool[e.rnd.Intn(len(pool))]
}

// New constructs an engine from the given options.
func New(opts Options) *Engine {
	mode := opts.Mode
	if mode == "" {
		mode = ModeBasic
	}
	threshold := opts.DiagnosisThreshold
	if threshold <= 0 {
		threshold = DefaultDiagnosisThreshold
	}
	rnd := opts.Rand
	if rnd == nil {
		rnd = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	return &Engine{
		mode:      mode,
		threshold: threshold,
		scorer:    NewScorer(mode),
		rnd:       rnd,
		now:       now,
	}
}

// Mode returns the configured scoring mode.
func (e *Engine) Mode() Mode { return e.mode }

// ProcessTurn handles one user utterance: small-talk check, extraction,
// accumulation, scoring and composition, in that order. It mutates the
// session and must not be invoked concurrently for the same session.
func (e *Engine) ProcessTurn(s *Session, utterance string) Response {
	s.History = append(s.History, utterance)

	if resp, ok := e.matchSmallTalk(utterance); ok {
		return resp
	}

	// After a diagnosis the conversation only acknowledges further input
	// until an explicit reset.
	if s.Step >= StepDiagnosed {
		return e.composeFollowUp()
	}

	detected := Detect(utterance)
	if len(detected) == 0 {
		return clarificationPrompt()
	}

	s.Merge(detected)
	analysis := Analyze(utterance, s.Symptoms)
	s.AddNote(analysis.ContextSummary)

	if len(s.Symptoms) < e.threshold {
		s.Step = StepAwaitingMoreDetail
		return e.composeAssessment(analysis)
	}

	match, ok := e.scorer.Score(s.Symptoms, analysis)
	if !ok {
		s.Step = StepAwaitingMoreDetail
		return cannotDetermine()
	}
	s.Step = StepDiagnosed
	return e.composeDiagnosis(match)
}
