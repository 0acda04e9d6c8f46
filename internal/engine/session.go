package engine

// Conversation steps. The counter advances on processed turns and saturates
// at StepDiagnosed until an explicit reset.
const (
	StepAwaitingFirstSymptom = 1
	StepAwaitingMoreDetail   = 2
	StepDiagnosed            = 3
)

// Session holds everything the engine accumulates for one conversation:
// the raw utterance history, the running union of detected symptoms, the
// step counter and a free-text clinical notes log. It lives only in memory
// and is owned by exactly one conversation at a time.
type Session struct {
	History  []string
	Symptoms []string
	Step     int
	Notes    []string
}

// NewSession returns a session in the initial state.
func NewSession() *Session {
	return &Session{Step: StepAwaitingFirstSymptom}
}

// Merge unions the detected symptoms into the accumulated set, preserving
// first-seen order. The set only ever grows until Reset.
func (s *Session) Merge(detected []string) {
	for _, name := range detected {
		if !s.Has(name) {
			s.Symptoms = append(s.Symptoms, name)
		}
	}
}

// Has reports whether the symptom is already accumulated.
func (s *Session) Has(name string) bool {
	for _, existing := range s.Symptoms {
		if existing == name {
			return true
		}
	}
	return false
}

// AddNote appends to the clinical notes log.
func (s *Session) AddNote(note string) {
	s.Notes = append(s.Notes, note)
}

// Reset wipes the session back to the exact initial state. It is idempotent
// and never fails.
func (s *Session) Reset() {
	s.History = nil
	s.Symptoms = nil
	s.Step = StepAwaitingFirstSymptom
	s.Notes = nil
}
