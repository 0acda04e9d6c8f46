package engine

// Severity classifies both a condition's priority tier and the urgency tier
// computed for a turn. Values are the Arabic labels that go out on the wire.
type Severity string

const (
	SeverityLow    Severity = "منخفض"
	SeverityMedium Severity = "متوسط"
	SeverityHigh   Severity = "عالي"
	SeverityUrgent Severity = "عاجل"
)

// MessageType tags an engine reply so the caller can render it appropriately.
type MessageType string

const (
	MessageNormal    MessageType = "normal"
	MessageQuestion  MessageType = "question"
	MessageAnalysis  MessageType = "analysis"
	MessageDiagnosis MessageType = "diagnosis"
)

// Diagnosis is the structured payload attached to a diagnosis reply.
type Diagnosis struct {
	Condition             string   `json:"condition"`
	Confidence            int      `json:"confidence"`
	Severity              Severity `json:"severity"`
	Specialty             string   `json:"specialty"`
	Recommendations       []string `json:"recommendations"`
	Investigations        []string `json:"investigations,omitempty"`
	DifferentialDiagnosis []string `json:"differential_diagnosis,omitempty"`
	RedFlags              []string `json:"red_flags,omitempty"`
}

// Response is what the engine returns for one user turn.
type Response struct {
	Text      string      `json:"text"`
	Type      MessageType `json:"type"`
	Diagnosis *Diagnosis  `json:"diagnosis,omitempty"`
}

// ClinicalAnalysis is the analyzer's view of a single turn: the accumulated
// symptoms, the body systems they touch, the averaged severity score (1-5),
// the resulting urgency tier and any red flags matched in the utterance.
type ClinicalAnalysis struct {
	Symptoms          []string
	BodySystems       []string
	SeverityScore     float64
	Urgency           Severity
	RedFlags          []string
	ClinicalQuestions []string
	ContextSummary    string
}

// Match is the scorer's verdict: the winning condition, a bounded confidence
// percentage and a trace of the scoring decisions that produced it.
type Match struct {
	Condition  *ConditionDefinition
	Confidence int
	Trace      []string
}
