package engine

import "fmt"

// Scorer ranks the condition table against the accumulated symptoms. The two
// implementations keep the ranking policy of the two historical engine
// variants behind one interface, selected by configuration.
//
// Both iterate the table in definition order and keep the first condition
// that reaches the highest score: the tie-break is an explicit policy, not an
// accident of iteration.
type Scorer interface {
	Score(accumulated []string, analysis ClinicalAnalysis) (Match, bool)
}

const (
	basicConfidenceCap    = 95
	clinicalConfidenceCap = 94
)

// NewScorer selects the scorer for the given mode.
func NewScorer(mode Mode) Scorer {
	if mode == ModeClinical {
		return &ClinicalScorer{}
	}
	return &BasicScorer{}
}

// BasicScorer selects by symptom-match ratio with flat severity bonuses and
// reports the matched condition's baseline confidence, capped so the system
// never claims near-certainty.
type BasicScorer struct{}

func (s *BasicScorer) Score(accumulated []string, analysis ClinicalAnalysis) (Match, bool) {
	if len(accumulated) == 0 {
		return Match{}, false
	}

	var best *ConditionDefinition
	bestScore := 0.0

	for i := range conditionTable {
		cond := &conditionTable[i]
		score := matchRatio(cond, accumulated) * 100
		if analysis.SeverityScore >= 4 && cond.Severity == SeverityUrgent {
			score += 20
		}
		if analysis.SeverityScore >= 3 && cond.Severity == SeverityHigh {
			score += 15
		}
		if score > bestScore {
			bestScore = score
			best = cond
		}
	}

	if best == nil {
		return Match{}, false
	}
	confidence := best.Confidence
	if confidence > basicConfidenceCap {
		confidence = basicConfidenceCap
	}
	return Match{
		Condition:  best,
		Confidence: confidence,
		Trace:      []string{fmt.Sprintf("تطابق الأعراض: %d%%", int(matchRatio(best, accumulated)*100+0.5))},
	}, true
}

// ClinicalScorer reports the computed score itself as the confidence, with
// bonuses for urgency-tier agreement and red-flag presence, and records a
// trace of every scoring decision.
type ClinicalScorer struct{}

func (s *ClinicalScorer) Score(accumulated []string, analysis ClinicalAnalysis) (Match, bool) {
	if len(accumulated) == 0 {
		return Match{}, false
	}

	var best *ConditionDefinition
	bestScore := 0.0
	var bestTrace []string

	for i := range conditionTable {
		cond := &conditionTable[i]
		ratio := matchRatio(cond, accumulated)
		score := ratio * 100
		trace := []string{fmt.Sprintf("تطابق الأعراض: %d%%", int(ratio*100+0.5))}

		if analysis.Urgency == cond.Severity {
			score += 25
			trace = append(trace, "تطابق مستوى الخطورة")
		}
		if len(analysis.RedFlags) > 0 && cond.Severity == SeverityUrgent {
			score += 30
			trace = append(trace, "وجود علامات إنذار")
		}

		if score > bestScore {
			bestScore = score
			best = cond
			bestTrace = trace
		}
	}

	if best == nil {
		return Match{}, false
	}
	confidence := int(bestScore + 0.5)
	if confidence > clinicalConfidenceCap {
		confidence = clinicalConfidenceCap
	}
	if confidence < 0 {
		confidence = 0
	}
	return Match{Condition: best, Confidence: confidence, Trace: bestTrace}, true
}

func matchRatio(cond *ConditionDefinition, accumulated []string) float64 {
	if len(cond.Symptoms) == 0 {
		return 0
	}
	present := make(map[string]struct{}, len(accumulated))
	for _, s := range accumulated {
		present[s] = struct{}{}
	}
	matched := 0
	for _, required := range cond.Symptoms {
		if _, ok := present[required]; ok {
			matched++
		}
	}
	return float64(matched) / float64(len(cond.Symptoms))
}
