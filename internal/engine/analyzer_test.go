package engine

import (
	"strings"
	"testing"
)

func TestAnalyze_EmptySymptoms(t *testing.T) {
	analysis := Analyze("كلام عام", nil)

	if analysis.SeverityScore != 1 {
		t.Errorf("Expected default severity 1, got %f", analysis.SeverityScore)
	}
	if analysis.Urgency != SeverityLow {
		t.Errorf("Expected low urgency, got %s", analysis.Urgency)
	}
	if len(analysis.RedFlags) != 0 {
		t.Errorf("Expected no red flags, got %v", analysis.RedFlags)
	}
	if !strings.Contains(analysis.ContextSummary, "لا يحتوي") {
		t.Errorf("Expected the no-symptom context summary, got %q", analysis.ContextSummary)
	}
}

func TestAnalyze_SeverityIsAveraged(t *testing.T) {
	// صداع weighs 2 and حمى weighs 3.
	analysis := Analyze("عندي صداع وحمى", []string{"صداع", "حمى"})

	if analysis.SeverityScore != 2.5 {
		t.Errorf("Expected averaged severity 2.5, got %f", analysis.SeverityScore)
	}
	if analysis.Urgency != SeverityLow {
		t.Errorf("Expected low urgency below 3, got %s", analysis.Urgency)
	}
}

func TestAnalyze_BodySystemsDeduplicated(t *testing.T) {
	// ألم صدر and ضيق تنفس both touch the respiratory and cardiac systems.
	analysis := Analyze("تعبان", []string{"ألم صدر", "ضيق تنفس"})

	seen := map[string]int{}
	for _, sys := range analysis.BodySystems {
		seen[sys]++
	}
	for sys, n := range seen {
		if n > 1 {
			t.Errorf("Body system %q appears %d times", sys, n)
		}
	}
}

func TestAnalyze_QuestionsCappedAtFive(t *testing.T) {
	analysis := Analyze("تعبان", []string{"ألم صدر", "ضيق تنفس", "صداع"})

	if len(analysis.ClinicalQuestions) != maxClinicalQuestions {
		t.Fatalf("Expected %d questions, got %d", maxClinicalQuestions, len(analysis.ClinicalQuestions))
	}
	// First-seen order is preserved: the cap keeps ألم صدر's questions.
	chestDef, _ := symptomByName("ألم صدر")
	for i, q := range analysis.ClinicalQuestions {
		if q != chestDef.ClinicalQuestions[i] {
			t.Errorf("Question %d = %q, want %q", i, q, chestDef.ClinicalQuestions[i])
		}
	}
}

func TestAnalyze_RedFlagWordLevelMatch(t *testing.T) {
	// The flag "ألم صدر مع ضيق تنفس" fires on any constituent word; a plain
	// chest-pain mention contains "ألم" and "صدر". This recall-over-precision
	// policy is deliberate.
	analysis := Analyze("عندي ألم في الصدر", []string{"ألم صدر"})

	if len(analysis.RedFlags) == 0 {
		t.Fatal("Expected word-level red-flag match to fire")
	}
	if analysis.Urgency != SeverityUrgent {
		t.Errorf("Any red flag must force urgent, got %s", analysis.Urgency)
	}
	if !strings.Contains(analysis.ContextSummary, "علامة تحذيرية") {
		t.Errorf("Context summary should mention red flags, got %q", analysis.ContextSummary)
	}
}

func TestAnalyze_RedFlagsOnlyFromDetectedSymptoms(t *testing.T) {
	// The utterance mentions vision trouble (a صداع red-flag word), but صداع
	// itself was not detected, so its flags are never consulted.
	analysis := Analyze("عندي مشكلة في الرؤية", []string{"حمى"})

	if len(analysis.RedFlags) != 0 {
		t.Errorf("Expected no red flags without the owning symptom, got %v", analysis.RedFlags)
	}
}

func TestAnalyze_UrgencyTiers(t *testing.T) {
	// حمى alone averages 3.0 → medium.
	analysis := Analyze("سخونة", []string{"حمى"})
	if analysis.Urgency != SeverityMedium {
		t.Errorf("Expected medium at 3.0, got %s", analysis.Urgency)
	}

	// ضيق تنفس alone averages 4.0 → high (utterance carries none of its
	// red-flag words).
	analysis = Analyze("مش قادر اخد نفسي", []string{"ضيق تنفس"})
	if analysis.Urgency != SeverityHigh && analysis.Urgency != SeverityUrgent {
		t.Errorf("Expected at least high at 4.0, got %s", analysis.Urgency)
	}
}
