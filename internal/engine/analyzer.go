package engine

import (
	"fmt"
	"strings"
)

const maxClinicalQuestions = 5

// Analyze folds the lexicon metadata of the given symptoms into a clinical
// picture of the turn. Red flags are matched against the utterance at word
// level: a flag fires when any of its constituent words appears in the
// normalized text. That favors recall over precision on purpose — missing a
// red flag costs more than a false positive.
func Analyze(utterance string, symptoms []string) ClinicalAnalysis {
	normalized := Normalize(utterance)

	var (
		systems   []string
		questions []string
		redFlags  []string
	)
	urgencySum := 0

	for _, name := range symptoms {
		def, ok := symptomByName(name)
		if !ok {
			continue
		}
		systems = append(systems, def.BodySystems...)
		questions = append(questions, def.ClinicalQuestions...)
		urgencySum += def.UrgencyWeight

		for _, flag := range def.RedFlags {
			if flagWordPresent(normalized, flag) {
				redFlags = append(redFlags, flag)
			}
		}
	}

	score := 1.0
	if len(symptoms) > 0 {
		score = float64(urgencySum) / float64(len(symptoms))
	}

	urgency := SeverityLow
	switch {
	case len(redFlags) > 0:
		urgency = SeverityUrgent
	case score >= 4:
		urgency = SeverityHigh
	case score >= 3:
		urgency = SeverityMedium
	}

	questions = dedupe(questions)
	if len(questions) > maxClinicalQuestions {
		questions = questions[:maxClinicalQuestions]
	}

	return ClinicalAnalysis{
		Symptoms:          symptoms,
		BodySystems:       dedupe(systems),
		SeverityScore:     score,
		Urgency:           urgency,
		RedFlags:          redFlags,
		ClinicalQuestions: questions,
		ContextSummary:    buildContextSummary(symptoms, urgency, redFlags),
	}
}

func flagWordPresent(normalized, flag string) bool {
	for _, word := range strings.Fields(Normalize(flag)) {
		if strings.Contains(normalized, word) {
			return true
		}
	}
	return false
}

func buildContextSummary(symptoms []string, urgency Severity, redFlags []string) string {
	summary := "التقييم السريري: "
	switch len(symptoms) {
	case 0:
		summary += "الوصف المقدم لا يحتوي على أعراض محددة تسمح بتقييم طبي دقيق"
	case 1:
		summary += "عرض أحادي يتطلب استكشاف الأسباب المحتملة والأعراض المصاحبة"
	default:
		summary += fmt.Sprintf("مجموعة أعراض (%d) تشكل نمطاً سريرياً يحتاج تقييماً شاملاً", len(symptoms))
	}
	if len(redFlags) > 0 {
		summary += fmt.Sprintf(" مع وجود %d علامة تحذيرية", len(redFlags))
	}
	if urgency == SeverityUrgent {
		summary += " - يستدعي التدخل الطبي العاجل"
	}
	return summary
}

// dedupe removes duplicates preserving first-seen order.
func dedupe(items []string) []string {
	if len(items) == 0 {
		return items
	}
	seen := make(map[string]struct{}, len(items))
	out := items[:0]
	for _, item := range items {
		if _, ok := seen[item]; ok {
			continue
		}
		seen[item] = struct{}{}
		out = append(out, item)
	}
	return out
}
