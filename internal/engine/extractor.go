package engine

import "strings"

// arabicFolder collapses the common Arabic letter variants so keyword
// matching is insensitive to alef hamza forms, final yeh and teh marbuta.
var arabicFolder = strings.NewReplacer(
	"أ", "ا",
	"إ", "ا",
	"آ", "ا",
	"ى", "ي",
	"ة", "ه",
)

// Normalize lowercases, trims and folds Arabic letter variants. Both the
// utterance and the lexicon keywords go through it before comparison.
func Normalize(s string) string {
	return arabicFolder.Replace(strings.ToLower(strings.TrimSpace(s)))
}

// Detect scans the utterance against the lexicon and returns the canonical
// names of every symptom present, in table order. A symptom is present when
// any of its keywords, or its canonical name, is a substring of the
// normalized utterance. An empty result is an ordinary outcome, not an error.
func Detect(utterance string) []string {
	normalized := Normalize(utterance)
	if normalized == "" {
		return nil
	}

	var detected []string
	for _, def := range symptomTable {
		if symptomPresent(normalized, def) {
			detected = append(detected, def.Name)
		}
	}
	return detected
}

func symptomPresent(normalized string, def SymptomDefinition) bool {
	for _, kw := range def.Keywords {
		if strings.Contains(normalized, Normalize(kw)) {
			return true
		}
	}
	return strings.Contains(normalized, Normalize(def.Name))
}
