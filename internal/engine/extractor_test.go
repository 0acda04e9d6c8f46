package engine

import (
	"reflect"
	"testing"
)

func TestDetect_SingleSymptom(t *testing.T) {
	detected := Detect("عندي صداع شديد")

	if !reflect.DeepEqual(detected, []string{"صداع"}) {
		t.Errorf("Expected [صداع], got %v", detected)
	}
}

func TestDetect_KeywordVariant(t *testing.T) {
	// "وجع راس" is a keyword of صداع, not its canonical name.
	detected := Detect("عندي وجع راس من امبارح")

	if len(detected) != 1 || detected[0] != "صداع" {
		t.Errorf("Expected [صداع], got %v", detected)
	}
}

func TestDetect_LetterFolding(t *testing.T) {
	// The keyword is "رأس" with hamza; the utterance spells it without.
	detected := Detect("راسي بيوجعني")

	found := false
	for _, s := range detected {
		if s == "صداع" {
			found = true
		}
	}
	if !found {
		t.Errorf("Expected folding to match راس against رأس, got %v", detected)
	}
}

func TestDetect_MultipleSymptomsOneTurn(t *testing.T) {
	detected := Detect("عندي ألم صدر مع ضيق تنفس")

	want := []string{"ألم صدر", "ضيق تنفس"}
	if !reflect.DeepEqual(detected, want) {
		t.Errorf("Expected %v, got %v", want, detected)
	}
}

func TestDetect_NoMedicalContent(t *testing.T) {
	if detected := Detect("أريد حجز موعد الأسبوع القادم"); len(detected) != 0 {
		t.Errorf("Expected empty set, got %v", detected)
	}
}

func TestDetect_EmptyUtterance(t *testing.T) {
	if detected := Detect(""); len(detected) != 0 {
		t.Errorf("Expected empty set for empty utterance, got %v", detected)
	}
	if detected := Detect("   "); len(detected) != 0 {
		t.Errorf("Expected empty set for whitespace utterance, got %v", detected)
	}
}

func TestDetect_TableOrderIsDeterministic(t *testing.T) {
	first := Detect("حمى وسعال وصداع")
	second := Detect("حمى وسعال وصداع")

	if !reflect.DeepEqual(first, second) {
		t.Fatalf("Non-deterministic detection: %v vs %v", first, second)
	}
	// Results follow lexicon table order, not utterance order.
	want := []string{"صداع", "حمى", "سعال"}
	if !reflect.DeepEqual(first, want) {
		t.Errorf("Expected table order %v, got %v", want, first)
	}
}

func TestNormalize(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"أإآ", "ااا"},
		{"حمى", "حمي"},
		{"ةه", "هه"},
		{"  Hello  ", "hello"},
	}
	for _, c := range cases {
		if got := Normalize(c.in); got != c.want {
			t.Errorf("Normalize(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}
