package report

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/uuid"

	"tabeeb-ai-agent/internal/consultation"
	"tabeeb-ai-agent/internal/engine"
)

type fakeTelegram struct {
	messages  []string
	documents []string
	chatIDs   []int64
	sendErr   error
}

func (f *fakeTelegram) SendMessage(chatID int64, text string) error {
	f.chatIDs = append(f.chatIDs, chatID)
	f.messages = append(f.messages, text)
	return f.sendErr
}

func (f *fakeTelegram) SendDocument(chatID int64, fileData []byte, fileName string) error {
	f.documents = append(f.documents, fileName)
	return nil
}

func urgentSnapshot() consultation.Snapshot {
	return consultation.Snapshot{
		ID:       uuid.New(),
		History:  []string{"عندي ألم صدر شديد مع ضيق تنفس"},
		Symptoms: []string{"ألم صدر", "ضيق تنفس"},
		Step:     engine.StepDiagnosed,
		Diagnosis: &engine.Diagnosis{
			Condition:  "مشاكل قلبية",
			Confidence: 92,
			Severity:   engine.SeverityUrgent,
			Specialty:  "طب القلب - طوارئ",
		},
	}
}

func TestSendUrgentAlert(t *testing.T) {
	tg := &fakeTelegram{}
	svc := NewService(tg, 42)
	snap := urgentSnapshot()

	if err := svc.SendUrgentAlert(context.Background(), snap); err != nil {
		t.Fatalf("SendUrgentAlert failed: %v", err)
	}

	if len(tg.messages) != 1 {
		t.Fatalf("Expected one alert message, got %d", len(tg.messages))
	}
	if tg.chatIDs[0] != 42 {
		t.Errorf("Alert sent to wrong chat %d", tg.chatIDs[0])
	}
	msg := tg.messages[0]
	if !strings.Contains(msg, "مشاكل قلبية") {
		t.Errorf("Alert must name the condition, got %q", msg)
	}
	if !strings.Contains(msg, "ألم صدر") || !strings.Contains(msg, "ضيق تنفس") {
		t.Errorf("Alert must list the symptoms, got %q", msg)
	}
}

func TestSendUrgentAlert_MessageFailure(t *testing.T) {
	tg := &fakeTelegram{sendErr: errors.New("telegram down")}
	svc := NewService(tg, 42)

	if err := svc.SendUrgentAlert(context.Background(), urgentSnapshot()); err == nil {
		t.Error("A failed text alert must surface an error")
	}
	if len(tg.documents) != 0 {
		t.Error("No document may be sent after the text alert failed")
	}
}
