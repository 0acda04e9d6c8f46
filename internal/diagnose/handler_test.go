package diagnose

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
)

type fakeClient struct {
	reply string
	err   error
	seen  string
}

func (f *fakeClient) Diagnose(ctx context.Context, symptoms string) (string, error) {
	f.seen = symptoms
	return f.reply, f.err
}

func newTestRouter(client Client) http.Handler {
	r := chi.NewRouter()
	RegisterRoutes(r, NewHandler(client))
	return r
}

func TestHandleDiagnose_RelaysCompletion(t *testing.T) {
	client := &fakeClient{reply: "التشخيص المبدئي: نزلة برد"}
	router := newTestRouter(client)

	body := strings.NewReader(`{"symptoms": "صداع وحرارة"}`)
	req := httptest.NewRequest(http.MethodPost, "/diagnose", body)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if client.seen != "صداع وحرارة" {
		t.Errorf("Symptom text must be forwarded verbatim, got %q", client.seen)
	}

	var payload map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &payload); err != nil {
		t.Fatalf("Invalid response body: %v", err)
	}
	if payload["diagnosis"] != client.reply {
		t.Errorf("Completion must be relayed verbatim, got %q", payload["diagnosis"])
	}
}

func TestHandleDiagnose_MissingSymptoms(t *testing.T) {
	router := newTestRouter(&fakeClient{})

	for _, body := range []string{`{}`, `{"symptoms": ""}`, `not json`} {
		req := httptest.NewRequest(http.MethodPost, "/diagnose", strings.NewReader(body))
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		if rec.Code != http.StatusBadRequest {
			t.Errorf("Body %q: expected 400, got %d", body, rec.Code)
		}
		if !strings.Contains(rec.Body.String(), "Symptoms are required.") {
			t.Errorf("Body %q: unexpected error message %q", body, rec.Body.String())
		}
	}
}

func TestHandleDiagnose_UpstreamFailure(t *testing.T) {
	client := &fakeClient{err: errors.New("rate limited")}
	router := newTestRouter(client)

	req := httptest.NewRequest(http.MethodPost, "/diagnose", strings.NewReader(`{"symptoms": "صداع"}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("Expected 500, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Internal Server Error") {
		t.Errorf("Upstream detail must not leak, got %q", rec.Body.String())
	}
	if strings.Contains(rec.Body.String(), "rate limited") {
		t.Error("Upstream error text leaked to the client")
	}
}

func TestHandleDiagnose_MethodNotAllowed(t *testing.T) {
	router := newTestRouter(&fakeClient{})

	req := httptest.NewRequest(http.MethodGet, "/diagnose", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusMethodNotAllowed {
		t.Errorf("Expected 405, got %d", rec.Code)
	}
}
