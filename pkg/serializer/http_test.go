package serializer

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/NVIDIA/datacontract/pkg/validator"
)

func failedReport() *validator.Report {
	row := 1
	r := validator.NewReport()
	r.Init(validator.Kind, validator.APIVersion, "test")
	r.Contract = "users"
	r.Violations = []validator.Violation{
		{
			Column:   "age",
			Kind:     validator.ViolationAboveMax,
			Row:      &row,
			Value:    "999",
			Expected: "150",
		},
	}
	r.Summary.Fields = 1
	r.Summary.Rows = 2
	r.Summary.Violations = 1
	r.Summary.Status = validator.StatusFail
	return r
}

func TestRespondJSON_Report(t *testing.T) {
	w := httptest.NewRecorder()

	RespondJSON(w, http.StatusOK, failedReport())

	if w.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, w.Code)
	}
	if ct := w.Header().Get("Content-Type"); ct != "application/json" {
		t.Fatalf("expected Content-Type application/json, got %s", ct)
	}

	var got validator.Report
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("failed to unmarshal report: %v", err)
	}

	if got.Header.Kind != validator.Kind {
		t.Errorf("Kind = %q, want %q", got.Header.Kind, validator.Kind)
	}
	if got.Contract != "users" {
		t.Errorf("Contract = %q, want users", got.Contract)
	}
	if got.Summary.Status != validator.StatusFail {
		t.Errorf("Status = %q, want fail", got.Summary.Status)
	}
	if len(got.Violations) != 1 {
		t.Fatalf("expected 1 violation, got %d", len(got.Violations))
	}

	// The violation survives the round trip intact, row locator included
	want := "Column 'age' above max 150 (row 1, value=999)."
	if msg := got.Violations[0].Message(); msg != want {
		t.Errorf("Message() = %q, want %q", msg, want)
	}
}

func TestRespondJSON_StatusPassesThrough(t *testing.T) {
	tests := []struct {
		name       string
		statusCode int
	}{
		{"report accepted", http.StatusOK},
		{"bad contract", http.StatusBadRequest},
		{"rate limited", http.StatusTooManyRequests},
		{"internal failure", http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()

			RespondJSON(w, tt.statusCode, failedReport())

			if w.Code != tt.statusCode {
				t.Errorf("expected status %d, got %d", tt.statusCode, w.Code)
			}
		})
	}
}

func TestRespondJSON_EncodingErrorBecomesInternalError(t *testing.T) {
	w := httptest.NewRecorder()

	// Channels cannot be marshaled; the encode failure must surface as a 500
	// rather than a 200 with a broken body, which is why RespondJSON buffers
	// the payload before writing headers.
	unencodable := map[string]any{"results": make(chan int)}

	RespondJSON(w, http.StatusOK, unencodable)

	if w.Code != http.StatusInternalServerError {
		t.Errorf("expected status %d for encoding error, got %d", http.StatusInternalServerError, w.Code)
	}
	if w.Body.Len() == 0 {
		t.Error("expected error message in body")
	}
}

func TestRespondJSON_NilPayload(t *testing.T) {
	w := httptest.NewRecorder()

	RespondJSON(w, http.StatusOK, nil)

	if w.Code != http.StatusOK {
		t.Errorf("expected status %d, got %d", http.StatusOK, w.Code)
	}
	if body := w.Body.String(); body != "null\n" {
		t.Errorf("expected 'null\\n', got %q", body)
	}
}
