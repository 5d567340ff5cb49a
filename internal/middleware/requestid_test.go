package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
)

func TestRequestIDGeneratesUUIDv4(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)

	var captured string
	h := RequestID()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		captured = chimiddleware.GetReqID(r.Context())
	}))

	h.ServeHTTP(rec, req)

	if captured == "" {
		t.Fatalf("expected generated request ID")
	}
	if header := rec.Header().Get(chimiddleware.RequestIDHeader); header != captured {
		t.Fatalf("expected response header %q, got %q", captured, header)
	}
	parsed, err := uuid.Parse(captured)
	if err != nil {
		t.Fatalf("request ID %q is not a valid UUID: %v", captured, err)
	}
	if parsed.Version() != 4 {
		t.Fatalf("expected UUIDv4, got version %d", parsed.Version())
	}
}

func TestRequestIDPreservesIncomingHeader(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(chimiddleware.RequestIDHeader, "external-id")

	var captured string
	h := RequestID()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		captured = chimiddleware.GetReqID(r.Context())
	}))

	h.ServeHTTP(rec, req)

	if captured != "external-id" {
		t.Fatalf("expected request ID to remain external-id, got %q", captured)
	}
	if header := rec.Header().Get(chimiddleware.RequestIDHeader); header != "external-id" {
		t.Fatalf("expected header external-id, got %q", header)
	}
}

func TestRequestIDRejectsInvalidHeaders(t *testing.T) {
	tests := []struct {
		name    string
		inputID string
		wantNew bool
	}{
		{
			name:    "empty string generates new UUID",
			inputID: "",
			wantNew: true,
		},
		{
			name:    "valid alphanumeric is preserved",
			inputID: "abc123-XYZ",
			wantNew: false,
		},
		{
			name:    "valid UUID is preserved",
			inputID: "550e8400-e29b-41d4-a716-446655440000",
			wantNew: false,
		},
		{
			name:    "newline causes rejection (log injection)",
			inputID: "valid\ninjected-line",
			wantNew: true,
		},
		{
			name:    "carriage return causes rejection",
			inputID: "valid\rinjected",
			wantNew: true,
		},
		{
			name:    "null byte causes rejection",
			inputID: "valid\x00null",
			wantNew: true,
		},
		{
			name:    "DEL character (0x7F) causes rejection",
			inputID: "valid\x7Fdel",
			wantNew: true,
		},
		{
			name:    "too long (>128 chars) causes rejection",
			inputID: strings.Repeat("a", 129),
			wantNew: true,
		},
		{
			name:    "exactly max length (128) is preserved",
			inputID: strings.Repeat("x", 128),
			wantNew: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.inputID != "" {
				req.Header.Set(chimiddleware.RequestIDHeader, tt.inputID)
			}

			var captured string
			h := RequestID()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				captured = chimiddleware.GetReqID(r.Context())
			}))

			h.ServeHTTP(rec, req)

			if tt.wantNew {
				if captured == tt.inputID {
					t.Fatalf("expected a freshly generated ID, got the input back")
				}
				if _, err := uuid.Parse(captured); err != nil {
					t.Fatalf("replacement ID %q is not a UUID: %v", captured, err)
				}
			} else if captured != tt.inputID {
				t.Fatalf("expected input preserved, got %q", captured)
			}
		})
	}
}
