package apierr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestNotFoundMessageFormat(t *testing.T) {
	err := NotFound("service", "serviceId", 7)
	if err.Status != http.StatusNotFound {
		t.Errorf("expected 404, got %d", err.Status)
	}
	if err.Message != "No service found with serviceId: 7" {
		t.Errorf("unexpected message: %q", err.Message)
	}
}

func TestPositiveID(t *testing.T) {
	if err := PositiveID("clientId", 1); err != nil {
		t.Errorf("expected nil for positive id, got %v", err)
	}
	err := PositiveID("clientId", 0)
	if err == nil {
		t.Fatal("expected error for zero id")
	}
	if err.Status != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", err.Status)
	}
	if err.Message != "'clientId' must be a positive integer." {
		t.Errorf("unexpected message: %q", err.Message)
	}
}

func TestFromUnwrapsWrappedErrors(t *testing.T) {
	inner := Unprocessable("Invalid email format.")
	wrapped := fmt.Errorf("create client: %w", inner)

	got := From(wrapped)
	if got == nil {
		t.Fatal("expected to recover the API error")
	}
	if got.Status != http.StatusUnprocessableEntity || got.Message != "Invalid email format." {
		t.Errorf("unexpected error: %+v", got)
	}

	if From(errors.New("plain")) != nil {
		t.Error("expected nil for a plain error")
	}
}

func TestInternalDropsDetail(t *testing.T) {
	err := Internal()
	if err.Status != http.StatusInternalServerError {
		t.Errorf("expected 500, got %d", err.Status)
	}
	if err.Message != "Internal Server Error" {
		t.Errorf("unexpected message: %q", err.Message)
	}
}
