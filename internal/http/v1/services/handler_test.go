package services

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"

	"github.com/servease/servease/internal/domain"
	appmiddleware "github.com/servease/servease/internal/middleware"
	"github.com/servease/servease/internal/respond"
	servicesvc "github.com/servease/servease/internal/service/services"
)

func newTestRouter() (chi.Router, *servicesvc.InMemory) {
	respond.Install()
	router := chi.NewRouter()
	router.Use(
		appmiddleware.RequestID(),
		appmiddleware.RequestLogger(),
		respond.Recoverer(),
	)
	api := humachi.New(router, huma.DefaultConfig("ServicesTest", "test"))
	svc := servicesvc.NewInMemory()
	Register(api, svc)
	return router, svc
}

func seedPlumber(svc *servicesvc.InMemory) {
	svc.Seed(domain.Service{
		ServiceID:   1,
		UserType:    servicesvc.UserType,
		ServiceType: "Plumbing",
		Description: "Expert plumbing services.",
		City:        "Los Angeles",
		Address:     "456 Elm Street",
		Country:     "USA",
		PostalCode:  "90001",
		Email:       "plumbing.services@example.com",
		Phone:       "9876543210",
		Rating:      4.5,
		ServiceImg:  "binaryImageData",
		AvailableTimeSlots: []domain.TimeSlot{
			{Availability: true, Date: "2023-12-01", StartingTime: "09:00:00"},
		},
	})
}

func doJSON(t *testing.T, router chi.Router, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	return resp
}

func errorMessage(t *testing.T, resp *httptest.ResponseRecorder) string {
	t.Helper()
	var body struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(resp.Body.Bytes(), &body); err != nil {
		t.Fatalf("json unmarshal %q: %v", resp.Body.String(), err)
	}
	return body.Message
}

const validServiceBody = `{
	"userType": "service",
	"serviceType": "Plumbing",
	"description": "Expert plumbing services.",
	"city": "Los Angeles",
	"address": "456 Elm Street",
	"country": "USA",
	"postalCode": "90001",
	"email": "plumbing.services@example.com",
	"phone": "9876543210",
	"rating": 4.5,
	"serviceImg": "binaryImageData",
	"availableTimeSlots": [
		{"availability": true, "date": "2023-12-01", "startingTime": "09:00:00"}
	]
}`

func TestCreateServiceSuccess(t *testing.T) {
	router, _ := newTestRouter()
	resp := doJSON(t, router, http.MethodPost, "/services", validServiceBody)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", resp.Code, resp.Body.String())
	}
	var created Service
	if err := json.Unmarshal(resp.Body.Bytes(), &created); err != nil {
		t.Fatalf("json unmarshal: %v", err)
	}
	if created.ServiceID <= 0 {
		t.Errorf("expected positive serviceId, got %d", created.ServiceID)
	}
	if created.Rating != 4.5 {
		t.Errorf("expected rating 4.5, got %v", created.Rating)
	}
	if len(created.AvailableTimeSlots) != 1 {
		t.Errorf("expected one time slot, got %+v", created.AvailableTimeSlots)
	}
}

func TestCreateServiceMissingFields(t *testing.T) {
	router, _ := newTestRouter()
	resp := doJSON(t, router, http.MethodPost, "/services",
		`{"userType":"service","serviceType":"Plumbing"}`)

	if resp.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d: %s", resp.Code, resp.Body.String())
	}
	want := "Missing required fields: description, city, address, country, postalCode, email, phone, rating, serviceImg, availableTimeSlots"
	if msg := errorMessage(t, resp); msg != want {
		t.Errorf("unexpected message: %q", msg)
	}
}

func TestSearchServicesNoMatchIs204(t *testing.T) {
	router, svc := newTestRouter()
	seedPlumber(svc)

	resp := doJSON(t, router, http.MethodGet, "/services?search=gardening", "")
	if resp.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d: %s", resp.Code, resp.Body.String())
	}
	if resp.Body.Len() != 0 {
		t.Fatalf("expected no body with 204, got %q", resp.Body.String())
	}
}

func TestSearchServicesMatch(t *testing.T) {
	router, svc := newTestRouter()
	seedPlumber(svc)

	resp := doJSON(t, router, http.MethodGet, "/services?search=PLUMB", "")
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", resp.Code, resp.Body.String())
	}
	var results []Service
	if err := json.Unmarshal(resp.Body.Bytes(), &results); err != nil {
		t.Fatalf("json unmarshal: %v", err)
	}
	if len(results) != 1 || results[0].ServiceID != 1 {
		t.Errorf("expected only the plumbing service, got %+v", results)
	}
}

func TestSearchServicesInvalidRatingFilter(t *testing.T) {
	router, svc := newTestRouter()
	seedPlumber(svc)

	resp := doJSON(t, router, http.MethodGet, "/services?ratingFilter=7", "")
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", resp.Code, resp.Body.String())
	}
	if msg := errorMessage(t, resp); msg != "Invalid 'ratingFilter'. It must be a number between 1 and 5." {
		t.Errorf("unexpected message: %q", msg)
	}
}

func TestSearchServicesNonNumericRatingFilter(t *testing.T) {
	router, svc := newTestRouter()
	seedPlumber(svc)

	resp := doJSON(t, router, http.MethodGet, "/services?ratingFilter=high", "")
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", resp.Code, resp.Body.String())
	}
	if msg := errorMessage(t, resp); msg != "Invalid 'ratingFilter'. It must be a number between 1 and 5." {
		t.Errorf("unexpected message: %q", msg)
	}
}

func TestSearchServicesRatingFilterKeepsAtLeast(t *testing.T) {
	router, svc := newTestRouter()
	seedPlumber(svc)

	resp := doJSON(t, router, http.MethodGet, "/services?ratingFilter=4", "")
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", resp.Code, resp.Body.String())
	}
	var results []Service
	if err := json.Unmarshal(resp.Body.Bytes(), &results); err != nil {
		t.Fatalf("json unmarshal: %v", err)
	}
	if len(results) != 1 || results[0].ServiceID != 1 {
		t.Errorf("expected the 4.5-rated service, got %+v", results)
	}
}

func TestEditServiceMismatchedBodyID(t *testing.T) {
	router, svc := newTestRouter()
	seedPlumber(svc)

	body := strings.Replace(validServiceBody, `{`, `{"serviceId": 2,`, 1)
	resp := doJSON(t, router, http.MethodPut, "/services/1", body)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", resp.Code, resp.Body.String())
	}
	if msg := errorMessage(t, resp); msg != "'serviceId' in path must match serviceId in body." {
		t.Errorf("unexpected message: %q", msg)
	}
}

func TestEditServiceKeepsProtectedFields(t *testing.T) {
	router, svc := newTestRouter()
	seedPlumber(svc)

	body := strings.Replace(validServiceBody,
		`"email": "plumbing.services@example.com"`,
		`"email": "changed@example.com"`, 1)
	body = strings.Replace(body, `"serviceType": "Plumbing"`, `"serviceType": "Handyman"`, 1)
	resp := doJSON(t, router, http.MethodPut, "/services/1", body)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", resp.Code, resp.Body.String())
	}
	var updated Service
	if err := json.Unmarshal(resp.Body.Bytes(), &updated); err != nil {
		t.Fatalf("json unmarshal: %v", err)
	}
	if updated.ServiceType != "Handyman" {
		t.Errorf("expected serviceType update, got %q", updated.ServiceType)
	}
	if updated.Email != "plumbing.services@example.com" {
		t.Errorf("expected email untouched, got %q", updated.Email)
	}
}

func TestGetServiceNotFound(t *testing.T) {
	router, _ := newTestRouter()
	resp := doJSON(t, router, http.MethodGet, "/services/42", "")

	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d: %s", resp.Code, resp.Body.String())
	}
	if msg := errorMessage(t, resp); msg != "No service found with serviceId: 42" {
		t.Errorf("unexpected message: %q", msg)
	}
}

func TestDeleteServiceThenGone(t *testing.T) {
	router, svc := newTestRouter()
	seedPlumber(svc)

	resp := doJSON(t, router, http.MethodDelete, "/services/1", "")
	if resp.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d: %s", resp.Code, resp.Body.String())
	}

	resp = doJSON(t, router, http.MethodDelete, "/services/1", "")
	if resp.Code != http.StatusNotFound {
		t.Errorf("expected 404 on second delete, got %d", resp.Code)
	}
}
