package services

import (
	"context"
	"net/http"
	"strings"
	"testing"

	"github.com/servease/servease/internal/apierr"
	"github.com/servease/servease/internal/domain"
)

func validParams() CreateParams {
	rating := 4.5
	return CreateParams{
		UserType:    UserType,
		ServiceType: "Plumbing",
		Description: "Expert plumbing services.",
		City:        "Los Angeles",
		Address:     "456 Elm Street",
		Country:     "USA",
		PostalCode:  "90001",
		Email:       "plumbing.services@example.com",
		Phone:       "9876543210",
		Rating:      &rating,
		ServiceImg:  "binaryImageData",
		AvailableTimeSlots: []domain.TimeSlot{
			{Availability: true, Date: "2023-12-01", StartingTime: "09:00:00"},
		},
	}
}

func seeded() *InMemory {
	svc := NewInMemory()
	svc.Seed(domain.Service{
		ServiceID:   1,
		UserType:    UserType,
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
	svc.Seed(domain.Service{
		ServiceID:   2,
		UserType:    UserType,
		ServiceType: "Electrician",
		Description: "Professional electrical services.",
		City:        "New York",
		Address:     "123 Maple Avenue",
		Country:     "USA",
		PostalCode:  "10001",
		Email:       "electrician.pro@example.com",
		Phone:       "1234567890",
		Rating:      4.7,
		ServiceImg:  "binaryImageData",
		AvailableTimeSlots: []domain.TimeSlot{
			{Availability: true, Date: "2023-12-02", StartingTime: "10:00:00"},
		},
	})
	return svc
}

func apiStatus(t *testing.T, err error) (int, string) {
	t.Helper()
	apiErr := apierr.From(err)
	if apiErr == nil {
		t.Fatalf("expected an API error, got %v", err)
	}
	return apiErr.Status, apiErr.Message
}

func TestCreateAssignsID(t *testing.T) {
	svc := NewInMemory()
	created, err := svc.Create(context.Background(), validParams())
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.ServiceID <= 0 {
		t.Errorf("expected positive serviceId, got %d", created.ServiceID)
	}
	if created.Rating != 4.5 {
		t.Errorf("expected rating 4.5, got %v", created.Rating)
	}
}

func TestCreateRejectsWrongUserType(t *testing.T) {
	svc := NewInMemory()
	params := validParams()
	params.UserType = "client"

	_, err := svc.Create(context.Background(), params)
	status, msg := apiStatus(t, err)
	if status != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", status)
	}
	if msg != "Invalid service data. 'userType' must be 'service'." {
		t.Errorf("unexpected message: %q", msg)
	}
}

func TestCreateListsAllMissingFieldsInDeclaredOrder(t *testing.T) {
	svc := NewInMemory()
	params := validParams()
	params.Description = ""
	params.Rating = nil
	params.AvailableTimeSlots = nil

	_, err := svc.Create(context.Background(), params)
	status, msg := apiStatus(t, err)
	if status != http.StatusUnprocessableEntity {
		t.Errorf("expected 422, got %d", status)
	}
	if msg != "Missing required fields: description, rating, availableTimeSlots" {
		t.Errorf("unexpected message: %q", msg)
	}
}

func TestCreateRejectsLongDescription(t *testing.T) {
	svc := NewInMemory()
	params := validParams()
	params.Description = strings.Repeat("x", 301)

	_, err := svc.Create(context.Background(), params)
	status, msg := apiStatus(t, err)
	if status != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", status)
	}
	if msg != "Description cannot exceed 300 characters." {
		t.Errorf("unexpected message: %q", msg)
	}
}

func TestCreateRejectsRatingOutOfRange(t *testing.T) {
	svc := NewInMemory()
	params := validParams()
	rating := 5.5
	params.Rating = &rating

	_, err := svc.Create(context.Background(), params)
	status, msg := apiStatus(t, err)
	if status != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", status)
	}
	if msg != "Rating must be a number between 1 and 5." {
		t.Errorf("unexpected message: %q", msg)
	}
}

func TestGetIsIdempotent(t *testing.T) {
	svc := seeded()
	first, err := svc.Get(context.Background(), 1)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	second, err := svc.Get(context.Background(), 1)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if first.ServiceID != second.ServiceID || first.Description != second.Description {
		t.Errorf("expected identical payloads, got %+v then %+v", first, second)
	}
}

func TestUpdateRejectsMismatchedBodyID(t *testing.T) {
	svc := seeded()
	params := UpdateParams{CreateParams: validParams()}
	other := 2
	params.ServiceID = &other

	_, err := svc.Update(context.Background(), 1, params)
	status, msg := apiStatus(t, err)
	if status != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", status)
	}
	if msg != "'serviceId' in path must match serviceId in body." {
		t.Errorf("unexpected message: %q", msg)
	}
}

func TestUpdateMismatchWinsOverOtherValidity(t *testing.T) {
	svc := seeded()
	// Body is otherwise completely invalid; the mismatch must be reported.
	other := 9
	params := UpdateParams{ServiceID: &other}

	_, err := svc.Update(context.Background(), 1, params)
	_, msg := apiStatus(t, err)
	if msg != "'serviceId' in path must match serviceId in body." {
		t.Errorf("unexpected message: %q", msg)
	}
}

func TestUpdateListsAllMissingFields(t *testing.T) {
	svc := seeded()
	id := 1
	params := UpdateParams{ServiceID: &id}

	_, err := svc.Update(context.Background(), 1, params)
	status, msg := apiStatus(t, err)
	if status != http.StatusUnprocessableEntity {
		t.Errorf("expected 422, got %d", status)
	}
	want := "Missing required fields: userType, serviceType, description, city, address, country, postalCode, email, phone, rating, serviceImg, availableTimeSlots"
	if msg != want {
		t.Errorf("unexpected message: %q", msg)
	}
}

func TestUpdateAppliesOnlyAllowListedFields(t *testing.T) {
	svc := seeded()
	id := 1
	params := UpdateParams{ServiceID: &id, CreateParams: validParams()}
	params.ServiceType = "Handyman"
	params.Email = "changed@example.com"
	rating := 1.0
	params.Rating = &rating

	updated, err := svc.Update(context.Background(), 1, params)
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.ServiceType != "Handyman" {
		t.Errorf("expected serviceType update, got %q", updated.ServiceType)
	}
	if updated.Email != "plumbing.services@example.com" {
		t.Errorf("expected email untouched, got %q", updated.Email)
	}
	if updated.Rating != 4.5 {
		t.Errorf("expected rating untouched, got %v", updated.Rating)
	}
}

func TestDeleteRemovesService(t *testing.T) {
	svc := seeded()
	if err := svc.Delete(context.Background(), 1); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if svc.ServiceExists(context.Background(), 1) {
		t.Error("expected service to be removed")
	}

	err := svc.Delete(context.Background(), 1)
	status, msg := apiStatus(t, err)
	if status != http.StatusNotFound {
		t.Errorf("expected 404, got %d", status)
	}
	if msg != "No service found with serviceId: 1" {
		t.Errorf("unexpected message: %q", msg)
	}
}

func TestSearchSubstringIsCaseInsensitive(t *testing.T) {
	svc := seeded()
	results, err := svc.Search(context.Background(), SearchQuery{Search: "PLUMB"})
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if len(results) != 1 || results[0].ServiceID != 1 {
		t.Errorf("expected only the plumbing service, got %+v", results)
	}
}

func TestSearchFiltersCombine(t *testing.T) {
	svc := seeded()
	results, err := svc.Search(context.Background(), SearchQuery{
		TypeFilter:     "electrician",
		LocationFilter: "new york",
	})
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if len(results) != 1 || results[0].ServiceID != 2 {
		t.Errorf("expected only the electrician, got %+v", results)
	}
}

func TestSearchRatingFilterKeepsAtLeast(t *testing.T) {
	svc := seeded()
	rating := 4.6
	results, err := svc.Search(context.Background(), SearchQuery{RatingFilter: &rating})
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if len(results) != 1 || results[0].ServiceID != 2 {
		t.Errorf("expected only the 4.7-rated service, got %+v", results)
	}
}

func TestSearchRejectsRatingFilterOutOfRange(t *testing.T) {
	svc := seeded()
	rating := 6.0
	_, err := svc.Search(context.Background(), SearchQuery{RatingFilter: &rating})
	status, msg := apiStatus(t, err)
	if status != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", status)
	}
	if msg != "Invalid 'ratingFilter'. It must be a number between 1 and 5." {
		t.Errorf("unexpected message: %q", msg)
	}
}

func TestSearchNoMatchesReturnsEmpty(t *testing.T) {
	svc := seeded()
	results, err := svc.Search(context.Background(), SearchQuery{Search: "gardening"})
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if len(results) != 0 {
		t.Errorf("expected no results, got %+v", results)
	}
}
