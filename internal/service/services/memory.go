package services

import (
	"context"
	"strings"

	"github.com/servease/servease/internal/apierr"
	"github.com/servease/servease/internal/domain"
	"github.com/servease/servease/internal/store"
)

const (
	maxPhoneLength       = 10
	maxDescriptionLength = 300
)

// InMemory implements Service on top of the in-memory store.
type InMemory struct {
	store *store.Memory[domain.Service]
}

// NewInMemory creates an empty professional-accounts service.
func NewInMemory() *InMemory {
	return &InMemory{store: store.NewMemory[domain.Service]()}
}

// Seed stores a service under a fixed id. Intended for demo data and tests.
func (s *InMemory) Seed(svc domain.Service) {
	s.store.Put(svc.ServiceID, svc)
}

func (s *InMemory) Create(_ context.Context, params CreateParams) (*domain.Service, error) {
	if params.UserType != UserType {
		return nil, apierr.BadRequest("Invalid service data. 'userType' must be 'service'.")
	}
	if missing := missingFields(params); len(missing) > 0 {
		return nil, apierr.Unprocessable("Missing required fields: %s", strings.Join(missing, ", "))
	}
	if err := validateFields(params); err != nil {
		return nil, err
	}

	created := s.store.Insert(func(id int) domain.Service {
		return domain.Service{
			ServiceID:          id,
			UserType:           UserType,
			ServiceType:        params.ServiceType,
			Description:        params.Description,
			City:               params.City,
			Address:            params.Address,
			Country:            params.Country,
			PostalCode:         params.PostalCode,
			Email:              params.Email,
			Phone:              params.Phone,
			Rating:             *params.Rating,
			ServiceImg:         params.ServiceImg,
			AvailableTimeSlots: params.AvailableTimeSlots,
		}
	})
	return &created, nil
}

func (s *InMemory) Get(_ context.Context, serviceID int) (*domain.Service, error) {
	if err := apierr.PositiveID("serviceId", serviceID); err != nil {
		return nil, err
	}
	svc, ok := s.store.Get(serviceID)
	if !ok {
		return nil, apierr.NotFound("service", "serviceId", serviceID)
	}
	return &svc, nil
}

func (s *InMemory) Update(_ context.Context, serviceID int, params UpdateParams) (*domain.Service, error) {
	if err := apierr.PositiveID("serviceId", serviceID); err != nil {
		return nil, err
	}
	// Path/body consistency is checked before anything else about the body.
	if params.ServiceID == nil || *params.ServiceID != serviceID {
		return nil, apierr.BadRequest("'serviceId' in path must match serviceId in body.")
	}
	if missing := missingFields(params.CreateParams); len(missing) > 0 {
		return nil, apierr.Unprocessable("Missing required fields: %s", strings.Join(missing, ", "))
	}

	svc, ok := s.store.Get(serviceID)
	if !ok {
		return nil, apierr.NotFound("service", "serviceId", serviceID)
	}

	if len(params.Description) > maxDescriptionLength {
		return nil, apierr.BadRequest("Description cannot exceed 300 characters.")
	}
	if len(params.Phone) > maxPhoneLength {
		return nil, apierr.BadRequest("Phone number cannot exceed 10 characters.")
	}

	// Allow-listed fields only; userType, email and rating stay untouched.
	svc.ServiceType = params.ServiceType
	svc.Description = params.Description
	svc.City = params.City
	svc.Address = params.Address
	svc.Country = params.Country
	svc.PostalCode = params.PostalCode
	svc.AvailableTimeSlots = params.AvailableTimeSlots
	svc.Phone = params.Phone
	svc.ServiceImg = params.ServiceImg

	s.store.Update(serviceID, svc)
	return &svc, nil
}

func (s *InMemory) Delete(_ context.Context, serviceID int) error {
	if err := apierr.PositiveID("serviceId", serviceID); err != nil {
		return err
	}
	if !s.store.Delete(serviceID) {
		return apierr.NotFound("service", "serviceId", serviceID)
	}
	return nil
}

func (s *InMemory) Search(_ context.Context, query SearchQuery) ([]domain.Service, error) {
	results := s.store.List()

	if search := strings.TrimSpace(query.Search); search != "" {
		lower := strings.ToLower(search)
		results = filter(results, func(svc domain.Service) bool {
			return strings.Contains(strings.ToLower(svc.ServiceType), lower) ||
				strings.Contains(strings.ToLower(svc.Description), lower)
		})
	}

	if typeFilter := strings.TrimSpace(query.TypeFilter); typeFilter != "" {
		lower := strings.ToLower(typeFilter)
		results = filter(results, func(svc domain.Service) bool {
			return strings.ToLower(svc.ServiceType) == lower
		})
	}

	if locationFilter := strings.TrimSpace(query.LocationFilter); locationFilter != "" {
		lower := strings.ToLower(locationFilter)
		results = filter(results, func(svc domain.Service) bool {
			return strings.ToLower(svc.City) == lower
		})
	}

	if query.RatingFilter != nil {
		rating := *query.RatingFilter
		if rating < 1 || rating > 5 {
			return nil, apierr.BadRequest("Invalid 'ratingFilter'. It must be a number between 1 and 5.")
		}
		results = filter(results, func(svc domain.Service) bool {
			return svc.Rating >= rating
		})
	}

	return results, nil
}

func (s *InMemory) ServiceExists(_ context.Context, serviceID int) bool {
	return s.store.Exists(serviceID)
}

// missingFields returns the empty required fields in declared order.
func missingFields(params CreateParams) []string {
	present := map[string]bool{
		"userType":           params.UserType != "",
		"serviceType":        params.ServiceType != "",
		"description":        params.Description != "",
		"city":               params.City != "",
		"address":            params.Address != "",
		"country":            params.Country != "",
		"postalCode":         params.PostalCode != "",
		"email":              params.Email != "",
		"phone":              params.Phone != "",
		"rating":             params.Rating != nil,
		"serviceImg":         params.ServiceImg != "",
		"availableTimeSlots": len(params.AvailableTimeSlots) > 0,
	}
	var missing []string
	for _, field := range requiredFields {
		if !present[field] {
			missing = append(missing, field)
		}
	}
	return missing
}

// validateFields enforces the per-field constraints on a complete record.
func validateFields(params CreateParams) error {
	if len(params.Description) > maxDescriptionLength {
		return apierr.BadRequest("Description cannot exceed 300 characters.")
	}
	if len(params.Phone) > maxPhoneLength {
		return apierr.BadRequest("Phone number cannot exceed 10 characters.")
	}
	if !strings.Contains(params.Email, "@") {
		return apierr.Unprocessable("Invalid email format.")
	}
	if *params.Rating < 1 || *params.Rating > 5 {
		return apierr.BadRequest("Rating must be a number between 1 and 5.")
	}
	return nil
}

func filter(in []domain.Service, keep func(domain.Service) bool) []domain.Service {
	out := in[:0:0]
	for _, svc := range in {
		if keep(svc) {
			out = append(out, svc)
		}
	}
	return out
}

// Compile-time interface check
var _ Service = (*InMemory)(nil)
