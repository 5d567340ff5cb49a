package clients

import (
	"context"
	"strings"

	"github.com/servease/servease/internal/apierr"
	"github.com/servease/servease/internal/domain"
	"github.com/servease/servease/internal/store"
)

// maxPhoneLength bounds the phone field on create and update.
const maxPhoneLength = 10

// InMemory implements Service on top of the in-memory store.
type InMemory struct {
	store *store.Memory[domain.Client]
}

// NewInMemory creates an empty client service.
func NewInMemory() *InMemory {
	return &InMemory{store: store.NewMemory[domain.Client]()}
}

// Seed stores a client under a fixed id. Intended for demo data and tests.
func (s *InMemory) Seed(c domain.Client) {
	s.store.Put(c.ClientID, c)
}

func (s *InMemory) Create(_ context.Context, params CreateParams) (*domain.Client, error) {
	if params.UserType != UserType || params.PersonalInfo == nil {
		return nil, apierr.BadRequest("Invalid client data. 'userType' must be 'client' and 'personalInfo' is required.")
	}

	info := *params.PersonalInfo
	if missing := missingInfoFields(info); len(missing) > 0 {
		return nil, apierr.Unprocessable("Missing required fields: %s", strings.Join(missing, ", "))
	}
	if err := validateInfo(info); err != nil {
		return nil, err
	}

	created := s.store.Insert(func(id int) domain.Client {
		return domain.Client{
			ClientID:     id,
			UserType:     UserType,
			PersonalInfo: info,
		}
	})
	return &created, nil
}

func (s *InMemory) Get(_ context.Context, clientID int) (*domain.Client, error) {
	if err := apierr.PositiveID("clientId", clientID); err != nil {
		return nil, err
	}
	c, ok := s.store.Get(clientID)
	if !ok {
		return nil, apierr.NotFound("client", "clientId", clientID)
	}
	return &c, nil
}

func (s *InMemory) Update(_ context.Context, clientID int, params UpdateParams) (*domain.Client, error) {
	if err := apierr.PositiveID("clientId", clientID); err != nil {
		return nil, err
	}
	if params.ClientID != nil && *params.ClientID != clientID {
		return nil, apierr.BadRequest("'clientId' in path must match clientId in body.")
	}
	if params.UserType != nil && *params.UserType != UserType {
		return nil, apierr.BadRequest("Invalid client data. 'userType' must be 'client' and 'personalInfo' is required.")
	}

	c, ok := s.store.Get(clientID)
	if !ok {
		return nil, apierr.NotFound("client", "clientId", clientID)
	}

	info := c.PersonalInfo
	applyInfoUpdate(&info, params)
	if missing := missingInfoFields(info); len(missing) > 0 {
		return nil, apierr.Unprocessable("Missing required fields: %s", strings.Join(missing, ", "))
	}
	if err := validateInfo(info); err != nil {
		return nil, err
	}

	c.PersonalInfo = info
	s.store.Update(clientID, c)
	return &c, nil
}

func (s *InMemory) Delete(_ context.Context, clientID int) error {
	if err := apierr.PositiveID("clientId", clientID); err != nil {
		return err
	}
	if !s.store.Delete(clientID) {
		return apierr.NotFound("client", "clientId", clientID)
	}
	return nil
}

func (s *InMemory) ClientExists(_ context.Context, clientID int) bool {
	return s.store.Exists(clientID)
}

// missingInfoFields returns the empty required fields in declared order.
func missingInfoFields(info domain.PersonalInfo) []string {
	values := map[string]string{
		"address":    info.Address,
		"city":       info.City,
		"country":    info.Country,
		"email":      info.Email,
		"firstName":  info.FirstName,
		"lastName":   info.LastName,
		"password":   info.Password,
		"phone":      info.Phone,
		"postalCode": info.PostalCode,
	}
	var missing []string
	for _, field := range requiredFields {
		if values[field] == "" {
			missing = append(missing, field)
		}
	}
	return missing
}

// validateInfo enforces the email and phone constraints on a complete record.
func validateInfo(info domain.PersonalInfo) error {
	if !strings.Contains(info.Email, "@") {
		return apierr.Unprocessable("Invalid email format.")
	}
	if len(info.Phone) > maxPhoneLength {
		return apierr.BadRequest("Phone number cannot exceed 10 characters.")
	}
	return nil
}

func applyInfoUpdate(info *domain.PersonalInfo, params UpdateParams) {
	if params.Address != nil {
		info.Address = *params.Address
	}
	if params.City != nil {
		info.City = *params.City
	}
	if params.Country != nil {
		info.Country = *params.Country
	}
	if params.Email != nil {
		info.Email = *params.Email
	}
	if params.FirstName != nil {
		info.FirstName = *params.FirstName
	}
	if params.LastName != nil {
		info.LastName = *params.LastName
	}
	if params.Password != nil {
		info.Password = *params.Password
	}
	if params.Phone != nil {
		info.Phone = *params.Phone
	}
	if params.PostalCode != nil {
		info.PostalCode = *params.PostalCode
	}
}

// Compile-time interface check
var _ Service = (*InMemory)(nil)
