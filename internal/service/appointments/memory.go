package appointments

import (
	"context"
	"strings"

	"github.com/servease/servease/internal/apierr"
	"github.com/servease/servease/internal/domain"
	"github.com/servease/servease/internal/store"
)

// InMemory implements Service on top of the in-memory store, resolving
// referenced entities through the injected directories.
type InMemory struct {
	store    *store.Memory[domain.Appointment]
	clients  ClientDirectory
	services ServiceDirectory
}

// NewInMemory creates an empty appointments service.
func NewInMemory(clients ClientDirectory, services ServiceDirectory) *InMemory {
	return &InMemory{
		store:    store.NewMemory[domain.Appointment](),
		clients:  clients,
		services: services,
	}
}

// Seed stores an appointment under a fixed id. Intended for demo data and tests.
func (s *InMemory) Seed(a domain.Appointment) {
	s.store.Put(a.AppointmentID, a)
}

func (s *InMemory) Create(ctx context.Context, params CreateParams) (*domain.Appointment, error) {
	if !s.clients.ClientExists(ctx, params.ClientID) {
		return nil, apierr.NotFound("client", "clientId", params.ClientID)
	}
	if !s.services.ServiceExists(ctx, params.ServiceID) {
		return nil, apierr.NotFound("service", "serviceId", params.ServiceID)
	}

	created := s.store.Insert(func(id int) domain.Appointment {
		return domain.Appointment{
			AppointmentID:  id,
			ClientID:       params.ClientID,
			ServiceID:      params.ServiceID,
			ServiceDetails: params.ServiceDetails,
			Status:         params.Status,
			TimeSlot:       params.TimeSlot,
		}
	})
	return &created, nil
}

func (s *InMemory) Get(_ context.Context, appointmentID int) (*domain.Appointment, error) {
	if err := apierr.PositiveID("appointmentId", appointmentID); err != nil {
		return nil, err
	}
	a, ok := s.store.Get(appointmentID)
	if !ok {
		return nil, apierr.NotFound("appointment", "appointmentId", appointmentID)
	}
	return &a, nil
}

func (s *InMemory) Update(_ context.Context, appointmentID int, params UpdateParams) (*domain.Appointment, error) {
	if err := apierr.PositiveID("appointmentId", appointmentID); err != nil {
		return nil, err
	}
	a, ok := s.store.Get(appointmentID)
	if !ok {
		return nil, apierr.NotFound("appointment", "appointmentId", appointmentID)
	}

	// Identity fields may appear in the body only when they repeat the
	// stored values; every offending field is reported at once, in the
	// fixed order appointmentId, clientId, serviceId.
	var changed []string
	if params.AppointmentID != nil && *params.AppointmentID != a.AppointmentID {
		changed = append(changed, "appointmentId")
	}
	if params.ClientID != nil && *params.ClientID != a.ClientID {
		changed = append(changed, "clientId")
	}
	if params.ServiceID != nil && *params.ServiceID != a.ServiceID {
		changed = append(changed, "serviceId")
	}
	if len(changed) > 0 {
		return nil, apierr.BadRequest("Immutable fields cannot be changed: %s", strings.Join(changed, ", "))
	}

	if params.ServiceDetails != nil {
		a.ServiceDetails = *params.ServiceDetails
	}
	if params.Status != nil {
		a.Status = *params.Status
	}
	if params.TimeSlot != nil {
		a.TimeSlot = *params.TimeSlot
	}

	s.store.Update(appointmentID, a)
	return &a, nil
}

func (s *InMemory) List(_ context.Context, f Filter) ([]domain.Appointment, error) {
	if f.ClientID != nil {
		if err := apierr.PositiveID("clientId", *f.ClientID); err != nil {
			return nil, err
		}
	}
	if f.ServiceID != nil {
		if err := apierr.PositiveID("serviceId", *f.ServiceID); err != nil {
			return nil, err
		}
	}

	all := s.store.List()
	results := make([]domain.Appointment, 0, len(all))
	for _, a := range all {
		if f.ClientID != nil && a.ClientID != *f.ClientID {
			continue
		}
		if f.ServiceID != nil && a.ServiceID != *f.ServiceID {
			continue
		}
		results = append(results, a)
	}
	return results, nil
}

// Compile-time interface check
var _ Service = (*InMemory)(nil)
