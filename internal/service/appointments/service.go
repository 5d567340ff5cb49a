// Package appointments owns the appointments collection. Creation resolves
// the referenced client and service; edits may only touch serviceDetails,
// status and timeSlot — the identity fields are immutable.
package appointments

import (
	"context"

	"github.com/servease/servease/internal/domain"
)

// ClientDirectory resolves client ids. Implemented by the clients service.
type ClientDirectory interface {
	ClientExists(ctx context.Context, clientID int) bool
}

// ServiceDirectory resolves service ids. Implemented by the services service.
type ServiceDirectory interface {
	ServiceExists(ctx context.Context, serviceID int) bool
}

// CreateParams carries a new appointment request.
type CreateParams struct {
	ClientID       int
	ServiceID      int
	ServiceDetails string
	Status         string
	TimeSlot       domain.TimeSlot
}

// UpdateParams carries a partial edit. Nil fields were absent from the body.
// The identity fields may be present only when they repeat the stored values.
type UpdateParams struct {
	AppointmentID  *int
	ClientID       *int
	ServiceID      *int
	ServiceDetails *string
	Status         *string
	TimeSlot       *domain.TimeSlot
}

// Filter selects appointments by client and/or service. Both set means both
// must match; neither set returns the full collection.
type Filter struct {
	ClientID  *int
	ServiceID *int
}

// Service defines appointment operations.
type Service interface {
	Create(ctx context.Context, params CreateParams) (*domain.Appointment, error)
	Get(ctx context.Context, appointmentID int) (*domain.Appointment, error)
	Update(ctx context.Context, appointmentID int, params UpdateParams) (*domain.Appointment, error)
	List(ctx context.Context, filter Filter) ([]domain.Appointment, error)
}
