// Package services owns the professional accounts collection: creation with
// the full field catalogue, allow-listed edits, deletion, and search.
package services

import (
	"context"

	"github.com/servease/servease/internal/domain"
)

// UserType is the discriminator value required on every professional account.
const UserType = "service"

// requiredFields lists the fields that must be present on create and edit,
// in the order they are reported when missing.
var requiredFields = []string{
	"userType",
	"serviceType",
	"description",
	"city",
	"address",
	"country",
	"postalCode",
	"email",
	"phone",
	"rating",
	"serviceImg",
	"availableTimeSlots",
}

// CreateParams carries a new professional account. Rating is nil when the
// body omitted it.
type CreateParams struct {
	UserType           string
	ServiceType        string
	Description        string
	City               string
	Address            string
	Country            string
	PostalCode         string
	Email              string
	Phone              string
	Rating             *float64
	ServiceImg         string
	AvailableTimeSlots []domain.TimeSlot
}

// UpdateParams carries a full replacement body for edit. ServiceID is the id
// from the body, which must match the path.
type UpdateParams struct {
	ServiceID *int
	CreateParams
}

// SearchQuery carries the optional search filters.
type SearchQuery struct {
	Search         string
	TypeFilter     string
	LocationFilter string
	RatingFilter   *float64
}

// Service defines professional account operations.
type Service interface {
	Create(ctx context.Context, params CreateParams) (*domain.Service, error)
	Get(ctx context.Context, serviceID int) (*domain.Service, error)
	Update(ctx context.Context, serviceID int, params UpdateParams) (*domain.Service, error)
	Delete(ctx context.Context, serviceID int) error
	Search(ctx context.Context, query SearchQuery) ([]domain.Service, error)
	ServiceExists(ctx context.Context, serviceID int) bool
}
