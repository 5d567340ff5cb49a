// Package clients owns the client accounts collection and its business
// rules: required personal-info fields, email and phone constraints, and the
// write-only password.
package clients

import (
	"context"

	"github.com/servease/servease/internal/domain"
)

// UserType is the discriminator value required on every client account.
const UserType = "client"

// requiredFields lists the personal-info fields that must be non-empty on
// create, in the order they are reported when missing.
var requiredFields = []string{
	"address",
	"city",
	"country",
	"email",
	"firstName",
	"lastName",
	"password",
	"phone",
	"postalCode",
}

// CreateParams carries a new client account. PersonalInfo is nil when the
// request body omitted it entirely.
type CreateParams struct {
	UserType     string
	PersonalInfo *domain.PersonalInfo
}

// UpdateParams carries a partial personal-info update. Nil fields are left
// untouched. ClientID and UserType are identity fields and may only repeat
// the stored values.
type UpdateParams struct {
	ClientID   *int
	UserType   *string
	Address    *string
	City       *string
	Country    *string
	Email      *string
	FirstName  *string
	LastName   *string
	Password   *string
	Phone      *string
	PostalCode *string
}

// Service defines client account operations. Every expected failure is a
// *apierr.Error carrying the status and message exposed to the caller.
type Service interface {
	Create(ctx context.Context, params CreateParams) (*domain.Client, error)
	Get(ctx context.Context, clientID int) (*domain.Client, error)
	Update(ctx context.Context, clientID int, params UpdateParams) (*domain.Client, error)
	Delete(ctx context.Context, clientID int) error
	ClientExists(ctx context.Context, clientID int) bool
}
