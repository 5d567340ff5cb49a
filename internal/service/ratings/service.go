// Package ratings owns the append-only ratings collection. Ratings have no
// identity of their own; they are keyed internally and listed per service.
package ratings

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

// CreateParams carries a new rating. Review is nil when omitted; Date is nil
// when the server should assign today's date.
type CreateParams struct {
	ClientID int
	Stars    int
	Review   *string
	Date     *string
}

// Service defines rating operations.
type Service interface {
	Create(ctx context.Context, serviceID int, params CreateParams) (*domain.Rating, error)
	ListForService(ctx context.Context, serviceID int) ([]domain.Rating, error)
}
