package ratings

import (
	"context"
	"strings"
	"time"

	"github.com/servease/servease/internal/apierr"
	"github.com/servease/servease/internal/domain"
	"github.com/servease/servease/internal/store"
)

// dateLayout is the wire format for rating dates.
const dateLayout = "2006-01-02"

// InMemory implements Service on top of the in-memory store.
type InMemory struct {
	store    *store.Memory[domain.Rating]
	clients  ClientDirectory
	services ServiceDirectory
	now      func() time.Time
}

// NewInMemory creates an empty ratings service.
func NewInMemory(clients ClientDirectory, services ServiceDirectory) *InMemory {
	return &InMemory{
		store:    store.NewMemory[domain.Rating](),
		clients:  clients,
		services: services,
		now:      time.Now,
	}
}

// Seed appends a rating. Intended for demo data and tests.
func (s *InMemory) Seed(r domain.Rating) {
	s.store.Insert(func(int) domain.Rating { return r })
}

func (s *InMemory) Create(ctx context.Context, serviceID int, params CreateParams) (*domain.Rating, error) {
	if err := apierr.PositiveID("serviceId", serviceID); err != nil {
		return nil, err
	}
	if !s.clients.ClientExists(ctx, params.ClientID) {
		return nil, apierr.NotFound("client", "clientId", params.ClientID)
	}
	if !s.services.ServiceExists(ctx, serviceID) {
		return nil, apierr.NotFound("service", "serviceId", serviceID)
	}
	// Loose re-validation below the schema layer.
	if params.Stars < 1 || params.Stars > 5 {
		return nil, apierr.BadRequest("Stars must be an integer between 1 and 5.")
	}

	date := s.now().UTC().Format(dateLayout)
	if params.Date != nil && *params.Date != "" {
		date = *params.Date
	}
	var review string
	if params.Review != nil {
		review = strings.TrimSpace(*params.Review)
	}

	created := s.store.Insert(func(int) domain.Rating {
		return domain.Rating{
			ClientID:  params.ClientID,
			ServiceID: serviceID,
			Stars:     params.Stars,
			Review:    review,
			Date:      date,
		}
	})
	return &created, nil
}

func (s *InMemory) ListForService(ctx context.Context, serviceID int) ([]domain.Rating, error) {
	if err := apierr.PositiveID("serviceId", serviceID); err != nil {
		return nil, err
	}
	if !s.services.ServiceExists(ctx, serviceID) {
		return nil, apierr.NotFound("service", "serviceId", serviceID)
	}

	all := s.store.List()
	results := make([]domain.Rating, 0, len(all))
	for _, r := range all {
		if r.ServiceID == serviceID {
			results = append(results, r)
		}
	}
	return results, nil
}

// Compile-time interface check
var _ Service = (*InMemory)(nil)
