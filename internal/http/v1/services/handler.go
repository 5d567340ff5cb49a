package services

import (
	"context"
	"net/http"
	"strconv"

	"github.com/danielgtaylor/huma/v2"

	"github.com/servease/servease/internal/apierr"
	"github.com/servease/servease/internal/respond"
	servicesvc "github.com/servease/servease/internal/service/services"
)

// ServiceCreateOutput for POST /services
type ServiceCreateOutput struct {
	Body Service
}

// ServiceGetOutput for GET /services/{serviceId}
type ServiceGetOutput struct {
	Body Service
}

// ServiceUpdateOutput for PUT /services/{serviceId}
type ServiceUpdateOutput struct {
	Body Service
}

// ServiceSearchOutput for GET /services. Status is 204 with no body when
// nothing matches the filters; callers must special-case it.
type ServiceSearchOutput struct {
	Status int
	Body   []Service
}

// Register wires service routes into the provided API router.
func Register(api huma.API, svc servicesvc.Service) {
	huma.Register(api, huma.Operation{
		OperationID: "create-service",
		Method:      http.MethodPost,
		Path:        "/services",
		Summary:     "Create a professional account",
		Tags:        []string{"Services"},
	}, func(ctx context.Context, input *ServiceCreateInput) (*ServiceCreateOutput, error) {
		created, err := svc.Create(ctx, toCreateParams(input.Body))
		if err != nil {
			return nil, respond.ServiceError(ctx, err)
		}
		return &ServiceCreateOutput{Body: toHTTPService(created)}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "search-services",
		Method:      http.MethodGet,
		Path:        "/services",
		Summary:     "Search for services by name and filters",
		Description: "Returns the matching services, or 204 with no body when nothing matches.",
		Tags:        []string{"Services"},
	}, func(ctx context.Context, input *ServiceSearchInput) (*ServiceSearchOutput, error) {
		query := servicesvc.SearchQuery{
			Search:         input.Search,
			TypeFilter:     input.TypeFilter,
			LocationFilter: input.LocationFilter,
		}
		if input.RatingFilter != "" {
			rating, err := strconv.ParseFloat(input.RatingFilter, 64)
			if err != nil {
				return nil, respond.ServiceError(ctx,
					apierr.BadRequest("Invalid 'ratingFilter'. It must be a number between 1 and 5."))
			}
			query.RatingFilter = &rating
		}
		results, err := svc.Search(ctx, query)
		if err != nil {
			return nil, respond.ServiceError(ctx, err)
		}
		if len(results) == 0 {
			return &ServiceSearchOutput{Status: http.StatusNoContent}, nil
		}
		return &ServiceSearchOutput{Status: http.StatusOK, Body: toHTTPServices(results)}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "get-service",
		Method:      http.MethodGet,
		Path:        "/services/{serviceId}",
		Summary:     "Get a service",
		Tags:        []string{"Services"},
	}, func(ctx context.Context, input *ServiceGetInput) (*ServiceGetOutput, error) {
		found, err := svc.Get(ctx, input.ServiceID)
		if err != nil {
			return nil, respond.ServiceError(ctx, err)
		}
		return &ServiceGetOutput{Body: toHTTPService(found)}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "edit-service",
		Method:      http.MethodPut,
		Path:        "/services/{serviceId}",
		Summary:     "Edit a service",
		Description: "Requires the full service body; only the allow-listed fields are applied.",
		Tags:        []string{"Services"},
	}, func(ctx context.Context, input *ServiceUpdateInput) (*ServiceUpdateOutput, error) {
		updated, err := svc.Update(ctx, input.ServiceID, servicesvc.UpdateParams{
			ServiceID:    input.Body.ServiceID,
			CreateParams: toCreateParams(input.Body.ServiceBody),
		})
		if err != nil {
			return nil, respond.ServiceError(ctx, err)
		}
		return &ServiceUpdateOutput{Body: toHTTPService(updated)}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID:   "delete-service",
		Method:        http.MethodDelete,
		Path:          "/services/{serviceId}",
		Summary:       "Delete a service",
		Tags:          []string{"Services"},
		DefaultStatus: http.StatusNoContent,
	}, func(ctx context.Context, input *ServiceDeleteInput) (*struct{}, error) {
		if err := svc.Delete(ctx, input.ServiceID); err != nil {
			return nil, respond.ServiceError(ctx, err)
		}
		return nil, nil
	})
}

func toCreateParams(body ServiceBody) servicesvc.CreateParams {
	return servicesvc.CreateParams{
		UserType:           body.UserType,
		ServiceType:        body.ServiceType,
		Description:        body.Description,
		City:               body.City,
		Address:            body.Address,
		Country:            body.Country,
		PostalCode:         body.PostalCode,
		Email:              body.Email,
		Phone:              body.Phone,
		Rating:             body.Rating,
		ServiceImg:         body.ServiceImg,
		AvailableTimeSlots: toDomainTimeSlots(body.AvailableTimeSlots),
	}
}
