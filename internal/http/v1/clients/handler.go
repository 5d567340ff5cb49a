package clients

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/servease/servease/internal/domain"
	"github.com/servease/servease/internal/respond"
	clientsvc "github.com/servease/servease/internal/service/clients"
)

// ClientCreateOutput for POST /clients
type ClientCreateOutput struct {
	Body Client
}

// ClientGetOutput for GET /clients/{clientId}
type ClientGetOutput struct {
	Body Client
}

// ClientUpdateOutput for PUT /clients/{clientId}
type ClientUpdateOutput struct {
	Body Client
}

// Register wires client routes into the provided API router.
func Register(api huma.API, svc clientsvc.Service) {
	huma.Register(api, huma.Operation{
		OperationID: "create-client",
		Method:      http.MethodPost,
		Path:        "/clients",
		Summary:     "Create a personal account",
		Description: "Creates a client account. The password is never echoed back.",
		Tags:        []string{"Clients"},
	}, func(ctx context.Context, input *ClientCreateInput) (*ClientCreateOutput, error) {
		client, err := svc.Create(ctx, clientsvc.CreateParams{
			UserType:     input.Body.UserType,
			PersonalInfo: toDomainInfo(input.Body.PersonalInfo),
		})
		if err != nil {
			return nil, respond.ServiceError(ctx, err)
		}
		return &ClientCreateOutput{Body: toHTTPClient(client)}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "get-client",
		Method:      http.MethodGet,
		Path:        "/clients/{clientId}",
		Summary:     "Get a client",
		Tags:        []string{"Clients"},
	}, func(ctx context.Context, input *ClientGetInput) (*ClientGetOutput, error) {
		client, err := svc.Get(ctx, input.ClientID)
		if err != nil {
			return nil, respond.ServiceError(ctx, err)
		}
		return &ClientGetOutput{Body: toHTTPClient(client)}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "edit-client",
		Method:      http.MethodPut,
		Path:        "/clients/{clientId}",
		Summary:     "Edit a client",
		Description: "Updates the provided personal-info fields; omitted fields keep their stored values.",
		Tags:        []string{"Clients"},
	}, func(ctx context.Context, input *ClientUpdateInput) (*ClientUpdateOutput, error) {
		params := clientsvc.UpdateParams{
			ClientID: input.Body.ClientID,
			UserType: input.Body.UserType,
		}
		if info := input.Body.PersonalInfo; info != nil {
			params.Address = info.Address
			params.City = info.City
			params.Country = info.Country
			params.Email = info.Email
			params.FirstName = info.FirstName
			params.LastName = info.LastName
			params.Password = info.Password
			params.Phone = info.Phone
			params.PostalCode = info.PostalCode
		}
		client, err := svc.Update(ctx, input.ClientID, params)
		if err != nil {
			return nil, respond.ServiceError(ctx, err)
		}
		return &ClientUpdateOutput{Body: toHTTPClient(client)}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID:   "delete-client",
		Method:        http.MethodDelete,
		Path:          "/clients/{clientId}",
		Summary:       "Delete a client",
		Tags:          []string{"Clients"},
		DefaultStatus: http.StatusNoContent,
	}, func(ctx context.Context, input *ClientDeleteInput) (*struct{}, error) {
		if err := svc.Delete(ctx, input.ClientID); err != nil {
			return nil, respond.ServiceError(ctx, err)
		}
		return nil, nil
	})
}

func toDomainInfo(body *PersonalInfoBody) *domain.PersonalInfo {
	if body == nil {
		return nil
	}
	return &domain.PersonalInfo{
		Address:    body.Address,
		City:       body.City,
		Country:    body.Country,
		Email:      body.Email,
		FirstName:  body.FirstName,
		LastName:   body.LastName,
		Password:   body.Password,
		Phone:      body.Phone,
		PostalCode: body.PostalCode,
	}
}
