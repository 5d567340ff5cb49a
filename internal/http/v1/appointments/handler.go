package appointments

import (
	"context"
	"net/http"
	"strconv"

	"github.com/danielgtaylor/huma/v2"

	"github.com/servease/servease/internal/apierr"
	"github.com/servease/servease/internal/domain"
	"github.com/servease/servease/internal/respond"
	appointmentsvc "github.com/servease/servease/internal/service/appointments"
)

// AppointmentCreateOutput for POST /appointments
type AppointmentCreateOutput struct {
	Body Appointment
}

// AppointmentGetOutput for GET /appointments/{appointmentId}
type AppointmentGetOutput struct {
	Body Appointment
}

// AppointmentUpdateOutput for PUT /appointments/{appointmentId}
type AppointmentUpdateOutput struct {
	Body Appointment
}

// AppointmentListOutput for GET /appointments
type AppointmentListOutput struct {
	Body []Appointment
}

// Register wires appointment routes into the provided API router.
func Register(api huma.API, svc appointmentsvc.Service) {
	huma.Register(api, huma.Operation{
		OperationID: "create-appointment",
		Method:      http.MethodPost,
		Path:        "/appointments",
		Summary:     "Create an appointment",
		Description: "Books an appointment for an existing client at an existing service.",
		Tags:        []string{"Appointments"},
	}, func(ctx context.Context, input *AppointmentCreateInput) (*AppointmentCreateOutput, error) {
		created, err := svc.Create(ctx, appointmentsvc.CreateParams{
			ClientID:       input.Body.ClientID,
			ServiceID:      input.Body.ServiceID,
			ServiceDetails: input.Body.ServiceDetails,
			Status:         input.Body.Status,
			TimeSlot:       domain.TimeSlot(input.Body.TimeSlot),
		})
		if err != nil {
			return nil, respond.ServiceError(ctx, err)
		}
		return &AppointmentCreateOutput{Body: toHTTPAppointment(created)}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "get-client-appointments",
		Method:      http.MethodGet,
		Path:        "/appointments",
		Summary:     "Get the appointments of a client or a service",
		Description: "When both filters are given, only appointments matching both are returned.",
		Tags:        []string{"Appointments"},
	}, func(ctx context.Context, input *AppointmentListInput) (*AppointmentListOutput, error) {
		clientID, err := optionalID("clientId", input.ClientID)
		if err != nil {
			return nil, respond.ServiceError(ctx, err)
		}
		serviceID, err := optionalID("serviceId", input.ServiceID)
		if err != nil {
			return nil, respond.ServiceError(ctx, err)
		}
		results, err := svc.List(ctx, appointmentsvc.Filter{
			ClientID:  clientID,
			ServiceID: serviceID,
		})
		if err != nil {
			return nil, respond.ServiceError(ctx, err)
		}
		return &AppointmentListOutput{Body: toHTTPAppointments(results)}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "get-appointment",
		Method:      http.MethodGet,
		Path:        "/appointments/{appointmentId}",
		Summary:     "Get an appointment by id",
		Tags:        []string{"Appointments"},
	}, func(ctx context.Context, input *AppointmentGetInput) (*AppointmentGetOutput, error) {
		found, err := svc.Get(ctx, input.AppointmentID)
		if err != nil {
			return nil, respond.ServiceError(ctx, err)
		}
		return &AppointmentGetOutput{Body: toHTTPAppointment(found)}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "edit-service-appointment",
		Method:      http.MethodPut,
		Path:        "/appointments/{appointmentId}",
		Summary:     "Edit an appointment",
		Description: "Only serviceDetails, status and timeSlot can change; identity fields are immutable.",
		Tags:        []string{"Appointments"},
	}, func(ctx context.Context, input *AppointmentUpdateInput) (*AppointmentUpdateOutput, error) {
		params := appointmentsvc.UpdateParams{
			AppointmentID:  input.Body.AppointmentID,
			ClientID:       input.Body.ClientID,
			ServiceID:      input.Body.ServiceID,
			ServiceDetails: input.Body.ServiceDetails,
			Status:         input.Body.Status,
		}
		if input.Body.TimeSlot != nil {
			ts := domain.TimeSlot(*input.Body.TimeSlot)
			params.TimeSlot = &ts
		}
		updated, err := svc.Update(ctx, input.AppointmentID, params)
		if err != nil {
			return nil, respond.ServiceError(ctx, err)
		}
		return &AppointmentUpdateOutput{Body: toHTTPAppointment(updated)}, nil
	})
}

// optionalID parses an optional id query parameter. An empty value means no
// filter; a value that is not an integer gets the same 400 as a non-positive
// one.
func optionalID(field, raw string) (*int, error) {
	if raw == "" {
		return nil, nil
	}
	id, err := strconv.Atoi(raw)
	if err != nil {
		return nil, apierr.BadRequest("'%s' must be a positive integer.", field)
	}
	return &id, nil
}
