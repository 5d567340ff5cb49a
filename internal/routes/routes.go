package routes

import (
	"context"

	"github.com/danielgtaylor/huma/v2"
	"go.uber.org/zap"

	appointmenthandler "github.com/servease/servease/internal/http/v1/appointments"
	clienthandler "github.com/servease/servease/internal/http/v1/clients"
	ratinghandler "github.com/servease/servease/internal/http/v1/ratings"
	servicehandler "github.com/servease/servease/internal/http/v1/services"
	appmiddleware "github.com/servease/servease/internal/middleware"
	appointmentsvc "github.com/servease/servease/internal/service/appointments"
	clientsvc "github.com/servease/servease/internal/service/clients"
	ratingsvc "github.com/servease/servease/internal/service/ratings"
	servicesvc "github.com/servease/servease/internal/service/services"
)

// Register wires all HTTP routes into the provided API router.
func Register(
	api huma.API,
	clients clientsvc.Service,
	services servicesvc.Service,
	appointments appointmentsvc.Service,
	ratings ratingsvc.Service,
) {
	registerHealth(api)
	clienthandler.Register(api, clients)
	servicehandler.Register(api, services)
	appointmenthandler.Register(api, appointments)
	ratinghandler.Register(api, ratings)
}

// HealthData models the success payload for the health route.
type HealthData struct {
	Message string `json:"message" doc:"Health status message" example:"healthy"`
}

// HealthOutput is the response wrapper for the health endpoint.
type HealthOutput struct {
	Body HealthData
}

func registerHealth(api huma.API) {
	huma.Get(api, "/health", func(ctx context.Context, _ *struct{}) (*HealthOutput, error) {
		appmiddleware.LogInfo(ctx, "health check", zap.String("path", "/health"))
		return &HealthOutput{Body: HealthData{Message: "healthy"}}, nil
	})
}
