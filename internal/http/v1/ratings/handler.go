package ratings

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/servease/servease/internal/respond"
	ratingsvc "github.com/servease/servease/internal/service/ratings"
)

// RatingCreateInput for POST /service/{serviceId}/ratings
type RatingCreateInput struct {
	ServiceID int `path:"serviceId" doc:"The service's id" example:"1"`
	Body      struct {
		ClientID int     `json:"clientId,omitempty" doc:"Reviewing client" example:"1"`
		Stars    int     `json:"stars,omitempty"    doc:"Star rating, 1-5" example:"5"`
		Review   *string `json:"review,omitempty"   doc:"Free-text review; trimmed when present"`
		Date     *string `json:"date,omitempty"     doc:"Defaults to today when absent" example:"2022-08-05"`
	}
}

// RatingCreateOutput for POST /service/{serviceId}/ratings
type RatingCreateOutput struct {
	Body Rating
}

// RatingListInput for GET /service/{serviceId}/ratings
type RatingListInput struct {
	ServiceID int `path:"serviceId" doc:"The service's id" example:"1"`
}

// RatingListOutput for GET /service/{serviceId}/ratings. The body is raw
// JSON because the two outcomes have different shapes: a bare array of
// ratings, or a {message, data} wrapper when the service has none yet.
type RatingListOutput struct {
	ContentType string `header:"Content-Type"`
	Body        []byte
}

// noRatingsBody is the wrapper returned for a service with zero ratings.
type noRatingsBody struct {
	Message string   `json:"message"`
	Data    []Rating `json:"data"`
}

// Register wires rating routes into the provided API router.
func Register(api huma.API, svc ratingsvc.Service) {
	huma.Register(api, huma.Operation{
		OperationID: "create-rating",
		Method:      http.MethodPost,
		Path:        "/service/{serviceId}/ratings",
		Summary:     "Create a rating",
		Description: "Rates an existing service on behalf of an existing client. Ratings are append-only.",
		Tags:        []string{"Ratings"},
	}, func(ctx context.Context, input *RatingCreateInput) (*RatingCreateOutput, error) {
		created, err := svc.Create(ctx, input.ServiceID, ratingsvc.CreateParams{
			ClientID: input.Body.ClientID,
			Stars:    input.Body.Stars,
			Review:   input.Body.Review,
			Date:     input.Body.Date,
		})
		if err != nil {
			return nil, respond.ServiceError(ctx, err)
		}
		return &RatingCreateOutput{Body: toHTTPRating(created)}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "get-service-ratings",
		Method:      http.MethodGet,
		Path:        "/service/{serviceId}/ratings",
		Summary:     "Get the ratings of a service",
		Description: "Returns the service's ratings, or a {message, data} wrapper when it has none yet.",
		Tags:        []string{"Ratings"},
	}, func(ctx context.Context, input *RatingListInput) (*RatingListOutput, error) {
		results, err := svc.ListForService(ctx, input.ServiceID)
		if err != nil {
			return nil, respond.ServiceError(ctx, err)
		}

		var payload any
		if len(results) == 0 {
			payload = noRatingsBody{Message: "No ratings yet for this service.", Data: []Rating{}}
		} else {
			payload = toHTTPRatings(results)
		}
		body, err := json.Marshal(payload)
		if err != nil {
			return nil, respond.ServiceError(ctx, err)
		}
		return &RatingListOutput{
			ContentType: "application/json; charset=utf-8",
			Body:        body,
		}, nil
	})
}
