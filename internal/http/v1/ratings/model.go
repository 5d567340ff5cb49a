package ratings

import (
	"github.com/servease/servease/internal/domain"
)

// Rating is the wire shape of a review. Review is omitted entirely when the
// caller did not supply one.
type Rating struct {
	ClientID  int    `json:"clientId"         doc:"Reviewing client"        example:"1"`
	ServiceID int    `json:"serviceId"        doc:"Reviewed service"        example:"1"`
	Stars     int    `json:"stars"            doc:"Star rating, 1-5"        example:"5"`
	Review    string `json:"review,omitempty" doc:"Free-text review"        example:"Very professional, I would recommend."`
	Date      string `json:"date"             doc:"Date the rating was given" example:"2022-08-05"`
}

func toHTTPRating(r *domain.Rating) Rating {
	return Rating{
		ClientID:  r.ClientID,
		ServiceID: r.ServiceID,
		Stars:     r.Stars,
		Review:    r.Review,
		Date:      r.Date,
	}
}

func toHTTPRatings(in []domain.Rating) []Rating {
	out := make([]Rating, 0, len(in))
	for i := range in {
		out = append(out, toHTTPRating(&in[i]))
	}
	return out
}
