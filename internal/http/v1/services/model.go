package services

import (
	"github.com/servease/servease/internal/domain"
)

// TimeSlot is the wire shape of a bookable slot.
type TimeSlot struct {
	Availability bool   `json:"availability" doc:"Whether the slot is bookable" example:"true"`
	Date         string `json:"date"         doc:"ISO date"                     example:"2023-12-01"`
	StartingTime string `json:"startingTime" doc:"Starting time"                example:"09:00:00"`
}

// Service is the wire shape of a professional account.
type Service struct {
	ServiceID          int        `json:"serviceId"   doc:"Server-generated identifier" example:"1"`
	UserType           string     `json:"userType"    doc:"Account discriminator"       example:"service"`
	ServiceType        string     `json:"serviceType" doc:"Kind of work offered"        example:"Plumbing"`
	Description        string     `json:"description" doc:"Free-text description"       example:"Expert plumbing services."`
	City               string     `json:"city"        doc:"City"                        example:"Los Angeles"`
	Address            string     `json:"address"     doc:"Street address"              example:"456 Elm Street"`
	Country            string     `json:"country"     doc:"Country"                     example:"USA"`
	PostalCode         string     `json:"postalCode"  doc:"Postal code"                 example:"90001"`
	Email              string     `json:"email"       doc:"Email address"               example:"plumbing.services@example.com"`
	Phone              string     `json:"phone"       doc:"Phone number"                example:"9876543210"`
	Rating             float64    `json:"rating"      doc:"Average rating, 1-5"         example:"4.5"`
	ServiceImg         string     `json:"serviceImg"  doc:"Image reference"             example:"binaryImageData"`
	AvailableTimeSlots []TimeSlot `json:"availableTimeSlots"`
}

func toHTTPService(svc *domain.Service) Service {
	return Service{
		ServiceID:          svc.ServiceID,
		UserType:           svc.UserType,
		ServiceType:        svc.ServiceType,
		Description:        svc.Description,
		City:               svc.City,
		Address:            svc.Address,
		Country:            svc.Country,
		PostalCode:         svc.PostalCode,
		Email:              svc.Email,
		Phone:              svc.Phone,
		Rating:             svc.Rating,
		ServiceImg:         svc.ServiceImg,
		AvailableTimeSlots: toHTTPTimeSlots(svc.AvailableTimeSlots),
	}
}

func toHTTPServices(in []domain.Service) []Service {
	out := make([]Service, 0, len(in))
	for i := range in {
		out = append(out, toHTTPService(&in[i]))
	}
	return out
}

func toHTTPTimeSlots(in []domain.TimeSlot) []TimeSlot {
	out := make([]TimeSlot, 0, len(in))
	for _, ts := range in {
		out = append(out, TimeSlot(ts))
	}
	return out
}

func toDomainTimeSlots(in []TimeSlot) []domain.TimeSlot {
	out := make([]domain.TimeSlot, 0, len(in))
	for _, ts := range in {
		out = append(out, domain.TimeSlot(ts))
	}
	return out
}
