package appointments

import (
	"github.com/servease/servease/internal/domain"
)

// TimeSlot is the wire shape of an appointment's slot.
type TimeSlot struct {
	Availability bool   `json:"availability" doc:"Whether the slot is bookable" example:"true"`
	Date         string `json:"date"         doc:"ISO date"                     example:"2024-12-20"`
	StartingTime string `json:"startingTime" doc:"Starting time"                example:"15:00:00"`
}

// Appointment is the wire shape of a booking.
type Appointment struct {
	AppointmentID  int      `json:"appointmentId"  doc:"Server-generated identifier" example:"1"`
	ClientID       int      `json:"clientId"       doc:"Booking client"              example:"1"`
	ServiceID      int      `json:"serviceId"      doc:"Booked service"              example:"1"`
	ServiceDetails string   `json:"serviceDetails" doc:"Free-text request details"   example:"Need to fix my fridge"`
	Status         string   `json:"status"         doc:"Free-text state label"       example:"Confirmation Pending"`
	TimeSlot       TimeSlot `json:"timeSlot"`
}

func toHTTPAppointment(a *domain.Appointment) Appointment {
	return Appointment{
		AppointmentID:  a.AppointmentID,
		ClientID:       a.ClientID,
		ServiceID:      a.ServiceID,
		ServiceDetails: a.ServiceDetails,
		Status:         a.Status,
		TimeSlot:       TimeSlot(a.TimeSlot),
	}
}

func toHTTPAppointments(in []domain.Appointment) []Appointment {
	out := make([]Appointment, 0, len(in))
	for i := range in {
		out = append(out, toHTTPAppointment(&in[i]))
	}
	return out
}
