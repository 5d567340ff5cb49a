package appointments

// AppointmentCreateInput for POST /appointments
type AppointmentCreateInput struct {
	Body struct {
		ClientID       int      `json:"clientId,omitempty"       doc:"Booking client"            example:"1"`
		ServiceID      int      `json:"serviceId,omitempty"      doc:"Booked service"            example:"1"`
		ServiceDetails string   `json:"serviceDetails,omitempty" doc:"Free-text request details" example:"Need to fix my fridge"`
		Status         string   `json:"status,omitempty"         doc:"Free-text state label"     example:"Confirmation Pending"`
		TimeSlot       TimeSlot `json:"timeSlot,omitempty"`
	}
}

// AppointmentGetInput for GET /appointments/{appointmentId}
type AppointmentGetInput struct {
	AppointmentID int `path:"appointmentId" doc:"The appointment's id" example:"1"`
}

// AppointmentUpdateInput for PUT /appointments/{appointmentId}. The identity
// fields may appear only when they repeat the stored values.
type AppointmentUpdateInput struct {
	AppointmentID int `path:"appointmentId" doc:"The appointment's id" example:"1"`
	Body          struct {
		AppointmentID  *int      `json:"appointmentId,omitempty"  doc:"Immutable"`
		ClientID       *int      `json:"clientId,omitempty"       doc:"Immutable"`
		ServiceID      *int      `json:"serviceId,omitempty"      doc:"Immutable"`
		ServiceDetails *string   `json:"serviceDetails,omitempty" doc:"Free-text request details"`
		Status         *string   `json:"status,omitempty"         doc:"Free-text state label"`
		TimeSlot       *TimeSlot `json:"timeSlot,omitempty"`
	}
}

// AppointmentListInput for GET /appointments. Both filters set means both
// must match. The ids arrive as raw strings so an absent parameter is
// distinguishable from zero; the handler parses them.
type AppointmentListInput struct {
	ClientID  string `query:"clientId"  doc:"Filter by client"  example:"1"`
	ServiceID string `query:"serviceId" doc:"Filter by service" example:"1"`
}
