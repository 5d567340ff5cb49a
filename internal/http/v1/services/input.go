package services

// ServiceBody is the write shape of a professional account. Field presence
// is validated by the service layer (all missing fields reported at once),
// so nothing is marked required at the schema level. Rating is a pointer to
// distinguish "absent" from an explicit zero.
type ServiceBody struct {
	UserType           string     `json:"userType,omitempty"    doc:"Must be 'service'" example:"service"`
	ServiceType        string     `json:"serviceType,omitempty" doc:"Kind of work offered" example:"Plumbing"`
	Description        string     `json:"description,omitempty" doc:"Free-text description, up to 300 characters"`
	City               string     `json:"city,omitempty"        doc:"City" example:"Los Angeles"`
	Address            string     `json:"address,omitempty"     doc:"Street address" example:"456 Elm Street"`
	Country            string     `json:"country,omitempty"     doc:"Country" example:"USA"`
	PostalCode         string     `json:"postalCode,omitempty"  doc:"Postal code" example:"90001"`
	Email              string     `json:"email,omitempty"       doc:"Email address" example:"plumbing.services@example.com"`
	Phone              string     `json:"phone,omitempty"       doc:"Phone number, up to 10 characters" example:"9876543210"`
	Rating             *float64   `json:"rating,omitempty"      doc:"Rating, 1-5" example:"4.5"`
	ServiceImg         string     `json:"serviceImg,omitempty"  doc:"Image reference"`
	AvailableTimeSlots []TimeSlot `json:"availableTimeSlots,omitempty"`
}

// ServiceCreateInput for POST /services
type ServiceCreateInput struct {
	Body ServiceBody
}

// ServiceGetInput for GET /services/{serviceId}
type ServiceGetInput struct {
	ServiceID int `path:"serviceId" doc:"The service's id" example:"1"`
}

// ServiceUpdateInput for PUT /services/{serviceId}
type ServiceUpdateInput struct {
	ServiceID int `path:"serviceId" doc:"The service's id" example:"1"`
	Body      struct {
		ServiceID *int `json:"serviceId,omitempty" doc:"Must repeat the path id"`
		ServiceBody
	}
}

// ServiceDeleteInput for DELETE /services/{serviceId}
type ServiceDeleteInput struct {
	ServiceID int `path:"serviceId" doc:"The service's id" example:"1"`
}

// ServiceSearchInput for GET /services. RatingFilter arrives as a raw string
// so an absent parameter is distinguishable from zero; the handler parses it.
type ServiceSearchInput struct {
	Search         string `query:"search"         doc:"Case-insensitive substring match on serviceType or description" example:"plumbing"`
	TypeFilter     string `query:"typeFilter"     doc:"Exact service type, case-insensitive" example:"Plumbing"`
	LocationFilter string `query:"locationFilter" doc:"Exact city, case-insensitive" example:"Los Angeles"`
	RatingFilter   string `query:"ratingFilter"   doc:"Keep services rated at least this value, 1-5" example:"4"`
}
