package clients

// PersonalInfoBody is the write shape of the contact record. Field presence
// is validated by the service layer, which reports all missing fields at
// once, so nothing is marked required at the schema level.
type PersonalInfoBody struct {
	Address    string `json:"address,omitempty"    doc:"Street address" example:"25 Arkadias Street"`
	City       string `json:"city,omitempty"       doc:"City"           example:"Athens"`
	Country    string `json:"country,omitempty"    doc:"Country"        example:"Greece"`
	Email      string `json:"email,omitempty"      doc:"Email address"  example:"john@example.com"`
	FirstName  string `json:"firstName,omitempty"  doc:"First name"     example:"John"`
	LastName   string `json:"lastName,omitempty"   doc:"Last name"      example:"Doe"`
	Password   string `json:"password,omitempty"   doc:"Password (write-only)" example:"s3cret"`
	Phone      string `json:"phone,omitempty"      doc:"Phone number"   example:"6947123456"`
	PostalCode string `json:"postalCode,omitempty" doc:"Postal code"    example:"10434"`
}

// ClientCreateInput for POST /clients
type ClientCreateInput struct {
	Body struct {
		UserType     string            `json:"userType,omitempty" doc:"Must be 'client'" example:"client"`
		PersonalInfo *PersonalInfoBody `json:"personalInfo,omitempty"`
	}
}

// ClientGetInput for GET /clients/{clientId}
type ClientGetInput struct {
	ClientID int `path:"clientId" doc:"The client's id" example:"1"`
}

// PersonalInfoUpdateBody is the partial update shape; nil fields are left
// untouched.
type PersonalInfoUpdateBody struct {
	Address    *string `json:"address,omitempty"    doc:"Street address"`
	City       *string `json:"city,omitempty"       doc:"City"`
	Country    *string `json:"country,omitempty"    doc:"Country"`
	Email      *string `json:"email,omitempty"      doc:"Email address"`
	FirstName  *string `json:"firstName,omitempty"  doc:"First name"`
	LastName   *string `json:"lastName,omitempty"   doc:"Last name"`
	Password   *string `json:"password,omitempty"   doc:"Password (write-only)"`
	Phone      *string `json:"phone,omitempty"      doc:"Phone number"`
	PostalCode *string `json:"postalCode,omitempty" doc:"Postal code"`
}

// ClientUpdateInput for PUT /clients/{clientId}
type ClientUpdateInput struct {
	ClientID int `path:"clientId" doc:"The client's id" example:"1"`
	Body     struct {
		ClientID     *int                    `json:"clientId,omitempty" doc:"Must repeat the path id when present"`
		UserType     *string                 `json:"userType,omitempty" doc:"Must be 'client' when present"`
		PersonalInfo *PersonalInfoUpdateBody `json:"personalInfo,omitempty"`
	}
}

// ClientDeleteInput for DELETE /clients/{clientId}
type ClientDeleteInput struct {
	ClientID int `path:"clientId" doc:"The client's id" example:"1"`
}
