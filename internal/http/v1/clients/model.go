package clients

import (
	"github.com/servease/servease/internal/domain"
)

// PersonalInfo is the wire shape of a client's contact record. The password
// is write-only and deliberately has no field here.
type PersonalInfo struct {
	Address    string `json:"address"    doc:"Street address"   example:"25 Arkadias Street"`
	City       string `json:"city"       doc:"City"             example:"Athens"`
	Country    string `json:"country"    doc:"Country"          example:"Greece"`
	Email      string `json:"email"      doc:"Email address"    example:"john@example.com"`
	FirstName  string `json:"firstName"  doc:"First name"       example:"John"`
	LastName   string `json:"lastName"   doc:"Last name"        example:"Doe"`
	Phone      string `json:"phone"      doc:"Phone number"     example:"6947123456"`
	PostalCode string `json:"postalCode" doc:"Postal code"      example:"10434"`
}

// Client is the wire shape of a personal account.
type Client struct {
	ClientID     int          `json:"clientId" doc:"Server-generated identifier" example:"7"`
	UserType     string       `json:"userType" doc:"Account discriminator"       example:"client"`
	PersonalInfo PersonalInfo `json:"personalInfo"`
}

func toHTTPClient(c *domain.Client) Client {
	return Client{
		ClientID: c.ClientID,
		UserType: c.UserType,
		PersonalInfo: PersonalInfo{
			Address:    c.PersonalInfo.Address,
			City:       c.PersonalInfo.City,
			Country:    c.PersonalInfo.Country,
			Email:      c.PersonalInfo.Email,
			FirstName:  c.PersonalInfo.FirstName,
			LastName:   c.PersonalInfo.LastName,
			Phone:      c.PersonalInfo.Phone,
			PostalCode: c.PersonalInfo.PostalCode,
		},
	}
}
