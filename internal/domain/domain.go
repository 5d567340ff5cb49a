// Package domain holds the plain entity records shared by the resource
// services. Wire models with schema annotations live next to the handlers.
package domain

// TimeSlot is a bookable slot embedded in services and appointments.
type TimeSlot struct {
	Availability bool
	Date         string
	StartingTime string
}

// PersonalInfo is a client's contact record. Password is write-only and must
// never be echoed in a response.
type PersonalInfo struct {
	Address    string
	City       string
	Country    string
	Email      string
	FirstName  string
	LastName   string
	Password   string
	Phone      string
	PostalCode string
}

// Client is a personal account.
type Client struct {
	ClientID     int
	UserType     string
	PersonalInfo PersonalInfo
}

// Service is a professional account offering bookable work.
type Service struct {
	ServiceID          int
	UserType           string
	ServiceType        string
	Description        string
	City               string
	Address            string
	Country            string
	PostalCode         string
	Email              string
	Phone              string
	Rating             float64
	ServiceImg         string
	AvailableTimeSlots []TimeSlot
}

// Appointment links a client to a service at a time slot. AppointmentID,
// ClientID and ServiceID are immutable after creation.
type Appointment struct {
	AppointmentID  int
	ClientID       int
	ServiceID      int
	ServiceDetails string
	Status         string
	TimeSlot       TimeSlot
}

// Rating is an append-only review of a service by a client.
type Rating struct {
	ClientID  int
	ServiceID int
	Stars     int
	Review    string
	Date      string
}
