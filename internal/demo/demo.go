// Package demo seeds the in-memory services with the fixtures the demo API
// answers with out of the box. Data resets on every restart.
package demo

import (
	"github.com/servease/servease/internal/domain"
	appointmentsvc "github.com/servease/servease/internal/service/appointments"
	clientsvc "github.com/servease/servease/internal/service/clients"
	ratingsvc "github.com/servease/servease/internal/service/ratings"
	servicesvc "github.com/servease/servease/internal/service/services"
)

// Seed loads the demo fixtures into the given services.
func Seed(
	clients *clientsvc.InMemory,
	services *servicesvc.InMemory,
	appointments *appointmentsvc.InMemory,
	ratings *ratingsvc.InMemory,
) {
	for _, c := range demoClients() {
		clients.Seed(c)
	}
	for _, s := range demoServices() {
		services.Seed(s)
	}
	for _, a := range demoAppointments() {
		appointments.Seed(a)
	}
	for _, r := range demoRatings() {
		ratings.Seed(r)
	}
}

func demoClients() []domain.Client {
	return []domain.Client{
		{
			ClientID: 1,
			UserType: clientsvc.UserType,
			PersonalInfo: domain.PersonalInfo{
				Address:    "12 Main Street",
				City:       "Athens",
				Country:    "Greece",
				Email:      "maria.papadaki@example.com",
				FirstName:  "Maria",
				LastName:   "Papadaki",
				Password:   "demo-password-1",
				Phone:      "6947123456",
				PostalCode: "10434",
			},
		},
		{
			ClientID: 2,
			UserType: clientsvc.UserType,
			PersonalInfo: domain.PersonalInfo{
				Address:    "88 Harbor Avenue",
				City:       "Thessaloniki",
				Country:    "Greece",
				Email:      "nikos.ioannou@example.com",
				FirstName:  "Nikos",
				LastName:   "Ioannou",
				Password:   "demo-password-2",
				Phone:      "6932654321",
				PostalCode: "54625",
			},
		},
		{
			ClientID: 3,
			UserType: clientsvc.UserType,
			PersonalInfo: domain.PersonalInfo{
				Address:    "5 Olive Grove",
				City:       "Patras",
				Country:    "Greece",
				Email:      "eleni.georgiou@example.com",
				FirstName:  "Eleni",
				LastName:   "Georgiou",
				Password:   "demo-password-3",
				Phone:      "6955987654",
				PostalCode: "26221",
			},
		},
	}
}

func demoServices() []domain.Service {
	return []domain.Service{
		{
			ServiceID:   1,
			UserType:    servicesvc.UserType,
			ServiceType: "Plumbing",
			Description: "Expert plumbing services.",
			City:        "Los Angeles",
			Address:     "456 Elm Street",
			Country:     "USA",
			PostalCode:  "90001",
			Email:       "plumbing.services@example.com",
			Phone:       "9876543210",
			Rating:      4.5,
			ServiceImg:  "binaryImageData",
			AvailableTimeSlots: []domain.TimeSlot{
				{Availability: true, Date: "2023-12-01", StartingTime: "09:00:00"},
			},
		},
		{
			ServiceID:   2,
			UserType:    servicesvc.UserType,
			ServiceType: "Electrician",
			Description: "Professional electrical services for homes and offices.",
			City:        "New York",
			Address:     "123 Maple Avenue",
			Country:     "USA",
			PostalCode:  "10001",
			Email:       "electrician.pro@example.com",
			Phone:       "1234567890",
			Rating:      4.7,
			ServiceImg:  "binaryImageData",
			AvailableTimeSlots: []domain.TimeSlot{
				{Availability: true, Date: "2023-12-02", StartingTime: "10:00:00"},
			},
		},
		{
			ServiceID:   3,
			UserType:    servicesvc.UserType,
			ServiceType: "Cleaning",
			Description: "Reliable and affordable cleaning services.",
			City:        "Chicago",
			Address:     "789 Oak Lane",
			Country:     "USA",
			PostalCode:  "60601",
			Email:       "cleaning.services@example.com",
			Phone:       "1122334455",
			Rating:      4.3,
			ServiceImg:  "binaryImageData",
			AvailableTimeSlots: []domain.TimeSlot{
				{Availability: true, Date: "2023-12-03", StartingTime: "11:00:00"},
			},
		},
	}
}

func demoAppointments() []domain.Appointment {
	return []domain.Appointment{
		{
			AppointmentID:  1,
			ClientID:       1,
			ServiceID:      1,
			ServiceDetails: "Need to fix my fridge",
			Status:         "Confirmation Pending",
			TimeSlot:       domain.TimeSlot{Availability: true, Date: "2024-12-20", StartingTime: "15:00:00"},
		},
		{
			AppointmentID:  2,
			ClientID:       3,
			ServiceID:      2,
			ServiceDetails: "Wiring check for the living room",
			Status:         "Confirmation Pending",
			TimeSlot:       domain.TimeSlot{Availability: true, Date: "2024-12-20", StartingTime: "18:00:00"},
		},
		{
			AppointmentID:  3,
			ClientID:       2,
			ServiceID:      2,
			ServiceDetails: "Replace the fuse box",
			Status:         "Confirmed",
			TimeSlot:       domain.TimeSlot{Availability: true, Date: "2024-12-20", StartingTime: "19:00:00"},
		},
	}
}

func demoRatings() []domain.Rating {
	return []domain.Rating{
		{ClientID: 1, ServiceID: 1, Stars: 4, Date: "2022-08-05", Review: "Very professional, I would recommend."},
		{ClientID: 2, ServiceID: 1, Stars: 5, Date: "2021-06-13", Review: "Very Good"},
		{ClientID: 3, ServiceID: 2, Stars: 4, Date: "2020-11-15"},
	}
}
