package domain

import "time"

type Flight struct {
	FlightNumber   string    `json:"flightNumber"`
	Origin         string    `json:"origin"`
	Destination    string    `json:"destination"`
	Date           string    `json:"date"`
	PriceCents     int64     `json:"priceCents"`
	TotalSeats     int       `json:"totalSeats"`
	SeatsAvailable int       `json:"seatsAvailable"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

// FlightFilter narrows catalog queries. Empty fields match everything.
type FlightFilter struct {
	Origin      string
	Destination string
	Date        string
}
