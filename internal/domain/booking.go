package domain

import "time"

type Booking struct {
	ID           string    `json:"id"`
	FlightNumber string    `json:"flightNumber"`
	UserID       int64     `json:"userId"`
	SeatsBooked  int       `json:"seatsBooked"`
	CreatedAt    time.Time `json:"createdAt"`
}
