package email

import (
	"context"
	"fmt"

	"github.com/Domenick1991/flightdesk/internal/kafka"
)

type Sender struct{}

func NewSender() *Sender {
	return &Sender{}
}

func (s *Sender) Send(ctx context.Context, to string, event kafka.BookingEvent) error {
	fmt.Printf("send email to %s about %s for flight %s (%d seats)\n", to, event.Type, event.FlightNumber, event.Seats)
	return nil
}
