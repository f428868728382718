package entity

import (
	"time"

	"github.com/google/uuid"
)

type EventHeader struct {
	ID          string    `json:"id"`
	PublishedAt time.Time `json:"published_at"`
}

func NewEventHeader() EventHeader {
	return EventHeader{
		ID:          uuid.NewString(),
		PublishedAt: time.Now().UTC(),
	}
}

type TicketSold struct {
	Header       EventHeader `json:"header"`
	CustomerName string      `json:"customer_name"`
	Channel      Channel     `json:"channel"`
	Remaining    int         `json:"remaining_seats"`
}

type TicketSaleRejected struct {
	Header       EventHeader `json:"header"`
	CustomerName string      `json:"customer_name"`
	Channel      Channel     `json:"channel"`
	Reason       string      `json:"reason"`
}

// CinemaSoldOut is published once, by the sale that takes the last seat.
type CinemaSoldOut struct {
	Header   EventHeader `json:"header"`
	Capacity int         `json:"capacity"`
}
