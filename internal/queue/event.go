// Package queue defines message payloads exchanged over the message broker.
package queue

// ReservationCreatedEvent is published when a seat reservation is
// successfully created.  It carries enough information for downstream
// consumers to log or notify without querying the primary database.
type ReservationCreatedEvent struct {
	ReservationID uint64 `json:"reservation_id"`
	PassengerName string `json:"passenger_name"`
	SeatRow       int    `json:"seat_row"`
	SeatCol       int    `json:"seat_col"`
	ETicket       string `json:"eticket"`
	Price         int    `json:"price"`
	CreatedAt     string `json:"created_at"`
}
