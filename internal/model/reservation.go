package model

import "time"

// Reservation is a persisted booking of one seat to one named passenger
// as stored in the `reservations` table.  At most one reservation may
// exist per (SeatRow, SeatCol) pair; the table enforces this with a
// unique key.  Reservations are created through the booking service and
// deleted only by an authenticated admin; they are never updated.
//
// Fields:
//  ID            – primary key, assigned by the database.
//  PassengerName – full passenger name, non-empty.
//  SeatRow       – 1-based row of the booked seat.
//  SeatCol       – 1-based column of the booked seat.
//  ETicket       – generated unique e-ticket identifier.
//  CreatedAt     – creation timestamp in UTC.
type Reservation struct {
	ID            uint64    `json:"id"`             // reservations.id
	PassengerName string    `json:"passenger_name"` // reservations.passenger_name
	SeatRow       int       `json:"seat_row"`       // reservations.seat_row
	SeatCol       int       `json:"seat_col"`       // reservations.seat_col
	ETicket       string    `json:"eticket"`        // reservations.eticket
	CreatedAt     time.Time `json:"created_at"`     // reservations.created_at
}
