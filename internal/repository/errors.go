// Package repository defines error sentinels shared by the repositories.
// Higher layers compare against these with errors.Is to distinguish
// failure scenarios without inspecting driver-specific errors.
package repository

import "errors"

// ErrNotFound is returned when a lookup or delete targets a record that
// does not exist (unknown reservation id, unknown ticket, unknown admin
// username).  Handlers translate this into an HTTP 404 response.
var ErrNotFound = errors.New("not found")

// ErrSeatTaken is returned when an insert collides with the unique key
// on (seat_row, seat_col).  The database constraint is the authoritative
// guard against two concurrent requests booking the same seat, so this
// error can surface even after a pre-check found the seat free.
var ErrSeatTaken = errors.New("seat already taken")
