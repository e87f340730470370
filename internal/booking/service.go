// Package booking implements the reservation service: it builds the
// occupancy chart from the store and the cabin grid, validates and
// creates reservations, computes revenue and handles admin deletion.
package booking

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/avioline/seat-reservation/internal/grid"
	"github.com/avioline/seat-reservation/internal/model"
	"github.com/avioline/seat-reservation/internal/repository"
	"github.com/avioline/seat-reservation/internal/utils"
)

// Store is the persistence contract the service depends on.  It is
// implemented by repository.ReservationRepo; tests substitute an
// in-memory fake.  Implementations must return repository.ErrNotFound
// for missing records and repository.ErrSeatTaken when an insert
// collides with an existing seat.
type Store interface {
	ListAll(ctx context.Context) ([]model.Reservation, error)
	FindBySeat(ctx context.Context, row, col int) (*model.Reservation, error)
	FindByTicket(ctx context.Context, ticket string) (*model.Reservation, error)
	Insert(ctx context.Context, res *model.Reservation) error
	DeleteByID(ctx context.Context, id uint64) error
}

// Seat is one cell of the occupancy chart.  Name is nil while the seat
// is unreserved.
type Seat struct {
	Reserved bool    `json:"reserved"`
	Name     *string `json:"name"`
}

// Chart is the derived, read-only occupancy view of all cabin seats.
// It is recomputed from the store on every read and never persisted.
type Chart [grid.Rows][grid.Cols]Seat

// Service coordinates the store and the cabin grid.  It is safe for
// concurrent use; seat conflicts under concurrency are resolved by the
// store's unique seat constraint.
type Service struct {
	store Store
	now   func() time.Time
}

// Option customizes a Service.
type Option func(*Service)

// WithNow overrides the clock used for reservation timestamps.  Tests
// use this to pin CreatedAt to a fixed instant.
func WithNow(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

// NewService constructs a Service over the given store.
func NewService(store Store, opts ...Option) *Service {
	if store == nil {
		panic("nil store passed to NewService")
	}
	s := &Service{store: store, now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// BuildOccupancy initializes all seats unreserved, then overlays every
// stored reservation at its zero-based cell.  Stored rows or columns
// outside the cabin are skipped so a corrupt record can never break the
// chart.
func (s *Service) BuildOccupancy(ctx context.Context) (Chart, error) {
	var chart Chart
	reservations, err := s.store.ListAll(ctx)
	if err != nil {
		return chart, err
	}
	for _, r := range reservations {
		if !grid.InBounds(r.SeatRow, r.SeatCol) {
			continue
		}
		name := r.PassengerName
		chart[r.SeatRow-1][r.SeatCol-1] = Seat{Reserved: true, Name: &name}
	}
	return chart, nil
}

// ComputeRevenue sums the seat price over every reservation whose
// coordinates fall inside the cabin; out-of-range entries contribute
// zero.  This is a display aggregate, not a ledger.
func (s *Service) ComputeRevenue(reservations []model.Reservation) int {
	total := 0
	for _, r := range reservations {
		if price, ok := grid.PriceOf(r.SeatRow, r.SeatCol); ok {
			total += price
		}
	}
	return total
}

// ListReservations returns all reservations in dashboard order (newest
// first).
func (s *Service) ListReservations(ctx context.Context) ([]model.Reservation, error) {
	return s.store.ListAll(ctx)
}

// TotalSales returns the aggregate revenue over all current reservations.
func (s *Service) TotalSales(ctx context.Context) (int, error) {
	reservations, err := s.store.ListAll(ctx)
	if err != nil {
		return 0, err
	}
	return s.ComputeRevenue(reservations), nil
}

// Reserve validates the request and persists a new reservation.  The
// validation order is fixed and each failure short-circuits:
//
//	1. row and column must parse as integers    -> ErrInvalidInput
//	2. first and last name non-empty (trimmed)  -> ErrMissingName
//	3. coordinates inside the cabin             -> ErrOutOfRange
//	4. seat not already taken                   -> repository.ErrSeatTaken
//
// The pre-check in step 4 races with concurrent requests; the store's
// unique seat key closes the window and Insert reports the same
// ErrSeatTaken.
func (s *Service) Reserve(ctx context.Context, first, last, rowStr, colStr string) (*model.Reservation, error) {
	row, err := strconv.Atoi(strings.TrimSpace(rowStr))
	if err != nil {
		return nil, ErrInvalidInput
	}
	col, err := strconv.Atoi(strings.TrimSpace(colStr))
	if err != nil {
		return nil, ErrInvalidInput
	}

	first = strings.TrimSpace(first)
	last = strings.TrimSpace(last)
	if first == "" || last == "" {
		return nil, ErrMissingName
	}

	if !grid.InBounds(row, col) {
		return nil, ErrOutOfRange
	}

	if _, err := s.store.FindBySeat(ctx, row, col); err == nil {
		return nil, repository.ErrSeatTaken
	} else if !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}

	ticket, err := newTicket(first, last, row, col)
	if err != nil {
		return nil, err
	}
	res := &model.Reservation{
		PassengerName: first + " " + last,
		SeatRow:       row,
		SeatCol:       col,
		ETicket:       ticket,
		CreatedAt:     s.now().UTC(),
	}
	if err := s.store.Insert(ctx, res); err != nil {
		return nil, err
	}
	return res, nil
}

// LookupTicket returns the reservation for an e-ticket number together
// with its seat price.  Unknown tickets yield repository.ErrNotFound.
func (s *Service) LookupTicket(ctx context.Context, ticket string) (*model.Reservation, int, error) {
	res, err := s.store.FindByTicket(ctx, ticket)
	if err != nil {
		return nil, 0, err
	}
	price, _ := grid.PriceOf(res.SeatRow, res.SeatCol)
	return res, price, nil
}

// DeleteReservation removes a reservation by id.  The caller is
// responsible for admin authentication.  Unknown ids yield
// repository.ErrNotFound.
func (s *Service) DeleteReservation(ctx context.Context, id uint64) error {
	return s.store.DeleteByID(ctx, id)
}

// newTicket generates an e-ticket number of the form
// <firstInitial><lastInitial>-<row><col>-<6 hex chars>, initials
// upper-cased.  Empty names fall back to "XX"; name validation normally
// prevents that.
func newTicket(first, last string, row, col int) (string, error) {
	suffix, err := utils.RandomHexUpper(3) // 3 bytes -> 6 hex chars
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s-%d%d-%s", initials(first, last), row, col, suffix), nil
}

func initials(first, last string) string {
	if first == "" || last == "" {
		return "XX"
	}
	f := []rune(first)[0]
	l := []rune(last)[0]
	return string(unicode.ToUpper(f)) + string(unicode.ToUpper(l))
}
