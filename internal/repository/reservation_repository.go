package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/go-sql-driver/mysql"

	"github.com/avioline/seat-reservation/internal/model"
)

// mysqlDupEntry is the MySQL error number for a duplicate key violation.
const mysqlDupEntry = 1062

// ReservationRepo provides CRUD operations for reservations.  All
// timestamps are stored in UTC.  The table carries a unique key on
// (seat_row, seat_col) so that Insert is the atomic arbiter of seat
// ownership; see ErrSeatTaken.
type ReservationRepo struct {
	db *sql.DB
}

// NewReservationRepo returns a new ReservationRepo bound to the given database.
func NewReservationRepo(db *sql.DB) *ReservationRepo { return &ReservationRepo{db: db} }

// ListAll returns every reservation ordered by id descending (newest
// first), the order the admin dashboard displays.  When no reservations
// exist an empty slice is returned.
func (r *ReservationRepo) ListAll(ctx context.Context) ([]model.Reservation, error) {
	const q = `SELECT id, passenger_name, seat_row, seat_col, eticket, created_at
	           FROM reservations
	           ORDER BY id DESC`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := make([]model.Reservation, 0)
	for rows.Next() {
		var res model.Reservation
		if err := rows.Scan(&res.ID, &res.PassengerName, &res.SeatRow, &res.SeatCol, &res.ETicket, &res.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, res)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// FindBySeat returns the reservation occupying (row, col), or
// ErrNotFound when the seat is free.
func (r *ReservationRepo) FindBySeat(ctx context.Context, row, col int) (*model.Reservation, error) {
	const q = `SELECT id, passenger_name, seat_row, seat_col, eticket, created_at
	           FROM reservations
	           WHERE seat_row = ? AND seat_col = ?`
	return r.scanOne(r.db.QueryRowContext(ctx, q, row, col))
}

// FindByTicket returns the reservation identified by the given e-ticket
// number, or ErrNotFound when no such ticket was issued.
func (r *ReservationRepo) FindByTicket(ctx context.Context, ticket string) (*model.Reservation, error) {
	const q = `SELECT id, passenger_name, seat_row, seat_col, eticket, created_at
	           FROM reservations
	           WHERE eticket = ?`
	return r.scanOne(r.db.QueryRowContext(ctx, q, ticket))
}

// Insert persists a new reservation and populates the generated ID on
// the provided record.  A duplicate key violation on (seat_row,
// seat_col) is mapped to ErrSeatTaken so the service layer can present
// it exactly like a failed pre-check.
func (r *ReservationRepo) Insert(ctx context.Context, res *model.Reservation) error {
	const q = `INSERT INTO reservations (passenger_name, seat_row, seat_col, eticket, created_at)
	           VALUES (?, ?, ?, ?, ?)`
	result, err := r.db.ExecContext(ctx, q, res.PassengerName, res.SeatRow, res.SeatCol, res.ETicket, res.CreatedAt.UTC())
	if err != nil {
		var me *mysql.MySQLError
		if errors.As(err, &me) && me.Number == mysqlDupEntry {
			return ErrSeatTaken
		}
		return err
	}
	id, err := result.LastInsertId()
	if err != nil {
		return err
	}
	res.ID = uint64(id)
	return nil
}

// DeleteByID removes the reservation with the given id.  It returns
// ErrNotFound when no row was deleted; a second delete of the same id
// therefore fails.
func (r *ReservationRepo) DeleteByID(ctx context.Context, id uint64) error {
	const q = `DELETE FROM reservations WHERE id = ?`
	result, err := r.db.ExecContext(ctx, q, id)
	if err != nil {
		return err
	}
	n, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// scanOne scans a single reservation row, converting sql.ErrNoRows into
// the package sentinel.
func (r *ReservationRepo) scanOne(row *sql.Row) (*model.Reservation, error) {
	var res model.Reservation
	err := row.Scan(&res.ID, &res.PassengerName, &res.SeatRow, &res.SeatCol, &res.ETicket, &res.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &res, nil
}
