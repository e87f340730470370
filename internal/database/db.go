package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/go-sql-driver/mysql"

	"github.com/avioline/seat-reservation/internal/utils"
)

// Open connects to MySQL and verifies the connection.
func Open(user, pass, host, port, name string) (*sql.DB, error) {
	auth := user
	if pass != "" {
		auth = fmt.Sprintf("%s:%s", user, pass)
	}
	// parseTime=true -> DATETIME -> time.Time | loc=UTC keeps times consistent
	dsn := fmt.Sprintf("%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=true&loc=UTC",
		auth, host, port, name)

	db, err := sql.Open("mysql", dsn)
	if err != nil {
		return nil, err
	}

	// Pool settings
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(25)
	db.SetConnMaxLifetime(30 * time.Minute)

	// Ping with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		return nil, err
	}
	return db, nil
}

// EnsureSchema creates the reservations and admins tables when they do
// not exist yet.  The unique key on (seat_row, seat_col) is the
// authoritative guard against double-booking a seat; inserts racing past
// the application-level pre-check fail here.
func EnsureSchema(ctx context.Context, db *sql.DB) error {
	const reservations = `CREATE TABLE IF NOT EXISTS reservations (
		id             BIGINT UNSIGNED NOT NULL AUTO_INCREMENT,
		passenger_name VARCHAR(128) NOT NULL,
		seat_row       INT NOT NULL,
		seat_col       INT NOT NULL,
		eticket        VARCHAR(32) NOT NULL,
		created_at     DATETIME NOT NULL,
		PRIMARY KEY (id),
		UNIQUE KEY uq_reservations_seat (seat_row, seat_col),
		UNIQUE KEY uq_reservations_eticket (eticket)
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`
	const admins = `CREATE TABLE IF NOT EXISTS admins (
		username      VARCHAR(64) NOT NULL,
		password_hash VARCHAR(100) NOT NULL,
		PRIMARY KEY (username)
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`

	if _, err := db.ExecContext(ctx, reservations); err != nil {
		return err
	}
	if _, err := db.ExecContext(ctx, admins); err != nil {
		return err
	}
	return nil
}

// SeedAdmin provisions an admin account when the username is not present
// yet.  The password is stored as a bcrypt hash; existing rows are left
// untouched so a changed env var never silently rotates credentials.
func SeedAdmin(ctx context.Context, db *sql.DB, username, password string, bcryptCost int) error {
	var exists int
	err := db.QueryRowContext(ctx, `SELECT COUNT(1) FROM admins WHERE username = ?`, username).Scan(&exists)
	if err != nil {
		return err
	}
	if exists > 0 {
		return nil
	}
	hash, err := utils.HashPassword(password, bcryptCost)
	if err != nil {
		return err
	}
	_, err = db.ExecContext(ctx, `INSERT INTO admins (username, password_hash) VALUES (?, ?)`, username, hash)
	return err
}
