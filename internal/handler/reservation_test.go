package handler

import (
	"encoding/json"
	"net/http"
	"regexp"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/avioline/seat-reservation/internal/booking"
	"github.com/avioline/seat-reservation/internal/model"
)

func newReservationHandler(store *fakeStore) *ReservationHandler {
	h := NewReservationHandler(booking.NewService(store))
	h.PublishEvents = false // no broker in tests
	return h
}

func TestCreateReservation(t *testing.T) {
	t.Parallel()

	e := echo.New()

	tests := []struct {
		name           string
		body           string
		seed           []model.Reservation
		expectedStatus int
		expectedSubstr string
	}{
		{
			name:           "created",
			body:           `{"first_name":"Jane","last_name":"Doe","seat_row":"2","seat_col":"3"}`,
			expectedStatus: http.StatusCreated,
			expectedSubstr: `"passenger_name":"Jane Doe"`,
		},
		{
			name:           "non-numeric row",
			body:           `{"first_name":"Jane","last_name":"Doe","seat_row":"two","seat_col":"3"}`,
			expectedStatus: http.StatusBadRequest,
			expectedSubstr: "Seat row and column must be numbers.",
		},
		{
			name:           "missing names",
			body:           `{"first_name":" ","last_name":"","seat_row":"2","seat_col":"3"}`,
			expectedStatus: http.StatusBadRequest,
			expectedSubstr: "First and last name are required.",
		},
		{
			name:           "row out of range",
			body:           `{"first_name":"Jane","last_name":"Doe","seat_row":"13","seat_col":"3"}`,
			expectedStatus: http.StatusBadRequest,
			expectedSubstr: "between 1 and 12",
		},
		{
			name:           "seat taken",
			body:           `{"first_name":"Jane","last_name":"Doe","seat_row":"2","seat_col":"3"}`,
			seed:           []model.Reservation{{PassengerName: "Ada Lovelace", SeatRow: 2, SeatCol: 3, ETicket: "AL-23-A1B2C3"}},
			expectedStatus: http.StatusConflict,
			expectedSubstr: "That seat is already taken.",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			h := newReservationHandler(newFakeStore(tc.seed...))
			c, rec := postJSON(e, "/v1/reservations", tc.body)
			if err := h.Create(c); err != nil {
				t.Fatalf("handler returned error: %v", err)
			}
			if rec.Code != tc.expectedStatus {
				t.Fatalf("status = %d, want %d (body %s)", rec.Code, tc.expectedStatus, rec.Body.String())
			}
			if !strings.Contains(rec.Body.String(), tc.expectedSubstr) {
				t.Fatalf("body %q does not contain %q", rec.Body.String(), tc.expectedSubstr)
			}
		})
	}

	t.Run("issued ticket matches format", func(t *testing.T) {
		h := newReservationHandler(newFakeStore())
		c, rec := postJSON(e, "/v1/reservations", `{"first_name":"Jane","last_name":"Doe","seat_row":"2","seat_col":"3"}`)
		if err := h.Create(c); err != nil {
			t.Fatalf("handler returned error: %v", err)
		}
		var resp struct {
			Reservation model.Reservation `json:"reservation"`
		}
		if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
			t.Fatalf("unmarshal response: %v", err)
		}
		pattern := regexp.MustCompile(`^JD-23-[0-9A-F]{6}$`)
		if !pattern.MatchString(resp.Reservation.ETicket) {
			t.Fatalf("eticket %q does not match %v", resp.Reservation.ETicket, pattern)
		}
	})
}
