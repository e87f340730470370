package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/avioline/seat-reservation/internal/booking"
	"github.com/avioline/seat-reservation/internal/grid"
	"github.com/avioline/seat-reservation/internal/queue"
	"github.com/avioline/seat-reservation/internal/repository"
	queue_publisher "github.com/avioline/seat-reservation/internal/service"
)

// ReservationHandler runs the reservation pipeline for passengers.
type ReservationHandler struct {
	Svc *booking.Service
	// PublishEvents disables the RabbitMQ publish in tests.
	PublishEvents bool
}

// NewReservationHandler constructs a ReservationHandler over the
// booking service.
func NewReservationHandler(svc *booking.Service) *ReservationHandler {
	if svc == nil {
		panic("nil service passed to NewReservationHandler")
	}
	return &ReservationHandler{Svc: svc, PublishEvents: true}
}

type reserveReq struct {
	FirstName string `json:"first_name" form:"first_name"`
	LastName  string `json:"last_name" form:"last_name"`
	SeatRow   string `json:"seat_row" form:"seat_row"`
	SeatCol   string `json:"seat_col" form:"seat_col"`
}

// Create handles POST /v1/reservations.  Row and column arrive as
// strings because the booking form submits free text; parsing is the
// first validation step and each failure returns its own message.
func (h *ReservationHandler) Create(c echo.Context) error {
	var req reserveReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	res, err := h.Svc.Reserve(ctx, req.FirstName, req.LastName, req.SeatRow, req.SeatCol)
	if err != nil {
		switch {
		case errors.Is(err, booking.ErrInvalidInput):
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "Seat row and column must be numbers."})
		case errors.Is(err, booking.ErrMissingName):
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "First and last name are required."})
		case errors.Is(err, booking.ErrOutOfRange):
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "Seat row must be between 1 and 12 and column between 1 and 4."})
		case errors.Is(err, repository.ErrSeatTaken):
			return c.JSON(http.StatusConflict, echo.Map{"error": "That seat is already taken."})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to create reservation"})
	}

	if h.PublishEvents {
		price, _ := grid.PriceOf(res.SeatRow, res.SeatCol)
		ev := queue.ReservationCreatedEvent{
			ReservationID: res.ID,
			PassengerName: res.PassengerName,
			SeatRow:       res.SeatRow,
			SeatCol:       res.SeatCol,
			ETicket:       res.ETicket,
			Price:         price,
			CreatedAt:     res.CreatedAt.Format(time.RFC3339),
		}
		// Fire and forget; a broker outage must never fail the booking.
		go func() {
			pctx, pcancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer pcancel()
			_ = queue_publisher.PublishReservationCreated(pctx, ev)
		}()
	}

	return c.JSON(http.StatusCreated, echo.Map{"reservation": res})
}
