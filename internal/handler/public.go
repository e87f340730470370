package handler

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/avioline/seat-reservation/internal/booking"
	"github.com/avioline/seat-reservation/internal/repository"
)

// PublicHandler serves the unauthenticated surface: the occupancy
// chart, the landing-page menu, ticket confirmation and the aggregate
// revenue figure.
type PublicHandler struct {
	Svc *booking.Service
}

// NewPublicHandler constructs a PublicHandler over the booking service.
func NewPublicHandler(svc *booking.Service) *PublicHandler {
	if svc == nil {
		panic("nil service passed to NewPublicHandler")
	}
	return &PublicHandler{Svc: svc}
}

// GetSeatingChart handles GET /v1/seats.  It returns the current 12x4
// occupancy chart, recomputed from the store on every call.
func (h *PublicHandler) GetSeatingChart(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	chart, err := h.Svc.BuildOccupancy(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to load seating chart"})
	}
	return c.JSON(http.StatusOK, echo.Map{"chart": chart})
}

type menuReq struct {
	Choice string `json:"choice" form:"menu_choice"`
}

// Menu handles POST /v1/menu, the landing-page choice dispatch.
// option2 points the client at the admin login, option3 at the
// reservation form; anything else is an input error.
func (h *PublicHandler) Menu(c echo.Context) error {
	var req menuReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Please choose a valid option."})
	}
	switch strings.TrimSpace(req.Choice) {
	case "option2":
		return c.JSON(http.StatusOK, echo.Map{
			"message":  "Redirecting to admin login...",
			"redirect": "/v1/admin/login",
		})
	case "option3":
		return c.JSON(http.StatusOK, echo.Map{
			"message":  "Redirecting to reservation form...",
			"redirect": "/v1/reservations",
		})
	default:
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Please choose a valid option."})
	}
}

// ConfirmTicket handles GET /v1/reservations/confirm/:ticket.  It looks
// up a reservation by its e-ticket number and returns it with the seat
// price; unknown tickets are a terminal 404.
func (h *PublicHandler) ConfirmTicket(c echo.Context) error {
	ticket := strings.TrimSpace(c.Param("ticket"))
	if ticket == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "ticket required"})
	}
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	res, price, err := h.Svc.LookupTicket(ctx, ticket)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "ticket not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to look up ticket"})
	}
	return c.JSON(http.StatusOK, echo.Map{
		"reservation": res,
		"price":       price,
	})
}

// TotalSales handles GET /v1/total-sales.  The figure is deliberately
// served without authentication.
func (h *PublicHandler) TotalSales(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	total, err := h.Svc.TotalSales(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to compute total sales"})
	}
	return c.JSON(http.StatusOK, echo.Map{"total_sales": total})
}
