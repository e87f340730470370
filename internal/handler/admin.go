package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/avioline/seat-reservation/internal/booking"
	"github.com/avioline/seat-reservation/internal/model"
	"github.com/avioline/seat-reservation/internal/repository"
	"github.com/avioline/seat-reservation/internal/utils"
)

// AdminDirectory is the credential lookup the login handler depends on.
// It is implemented by repository.AdminRepo; tests substitute a fake.
type AdminDirectory interface {
	GetByUsername(ctx context.Context, username string) (*model.Admin, error)
}

// AdminHandler bundles dependencies for the admin endpoints: login,
// dashboard and reservation deletion.
type AdminHandler struct {
	Admins       AdminDirectory
	Svc          *booking.Service
	JWTSecret    string
	AccessTTLMin int
}

// NewAdminHandler constructs an AdminHandler.
func NewAdminHandler(admins AdminDirectory, svc *booking.Service, jwtSecret string, accessTTLMin int) *AdminHandler {
	if admins == nil || svc == nil {
		panic("nil dependency passed to NewAdminHandler")
	}
	return &AdminHandler{Admins: admins, Svc: svc, JWTSecret: jwtSecret, AccessTTLMin: accessTTLMin}
}

type loginReq struct {
	Username string `json:"username" form:"username"`
	Password string `json:"password" form:"password"`
}

type tokenPart struct {
	Token   string    `json:"token"`
	Expires time.Time `json:"expires"`
}

// Login handles POST /v1/admin/login.  Field validation happens before
// any lookup, each case with its own message; credential mismatch is
// always reported as "Invalid Credentials" so the response does not
// reveal whether the username exists.  On success the session gate
// transitions to admin-authenticated via the issued token.
func (h *AdminHandler) Login(c echo.Context) error {
	var req loginReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	username := strings.TrimSpace(req.Username)
	password := req.Password

	switch {
	case username == "" && password == "":
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Username and Password Required"})
	case username == "":
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Username Required"})
	case password == "":
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Password Required"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	admin, err := h.Admins.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return c.JSON(http.StatusUnauthorized, echo.Map{"error": "Invalid Credentials"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	if !utils.VerifyPassword(admin.PasswordHash, password) {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "Invalid Credentials"})
	}

	access, err := utils.NewAccessToken(h.JWTSecret, admin.Username, "ADMIN", h.AccessTTLMin)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "issue access failed"})
	}

	return c.JSON(http.StatusOK, echo.Map{
		"message":  "Login Successful",
		"username": admin.Username,
		"access":   tokenPart{Token: access.Token, Expires: access.Exp},
	})
}

// Dashboard handles GET /v1/admin/dashboard.  It returns the occupancy
// chart, the reservation list (newest first) and the aggregate revenue.
// JWT and role middleware run before this handler.
func (h *AdminHandler) Dashboard(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	chart, err := h.Svc.BuildOccupancy(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to load seating chart"})
	}
	reservations, err := h.Svc.ListReservations(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to load reservations"})
	}
	return c.JSON(http.StatusOK, echo.Map{
		"chart":         chart,
		"reservations":  reservations,
		"total_revenue": h.Svc.ComputeRevenue(reservations),
	})
}

// DeleteReservation handles DELETE /v1/admin/reservations/:id.  It
// removes the reservation and returns 204; an unknown id is a 404 and a
// repeated delete of the same id therefore fails.
func (h *AdminHandler) DeleteReservation(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid reservation id"})
	}
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	if err := h.Svc.DeleteReservation(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "reservation not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to delete reservation"})
	}
	return c.NoContent(http.StatusNoContent)
}
