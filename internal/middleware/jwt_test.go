package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/avioline/seat-reservation/internal/utils"
)

const testSecret = "test-secret"

// protected wires JWTAuth and RequireRole in front of a trivial handler,
// mirroring the admin route group.
func protected(roles ...string) echo.HandlerFunc {
	h := func(c echo.Context) error { return c.String(http.StatusOK, "ok") }
	h = RequireRole(roles...)(h)
	return JWTAuth(testSecret)(h)
}

func do(t *testing.T, h echo.HandlerFunc, authorization string) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/v1/admin/dashboard", nil)
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}
	rec := httptest.NewRecorder()
	if err := h(e.NewContext(req, rec)); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	return rec
}

func TestJWTAuth(t *testing.T) {
	t.Parallel()

	t.Run("missing token is unauthorized", func(t *testing.T) {
		rec := do(t, protected("ADMIN"), "")
		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("status = %d, want 401", rec.Code)
		}
	})

	t.Run("garbage token is unauthorized", func(t *testing.T) {
		rec := do(t, protected("ADMIN"), "Bearer not-a-jwt")
		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("status = %d, want 401", rec.Code)
		}
	})

	t.Run("wrong secret is unauthorized", func(t *testing.T) {
		tok, err := utils.NewAccessToken("other-secret", "root", "ADMIN", 5)
		if err != nil {
			t.Fatalf("issue token: %v", err)
		}
		rec := do(t, protected("ADMIN"), "Bearer "+tok.Token)
		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("status = %d, want 401", rec.Code)
		}
	})

	t.Run("valid admin token passes", func(t *testing.T) {
		tok, err := utils.NewAccessToken(testSecret, "root", "ADMIN", 5)
		if err != nil {
			t.Fatalf("issue token: %v", err)
		}
		rec := do(t, protected("ADMIN"), "Bearer "+tok.Token)
		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200 (body %s)", rec.Code, rec.Body.String())
		}
	})

	t.Run("valid token with wrong role is forbidden", func(t *testing.T) {
		tok, err := utils.NewAccessToken(testSecret, "someone", "CUSTOMER", 5)
		if err != nil {
			t.Fatalf("issue token: %v", err)
		}
		rec := do(t, protected("ADMIN"), "Bearer "+tok.Token)
		if rec.Code != http.StatusForbidden {
			t.Fatalf("status = %d, want 403", rec.Code)
		}
	})
}
