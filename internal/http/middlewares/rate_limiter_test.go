package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
)

func TestRateLimiter_BlocksAfterLimit(t *testing.T) {
	e := echo.New()
	handler := RateLimiter(2, time.Minute)(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})

	call := func(ip string) error {
		req := httptest.NewRequest(http.MethodGet, "/api/plans", nil)
		req.Header.Set(echo.HeaderXRealIP, ip)
		return handler(e.NewContext(req, httptest.NewRecorder()))
	}

	for i := 0; i < 2; i++ {
		if err := call("10.0.0.1"); err != nil {
			t.Fatalf("request %d unexpectedly limited: %v", i, err)
		}
	}

	err := call("10.0.0.1")
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusTooManyRequests {
		t.Errorf("expected 429, got %v", err)
	}

	if err := call("10.0.0.2"); err != nil {
		t.Errorf("other client should not be limited: %v", err)
	}
}
