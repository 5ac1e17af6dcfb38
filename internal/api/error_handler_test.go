package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/ruralroots/directory-api/internal/core/domain"
)

func TestHTTPErrorHandler_DomainErrorMapping(t *testing.T) {
	cases := []struct {
		name     string
		err      error
		wantCode int
		wantMsg  string
	}{
		{"invalid credentials", domain.ErrInvalidCredentials, http.StatusUnauthorized, "invalid credentials"},
		{"email taken", domain.ErrEmailTaken, http.StatusConflict, "email already registered"},
		{"not authenticated", domain.ErrNotAuthenticated, http.StatusUnauthorized, "authentication required"},
		{"wrong role", domain.ErrWrongRole, http.StatusForbidden, "operation not allowed for this role"},
		{"no farm owned", domain.ErrNoFarmOwned, http.StatusForbidden, "add a farm before posting a job"},
		{"farm not found", domain.ErrFarmNotFound, http.StatusNotFound, "farm not found"},
		{"job not found", domain.ErrJobNotFound, http.StatusNotFound, "job not found"},
		{"wrapped sentinel", fmt.Errorf("register: %w", domain.ErrEmailTaken), http.StatusConflict, "email already registered"},
		{"echo http error", echo.NewHTTPError(http.StatusBadRequest, "bad input"), http.StatusBadRequest, "bad input"},
		{"unexpected error", errors.New("boom"), http.StatusInternalServerError, "internal server error"},
	}

	handler := NewHTTPErrorHandler(zerolog.Nop())
	e := echo.New()

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/", nil)
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			handler(tc.err, c)

			if rec.Code != tc.wantCode {
				t.Fatalf("expected %d, got %d", tc.wantCode, rec.Code)
			}
			var resp errorResponse
			if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
				t.Fatalf("invalid json: %v", err)
			}
			if resp.Error != tc.wantMsg {
				t.Fatalf("expected %q, got %q", tc.wantMsg, resp.Error)
			}
		})
	}
}

func TestHTTPErrorHandler_CommittedResponseUntouched(t *testing.T) {
	handler := NewHTTPErrorHandler(zerolog.Nop())
	e := echo.New()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if err := c.NoContent(http.StatusNoContent); err != nil {
		t.Fatalf("commit: %v", err)
	}

	handler(errors.New("boom"), c)

	if rec.Code != http.StatusNoContent {
		t.Fatalf("committed response must not be rewritten, got %d", rec.Code)
	}
	if rec.Body.Len() != 0 {
		t.Fatalf("no body expected, got %q", rec.Body.String())
	}
}
