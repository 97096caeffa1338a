package handlerUtil

import (
	"errors"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"LittleSteps/internal/api/child"
	"LittleSteps/internal/api/session"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

func TestHandleErrorMapping(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantBody   string
	}{
		// the capitalised message proves the dedicated branch ran, not
		// the generic coded-sentinel fallback
		{"child not found branch", child.ErrChildNotFound, fiber.StatusNotFound, "Child not found"},
		{"session conflict branch", session.ErrSessionAlreadyClosed, fiber.StatusConflict, "already completed"},
		{"coded sentinel without branch", child.ErrCreateChild, fiber.StatusInternalServerError, "failed to create child profile"},
		{"uncoded error", errors.New("boom"), fiber.StatusInternalServerError, "An unexpected error occurred"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			app := fiber.New()
			h := New(logrus.New())
			app.Get("/t", func(c *fiber.Ctx) error {
				return h.Handle(c, "req-1", tt.err, "/t", "test_op")
			})

			resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/t", nil))
			if err != nil {
				t.Fatalf("app.Test() error = %v", err)
			}
			defer resp.Body.Close()

			if resp.StatusCode != tt.wantStatus {
				t.Fatalf("status = %d, want %d", resp.StatusCode, tt.wantStatus)
			}

			body, err := io.ReadAll(resp.Body)
			if err != nil {
				t.Fatalf("reading body: %v", err)
			}
			if !strings.Contains(string(body), tt.wantBody) {
				t.Fatalf("body = %s, want it to contain %q", body, tt.wantBody)
			}
		})
	}
}
