package serverutils

import (
	"fmt"
	"net/http/httptest"
	"testing"

	"bookverse-be/internal/pkg/apperr"

	"github.com/gofiber/fiber/v2"
)

func TestErrorHandlerStatusMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"payment required", fmt.Errorf("%w: chapter abc", apperr.ErrPaymentRequired), fiber.StatusPaymentRequired},
		{"already owned", apperr.ErrAlreadyOwned, fiber.StatusConflict},
		{"not found", apperr.ErrNotFound, fiber.StatusNotFound},
		{"gateway unavailable", apperr.ErrGatewayUnavailable, fiber.StatusBadGateway},
		{"validation", apperr.Validation("rating out of range"), fiber.StatusBadRequest},
		{"unknown error", fmt.Errorf("boom"), fiber.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := fiber.New()
			app.Use(ErrorHandlerMiddleware())
			app.Get("/", func(c *fiber.Ctx) error {
				return tt.err
			})

			resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
			if err != nil {
				t.Fatalf("app.Test: %v", err)
			}
			if resp.StatusCode != tt.wantStatus {
				t.Errorf("status = %d, want %d", resp.StatusCode, tt.wantStatus)
			}
		})
	}
}
