package serverutils

import (
	"errors"

	"bookverse-be/internal/pkg/apperr"

	"github.com/gofiber/fiber/v2"
)

// ErrorHandlerMiddleware maps service-layer errors onto HTTP responses.
// Purchase-intent and validation failures come back with their message;
// gateway and reconciliation failures are rendered generically so
// processor diagnostics never reach the end user.
func ErrorHandlerMiddleware() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		err := ctx.Next()
		if err == nil {
			return nil
		}

		var notPayable *apperr.TransactionNotPayableError
		switch {
		case errors.As(err, &notPayable):
			return ctx.Status(fiber.StatusConflict).JSON(fiber.Map{
				"success": false,
				"code":    fiber.StatusConflict,
				"message": "Transaction can no longer be paid",
				"status":  string(notPayable.Status),
			})
		case errors.Is(err, apperr.ErrAlreadyOwned):
			return ctx.Status(fiber.StatusConflict).JSON(ErrorResponse(fiber.StatusConflict, "You already own this content"))
		case errors.Is(err, apperr.ErrAlreadyActive):
			return ctx.Status(fiber.StatusConflict).JSON(ErrorResponse(fiber.StatusConflict, "You already have an active subscription"))
		case errors.Is(err, apperr.ErrValidation):
			return ctx.Status(fiber.StatusBadRequest).JSON(ErrorResponse(fiber.StatusBadRequest, err.Error()))
		case errors.Is(err, apperr.ErrPaymentRequired):
			return ctx.Status(fiber.StatusPaymentRequired).JSON(ErrorResponse(fiber.StatusPaymentRequired, "Purchase required to read this chapter"))
		case errors.Is(err, apperr.ErrNotFound):
			return ctx.Status(fiber.StatusNotFound).JSON(ErrorResponse(fiber.StatusNotFound, "Resource not found"))
		case errors.Is(err, apperr.ErrGatewayUnavailable):
			return ctx.Status(fiber.StatusBadGateway).JSON(ErrorResponse(fiber.StatusBadGateway, "Payment service temporarily unavailable, please retry"))
		case errors.Is(err, apperr.ErrReconciliationConflict):
			return ctx.Status(fiber.StatusConflict).JSON(ErrorResponse(fiber.StatusConflict, "Payment status could not be applied"))
		}

		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			return ctx.Status(fiberErr.Code).JSON(ErrorResponse(fiberErr.Code, fiberErr.Message))
		}

		return ctx.Status(fiber.StatusInternalServerError).JSON(ErrorResponse(fiber.StatusInternalServerError, "Internal server error"))
	}
}
