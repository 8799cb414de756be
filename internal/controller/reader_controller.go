// FILE: internal/controller/reader_controller.go
package controller

import (
	"bookverse-be/internal/dto"
	"bookverse-be/internal/pkg/serverutils"
	"bookverse-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IReaderController interface {
	RegisterRoutes(r fiber.Router)
	ReadChapter(ctx *fiber.Ctx) error
	SaveProgress(ctx *fiber.Ctx) error
	GetProgress(ctx *fiber.Ctx) error
	Library(ctx *fiber.Ctx) error
}

type readerController struct {
	service service.IReaderService
}

func NewReaderController(service service.IReaderService) IReaderController {
	return &readerController{service: service}
}

func (c *readerController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/reader")
	// Free chapters are readable without a token.
	h.Get("/chapters/:id", serverutils.OptionalJwtMiddleware, c.ReadChapter)
	h.Put("/books/:id/progress", serverutils.JwtMiddleware, c.SaveProgress)
	h.Get("/books/:id/progress", serverutils.JwtMiddleware, c.GetProgress)
	h.Get("/library", serverutils.JwtMiddleware, c.Library)
}

func (c *readerController) ReadChapter(ctx *fiber.Ctx) error {
	chapterId, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "invalid chapter id"))
	}

	var userId *uuid.UUID
	if userIdStr, ok := ctx.Locals("user_id").(string); ok {
		if id, err := uuid.Parse(userIdStr); err == nil {
			userId = &id
		}
	}

	res, err := c.service.ReadChapter(ctx.Context(), userId, chapterId)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Chapter content", res))
}

func (c *readerController) SaveProgress(ctx *fiber.Ctx) error {
	bookId, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "invalid book id"))
	}

	var req dto.SaveProgressRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	if err := c.service.SaveProgress(ctx.Context(), currentUserId(ctx), bookId, &req); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("Progress saved", nil))
}

func (c *readerController) GetProgress(ctx *fiber.Ctx) error {
	bookId, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "invalid book id"))
	}

	res, err := c.service.GetProgress(ctx.Context(), currentUserId(ctx), bookId)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Reading progress", res))
}

func (c *readerController) Library(ctx *fiber.Ctx) error {
	res, err := c.service.Library(ctx.Context(), currentUserId(ctx))
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Library", res))
}
