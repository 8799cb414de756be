// FILE: internal/controller/admin_controller.go
package controller

import (
	"bookverse-be/internal/dto"
	"bookverse-be/internal/pkg/serverutils"
	"bookverse-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IAdminController interface {
	RegisterRoutes(r fiber.Router)
	CreateCategory(ctx *fiber.Ctx) error
	UpdateCategory(ctx *fiber.Ctx) error
	DeleteCategory(ctx *fiber.Ctx) error
	CreateBook(ctx *fiber.Ctx) error
	UpdateBook(ctx *fiber.Ctx) error
	CreateChapter(ctx *fiber.Ctx) error
	UpdateChapter(ctx *fiber.Ctx) error
	SyncPendingTransactions(ctx *fiber.Ctx) error
}

type adminController struct {
	catalogService     service.ICatalogService
	transactionService service.ITransactionService
	pendingSyncDays    int
}

func NewAdminController(catalogService service.ICatalogService, transactionService service.ITransactionService, pendingSyncDays int) IAdminController {
	return &adminController{
		catalogService:     catalogService,
		transactionService: transactionService,
		pendingSyncDays:    pendingSyncDays,
	}
}

func (c *adminController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/admin", serverutils.JwtMiddleware, serverutils.AdminMiddleware)

	h.Post("/categories", c.CreateCategory)
	h.Put("/categories/:id", c.UpdateCategory)
	h.Delete("/categories/:id", c.DeleteCategory)

	h.Post("/books", c.CreateBook)
	h.Put("/books/:id", c.UpdateBook)
	h.Post("/books/:id/chapters", c.CreateChapter)
	h.Put("/chapters/:id", c.UpdateChapter)

	h.Post("/transactions/sync", c.SyncPendingTransactions)
}

func (c *adminController) CreateCategory(ctx *fiber.Ctx) error {
	var req dto.UpsertCategoryRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.catalogService.CreateCategory(ctx.Context(), &req)
	if err != nil {
		return err
	}
	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Category created", res))
}

func (c *adminController) UpdateCategory(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "invalid category id"))
	}

	var req dto.UpsertCategoryRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.catalogService.UpdateCategory(ctx.Context(), id, &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Category updated", res))
}

func (c *adminController) DeleteCategory(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "invalid category id"))
	}

	if err := c.catalogService.DeleteCategory(ctx.Context(), id); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("Category deleted", nil))
}

func (c *adminController) CreateBook(ctx *fiber.Ctx) error {
	var req dto.UpsertBookRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.catalogService.CreateBook(ctx.Context(), &req)
	if err != nil {
		return err
	}
	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Book created", res))
}

func (c *adminController) UpdateBook(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "invalid book id"))
	}

	var req dto.UpsertBookRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.catalogService.UpdateBook(ctx.Context(), id, &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Book updated", res))
}

func (c *adminController) CreateChapter(ctx *fiber.Ctx) error {
	bookId, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "invalid book id"))
	}

	var req dto.UpsertChapterRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.catalogService.CreateChapter(ctx.Context(), bookId, &req)
	if err != nil {
		return err
	}
	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Chapter created", res))
}

func (c *adminController) UpdateChapter(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "invalid chapter id"))
	}

	var req dto.UpsertChapterRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.catalogService.UpdateChapter(ctx.Context(), id, &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Chapter updated", res))
}

// SyncPendingTransactions re-checks recent pending transactions against
// the gateway. ?days= overrides the configured window.
func (c *adminController) SyncPendingTransactions(ctx *fiber.Ctx) error {
	days := ctx.QueryInt("days", c.pendingSyncDays)
	if days < 1 {
		days = c.pendingSyncDays
	}

	res, err := c.transactionService.SyncPending(ctx.Context(), days)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Pending transactions synced", res))
}
