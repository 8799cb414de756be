// FILE: internal/controller/catalog_controller.go
package controller

import (
	"bookverse-be/internal/dto"
	"bookverse-be/internal/pkg/serverutils"
	"bookverse-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type ICatalogController interface {
	RegisterRoutes(r fiber.Router)
	ListCategories(ctx *fiber.Ctx) error
	ListBooks(ctx *fiber.Ctx) error
	GetBookDetail(ctx *fiber.Ctx) error
	ListReviews(ctx *fiber.Ctx) error
	CreateReview(ctx *fiber.Ctx) error
}

type catalogController struct {
	service       service.ICatalogService
	reviewService service.IReviewService
}

func NewCatalogController(service service.ICatalogService, reviewService service.IReviewService) ICatalogController {
	return &catalogController{service: service, reviewService: reviewService}
}

func (c *catalogController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/catalog")
	h.Get("/categories", c.ListCategories)
	h.Get("/books", c.ListBooks)
	// Detail resolves per-chapter unlock flags, so a token is honored
	// when present.
	h.Get("/books/:slug", serverutils.OptionalJwtMiddleware, c.GetBookDetail)
	h.Get("/books/:id/reviews", c.ListReviews)
	h.Post("/books/:id/reviews", serverutils.JwtMiddleware, c.CreateReview)
}

func (c *catalogController) ListCategories(ctx *fiber.Ctx) error {
	res, err := c.service.ListCategories(ctx.Context())
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Categories", res))
}

func (c *catalogController) ListBooks(ctx *fiber.Ctx) error {
	var req dto.ListBooksRequest
	if err := ctx.QueryParser(&req); err != nil {
		return err
	}

	res, err := c.service.ListBooks(ctx.Context(), &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Books", res))
}

func (c *catalogController) GetBookDetail(ctx *fiber.Ctx) error {
	slug := ctx.Params("slug")

	var userId *uuid.UUID
	if userIdStr, ok := ctx.Locals("user_id").(string); ok {
		if id, err := uuid.Parse(userIdStr); err == nil {
			userId = &id
		}
	}

	res, err := c.service.GetBookDetail(ctx.Context(), slug, userId)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Book detail", res))
}

func (c *catalogController) ListReviews(ctx *fiber.Ctx) error {
	bookId, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "invalid book id"))
	}

	res, err := c.reviewService.ListForBook(ctx.Context(), bookId)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Reviews", res))
}

func (c *catalogController) CreateReview(ctx *fiber.Ctx) error {
	bookId, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "invalid book id"))
	}

	var req dto.CreateReviewRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	res, err := c.reviewService.CreateOrUpdate(ctx.Context(), userId, bookId, &req)
	if err != nil {
		return err
	}
	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Review saved", res))
}
