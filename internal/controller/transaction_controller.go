// FILE: internal/controller/transaction_controller.go
package controller

import (
	"fmt"

	"bookverse-be/internal/dto"
	"bookverse-be/internal/pkg/serverutils"
	"bookverse-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type ITransactionController interface {
	RegisterRoutes(r fiber.Router)
	Webhook(ctx *fiber.Ctx) error
	PurchaseBook(ctx *fiber.Ctx) error
	PurchaseChapter(ctx *fiber.Ctx) error
	Subscribe(ctx *fiber.Ctx) error
	List(ctx *fiber.Ctx) error
	Detail(ctx *fiber.Ctx) error
	CheckStatus(ctx *fiber.Ctx) error
	Cancel(ctx *fiber.Ctx) error
}

type transactionController struct {
	purchaseService    service.IPurchaseService
	transactionService service.ITransactionService
}

func NewTransactionController(purchaseService service.IPurchaseService, transactionService service.ITransactionService) ITransactionController {
	return &transactionController{
		purchaseService:    purchaseService,
		transactionService: transactionService,
	}
}

func (c *transactionController) RegisterRoutes(r fiber.Router) {
	// Gateway callback, authenticated by signature instead of JWT.
	r.Post("/payment/midtrans/notification", c.Webhook)

	p := r.Group("/purchases", serverutils.JwtMiddleware)
	p.Post("/book", c.PurchaseBook)
	p.Post("/chapter", c.PurchaseChapter)
	p.Post("/subscribe", c.Subscribe)

	t := r.Group("/transactions", serverutils.JwtMiddleware)
	t.Get("/", c.List)
	t.Get("/:code", c.Detail)
	t.Get("/:code/status", c.CheckStatus)
	t.Post("/:code/cancel", c.Cancel)
}

func (c *transactionController) Webhook(ctx *fiber.Ctx) error {
	var req dto.MidtransWebhookRequest
	if err := ctx.BodyParser(&req); err != nil {
		fmt.Printf("[WEBHOOK ERROR] Body parsing failed: %v\n", err)
		return ctx.SendStatus(fiber.StatusBadRequest)
	}

	rawBody := make([]byte, len(ctx.Body()))
	copy(rawBody, ctx.Body())

	err := c.transactionService.HandleNotification(ctx.Context(), &req, rawBody)
	if err != nil {
		fmt.Printf("[WEBHOOK ERROR] Handling failed for OrderId=%s: %v\n", req.OrderId, err)
		// Return 500 so Midtrans will retry the notification
		return ctx.SendStatus(fiber.StatusInternalServerError)
	}

	return ctx.SendStatus(fiber.StatusOK)
}

func (c *transactionController) PurchaseBook(ctx *fiber.Ctx) error {
	var req dto.PurchaseBookRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.purchaseService.PurchaseBook(ctx.Context(), currentUserId(ctx), &req)
	if err != nil {
		return err
	}
	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Checkout ready", res))
}

func (c *transactionController) PurchaseChapter(ctx *fiber.Ctx) error {
	var req dto.PurchaseChapterRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.purchaseService.PurchaseChapter(ctx.Context(), currentUserId(ctx), &req)
	if err != nil {
		return err
	}
	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Checkout ready", res))
}

func (c *transactionController) Subscribe(ctx *fiber.Ctx) error {
	var req dto.SubscribeRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.purchaseService.SubscribeToPlan(ctx.Context(), currentUserId(ctx), &req)
	if err != nil {
		return err
	}
	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Checkout ready", res))
}

func (c *transactionController) List(ctx *fiber.Ctx) error {
	res, err := c.transactionService.List(ctx.Context(), currentUserId(ctx))
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Transactions", res))
}

func (c *transactionController) Detail(ctx *fiber.Ctx) error {
	res, err := c.transactionService.Detail(ctx.Context(), currentUserId(ctx), ctx.Params("code"))
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Transaction detail", res))
}

func (c *transactionController) CheckStatus(ctx *fiber.Ctx) error {
	res, err := c.transactionService.CheckStatus(ctx.Context(), currentUserId(ctx), ctx.Params("code"))
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Transaction status", res))
}

func (c *transactionController) Cancel(ctx *fiber.Ctx) error {
	if err := c.transactionService.Cancel(ctx.Context(), currentUserId(ctx), ctx.Params("code")); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("Transaction cancelled", nil))
}

func currentUserId(ctx *fiber.Ctx) uuid.UUID {
	userIdStr, _ := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)
	return userId
}
