// FILE: internal/controller/subscription_controller.go
package controller

import (
	"bookverse-be/internal/dto"
	"bookverse-be/internal/pkg/serverutils"
	"bookverse-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type ISubscriptionController interface {
	RegisterRoutes(r fiber.Router)
	GetPlans(ctx *fiber.Ctx) error
	GetStatus(ctx *fiber.Ctx) error
	Validate(ctx *fiber.Ctx) error
	SubmitManuscript(ctx *fiber.Ctx) error
}

type subscriptionController struct {
	service service.ISubscriptionService
}

func NewSubscriptionController(service service.ISubscriptionService) ISubscriptionController {
	return &subscriptionController{service: service}
}

func (c *subscriptionController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/subscription")
	h.Get("/plans", c.GetPlans)
	h.Get("/status", serverutils.JwtMiddleware, c.GetStatus)
	h.Get("/validate", serverutils.JwtMiddleware, c.Validate)
	h.Post("/submissions", serverutils.JwtMiddleware, c.SubmitManuscript)
}

func (c *subscriptionController) GetPlans(ctx *fiber.Ctx) error {
	res, err := c.service.GetPlans(ctx.Context())
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Plans", res))
}

func (c *subscriptionController) GetStatus(ctx *fiber.Ctx) error {
	res, err := c.service.GetStatus(ctx.Context(), currentUserId(ctx))
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Subscription status", res))
}

func (c *subscriptionController) Validate(ctx *fiber.Ctx) error {
	res, err := c.service.Validate(ctx.Context(), currentUserId(ctx))
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Subscription validation", res))
}

func (c *subscriptionController) SubmitManuscript(ctx *fiber.Ctx) error {
	var req dto.SubmitManuscriptRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.SubmitManuscript(ctx.Context(), currentUserId(ctx), &req)
	if err != nil {
		return err
	}
	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Manuscript submitted", res))
}
