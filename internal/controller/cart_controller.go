package controller

import (
	"smart-negotiator-be/internal/dto"
	"smart-negotiator-be/internal/pkg/serverutils"
	"smart-negotiator-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type ICartController interface {
	RegisterRoutes(r fiber.Router)
	AddItem(ctx *fiber.Ctx) error
	RemoveItem(ctx *fiber.Ctx) error
	Summary(ctx *fiber.Ctx) error
	Clear(ctx *fiber.Ctx) error
}

type cartController struct {
	cartService service.ICartService
}

func NewCartController(cartService service.ICartService) ICartController {
	return &cartController{
		cartService: cartService,
	}
}

func (c *cartController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/cart/v1")
	h.Use(serverutils.JwtMiddleware)
	h.Get("", c.Summary)
	h.Post("items", c.AddItem)
	h.Delete("items/:productId", c.RemoveItem)
	h.Delete("", c.Clear)
}

func (c *cartController) AddItem(ctx *fiber.Ctx) error {
	userEmail := ctx.Locals("user_email").(string)

	var req dto.AddCartItemRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.cartService.AddItem(ctx.Context(), userEmail, &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success add cart item", res))
}

func (c *cartController) RemoveItem(ctx *fiber.Ctx) error {
	userEmail := ctx.Locals("user_email").(string)

	productId, err := ctx.ParamsInt("productId")
	if err != nil || productId <= 0 {
		return fiber.NewError(fiber.StatusBadRequest, "invalid product id")
	}

	if err := c.cartService.RemoveItem(ctx.Context(), userEmail, uint(productId)); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse[any]("Success remove cart item", nil))
}

func (c *cartController) Summary(ctx *fiber.Ctx) error {
	userEmail := ctx.Locals("user_email").(string)

	res, err := c.cartService.Summary(ctx.Context(), userEmail)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get cart", res))
}

func (c *cartController) Clear(ctx *fiber.Ctx) error {
	userEmail := ctx.Locals("user_email").(string)

	if err := c.cartService.Clear(ctx.Context(), userEmail); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse[any]("Success clear cart", nil))
}
