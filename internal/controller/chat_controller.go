package controller

import (
	"smart-negotiator-be/internal/dto"
	"smart-negotiator-be/internal/pkg/serverutils"
	"smart-negotiator-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IChatController interface {
	RegisterRoutes(r fiber.Router)
	SendMessage(ctx *fiber.Ctx) error
	History(ctx *fiber.Ctx) error
	ClearHistory(ctx *fiber.Ctx) error
}

type chatController struct {
	chatService service.IChatService
}

func NewChatController(chatService service.IChatService) IChatController {
	return &chatController{
		chatService: chatService,
	}
}

func (c *chatController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/chat/v1")
	h.Use(serverutils.JwtMiddleware)
	h.Post("message", c.SendMessage)
	h.Get("history", c.History)
	h.Delete("history", c.ClearHistory)
}

func (c *chatController) SendMessage(ctx *fiber.Ctx) error {
	userEmail := ctx.Locals("user_email").(string)

	var req dto.SendMessageRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.chatService.SendMessage(ctx.Context(), userEmail, &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success send message", res))
}

func (c *chatController) History(ctx *fiber.Ctx) error {
	userEmail := ctx.Locals("user_email").(string)

	var productId *uint
	if raw := ctx.QueryInt("product_id"); raw > 0 {
		id := uint(raw)
		productId = &id
	}

	res, err := c.chatService.History(ctx.Context(), userEmail, productId)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get chat history", res))
}

func (c *chatController) ClearHistory(ctx *fiber.Ctx) error {
	userEmail := ctx.Locals("user_email").(string)
	sessionId := ctx.Query("session_id")

	res, err := c.chatService.ClearHistory(ctx.Context(), userEmail, sessionId)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success clear chat history", res))
}
