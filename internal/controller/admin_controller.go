package controller

import (
	"smart-negotiator-be/internal/dto"
	"smart-negotiator-be/internal/pkg/serverutils"
	"smart-negotiator-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IAdminController interface {
	RegisterRoutes(r fiber.Router)
	GetThresholds(ctx *fiber.Ctx) error
	UpdateThresholds(ctx *fiber.Ctx) error
	Reindex(ctx *fiber.Ctx) error
}

type adminController struct {
	adminService service.IAdminService
}

func NewAdminController(adminService service.IAdminService) IAdminController {
	return &adminController{
		adminService: adminService,
	}
}

func (c *adminController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/admin/v1")
	h.Use(serverutils.JwtMiddleware)
	h.Get("thresholds", c.GetThresholds)
	h.Put("thresholds", c.UpdateThresholds)
	h.Post("reindex", c.Reindex)
}

func (c *adminController) GetThresholds(ctx *fiber.Ctx) error {
	res := c.adminService.GetThresholds()
	return ctx.JSON(serverutils.SuccessResponse("Success get thresholds", res))
}

func (c *adminController) UpdateThresholds(ctx *fiber.Ctx) error {
	var req dto.UpdateThresholdsRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.adminService.UpdateThresholds(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success update thresholds", res))
}

func (c *adminController) Reindex(ctx *fiber.Ctx) error {
	res, err := c.adminService.Reindex(ctx.Context())
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success reindex products", res))
}
