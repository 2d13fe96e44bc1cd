package controller

import (
	"smart-negotiator-be/internal/dto"
	"smart-negotiator-be/internal/pkg/serverutils"
	"smart-negotiator-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IProductController interface {
	RegisterRoutes(r fiber.Router)
	Create(ctx *fiber.Ctx) error
	Update(ctx *fiber.Ctx) error
	Show(ctx *fiber.Ctx) error
	List(ctx *fiber.Ctx) error
	SemanticSearch(ctx *fiber.Ctx) error
}

type productController struct {
	productService service.IProductService
}

func NewProductController(productService service.IProductService) IProductController {
	return &productController{
		productService: productService,
	}
}

func (c *productController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/product/v1")
	h.Use(serverutils.JwtMiddleware)
	h.Get("semantic-search", c.SemanticSearch)
	h.Get("", c.List)
	h.Post("", c.Create)
	h.Get(":id", c.Show)
	h.Put(":id", c.Update)
}

func (c *productController) Create(ctx *fiber.Ctx) error {
	var req dto.CreateProductRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.productService.Create(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success create product", res))
}

func (c *productController) Update(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil || id <= 0 {
		return fiber.NewError(fiber.StatusBadRequest, "invalid product id")
	}

	var req dto.UpdateProductRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	req.Id = uint(id)

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.productService.Update(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success update product", res))
}

func (c *productController) Show(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil || id <= 0 {
		return fiber.NewError(fiber.StatusBadRequest, "invalid product id")
	}

	res, err := c.productService.Show(ctx.Context(), uint(id))
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success show product", res))
}

func (c *productController) List(ctx *fiber.Ctx) error {
	res, err := c.productService.List(ctx.Context())
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success list products", res))
}

func (c *productController) SemanticSearch(ctx *fiber.Ctx) error {
	query := ctx.Query("q")
	if query == "" {
		return fiber.NewError(fiber.StatusBadRequest, "query parameter 'q' is required")
	}

	res, err := c.productService.SemanticSearch(ctx.Context(), query)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success search products", res))
}
