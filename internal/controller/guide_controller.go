package controller

import (
	"mindgarden-be/internal/pkg/serverutils"
	"mindgarden-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IGuideController interface {
	RegisterRoutes(r fiber.Router)
	Show(ctx *fiber.Ctx) error
}

type guideController struct {
	service service.IGuideService
}

func NewGuideController(service service.IGuideService) IGuideController {
	return &guideController{service: service}
}

func (c *guideController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/guide/v1")
	h.Get(":id", c.Show)
}

func (c *guideController) Show(ctx *fiber.Ctx) error {
	res, err := c.service.Get(ctx.Context(), ctx.Params("id"))
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get wellness guide", res))
}
