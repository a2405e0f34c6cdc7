package controller

import (
	"mindgarden-be/internal/dto"
	"mindgarden-be/internal/pkg/serverutils"
	"mindgarden-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type ICheckInController interface {
	RegisterRoutes(r fiber.Router)
	Analyze(ctx *fiber.Ctx) error
	History(ctx *fiber.Ctx) error
}

type checkInController struct {
	service service.ICheckInService
}

func NewCheckInController(service service.ICheckInService) ICheckInController {
	return &checkInController{service: service}
}

func (c *checkInController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/checkin/v1")
	h.Post(":id/analyze", c.Analyze)
	h.Get(":id/history", c.History)
}

func (c *checkInController) Analyze(ctx *fiber.Ctx) error {
	var req dto.AnalyzeRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.Analyze(ctx.Context(), ctx.Params("id"), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success analyze mood", res))
}

func (c *checkInController) History(ctx *fiber.Ctx) error {
	res, err := c.service.History(ctx.Context(), ctx.Params("id"))
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get check-in history", res))
}
