package controller

import (
	"mindgarden-be/internal/dto"
	"mindgarden-be/internal/pkg/serverutils"
	"mindgarden-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IQuizController interface {
	RegisterRoutes(r fiber.Router)
	Questions(ctx *fiber.Ctx) error
	Submit(ctx *fiber.Ctx) error
}

type quizController struct {
	service service.IQuizService
}

func NewQuizController(service service.IQuizService) IQuizController {
	return &quizController{service: service}
}

func (c *quizController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/quiz/v1")
	h.Get("questions", c.Questions)
	h.Post(":id/submit", c.Submit)
}

func (c *quizController) Questions(ctx *fiber.Ctx) error {
	res := c.service.Questions(ctx.Context())
	return ctx.JSON(serverutils.SuccessResponse("Success get quiz questions", res))
}

func (c *quizController) Submit(ctx *fiber.Ctx) error {
	var req dto.SubmitQuizRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.Submit(ctx.Context(), ctx.Params("id"), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success submit quiz", res))
}
