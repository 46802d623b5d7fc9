package controller

import (
	"errors"

	"ai-careercompass-be/internal/dto"
	"ai-careercompass-be/internal/pkg/serverutils"
	"ai-careercompass-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type ISuggesterController interface {
	RegisterRoutes(r fiber.Router)
	Start(ctx *fiber.Ctx) error
	Answer(ctx *fiber.Ctx) error
}

type suggesterController struct {
	suggesterService service.ISuggesterService
}

func NewSuggesterController(suggesterService service.ISuggesterService) ISuggesterController {
	return &suggesterController{
		suggesterService: suggesterService,
	}
}

func (c *suggesterController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/suggester/v1")
	h.Get("start", c.Start)
	h.Post("answer", c.Answer)
}

func (c *suggesterController) Start(ctx *fiber.Ctx) error {
	res, err := c.suggesterService.Start(ctx.Context())
	if err != nil {
		return mapLLMError(ctx, err)
	}

	return ctx.JSON(serverutils.SuccessResponse("Career interview started", res))
}

func (c *suggesterController) Answer(ctx *fiber.Ctx) error {
	var req dto.SuggesterAnswerRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.suggesterService.Answer(ctx.Context(), &req)
	if err != nil {
		if errors.Is(err, service.ErrInvalidQuestionIndex) {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		return mapLLMError(ctx, err)
	}

	return ctx.JSON(serverutils.SuccessResponse("Answer recorded", res))
}
