package controller

import (
	"errors"

	"ai-careercompass-be/internal/dto"
	"ai-careercompass-be/internal/pkg/serverutils"
	"ai-careercompass-be/internal/service"
	"ai-careercompass-be/pkg/llm"

	"github.com/gofiber/fiber/v2"
)

type IChatbotController interface {
	RegisterRoutes(r fiber.Router)
	SendMessage(ctx *fiber.Ctx) error
}

type chatbotController struct {
	chatbotService service.IChatbotService
}

func NewChatbotController(chatbotService service.IChatbotService) IChatbotController {
	return &chatbotController{
		chatbotService: chatbotService,
	}
}

func (c *chatbotController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/chatbot/v1")
	h.Post("message", c.SendMessage)
}

func (c *chatbotController) SendMessage(ctx *fiber.Ctx) error {
	var req dto.ChatMessageRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.chatbotService.SendMessage(ctx.Context(), &req)
	if err != nil {
		return mapLLMError(ctx, err)
	}

	return ctx.JSON(serverutils.SuccessResponse("Reply generated", res))
}

// mapLLMError turns provider failures into the statuses clients retry on.
func mapLLMError(ctx *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, llm.ErrRateLimited):
		return ctx.Status(fiber.StatusTooManyRequests).
			JSON(serverutils.ErrorCodeResponse(fiber.StatusTooManyRequests, "rate_limited", err.Error()))
	case errors.Is(err, llm.ErrUnavailable):
		return ctx.Status(fiber.StatusServiceUnavailable).
			JSON(serverutils.ErrorCodeResponse(fiber.StatusServiceUnavailable, "upstream_unavailable", err.Error()))
	default:
		return err
	}
}
