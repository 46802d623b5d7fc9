package controller

import (
	"errors"

	"ai-careercompass-be/internal/dto"
	"ai-careercompass-be/internal/pkg/serverutils"
	"ai-careercompass-be/internal/service"
	"ai-careercompass-be/pkg/llm"

	"github.com/gofiber/fiber/v2"
)

type IRecommenderController interface {
	RegisterRoutes(r fiber.Router)
	Start(ctx *fiber.Ctx) error
	Submit(ctx *fiber.Ctx) error
}

type recommenderController struct {
	recommenderService service.IRecommenderService
}

func NewRecommenderController(recommenderService service.IRecommenderService) IRecommenderController {
	return &recommenderController{
		recommenderService: recommenderService,
	}
}

func (c *recommenderController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/recommender/v1")
	h.Post("start", c.Start)
	h.Post("submit", c.Submit)
}

func (c *recommenderController) Start(ctx *fiber.Ctx) error {
	var req dto.StartRecommendationRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.recommenderService.Start(ctx.Context(), &req)
	if err != nil {
		return mapRecommenderError(ctx, err)
	}

	return ctx.JSON(serverutils.SuccessResponse("Recommendation session started", res))
}

func (c *recommenderController) Submit(ctx *fiber.Ctx) error {
	var req dto.SubmitAnswersRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.recommenderService.Submit(ctx.Context(), &req)
	if err != nil {
		return mapRecommenderError(ctx, err)
	}

	return ctx.JSON(serverutils.SuccessResponse("Recommendations resolved", res))
}

// mapRecommenderError translates service errors into stable failure codes for
// clients. Session errors are always the caller's fault, never the server's.
func mapRecommenderError(ctx *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, service.ErrInvalidSession):
		return ctx.Status(fiber.StatusBadRequest).
			JSON(serverutils.ErrorCodeResponse(fiber.StatusBadRequest, "invalid_or_expired_session", err.Error()))
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
