package controller

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"ytchat-web/internal/dto"
	"ytchat-web/internal/pkg/serverutils"
	"ytchat-web/internal/service"
)

type IVideoController interface {
	RegisterRoutes(r fiber.Router)
	Process(ctx *fiber.Ctx) error
	Discard(ctx *fiber.Ctx) error
}

type videoController struct {
	service service.IVideoService
}

func NewVideoController(service service.IVideoService) IVideoController {
	return &videoController{service: service}
}

func (c *videoController) RegisterRoutes(r fiber.Router) {
	v := r.Group("/v1/video")
	v.Post("/process", c.Process)

	s := r.Group("/v1/session")
	s.Delete("/:sessionId", c.Discard)
}

func (c *videoController) Process(ctx *fiber.Ctx) error {
	var req dto.SubmitVideoRequest
	if err := ctx.BodyParser(&req); err != nil {
		return dto.NewValidationError("Invalid request body")
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.Submit(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Video processed successfully", res))
}

func (c *videoController) Discard(ctx *fiber.Ctx) error {
	sessionId, err := uuid.Parse(ctx.Params("sessionId"))
	if err != nil {
		return dto.NewValidationError("Invalid session id")
	}

	if err := c.service.Discard(sessionId); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse[any]("Session discarded", nil))
}
