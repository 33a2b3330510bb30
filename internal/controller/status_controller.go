package controller

import (
	"github.com/gofiber/fiber/v2"

	"ytchat-web/internal/pkg/serverutils"
	"ytchat-web/internal/service"
)

type IStatusController interface {
	RegisterRoutes(r fiber.Router)
	Status(ctx *fiber.Ctx) error
}

type statusController struct {
	monitor service.IMonitorService
}

func NewStatusController(monitor service.IMonitorService) IStatusController {
	return &statusController{monitor: monitor}
}

func (c *statusController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/v1/status")
	h.Get("", c.Status)
}

// Status returns the current connectivity snapshot. The page calls this once
// on load and then listens on the websocket channel for changes.
func (c *statusController) Status(ctx *fiber.Ctx) error {
	return ctx.JSON(serverutils.SuccessResponse("Success get backend status", c.monitor.Snapshot()))
}
