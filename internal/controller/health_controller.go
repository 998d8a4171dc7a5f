package controller

import (
	"github.com/gofiber/fiber/v2"

	"paddy-kbs-be/internal/dto"
	"paddy-kbs-be/internal/pkg/serverutils"
	"paddy-kbs-be/internal/repository/contract"
)

type IHealthController interface {
	RegisterRoutes(r fiber.Router)
	Health(ctx *fiber.Ctx) error
}

type healthController struct {
	store contract.FactStore
}

func NewHealthController(store contract.FactStore) IHealthController {
	return &healthController{store: store}
}

func (c *healthController) RegisterRoutes(r fiber.Router) {
	r.Get("/health", c.Health)
}

func (c *healthController) Health(ctx *fiber.Ctx) error {
	if err := c.store.Ping(ctx.UserContext()); err != nil {
		res := serverutils.ErrorResponse(fiber.StatusServiceUnavailable, err.Error())
		res.Data = dto.HealthResponse{Status: "degraded", FactStore: "unreachable"}
		return ctx.Status(fiber.StatusServiceUnavailable).JSON(res)
	}
	return ctx.JSON(serverutils.SuccessResponse("OK", dto.HealthResponse{Status: "ok", FactStore: "reachable"}))
}
