package controller

import (
	"github.com/gofiber/fiber/v2"

	"paddy-kbs-be/internal/dto"
	"paddy-kbs-be/internal/entity"
	"paddy-kbs-be/internal/pkg/serverutils"
	"paddy-kbs-be/internal/service"
)

type IAdvisoryController interface {
	RegisterRoutes(r fiber.Router)
	SubmitInput(ctx *fiber.Ctx) error
	Reevaluate(ctx *fiber.Ctx) error
}

type advisoryController struct {
	service service.IAdvisoryService
}

func NewAdvisoryController(service service.IAdvisoryService) IAdvisoryController {
	return &advisoryController{service: service}
}

func (c *advisoryController) RegisterRoutes(r fiber.Router) {
	r.Post("/submit-input", c.SubmitInput)
	r.Post("/user/:userId/evaluate", c.Reevaluate)
}

// SubmitInput answers with the bare {success, instance} body existing
// clients read.
func (c *advisoryController) SubmitInput(ctx *fiber.Ctx) error {
	var req dto.SubmitInputRequest
	if err := ctx.BodyParser(&req); err != nil {
		return entity.NewError(entity.KindValidation, "disease, budget and location are required", err)
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.Submit(ctx.UserContext(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(res)
}

func (c *advisoryController) Reevaluate(ctx *fiber.Ctx) error {
	res, err := c.service.Reevaluate(ctx.UserContext(), param(ctx, "userId"))
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Session evaluated", res))
}
