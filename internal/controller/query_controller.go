package controller

import (
	"net/url"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"

	"paddy-kbs-be/internal/pkg/serverutils"
	"paddy-kbs-be/internal/service"
)

type IQueryController interface {
	RegisterRoutes(r fiber.Router)
	DiseaseDetails(ctx *fiber.Ctx) error
	RecommendedTreatments(ctx *fiber.Ctx) error
	GeneralTreatments(ctx *fiber.Ctx) error
	PipelineRuns(ctx *fiber.Ctx) error
	DiseaseAgent(ctx *fiber.Ctx) error
	DiseaseEnvironment(ctx *fiber.Ctx) error
	GeneralGuidelines(ctx *fiber.Ctx) error
}

type queryController struct {
	service service.IQueryService
}

func NewQueryController(service service.IQueryService) IQueryController {
	return &queryController{service: service}
}

func (c *queryController) RegisterRoutes(r fiber.Router) {
	u := r.Group("/user/:userId")
	u.Get("/disease-details", c.DiseaseDetails)
	u.Get("/r-treatments-suitable", c.RecommendedTreatments)
	u.Get("/general-treatments", c.GeneralTreatments)
	u.Get("/runs", c.PipelineRuns)

	r.Get("/disease-agent/:disease", c.DiseaseAgent)
	r.Get("/disease-environment/:disease", c.DiseaseEnvironment)
	r.Get("/general-guidelines", c.GeneralGuidelines)
}

func (c *queryController) DiseaseDetails(ctx *fiber.Ctx) error {
	res, err := c.service.DiseaseDetails(ctx.UserContext(), param(ctx, "userId"))
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success get disease details", res))
}

func (c *queryController) RecommendedTreatments(ctx *fiber.Ctx) error {
	res, err := c.service.RecommendedTreatments(ctx.UserContext(), param(ctx, "userId"))
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success get recommended treatments", res))
}

func (c *queryController) GeneralTreatments(ctx *fiber.Ctx) error {
	res, err := c.service.GeneralTreatments(ctx.UserContext(), param(ctx, "userId"))
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success get general treatments", res))
}

func (c *queryController) PipelineRuns(ctx *fiber.Ctx) error {
	res, err := c.service.PipelineRuns(ctx.UserContext(), param(ctx, "userId"))
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success get pipeline runs", res))
}

func (c *queryController) DiseaseAgent(ctx *fiber.Ctx) error {
	res, err := c.service.DiseaseAgent(ctx.UserContext(), param(ctx, "disease"))
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success get disease agent", res))
}

func (c *queryController) DiseaseEnvironment(ctx *fiber.Ctx) error {
	res, err := c.service.DiseaseEnvironment(ctx.UserContext(), param(ctx, "disease"))
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success get disease environment", res))
}

func (c *queryController) GeneralGuidelines(ctx *fiber.Ctx) error {
	res, err := c.service.GeneralGuidelines(ctx.UserContext())
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success get general guidelines", res))
}

// param returns a path parameter with percent-escapes decoded, so
// "/disease-agent/Rice%20Blast" yields "Rice Blast".
func param(ctx *fiber.Ctx, key string) string {
	raw := utils.CopyString(ctx.Params(key))
	if v, err := url.PathUnescape(raw); err == nil {
		return v
	}
	return raw
}
