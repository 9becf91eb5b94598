package controller

import (
	"github.com/gofiber/fiber/v2"

	"study-planner-be/internal/dto"
	"study-planner-be/internal/pkg/serverutils"
	"study-planner-be/internal/service"
)

type IProfileController interface {
	RegisterRoutes(r fiber.Router)
	GetSurvey(ctx *fiber.Ctx) error
	SubmitSurvey(ctx *fiber.Ctx) error
	UpdateConfidence(ctx *fiber.Ctx) error
	GetProfile(ctx *fiber.Ctx) error
}

type profileController struct {
	service service.IProfileService
}

func NewProfileController(service service.IProfileService) IProfileController {
	return &profileController{service: service}
}

func (c *profileController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/profile/v1")
	h.Use(serverutils.SessionMiddleware)
	h.Get("", c.GetProfile)
	h.Get("/survey", c.GetSurvey)
	h.Post("/survey", c.SubmitSurvey)
	h.Put("/confidence", c.UpdateConfidence)
}

func (c *profileController) GetSurvey(ctx *fiber.Ctx) error {
	return ctx.JSON(serverutils.SuccessResponse("Success get survey", c.service.SurveyQuestions()))
}

func (c *profileController) SubmitSurvey(ctx *fiber.Ctx) error {
	sessionID := ctx.Locals("session_id").(string)

	var req dto.SubmitSurveyRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.SubmitSurvey(ctx.Context(), sessionID, &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Survey complete", res))
}

func (c *profileController) UpdateConfidence(ctx *fiber.Ctx) error {
	sessionID := ctx.Locals("session_id").(string)

	var req dto.UpdateConfidenceRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	if err := c.service.UpdateConfidence(ctx.Context(), sessionID, &req); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success update confidence", nil))
}

func (c *profileController) GetProfile(ctx *fiber.Ctx) error {
	sessionID := ctx.Locals("session_id").(string)

	res, err := c.service.GetProfile(ctx.Context(), sessionID)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success get profile", res))
}
