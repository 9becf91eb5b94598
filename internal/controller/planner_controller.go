package controller

import (
	"github.com/gofiber/fiber/v2"

	"study-planner-be/internal/dto"
	"study-planner-be/internal/pkg/serverutils"
	"study-planner-be/internal/service"
)

type IPlannerController interface {
	RegisterRoutes(r fiber.Router)
	ProcessDocument(ctx *fiber.Ctx) error
	ListTopics(ctx *fiber.Ctx) error
	ResetTopics(ctx *fiber.Ctx) error
	GenerateSchedule(ctx *fiber.Ctx) error
	ExportSchedule(ctx *fiber.Ctx) error
	AddExam(ctx *fiber.Ctx) error
	ListExams(ctx *fiber.Ctx) error
}

type plannerController struct {
	service service.IPlannerService
}

func NewPlannerController(service service.IPlannerService) IPlannerController {
	return &plannerController{service: service}
}

func (c *plannerController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/planner/v1")
	h.Use(serverutils.SessionMiddleware)
	h.Post("/documents", c.ProcessDocument)
	h.Get("/topics", c.ListTopics)
	h.Delete("/topics", c.ResetTopics)
	h.Post("/schedule", c.GenerateSchedule)
	h.Get("/schedule/export", c.ExportSchedule)
	h.Post("/exams", c.AddExam)
	h.Get("/exams", c.ListExams)
}

func (c *plannerController) ProcessDocument(ctx *fiber.Ctx) error {
	sessionID := ctx.Locals("session_id").(string)

	subject := ctx.FormValue("subject")
	if subject == "" {
		return fiber.NewError(fiber.StatusBadRequest, "subject is required")
	}

	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "file is required")
	}
	file, err := fileHeader.Open()
	if err != nil {
		return err
	}
	defer file.Close()

	res, err := c.service.ProcessDocument(ctx.Context(), sessionID, subject, fileHeader.Filename, file)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success process document", res))
}

func (c *plannerController) ListTopics(ctx *fiber.Ctx) error {
	sessionID := ctx.Locals("session_id").(string)

	res, err := c.service.ListTopics(ctx.Context(), sessionID)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success list topics", res))
}

func (c *plannerController) ResetTopics(ctx *fiber.Ctx) error {
	sessionID := ctx.Locals("session_id").(string)

	if err := c.service.ResetTopics(ctx.Context(), sessionID); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("All topics cleared", nil))
}

func (c *plannerController) GenerateSchedule(ctx *fiber.Ctx) error {
	sessionID := ctx.Locals("session_id").(string)

	var req dto.GenerateScheduleRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.GenerateSchedule(ctx.Context(), sessionID, &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success generate schedule", res))
}

func (c *plannerController) ExportSchedule(ctx *fiber.Ctx) error {
	sessionID := ctx.Locals("session_id").(string)

	format := ctx.Query("format", "csv")
	res, err := c.service.Export(ctx.Context(), sessionID, format)
	if err != nil {
		return err
	}

	ctx.Set(fiber.HeaderContentType, res.ContentType)
	ctx.Set(fiber.HeaderContentDisposition, `attachment; filename="`+res.Filename+`"`)
	return ctx.Send(res.Body)
}

func (c *plannerController) AddExam(ctx *fiber.Ctx) error {
	sessionID := ctx.Locals("session_id").(string)

	var req dto.AddExamRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	if err := c.service.AddExam(ctx.Context(), sessionID, &req); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success save exam", nil))
}

func (c *plannerController) ListExams(ctx *fiber.Ctx) error {
	sessionID := ctx.Locals("session_id").(string)

	res, err := c.service.ListExams(ctx.Context(), sessionID)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success list exams", res))
}
