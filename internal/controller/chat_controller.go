package controller

import (
	"member-portal-be/internal/dto"
	"member-portal-be/internal/pkg/serverutils"
	"member-portal-be/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IChatController interface {
	RegisterRoutes(r fiber.Router)
	Ask(ctx *fiber.Ctx) error
	GetSuggestions(ctx *fiber.Ctx) error
	GetCategories(ctx *fiber.Ctx) error
}

type chatController struct {
	service  service.IChatService
	validate *validator.Validate
}

func NewChatController(service service.IChatService) IChatController {
	return &chatController{
		service:  service,
		validate: validator.New(),
	}
}

func (c *chatController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/chat")
	h.Post("/ask", c.Ask)
	h.Get("/suggestions", c.GetSuggestions)
	h.Get("/categories", c.GetCategories)
}

func (c *chatController) Ask(ctx *fiber.Ctx) error {
	var request dto.AskChatRequest
	if err := ctx.BodyParser(&request); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "invalid request body"))
	}
	if err := c.validate.Struct(&request); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, err.Error()))
	}

	// First turn: mint an opaque session id the widget echoes back on
	// subsequent turns. The engine never interprets it.
	if request.SessionId == "" {
		request.SessionId = uuid.NewString()
	}

	res, err := c.service.Ask(ctx.Context(), &request)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse(500, err.Error()))
	}
	return ctx.JSON(res)
}

func (c *chatController) GetSuggestions(ctx *fiber.Ctx) error {
	return ctx.JSON(fiber.Map{"suggestions": c.service.GetSuggestions(ctx.Context())})
}

func (c *chatController) GetCategories(ctx *fiber.Ctx) error {
	categories, err := c.service.GetCategories(ctx.Context())
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse(500, err.Error()))
	}
	return ctx.JSON(fiber.Map{"categories": categories})
}
