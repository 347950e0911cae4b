package handler

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/boasnovas/associacao-backend/internal/models"
	"github.com/boasnovas/associacao-backend/internal/service"
	"github.com/boasnovas/associacao-backend/pkg/utils"
)

type EventHandler struct {
	eventService *service.EventService
	validator    *utils.Validator
}

func NewEventHandler(eventService *service.EventService, validator *utils.Validator) *EventHandler {
	return &EventHandler{
		eventService: eventService,
		validator:    validator,
	}
}

// ListEvents serve o dashboard; a lista pública filtrada fica na agenda.
func (h *EventHandler) ListEvents(c *fiber.Ctx) error {
	events := h.eventService.List(c.Context())
	return c.JSON(models.SuccessResponse(events, "Eventos carregados"))
}

func (h *EventHandler) CreateEvent(c *fiber.Ctx) error {
	var req models.EventRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Requisição inválida"))
	}

	if err := h.validator.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse(err.Error()))
	}

	file, err := formImage(c, "image")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse(err.Error()))
	}

	events, err := h.eventService.Create(c.Context(), req, file)
	if err != nil {
		return eventError(c, err)
	}

	// a resposta é a lista recarregada do banco, não um merge local
	return c.JSON(models.SuccessResponse(events, "Evento criado com sucesso"))
}

func (h *EventHandler) UpdateEvent(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("ID de evento inválido"))
	}

	var req models.EventRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Requisição inválida"))
	}

	if err := h.validator.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse(err.Error()))
	}

	file, err := formImage(c, "image")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse(err.Error()))
	}

	events, err := h.eventService.Update(c.Context(), uint(id), req, file)
	if err != nil {
		return eventError(c, err)
	}

	return c.JSON(models.SuccessResponse(events, "Evento atualizado com sucesso"))
}

func (h *EventHandler) DeleteEvent(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("ID de evento inválido"))
	}

	events, err := h.eventService.Delete(c.Context(), uint(id))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse(err.Error()))
	}

	return c.JSON(models.SuccessResponse(events, "Evento removido com sucesso"))
}

func eventError(c *fiber.Ctx, err error) error {
	if errors.Is(err, service.ErrMissingFields) {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse(err.Error()))
	}
	return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse(err.Error()))
}
