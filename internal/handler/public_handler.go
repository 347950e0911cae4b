package handler

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/boasnovas/associacao-backend/internal/models"
	"github.com/boasnovas/associacao-backend/internal/service"
)

// PublicHandler serve as páginas públicas do site: agenda de próximas
// ações e galeria de fotos. Só leitura, sem autenticação.
type PublicHandler struct {
	eventService   *service.EventService
	galleryService *service.GalleryService
}

func NewPublicHandler(eventService *service.EventService, galleryService *service.GalleryService) *PublicHandler {
	return &PublicHandler{
		eventService:   eventService,
		galleryService: galleryService,
	}
}

// GetAgenda devolve só eventos futuros, filtrados por ?type= (um tipo,
// "upcoming" ou "all"), mais o conjunto de categorias presentes para os
// botões de filtro.
func (h *PublicHandler) GetAgenda(c *fiber.Ctx) error {
	filter := c.Query("type", service.FilterAll)

	events := h.eventService.List(c.Context())
	upcoming := service.UpcomingEvents(events, time.Now(), filter)

	return c.JSON(models.SuccessResponse(fiber.Map{
		"events":     upcoming,
		"categories": service.CategoriesPresent(events),
	}, "Agenda carregada"))
}

// GetGallery lista os álbuns (mais recentes primeiro), filtrados por
// ?action_type=. O card usa a primeira URL como capa.
func (h *PublicHandler) GetGallery(c *fiber.Ctx) error {
	filter := c.Query("action_type", service.FilterAll)

	photos := h.galleryService.List(c.Context())
	filtered := service.FilterByAction(photos, filter)

	return c.JSON(models.SuccessResponse(filtered, "Galeria carregada"))
}

// GetGalleryPhoto devolve um álbum com a sequência completa de imagens,
// na ordem gravada; é o que o lightbox percorre.
func (h *PublicHandler) GetGalleryPhoto(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("ID de foto inválido"))
	}

	photo, err := h.galleryService.GetByID(c.Context(), uint(id))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(models.ErrorResponse("Foto não encontrada"))
	}

	return c.JSON(models.SuccessResponse(photo, "Foto carregada"))
}
