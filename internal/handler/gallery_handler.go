package handler

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/boasnovas/associacao-backend/internal/models"
	"github.com/boasnovas/associacao-backend/internal/service"
	"github.com/boasnovas/associacao-backend/pkg/utils"
)

type GalleryHandler struct {
	galleryService *service.GalleryService
	validator      *utils.Validator
}

func NewGalleryHandler(galleryService *service.GalleryService, validator *utils.Validator) *GalleryHandler {
	return &GalleryHandler{
		galleryService: galleryService,
		validator:      validator,
	}
}

func (h *GalleryHandler) ListPhotos(c *fiber.Ctx) error {
	photos := h.galleryService.List(c.Context())
	return c.JSON(models.SuccessResponse(photos, "Galeria carregada"))
}

// CreatePhoto recebe o formulário multipart com os arquivos no campo
// "images"; a ordem de envio vira a ordem das URLs no álbum.
func (h *GalleryHandler) CreatePhoto(c *fiber.Ctx) error {
	var req models.GalleryPhotoRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Requisição inválida"))
	}

	if err := h.validator.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse(err.Error()))
	}

	files, err := formImages(c, "images")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse(err.Error()))
	}

	photos, err := h.galleryService.Create(c.Context(), req, files)
	if err != nil {
		return galleryError(c, err)
	}

	return c.JSON(models.SuccessResponse(photos, "Foto adicionada com sucesso"))
}

func (h *GalleryHandler) UpdatePhoto(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("ID de foto inválido"))
	}

	var req models.GalleryPhotoRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Requisição inválida"))
	}

	if err := h.validator.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse(err.Error()))
	}

	files, err := formImages(c, "images")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse(err.Error()))
	}

	photos, err := h.galleryService.Update(c.Context(), uint(id), req, files)
	if err != nil {
		return galleryError(c, err)
	}

	return c.JSON(models.SuccessResponse(photos, "Foto atualizada com sucesso"))
}

func (h *GalleryHandler) DeletePhoto(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("ID de foto inválido"))
	}

	photos, err := h.galleryService.Delete(c.Context(), uint(id))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse(err.Error()))
	}

	return c.JSON(models.SuccessResponse(photos, "Foto removida com sucesso"))
}

func galleryError(c *fiber.Ctx, err error) error {
	if errors.Is(err, service.ErrMissingFields) || errors.Is(err, service.ErrNoImages) {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse(err.Error()))
	}
	return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse(err.Error()))
}
