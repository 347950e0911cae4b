package handler

import (
	"github.com/gofiber/fiber/v2"

	"github.com/boasnovas/associacao-backend/internal/models"
	"github.com/boasnovas/associacao-backend/pkg/email"
	"github.com/boasnovas/associacao-backend/pkg/utils"
)

type ContactHandler struct {
	emailService *email.EmailService
	validator    *utils.Validator
}

func NewContactHandler(emailService *email.EmailService, validator *utils.Validator) *ContactHandler {
	return &ContactHandler{
		emailService: emailService,
		validator:    validator,
	}
}

// SendMessage repassa o formulário de contato por email; nada é gravado.
func (h *ContactHandler) SendMessage(c *fiber.Ctx) error {
	var req models.ContactRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Requisição inválida"))
	}

	if err := h.validator.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse(err.Error()))
	}

	if err := h.emailService.SendContactMessage(req.Name, req.Email, req.Phone, req.Subject, req.Message); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse("Erro ao enviar a mensagem, tente novamente"))
	}

	return c.JSON(models.SuccessResponse(nil, "Mensagem enviada! Entraremos em contato em breve"))
}
