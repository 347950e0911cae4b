package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/boasnovas/associacao-backend/internal/models"
	"github.com/boasnovas/associacao-backend/internal/service"
	"github.com/boasnovas/associacao-backend/pkg/utils"
)

type AuthHandler struct {
	authService *service.AuthService
	validator   *utils.Validator
}

func NewAuthHandler(authService *service.AuthService, validator *utils.Validator) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		validator:   validator,
	}
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req models.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Requisição inválida"))
	}

	if err := h.validator.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse(err.Error()))
	}

	resp, err := h.authService.Login(c.Context(), req)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(models.ErrorResponse(err.Error()))
	}

	return c.JSON(models.SuccessResponse(resp, "Login realizado com sucesso"))
}

// ForgotPassword responde 200 mesmo para email desconhecido.
func (h *AuthHandler) ForgotPassword(c *fiber.Ctx) error {
	var req models.ForgotPasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Requisição inválida"))
	}

	if err := h.validator.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse(err.Error()))
	}

	if err := h.authService.ForgotPassword(c.Context(), req.Email); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse("Erro ao enviar o email de redefinição"))
	}

	return c.JSON(models.SuccessResponse(nil, "Se o email existir, o link de redefinição foi enviado"))
}

// Recovery valida o link de redefinição que o navegador recebeu e devolve
// o estado do fluxo; quando válido, inclui a sessão temporária usada na
// troca de senha.
func (h *AuthHandler) Recovery(c *fiber.Ctx) error {
	var req models.RecoveryRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Requisição inválida"))
	}

	if err := h.validator.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse(err.Error()))
	}

	flow := service.NewRecoveryFlow(h.authService)
	state := flow.Start(c.Context(), req.LinkURL)

	resp := models.RecoveryResponse{
		State:        string(state),
		SessionToken: flow.SessionToken(),
		Error:        flow.Message(),
	}

	if state == service.RecoveryInvalidLink {
		// terminal: sem retry automático, só um link novo resolve
		return c.Status(fiber.StatusUnauthorized).JSON(models.Response{
			Success: false,
			Error:   flow.Message(),
			Data:    resp,
		})
	}

	return c.JSON(models.SuccessResponse(resp, "Link validado"))
}

// ResetPassword troca a senha usando a sessão de recuperação do header.
func (h *AuthHandler) ResetPassword(c *fiber.Ctx) error {
	var req models.ResetPasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Requisição inválida"))
	}

	sessionToken := bearerToken(c)
	if sessionToken == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(models.ErrorResponse(service.ErrInvalidLink.Error()))
	}

	flow := service.ResumeRecoveryFlow(h.authService, sessionToken)
	state, err := flow.SubmitPassword(c.Context(), req.Password, req.ConfirmPassword)
	if err != nil {
		status := fiber.StatusBadRequest
		if errors.Is(err, service.ErrInvalidLink) {
			status = fiber.StatusUnauthorized
		}
		return c.Status(status).JSON(models.ErrorResponse(err.Error()))
	}

	return c.JSON(models.SuccessResponse(models.RecoveryResponse{State: string(state)},
		"Senha atualizada com sucesso! Redirecionando para a página de login..."))
}

func bearerToken(c *fiber.Ctx) string {
	authHeader := c.Get("Authorization")
	const prefix = "Bearer "
	if len(authHeader) <= len(prefix) || authHeader[:len(prefix)] != prefix {
		return ""
	}
	return authHeader[len(prefix):]
}
