package service

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/boasnovas/associacao-backend/internal/models"
	bcryptPkg "github.com/boasnovas/associacao-backend/pkg/bcrypt"
	jwtPkg "github.com/boasnovas/associacao-backend/pkg/jwt"
)

var ErrInvalidCredentials = errors.New("email ou senha inválidos")

type AuthService struct {
	admins AdminStore
	mailer ResetMailer
	logger *zap.SugaredLogger
}

func NewAuthService(admins AdminStore, mailer ResetMailer, logger *zap.SugaredLogger) *AuthService {
	return &AuthService{
		admins: admins,
		mailer: mailer,
		logger: logger,
	}
}

func (s *AuthService) Login(ctx context.Context, req models.LoginRequest) (*models.AuthResponse, error) {
	admin, err := s.admins.GetByEmail(ctx, req.Email)
	if err != nil {
		return nil, ErrInvalidCredentials
	}

	if err := bcryptPkg.ComparePassword(admin.Password, req.Password); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := jwtPkg.GenerateToken(admin.Email, admin.ID, jwtPkg.PurposeSession, jwtPkg.SessionExpiry)
	if err != nil {
		return nil, fmt.Errorf("token generation failed: %w", err)
	}

	return &models.AuthResponse{
		Token: token,
		Admin: *admin,
	}, nil
}

// ForgotPassword envia o link de recuperação. Email desconhecido não gera
// erro: a resposta é idêntica para não revelar quais contas existem.
func (s *AuthService) ForgotPassword(ctx context.Context, email string) error {
	admin, err := s.admins.GetByEmail(ctx, email)
	if err != nil {
		return nil
	}

	resetToken, err := jwtPkg.GenerateToken(admin.Email, admin.ID, jwtPkg.PurposeRecovery, jwtPkg.RecoveryExpiry)
	if err != nil {
		return err
	}

	return s.mailer.SendPasswordResetEmail(admin.Email, resetToken)
}

// ExchangeRecoveryToken troca o token do link por uma sessão temporária de
// recuperação, o único tipo de sessão que autoriza a troca de senha.
func (s *AuthService) ExchangeRecoveryToken(ctx context.Context, token string) (string, error) {
	claims, err := jwtPkg.ValidateToken(token, jwtPkg.PurposeRecovery)
	if err != nil {
		return "", ErrInvalidLink
	}

	email, ok := claims["sub"].(string)
	if !ok {
		return "", ErrInvalidLink
	}

	admin, err := s.admins.GetByEmail(ctx, email)
	if err != nil {
		return "", ErrInvalidLink
	}

	return jwtPkg.GenerateToken(admin.Email, admin.ID, jwtPkg.PurposeRecoverySession, jwtPkg.RecoveryExpiry)
}

// UpdatePasswordWithSession troca a senha da conta dona da sessão de
// recuperação. A força da senha já foi validada pelo fluxo.
func (s *AuthService) UpdatePasswordWithSession(ctx context.Context, sessionToken, newPassword string) error {
	claims, err := jwtPkg.ValidateToken(sessionToken, jwtPkg.PurposeRecoverySession)
	if err != nil {
		return ErrInvalidLink
	}

	email, ok := claims["sub"].(string)
	if !ok {
		return ErrInvalidLink
	}

	admin, err := s.admins.GetByEmail(ctx, email)
	if err != nil {
		return ErrInvalidLink
	}

	hashedPassword, err := bcryptPkg.HashPassword(newPassword)
	if err != nil {
		return err
	}

	if err := s.admins.UpdatePassword(ctx, admin.ID, hashedPassword); err != nil {
		logStoreError(s.logger, "failed to update password", err)
		return fmt.Errorf("erro ao atualizar a senha: %w", err)
	}

	return nil
}
