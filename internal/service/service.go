package service

import (
	"context"
	"errors"
	"io"

	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"

	"github.com/boasnovas/associacao-backend/internal/models"
)

// Erros de validação, detectados antes de qualquer chamada de rede.
var (
	ErrMissingFields = errors.New("preencha os campos obrigatórios")
	ErrNoImages      = errors.New("a galeria precisa de pelo menos uma imagem")
	ErrInvalidLink   = errors.New("link inválido ou expirado, solicite um novo link de redefinição de senha")
)

// FileUpload é um arquivo recebido no formulário, já aberto pelo handler.
type FileUpload struct {
	Filename    string
	ContentType string
	Reader      io.Reader
}

// Os serviços dependem destes contratos, não dos repositórios concretos,
// para que os testes possam injetar fakes em memória.

type EventStore interface {
	List(ctx context.Context) ([]models.Event, error)
	GetByID(ctx context.Context, id uint) (*models.Event, error)
	Create(ctx context.Context, event *models.Event) error
	Update(ctx context.Context, event *models.Event) error
	Delete(ctx context.Context, id uint) error
}

type GalleryStore interface {
	List(ctx context.Context) ([]models.GalleryPhoto, error)
	GetByID(ctx context.Context, id uint) (*models.GalleryPhoto, error)
	Create(ctx context.Context, photo *models.GalleryPhoto) error
	Update(ctx context.Context, photo *models.GalleryPhoto) error
	Delete(ctx context.Context, id uint) error
}

type AdminStore interface {
	GetByEmail(ctx context.Context, email string) (*models.Admin, error)
	UpdatePassword(ctx context.Context, id uint, hashedPassword string) error
}

type ResetMailer interface {
	SendPasswordResetEmail(email, resetToken string) error
}

// logStoreError registra falhas de persistência com código/detalhe/hint do
// Postgres quando disponíveis, o que diagnostica violações de enum.
func logStoreError(logger *zap.SugaredLogger, msg string, err error) {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		logger.Errorw(msg,
			"error", pgErr.Message,
			"code", pgErr.Code,
			"detail", pgErr.Detail,
			"hint", pgErr.Hint,
		)
		return
	}
	logger.Errorw(msg, "error", err)
}
