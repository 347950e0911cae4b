package handler

import (
	"errors"
	"mime/multipart"

	"github.com/gofiber/fiber/v2"

	"github.com/boasnovas/associacao-backend/internal/service"
	"github.com/boasnovas/associacao-backend/pkg/utils"
)

const maxImageSize = 10 * 1024 * 1024 // 10MB

var (
	errInvalidFileType = errors.New("formato de imagem não suportado")
	errFileTooLarge    = errors.New("imagem maior que 10MB")
)

// formImage lê um upload opcional de imagem do formulário. Campo ausente
// não é erro: retorna nil e o serviço segue sem imagem.
func formImage(c *fiber.Ctx, field string) (*service.FileUpload, error) {
	header, err := c.FormFile(field)
	if err != nil {
		return nil, nil
	}
	return openUpload(header)
}

// formImages lê todos os uploads de um campo múltiplo, preservando a ordem
// de envio do formulário.
func formImages(c *fiber.Ctx, field string) ([]service.FileUpload, error) {
	form, err := c.MultipartForm()
	if err != nil {
		return nil, nil
	}

	headers := form.File[field]
	uploads := make([]service.FileUpload, 0, len(headers))
	for _, header := range headers {
		upload, err := openUpload(header)
		if err != nil {
			return nil, err
		}
		uploads = append(uploads, *upload)
	}
	return uploads, nil
}

func openUpload(header *multipart.FileHeader) (*service.FileUpload, error) {
	contentType := header.Header.Get("Content-Type")
	if !utils.IsSupportedImageType(contentType) {
		return nil, errInvalidFileType
	}
	if header.Size > maxImageSize {
		return nil, errFileTooLarge
	}

	src, err := header.Open()
	if err != nil {
		return nil, err
	}

	// o multipart form é liberado pelo fiber no fim do handler
	return &service.FileUpload{
		Filename:    header.Filename,
		ContentType: contentType,
		Reader:      src,
	}, nil
}
