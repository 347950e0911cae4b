package service

import (
	"context"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/boasnovas/associacao-backend/internal/models"
	"github.com/boasnovas/associacao-backend/pkg/storage"
	"github.com/boasnovas/associacao-backend/pkg/utils"
)

type GalleryService struct {
	gallery GalleryStore
	storage storage.ObjectStorage
	logger  *zap.SugaredLogger
}

func NewGalleryService(gallery GalleryStore, objStorage storage.ObjectStorage, logger *zap.SugaredLogger) *GalleryService {
	return &GalleryService{
		gallery: gallery,
		storage: objStorage,
		logger:  logger,
	}
}

// List retorna os álbuns da mais recente para a mais antiga. Registros
// anteriores ao formato multi-imagem podem vir com image_urls nulo; a
// leitura normaliza para slice vazio, nunca nil.
func (s *GalleryService) List(ctx context.Context) []models.GalleryPhoto {
	photos, err := s.gallery.List(ctx)
	if err != nil {
		logStoreError(s.logger, "failed to load gallery", err)
		return []models.GalleryPhoto{}
	}
	if photos == nil {
		photos = []models.GalleryPhoto{}
	}
	for i := range photos {
		if photos[i].ImageURLs == nil {
			photos[i].ImageURLs = []string{}
		}
	}
	return photos
}

func (s *GalleryService) GetByID(ctx context.Context, id uint) (*models.GalleryPhoto, error) {
	photo, err := s.gallery.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("foto não encontrada: %w", err)
	}
	if photo.ImageURLs == nil {
		photo.ImageURLs = []string{}
	}
	return photo, nil
}

// Create exige pelo menos uma imagem, álbum vazio não é válido. Os
// uploads correm em paralelo, mas a sequência de URLs persistida segue a
// ordem de envio, não a ordem de término.
func (s *GalleryService) Create(ctx context.Context, req models.GalleryPhotoRequest, files []FileUpload) ([]models.GalleryPhoto, error) {
	if req.Title == "" || req.DateTaken == "" {
		return nil, ErrMissingFields
	}
	if len(files) == 0 {
		return nil, ErrNoImages
	}

	urls, keys, err := s.uploadAll(ctx, files)
	if err != nil {
		return nil, err
	}

	photo := &models.GalleryPhoto{
		Title:       req.Title,
		Description: req.Description,
		ImageURLs:   urls,
		ActionType:  req.ActionType,
		DateTaken:   req.DateTaken,
	}

	if err := s.gallery.Create(ctx, photo); err != nil {
		logStoreError(s.logger, "failed to save gallery photo", err)
		for _, key := range keys {
			_ = s.storage.Delete(ctx, key)
		}
		return nil, fmt.Errorf("erro ao salvar foto: %w", err)
	}

	return s.List(ctx), nil
}

// Update substitui o registro inteiro. Com arquivos novos, o conjunto
// anterior de URLs é descartado por completo (sem merge); sem arquivos,
// vale o estado final enviado pelo editor ou, na ausência dele, as URLs
// já gravadas.
func (s *GalleryService) Update(ctx context.Context, id uint, req models.GalleryPhotoRequest, files []FileUpload) ([]models.GalleryPhoto, error) {
	if req.Title == "" || req.DateTaken == "" {
		return nil, ErrMissingFields
	}

	existing, err := s.gallery.GetByID(ctx, id)
	if err != nil {
		logStoreError(s.logger, "gallery photo not found for update", err)
		return nil, fmt.Errorf("foto não encontrada: %w", err)
	}

	var urls []string
	var uploadedKeys []string
	switch {
	case len(files) > 0:
		urls, uploadedKeys, err = s.uploadAll(ctx, files)
		if err != nil {
			return nil, err
		}
	case req.ImageURLs != nil:
		urls = req.ImageURLs
	default:
		urls = existing.ImageURLs
	}
	if urls == nil {
		urls = []string{}
	}

	photo := &models.GalleryPhoto{
		ID:          existing.ID,
		Title:       req.Title,
		Description: req.Description,
		ImageURLs:   urls,
		ActionType:  req.ActionType,
		DateTaken:   req.DateTaken,
		CreatedAt:   existing.CreatedAt,
	}

	if err := s.gallery.Update(ctx, photo); err != nil {
		logStoreError(s.logger, "failed to update gallery photo", err)
		for _, key := range uploadedKeys {
			_ = s.storage.Delete(ctx, key)
		}
		return nil, fmt.Errorf("erro ao atualizar foto: %w", err)
	}

	return s.List(ctx), nil
}

func (s *GalleryService) Delete(ctx context.Context, id uint) ([]models.GalleryPhoto, error) {
	if err := s.gallery.Delete(ctx, id); err != nil {
		logStoreError(s.logger, "failed to delete gallery photo", err)
		return nil, fmt.Errorf("erro ao deletar foto: %w", err)
	}
	return s.List(ctx), nil
}

// uploadAll sobe os arquivos em paralelo preservando a ordem de envio: as
// chaves são geradas antes, indexadas pela posição do arquivo. No primeiro
// erro, tudo que já subiu é removido: ou todas as imagens entram, ou
// nenhuma.
func (s *GalleryService) uploadAll(ctx context.Context, files []FileUpload) ([]string, []string, error) {
	urls := make([]string, len(files))
	keys := make([]string, len(files))
	for i, f := range files {
		keys[i] = utils.StorageKey(f.Filename)
	}

	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		firstErr error
	)
	for i := range files {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			f := files[i]
			if err := s.storage.Upload(ctx, keys[i], f.Reader, f.ContentType); err != nil {
				mu.Lock()
				if firstErr == nil {
					firstErr = err
				}
				mu.Unlock()
				return
			}
			urls[i] = s.storage.PublicURL(keys[i])
		}(i)
	}
	wg.Wait()

	if firstErr != nil {
		s.logger.Errorw("gallery upload failed", "files", len(files), "error", firstErr)
		for i, key := range keys {
			if urls[i] != "" {
				_ = s.storage.Delete(ctx, key)
			}
		}
		return nil, nil, fmt.Errorf("erro no upload das imagens: %w", firstErr)
	}

	return urls, keys, nil
}
