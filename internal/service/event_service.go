package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/boasnovas/associacao-backend/internal/models"
	"github.com/boasnovas/associacao-backend/pkg/storage"
	"github.com/boasnovas/associacao-backend/pkg/utils"
)

type EventService struct {
	events  EventStore
	storage storage.ObjectStorage
	logger  *zap.SugaredLogger
}

func NewEventService(events EventStore, objStorage storage.ObjectStorage, logger *zap.SugaredLogger) *EventService {
	return &EventService{
		events:  events,
		storage: objStorage,
		logger:  logger,
	}
}

// List retorna os eventos em ordem crescente de data. Falha de leitura não
// sobe para o chamador: loga e devolve lista vazia.
func (s *EventService) List(ctx context.Context) []models.Event {
	events, err := s.events.List(ctx)
	if err != nil {
		logStoreError(s.logger, "failed to load events", err)
		return []models.Event{}
	}
	if events == nil {
		events = []models.Event{}
	}
	return events
}

// Create valida, sobe a imagem (se houver) e só então insere o registro.
// Depois de gravar, retorna a lista recarregada: a fonte de verdade é
// sempre o banco, sem merge otimista local.
func (s *EventService) Create(ctx context.Context, req models.EventRequest, file *FileUpload) ([]models.Event, error) {
	if req.Title == "" || req.Date == "" || req.Time == "" {
		return nil, ErrMissingFields
	}

	imageURL, uploadedKey, err := s.uploadImage(ctx, file)
	if err != nil {
		return nil, err
	}

	event := &models.Event{
		Title:       req.Title,
		Description: req.Description,
		Date:        req.Date,
		Time:        req.Time,
		Location:    req.Location,
		Type:        req.Type,
		ImageURL:    imageURL,
	}

	if err := s.events.Create(ctx, event); err != nil {
		logStoreError(s.logger, "failed to save event", err)
		if uploadedKey != "" {
			// evita o órfão recém-criado no bucket
			_ = s.storage.Delete(ctx, uploadedKey)
		}
		return nil, fmt.Errorf("erro ao salvar evento: %w", err)
	}

	return s.List(ctx), nil
}

// Update sobrescreve o registro inteiro. Sem arquivo novo, a image_url
// existente é mantida intacta.
func (s *EventService) Update(ctx context.Context, id uint, req models.EventRequest, file *FileUpload) ([]models.Event, error) {
	if req.Title == "" || req.Date == "" || req.Time == "" {
		return nil, ErrMissingFields
	}

	existing, err := s.events.GetByID(ctx, id)
	if err != nil {
		logStoreError(s.logger, "event not found for update", err)
		return nil, fmt.Errorf("evento não encontrado: %w", err)
	}

	imageURL := existing.ImageURL
	uploadedKey := ""
	if file != nil {
		imageURL, uploadedKey, err = s.uploadImage(ctx, file)
		if err != nil {
			return nil, err
		}
	}

	event := &models.Event{
		ID:          existing.ID,
		Title:       req.Title,
		Description: req.Description,
		Date:        req.Date,
		Time:        req.Time,
		Location:    req.Location,
		Type:        req.Type,
		ImageURL:    imageURL,
		CreatedAt:   existing.CreatedAt,
	}

	if err := s.events.Update(ctx, event); err != nil {
		logStoreError(s.logger, "failed to update event", err)
		if uploadedKey != "" {
			_ = s.storage.Delete(ctx, uploadedKey)
		}
		return nil, fmt.Errorf("erro ao atualizar evento: %w", err)
	}

	return s.List(ctx), nil
}

func (s *EventService) Delete(ctx context.Context, id uint) ([]models.Event, error) {
	if err := s.events.Delete(ctx, id); err != nil {
		logStoreError(s.logger, "failed to delete event", err)
		return nil, fmt.Errorf("erro ao deletar evento: %w", err)
	}
	return s.List(ctx), nil
}

// uploadImage resolve a URL pública de um upload opcional. Falha no upload
// aborta a operação inteira; o registro nunca aponta para URL inexistente.
func (s *EventService) uploadImage(ctx context.Context, file *FileUpload) (imageURL, key string, err error) {
	if file == nil {
		return "", "", nil
	}

	key = utils.StorageKey(file.Filename)
	if err := s.storage.Upload(ctx, key, file.Reader, file.ContentType); err != nil {
		s.logger.Errorw("image upload failed", "key", key, "error", err)
		return "", "", fmt.Errorf("erro no upload da imagem: %w", err)
	}

	return s.storage.PublicURL(key), key, nil
}
