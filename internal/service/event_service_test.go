package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/boasnovas/associacao-backend/internal/models"
)

func validEventRequest() models.EventRequest {
	return models.EventRequest{
		Title: "Corte de cabelo solidário",
		Date:  "2025-05-20",
		Time:  "09:00",
		Type:  models.EventCortesCabelo,
	}
}

func TestEventCreateMissingFields(t *testing.T) {
	tests := []struct {
		name string
		req  models.EventRequest
	}{
		{"sem título", models.EventRequest{Date: "2025-05-20", Time: "09:00"}},
		{"sem data", models.EventRequest{Title: "Evento", Time: "09:00"}},
		{"sem horário", models.EventRequest{Title: "Evento", Date: "2025-05-20"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := newFakeEventStore()
			objStorage := &fakeStorage{}
			svc := NewEventService(store, objStorage, testLogger())

			_, err := svc.Create(context.Background(), tt.req, &FileUpload{
				Filename:    "foto.jpg",
				ContentType: "image/jpeg",
				Reader:      strings.NewReader("img"),
			})

			if !errors.Is(err, ErrMissingFields) {
				t.Fatalf("err = %v, esperava ErrMissingFields", err)
			}
			// a validação precede qualquer chamada externa
			if store.createCalls != 0 {
				t.Fatal("o banco não deveria ter sido chamado")
			}
			if objStorage.uploadCount() != 0 {
				t.Fatal("o upload não deveria ter acontecido")
			}
		})
	}
}

func TestEventCreateUploadsBeforePersisting(t *testing.T) {
	store := newFakeEventStore()
	objStorage := &fakeStorage{}
	svc := NewEventService(store, objStorage, testLogger())

	events, err := svc.Create(context.Background(), validEventRequest(), &FileUpload{
		Filename:    "foto.jpg",
		ContentType: "image/jpeg",
		Reader:      strings.NewReader("img"),
	})
	if err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}

	if len(events) != 1 {
		t.Fatalf("esperava a lista recarregada com 1 evento, veio %d", len(events))
	}
	if objStorage.uploadCount() != 1 {
		t.Fatalf("uploads = %d", objStorage.uploadCount())
	}
	if !strings.HasPrefix(events[0].ImageURL, "https://cdn.test/events/") {
		t.Fatalf("image_url = %q", events[0].ImageURL)
	}
}

func TestEventCreateWithoutImage(t *testing.T) {
	store := newFakeEventStore()
	objStorage := &fakeStorage{}
	svc := NewEventService(store, objStorage, testLogger())

	events, err := svc.Create(context.Background(), validEventRequest(), nil)
	if err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}
	if events[0].ImageURL != "" {
		t.Fatalf("image_url = %q, esperava vazio", events[0].ImageURL)
	}
	if objStorage.uploadCount() != 0 {
		t.Fatal("não deveria haver upload sem arquivo")
	}
}

func TestEventCreateUploadFailureAbortsInsert(t *testing.T) {
	store := newFakeEventStore()
	objStorage := &fakeStorage{failAfter: 1}
	svc := NewEventService(store, objStorage, testLogger())

	_, err := svc.Create(context.Background(), validEventRequest(), &FileUpload{
		Filename:    "foto.jpg",
		ContentType: "image/jpeg",
		Reader:      strings.NewReader("img"),
	})

	if err == nil {
		t.Fatal("esperava erro de upload")
	}
	if store.createCalls != 0 {
		t.Fatal("o registro não deveria ter sido inserido")
	}
}

func TestEventCreateInsertFailureRemovesUpload(t *testing.T) {
	store := newFakeEventStore()
	store.createErr = errors.New("constraint violation")
	objStorage := &fakeStorage{}
	svc := NewEventService(store, objStorage, testLogger())

	_, err := svc.Create(context.Background(), validEventRequest(), &FileUpload{
		Filename:    "foto.jpg",
		ContentType: "image/jpeg",
		Reader:      strings.NewReader("img"),
	})

	if err == nil {
		t.Fatal("esperava erro de persistência")
	}
	// a imagem órfã recém-criada sai do bucket
	if objStorage.deletedCount() != 1 {
		t.Fatalf("remoções = %d", objStorage.deletedCount())
	}
}

func TestEventUpdateKeepsImageWithoutNewFile(t *testing.T) {
	store := newFakeEventStore(models.Event{
		Title:    "Original",
		Date:     "2025-05-20",
		Time:     "09:00",
		Type:     models.EventAlimentacao,
		ImageURL: "https://cdn.test/events/antiga.jpg",
	})
	objStorage := &fakeStorage{}
	svc := NewEventService(store, objStorage, testLogger())

	req := validEventRequest()
	req.Title = "Atualizado"
	events, err := svc.Update(context.Background(), 1, req, nil)
	if err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}

	if events[0].Title != "Atualizado" {
		t.Fatalf("title = %q", events[0].Title)
	}
	if events[0].ImageURL != "https://cdn.test/events/antiga.jpg" {
		t.Fatalf("image_url = %q, deveria ter sido mantida", events[0].ImageURL)
	}
}

func TestEventUpdateReplacesImageWithNewFile(t *testing.T) {
	store := newFakeEventStore(models.Event{
		Title:    "Original",
		Date:     "2025-05-20",
		Time:     "09:00",
		Type:     models.EventAlimentacao,
		ImageURL: "https://cdn.test/events/antiga.jpg",
	})
	objStorage := &fakeStorage{}
	svc := NewEventService(store, objStorage, testLogger())

	events, err := svc.Update(context.Background(), 1, validEventRequest(), &FileUpload{
		Filename:    "nova.png",
		ContentType: "image/png",
		Reader:      strings.NewReader("img"),
	})
	if err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}

	if events[0].ImageURL == "https://cdn.test/events/antiga.jpg" {
		t.Fatal("a imagem antiga deveria ter sido substituída")
	}
	if objStorage.uploadCount() != 1 {
		t.Fatalf("uploads = %d", objStorage.uploadCount())
	}
}

func TestEventUpdateUnknownID(t *testing.T) {
	svc := NewEventService(newFakeEventStore(), &fakeStorage{}, testLogger())

	_, err := svc.Update(context.Background(), 99, validEventRequest(), nil)
	if err == nil {
		t.Fatal("esperava erro para id inexistente")
	}
}

func TestEventDeleteReturnsRefreshedList(t *testing.T) {
	store := newFakeEventStore(
		models.Event{Title: "A", Date: "2025-05-20", Time: "09:00", Type: models.EventMusica},
		models.Event{Title: "B", Date: "2025-05-21", Time: "09:00", Type: models.EventMusica},
	)
	svc := NewEventService(store, &fakeStorage{}, testLogger())

	events, err := svc.Delete(context.Background(), 1)
	if err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}
	if len(events) != 1 || events[0].Title != "B" {
		t.Fatalf("lista após remoção: %v", events)
	}
}

func TestEventListSwallowsStoreError(t *testing.T) {
	store := newFakeEventStore()
	store.listErr = errors.New("connection refused")
	svc := NewEventService(store, &fakeStorage{}, testLogger())

	events := svc.List(context.Background())
	if events == nil || len(events) != 0 {
		t.Fatalf("esperava lista vazia, veio %v", events)
	}
}
