package service

import (
	"context"
	"fmt"
	"io"
	"sync"

	"go.uber.org/zap"

	"github.com/boasnovas/associacao-backend/internal/models"
)

func testLogger() *zap.SugaredLogger {
	return zap.NewNop().Sugar()
}

// fakeEventStore guarda eventos em memória e permite injetar falhas por
// operação.
type fakeEventStore struct {
	events    []models.Event
	nextID    uint
	listErr   error
	createErr error
	updateErr error
	deleteErr error

	createCalls int
	updateCalls int
}

func newFakeEventStore(events ...models.Event) *fakeEventStore {
	s := &fakeEventStore{nextID: 1}
	for _, e := range events {
		e.ID = s.nextID
		s.nextID++
		s.events = append(s.events, e)
	}
	return s
}

func (s *fakeEventStore) List(ctx context.Context) ([]models.Event, error) {
	if s.listErr != nil {
		return nil, s.listErr
	}
	return append([]models.Event(nil), s.events...), nil
}

func (s *fakeEventStore) GetByID(ctx context.Context, id uint) (*models.Event, error) {
	for i := range s.events {
		if s.events[i].ID == id {
			e := s.events[i]
			return &e, nil
		}
	}
	return nil, fmt.Errorf("event %d not found", id)
}

func (s *fakeEventStore) Create(ctx context.Context, event *models.Event) error {
	s.createCalls++
	if s.createErr != nil {
		return s.createErr
	}
	event.ID = s.nextID
	s.nextID++
	s.events = append(s.events, *event)
	return nil
}

func (s *fakeEventStore) Update(ctx context.Context, event *models.Event) error {
	s.updateCalls++
	if s.updateErr != nil {
		return s.updateErr
	}
	for i := range s.events {
		if s.events[i].ID == event.ID {
			s.events[i] = *event
			return nil
		}
	}
	return fmt.Errorf("event %d not found", event.ID)
}

func (s *fakeEventStore) Delete(ctx context.Context, id uint) error {
	if s.deleteErr != nil {
		return s.deleteErr
	}
	for i := range s.events {
		if s.events[i].ID == id {
			s.events = append(s.events[:i], s.events[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("event %d not found", id)
}

type fakeGalleryStore struct {
	photos    []models.GalleryPhoto
	nextID    uint
	listErr   error
	createErr error
	updateErr error
	deleteErr error

	createCalls int
}

func newFakeGalleryStore(photos ...models.GalleryPhoto) *fakeGalleryStore {
	s := &fakeGalleryStore{nextID: 1}
	for _, p := range photos {
		p.ID = s.nextID
		s.nextID++
		s.photos = append(s.photos, p)
	}
	return s
}

func (s *fakeGalleryStore) List(ctx context.Context) ([]models.GalleryPhoto, error) {
	if s.listErr != nil {
		return nil, s.listErr
	}
	return append([]models.GalleryPhoto(nil), s.photos...), nil
}

func (s *fakeGalleryStore) GetByID(ctx context.Context, id uint) (*models.GalleryPhoto, error) {
	for i := range s.photos {
		if s.photos[i].ID == id {
			p := s.photos[i]
			return &p, nil
		}
	}
	return nil, fmt.Errorf("photo %d not found", id)
}

func (s *fakeGalleryStore) Create(ctx context.Context, photo *models.GalleryPhoto) error {
	s.createCalls++
	if s.createErr != nil {
		return s.createErr
	}
	photo.ID = s.nextID
	s.nextID++
	s.photos = append(s.photos, *photo)
	return nil
}

func (s *fakeGalleryStore) Update(ctx context.Context, photo *models.GalleryPhoto) error {
	if s.updateErr != nil {
		return s.updateErr
	}
	for i := range s.photos {
		if s.photos[i].ID == photo.ID {
			s.photos[i] = *photo
			return nil
		}
	}
	return fmt.Errorf("photo %d not found", photo.ID)
}

func (s *fakeGalleryStore) Delete(ctx context.Context, id uint) error {
	if s.deleteErr != nil {
		return s.deleteErr
	}
	for i := range s.photos {
		if s.photos[i].ID == id {
			s.photos = append(s.photos[:i], s.photos[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("photo %d not found", id)
}

// fakeStorage registra uploads e remoções. failAfter > 0 faz o upload de
// número failAfter (e os seguintes) falhar. Os contadores são protegidos
// por mutex porque a galeria sobe arquivos em paralelo.
type fakeStorage struct {
	mu        sync.Mutex
	uploads   []string
	contents  map[string]string
	deleted   []string
	failAfter int
	uploadN   int
}

func (f *fakeStorage) Upload(ctx context.Context, key string, body io.Reader, contentType string) error {
	data, err := io.ReadAll(body)
	if err != nil {
		return err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.uploadN++
	if f.failAfter > 0 && f.uploadN >= f.failAfter {
		return fmt.Errorf("upload rejected")
	}
	if f.contents == nil {
		f.contents = make(map[string]string)
	}
	f.uploads = append(f.uploads, key)
	f.contents[key] = string(data)
	return nil
}

func (f *fakeStorage) Delete(ctx context.Context, key string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.deleted = append(f.deleted, key)
	return nil
}

func (f *fakeStorage) PublicURL(key string) string {
	return "https://cdn.test/" + key
}

func (f *fakeStorage) uploadCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.uploads)
}

func (f *fakeStorage) deletedCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.deleted)
}

func (f *fakeStorage) contentOf(key string) string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.contents[key]
}

type fakeAdminStore struct {
	admin       *models.Admin
	updatedHash string
	updateErr   error
}

func (s *fakeAdminStore) GetByEmail(ctx context.Context, email string) (*models.Admin, error) {
	if s.admin == nil || s.admin.Email != email {
		return nil, fmt.Errorf("admin not found")
	}
	a := *s.admin
	return &a, nil
}

func (s *fakeAdminStore) UpdatePassword(ctx context.Context, id uint, hashedPassword string) error {
	if s.updateErr != nil {
		return s.updateErr
	}
	s.updatedHash = hashedPassword
	return nil
}

type fakeMailer struct {
	sentTo    string
	sentToken string
	sendErr   error
}

func (m *fakeMailer) SendPasswordResetEmail(email, resetToken string) error {
	if m.sendErr != nil {
		return m.sendErr
	}
	m.sentTo = email
	m.sentToken = resetToken
	return nil
}

// fakeExchanger responde à máquina de recuperação sem JWT de verdade.
type fakeExchanger struct {
	session     string
	exchangeErr error
	updateErr   error

	exchangedToken  string
	updatedPassword string
}

func (e *fakeExchanger) ExchangeRecoveryToken(ctx context.Context, token string) (string, error) {
	if e.exchangeErr != nil {
		return "", e.exchangeErr
	}
	e.exchangedToken = token
	return e.session, nil
}

func (e *fakeExchanger) UpdatePasswordWithSession(ctx context.Context, sessionToken, newPassword string) error {
	if e.updateErr != nil {
		return e.updateErr
	}
	e.updatedPassword = newPassword
	return nil
}
