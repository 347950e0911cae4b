package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/boasnovas/associacao-backend/internal/models"
)

type GalleryRepository struct {
	db *gorm.DB
}

func NewGalleryRepository(db *gorm.DB) *GalleryRepository {
	return &GalleryRepository{db: db}
}

// List retorna os álbuns da mais recente para a mais antiga.
func (r *GalleryRepository) List(ctx context.Context) ([]models.GalleryPhoto, error) {
	var photos []models.GalleryPhoto
	err := r.db.WithContext(ctx).Order("date_taken DESC").Find(&photos).Error
	return photos, err
}

func (r *GalleryRepository) GetByID(ctx context.Context, id uint) (*models.GalleryPhoto, error) {
	var photo models.GalleryPhoto
	err := r.db.WithContext(ctx).First(&photo, id).Error
	if err != nil {
		return nil, err
	}
	return &photo, nil
}

func (r *GalleryRepository) Create(ctx context.Context, photo *models.GalleryPhoto) error {
	return r.db.WithContext(ctx).Create(photo).Error
}

func (r *GalleryRepository) Update(ctx context.Context, photo *models.GalleryPhoto) error {
	return r.db.WithContext(ctx).Save(photo).Error
}

func (r *GalleryRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&models.GalleryPhoto{}, id).Error
}
