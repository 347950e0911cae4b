package models

import (
	"time"

	"gorm.io/gorm"
)

// Tipos de ação da galeria (subconjunto dos tipos de evento: só ações
// registradas em foto, sem os tipos musicais/pedagógicos)
var GalleryActionTypes = []EventType{
	EventVaralSolidario,
	EventCortesCabelo,
	EventOrientacoesJuridicas,
	EventAlimentacao,
	EventAfericaoPressao,
}

func ValidGalleryAction(t EventType) bool {
	for _, known := range GalleryActionTypes {
		if t == known {
			return true
		}
	}
	return false
}

type GalleryPhoto struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Title       string    `json:"title" gorm:"not null"`
	Description string    `json:"description"`
	ImageURLs   []string  `json:"image_urls" gorm:"type:json;serializer:json"`
	ActionType  EventType `json:"action_type" gorm:"size:32;not null;check:action_type IN ('varal-solidario','cortes-cabelo','orientacoes-juridicas','alimentacao','afericao-pressao')"`
	DateTaken   string    `json:"date_taken" gorm:"size:10;not null;index"` // ISO 8601 (YYYY-MM-DD)
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// BeforeSave garante que image_urls nunca é persistido como null;
// registros antigos tinham uma coluna image_url única e o caminho de
// leitura ainda pode entregar nil.
func (p *GalleryPhoto) BeforeSave(tx *gorm.DB) error {
	if p.ImageURLs == nil {
		p.ImageURLs = []string{}
	}
	return nil
}

func (p *GalleryPhoto) AfterFind(tx *gorm.DB) error {
	if p.ImageURLs == nil {
		p.ImageURLs = []string{}
	}
	return nil
}

// CoverURL retorna a primeira imagem (capa do card na galeria).
func (p *GalleryPhoto) CoverURL() string {
	if len(p.ImageURLs) == 0 {
		return ""
	}
	return p.ImageURLs[0]
}

type GalleryPhotoRequest struct {
	Title       string    `json:"title" form:"title" validate:"required"`
	Description string    `json:"description" form:"description"`
	ActionType  EventType `json:"action_type" form:"action_type" validate:"required,oneof=varal-solidario cortes-cabelo orientacoes-juridicas alimentacao afericao-pressao"`
	DateTaken   string    `json:"date_taken" form:"date_taken" validate:"required,datetime=2006-01-02"`
	// Estado final desejado pelo editor; substituído por completo quando
	// novos arquivos são enviados junto com a requisição.
	ImageURLs []string `json:"image_urls" form:"image_urls"`
}
