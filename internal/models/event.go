package models

import (
	"time"
)

// Tipos de ação aceitos pela coluna events.type (enum fixo no banco)
type EventType string

const (
	EventVaralSolidario       EventType = "varal-solidario"
	EventCortesCabelo         EventType = "cortes-cabelo"
	EventOrientacoesJuridicas EventType = "orientacoes-juridicas"
	EventAlimentacao          EventType = "alimentacao"
	EventAfericaoPressao      EventType = "afericao-pressao"
	EventMusica               EventType = "musica"
	EventAulaDeCanto          EventType = "aula-de-canto"
	EventReforcoPedagogico    EventType = "reforco-pedagogico"
	EventMomentoComunhao      EventType = "momento-comunhao"
)

// EventTypes lista todos os tipos na ordem exibida no formulário.
var EventTypes = []EventType{
	EventVaralSolidario,
	EventCortesCabelo,
	EventOrientacoesJuridicas,
	EventAlimentacao,
	EventAfericaoPressao,
	EventMusica,
	EventAulaDeCanto,
	EventReforcoPedagogico,
	EventMomentoComunhao,
}

func (t EventType) Valid() bool {
	for _, known := range EventTypes {
		if t == known {
			return true
		}
	}
	return false
}

type Event struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Title       string    `json:"title" gorm:"not null"`
	Description string    `json:"description"`
	Date        string    `json:"date" gorm:"size:10;not null;index"` // ISO 8601 (YYYY-MM-DD)
	Time        string    `json:"time" gorm:"size:5;not null"`        // HH:mm
	Location    string    `json:"location"`
	Type        EventType `json:"type" gorm:"size:32;not null;check:type IN ('varal-solidario','cortes-cabelo','orientacoes-juridicas','alimentacao','afericao-pressao','musica','aula-de-canto','reforco-pedagogico','momento-comunhao')"`
	ImageURL    string    `json:"image_url"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type EventRequest struct {
	Title       string    `json:"title" form:"title" validate:"required"`
	Description string    `json:"description" form:"description"`
	Date        string    `json:"date" form:"date" validate:"required,datetime=2006-01-02"`
	Time        string    `json:"time" form:"time" validate:"required,datetime=15:04"`
	Location    string    `json:"location" form:"location"`
	Type        EventType `json:"type" form:"type" validate:"required,oneof=varal-solidario cortes-cabelo orientacoes-juridicas alimentacao afericao-pressao musica aula-de-canto reforco-pedagogico momento-comunhao"`
	// Mantida no update quando nenhum arquivo novo é enviado
	ImageURL string `json:"image_url" form:"image_url"`
}
