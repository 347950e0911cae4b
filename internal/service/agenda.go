package service

import (
	"sort"
	"time"

	"github.com/boasnovas/associacao-backend/internal/models"
)

// Filtros aceitos pela agenda pública além dos tipos de evento.
const (
	FilterAll      = "all"
	FilterUpcoming = "upcoming" // próximos 7 dias
)

const isoDate = "2006-01-02"

// UpcomingEvents aplica o filtro da agenda pública: só eventos com data
// estritamente posterior a hoje entram; evento de hoje já não é "próxima
// ação". O resultado é reordenado por data de forma estável, mesmo que a
// origem já venha ordenada.
func UpcomingEvents(events []models.Event, now time.Time, filter string) []models.Event {
	today := startOfDay(now)
	nextWeek := today.AddDate(0, 0, 7)

	filtered := make([]models.Event, 0, len(events))
	for _, event := range events {
		eventDate, err := time.Parse(isoDate, event.Date)
		if err != nil {
			// data malformada nunca aparece na agenda
			continue
		}
		if !eventDate.After(today) {
			continue
		}

		switch filter {
		case FilterAll, "":
			filtered = append(filtered, event)
		case FilterUpcoming:
			if !eventDate.After(nextWeek) {
				filtered = append(filtered, event)
			}
		default:
			if string(event.Type) == filter {
				filtered = append(filtered, event)
			}
		}
	}

	sort.SliceStable(filtered, func(i, j int) bool {
		return filtered[i].Date < filtered[j].Date
	})

	return filtered
}

// CategoriesPresent devolve os tipos que de fato existem nos eventos
// carregados, na ordem da primeira ocorrência: os botões de filtro são
// gerados a partir deste conjunto, não do enum completo.
func CategoriesPresent(events []models.Event) []models.EventType {
	seen := make(map[models.EventType]bool)
	var present []models.EventType
	for _, event := range events {
		if !seen[event.Type] {
			seen[event.Type] = true
			present = append(present, event.Type)
		}
	}
	return present
}

// FilterByAction filtra os álbuns da galeria por tipo de ação; "all" (ou
// filtro vazio) deixa tudo passar. Nenhuma reordenação: a galeria já vem
// da mais recente para a mais antiga.
func FilterByAction(photos []models.GalleryPhoto, filter string) []models.GalleryPhoto {
	if filter == FilterAll || filter == "" {
		return photos
	}

	filtered := make([]models.GalleryPhoto, 0, len(photos))
	for _, photo := range photos {
		if string(photo.ActionType) == filter {
			filtered = append(filtered, photo)
		}
	}
	return filtered
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
