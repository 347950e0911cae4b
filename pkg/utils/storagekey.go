package utils

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Prefixo único do bucket: eventos e galeria compartilham o namespace.
const StoragePrefix = "events"

// StorageKey gera um nome resistente a colisão para o objeto: timestamp em
// milissegundos mais um sufixo aleatório curto, preservando a extensão.
func StorageKey(filename string) string {
	ext := strings.ToLower(filepath.Ext(filename))
	suffix := uuid.NewString()[:8]
	return fmt.Sprintf("%s/%d-%s%s", StoragePrefix, time.Now().UnixMilli(), suffix, ext)
}
