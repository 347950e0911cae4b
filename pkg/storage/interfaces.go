package storage

import (
	"context"
	"io"
)

// ObjectStorage é o contrato consumido pelos serviços; os testes usam um
// fake em memória no lugar do bucket real.
type ObjectStorage interface {
	Upload(ctx context.Context, key string, reader io.Reader, contentType string) error
	Delete(ctx context.Context, key string) error
	PublicURL(key string) string
}
