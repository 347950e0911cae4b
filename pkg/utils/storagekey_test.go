package utils

import (
	"strings"
	"testing"
)

func TestStorageKey(t *testing.T) {
	key := StorageKey("Foto Da Ação.JPG")

	if !strings.HasPrefix(key, StoragePrefix+"/") {
		t.Fatalf("key = %q, esperava prefixo %q", key, StoragePrefix)
	}
	if !strings.HasSuffix(key, ".jpg") {
		t.Fatalf("key = %q, a extensão deveria vir minúscula", key)
	}
}

func TestStorageKeyNoExtension(t *testing.T) {
	key := StorageKey("semextensao")
	if strings.HasSuffix(key, ".") {
		t.Fatalf("key = %q", key)
	}
}

func TestStorageKeyIsUnique(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		key := StorageKey("foto.jpg")
		if seen[key] {
			t.Fatalf("chave repetida: %q", key)
		}
		seen[key] = true
	}
}

func TestIsSupportedImageType(t *testing.T) {
	tests := []struct {
		contentType string
		want        bool
	}{
		{"image/jpeg", true},
		{"image/png", true},
		{"image/gif", true},
		{"image/webp", true},
		{"image/svg+xml", false},
		{"application/pdf", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := IsSupportedImageType(tt.contentType); got != tt.want {
			t.Errorf("IsSupportedImageType(%q) = %v, esperava %v", tt.contentType, got, tt.want)
		}
	}
}
