package config

import (
	"os"
)

type StorageConfig struct {
	Endpoint        string
	AccessKeyID     string
	SecretAccessKey string
	Bucket          string
	PublicURL       string
	Region          string
}

type JWTConfig struct {
	Secret string
	Issuer string
}

type EmailConfig struct {
	ResendAPIKey string
	FromAddress  string
	FromName     string
	ContactTo    string
}

type Config struct {
	Port         string
	AllowOrigins string
	DatabaseURL  string
	FrontendURL  string
	LogLevel     string
	Storage      StorageConfig
	JWT          JWTConfig
	Email        EmailConfig

	// Conta inicial do painel, criada na migração se a tabela estiver vazia
	AdminEmail    string
	AdminPassword string
}

func LoadConfig() *Config {
	cfg := &Config{
		Port:         getEnv("PORT", "8080"),
		AllowOrigins: getEnv("ALLOW_ORIGINS", "http://localhost:3000"),
		DatabaseURL:  os.Getenv("DATABASE_URL"),
		FrontendURL:  os.Getenv("FRONTEND_URL"),
		LogLevel:     getEnv("LOG_LEVEL", "info"),
	}

	cfg.Storage.Endpoint = os.Getenv("STORAGE_ENDPOINT")
	cfg.Storage.AccessKeyID = os.Getenv("STORAGE_ACCESS_KEY_ID")
	cfg.Storage.SecretAccessKey = os.Getenv("STORAGE_SECRET_ACCESS_KEY")
	cfg.Storage.Bucket = getEnv("STORAGE_BUCKET", "images")
	cfg.Storage.PublicURL = os.Getenv("STORAGE_PUBLIC_URL")
	cfg.Storage.Region = getEnv("STORAGE_REGION", "auto")

	cfg.JWT.Secret = os.Getenv("JWT_SECRET")
	cfg.JWT.Issuer = getEnv("JWT_ISSUER", "associacao-backend")

	cfg.Email.ResendAPIKey = os.Getenv("RESEND_API_KEY")
	cfg.Email.FromAddress = os.Getenv("EMAIL_FROM_ADDRESS")
	cfg.Email.FromName = getEnv("EMAIL_FROM_NAME", "Associação Boas Novas")
	cfg.Email.ContactTo = os.Getenv("EMAIL_CONTACT_TO")

	cfg.AdminEmail = os.Getenv("ADMIN_EMAIL")
	cfg.AdminPassword = os.Getenv("ADMIN_PASSWORD")

	return cfg
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
