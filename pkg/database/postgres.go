package database

import (
	"log"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/boasnovas/associacao-backend/internal/config"
	"github.com/boasnovas/associacao-backend/internal/models"
	bcryptPkg "github.com/boasnovas/associacao-backend/pkg/bcrypt"
)

func NewDatabase(cfg *config.Config) *gorm.DB {
	if cfg.DatabaseURL == "" {
		log.Fatal("DATABASE_URL is not set")
	}

	db, err := gorm.Open(postgres.Open(cfg.DatabaseURL), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := db.AutoMigrate(
		&models.Admin{},
		&models.Event{},
		&models.GalleryPhoto{},
	); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	seedAdmin(db, cfg)

	return db
}

// seedAdmin cria a conta do painel na primeira subida (tabela vazia).
func seedAdmin(db *gorm.DB, cfg *config.Config) {
	if cfg.AdminEmail == "" || cfg.AdminPassword == "" {
		return
	}

	var count int64
	db.Model(&models.Admin{}).Count(&count)
	if count > 0 {
		return
	}

	hash, err := bcryptPkg.HashPassword(cfg.AdminPassword)
	if err != nil {
		log.Fatalf("Failed to hash admin password: %v", err)
	}

	admin := models.Admin{Email: cfg.AdminEmail, Password: hash}
	if err := db.Create(&admin).Error; err != nil {
		log.Fatalf("Failed to seed admin account: %v", err)
	}
}
