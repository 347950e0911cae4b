package main

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/joho/godotenv"

	"github.com/boasnovas/associacao-backend/internal/config"
	"github.com/boasnovas/associacao-backend/internal/handler"
	"github.com/boasnovas/associacao-backend/internal/middleware"
	"github.com/boasnovas/associacao-backend/internal/repository"
	"github.com/boasnovas/associacao-backend/internal/service"
	"github.com/boasnovas/associacao-backend/pkg/database"
	"github.com/boasnovas/associacao-backend/pkg/email"
	"github.com/boasnovas/associacao-backend/pkg/observability"
	"github.com/boasnovas/associacao-backend/pkg/storage"
	"github.com/boasnovas/associacao-backend/pkg/utils"
)

func main() {
	// .env é opcional em produção (as variáveis vêm do ambiente)
	_ = godotenv.Load()

	cfg := config.LoadConfig()
	zlog := observability.InitLogger(cfg.LogLevel)
	defer zlog.Sync()

	db := database.NewDatabase(cfg)

	// Repositories
	eventRepo := repository.NewEventRepository(db)
	galleryRepo := repository.NewGalleryRepository(db)
	adminRepo := repository.NewAdminRepository(db)

	// Storage
	bucket, err := storage.NewBucketStorage(cfg)
	if err != nil {
		log.Fatal("Failed to initialize object storage:", err)
	}

	// Email
	emailService := email.NewEmailService(cfg, zlog)

	// Services
	eventService := service.NewEventService(eventRepo, bucket, zlog)
	galleryService := service.NewGalleryService(galleryRepo, bucket, zlog)
	authService := service.NewAuthService(adminRepo, emailService, zlog)

	validator := utils.NewValidator()

	// Handlers
	eventHandler := handler.NewEventHandler(eventService, validator)
	galleryHandler := handler.NewGalleryHandler(galleryService, validator)
	publicHandler := handler.NewPublicHandler(eventService, galleryService)
	authHandler := handler.NewAuthHandler(authService, validator)
	contactHandler := handler.NewContactHandler(emailService, validator)

	app := fiber.New(fiber.Config{
		BodyLimit: 50 * 1024 * 1024, // galeria envia vários arquivos de uma vez
	})

	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowOrigins,
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowMethods:     "GET, POST, PUT, DELETE",
		AllowCredentials: true,
	}))
	app.Use(logger.New())
	app.Use(limiter.New(limiter.Config{
		Max:        60,
		Expiration: 1 * time.Minute,
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
	}))

	api := app.Group("/api")

	// Rotas públicas
	auth := api.Group("/auth")
	auth.Post("/login", authHandler.Login)
	auth.Post("/forgot-password", authHandler.ForgotPassword)
	auth.Post("/recovery", authHandler.Recovery)
	auth.Post("/reset-password", authHandler.ResetPassword)

	api.Get("/agenda", publicHandler.GetAgenda)
	api.Get("/gallery", publicHandler.GetGallery)
	api.Get("/gallery/:id", publicHandler.GetGalleryPhoto)
	api.Post("/contact", contactHandler.SendMessage)

	// Rotas do painel
	api.Use(middleware.AuthMiddleware())
	{
		events := api.Group("/events")
		events.Get("/", eventHandler.ListEvents)
		events.Post("/", eventHandler.CreateEvent)
		events.Put("/:id", eventHandler.UpdateEvent)
		events.Delete("/:id", eventHandler.DeleteEvent)

		photos := api.Group("/photos")
		photos.Get("/", galleryHandler.ListPhotos)
		photos.Post("/", galleryHandler.CreatePhoto)
		photos.Put("/:id", galleryHandler.UpdatePhoto)
		photos.Delete("/:id", galleryHandler.DeletePhoto)
	}

	log.Fatal(app.Listen(":" + cfg.Port))
}
