package app

import (
	"errors"
	"fmt"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"skydraw_backend/database"
	"skydraw_backend/internal/auth"
	"skydraw_backend/internal/config"
	"skydraw_backend/internal/email"
	"skydraw_backend/internal/handlers"
	"skydraw_backend/internal/logger"
	"skydraw_backend/internal/middleware"
	"skydraw_backend/internal/models"
	"skydraw_backend/internal/payments"
	"skydraw_backend/internal/repositories"
	"skydraw_backend/internal/routes"
	"skydraw_backend/internal/services"
	"skydraw_backend/internal/storage"
	"skydraw_backend/internal/validator"
)

func Run() {
	config.LoadConfig()
	cfg := config.AppConfig

	logger.Init(cfg.Server.Env)
	logger.Info("Logger initialized", "env", cfg.Server.Env)

	gormDB, err := gorm.Open(postgres.Open(cfg.Database.DSN), &gorm.Config{})
	if err != nil {
		logger.Fatal("Failed to connect to database", "error", err)
	}
	sqlDB, err := gormDB.DB()
	if err != nil {
		logger.Fatal("Failed to get *sql.DB from GORM", "error", err)
	}
	if err = sqlDB.Ping(); err != nil {
		logger.Fatal("Database unavailable", "error", err)
	}
	logger.Info("Database connected")

	if err := database.Migrate(gormDB); err != nil {
		logger.Fatal("Migration failed", "error", err)
	}

	if err := seedFirstAdmin(gormDB, cfg); err != nil {
		logger.Fatal("Failed to seed first admin user", "error", err)
	}

	ginRouter := SetupRouter(cfg, gormDB)

	address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info("Server starting", "address", address)
	if err := ginRouter.Run(address); err != nil {
		logger.Fatal("Server startup error", "error", err)
	}
}

func SetupRouter(cfg *config.Config, gormDB *gorm.DB) *gin.Engine {
	storageInstance, err := storage.NewStorage(storage.Config{
		Type:      cfg.Storage.Type,
		BasePath:  cfg.Storage.BasePath,
		BaseURL:   cfg.Storage.BaseURL,
		Bucket:    cfg.Storage.Bucket,
		Region:    cfg.Storage.Region,
		AccessKey: cfg.Storage.AccessKey,
		SecretKey: cfg.Storage.SecretKey,
		Endpoint:  cfg.Storage.Endpoint,
	})
	if err != nil {
		logger.Fatal("Failed to initialize storage", "error", err)
	}
	logger.Info("Storage initialized", "type", cfg.Storage.Type)

	serviceContainer := initializeServices(cfg, gormDB, storageInstance)
	appHandlers := initializeHandlers(serviceContainer)

	ginRouter := initializeGinRouter()

	// Local uploads are served straight off disk; S3/R2 URLs point at the
	// bucket and never hit this route.
	if cfg.Storage.Type == "local" || cfg.Storage.Type == "" {
		ginRouter.Static(cfg.Storage.BaseURL, cfg.Storage.BasePath)
	}

	routes.RegisterRoutes(ginRouter, appHandlers)

	return ginRouter
}

func initializeServices(cfg *config.Config, gormDB *gorm.DB, storageInstance storage.Storage) *services.ServiceContainer {
	var emailProvider email.Provider
	if cfg.Email.SMTPHost != "" {
		provider, err := email.NewGomailProvider(email.SMTPConfig{
			Host:      cfg.Email.SMTPHost,
			Port:      cfg.Email.SMTPPort,
			Username:  cfg.Email.SMTPUser,
			Password:  cfg.Email.SMTPPassword,
			FromEmail: cfg.Email.FromEmail,
			FromName:  cfg.Email.FromName,
		})
		if err != nil {
			logger.Warn("Email provider misconfigured, notifications disabled", "error", err)
		} else {
			emailProvider = provider
		}
	} else {
		logger.Warn("SMTP not configured, notifications disabled")
	}

	userRepo := repositories.NewUserRepository(gormDB)
	shopRepo := repositories.NewShopRepository(gormDB)
	artworkRepo := repositories.NewArtworkRepository(gormDB)
	orderRepo := repositories.NewOrderRepository(gormDB)
	messageRepo := repositories.NewMessageRepository(gormDB)

	notificationService := services.NewNotificationService(userRepo, emailProvider)
	authService := services.NewAuthService(userRepo, shopRepo)
	orderService := services.NewOrderService(orderRepo, userRepo, notificationService,
		payments.NewQRGenerator(), storageInstance, services.OrderServiceConfig{
			PromptPayID:        cfg.Payment.PromptPayID,
			EnforceTransitions: cfg.Orders.EnforceTransitions,
		})
	shopService := services.NewShopService(shopRepo, artworkRepo, orderRepo, storageInstance,
		services.ShopServiceConfig{
			MaxUploadSize: cfg.Upload.MaxSize,
			AllowedTypes:  cfg.Upload.AllowedTypes,
		})
	messageService := services.NewMessageService(messageRepo, userRepo)
	adminService := services.NewAdminService(userRepo, shopRepo, orderRepo)

	return &services.ServiceContainer{
		AuthService:         authService,
		OrderService:        orderService,
		ShopService:         shopService,
		MessageService:      messageService,
		AdminService:        adminService,
		NotificationService: notificationService,
		EmailProvider:       emailProvider,
	}
}

func initializeHandlers(container *services.ServiceContainer) *handlers.AppHandlers {
	customValidator := validator.New()
	baseHandler := handlers.NewBaseHandler(customValidator)

	return &handlers.AppHandlers{
		AuthHandler:   handlers.NewAuthHandler(baseHandler, container.AuthService),
		UserHandler:   handlers.NewUserHandler(baseHandler, container.AuthService, container.ShopService, container.MessageService),
		OrderHandler:  handlers.NewOrderHandler(baseHandler, container.OrderService),
		ArtistHandler: handlers.NewArtistHandler(baseHandler, container.ShopService, container.OrderService),
		AdminHandler:  handlers.NewAdminHandler(baseHandler, container.AdminService),
	}
}

func initializeGinRouter() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware())
	router.Use(middleware.CORSMiddleware())
	return router
}

// seedFirstAdmin creates the bootstrap admin account when the configured
// credentials are present and no user holds that email yet.
func seedFirstAdmin(db *gorm.DB, cfg *config.Config) error {
	adminEmail := cfg.FirstAdminEmail
	adminPassword := cfg.FirstAdminPassword

	if adminEmail == "" || adminPassword == "" {
		logger.Warn("FIRST_ADMIN_EMAIL or FIRST_ADMIN_PASSWORD is not set. Skipping admin seeding.")
		return nil
	}

	var adminUser models.User
	result := db.Where("email = ?", adminEmail).First(&adminUser)
	if result.Error == nil {
		logger.Info("Admin user already exists. Skipping creation.", "email", adminEmail)
		return nil
	}
	if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return fmt.Errorf("failed to check for admin user: %w", result.Error)
	}

	hashedPassword, err := auth.HashPassword(adminPassword)
	if err != nil {
		return fmt.Errorf("failed to hash admin password: %w", err)
	}

	newAdmin := &models.User{
		Name:         "Administrator",
		Email:        adminEmail,
		PasswordHash: hashedPassword,
		Role:         models.UserRoleAdmin,
	}
	if err := db.Create(newAdmin).Error; err != nil {
		return fmt.Errorf("failed to create admin user: %w", err)
	}

	logger.Info("First admin user created", "email", adminEmail)
	return nil
}
