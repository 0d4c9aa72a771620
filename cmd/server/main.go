package main

import (
	"log"
	"net/http"

	_ "coursebay/docs" // swagger docs

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"coursebay/internal/auth"
	"coursebay/internal/cache"
	"coursebay/internal/config"
	"coursebay/internal/db"
	"coursebay/internal/events"
	"coursebay/internal/handler"
	"coursebay/internal/repository"
	"coursebay/internal/router"
	"coursebay/internal/service"
)

// @title Course Marketplace API
// @version 1.0
// @description Course marketplace API with admin course management, user accounts, and JWT authentication.
// @host localhost:8080
// @BasePath /api/v1
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	cfg := config.Load()

	e := echo.New()
	e.Use(middleware.RequestID())

	mongoDB, err := db.NewMongo(cfg.MongoURI, cfg.MongoDB)
	if err != nil {
		log.Fatalf("database init: %v", err)
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)

	producer := events.NewProducer(cfg.KafkaBrokers)
	defer producer.Close()

	// Initialize repositories
	adminRepo := repository.NewAdminRepository(mongoDB)
	userRepo := repository.NewUserRepository(mongoDB)
	courseRepo := repository.NewCourseRepository(mongoDB)
	purchaseRepo := repository.NewPurchaseRepository(mongoDB)

	// Initialize auth components
	jwtService := auth.NewJWTService(cfg.JWTSecret)

	// Initialize services
	adminService := service.NewAdminService(adminRepo, courseRepo, jwtService, cacheClient)
	courseService := service.NewCourseService(courseRepo, purchaseRepo, cacheClient, producer)
	userService := service.NewUserService(userRepo, purchaseRepo, jwtService)

	// Initialize handlers
	adminHandler := handler.NewAdminHandler(adminService)
	courseHandler := handler.NewCourseHandler(courseService)
	userHandler := handler.NewUserHandler(userService)

	// Register routes
	router.Register(e, cfg, adminHandler, courseHandler, userHandler)

	addr := ":" + cfg.ServerPort
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server start: %v", err)
	}
}
