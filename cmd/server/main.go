package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"wanderwith/internal/config"
	"wanderwith/internal/handler"
	"wanderwith/internal/middleware"
	"wanderwith/internal/repository"
	"wanderwith/internal/seed"
	"wanderwith/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found or error loading, relying on environment variables")
	}

	// --- Configuration ---
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if cfg.VerifyDestination {
		log.Println("Bookings check that the destination exists before inserting")
	}

	// --- Database Connection ---
	dbPool, err := config.ConnectDB(context.Background(), cfg.DB)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer dbPool.Close()

	// --- Auto Migration ---
	if err := config.AutoMigrate(dbPool); err != nil {
		log.Fatalf("Failed to auto-migrate database: %v", err)
	}

	// --- Initialize Repositories ---
	userRepo := repository.NewUserRepository(dbPool)
	destinationRepo := repository.NewDestinationRepository(dbPool)
	bookingRepo := repository.NewBookingRepository(dbPool)

	// --- Seed Data ---
	if err := seed.NewSeeder(userRepo, destinationRepo).Run(context.Background()); err != nil {
		log.Fatalf("Failed to seed database: %v", err)
	}

	// --- Initialize Services ---
	destinationService := service.NewDestinationService(destinationRepo)
	bookingService := service.NewBookingService(bookingRepo, destinationRepo, service.BookingOptions{
		DefaultUserID:     cfg.DefaultUserID,
		VerifyDestination: cfg.VerifyDestination,
	})
	paymentService := service.NewPaymentService()
	userService := service.NewUserService(userRepo, bookingRepo)
	chatbotService := service.NewChatbotService()

	// --- Initialize Handlers ---
	destinationHandler := handler.NewDestinationHandler(destinationService)
	bookingHandler := handler.NewBookingHandler(bookingService, paymentService)
	userHandler := handler.NewUserHandler(userService)
	chatbotHandler := handler.NewChatbotHandler(chatbotService)

	// --- Setup Gin Router ---
	router := gin.Default()
	router.Use(middleware.CORSMiddleware(cfg.AllowedOrigins))

	// --- Register Routes ---
	apiGroup := router.Group("/api")
	destinationHandler.RegisterDestinationRoutes(apiGroup)
	bookingHandler.RegisterBookingRoutes(apiGroup)
	userHandler.RegisterUserRoutes(apiGroup)
	chatbotHandler.RegisterChatbotRoutes(apiGroup)

	router.GET("/health", func(c *gin.Context) {
		if err := dbPool.Ping(c.Request.Context()); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "error", "db": "unhealthy"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok", "db": "healthy"})
	})

	// --- Start Server ---
	srv := &http.Server{
		Addr:    ":" + cfg.ServerPort,
		Handler: router,
	}

	go func() {
		log.Printf("WanderWith backend starting on port %s", cfg.ServerPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	// --- Graceful Shutdown ---
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exiting")
}
