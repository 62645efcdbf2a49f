package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Minhaj-beep/teer-api/api/routes"
	"github.com/Minhaj-beep/teer-api/internal/config"
	"github.com/Minhaj-beep/teer-api/internal/handlers"
	"github.com/Minhaj-beep/teer-api/internal/repositories"
	mongorepo "github.com/Minhaj-beep/teer-api/internal/repositories/mongodb"
	"github.com/Minhaj-beep/teer-api/internal/services"
	"github.com/Minhaj-beep/teer-api/pkg/mongodb"
	"github.com/joho/godotenv"
)

func main() {
	// Load .env if present; real deployments set the environment directly
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	mongoClient, err := mongodb.NewClient(cfg.MongoDB.URI)
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer func() {
		if err := mongoClient.Disconnect(context.Background()); err != nil {
			log.Printf("Error disconnecting from MongoDB: %v", err)
		}
	}()

	db := mongoClient.Database(cfg.MongoDB.Database)

	// Repositories
	var gameRepo repositories.GameRepository = mongorepo.NewGameRepository(db)
	var userRepo repositories.UserRepository = mongorepo.NewUserRepository(db)

	// Services
	gameService := services.NewGameService(gameRepo, cfg)
	userService := services.NewUserService(userRepo)
	authService := services.NewAuthService(userRepo, cfg)

	// Handlers
	handlerDeps := routes.HandlerDependencies{
		AuthHandler: handlers.NewAuthHandler(authService),
		UserHandler: handlers.NewUserHandler(userService),
		GameHandler: handlers.NewGameHandler(gameService),
	}

	router := routes.SetupRouter(cfg, handlerDeps)

	srv := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}

	log.Printf("Server starting on port %s", cfg.Server.Port)

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown: ", err)
	}

	log.Println("Server exiting")
}
