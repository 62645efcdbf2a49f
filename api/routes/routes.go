package routes

import (
	"net/http"

	"github.com/Minhaj-beep/teer-api/internal/config"
	"github.com/Minhaj-beep/teer-api/internal/handlers"
	"github.com/Minhaj-beep/teer-api/internal/middleware"
	"github.com/gin-gonic/gin"
)

// HandlerDependencies holds the handlers wired into the router
type HandlerDependencies struct {
	AuthHandler *handlers.AuthHandler
	UserHandler *handlers.UserHandler
	GameHandler *handlers.GameHandler
}

// SetupRouter sets up the router
func SetupRouter(cfg *config.Config, deps HandlerDependencies) *gin.Engine {
	router := gin.Default()

	router.Use(middleware.CORSMiddleware(cfg))
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggerMiddleware())

	// Public routes
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	router.POST("/users/login", deps.AuthHandler.Login)
	router.GET("/users/status", deps.UserHandler.GetUserStatus)

	// Game reads are public
	games := router.Group("/games")
	{
		games.GET("", deps.GameHandler.GetAllGames)
		games.GET("/:id", deps.GameHandler.GetGameByID)
		games.GET("/status/ongoing", deps.GameHandler.GetOngoingGames)
		games.GET("/status/past", deps.GameHandler.GetPastGames)
		games.GET("/status/today", deps.GameHandler.GetTodayGames)
		games.GET("/past/lowest", deps.GameHandler.GetPastLowest)
		games.GET("/count/total", deps.GameHandler.GetTotals)
	}

	// Mutations require a token
	protected := router.Group("")
	protected.Use(middleware.JWTAuthMiddleware(cfg))
	{
		protected.POST("/games", deps.GameHandler.CreateGame)
		protected.PATCH("/games/:id", deps.GameHandler.UpdateGame)
		protected.DELETE("/games/:id", deps.GameHandler.DeleteGame)
		protected.PATCH("/games/:id/ticket", deps.GameHandler.UpdateTicket)

		users := protected.Group("/users")
		{
			users.GET("", deps.UserHandler.GetAllUsers)
			users.GET("/:id", deps.UserHandler.GetUserByID)
			users.POST("", deps.UserHandler.CreateUser)
			users.PATCH("/:id", deps.UserHandler.UpdateUser)
			users.DELETE("/:id", deps.UserHandler.DeleteUser)
		}
	}

	return router
}
