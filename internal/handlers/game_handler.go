package handlers

import (
	"net/http"
	"time"

	"github.com/Minhaj-beep/teer-api/internal/models"
	"github.com/Minhaj-beep/teer-api/internal/services"
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// GameHandler handles game-related HTTP requests
type GameHandler struct {
	gameService *services.GameService
}

// NewGameHandler creates a new GameHandler
func NewGameHandler(gameService *services.GameService) *GameHandler {
	return &GameHandler{
		gameService: gameService,
	}
}

// CreateGameRequest is the payload for POST /games
type CreateGameRequest struct {
	Name  string   `json:"name" binding:"required"`
	Prize *float64 `json:"prize" binding:"required"`
	Date  string   `json:"date" binding:"required"` // YYYY-MM-DD or RFC3339
	Time  string   `json:"time" binding:"required"` // HH:MM
}

// UpdateGameRequest is the payload for PATCH /games/:id; omitted fields are
// left unchanged
type UpdateGameRequest struct {
	Name  *string  `json:"name"`
	Prize *float64 `json:"prize"`
	Date  *string  `json:"date"`
	Time  *string  `json:"time"`
}

// UpdateTicketRequest is the payload for PATCH /games/:id/ticket
type UpdateTicketRequest struct {
	Numbers []models.TicketUpdate `json:"numbers" binding:"required"`
}

func parseGameDate(value string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", value)
}

func gameViews(games []*models.Game) []models.GameView {
	views := make([]models.GameView, 0, len(games))
	for _, g := range games {
		views = append(views, models.NewGameView(g))
	}
	return views
}

// GetAllGames handles GET /games
func (h *GameHandler) GetAllGames(c *gin.Context) {
	games, err := h.gameService.GetAllGames(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gameViews(games))
}

// GetGameByID handles GET /games/:id
func (h *GameHandler) GetGameByID(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ID format"})
		return
	}
	game, err := h.gameService.GetGame(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, models.NewGameView(game))
}

// CreateGame handles POST /games
func (h *GameHandler) CreateGame(c *gin.Context) {
	var request CreateGameRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	date, err := parseGameDate(request.Date)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date format (YYYY-MM-DD)"})
		return
	}
	game, err := h.gameService.CreateGame(c.Request.Context(), request.Name, *request.Prize, date, request.Time)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, models.NewGameView(game))
}

// UpdateGame handles PATCH /games/:id
func (h *GameHandler) UpdateGame(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ID format"})
		return
	}
	var request UpdateGameRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	edit := services.GameEdit{
		Name:  request.Name,
		Prize: request.Prize,
		Time:  request.Time,
	}
	if request.Date != nil {
		date, err := parseGameDate(*request.Date)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date format (YYYY-MM-DD)"})
			return
		}
		edit.Date = &date
	}
	game, err := h.gameService.UpdateGame(c.Request.Context(), id, edit)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, models.NewGameView(game))
}

// DeleteGame handles DELETE /games/:id
func (h *GameHandler) DeleteGame(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ID format"})
		return
	}
	if err := h.gameService.DeleteGame(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Game Deleted."})
}

// UpdateTicket handles PATCH /games/:id/ticket
func (h *GameHandler) UpdateTicket(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ID format"})
		return
	}
	var request UpdateTicketRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	game, err := h.gameService.UpdateTicket(c.Request.Context(), id, request.Numbers)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, models.NewGameView(game))
}

// GetOngoingGames handles GET /games/status/ongoing
func (h *GameHandler) GetOngoingGames(c *gin.Context) {
	games, err := h.gameService.OngoingGames(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gameViews(games))
}

// GetPastGames handles GET /games/status/past
func (h *GameHandler) GetPastGames(c *gin.Context) {
	games, err := h.gameService.PastGames(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gameViews(games))
}

// GetTodayGames handles GET /games/status/today
func (h *GameHandler) GetTodayGames(c *gin.Context) {
	results, err := h.gameService.TodayResults(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, results)
}

// GetPastLowest handles GET /games/past/lowest
func (h *GameHandler) GetPastLowest(c *gin.Context) {
	results, err := h.gameService.PastResults(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, results)
}

// GetTotals handles GET /games/count/total
func (h *GameHandler) GetTotals(c *gin.Context) {
	report, err := h.gameService.Totals(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, report)
}
