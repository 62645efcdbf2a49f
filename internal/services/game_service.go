package services

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/Minhaj-beep/teer-api/internal/config"
	"github.com/Minhaj-beep/teer-api/internal/models"
	"github.com/Minhaj-beep/teer-api/internal/repositories"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// GameService handles game-related business logic
type GameService struct {
	gameRepo repositories.GameRepository
	opts     models.ApplyOptions
	now      func() time.Time

	// locks serializes load-modify-save per game id so concurrent ticket
	// updates against one game cannot overwrite each other's deltas.
	mu    sync.Mutex
	locks map[primitive.ObjectID]*sync.Mutex
}

// NewGameService creates a new GameService
func NewGameService(gameRepo repositories.GameRepository, cfg *config.Config) *GameService {
	return &GameService{
		gameRepo: gameRepo,
		opts: models.ApplyOptions{
			RejectUnknown:  cfg.Game.StrictNumbers,
			RejectNegative: cfg.Game.RejectNegative,
		},
		now:   time.Now,
		locks: make(map[primitive.ObjectID]*sync.Mutex),
	}
}

func (s *GameService) gameLock(id primitive.ObjectID) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	l, ok := s.locks[id]
	if !ok {
		l = &sync.Mutex{}
		s.locks[id] = l
	}
	return l
}

// validateGameFields checks the create/edit field invariants
func validateGameFields(name string, prize float64, drawTime string) error {
	if name == "" {
		return &ValidationError{Field: "name", Reason: "is required"}
	}
	if prize < 0 || prize >= 100 {
		return &ValidationError{Field: "prize", Reason: "must be at least 0 and less than 100"}
	}
	if _, err := time.Parse("15:04", drawTime); err != nil {
		return &ValidationError{Field: "time", Reason: "must be HH:MM"}
	}
	return nil
}

// CreateGame creates a game with a fully zero-initialized ticket
func (s *GameService) CreateGame(ctx context.Context, name string, prize float64, date time.Time, drawTime string) (*models.Game, error) {
	if err := validateGameFields(name, prize, drawTime); err != nil {
		return nil, err
	}
	if date.IsZero() {
		return nil, &ValidationError{Field: "date", Reason: "is required"}
	}
	game := &models.Game{
		Name:   name,
		Prize:  prize,
		Date:   date,
		Time:   drawTime,
		Ticket: models.NewTicket(),
	}
	if err := s.gameRepo.Create(ctx, game); err != nil {
		return nil, fmt.Errorf("failed to create game: %w", err)
	}
	return game, nil
}

// GetGame retrieves a single game by ID
func (s *GameService) GetGame(ctx context.Context, id primitive.ObjectID) (*models.Game, error) {
	game, err := s.gameRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrGameNotFound
		}
		return nil, fmt.Errorf("failed to load game: %w", err)
	}
	return game, nil
}

// GetAllGames retrieves every game
func (s *GameService) GetAllGames(ctx context.Context) ([]*models.Game, error) {
	games, err := s.gameRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load games: %w", err)
	}
	return games, nil
}

// GameEdit carries the optional field edits for UpdateGame; nil fields are
// left untouched.
type GameEdit struct {
	Name  *string
	Prize *float64
	Date  *time.Time
	Time  *string
}

// UpdateGame applies a partial edit to a game's name/prize/date/time. The
// ticket is only ever touched through UpdateTicket.
func (s *GameService) UpdateGame(ctx context.Context, id primitive.ObjectID, edit GameEdit) (*models.Game, error) {
	lock := s.gameLock(id)
	lock.Lock()
	defer lock.Unlock()

	game, err := s.GetGame(ctx, id)
	if err != nil {
		return nil, err
	}
	if edit.Name != nil {
		game.Name = *edit.Name
	}
	if edit.Prize != nil {
		game.Prize = *edit.Prize
	}
	if edit.Date != nil {
		game.Date = *edit.Date
	}
	if edit.Time != nil {
		game.Time = *edit.Time
	}
	if err := validateGameFields(game.Name, game.Prize, game.Time); err != nil {
		return nil, err
	}
	if err := s.gameRepo.Update(ctx, game); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrGameNotFound
		}
		return nil, fmt.Errorf("failed to update game: %w", err)
	}
	return game, nil
}

// DeleteGame deletes a game by ID
func (s *GameService) DeleteGame(ctx context.Context, id primitive.ObjectID) error {
	err := s.gameRepo.Delete(ctx, id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return ErrGameNotFound
		}
		return fmt.Errorf("failed to delete game: %w", err)
	}
	return nil
}

// UpdateTicket accumulates the given deltas into a game's ticket, provided
// the draw is not imminent. The whole load-guard-apply-save sequence runs
// under the game's lock; a rejected update leaves the ticket untouched.
func (s *GameService) UpdateTicket(ctx context.Context, id primitive.ObjectID, updates []models.TicketUpdate) (*models.Game, error) {
	lock := s.gameLock(id)
	lock.Lock()
	defer lock.Unlock()

	game, err := s.GetGame(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := CheckUpdateWindow(s.now(), game); err != nil {
		return nil, err
	}
	if err := game.Ticket.Apply(updates, s.opts); err != nil {
		return nil, &ValidationError{Field: "numbers", Reason: err.Error()}
	}
	if err := s.gameRepo.Update(ctx, game); err != nil {
		return nil, fmt.Errorf("failed to save ticket update: %w", err)
	}
	return game, nil
}

// OngoingGames returns games drawing today or later
func (s *GameService) OngoingGames(ctx context.Context) ([]*models.Game, error) {
	return s.gameRepo.FindByDateRange(ctx, startOfDay(s.now()), time.Time{})
}

// PastGames returns games drawn before today
func (s *GameService) PastGames(ctx context.Context) ([]*models.Game, error) {
	return s.gameRepo.FindByDateRange(ctx, time.Time{}, startOfDay(s.now()))
}

// TodayGames returns games drawing today: midnight inclusive up to, but not
// including, the next midnight.
func (s *GameService) TodayGames(ctx context.Context) ([]*models.Game, error) {
	start := startOfDay(s.now())
	return s.gameRepo.FindByDateRange(ctx, start, start.AddDate(0, 0, 1))
}

// Results reduces games to their winning (lowest) slot listing shape
func Results(games []*models.Game) []models.GameResult {
	results := make([]models.GameResult, 0, len(games))
	for _, g := range games {
		results = append(results, models.GameResult{
			Number: g.LowestAmountNumber(),
			Date:   g.Date,
			Time:   g.Time,
			Name:   g.Name,
		})
	}
	return results
}

// PastResults returns the winning slot feed for games drawn before today
func (s *GameService) PastResults(ctx context.Context) ([]models.GameResult, error) {
	games, err := s.PastGames(ctx)
	if err != nil {
		return nil, err
	}
	return Results(games), nil
}

// TodayResults returns the winning slot feed for today's games
func (s *GameService) TodayResults(ctx context.Context) ([]models.GameResult, error) {
	games, err := s.TodayGames(ctx)
	if err != nil {
		return nil, err
	}
	return Results(games), nil
}

// Totals recomputes the cross-game sales report from every game's ledger
func (s *GameService) Totals(ctx context.Context) (*models.SalesReport, error) {
	games, err := s.gameRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load games: %w", err)
	}
	return TotalsOf(games), nil
}

// TotalsOf aggregates sale, giveaway and profit across a set of games
func TotalsOf(games []*models.Game) *models.SalesReport {
	report := &models.SalesReport{TotalGames: len(games)}
	for _, g := range games {
		report.TotalSale += g.TotalAmount()
		report.TotalGiveAway += g.TotalGiveAway()
	}
	report.TotalProfit = report.TotalSale - report.TotalGiveAway
	return report
}
