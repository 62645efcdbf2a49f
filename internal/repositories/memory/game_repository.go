// Package memory provides in-memory repository implementations used by the
// service and handler tests. Documents are deep-copied on the way in and out
// so tests observe the same whole-document read/replace semantics as the
// MongoDB repositories.
package memory

import (
	"context"
	"sync"
	"time"

	"github.com/Minhaj-beep/teer-api/internal/models"
	"github.com/Minhaj-beep/teer-api/internal/repositories"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// GameRepository implements repositories.GameRepository over a map.
type GameRepository struct {
	mu    sync.RWMutex
	games map[primitive.ObjectID]*models.Game
}

// NewGameRepository constructs an empty in-memory GameRepository.
func NewGameRepository() repositories.GameRepository {
	return &GameRepository{
		games: make(map[primitive.ObjectID]*models.Game),
	}
}

func copyGame(g *models.Game) *models.Game {
	out := *g
	out.Ticket.Numbers = make([]models.TicketNumber, len(g.Ticket.Numbers))
	copy(out.Ticket.Numbers, g.Ticket.Numbers)
	return &out
}

// Create stores a new game and assigns it an ID.
func (r *GameRepository) Create(ctx context.Context, game *models.Game) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	game.ID = primitive.NewObjectID()
	game.CreatedAt = time.Now()
	game.UpdatedAt = time.Now()
	r.games[game.ID] = copyGame(game)
	return nil
}

// FindByID retrieves a game by ID.
func (r *GameRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Game, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	g, ok := r.games[id]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	return copyGame(g), nil
}

// FindAll returns all stored games.
func (r *GameRepository) FindAll(ctx context.Context) ([]*models.Game, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	games := make([]*models.Game, 0, len(r.games))
	for _, g := range r.games {
		games = append(games, copyGame(g))
	}
	return games, nil
}

// FindByDateRange returns games with start <= date < end; a zero bound is
// unbounded on that side.
func (r *GameRepository) FindByDateRange(ctx context.Context, start, end time.Time) ([]*models.Game, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	games := make([]*models.Game, 0)
	for _, g := range r.games {
		if !start.IsZero() && g.Date.Before(start) {
			continue
		}
		if !end.IsZero() && !g.Date.Before(end) {
			continue
		}
		games = append(games, copyGame(g))
	}
	return games, nil
}

// Update replaces a stored game.
func (r *GameRepository) Update(ctx context.Context, game *models.Game) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.games[game.ID]; !ok {
		return mongo.ErrNoDocuments
	}
	game.UpdatedAt = time.Now()
	r.games[game.ID] = copyGame(game)
	return nil
}

// Delete removes a game by ID.
func (r *GameRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.games[id]; !ok {
		return mongo.ErrNoDocuments
	}
	delete(r.games, id)
	return nil
}

// Count returns the number of stored games.
func (r *GameRepository) Count(ctx context.Context) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return int64(len(r.games)), nil
}
