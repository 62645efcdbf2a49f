package repositories

import (
	"context"
	"time"

	"github.com/Minhaj-beep/teer-api/internal/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// GameRepository defines the interface for game data operations
type GameRepository interface {
	Create(ctx context.Context, game *models.Game) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Game, error)
	FindAll(ctx context.Context) ([]*models.Game, error)
	// FindByDateRange returns games with start <= date < end. A zero start or
	// end leaves that side of the range unbounded.
	FindByDateRange(ctx context.Context, start, end time.Time) ([]*models.Game, error)
	Update(ctx context.Context, game *models.Game) error
	Delete(ctx context.Context, id primitive.ObjectID) error
	Count(ctx context.Context) (int64, error)
}

// UserRepository defines the interface for user data operations
type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.User, error)
	FindByName(ctx context.Context, name string) (*models.User, error)
	FindAll(ctx context.Context) ([]*models.User, error)
	Update(ctx context.Context, user *models.User) error
	Delete(ctx context.Context, id primitive.ObjectID) error
}
