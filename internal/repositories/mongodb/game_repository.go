package mongodb

import (
	"context"
	"fmt"
	"time"

	"github.com/Minhaj-beep/teer-api/internal/models"
	"github.com/Minhaj-beep/teer-api/internal/repositories"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// GameRepository implements the repositories.GameRepository interface
type GameRepository struct {
	collection *mongo.Collection
}

// NewGameRepository creates a new GameRepository
func NewGameRepository(db *mongo.Database) repositories.GameRepository {
	return &GameRepository{
		collection: db.Collection("games"),
	}
}

// Create creates a new game
func (r *GameRepository) Create(ctx context.Context, game *models.Game) error {
	game.CreatedAt = time.Now()
	game.UpdatedAt = time.Now()
	res, err := r.collection.InsertOne(ctx, game)
	if err != nil {
		return err
	}
	game.ID = res.InsertedID.(primitive.ObjectID)
	return nil
}

// FindByID finds a game by ID
func (r *GameRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Game, error) {
	var game models.Game
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&game)
	if err != nil {
		return nil, err // Returns mongo.ErrNoDocuments if not found
	}
	return &game, nil
}

// FindAll finds all games sorted by draw date descending
func (r *GameRepository) FindAll(ctx context.Context) ([]*models.Game, error) {
	opts := options.Find().SetSort(bson.M{"date": -1})
	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var games []*models.Game
	if err := cursor.All(ctx, &games); err != nil {
		return nil, err
	}
	if games == nil {
		games = []*models.Game{}
	}
	return games, nil
}

// FindByDateRange finds games within a date range. A zero start or end leaves
// that side unbounded; the lower bound is inclusive and the upper exclusive.
func (r *GameRepository) FindByDateRange(ctx context.Context, start, end time.Time) ([]*models.Game, error) {
	filter := bson.M{}
	dateFilter := bson.M{}
	if !start.IsZero() {
		dateFilter["$gte"] = start
	}
	if !end.IsZero() {
		dateFilter["$lt"] = end
	}
	if len(dateFilter) > 0 {
		filter["date"] = dateFilter
	}

	opts := options.Find().SetSort(bson.M{"date": -1})
	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to execute find query: %w", err)
	}
	defer cursor.Close(ctx)

	var games []*models.Game
	if err := cursor.All(ctx, &games); err != nil {
		return nil, fmt.Errorf("failed to decode games: %w", err)
	}
	if games == nil {
		games = []*models.Game{}
	}
	return games, nil
}

// Update replaces the stored game document
func (r *GameRepository) Update(ctx context.Context, game *models.Game) error {
	game.UpdatedAt = time.Now()
	res, err := r.collection.ReplaceOne(ctx, bson.M{"_id": game.ID}, game)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

// Delete deletes a game by ID
func (r *GameRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	res, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

// Count returns the total number of games
func (r *GameRepository) Count(ctx context.Context) (int64, error) {
	return r.collection.CountDocuments(ctx, bson.M{})
}
