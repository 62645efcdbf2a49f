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

// UserRepository implements repositories.UserRepository over a map.
type UserRepository struct {
	mu    sync.RWMutex
	users map[primitive.ObjectID]*models.User
}

// NewUserRepository constructs an empty in-memory UserRepository.
func NewUserRepository() repositories.UserRepository {
	return &UserRepository{
		users: make(map[primitive.ObjectID]*models.User),
	}
}

// Create stores a new user and assigns it an ID.
func (r *UserRepository) Create(ctx context.Context, user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	user.ID = primitive.NewObjectID()
	user.CreatedAt = time.Now()
	user.UpdatedAt = time.Now()
	u := *user
	r.users[user.ID] = &u
	return nil
}

// FindByID retrieves a user by ID.
func (r *UserRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.users[id]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	out := *u
	return &out, nil
}

// FindByName retrieves a user by exact name.
func (r *UserRepository) FindByName(ctx context.Context, name string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, u := range r.users {
		if u.Name == name {
			out := *u
			return &out, nil
		}
	}
	return nil, mongo.ErrNoDocuments
}

// FindAll returns all stored users.
func (r *UserRepository) FindAll(ctx context.Context) ([]*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	users := make([]*models.User, 0, len(r.users))
	for _, u := range r.users {
		out := *u
		users = append(users, &out)
	}
	return users, nil
}

// Update replaces a stored user.
func (r *UserRepository) Update(ctx context.Context, user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.users[user.ID]; !ok {
		return mongo.ErrNoDocuments
	}
	user.UpdatedAt = time.Now()
	u := *user
	r.users[user.ID] = &u
	return nil
}

// Delete removes a user by ID.
func (r *UserRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.users[id]; !ok {
		return mongo.ErrNoDocuments
	}
	delete(r.users, id)
	return nil
}
