package services

import (
	"context"
	"errors"

	"github.com/Minhaj-beep/teer-api/internal/config"
	"github.com/Minhaj-beep/teer-api/internal/models"
	"github.com/Minhaj-beep/teer-api/internal/repositories"
	"github.com/Minhaj-beep/teer-api/internal/utils"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"
)

// AuthService handles credential verification and token issuing
type AuthService struct {
	userRepo repositories.UserRepository
	cfg      *config.Config
}

// NewAuthService creates a new AuthService
func NewAuthService(userRepo repositories.UserRepository, cfg *config.Config) *AuthService {
	return &AuthService{
		userRepo: userRepo,
		cfg:      cfg,
	}
}

// Login verifies a name/pass pair against the stored bcrypt hash and returns
// a signed JWT. Inactive users are refused even with a valid credential.
func (s *AuthService) Login(ctx context.Context, req *models.LoginRequest) (string, error) {
	user, err := s.userRepo.FindByName(ctx, req.Name)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return "", ErrInvalidCredentials
		}
		return "", err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Pass), []byte(req.Pass)); err != nil {
		return "", ErrInvalidCredentials
	}
	if !user.Status {
		return "", ErrUserInactive
	}
	return utils.GenerateJWT(user.ID.Hex(), user.Name, s.cfg)
}
