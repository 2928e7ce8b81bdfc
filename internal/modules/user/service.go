package user

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"

	"github.com/stargazed/core/internal/database"
	"github.com/stargazed/core/internal/models"
	"github.com/stargazed/core/internal/pkg/apperr"
)

// Service handles self-service profile operations.
type Service struct {
	users *mongo.Collection
}

func NewService(db *mongo.Database) *Service {
	return &Service{users: db.Collection(database.CollUsers)}
}

// Profile loads the account behind the session.
func (s *Service) Profile(ctx context.Context, id string) (*models.User, error) {
	ctx, cancel := database.WithTimeout(ctx)
	defer cancel()

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("%w: user %q", apperr.ErrNotFound, id)
	}
	var user models.User
	if err := s.users.FindOne(ctx, bson.M{"_id": oid}).Decode(&user); err != nil {
		return nil, apperr.Translate(err)
	}
	return &user, nil
}

// UpdateProfile patches name, avatar and password on the caller's own account.
func (s *Service) UpdateProfile(ctx context.Context, id string, dto *UpdateProfileDTO) (*models.User, error) {
	ctx, cancel := database.WithTimeout(ctx)
	defer cancel()

	user, err := s.Profile(ctx, id)
	if err != nil {
		return nil, err
	}

	set := bson.M{}
	if dto.Name != nil {
		if *dto.Name == "" {
			return nil, fmt.Errorf("%w: name cannot be empty", apperr.ErrValidation)
		}
		user.Name = *dto.Name
		set["name"] = user.Name
	}
	if dto.Avatar != nil {
		user.Avatar = *dto.Avatar
		set["avatar"] = user.Avatar
	}
	if dto.Password != nil {
		if len(*dto.Password) < 8 {
			return nil, fmt.Errorf("%w: password must be at least 8 characters", apperr.ErrValidation)
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(*dto.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = string(hash)
		set["passwordHash"] = user.PasswordHash
	}
	if len(set) == 0 {
		return user, nil
	}

	user.UpdatedAt = time.Now().UTC()
	set["updatedAt"] = user.UpdatedAt
	if _, err := s.users.UpdateByID(ctx, user.ID, bson.M{"$set": set}); err != nil {
		return nil, err
	}
	return user, nil
}
