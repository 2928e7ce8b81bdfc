package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"

	"github.com/stargazed/core/internal/database"
	"github.com/stargazed/core/internal/models"
	"github.com/stargazed/core/internal/pkg/apperr"
)

// ErrBadCredentials covers unknown email, wrong password and disabled
// accounts uniformly so login failures do not leak which one it was.
var ErrBadCredentials = errors.New("invalid email or password")

// Service handles account registration and authentication.
type Service struct {
	users *mongo.Collection
}

func NewService(db *mongo.Database) *Service {
	return &Service{users: db.Collection(database.CollUsers)}
}

// Signup registers a regular account. Email uniqueness is backstopped by the
// unique index.
func (s *Service) Signup(ctx context.Context, dto *SignupDTO) (*models.User, error) {
	ctx, cancel := database.WithTimeout(ctx)
	defer cancel()

	email := strings.ToLower(strings.TrimSpace(dto.Email))
	hash, err := bcrypt.GenerateFromPassword([]byte(dto.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := models.User{
		Name:         dto.Name,
		Email:        email,
		PasswordHash: string(hash),
		Role:         models.RoleUser,
		IsActive:     true,
		Timestamps:   models.NewTimestamps(time.Now().UTC()),
	}

	res, err := s.users.InsertOne(ctx, &user)
	if err != nil {
		if errors.Is(apperr.Translate(err), apperr.ErrDuplicate) {
			return nil, fmt.Errorf("%w: email %q already registered", apperr.ErrDuplicate, email)
		}
		return nil, err
	}
	user.ID = res.InsertedID.(primitive.ObjectID)
	return &user, nil
}

// Login verifies credentials and records the login time.
func (s *Service) Login(ctx context.Context, dto *LoginDTO) (*models.User, error) {
	ctx, cancel := database.WithTimeout(ctx)
	defer cancel()

	email := strings.ToLower(strings.TrimSpace(dto.Email))
	var user models.User
	if err := s.users.FindOne(ctx, bson.M{"email": email}).Decode(&user); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrBadCredentials
		}
		return nil, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(dto.Password)); err != nil {
		return nil, ErrBadCredentials
	}
	if !user.IsActive {
		return nil, ErrBadCredentials
	}

	now := time.Now().UTC()
	user.LastLoginAt = &now
	_, err := s.users.UpdateByID(ctx, user.ID, bson.M{"$set": bson.M{"lastLoginAt": now}})
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// GetUser loads an account by hex id.
func (s *Service) GetUser(ctx context.Context, id string) (*models.User, error) {
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
