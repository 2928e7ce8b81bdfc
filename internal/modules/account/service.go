package account

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
	"github.com/stargazed/core/internal/pkg/pagination"
	"github.com/stargazed/core/internal/pkg/query"
	"github.com/stargazed/core/internal/pkg/response"
)

var listSpec = query.Spec{
	SearchFields: []string{"name", "email"},
	Filters: map[string]query.Op{
		"isActive": query.OpEq,
	},
	SortFields:  []string{"createdAt", "name", "email", "lastLoginAt"},
	DefaultSort: "createdAt",
}

// Service manages admin and user accounts. Every operation refuses
// superadmin targets: those accounts are invisible to this surface.
type Service struct {
	users *mongo.Collection
}

func NewService(db *mongo.Database) *Service {
	return &Service{users: db.Collection(database.CollUsers)}
}

// ListAdmins returns one page of admin accounts plus population stats.
func (s *Service) ListAdmins(ctx context.Context, q pagination.Query, p query.Params) ([]models.User, response.Pagination, *Stats, error) {
	return s.list(ctx, q, p, models.RoleAdmin)
}

// ListUsers returns one page of regular accounts plus population stats.
func (s *Service) ListUsers(ctx context.Context, q pagination.Query, p query.Params) ([]models.User, response.Pagination, *Stats, error) {
	return s.list(ctx, q, p, models.RoleUser)
}

func (s *Service) list(ctx context.Context, q pagination.Query, p query.Params, role models.Role) ([]models.User, response.Pagination, *Stats, error) {
	filter, sort, err := listSpec.Build(p)
	if err != nil {
		return nil, response.Pagination{}, nil, err
	}
	filter["role"] = string(role)

	ctx, cancel := database.WithTimeout(ctx)
	defer cancel()

	type statsOut struct {
		stats *Stats
		err   error
	}
	statsCh := make(chan statsOut, 1)
	go func() {
		st, err := s.stats(ctx, role)
		statsCh <- statsOut{st, err}
	}()

	items, pag, err := pagination.Find[models.User](ctx, s.users, filter, sort, q)
	if err != nil {
		return nil, response.Pagination{}, nil, err
	}
	out := <-statsCh
	if out.err != nil {
		return nil, response.Pagination{}, nil, out.err
	}
	return items, pag, out.stats, nil
}

func (s *Service) stats(ctx context.Context, role models.Role) (*Stats, error) {
	pipeline := []bson.M{
		{"$match": bson.M{"role": string(role)}},
		{"$group": bson.M{
			"_id":   nil,
			"total": bson.M{"$sum": 1},
			"active": bson.M{"$sum": bson.M{"$cond": []interface{}{
				bson.M{"$eq": []interface{}{"$isActive", true}}, 1, 0,
			}}},
			"inactive": bson.M{"$sum": bson.M{"$cond": []interface{}{
				bson.M{"$eq": []interface{}{"$isActive", false}}, 1, 0,
			}}},
		}},
	}
	cursor, err := s.users.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var rows []Stats
	if err := cursor.All(ctx, &rows); err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return &Stats{}, nil
	}
	return &rows[0], nil
}

// Get loads a managed account by id. Superadmin targets come back 403.
func (s *Service) Get(ctx context.Context, id string) (*models.User, error) {
	ctx, cancel := database.WithTimeout(ctx)
	defer cancel()
	return s.getManaged(ctx, id)
}

func (s *Service) getManaged(ctx context.Context, id string) (*models.User, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("%w: account %q", apperr.ErrNotFound, id)
	}
	var user models.User
	if err := s.users.FindOne(ctx, bson.M{"_id": oid}).Decode(&user); err != nil {
		return nil, apperr.Translate(err)
	}
	if err := guardManaged(&user); err != nil {
		return nil, err
	}
	return &user, nil
}

// guardManaged decides whether an account may pass through this surface.
// Superadmin targets fail Forbidden no matter who the caller is.
func guardManaged(user *models.User) error {
	if user.Role == models.RoleSuperadmin {
		return fmt.Errorf("%w: superadmin accounts cannot be managed", apperr.ErrForbidden)
	}
	return nil
}

// CreateAdmin provisions an admin account.
func (s *Service) CreateAdmin(ctx context.Context, dto *CreateAdminDTO) (*models.User, error) {
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
		Role:         models.RoleAdmin,
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

// UpdateAdmin patches an admin account.
func (s *Service) UpdateAdmin(ctx context.Context, id string, dto *UpdateAdminDTO) (*models.User, error) {
	ctx, cancel := database.WithTimeout(ctx)
	defer cancel()

	user, err := s.getManaged(ctx, id)
	if err != nil {
		return nil, err
	}
	if user.Role != models.RoleAdmin {
		return nil, fmt.Errorf("%w: account %q", apperr.ErrNotFound, id)
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
	if dto.IsActive != nil {
		user.IsActive = *dto.IsActive
		set["isActive"] = user.IsActive
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

// UpdateUser patches a regular account. Role changes may only move between
// user and admin.
func (s *Service) UpdateUser(ctx context.Context, id string, dto *UpdateUserDTO) (*models.User, error) {
	ctx, cancel := database.WithTimeout(ctx)
	defer cancel()

	user, err := s.getManaged(ctx, id)
	if err != nil {
		return nil, err
	}

	set := bson.M{}
	if dto.IsActive != nil {
		user.IsActive = *dto.IsActive
		set["isActive"] = user.IsActive
	}
	if dto.Role != nil {
		role := models.Role(*dto.Role)
		if role != models.RoleUser && role != models.RoleAdmin {
			return nil, fmt.Errorf("%w: role must be user or admin", apperr.ErrValidation)
		}
		user.Role = role
		set["role"] = string(role)
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

// Delete removes a managed account. Superadmin targets come back 403.
func (s *Service) Delete(ctx context.Context, id string) error {
	ctx, cancel := database.WithTimeout(ctx)
	defer cancel()

	user, err := s.getManaged(ctx, id)
	if err != nil {
		return err
	}
	res, err := s.users.DeleteOne(ctx, bson.M{"_id": user.ID})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return fmt.Errorf("%w: account %q", apperr.ErrNotFound, id)
	}
	return nil
}
