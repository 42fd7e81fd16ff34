package repository

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"

	"github.com/fitcore/gym-management/internal/model"
)

// ErrEmailExists is returned when a user's email is already taken.
var ErrEmailExists = errors.New("email already registered")

// UserRepo stores users. On top of the generic CRUD it owns the unique
// email index and the email-based lookups the auth flow needs.
type UserRepo struct {
	*Collection[model.User, *model.User]
}

func NewUserRepo(db *mongo.Database, v *validator.Validate, log *zap.Logger) *UserRepo {
	return &UserRepo{Collection: NewCollection[model.User, *model.User](db, "users", "user", v, log)}
}

// EnsureIndexes creates the unique index on email. Enforcing
// uniqueness in the storage engine closes the race two concurrent
// registrations would otherwise win together: the loser's insert fails
// with a duplicate-key error and maps to ErrEmailExists.
func (r *UserRepo) EnsureIndexes(ctx context.Context) error {
	_, err := r.coll().Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}

// Create inserts a user, translating a duplicate email into
// ErrEmailExists.
func (r *UserRepo) Create(ctx context.Context, u *model.User) (*model.User, error) {
	u.Email = strings.ToLower(strings.TrimSpace(u.Email))
	created, err := r.Collection.Create(ctx, u)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, ErrEmailExists
		}
		return nil, err
	}
	return created, nil
}

// FindByEmail fetches a user by normalized email, returning
// ErrNotFound when no account exists.
func (r *UserRepo) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	var u model.User
	err := r.coll().FindOne(ctx, bson.M{"email": email}).Decode(&u)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, &NotFoundError{Resource: "user"}
		}
		return nil, r.storageErr("find by email", err)
	}
	return &u, nil
}

// TouchUpdated bumps updatedAt for the account with the given email,
// used when an OAuth login re-visits an existing user.
func (r *UserRepo) TouchUpdated(ctx context.Context, email string) error {
	email = strings.ToLower(strings.TrimSpace(email))
	_, err := r.coll().UpdateOne(ctx, bson.M{"email": email},
		bson.M{"$set": bson.M{"updatedAt": time.Now().UTC()}})
	if err != nil {
		return r.storageErr("touch", err)
	}
	return nil
}

// Page returns one page of users, optionally restricted to a role,
// newest first.
func (r *UserRepo) Page(ctx context.Context, role *model.RoleID, page, pageSize int) (*Result[model.User], error) {
	filter := bson.M{}
	if role != nil {
		filter["roleId"] = *role
	}
	return r.Paginate(ctx, QueryOptions{
		Filter:   filter,
		Sort:     bson.D{{Key: "createdAt", Value: -1}},
		Page:     page,
		PageSize: pageSize,
	})
}

// ListByRole returns all users with the given role, newest first.
func (r *UserRepo) ListByRole(ctx context.Context, role *model.RoleID) ([]model.User, error) {
	filter := bson.M{}
	if role != nil {
		filter["roleId"] = *role
	}
	return r.List(ctx, filter, bson.D{{Key: "createdAt", Value: -1}})
}
