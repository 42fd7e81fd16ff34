package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/fitcore/gym-management/internal/model"
)

func strPtr(s string) *string { return &s }

func TestToSetFieldsDropsUnsetFields(t *testing.T) {
	set, err := toSetFields(&model.UpdateMealInput{Name: strPtr("Oats")})
	require.NoError(t, err)
	assert.Equal(t, bson.M{"name": "Oats"}, set)
}

func TestUpdateFieldsWritesProvidedFieldsAndStamp(t *testing.T) {
	now := time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)
	cal := 320.5
	set, err := updateFields(&model.UpdateMealInput{Name: strPtr("Oats"), Calories: &cal}, now)
	require.NoError(t, err)

	assert.Equal(t, bson.M{"name": "Oats", "calories": 320.5, "updatedAt": now}, set)
	assert.NotContains(t, set, "protein", "unset fields must never be cleared")
	assert.NotContains(t, set, "mealType")
}

func mealCollection(mt *mtest.T) *Collection[model.Meal, *model.Meal] {
	return NewCollection[model.Meal, *model.Meal](mt.DB, mt.Coll.Name(), "meal", validator.New(), zap.NewNop())
}

func mealDoc(id primitive.ObjectID) bson.D {
	return bson.D{
		{Key: "_id", Value: id},
		{Key: "name", Value: "Oats"},
		{Key: "calories", Value: 320.0},
		{Key: "protein", Value: 12.0},
		{Key: "carbs", Value: 50.0},
		{Key: "fats", Value: 8.0},
		{Key: "mealType", Value: "breakfast"},
		{Key: "createdAt", Value: time.Now().UTC()},
	}
}

func TestCollectionCreate(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("assigns id and creation stamp", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse())
		c := mealCollection(mt)

		stale := primitive.NewObjectID()
		meal := &model.Meal{Name: "Oats", MealType: "breakfast"}
		meal.ID = stale // client-supplied ids are never honored

		created, err := c.Create(context.Background(), meal)
		require.NoError(mt, err)
		assert.False(mt, created.ID.IsZero())
		assert.NotEqual(mt, stale, created.ID)
		assert.False(mt, created.CreatedAt.IsZero())
		assert.Nil(mt, created.UpdatedAt)
	})

	mt.Run("rejects schema violations before any storage call", func(mt *mtest.T) {
		c := mealCollection(mt)

		_, err := c.Create(context.Background(), &model.Meal{Name: "Oats", MealType: "brunch"})
		var verr *ValidationError
		require.True(mt, errors.As(err, &verr))
		assert.Equal(mt, "MealType", verr.Field)
	})
}

func TestCollectionGet(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("round-trips a stored document", func(mt *mtest.T) {
		id := primitive.NewObjectID()
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "gym.meals", mtest.FirstBatch, mealDoc(id)))
		c := mealCollection(mt)

		got, err := c.Get(context.Background(), id.Hex())
		require.NoError(mt, err)
		assert.Equal(mt, id, got.ID)
		assert.Equal(mt, "Oats", got.Name)
		assert.Equal(mt, "breakfast", got.MealType)
	})

	mt.Run("missing document yields a scoped not-found", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "gym.meals", mtest.FirstBatch))
		c := mealCollection(mt)

		_, err := c.Get(context.Background(), primitive.NewObjectID().Hex())
		assert.ErrorIs(mt, err, ErrNotFound)
		assert.Equal(mt, "meal not found", err.Error())
	})

	mt.Run("malformed id fails before any storage call", func(mt *mtest.T) {
		c := mealCollection(mt)

		_, err := c.Get(context.Background(), "not-an-object-id")
		assert.ErrorIs(mt, err, ErrInvalidID)
	})
}

func TestCollectionUpdate(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("returns the post-update document", func(mt *mtest.T) {
		id := primitive.NewObjectID()
		mt.AddMockResponses(
			mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 1}, bson.E{Key: "nModified", Value: 1}),
			mtest.CreateCursorResponse(0, "gym.meals", mtest.FirstBatch, mealDoc(id)),
		)
		c := mealCollection(mt)

		got, err := c.Update(context.Background(), id.Hex(), &model.UpdateMealInput{Name: strPtr("Oats")})
		require.NoError(mt, err)
		assert.Equal(mt, id, got.ID)
	})

	mt.Run("nothing matched yields not-found", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 0}, bson.E{Key: "nModified", Value: 0}))
		c := mealCollection(mt)

		_, err := c.Update(context.Background(), primitive.NewObjectID().Hex(), &model.UpdateMealInput{Name: strPtr("Oats")})
		assert.ErrorIs(mt, err, ErrNotFound)
	})

	mt.Run("invalid input never reaches storage", func(mt *mtest.T) {
		c := mealCollection(mt)

		_, err := c.Update(context.Background(), primitive.NewObjectID().Hex(),
			&model.UpdateMealInput{MealType: strPtr("brunch")})
		var verr *ValidationError
		require.True(mt, errors.As(err, &verr))
	})
}

func TestCollectionDelete(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("removes a document", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 1}))
		c := mealCollection(mt)

		assert.NoError(mt, c.Delete(context.Background(), primitive.NewObjectID().Hex()))
	})

	mt.Run("nothing deleted yields not-found", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 0}))
		c := mealCollection(mt)

		err := c.Delete(context.Background(), primitive.NewObjectID().Hex())
		assert.ErrorIs(mt, err, ErrNotFound)
	})
}

func TestUserRepoCreateMapsDuplicateKey(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("duplicate email", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateWriteErrorsResponse(mtest.WriteError{
			Index: 0, Code: 11000, Message: "E11000 duplicate key error",
		}))
		repo := &UserRepo{Collection: NewCollection[model.User, *model.User](mt.DB, mt.Coll.Name(), "user", validator.New(), zap.NewNop())}

		_, err := repo.Create(context.Background(), &model.User{
			Email: "Dup@Example.com", Password: "hash", Name: "Dup", RoleID: model.RoleCustomer,
		})
		assert.ErrorIs(mt, err, ErrEmailExists)
	})
}

func TestStorageErrLogLevels(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	c := NewCollection[model.Meal, *model.Meal](nil, "meals", "meal", validator.New(), zap.New(core))

	dup := mongo.WriteException{WriteErrors: mongo.WriteErrors{{Code: 11000}}}
	err := c.storageErr("create", dup)
	assert.ErrorIs(t, err, ErrStorage)

	err = c.storageErr("list", errors.New("connection refused"))
	assert.ErrorIs(t, err, ErrStorage)

	entries := logs.All()
	require.Len(t, entries, 2)
	assert.Equal(t, zapcore.WarnLevel, entries[0].Level, "expected conflicts log below Error")
	assert.Equal(t, zapcore.ErrorLevel, entries[1].Level)
}
