package repository

import (
	"context"

	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	"github.com/fitcore/gym-management/internal/model"
)

// ExerciseRepo stores the exercise catalog.
type ExerciseRepo struct {
	*Collection[model.Exercise, *model.Exercise]
}

func NewExerciseRepo(db *mongo.Database, v *validator.Validate, log *zap.Logger) *ExerciseRepo {
	return &ExerciseRepo{Collection: NewCollection[model.Exercise, *model.Exercise](db, "exercises", "exercise", v, log)}
}

// ListAll returns every exercise sorted by name.
func (r *ExerciseRepo) ListAll(ctx context.Context) ([]model.Exercise, error) {
	return r.List(ctx, bson.M{}, bson.D{{Key: "name", Value: 1}})
}
