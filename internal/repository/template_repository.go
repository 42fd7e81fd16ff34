package repository

import (
	"context"

	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	"github.com/fitcore/gym-management/internal/model"
)

// MealTemplateRepo stores reusable meal plans.
type MealTemplateRepo struct {
	*Collection[model.MealTemplate, *model.MealTemplate]
}

func NewMealTemplateRepo(db *mongo.Database, v *validator.Validate, log *zap.Logger) *MealTemplateRepo {
	return &MealTemplateRepo{Collection: NewCollection[model.MealTemplate, *model.MealTemplate](db, "mealTemplates", "meal template", v, log)}
}

// ListByTrainer returns templates created by one trainer, newest
// first. An empty trainerID lists everything.
func (r *MealTemplateRepo) ListByTrainer(ctx context.Context, trainerID string) ([]model.MealTemplate, error) {
	filter := bson.M{}
	if trainerID != "" {
		filter["createdBy"] = trainerID
	}
	return r.List(ctx, filter, bson.D{{Key: "createdAt", Value: -1}})
}

// ExerciseTemplateRepo stores reusable weekly exercise programs.
type ExerciseTemplateRepo struct {
	*Collection[model.ExerciseTemplate, *model.ExerciseTemplate]
}

func NewExerciseTemplateRepo(db *mongo.Database, v *validator.Validate, log *zap.Logger) *ExerciseTemplateRepo {
	return &ExerciseTemplateRepo{Collection: NewCollection[model.ExerciseTemplate, *model.ExerciseTemplate](db, "exerciseTemplates", "exercise template", v, log)}
}

// ListByTrainer returns exercise templates created by one trainer,
// newest first. An empty trainerID lists everything.
func (r *ExerciseTemplateRepo) ListByTrainer(ctx context.Context, trainerID string) ([]model.ExerciseTemplate, error) {
	filter := bson.M{}
	if trainerID != "" {
		filter["createdBy"] = trainerID
	}
	return r.List(ctx, filter, bson.D{{Key: "createdAt", Value: -1}})
}
