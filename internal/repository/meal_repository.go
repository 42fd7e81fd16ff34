package repository

import (
	"context"

	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	"github.com/fitcore/gym-management/internal/model"
)

// MealRepo stores the meal catalog trainers pick from.
type MealRepo struct {
	*Collection[model.Meal, *model.Meal]
}

func NewMealRepo(db *mongo.Database, v *validator.Validate, log *zap.Logger) *MealRepo {
	return &MealRepo{Collection: NewCollection[model.Meal, *model.Meal](db, "meals", "meal", v, log)}
}

// ListByType returns meals filtered by meal type (breakfast, lunch,
// dinner, snack), sorted by name. An empty type lists everything.
func (r *MealRepo) ListByType(ctx context.Context, mealType string) ([]model.Meal, error) {
	filter := bson.M{}
	if mealType != "" {
		filter["mealType"] = mealType
	}
	return r.List(ctx, filter, bson.D{{Key: "name", Value: 1}})
}
