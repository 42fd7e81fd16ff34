package repository

import (
	"context"
	"time"

	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	"github.com/fitcore/gym-management/internal/model"
)

// AssignmentRepo stores daily assignments and the weekly batches built
// from them.
type AssignmentRepo struct {
	*Collection[model.DailyAssignment, *model.DailyAssignment]
}

func NewAssignmentRepo(db *mongo.Database, v *validator.Validate, log *zap.Logger) *AssignmentRepo {
	return &AssignmentRepo{Collection: NewCollection[model.DailyAssignment, *model.DailyAssignment](db, "dailyAssignments", "assignment", v, log)}
}

// ListRange returns assignments filtered by customer and an optional
// date window, ordered by date. Nil bounds leave that side open.
func (r *AssignmentRepo) ListRange(ctx context.Context, customerID string, from, to *time.Time) ([]model.DailyAssignment, error) {
	filter := bson.M{}
	if customerID != "" {
		filter["customerId"] = customerID
	}
	if from != nil || to != nil {
		dateRange := bson.M{}
		if from != nil {
			dateRange["$gte"] = *from
		}
		if to != nil {
			dateRange["$lte"] = *to
		}
		filter["date"] = dateRange
	}
	return r.List(ctx, filter, bson.D{{Key: "date", Value: 1}})
}

// CreateWeek expands a weekly input into seven daily assignments, one
// per day starting at the input's start date, and inserts them in a
// single batch. Days without planned meals or exercises get empty
// lists so the customer's calendar stays dense.
func (r *AssignmentRepo) CreateWeek(ctx context.Context, in *model.WeeklyAssignmentInput) ([]model.DailyAssignment, error) {
	if err := r.validate.Struct(in); err != nil {
		return nil, asValidationError(err)
	}
	now := time.Now().UTC()
	week := make([]model.DailyAssignment, 0, 7)
	for day := 0; day < 7; day++ {
		a := model.DailyAssignment{
			CustomerID: in.CustomerID,
			Date:       in.StartDate.AddDate(0, 0, day),
			Meals:      []model.Meal{},
			Exercises:  []model.Exercise{},
			AssignedBy: in.AssignedBy,
		}
		a.CreatedAt = now
		for _, dm := range in.Meals {
			if dm.Day == day {
				a.Meals = dm.Meals
			}
		}
		for _, de := range in.Exercises {
			if de.Day == day {
				a.Exercises = de.Exercises
			}
		}
		week = append(week, a)
	}

	docs := make([]any, len(week))
	for i := range week {
		docs[i] = week[i]
	}
	res, err := r.coll().InsertMany(ctx, docs)
	if err != nil {
		return nil, r.storageErr("create week", err)
	}
	for i, id := range res.InsertedIDs {
		if oid, ok := id.(primitive.ObjectID); ok && i < len(week) {
			week[i].ID = oid
		}
	}
	return week, nil
}

// Week returns the seven days starting at weekStart for one customer,
// ordered by date.
func (r *AssignmentRepo) Week(ctx context.Context, customerID string, weekStart time.Time) ([]model.DailyAssignment, error) {
	weekEnd := weekStart.AddDate(0, 0, 6)
	return r.ListRange(ctx, customerID, &weekStart, &weekEnd)
}
