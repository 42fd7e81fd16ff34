package repository

import (
	"context"
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	"github.com/fitcore/gym-management/internal/model"
)

// SubscriptionRepo stores gym subscriptions.
type SubscriptionRepo struct {
	*Collection[model.Subscription, *model.Subscription]
}

func NewSubscriptionRepo(db *mongo.Database, v *validator.Validate, log *zap.Logger) *SubscriptionRepo {
	return &SubscriptionRepo{Collection: NewCollection[model.Subscription, *model.Subscription](db, "subscriptions", "subscription", v, log)}
}

// ListByCustomer returns a customer's subscriptions, newest first. An
// empty customerID lists everything.
func (r *SubscriptionRepo) ListByCustomer(ctx context.Context, customerID string) ([]model.Subscription, error) {
	filter := bson.M{}
	if customerID != "" {
		filter["customerId"] = customerID
	}
	return r.List(ctx, filter, bson.D{{Key: "createdAt", Value: -1}})
}

// Active returns the customer's currently running subscription: status
// active with today inside the start/end range. ErrNotFound when none.
func (r *SubscriptionRepo) Active(ctx context.Context, customerID string) (*model.Subscription, error) {
	now := time.Now().UTC()
	var sub model.Subscription
	err := r.coll().FindOne(ctx, bson.M{
		"customerId": customerID,
		"status":     "active",
		"startDate":  bson.M{"$lte": now},
		"endDate":    bson.M{"$gte": now},
	}).Decode(&sub)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, &NotFoundError{Resource: "subscription"}
		}
		return nil, r.storageErr("active lookup", err)
	}
	return &sub, nil
}
