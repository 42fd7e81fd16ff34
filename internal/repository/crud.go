package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

// document is what the CRUD helpers need from a stored type: every
// entity embeds model.Meta, which provides both methods.
type document interface {
	SetID(primitive.ObjectID)
	StampCreated(time.Time)
}

// Collection provides the uniform create/get/update/delete/list
// operations for one entity type. T is the document struct; its
// validate tags are the schema. The resource name feeds not-found and
// log messages ("meal not found", "update meal failed").
type Collection[T any, PT interface {
	*T
	document
}] struct {
	db       *mongo.Database
	name     string
	resource string
	validate *validator.Validate
	log      *zap.Logger
}

// NewCollection wires a CRUD helper for one collection.
func NewCollection[T any, PT interface {
	*T
	document
}](db *mongo.Database, name, resource string, v *validator.Validate, log *zap.Logger) *Collection[T, PT] {
	return &Collection[T, PT]{db: db, name: name, resource: resource, validate: v, log: log}
}

func (c *Collection[T, PT]) coll() *mongo.Collection { return c.db.Collection(c.name) }

// Create validates the document against its schema, stamps the
// creation time, inserts it and returns it with the assigned id.
// Uniqueness is not checked here; callers that need it (users.email)
// enforce it with an index and map the duplicate-key error themselves.
func (c *Collection[T, PT]) Create(ctx context.Context, doc PT) (PT, error) {
	if err := c.validate.Struct(doc); err != nil {
		return nil, asValidationError(err)
	}
	doc.SetID(primitive.ObjectID{}) // ids are always storage-assigned
	doc.StampCreated(time.Now().UTC())

	res, err := c.coll().InsertOne(ctx, doc)
	if err != nil {
		return nil, c.storageErr("create", err)
	}
	if id, ok := res.InsertedID.(primitive.ObjectID); ok {
		doc.SetID(id)
	}
	return doc, nil
}

// Get fetches a document by id. A malformed id fails with ErrInvalidID
// before any storage call; a missing document yields a NotFoundError
// scoped to the resource.
func (c *Collection[T, PT]) Get(ctx context.Context, id string) (PT, error) {
	oid, err := ParseID(id)
	if err != nil {
		return nil, err
	}
	var out T
	if err := c.coll().FindOne(ctx, bson.M{"_id": oid}).Decode(&out); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, &NotFoundError{Resource: c.resource}
		}
		return nil, c.storageErr("get", err)
	}
	return PT(&out), nil
}

// Update validates the provided fields, stamps an update time and
// applies a $set with only those fields. It returns the post-update
// document, or NotFoundError when nothing matched the id.
func (c *Collection[T, PT]) Update(ctx context.Context, id string, input any) (PT, error) {
	oid, err := ParseID(id)
	if err != nil {
		return nil, err
	}
	if err := c.validate.Struct(input); err != nil {
		return nil, asValidationError(err)
	}
	set, err := updateFields(input, time.Now().UTC())
	if err != nil {
		return nil, c.storageErr("update", err)
	}

	res, err := c.coll().UpdateByID(ctx, oid, bson.M{"$set": set})
	if err != nil {
		return nil, c.storageErr("update", err)
	}
	if res.MatchedCount == 0 {
		return nil, &NotFoundError{Resource: c.resource}
	}
	return c.Get(ctx, id)
}

// Delete removes a document by id, failing with NotFoundError when
// nothing was deleted.
func (c *Collection[T, PT]) Delete(ctx context.Context, id string) error {
	oid, err := ParseID(id)
	if err != nil {
		return err
	}
	res, err := c.coll().DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return c.storageErr("delete", err)
	}
	if res.DeletedCount == 0 {
		return &NotFoundError{Resource: c.resource}
	}
	return nil
}

// List returns every document matching the filter, optionally sorted.
// Pagination-aware callers go through Paginate instead.
func (c *Collection[T, PT]) List(ctx context.Context, filter bson.M, sort bson.D) ([]T, error) {
	if filter == nil {
		filter = bson.M{}
	}
	opts := listOptions(sort)
	cur, err := c.coll().Find(ctx, filter, opts)
	if err != nil {
		return nil, c.storageErr("list", err)
	}
	items := make([]T, 0)
	if err := cur.All(ctx, &items); err != nil {
		return nil, c.storageErr("list", err)
	}
	return items, nil
}

// Paginate runs the generic query engine against this collection.
func (c *Collection[T, PT]) Paginate(ctx context.Context, opts QueryOptions) (*Result[T], error) {
	res, err := Query[T](ctx, c.db, c.name, opts)
	if err != nil {
		c.log.Error("paginate failed", zap.String("resource", c.resource), zap.Error(err))
	}
	return res, err
}

// storageErr logs the underlying failure with operation context and
// returns an ErrStorage-marked error. The driver error stays in the
// chain for callers that branch on it (duplicate keys); handlers only
// ever surface the generic message. Duplicate-key violations are an
// expected conflict flow, so they log at Warn rather than Error.
func (c *Collection[T, PT]) storageErr(op string, err error) error {
	msg := op + " " + c.resource + " failed"
	if mongo.IsDuplicateKeyError(err) {
		c.log.Warn(msg, zap.Error(err))
	} else {
		c.log.Error(msg, zap.Error(err))
	}
	return fmt.Errorf("%s %s: %w", op, c.resource, errors.Join(ErrStorage, err))
}

func listOptions(sort bson.D) *options.FindOptions {
	o := options.Find()
	if len(sort) > 0 {
		o.SetSort(sort)
	}
	return o
}

// ParseID validates and converts a hex ObjectID string.
func ParseID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.ObjectID{}, ErrInvalidID
	}
	return oid, nil
}

// toSetFields marshals a partial-input struct to the bson document for
// a $set. Fields left nil are dropped by their omitempty tags, so only
// provided values are written.
func toSetFields(input any) (bson.M, error) {
	raw, err := bson.Marshal(input)
	if err != nil {
		return nil, err
	}
	var set bson.M
	if err := bson.Unmarshal(raw, &set); err != nil {
		return nil, err
	}
	return set, nil
}

// updateFields builds the full $set document for a partial update: the
// provided fields plus a fresh updatedAt stamp.
func updateFields(input any, now time.Time) (bson.M, error) {
	set, err := toSetFields(input)
	if err != nil {
		return nil, err
	}
	set["updatedAt"] = now
	return set, nil
}
