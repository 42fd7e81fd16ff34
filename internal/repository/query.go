package repository

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	defaultPage     = 1
	defaultPageSize = 10
)

// QueryOptions describes a filtered, optionally sorted, page-windowed
// read against a collection. A nil Filter matches everything. Page and
// PageSize of zero take the defaults.
type QueryOptions struct {
	Filter   bson.M
	Sort     bson.D
	Page     int
	PageSize int
}

// Result is the paginated envelope: one page of items plus the total
// count matching the filter, computed independently of the page
// window. Total pages is ceil(Total/PageSize).
type Result[T any] struct {
	Data     []T   `json:"data"`
	Page     int   `json:"page"`
	PageSize int   `json:"pageSize"`
	Total    int64 `json:"total"`
}

// paginate resolves the page window. Pages below 1 clamp to the first
// page and non-positive sizes clamp to the default, so a hostile
// ?page=0 can neither error out of the driver nor divide by zero.
func paginate(page, pageSize int) (skip, limit int64, p, size int) {
	if page < 1 {
		page = defaultPage
	}
	if pageSize <= 0 {
		pageSize = defaultPageSize
	}
	return int64(page-1) * int64(pageSize), int64(pageSize), page, pageSize
}

// Query executes a paginated read against the named collection and
// returns the page's items together with the full match count.
func Query[T any](ctx context.Context, db *mongo.Database, collection string, opts QueryOptions) (*Result[T], error) {
	filter := opts.Filter
	if filter == nil {
		filter = bson.M{}
	}
	skip, limit, page, size := paginate(opts.Page, opts.PageSize)

	coll := db.Collection(collection)
	total, err := coll.CountDocuments(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("count %s: %v: %w", collection, err, ErrStorage)
	}

	findOpts := options.Find().SetSkip(skip).SetLimit(limit)
	if len(opts.Sort) > 0 {
		findOpts.SetSort(opts.Sort)
	}
	cur, err := coll.Find(ctx, filter, findOpts)
	if err != nil {
		return nil, fmt.Errorf("find %s: %v: %w", collection, err, ErrStorage)
	}

	items := make([]T, 0, size)
	if err := cur.All(ctx, &items); err != nil {
		return nil, fmt.Errorf("decode %s: %v: %w", collection, err, ErrStorage)
	}

	return &Result[T]{Data: items, Page: page, PageSize: size, Total: total}, nil
}
