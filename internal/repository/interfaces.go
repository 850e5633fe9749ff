package repository

import (
	"context"
	"time"

	"github.com/segyhp/travel-crm/internal/casing"
)

// ListFilter narrows and orders a record listing. Empty fields do not filter.
type ListFilter struct {
	// Search is matched case-insensitively against SearchColumns
	Search        string
	SearchColumns []string
	Status        string
	Tag           string
	CustomerID    string
	// SortBy is a storage column, created_at when empty or undeclared
	SortBy   string
	SortDesc bool
	Limit    int
	Offset   int
}

// RecordRepository persists storage-shape records of any declared schema
type RecordRepository interface {
	// List returns the records of the schema's table matching the filter
	List(ctx context.Context, schema *casing.Schema, filter ListFilter) ([]casing.Record, error)

	// Get retrieves a record by id
	Get(ctx context.Context, schema *casing.Schema, id string) (casing.Record, error)

	// Create inserts a record and returns the stored row
	Create(ctx context.Context, schema *casing.Schema, record casing.Record) (casing.Record, error)

	// Update overwrites the given columns of a record and returns the stored row
	Update(ctx context.Context, schema *casing.Schema, id string, record casing.Record) (casing.Record, error)

	// Delete removes a record by id
	Delete(ctx context.Context, schema *casing.Schema, id string) error

	// Ping checks the database connection
	Ping(ctx context.Context) error
}

// SummaryCache stores derived JSON payloads under a version that any write bumps
type SummaryCache interface {
	// BuildKey composes a key under the current version
	BuildKey(ctx context.Context, parts ...string) (string, error)

	// FetchJSON loads key into dest, populating it with loader on a miss
	FetchJSON(ctx context.Context, key string, dest any, loader func(context.Context) (any, error)) error

	// Bump invalidates every key built before the call
	Bump(ctx context.Context) error

	// Ping checks the cache connection
	Ping(ctx context.Context) error

	TTL() time.Duration
}
