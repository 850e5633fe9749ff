package mocks

import (
	"context"
	"time"

	"github.com/segyhp/travel-crm/internal/casing"
	"github.com/segyhp/travel-crm/internal/repository"

	"github.com/stretchr/testify/mock"
)

type MockRecordRepository struct {
	mock.Mock
}

func (m *MockRecordRepository) List(ctx context.Context, schema *casing.Schema, filter repository.ListFilter) ([]casing.Record, error) {
	args := m.Called(ctx, schema, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]casing.Record), args.Error(1)
}

func (m *MockRecordRepository) Get(ctx context.Context, schema *casing.Schema, id string) (casing.Record, error) {
	args := m.Called(ctx, schema, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(casing.Record), args.Error(1)
}

func (m *MockRecordRepository) Create(ctx context.Context, schema *casing.Schema, record casing.Record) (casing.Record, error) {
	args := m.Called(ctx, schema, record)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(casing.Record), args.Error(1)
}

func (m *MockRecordRepository) Update(ctx context.Context, schema *casing.Schema, id string, record casing.Record) (casing.Record, error) {
	args := m.Called(ctx, schema, id, record)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(casing.Record), args.Error(1)
}

func (m *MockRecordRepository) Delete(ctx context.Context, schema *casing.Schema, id string) error {
	args := m.Called(ctx, schema, id)
	return args.Error(0)
}

func (m *MockRecordRepository) Ping(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

type MockSummaryCache struct {
	mock.Mock
}

func (m *MockSummaryCache) BuildKey(ctx context.Context, parts ...string) (string, error) {
	args := m.Called(ctx, parts)
	return args.String(0), args.Error(1)
}

func (m *MockSummaryCache) FetchJSON(ctx context.Context, key string, dest any, loader func(context.Context) (any, error)) error {
	args := m.Called(ctx, key, dest, loader)
	return args.Error(0)
}

func (m *MockSummaryCache) Bump(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockSummaryCache) Ping(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockSummaryCache) TTL() time.Duration {
	args := m.Called()
	return args.Get(0).(time.Duration)
}
