package mocks

import (
	"context"
	"time"

	"github.com/segyhp/travel-crm/internal/casing"
	"github.com/segyhp/travel-crm/internal/domain"
	"github.com/segyhp/travel-crm/internal/service"
	"github.com/segyhp/travel-crm/internal/storage"

	"github.com/stretchr/testify/mock"
)

type MockRecordService struct {
	mock.Mock
}

func (m *MockRecordService) List(ctx context.Context, entity domain.Entity, query service.ListQuery) ([]casing.Record, error) {
	args := m.Called(ctx, entity, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]casing.Record), args.Error(1)
}

func (m *MockRecordService) Get(ctx context.Context, entity domain.Entity, id string) (casing.Record, error) {
	args := m.Called(ctx, entity, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(casing.Record), args.Error(1)
}

func (m *MockRecordService) Create(ctx context.Context, entity domain.Entity, input casing.Record) (casing.Record, error) {
	args := m.Called(ctx, entity, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(casing.Record), args.Error(1)
}

func (m *MockRecordService) Update(ctx context.Context, entity domain.Entity, id string, input casing.Record) (casing.Record, error) {
	args := m.Called(ctx, entity, id, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(casing.Record), args.Error(1)
}

func (m *MockRecordService) Delete(ctx context.Context, entity domain.Entity, id string) error {
	args := m.Called(ctx, entity, id)
	return args.Error(0)
}

type MockReminderService struct {
	mock.Mock
}

func (m *MockReminderService) List(ctx context.Context, now time.Time) ([]domain.Reminder, error) {
	args := m.Called(ctx, now)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Reminder), args.Error(1)
}

type MockDashboardService struct {
	mock.Mock
}

func (m *MockDashboardService) Summary(ctx context.Context, now time.Time) (*service.DashboardSummary, error) {
	args := m.Called(ctx, now)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.DashboardSummary), args.Error(1)
}

type MockDocumentService struct {
	mock.Mock
}

func (m *MockDocumentService) Upload(ctx context.Context, customerID, name, contentType string, data []byte) (*storage.ObjectInfo, error) {
	args := m.Called(ctx, customerID, name, contentType, data)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*storage.ObjectInfo), args.Error(1)
}

func (m *MockDocumentService) List(ctx context.Context, customerID string) ([]storage.ObjectInfo, error) {
	args := m.Called(ctx, customerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]storage.ObjectInfo), args.Error(1)
}

func (m *MockDocumentService) Download(ctx context.Context, customerID, name string) (*storage.Object, error) {
	args := m.Called(ctx, customerID, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*storage.Object), args.Error(1)
}

func (m *MockDocumentService) Delete(ctx context.Context, customerID, name string) error {
	args := m.Called(ctx, customerID, name)
	return args.Error(0)
}
