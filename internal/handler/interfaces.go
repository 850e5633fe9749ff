package handler

import (
	"context"
	"time"

	"github.com/segyhp/travel-crm/internal/casing"
	"github.com/segyhp/travel-crm/internal/domain"
	"github.com/segyhp/travel-crm/internal/service"
	"github.com/segyhp/travel-crm/internal/storage"
)

type RecordService interface {
	List(ctx context.Context, entity domain.Entity, query service.ListQuery) ([]casing.Record, error)
	Get(ctx context.Context, entity domain.Entity, id string) (casing.Record, error)
	Create(ctx context.Context, entity domain.Entity, input casing.Record) (casing.Record, error)
	Update(ctx context.Context, entity domain.Entity, id string, input casing.Record) (casing.Record, error)
	Delete(ctx context.Context, entity domain.Entity, id string) error
}

type ReminderService interface {
	List(ctx context.Context, now time.Time) ([]domain.Reminder, error)
}

type DashboardService interface {
	Summary(ctx context.Context, now time.Time) (*service.DashboardSummary, error)
}

type DocumentService interface {
	Upload(ctx context.Context, customerID, name, contentType string, data []byte) (*storage.ObjectInfo, error)
	List(ctx context.Context, customerID string) ([]storage.ObjectInfo, error)
	Download(ctx context.Context, customerID, name string) (*storage.Object, error)
	Delete(ctx context.Context, customerID, name string) error
}
