package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/segyhp/travel-crm/internal/casing"
	"github.com/segyhp/travel-crm/internal/domain"
	"github.com/segyhp/travel-crm/internal/repository"
	apperrors "github.com/segyhp/travel-crm/pkg/errors"
	"github.com/segyhp/travel-crm/pkg/utils"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const (
	keyID        = "id"
	keyCreatedAt = "createdAt"
	keyUpdatedAt = "updatedAt"

	keyCostTotal       = "costTotal"
	keyExpectedRevenue = "expectedRevenue"
)

var errInvalidActivities = errors.New("activities must be a JSON array")

// ListQuery is a listing request in application terms
type ListQuery struct {
	Search     string
	Status     string
	Tag        string
	CustomerID string
	// SortBy is an application key such as "passportExpiry"
	SortBy string
	Desc   bool
	Limit  int
	Offset int
}

// RecordService runs CRUD for every entity. Records enter and leave in
// application shape, the repository only ever sees storage shape.
type RecordService struct {
	repo      repository.RecordRepository
	cache     repository.SummaryCache
	validator *validator.Validate
	logger    *logrus.Logger
	now       func() time.Time
}

func NewRecordService(repo repository.RecordRepository, cache repository.SummaryCache, logger *logrus.Logger) *RecordService {
	return &RecordService{
		repo:      repo,
		cache:     cache,
		validator: domain.NewValidator(),
		logger:    logger,
		now:       time.Now,
	}
}

func (s *RecordService) List(ctx context.Context, entity domain.Entity, query ListQuery) ([]casing.Record, error) {
	schema := entity.Schema()
	if schema == nil {
		return nil, apperrors.WrapUnknownEntity(string(entity))
	}

	filter := repository.ListFilter{
		Search:        query.Search,
		SearchColumns: entity.SearchColumns(),
		Status:        query.Status,
		Tag:           strings.TrimSpace(query.Tag),
		CustomerID:    query.CustomerID,
		SortDesc:      query.Desc,
		Limit:         query.Limit,
		Offset:        query.Offset,
	}
	if field, ok := schema.Key(query.SortBy); ok {
		filter.SortBy = field.Storage
	}

	rows, err := s.repo.List(ctx, schema, filter)
	if err != nil {
		return nil, err
	}

	records := schema.ToApplicationAll(rows)
	for i := range records {
		records[i] = present(entity, records[i])
	}
	return records, nil
}

func (s *RecordService) Get(ctx context.Context, entity domain.Entity, id string) (casing.Record, error) {
	schema := entity.Schema()
	if schema == nil {
		return nil, apperrors.WrapUnknownEntity(string(entity))
	}

	row, err := s.repo.Get(ctx, schema, id)
	if err != nil {
		return nil, err
	}

	return present(entity, schema.ToApplication(row)), nil
}

// Create validates and stores a new record. Client supplied id and
// timestamps are replaced.
func (s *RecordService) Create(ctx context.Context, entity domain.Entity, input casing.Record) (casing.Record, error) {
	schema := entity.Schema()
	if schema == nil {
		return nil, apperrors.WrapUnknownEntity(string(entity))
	}

	record := clean(input)
	if err := normalize(entity, schema, record); err != nil {
		return nil, err
	}
	if err := s.validate(entity, record); err != nil {
		return nil, err
	}

	now := s.now().UTC()
	record[keyID] = uuid.NewString()
	record[keyCreatedAt] = now
	record[keyUpdatedAt] = now

	row, err := s.repo.Create(ctx, schema, schema.ToStorage(record))
	if err != nil {
		return nil, err
	}

	s.invalidate(ctx, entity)

	s.logger.WithFields(logrus.Fields{
		"entity": entity,
		"id":     record[keyID],
	}).Info("record created")

	return present(entity, schema.ToApplication(row)), nil
}

// Update applies the given fields on top of the stored record. The merged
// record must still be valid.
func (s *RecordService) Update(ctx context.Context, entity domain.Entity, id string, input casing.Record) (casing.Record, error) {
	schema := entity.Schema()
	if schema == nil {
		return nil, apperrors.WrapUnknownEntity(string(entity))
	}

	existing, err := s.repo.Get(ctx, schema, id)
	if err != nil {
		return nil, err
	}

	changes := clean(input)
	if err := normalize(entity, schema, changes); err != nil {
		return nil, err
	}
	merged := schema.ToApplication(existing)
	for key, value := range changes {
		merged[key] = value
	}
	if err := s.validate(entity, merged); err != nil {
		return nil, err
	}

	changes[keyUpdatedAt] = s.now().UTC()

	row, err := s.repo.Update(ctx, schema, id, schema.ToStorage(changes))
	if err != nil {
		return nil, err
	}

	s.invalidate(ctx, entity)

	s.logger.WithFields(logrus.Fields{
		"entity": entity,
		"id":     id,
		"fields": len(changes),
	}).Info("record updated")

	return present(entity, schema.ToApplication(row)), nil
}

func (s *RecordService) Delete(ctx context.Context, entity domain.Entity, id string) error {
	schema := entity.Schema()
	if schema == nil {
		return apperrors.WrapUnknownEntity(string(entity))
	}

	if err := s.repo.Delete(ctx, schema, id); err != nil {
		return err
	}

	s.invalidate(ctx, entity)

	s.logger.WithFields(logrus.Fields{
		"entity": entity,
		"id":     id,
	}).Info("record deleted")

	return nil
}

func (s *RecordService) validate(entity domain.Entity, record casing.Record) error {
	value, err := entity.NewValue()
	if err != nil {
		return apperrors.WrapUnknownEntity(string(entity))
	}
	if err := domain.Decode(record, value); err != nil {
		return apperrors.WrapValidation(string(entity), err)
	}
	if err := s.validator.Struct(value); err != nil {
		if hasDateRangeViolation(err) {
			err = errors.Join(apperrors.ErrInvalidDateRange, err)
		}
		return apperrors.WrapValidation(string(entity), err)
	}
	return nil
}

func hasDateRangeViolation(err error) bool {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return false
	}
	for _, fe := range verrs {
		if fe.Tag() == "daterange" {
			return true
		}
	}
	return false
}

// invalidate bumps the summary cache, logging failures
func (s *RecordService) invalidate(ctx context.Context, entity domain.Entity) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Bump(ctx); err != nil {
		s.logger.WithError(err).WithField("entity", entity).Warn("failed to invalidate dashboard cache")
	}
}

// normalize rewrites list valued fields into the form stored and filtered on:
// tags become trimmed non-empty strings, activities text must be a JSON array.
func normalize(entity domain.Entity, schema *casing.Schema, record casing.Record) error {
	for key, value := range record {
		field, ok := schema.Key(key)
		if !ok || value == nil {
			continue
		}
		switch field.Kind {
		case casing.Tags:
			record[key] = utils.NormalizeTagList(value)
		case casing.Activities:
			switch v := value.(type) {
			case []any:
			case string:
				activities, ok := utils.ParseActivityListStrict(v)
				if !ok {
					return apperrors.WrapValidation(string(entity), errInvalidActivities)
				}
				record[key] = activities
			default:
				return apperrors.WrapValidation(string(entity), errInvalidActivities)
			}
		}
	}
	return nil
}

// present adds derived figures to an outgoing record
func present(entity domain.Entity, record casing.Record) casing.Record {
	if entity != domain.EntityTour {
		return record
	}
	var tour domain.Tour
	if err := domain.Decode(record, &tour); err != nil {
		return record
	}
	record[keyCostTotal] = tour.CostTotal().StringFixed(2)
	record[keyExpectedRevenue] = tour.ExpectedRevenue().StringFixed(2)
	return record
}

// clean copies input without server managed keys
func clean(input casing.Record) casing.Record {
	out := make(casing.Record, len(input))
	for key, value := range input {
		switch strings.TrimSpace(key) {
		case keyID, keyCreatedAt, keyUpdatedAt, keyCostTotal, keyExpectedRevenue:
			continue
		}
		out[key] = value
	}
	return out
}
