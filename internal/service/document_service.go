package service

import (
	"context"
	"errors"
	"path"
	"strings"

	"github.com/segyhp/travel-crm/internal/domain"
	"github.com/segyhp/travel-crm/internal/repository"
	"github.com/segyhp/travel-crm/internal/storage"
	apperrors "github.com/segyhp/travel-crm/pkg/errors"

	"github.com/sirupsen/logrus"
)

var errInvalidDocumentName = errors.New("document name must be a plain file name")

// DocumentService keeps files attached to customers, such as passport scans.
// Documents live under customers/{customerId}/ in the bucket.
type DocumentService struct {
	repo   repository.RecordRepository
	store  storage.DocumentStore
	logger *logrus.Logger
}

// NewDocumentService accepts a nil store, in which case every call reports
// that storage is disabled.
func NewDocumentService(repo repository.RecordRepository, store storage.DocumentStore, logger *logrus.Logger) *DocumentService {
	return &DocumentService{repo: repo, store: store, logger: logger}
}

func (s *DocumentService) Upload(ctx context.Context, customerID, name, contentType string, data []byte) (*storage.ObjectInfo, error) {
	key, err := s.key(ctx, customerID, name)
	if err != nil {
		return nil, err
	}

	if err := s.store.Upload(ctx, key, contentType, data); err != nil {
		return nil, err
	}

	s.logger.WithFields(logrus.Fields{
		"customer_id": customerID,
		"document":    name,
		"size":        len(data),
	}).Info("customer document stored")

	return &storage.ObjectInfo{Key: key, Size: int64(len(data))}, nil
}

func (s *DocumentService) List(ctx context.Context, customerID string) ([]storage.ObjectInfo, error) {
	if s.store == nil {
		return nil, apperrors.WrapStorageDisabled()
	}
	if _, err := s.repo.Get(ctx, domain.CustomerSchema, customerID); err != nil {
		return nil, err
	}
	return s.store.List(ctx, customerPrefix(customerID))
}

func (s *DocumentService) Download(ctx context.Context, customerID, name string) (*storage.Object, error) {
	key, err := s.key(ctx, customerID, name)
	if err != nil {
		return nil, err
	}
	return s.store.Download(ctx, key)
}

func (s *DocumentService) Delete(ctx context.Context, customerID, name string) error {
	key, err := s.key(ctx, customerID, name)
	if err != nil {
		return err
	}
	return s.store.Delete(ctx, key)
}

// key checks storage, the document name and the customer, in that order
func (s *DocumentService) key(ctx context.Context, customerID, name string) (string, error) {
	if s.store == nil {
		return "", apperrors.WrapStorageDisabled()
	}

	clean := strings.TrimSpace(name)
	if clean == "" || clean != path.Base(clean) || clean == "." || clean == ".." || strings.Contains(clean, `\`) {
		return "", apperrors.WrapValidation("document", errInvalidDocumentName)
	}

	if _, err := s.repo.Get(ctx, domain.CustomerSchema, customerID); err != nil {
		return "", err
	}

	return customerPrefix(customerID) + clean, nil
}

func customerPrefix(customerID string) string {
	return "customers/" + customerID + "/"
}
