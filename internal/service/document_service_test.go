package service_test

import (
	"context"
	"testing"

	"github.com/segyhp/travel-crm/internal/casing"
	"github.com/segyhp/travel-crm/internal/domain"
	"github.com/segyhp/travel-crm/internal/mocks"
	"github.com/segyhp/travel-crm/internal/service"
	"github.com/segyhp/travel-crm/internal/storage"
	apperrors "github.com/segyhp/travel-crm/pkg/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const customerID = "0b7e6f7e-6a4d-4f0e-9a43-9f5c2f1a7c11"

func TestDocumentService_Upload(t *testing.T) {
	repo := &mocks.MockRecordRepository{}
	store := &mocks.MockDocumentStore{}
	svc := service.NewDocumentService(repo, store, quietLogger())

	data := []byte("%PDF-1.7")
	repo.On("Get", mock.Anything, domain.CustomerSchema, customerID).Return(casing.Record{"id": customerID}, nil)
	store.On("Upload", mock.Anything, "customers/"+customerID+"/passport.pdf", "application/pdf", data).Return(nil)

	info, err := svc.Upload(context.Background(), customerID, " passport.pdf ", "application/pdf", data)
	require.NoError(t, err)
	assert.Equal(t, "customers/"+customerID+"/passport.pdf", info.Key)
	assert.Equal(t, int64(8), info.Size)

	store.AssertExpectations(t)
}

func TestDocumentService_RejectsPathNames(t *testing.T) {
	svc := service.NewDocumentService(&mocks.MockRecordRepository{}, &mocks.MockDocumentStore{}, quietLogger())

	for _, name := range []string{"", "..", "../other/passport.pdf", "a/b.pdf", `a\b.pdf`} {
		_, err := svc.Download(context.Background(), customerID, name)
		assert.ErrorIs(t, err, apperrors.ErrValidation, name)
	}
}

func TestDocumentService_UnknownCustomer(t *testing.T) {
	repo := &mocks.MockRecordRepository{}
	store := &mocks.MockDocumentStore{}
	svc := service.NewDocumentService(repo, store, quietLogger())

	repo.On("Get", mock.Anything, domain.CustomerSchema, "missing").
		Return(nil, apperrors.WrapRecordNotFound("customers", "missing"))

	err := svc.Delete(context.Background(), "missing", "passport.pdf")
	assert.ErrorIs(t, err, apperrors.ErrRecordNotFound)
	store.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestDocumentService_ListUsesCustomerPrefix(t *testing.T) {
	repo := &mocks.MockRecordRepository{}
	store := &mocks.MockDocumentStore{}
	svc := service.NewDocumentService(repo, store, quietLogger())

	repo.On("Get", mock.Anything, domain.CustomerSchema, customerID).Return(casing.Record{"id": customerID}, nil)
	store.On("List", mock.Anything, "customers/"+customerID+"/").
		Return([]storage.ObjectInfo{{Key: "customers/" + customerID + "/visa.pdf", Size: 3}}, nil)

	docs, err := svc.List(context.Background(), customerID)
	require.NoError(t, err)
	require.Len(t, docs, 1)
}

func TestDocumentService_StorageDisabled(t *testing.T) {
	svc := service.NewDocumentService(&mocks.MockRecordRepository{}, nil, quietLogger())

	_, err := svc.List(context.Background(), customerID)
	assert.ErrorIs(t, err, apperrors.ErrStorageDisabled)

	_, err = svc.Upload(context.Background(), customerID, "passport.pdf", "", nil)
	assert.Equal(t, apperrors.ErrCodeStorageDisabled, apperrors.Code(err))
}
