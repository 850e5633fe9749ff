package handler

import (
	"errors"
	"net/http"

	apperrors "github.com/segyhp/travel-crm/pkg/errors"
	"github.com/segyhp/travel-crm/pkg/response"

	"github.com/sirupsen/logrus"
)

// writeError maps a service error onto an HTTP response
func writeError(w http.ResponseWriter, logger *logrus.Logger, err error) {
	var be *apperrors.BusinessError
	if !errors.As(err, &be) {
		logger.WithError(err).Error("unhandled error")
		response.InternalServerError(w, "Internal server error", nil)
		return
	}

	switch be.Code {
	case apperrors.ErrCodeRecordNotFound, apperrors.ErrCodeDocumentNotFound, apperrors.ErrCodeUnknownEntity:
		response.ErrorWithCode(w, http.StatusNotFound, be.Code, be.Message, nil)
	case apperrors.ErrCodeValidation:
		response.ErrorWithCode(w, http.StatusBadRequest, be.Code, be.Message, nil)
	case apperrors.ErrCodeStorageDisabled:
		response.ErrorWithCode(w, http.StatusServiceUnavailable, be.Code, be.Message, nil)
	default:
		logger.WithError(err).WithField("code", be.Code).Error("request failed")
		response.ErrorWithCode(w, http.StatusInternalServerError, be.Code, be.Message, nil)
	}
}
