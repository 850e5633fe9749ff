package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBusinessError_Wrapping(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		sentinel error
		code     string
	}{
		{name: "record not found", err: WrapRecordNotFound("tours", "t-1"), sentinel: ErrRecordNotFound, code: ErrCodeRecordNotFound},
		{name: "validation", err: WrapValidation("customers", errors.New("email invalid")), sentinel: ErrValidation, code: ErrCodeValidation},
		{name: "unknown entity", err: WrapUnknownEntity("invoices"), sentinel: ErrUnknownEntity, code: ErrCodeUnknownEntity},
		{name: "document not found", err: WrapDocumentNotFound("customers/c-1/x.pdf"), sentinel: ErrDocumentNotFound, code: ErrCodeDocumentNotFound},
		{name: "storage disabled", err: WrapStorageDisabled(), sentinel: ErrStorageDisabled, code: ErrCodeStorageDisabled},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wrapped := fmt.Errorf("handler: %w", tt.err)
			assert.ErrorIs(t, wrapped, tt.sentinel)
			assert.Equal(t, tt.code, Code(wrapped))
		})
	}
}

func TestWrapValidation_KeepsCause(t *testing.T) {
	cause := errors.New("name required")
	err := WrapValidation("tours", cause)

	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "invalid tours record: name required")
}

func TestCode_PlainError(t *testing.T) {
	assert.Equal(t, "", Code(errors.New("boom")))
	assert.Equal(t, "", Code(nil))
}
