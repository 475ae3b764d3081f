package apperror_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/mikiasgoitom/BazaarHub/internal/domain/apperror"
	"github.com/stretchr/testify/assert"
)

func TestFrom_KeepsAppError(t *testing.T) {
	err := fmt.Errorf("wrapped: %w", apperror.Conflict("email already exists"))

	appErr := apperror.From(err)

	assert.Equal(t, http.StatusConflict, appErr.StatusCode)
	assert.Equal(t, "email already exists", appErr.Message)
}

func TestFrom_UnknownBecomesInternal(t *testing.T) {
	cause := errors.New("connection reset")

	appErr := apperror.From(cause)

	assert.Equal(t, http.StatusInternalServerError, appErr.StatusCode)
	assert.Equal(t, "internal server error", appErr.Message)
	assert.ErrorIs(t, appErr, cause)
}

func TestFrom_Nil(t *testing.T) {
	assert.Nil(t, apperror.From(nil))
}

func TestStatusOf(t *testing.T) {
	assert.Equal(t, http.StatusNotFound, apperror.StatusOf(apperror.NotFound("x")))
	assert.Equal(t, http.StatusForbidden, apperror.StatusOf(apperror.Forbidden("x")))
	assert.Equal(t, http.StatusInternalServerError, apperror.StatusOf(errors.New("x")))
}
