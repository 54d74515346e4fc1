package apperr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHTTPStatus(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, HTTPStatus(InvalidErr("x", nil)))
	assert.Equal(t, http.StatusUnauthorized, HTTPStatus(UnauthorizedErr("x")))
	assert.Equal(t, http.StatusForbidden, HTTPStatus(ForbiddenErr("x")))
	assert.Equal(t, http.StatusNotFound, HTTPStatus(NotFoundErr("x")))
	assert.Equal(t, http.StatusConflict, HTTPStatus(ConflictErr("x")))
	assert.Equal(t, http.StatusInternalServerError, HTTPStatus(Wrap(errors.New("boom"))))
	assert.Equal(t, http.StatusInternalServerError, HTTPStatus(errors.New("plain")))
}

func TestPublicMessageNeverLeaksInternals(t *testing.T) {
	internal := Wrap(errors.New("dial tcp 10.0.0.5:3306: connection refused"))
	msg := PublicMessage(internal)
	assert.Equal(t, "حدث خطأ غير متوقع.", msg)
	assert.NotContains(t, msg, "3306")

	assert.Equal(t, "الطلب غير موجود.", PublicMessage(NotFoundErr("الطلب غير موجود.")))
	assert.Equal(t, "حدث خطأ غير متوقع.", PublicMessage(errors.New("plain")))
}

func TestWrapPreservesCause(t *testing.T) {
	cause := errors.New("boom")
	wrapped := Wrap(cause)
	assert.ErrorIs(t, wrapped, cause)

	// survives further wrapping
	outer := fmt.Errorf("handler: %w", wrapped)
	ae, ok := As(outer)
	assert.True(t, ok)
	assert.Equal(t, Internal, ae.Kind)
}

func TestWrapNil(t *testing.T) {
	assert.Nil(t, Wrap(nil))
}
