package apperr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHTTPStatus(t *testing.T) {
	assert.Equal(t, http.StatusNotFound, HTTPStatus(NotFound("gone")))
	assert.Equal(t, http.StatusForbidden, HTTPStatus(Forbidden("no")))
	assert.Equal(t, http.StatusBadRequest, HTTPStatus(Validation("bad")))
	assert.Equal(t, http.StatusConflict, HTTPStatus(Conflict("taken")))
	assert.Equal(t, http.StatusBadGateway, HTTPStatus(Upstream("down", errors.New("boom"))))
	assert.Equal(t, http.StatusInternalServerError, HTTPStatus(errors.New("plain")))
}

func TestErrorMessage(t *testing.T) {
	assert.Equal(t, "gone", NotFound("gone").Error())
	assert.Equal(t, "down: boom", Upstream("down", errors.New("boom")).Error())
}

func TestWrapKeepsCode(t *testing.T) {
	inner := NotFound("row missing")
	wrapped := Wrap(fmt.Errorf("loading record: %w", inner), "loading record")
	assert.Equal(t, http.StatusNotFound, HTTPStatus(wrapped))

	plain := Wrap(errors.New("disk on fire"), "saving")
	assert.Equal(t, http.StatusInternalServerError, HTTPStatus(plain))

	assert.Nil(t, Wrap(nil, "nothing"))
}
