package app

import (
	"fmt"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestIsInvalidRequestError(t *testing.T) {
	stdErr := errors.New("simple error")
	assert.False(t, IsInvalidRequestError(stdErr))

	irErr := InvalidRequestError("invalid request")
	assert.True(t, IsInvalidRequestError(irErr))

	wrapperErr := fmt.Errorf("wrapping message: %w", irErr)
	assert.True(t, IsInvalidRequestError(wrapperErr))

	pkgWrapperErr := errors.Wrap(irErr, "wrapping message")
	assert.True(t, IsInvalidRequestError(pkgWrapperErr))

	assert.False(t, IsInvalidRequestError(NotFoundError("not found")))
}

func TestIsNotFoundError(t *testing.T) {
	assert.False(t, IsNotFoundError(errors.New("simple error")))

	nfErr := NotFoundError("collective not found")
	assert.True(t, IsNotFoundError(nfErr))
	assert.True(t, IsNotFoundError(errors.Wrap(nfErr, "fetching members")))
}

func TestIsTransportError(t *testing.T) {
	assert.False(t, IsTransportError(errors.New("simple error")))
	assert.False(t, IsTransportError(InvalidRequestError("invalid")))

	cause := errors.New("connection refused")
	tErr := NewTransportError("doing http request", cause)
	assert.True(t, IsTransportError(tErr))
	assert.True(t, IsTransportError(fmt.Errorf("fetching members: %w", tErr)))
	assert.Equal(t, cause, errors.Cause(tErr.Unwrap()))
	assert.Equal(t, "transport: doing http request: connection refused", tErr.Error())
}
