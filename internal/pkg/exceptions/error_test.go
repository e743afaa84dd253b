package exceptions

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildNewCustomError_KeepsCauseReachable(t *testing.T) {
	customErr := ErrServerDeadlineExceeded(context.DeadlineExceeded)

	assert.Equal(t, 504, customErr.StatusCode)
	assert.True(t, errors.Is(customErr, context.DeadlineExceeded))
	assert.Contains(t, customErr.Error(), context.DeadlineExceeded.Error())
	require.Len(t, customErr.Locations, 1)
	assert.NotEmpty(t, customErr.Locations[0].File)
}

func TestBuildNewCustomError_WrapsExistingCustomError(t *testing.T) {
	inner := ErrPostgresDBInsertData(errors.New("duplicate key value violates unique constraint"))
	outer := ErrProfileInsert(inner)

	assert.Equal(t, 400, outer.StatusCode)
	assert.Equal(t, "failed to create the profile: duplicate key value violates unique constraint", outer.ClientMessage)
	assert.Len(t, outer.Locations, 2)

	var unwrapped *CustomError
	require.True(t, errors.As(outer.Unwrap(), &unwrapped))
	assert.Same(t, inner, unwrapped)
}

func TestErrBackend_RelaysMessageVerbatim(t *testing.T) {
	customErr := ErrBackend(errors.New("User already registered"))

	assert.Equal(t, 400, customErr.StatusCode)
	assert.Equal(t, "User already registered", customErr.ClientMessage)
	assert.False(t, customErr.Success)
}

func TestErrRoleForbidden_NamesRequestedRole(t *testing.T) {
	customErr := ErrRoleForbidden("doctor")

	assert.Equal(t, 403, customErr.StatusCode)
	assert.Equal(t, fmt.Sprintf("you are not allowed to sign in as %s", "doctor"), customErr.ClientMessage)
	assert.Nil(t, customErr.Unwrap())
}

func TestWrapWithoutError(t *testing.T) {
	customErr := WrapWithoutError(410, "gone", "dev gone")

	assert.Equal(t, "dev gone", customErr.Error())
	assert.Nil(t, customErr.Err)
	require.Len(t, customErr.Locations, 1)
}

func TestErrSendHTTPRequest_HidesTransportDetail(t *testing.T) {
	cause := errors.New(`Post "http://10.0.0.7:54321/auth/v1/signup": dial tcp 10.0.0.7:54321: connect: connection refused`)

	customErr := ErrSendHTTPRequest(cause)

	assert.Equal(t, 502, customErr.StatusCode)
	assert.Equal(t, "the service is temporarily unavailable, please try again later", customErr.ClientMessage)
	assert.NotContains(t, customErr.ClientMessage, "10.0.0.7")
	assert.Contains(t, customErr.Error(), "connection refused")
	assert.True(t, errors.Is(customErr, cause))
}

func TestErrInvalidDataURL_UsesClientMessage(t *testing.T) {
	customErr := ErrInvalidDataURL(errors.New("illegal base64 data at input byte 4"))

	assert.Equal(t, 400, customErr.StatusCode)
	assert.Equal(t, "cv must be a base64 encoded document", customErr.ClientMessage)
	assert.NotEqual(t, customErr.ClientMessage, customErr.DevMessage)
}
