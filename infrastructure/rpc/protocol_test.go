package rpc_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/bitbridge/domain"
	"github.com/rios0rios0/bitbridge/infrastructure/rpc"
)

func TestNewResponse(t *testing.T) {
	t.Parallel()

	t.Run("should wrap a result in a success envelope", func(t *testing.T) {
		t.Parallel()

		// given
		data := map[string]any{"ok": true}

		// when
		response := rpc.NewResponse(nil, data, nil)

		// then
		assert.True(t, response.Success)
		assert.Nil(t, response.Error)
		assert.Equal(t, data, response.Data)
	})

	t.Run("should map a remote API error with its status", func(t *testing.T) {
		t.Parallel()

		// given
		err := &domain.RemoteAPIError{StatusCode: 404, Status: "404 Not Found", Message: "gone"}

		// when
		response := rpc.NewResponse(nil, nil, err)

		// then
		require.NotNil(t, response.Error)
		assert.Equal(t, rpc.CodeRemoteAPIError, response.Error.Code)
		details, ok := response.Error.Details.(map[string]any)
		require.True(t, ok)
		assert.Equal(t, 404, details["status"])
	})

	t.Run("should map a transport error", func(t *testing.T) {
		t.Parallel()

		// given
		err := &domain.TransportError{Err: errors.New("connection refused")}

		// when
		response := rpc.NewResponse(nil, nil, err)

		// then
		require.NotNil(t, response.Error)
		assert.Equal(t, rpc.CodeTransportError, response.Error.Code)
	})

	t.Run("should map anything else to an internal error", func(t *testing.T) {
		t.Parallel()

		// given
		err := errors.New("boom")

		// when
		response := rpc.NewResponse(nil, nil, err)

		// then
		require.NotNil(t, response.Error)
		assert.Equal(t, rpc.CodeInternalError, response.Error.Code)
		assert.Equal(t, "boom", response.Error.Message)
	})
}
