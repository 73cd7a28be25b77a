package domain_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rios0rios0/bitbridge/domain"
)

func TestErrorKinds(t *testing.T) {
	t.Parallel()

	t.Run("should include the status in a remote API error message", func(t *testing.T) {
		t.Parallel()

		// given
		err := &domain.RemoteAPIError{StatusCode: 404, Status: "404 Not Found", Message: "gone"}

		// when
		message := err.Error()

		// then
		assert.Contains(t, message, "404")
		assert.Contains(t, message, "gone")
	})

	t.Run("should fall back to the status text without a message", func(t *testing.T) {
		t.Parallel()

		// given
		err := &domain.RemoteAPIError{StatusCode: 502, Status: "502 Bad Gateway"}

		// when
		message := err.Error()

		// then
		assert.Contains(t, message, "502 Bad Gateway")
	})

	t.Run("should keep the two error kinds distinct", func(t *testing.T) {
		t.Parallel()

		// given
		remote := fmt.Errorf("call failed: %w",
			&domain.RemoteAPIError{StatusCode: 500, Status: "500 Internal Server Error"})
		transport := fmt.Errorf("call failed: %w",
			&domain.TransportError{Err: errors.New("connection refused")})

		// then
		assert.True(t, domain.IsRemoteAPIError(remote))
		assert.False(t, domain.IsTransportError(remote))
		assert.True(t, domain.IsTransportError(transport))
		assert.False(t, domain.IsRemoteAPIError(transport))
	})

	t.Run("should unwrap the underlying transport failure", func(t *testing.T) {
		t.Parallel()

		// given
		cause := errors.New("dial tcp: connection refused")
		err := &domain.TransportError{Err: cause}

		// then
		assert.ErrorIs(t, err, cause)
	})
}
