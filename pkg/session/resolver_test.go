package session

import (
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromRequest_UsesClientHeader(t *testing.T) {
	r := httptest.NewRequest("GET", "/api/cart", nil)
	r.Header.Set(Header, "session-abc")

	assert.Equal(t, "session-abc", FromRequest(r))
}

func TestFromRequest_MintsUUIDWhenHeaderAbsent(t *testing.T) {
	r := httptest.NewRequest("GET", "/api/cart", nil)

	id := FromRequest(r)
	_, err := uuid.Parse(id)
	require.NoError(t, err)

	// Each call without a header gets a distinct session.
	assert.NotEqual(t, id, FromRequest(r))
}
