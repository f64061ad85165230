package session

import (
	"net/http"

	"github.com/google/uuid"
)

// Header carries the client-chosen session token. The storefront picks a
// token once per browser and replays it on every request; carts and orders
// are scoped by it.
const Header = "x-session-id"

// FromRequest returns the session ID supplied by the client, or mints a
// fresh one when the header is absent. The generated token is not persisted
// anywhere; callers decide what to do with it.
func FromRequest(r *http.Request) string {
	if id := r.Header.Get(Header); id != "" {
		return id
	}
	return uuid.NewString()
}
