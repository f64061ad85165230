package idempotency

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/redis/go-redis/v9"

	"pawmart/pkg/httpx"
)

// HeaderKey is the client-supplied replay token. Order creation is two
// separate writes (insert order, clear cart), so a naive client retry after
// a crash in between can place the same order twice. Clients that care send
// this header; requests without it keep the original last-writer-wins
// behavior.
const HeaderKey = "Idempotency-Key"

type Store struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewStore(rdb *redis.Client, ttl time.Duration) *Store {
	return &Store{rdb: rdb, ttl: ttl}
}

func (s *Store) Key(scope, token string) string {
	return fmt.Sprintf("idem:%s:%s", scope, token)
}

// Seen records the key and reports whether it was already present.
func (s *Store) Seen(ctx context.Context, key string) (bool, error) {
	ok, err := s.rdb.SetNX(ctx, key, "1", s.ttl).Result()
	if err != nil {
		return false, err
	}
	return !ok, nil
}

// Release frees a key claimed by Seen so the token can be retried.
func (s *Store) Release(ctx context.Context, key string) error {
	return s.rdb.Del(ctx, key).Err()
}

// Middleware rejects replays of requests carrying an Idempotency-Key.
// Only an accepted request burns its key; a 4xx or 5xx outcome releases
// it so the same token can be retried. The guard is advisory: when Redis
// is unreachable the request proceeds.
func Middleware(log *slog.Logger, store *Store, scope string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := r.Header.Get(HeaderKey)
			if token == "" || store == nil {
				next.ServeHTTP(w, r)
				return
			}

			key := store.Key(scope, token)
			seen, err := store.Seen(r.Context(), key)
			if err != nil {
				log.Error("idempotency check failed", "scope", scope, "err", err)
				next.ServeHTTP(w, r)
				return
			}
			if seen {
				httpx.RespondError(w, http.StatusConflict, "duplicate_request",
					"request with this idempotency key was already accepted")
				return
			}

			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r)

			// A rejected request did not place an order; free the key so a
			// corrected retry with the same token is not locked out until
			// the TTL expires.
			if ww.Status() >= http.StatusBadRequest {
				ctx := context.WithoutCancel(r.Context())
				if err := store.Release(ctx, key); err != nil {
					log.Error("idempotency release failed", "scope", scope, "err", err)
				}
			}
		})
	}
}
