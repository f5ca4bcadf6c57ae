package http

import (
	"context"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-blog/internal/utils"
	"github.com/MKhiriev/go-blog/internal/validators"
)

type bodyCtxKey struct{}

// withJSONBody decodes the request body into T and validates it before next
// runs. A malformed body yields 400 [ErrInvalidJSON]; a body breaking the
// `validate` rules of T yields 400 with the per-field errors. The decoded
// value is read back with bodyFromContext.
func withJSONBody[T any](v validators.Validator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			var body T
			if err := utils.DecodeJSON(r, &body); err != nil {
				writeError(w, r, fmt.Errorf("%w: %w", ErrInvalidJSON, err))
				return
			}

			if err := v.Validate(r.Context(), body); err != nil {
				writeError(w, r, err)
				return
			}

			ctx := context.WithValue(r.Context(), bodyCtxKey{}, body)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// bodyFromContext returns the body stored by withJSONBody. ok is false when
// the route is not wrapped by withJSONBody for the same T.
func bodyFromContext[T any](ctx context.Context) (T, bool) {
	body, ok := ctx.Value(bodyCtxKey{}).(T)
	return body, ok
}
