package httpx

import (
	"context"
	"net/http"
	"strings"

	"github.com/lanternchat/lantern/pkg/jwtx"
	"github.com/lanternchat/lantern/pkg/slogx"
)

// AuthnMiddleware verifies the bearer credential of the given kind and
// injects the principal id, display attribute, and the raw token into
// the request context. Refresh handlers use KindRefresh so that an
// access token can never reach the rotation path.
func AuthnMiddleware(codec *jwtx.Codec, kind jwtx.Kind) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			log := slogx.FromContext(ctx)

			raw, ok := BearerToken(r)
			if !ok {
				writeBearerError(w, "missing bearer token")
				return
			}

			claims, err := codec.Verify(raw, kind)
			if err != nil {
				log.Warn("token verification failed", "kind", kind.String(), "err", err)
				writeBearerError(w, "token verification failed")
				return
			}

			ctx = context.WithValue(ctx, CtxKeyUserID, claims.Subject)
			ctx = context.WithValue(ctx, CtxKeyMobile, claims.Mobile)
			ctx = context.WithValue(ctx, CtxKeyRawToken, raw)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// BearerToken extracts the credential from an Authorization header.
func BearerToken(r *http.Request) (string, bool) {
	authz := r.Header.Get("Authorization")
	if authz == "" || !strings.HasPrefix(authz, "Bearer ") {
		return "", false
	}
	token := strings.TrimSpace(strings.TrimPrefix(authz, "Bearer"))
	return token, token != ""
}

// RFC 6750-compliant error response for bearer auth.
func writeBearerError(w http.ResponseWriter, desc string) {
	w.Header().Set("WWW-Authenticate", `Bearer error="invalid_token", error_description="`+desc+`"`)
	w.WriteHeader(http.StatusUnauthorized)
}
