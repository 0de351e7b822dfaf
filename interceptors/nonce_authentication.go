package interceptors

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"net/http"

	"github.com/companieshouse/chs.go/log"
	"github.com/wpppc/checkout-client-api/config"
	"github.com/wpppc/checkout-client-api/helpers"
)

// Session and nonce headers presented by the browser-side bridge
const (
	SessionHeader = "X-Session-ID"
	NonceHeader   = "X-Checkout-Nonce"
)

const nonceLength = 12

// CreateSessionNonce derives the short-lived nonce handed to the browser for
// a session. The same derivation runs on verification, so nothing is stored.
func CreateSessionNonce(sessionID, secret string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(sessionID))
	return hex.EncodeToString(mac.Sum(nil))[:nonceLength]
}

// NonceInterceptor guards the browser-facing endpoints
type NonceInterceptor struct {
	Config config.Config
}

// NonceAuthenticationIntercept checks the session nonce on the request and,
// when valid, stores the session id in the request context
func (interceptor *NonceInterceptor) NonceAuthenticationIntercept(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sessionID := r.Header.Get(SessionHeader)
		nonce := r.Header.Get(NonceHeader)
		if sessionID == "" || nonce == "" {
			log.InfoR(r, "no session or nonce header presented")
			w.WriteHeader(http.StatusUnauthorized)
			return
		}

		expected := CreateSessionNonce(sessionID, interceptor.Config.NonceSecret)
		if subtle.ConstantTimeCompare([]byte(nonce), []byte(expected)) != 1 {
			log.InfoR(r, "invalid session nonce presented")
			w.WriteHeader(http.StatusUnauthorized)
			return
		}

		ctx := context.WithValue(r.Context(), helpers.ContextKeySessionID, sessionID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
