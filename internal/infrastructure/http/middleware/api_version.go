package middleware

import "net/http"

// APIVersionHeader is set on every response.
const APIVersionHeader = "X-API-Version"

// APIVersion returns a middleware that stamps the API version on responses.
func APIVersion(version string) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set(APIVersionHeader, version)
			next.ServeHTTP(w, r)
		})
	}
}
