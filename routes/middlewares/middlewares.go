package middlewares

import (
	"net/http"
	"time"

	"github.com/felixge/httpsnoop"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/Jrmarques7/ISABELA-TCC/httpx"
	"github.com/Jrmarques7/ISABELA-TCC/log"
)

// Admin requires basic-auth admin credentials. A nil creds disables the check.
func Admin(creds *httpx.AdminCredentials) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if creds == nil {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user, pass, ok := r.BasicAuth()
			if !ok {
				w.Header().Set("WWW-Authenticate", `Basic realm="pesquisa", charset="UTF-8"`)
				httpx.LogStatusMsg(w, r, http.StatusUnauthorized, log.DebugLevel, "admin.basic_auth", "autenticação necessária")
				return
			}
			if err := creds.ValidateUser(user, pass); err != nil {
				w.Header().Set("WWW-Authenticate", `Basic realm="pesquisa", charset="UTF-8"`)
				httpx.LogStatusMsg(w, r, http.StatusUnauthorized, log.WarnLevel, "admin.credentials", "credenciais inválidas")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// Logger logs one line per request with its status, size and duration.
func Logger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		m := httpsnoop.CaptureMetrics(next, w, r)

		entry := log.WithFields(log.Fields{
			"method":   r.Method,
			"path":     r.URL.Path,
			"status":   m.Code,
			"bytes":    m.Written,
			"duration": m.Duration.Round(time.Microsecond).String(),
			"remote":   r.RemoteAddr,
		})
		if id := middleware.GetReqID(r.Context()); id != "" {
			entry = entry.WithField("request_id", id)
		}

		switch {
		case m.Code >= 500:
			entry.Error("request")
		case m.Code >= 400:
			entry.Info("request")
		default:
			entry.Debug("request")
		}
	})
}
