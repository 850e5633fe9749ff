package handler

import (
	"crypto/subtle"
	"net/http"

	"github.com/segyhp/travel-crm/internal/config"
	"github.com/segyhp/travel-crm/pkg/response"

	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
)

// BasicAuth guards the API with the seeded admin account. Without a
// configured admin every request passes.
func BasicAuth(seed config.SeedConfig, logger *logrus.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if seed.AdminEmail == "" {
			return next
		}

		hash := []byte(seed.AdminPasswordHash)
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method == http.MethodOptions {
				next.ServeHTTP(w, r)
				return
			}

			email, password, ok := r.BasicAuth()
			if !ok ||
				subtle.ConstantTimeCompare([]byte(email), []byte(seed.AdminEmail)) != 1 ||
				bcrypt.CompareHashAndPassword(hash, []byte(password)) != nil {
				logger.WithFields(logrus.Fields{
					"path":   r.URL.Path,
					"remote": r.RemoteAddr,
				}).Warn("rejected credentials")

				w.Header().Set("WWW-Authenticate", `Basic realm="travel-crm"`)
				response.Unauthorized(w, "Invalid credentials")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
