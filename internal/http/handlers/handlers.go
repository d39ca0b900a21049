package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/alexedwards/argon2id"

	"github.com/kingresort/booking-api/internal/http/response"
	"github.com/kingresort/booking-api/internal/service"
	"github.com/kingresort/booking-api/pkg/auth"
	"github.com/kingresort/booking-api/pkg/config"
	"github.com/kingresort/booking-api/pkg/logger"
)

type Handlers struct {
	bookingService service.BookingService
	contactService service.ContactService
	admin          config.AdminConfig
}

func New(bookingService service.BookingService, contactService service.ContactService, admin config.AdminConfig) *Handlers {
	return &Handlers{
		bookingService: bookingService,
		contactService: contactService,
		admin:          admin,
	}
}

// RequireAdmin guards the admin panel. It accepts HTTP basic auth checked
// against the configured argon2id hash, or a bearer token from /admin/login.
func (h *Handlers) RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if user, pass, ok := r.BasicAuth(); ok {
			if h.checkCredentials(user, pass) {
				next.ServeHTTP(w, r)
				return
			}
			w.Header().Set("WWW-Authenticate", `Basic realm="admin"`)
			response.Unauthorized(w, "Invalid credentials")
			return
		}

		authHeader := r.Header.Get("Authorization")
		if strings.HasPrefix(authHeader, "Bearer ") {
			token := strings.TrimPrefix(authHeader, "Bearer ")
			if claims, err := auth.Parse(token, h.admin.JWTSecret); err == nil && claims.Role == "admin" {
				next.ServeHTTP(w, r)
				return
			}
			response.Unauthorized(w, "Invalid token")
			return
		}

		w.Header().Set("WWW-Authenticate", `Basic realm="admin"`)
		response.Unauthorized(w, "Authentication required")
	})
}

func (h *Handlers) checkCredentials(user, pass string) bool {
	if user != h.admin.Username {
		return false
	}
	match, err := argon2id.ComparePasswordAndHash(pass, h.admin.PasswordHash)
	if err != nil {
		logger.Error("Password hash comparison failed", "error", err)
		return false
	}
	return match
}

// AdminLogin exchanges basic-auth style credentials for a bearer token.
func (h *Handlers) AdminLogin(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid JSON format")
		return
	}

	if !h.checkCredentials(req.Username, req.Password) {
		response.Unauthorized(w, "Invalid credentials")
		return
	}

	token, err := auth.NewAdminToken(req.Username, h.admin.JWTSecret, h.admin.TokenTTL)
	if err != nil {
		logger.ErrorContext(r.Context(), "Failed to issue admin token", "error", err)
		response.InternalError(w, "Failed to issue token")
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"token": token})
}

func writeJSON(w http.ResponseWriter, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(data)
}
