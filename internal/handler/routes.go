package handler

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/yusufkecer/health-tracker/internal/middleware"
	"go.uber.org/zap"
)

type RouterDeps struct {
	Shell          *ShellHandler
	Auth           *AuthHandler
	Records        *RecordHandler
	Tokens         middleware.TokenParser
	LoginLimiter   *middleware.RateLimiter
	CookieName     string
	APIKey         string
	AllowedOrigins string
	Logger         *zap.Logger
}

func NewRouter(d RouterDeps) *mux.Router {
	r := mux.NewRouter()

	// Recovery → RequestID → Logger → CORS → security headers → body cap
	r.Use(middleware.Recovery(d.Logger))
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger(d.Logger))
	r.Use(middleware.CORSMiddleware(d.AllowedOrigins))
	r.Use(middleware.SecurityHeaders)
	r.Use(middleware.MaxBytes(1 << 20))

	r.HandleFunc("/api/v1/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}).Methods(http.MethodGet, http.MethodOptions)

	r.HandleFunc("/", d.Shell.Show).Methods(http.MethodGet)
	r.HandleFunc("/", d.Shell.Act).Methods(http.MethodPost)

	r.HandleFunc("/login", d.Auth.LoginPage).Methods(http.MethodGet)
	r.Handle("/login", d.LoginLimiter.Middleware(http.HandlerFunc(d.Auth.Login))).Methods(http.MethodPost)
	r.Handle("/register", d.LoginLimiter.Middleware(http.HandlerFunc(d.Auth.Register))).Methods(http.MethodPost)
	r.HandleFunc("/logout", d.Auth.Logout).Methods(http.MethodPost)

	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(middleware.APIKeyMiddleware(d.APIKey))
	api.Use(middleware.AuthMiddleware(d.Tokens, d.CookieName))

	api.HandleFunc("/records", d.Records.List).Methods(http.MethodGet, http.MethodOptions)
	api.HandleFunc("/records", d.Records.Create).Methods(http.MethodPost, http.MethodOptions)

	return r
}
