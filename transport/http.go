package transport

import (
	"context"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	adminapp "github.com/muhammadheryan/vastu-shakti/application/admin"
	blogapp "github.com/muhammadheryan/vastu-shakti/application/blog"
	chatapp "github.com/muhammadheryan/vastu-shakti/application/chat"
	consultationapp "github.com/muhammadheryan/vastu-shakti/application/consultation"
	contactapp "github.com/muhammadheryan/vastu-shakti/application/contact"
	userapp "github.com/muhammadheryan/vastu-shakti/application/user"
	"github.com/muhammadheryan/vastu-shakti/cmd/config"
	"github.com/muhammadheryan/vastu-shakti/constant"
	redisrepo "github.com/muhammadheryan/vastu-shakti/repository/redis"
	"github.com/muhammadheryan/vastu-shakti/utils/errors"
	"github.com/muhammadheryan/vastu-shakti/utils/metrics"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"
)

// HealthCheck reports whether a backing store is reachable.
type HealthCheck func(ctx context.Context) error

// Options carries everything the HTTP layer needs.
type Options struct {
	Config          *config.Config
	UserApp         userapp.UserApp
	ConsultationApp consultationapp.ConsultationApp
	ContactApp      contactapp.ContactApp
	BlogApp         blogapp.BlogApp
	ChatApp         chatapp.ChatApp
	AdminApp        adminapp.AdminApp
	RateLimiter     redisrepo.Repository
	DBCheck         HealthCheck
	RedisCheck      HealthCheck
}

type RestHandler struct {
	cfg             *config.Config
	UserApp         userapp.UserApp
	ConsultationApp consultationapp.ConsultationApp
	ContactApp      contactapp.ContactApp
	BlogApp         blogapp.BlogApp
	ChatApp         chatapp.ChatApp
	AdminApp        adminapp.AdminApp
	dbCheck         HealthCheck
	redisCheck      HealthCheck
	startedAt       time.Time
}

func NewTransport(opts Options) http.Handler {
	cfg := opts.Config
	router := mux.NewRouter()

	rh := &RestHandler{
		cfg:             cfg,
		UserApp:         opts.UserApp,
		ConsultationApp: opts.ConsultationApp,
		ContactApp:      opts.ContactApp,
		BlogApp:         opts.BlogApp,
		ChatApp:         opts.ChatApp,
		AdminApp:        opts.AdminApp,
		dbCheck:         opts.DBCheck,
		redisCheck:      opts.RedisCheck,
		startedAt:       time.Now(),
	}
	auth := NewAuthenticator(opts.UserApp)

	router.NotFoundHandler = http.HandlerFunc(routeNotFound)
	router.MethodNotAllowedHandler = http.HandlerFunc(routeNotFound)

	// Swagger UI
	router.PathPrefix("/swagger/").Handler(httpSwagger.WrapHandler)

	// Static uploads
	router.PathPrefix("/uploads/").Handler(uploadedFiles("/uploads/", cfg.Upload.Dir))

	// Internal
	router.Handle("/internal/metrics", InternalMiddleware(cfg.Internal.APIKey)(promhttp.Handler())).Methods(http.MethodGet)

	router.HandleFunc("/", rh.Root).Methods(http.MethodGet)
	router.HandleFunc("/health", rh.Health).Methods(http.MethodGet)

	api := router.PathPrefix("/api").Subrouter()

	// Auth and profile
	api.HandleFunc("/auth/register", rh.Register).Methods(http.MethodPost)
	api.HandleFunc("/auth/login", rh.Login).Methods(http.MethodPost)
	api.Handle("/auth/me", auth.AuthenticateFunc(rh.Profile)).Methods(http.MethodGet)
	api.Handle("/users/profile", auth.AuthenticateFunc(rh.Profile)).Methods(http.MethodGet)
	api.Handle("/users/profile", auth.AuthenticateFunc(rh.UpdateProfile)).Methods(http.MethodPut)

	// Consultations, my-consultations before {id}
	api.HandleFunc("/consultations/book", rh.BookConsultation).Methods(http.MethodPost)
	api.Handle("/consultations/my-consultations", auth.AuthenticateFunc(rh.MyConsultations)).Methods(http.MethodGet)
	api.Handle("/consultations/{id:[0-9]+}", auth.AuthenticateFunc(rh.GetConsultation)).Methods(http.MethodGet)

	// Blogs
	api.HandleFunc("/blogs", rh.ListBlogs).Methods(http.MethodGet)
	api.HandleFunc("/blogs/{slug}", rh.GetBlog).Methods(http.MethodGet)

	// Chat
	api.HandleFunc("/chat/message", rh.ChatMessage).Methods(http.MethodPost)
	api.HandleFunc("/chat/history/{sessionId}", rh.ChatHistory).Methods(http.MethodGet)

	// Contact
	api.HandleFunc("/contact/enquiry", rh.SubmitEnquiry).Methods(http.MethodPost)
	api.HandleFunc("/contact/inquiry", rh.SubmitEnquiry).Methods(http.MethodPost)
	api.HandleFunc("/contact/feedback", rh.SubmitFeedback).Methods(http.MethodPost)
	api.HandleFunc("/contact/feedback", rh.PublishedFeedback).Methods(http.MethodGet)

	// Admin
	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(auth.Authenticate, auth.RequireRole(constant.RoleAdmin))
	admin.HandleFunc("/dashboard", rh.Dashboard).Methods(http.MethodGet)
	admin.HandleFunc("/consultations", rh.AdminListConsultations).Methods(http.MethodGet)
	admin.HandleFunc("/consultations/{id:[0-9]+}/status", rh.AdminUpdateConsultationStatus).Methods(http.MethodPut)
	admin.HandleFunc("/contacts", rh.AdminListContacts).Methods(http.MethodGet)
	admin.HandleFunc("/contacts/{id:[0-9]+}/status", rh.AdminUpdateContactStatus).Methods(http.MethodPut)
	admin.HandleFunc("/feedback", rh.AdminListFeedback).Methods(http.MethodGet)
	admin.HandleFunc("/feedback/{id:[0-9]+}/publish", rh.AdminPublishFeedback).Methods(http.MethodPut)
	admin.HandleFunc("/blogs", rh.AdminCreateBlog).Methods(http.MethodPost)
	admin.HandleFunc("/blogs/{id:[0-9]+}", rh.AdminUpdateBlog).Methods(http.MethodPut)
	admin.HandleFunc("/blogs/{id:[0-9]+}/publish", rh.AdminPublishBlog).Methods(http.MethodPut)
	admin.HandleFunc("/uploads", rh.AdminUpload).Methods(http.MethodPost)

	// middleware
	router.Use(RecoveryMiddleware())
	router.Use(LoggingMiddleware())
	router.Use(metrics.PrometheusMiddleware)

	// CORS and rate limiting sit outside the router so preflight requests never reach route matching.
	var handler http.Handler = router
	handler = BodyLimit(cfg.Server.MaxBodyBytes)(handler)
	handler = RateLimitMiddleware(opts.RateLimiter, "/api/", cfg.RateLimit.MaxRequests, cfg.RateLimit.Window)(handler)
	handler = SecurityHeaders(cfg.IsProduction())(handler)
	handler = CORS(cfg.CORS.FrontendURL)(handler)

	return handler
}

func routeNotFound(w http.ResponseWriter, r *http.Request) {
	writeError(w, errors.SetCustomError(constant.ErrRouteNotFound))
}
