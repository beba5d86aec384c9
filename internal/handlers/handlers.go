package handlers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	_ "github.com/mattedesign/figmant-759992b3-sub008/docs"
	analyseshandlers "github.com/mattedesign/figmant-759992b3-sub008/internal/handlers/analyses"
	authhandlers "github.com/mattedesign/figmant-759992b3-sub008/internal/handlers/auth"
	creditshandlers "github.com/mattedesign/figmant-759992b3-sub008/internal/handlers/credits"
	uploadshandlers "github.com/mattedesign/figmant-759992b3-sub008/internal/handlers/uploads"
	"github.com/mattedesign/figmant-759992b3-sub008/internal/metrics"
	"github.com/mattedesign/figmant-759992b3-sub008/internal/service"
	"github.com/mattedesign/figmant-759992b3-sub008/pkg/auth"
	"github.com/mattedesign/figmant-759992b3-sub008/pkg/utils"
	httpSwagger "github.com/swaggo/http-swagger"
)

//go:generate mockgen -source=handlers.go -destination=mock_handlers.go -package=handlers

type AuthHandler interface {
	Register(w http.ResponseWriter, r *http.Request)
	Login(w http.ResponseWriter, r *http.Request)
}

type CreditsHandler interface {
	GetBalance(w http.ResponseWriter, r *http.Request)
	Purchase(w http.ResponseWriter, r *http.Request)
	GetTransactions(w http.ResponseWriter, r *http.Request)
	Adjust(w http.ResponseWriter, r *http.Request)
}

type UploadsHandler interface {
	CreateUploads(w http.ResponseWriter, r *http.Request)
	GetUploads(w http.ResponseWriter, r *http.Request)
}

type AnalysesHandler interface {
	GetAnalyses(w http.ResponseWriter, r *http.Request)
	GetBatchAnalyses(w http.ResponseWriter, r *http.Request)
}

type Pinger interface {
	Ping(ctx context.Context) error
}

type Options struct {
	CORSOrigins    []string
	MaxUploadBytes int64
	DB             Pinger
}

type Handlers struct {
	AuthHandler     AuthHandler
	CreditsHandler  CreditsHandler
	UploadsHandler  UploadsHandler
	AnalysesHandler AnalysesHandler

	jwtService  auth.JWTServiceInterface
	corsOrigins []string
	db          Pinger
}

func New(s *service.Services, opts Options) *Handlers {
	return &Handlers{
		AuthHandler:     authhandlers.New(s.AuthService),
		CreditsHandler:  creditshandlers.New(s.CreditService),
		UploadsHandler:  uploadshandlers.New(s.UploadService, opts.MaxUploadBytes),
		AnalysesHandler: analyseshandlers.New(s.AnalysisService),
		jwtService:      s.JWTService,
		corsOrigins:     opts.CORSOrigins,
		db:              opts.DB,
	}
}

func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	r.Use(
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
		cors.Handler(cors.Options{
			AllowedOrigins:   h.corsOrigins,
			AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
			AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
			ExposedHeaders:   []string{"Authorization"},
			AllowCredentials: true,
			MaxAge:           300,
		}),
		metrics.Middleware,
	)
	r.Get("/health", h.Health)
	r.Handle("/metrics", metrics.Handler())
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("doc.json"),
	))
	r.Route("/api/user", func(r chi.Router) {
		r.Post("/register", h.AuthHandler.Register)
		r.Post("/login", h.AuthHandler.Login)

		r.Group(func(r chi.Router) {
			r.Use(auth.AuthMiddleware(h.jwtService))
			r.Route("/credits", func(r chi.Router) {
				r.Get("/", h.CreditsHandler.GetBalance)
				r.Post("/purchase", h.CreditsHandler.Purchase)
				r.Get("/transactions", h.CreditsHandler.GetTransactions)
			})
			r.Route("/uploads", func(r chi.Router) {
				r.Post("/", h.UploadsHandler.CreateUploads)
				r.Get("/", h.UploadsHandler.GetUploads)
			})
			r.Route("/analyses", func(r chi.Router) {
				r.Get("/", h.AnalysesHandler.GetAnalyses)
				r.Get("/batches", h.AnalysesHandler.GetBatchAnalyses)
			})
		})
	})
	r.Route("/api/admin", func(r chi.Router) {
		r.Use(auth.AuthMiddleware(h.jwtService), auth.AdminOnly)
		r.Post("/credits/adjust", h.CreditsHandler.Adjust)
	})

	return r
}

// Health reports 503 when the database does not answer.
func (h *Handlers) Health(w http.ResponseWriter, r *http.Request) {
	if h.db != nil {
		if err := h.db.Ping(r.Context()); err != nil {
			utils.RespondWithError(w, http.StatusServiceUnavailable, "database unavailable")
			return
		}
	}
	utils.RespondWithJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
