package server

import (
	"context"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"html/template"
	"log"
	"net/http"
	"net/url"
	"sync"
	"time"

	"github.com/go-pkgz/lgr"
	"github.com/go-pkgz/rest"
	"github.com/go-pkgz/rest/logger"
	"github.com/go-pkgz/routegroup"

	"github.com/umputun/mealscope/pkg/config"
	"github.com/umputun/mealscope/pkg/domain"
	"github.com/umputun/mealscope/pkg/session"
)

//go:generate moq -out mocks/config.go -pkg mocks -skip-ensure -fmt goimports . ConfigProvider
//go:generate moq -out mocks/user_store.go -pkg mocks -skip-ensure -fmt goimports . UserStore
//go:generate moq -out mocks/recipe_store.go -pkg mocks -skip-ensure -fmt goimports . RecipeStore
//go:generate moq -out mocks/favorite_store.go -pkg mocks -skip-ensure -fmt goimports . FavoriteStore
//go:generate moq -out mocks/recipe_gateway.go -pkg mocks -skip-ensure -fmt goimports . RecipeGateway

//go:embed templates/*.html
var templatesFS embed.FS

//go:embed static
var staticFS embed.FS

// Server represents HTTP server instance
type Server struct {
	config   ConfigProvider
	store    Store
	recipes  RecipeGateway
	sessions *session.Manager
	version  string
	debug    bool

	templates *template.Template

	lock       sync.Mutex
	httpServer *http.Server
	router     *routegroup.Bundle
}

// Store bundles the persistence interfaces the server depends on
type Store struct {
	User     UserStore
	Recipe   RecipeStore
	Favorite FavoriteStore
}

// UserStore interface for account operations
type UserStore interface {
	CreateUser(ctx context.Context, user *domain.User, password string) error
	Authenticate(ctx context.Context, username, password string) (*domain.User, error)
	GetUser(ctx context.Context, id int64) (*domain.User, error)
	UpdateUser(ctx context.Context, user *domain.User) error
}

// RecipeStore interface for locally persisted recipes
type RecipeStore interface {
	UpsertRecipe(ctx context.Context, recipe domain.RecipeSummary) error
	GetRecipe(ctx context.Context, id int64) (domain.RecipeSummary, error)
}

// FavoriteStore interface for the per-user favorites ledger
type FavoriteStore interface {
	AddFavorite(ctx context.Context, userID int64, recipe domain.RecipeSummary) error
	RemoveFavorite(ctx context.Context, userID, recipeID int64) error
	ListFavorites(ctx context.Context, userID int64) ([]domain.RecipeSummary, error)
	FavoriteIDs(ctx context.Context, userID int64) (map[int64]bool, error)
}

// RecipeGateway interface for the remote recipe API
type RecipeGateway interface {
	Search(ctx context.Context, maxCount int, filter url.Values) ([]domain.RecipeSummary, error)
	GetRecipe(ctx context.Context, id int64) (domain.RecipeDetail, error)
}

// ConfigProvider provides server configuration
type ConfigProvider interface {
	GetServerConfig() (listen string, timeout time.Duration)
	GetSpoonacularConfig() config.SpoonacularConfig
	GetAuthConfig() config.AuthConfig
	GetPageSize() int
}

// New initializes a new server instance
func New(cfg ConfigProvider, store Store, recipes RecipeGateway, sessions *session.Manager, version string, debug bool) *Server {
	s := &Server{
		config:   cfg,
		store:    store,
		recipes:  recipes,
		sessions: sessions,
		version:  version,
		debug:    debug,
		router:   routegroup.New(http.NewServeMux()),
	}

	funcs := template.FuncMap{
		"has": func(list []string, v string) bool {
			for _, e := range list {
				if e == v {
					return true
				}
			}
			return false
		},
		// for summary HTML already sanitized on ingest
		"safe": func(s string) template.HTML { return template.HTML(s) }, //nolint:gosec
	}
	s.templates = template.Must(template.New("").Funcs(funcs).ParseFS(templatesFS, "templates/*.html"))

	s.setupMiddleware()
	s.setupRoutes()

	return s
}

// Run starts the HTTP server and handles graceful shutdown
func (s *Server) Run(ctx context.Context) error {
	listen, timeout := s.config.GetServerConfig()
	log.Printf("[INFO] starting server on %s", listen)

	s.lock.Lock()
	s.httpServer = &http.Server{
		Addr:         listen,
		Handler:      s.router,
		ReadTimeout:  timeout,
		WriteTimeout: timeout,
	}
	s.lock.Unlock()

	go func() {
		<-ctx.Done()
		log.Printf("[INFO] shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
			log.Printf("[WARN] server shutdown error: %v", err)
		}
	}()

	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("http server error: %w", err)
	}

	return nil
}

// setupMiddleware configures standard middleware for the server
func (s *Server) setupMiddleware() {
	s.router.Use(rest.AppInfo("mealscope", "umputun", s.version))
	s.router.Use(rest.Ping)

	if s.debug {
		s.router.Use(logger.New(logger.Log(lgr.Default()), logger.Prefix("[DEBUG]")).Handler)
	}

	s.router.Use(rest.Recoverer(lgr.Default()))
	s.router.Use(rest.Throttle(100))
	s.router.Use(rest.SizeLimit(1024 * 1024)) // 1MB
}

// setupRoutes configures application routes
func (s *Server) setupRoutes() {
	// API routes
	s.router.Mount("/api/v1").Route(func(r *routegroup.Bundle) {
		r.HandleFunc("GET /status", s.statusHandler)
	})

	// public pages
	s.router.HandleFunc("GET /{$}", s.welcomeHandler)
	s.router.HandleFunc("GET /register", s.registerFormHandler)
	s.router.HandleFunc("POST /register", s.registerHandler)
	s.router.HandleFunc("GET /signin", s.signinFormHandler)
	s.router.HandleFunc("POST /signin", s.signinHandler)
	s.router.HandleFunc("GET /signout", s.signoutHandler)

	// signed-in pages
	s.router.HandleFunc("GET /users/{id}", s.homeHandler)
	s.router.HandleFunc("POST /users/{id}", s.addFavoriteHandler)
	s.router.HandleFunc("POST /users/{id}/page", s.pageHandler)
	s.router.HandleFunc("GET /users/{id}/favorites", s.favoritesHandler)
	s.router.HandleFunc("POST /users/{id}/favorites", s.removeFavoriteHandler)
	s.router.HandleFunc("GET /users/{id}/settings", s.settingsFormHandler)
	s.router.HandleFunc("POST /users/{id}/settings", s.settingsHandler)
	s.router.HandleFunc("GET /recipes/{id}", s.recipeHandler)

	// static assets
	s.router.Handle("GET /static/", http.FileServerFS(staticFS))
}

// statusHandler returns server status
func (s *Server) statusHandler(w http.ResponseWriter, r *http.Request) {
	status := map[string]interface{}{
		"status":   "ok",
		"version":  s.version,
		"sessions": s.sessions.Count(),
		"time":     time.Now().UTC(),
	}
	renderJSON(w, r, http.StatusOK, status)
}

// renderPage renders a page template with text/html content type
func (s *Server) renderPage(w http.ResponseWriter, name string, data interface{}) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := s.templates.ExecuteTemplate(w, name, data); err != nil {
		log.Printf("[ERROR] failed to render %s: %v", name, err)
	}
}

// renderJSON sends JSON response
func renderJSON(w http.ResponseWriter, _ *http.Request, code int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			log.Printf("[ERROR] can't encode response to JSON: %v", err)
		}
	}
}

// renderError sends error response as JSON
func renderError(w http.ResponseWriter, r *http.Request, err error, code int) {
	errMsg := "unknown error"
	if err != nil {
		errMsg = err.Error()
	}
	renderJSON(w, r, code, map[string]string{"error": errMsg})
}
