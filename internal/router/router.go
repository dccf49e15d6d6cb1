package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/saulo-duarte/oficina-poemas/internal/config"
	_ "github.com/saulo-duarte/oficina-poemas/internal/docs"
	"github.com/saulo-duarte/oficina-poemas/internal/export"
	"github.com/saulo-duarte/oficina-poemas/internal/idea"
	"github.com/saulo-duarte/oficina-poemas/internal/middlewares"
	"github.com/saulo-duarte/oficina-poemas/internal/rhyme"
	"github.com/saulo-duarte/oficina-poemas/internal/spelling"
	"github.com/saulo-duarte/oficina-poemas/internal/theme"
)

type RouterConfig struct {
	ThemeHandler       *theme.Handler
	IdeaHandler        *idea.Handler
	RhymeHandler       *rhyme.Handler
	SpellingHandler    *spelling.Handler
	ExportHandler      *export.Handler
	CorsAllowedOrigins []string
}

func New(cfg RouterConfig) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middlewares.Cors(cfg.CorsAllowedOrigins))

	r.Get("/swagger/*", httpSwagger.WrapHandler)
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		config.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Route("/api", func(r chi.Router) {
		r.Mount("/themes", theme.Routes(cfg.ThemeHandler))
		r.Mount("/ideas", idea.Routes(cfg.IdeaHandler))
		r.Mount("/rhymes", rhyme.Routes(cfg.RhymeHandler))
		r.Mount("/spelling", spelling.Routes(cfg.SpellingHandler))
		r.Mount("/export", export.Routes(cfg.ExportHandler))
	})
	return r
}
