package server

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"github.com/andyli/portfolio/internal/analytics"
	"github.com/andyli/portfolio/internal/asset"
	"github.com/andyli/portfolio/internal/config"
	"github.com/andyli/portfolio/internal/content"
	"github.com/andyli/portfolio/internal/logger"
)

func getLog() *zerolog.Logger {
	l := logger.GetServerLogger()
	return &l
}

// Deps are the collaborators the server renders from.
type Deps struct {
	Catalog   *content.Catalog
	Animation *asset.Animation
	// Analytics is nil when visitor tracking is disabled.
	Analytics *analytics.Store
}

// Server serves the portfolio page, its fragments and the JSON API.
type Server struct {
	httpServer *http.Server
	engine     *gin.Engine
}

// New builds the router. It does not start listening; call Run for that.
func New(cfg *config.AppConfig, deps Deps) (*Server, error) {
	if deps.Catalog == nil {
		return nil, errors.New("catalog is required")
	}
	if deps.Animation == nil {
		deps.Animation = &asset.Animation{}
	}

	gin.SetMode(cfg.Server.Mode)

	r := gin.New()
	r.Use(RequestID())
	r.Use(Logger())
	r.Use(Recovery())

	tmpl, err := parseTemplates()
	if err != nil {
		return nil, err
	}
	r.SetHTMLTemplate(tmpl)

	if err := mountStatic(r); err != nil {
		return nil, err
	}

	if deps.Analytics != nil {
		r.Use(analytics.Middleware(deps.Analytics))
	}

	h := &handlers{
		catalog:   deps.Catalog,
		animation: deps.Animation,
		tracking:  deps.Analytics != nil,
		retention: cfg.Analytics.Retention,
	}

	r.GET("/", h.index)
	r.GET("/privacy", h.privacyPolicy)
	r.GET("/healthz", func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})
	r.GET("/assets/about-animation.json", h.animationAsset)

	frag := r.Group("/fragments")
	{
		frag.GET("/experience", h.experienceFragment)
		frag.GET("/projects", h.galleryFragment)
		frag.GET("/projects/:id/modal", h.openModal)
		frag.GET("/modal/close", h.closeModal)
		frag.POST("/contact/copy", h.copyEmail)
		frag.GET("/contact/copy", h.copyIndicator)
	}

	api := r.Group("/api")
	{
		api.GET("/projects", h.listProjects)
		api.GET("/projects/:id", h.getProject)
		api.GET("/experiences", h.listExperiences)
		api.GET("/skills", h.listSkills)
		api.GET("/pointer", h.pointer)
	}

	if deps.Analytics != nil {
		admin, err := newAdmin(cfg.Admin, cfg.Analytics.Retention, deps.Analytics)
		if err != nil {
			return nil, err
		}
		admin.routes(r)
	}

	return &Server{
		engine: r,
		httpServer: &http.Server{
			Addr:              cfg.Server.Addr(),
			Handler:           r,
			ReadHeaderTimeout: cfg.Server.ReadHeaderTimeout,
			ReadTimeout:       cfg.Server.ReadTimeout,
			WriteTimeout:      cfg.Server.WriteTimeout,
			IdleTimeout:       cfg.Server.IdleTimeout,
		},
	}, nil
}

// Handler returns the router, for tests and embedding.
func (s *Server) Handler() http.Handler {
	return s.engine
}

// Run serves until the server is shut down.
func (s *Server) Run() error {
	getLog().Info().Str("addr", s.httpServer.Addr).Msg("Portfolio server listening")
	err := s.httpServer.ListenAndServe()
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}

// Shutdown gracefully stops the HTTP server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
