package container

import (
	"context"

	"github.com/saulo-duarte/oficina-poemas/internal/config"
	"github.com/saulo-duarte/oficina-poemas/internal/export"
	"github.com/saulo-duarte/oficina-poemas/internal/gateway"
	"github.com/saulo-duarte/oficina-poemas/internal/idea"
	"github.com/saulo-duarte/oficina-poemas/internal/rhyme"
	"github.com/saulo-duarte/oficina-poemas/internal/router"
	"github.com/saulo-duarte/oficina-poemas/internal/spelling"
	"github.com/saulo-duarte/oficina-poemas/internal/theme"
)

type Container struct {
	Config            *config.Config
	Gateway           gateway.Gateway
	ThemeContainer    *theme.ThemeContainer
	IdeaContainer     *idea.IdeaContainer
	RhymeContainer    *rhyme.RhymeContainer
	SpellingContainer *spelling.SpellingContainer
	ExportContainer   *export.ExportContainer
}

// New loads the configuration and wires every feature around one gateway.
// A missing API key is fatal; any other client error leaves the server up
// with an unavailable gateway.
func New() *Container {
	config.Init()
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		config.Logger.WithError(err).Fatal("Invalid configuration")
	}

	gw, err := gateway.NewGeminiGateway(context.Background(), cfg.Gemini)
	if err != nil {
		config.Logger.WithError(err).Error("Failed to initialize AI gateway, serving without it")
		gw = gateway.Unavailable(err)
	}

	return NewWithGateway(cfg, gw)
}

func NewWithGateway(cfg *config.Config, gw gateway.Gateway) *Container {
	return &Container{
		Config:            cfg,
		Gateway:           gw,
		ThemeContainer:    theme.NewThemeContainer(gw),
		IdeaContainer:     idea.NewIdeaContainer(gw),
		RhymeContainer:    rhyme.NewRhymeContainer(gw, cfg.Rhyme.CacheTTL),
		SpellingContainer: spelling.NewSpellingContainer(gw),
		ExportContainer:   export.NewExportContainer(gw),
	}
}

func (c *Container) RouterConfig() router.RouterConfig {
	return router.RouterConfig{
		ThemeHandler:       c.ThemeContainer.Handler,
		IdeaHandler:        c.IdeaContainer.Handler,
		RhymeHandler:       c.RhymeContainer.Handler,
		SpellingHandler:    c.SpellingContainer.Handler,
		ExportHandler:      c.ExportContainer.Handler,
		CorsAllowedOrigins: c.Config.App.CorsAllowedOrigins,
	}
}
