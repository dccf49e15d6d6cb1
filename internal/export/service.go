package export

import (
	"context"
	"errors"
	"time"

	"github.com/saulo-duarte/oficina-poemas/internal/config"
	"github.com/saulo-duarte/oficina-poemas/internal/gateway"
	util "github.com/saulo-duarte/oficina-poemas/internal/utils"
	"github.com/sirupsen/logrus"
)

var (
	ErrValidation   = errors.New("title, author, text and theme are required")
	ErrInvalidStyle = errors.New("invalid style")
	ErrRender       = errors.New("failed to render document")
)

const ContentTypePDF = "application/pdf"

type Service interface {
	Export(ctx context.Context, req ExportRequest) (*Document, error)
}

type service struct {
	gateway  gateway.Gateway
	renderer Renderer
	now      func() time.Time
}

func NewService(gw gateway.Gateway, renderer Renderer) Service {
	return &service{
		gateway:  gw,
		renderer: renderer,
		now:      util.Now,
	}
}

func (s *service) Export(ctx context.Context, req ExportRequest) (*Document, error) {
	log := config.WithContext(ctx)

	req.Normalize()
	if err := config.Validate(req); err != nil {
		log.WithError(err).Warn("[EXPORT] Pedido de exportação incompleto")
		return nil, ErrValidation
	}

	style := s.resolveStyle(ctx, req)

	content, err := s.renderer.Render(req, style, s.now())
	if err != nil {
		log.WithError(err).Error("[EXPORT] Falha ao gerar o PDF")
		return nil, err
	}

	doc := &Document{
		Filename:    Filename(req.Title),
		ContentType: ContentTypePDF,
		Content:     content,
	}
	log.WithFields(logrus.Fields{
		"filename":     doc.Filename,
		"bytes":        len(doc.Content),
		"border_style": style.BorderStyle,
	}).Info("[EXPORT] Poema exportado com sucesso")
	return doc, nil
}

// resolveStyle asks the model for a style and falls back to DefaultStyle on any
// failure, so styling never blocks an export.
func (s *service) resolveStyle(ctx context.Context, req ExportRequest) Style {
	log := config.WithContext(ctx)

	raw, err := s.gateway.GenerateStructured(ctx, buildStylePrompt(req), styleSchema())
	if err != nil {
		log.WithError(err).Warn("[EXPORT] Estilo indisponível, usando estilo padrão")
		return DefaultStyle
	}

	var style Style
	if err := gateway.Decode(raw, &style); err != nil {
		log.WithError(err).Warnf("[EXPORT] Estilo malformado, usando estilo padrão. Conteúdo:\n%s", raw)
		return DefaultStyle
	}
	if err := style.Validate(); err != nil {
		log.WithError(err).Warn("[EXPORT] Estilo inválido, usando estilo padrão")
		return DefaultStyle
	}
	return style
}
