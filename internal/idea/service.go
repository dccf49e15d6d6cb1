package idea

import (
	"context"
	"errors"
	"strings"

	"github.com/saulo-duarte/oficina-poemas/internal/config"
	"github.com/saulo-duarte/oficina-poemas/internal/gateway"
)

var ErrEmptyTheme = errors.New("theme is required")

type Service interface {
	GenerateIdeas(ctx context.Context, theme string) ([]string, error)
}

type service struct {
	gateway gateway.Gateway
}

func NewService(gw gateway.Gateway) Service {
	return &service{gateway: gw}
}

// GenerateIdeas always yields Count ideas for a non-empty theme; gateway and
// parsing failures degrade to the fallback questions.
func (s *service) GenerateIdeas(ctx context.Context, theme string) ([]string, error) {
	log := config.WithContext(ctx)

	theme = strings.TrimSpace(theme)
	if theme == "" {
		return nil, ErrEmptyTheme
	}

	raw, err := s.gateway.GenerateStructured(ctx, systemPrompt+"\n\n"+BuildUserPrompt(theme), gateway.StringList())
	if err != nil {
		log.WithError(err).Warn("[IDEA] Gateway falhou, usando ideias locais")
		return Complete(theme, nil), nil
	}

	var ideas []string
	if err := gateway.Decode(raw, &ideas); err != nil {
		log.WithError(err).Warnf("[IDEA] Resposta inválida, usando ideias locais. Conteúdo:\n%s", raw)
		return Complete(theme, nil), nil
	}

	out := Complete(theme, ideas)
	log.Infof("[IDEA] %d ideias recebidas, %d entregues", len(ideas), len(out))
	return out, nil
}

// Complete trims blank entries and returns exactly Count ideas, truncating the
// surplus or padding with Fallback questions.
func Complete(theme string, ideas []string) []string {
	out := make([]string, 0, Count)
	for _, i := range ideas {
		if i = strings.TrimSpace(i); i != "" {
			out = append(out, i)
		}
		if len(out) == Count {
			return out
		}
	}
	return append(out, Fallback(strings.TrimSpace(theme), Count)[len(out):]...)
}
