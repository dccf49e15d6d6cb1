package theme

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/saulo-duarte/oficina-poemas/internal/config"
	"github.com/saulo-duarte/oficina-poemas/internal/gateway"
)

var (
	ErrEmptyInterest = errors.New("interest is required")
	ErrEmptyResult   = errors.New("no themes generated")
)

type Service interface {
	GenerateThemes(ctx context.Context, interest string) ([]string, error)
}

type service struct {
	gateway gateway.Gateway
}

func NewService(gw gateway.Gateway) Service {
	return &service{gateway: gw}
}

func (s *service) GenerateThemes(ctx context.Context, interest string) ([]string, error) {
	log := config.WithContext(ctx)

	interest = strings.TrimSpace(interest)
	if interest == "" {
		return nil, ErrEmptyInterest
	}

	raw, err := s.gateway.GenerateStructured(ctx, systemPrompt+"\n\n"+BuildUserPrompt(interest), gateway.StringList())
	if err != nil {
		return nil, err
	}

	var themes []string
	if err := gateway.Decode(raw, &themes); err != nil {
		log.WithError(err).Errorf("[THEME] Falha ao decodificar temas. Conteúdo:\n%s", raw)
		return nil, fmt.Errorf("%w: %w", ErrEmptyResult, err)
	}

	themes = Clean(themes)
	if len(themes) == 0 {
		log.Warn("[THEME] Modelo não retornou nenhum tema")
		return nil, ErrEmptyResult
	}

	log.Infof("[THEME] Gerados %d temas com sucesso", len(themes))
	return themes, nil
}

// Clean trims the themes, drops blanks and duplicates and keeps at most MaxThemes.
func Clean(themes []string) []string {
	seen := make(map[string]struct{}, len(themes))
	out := make([]string, 0, len(themes))
	for _, t := range themes {
		t = strings.TrimSpace(t)
		key := strings.ToLower(t)
		if t == "" {
			continue
		}
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, t)
		if len(out) == MaxThemes {
			break
		}
	}
	return out
}
