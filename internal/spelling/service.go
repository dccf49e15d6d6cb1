package spelling

import (
	"context"
	"strings"

	"github.com/saulo-duarte/oficina-poemas/internal/config"
	"github.com/saulo-duarte/oficina-poemas/internal/gateway"
)

type Service interface {
	CheckSpelling(ctx context.Context, text string) ([]Correction, error)
}

type service struct {
	gateway gateway.Gateway
}

func NewService(gw gateway.Gateway) Service {
	return &service{gateway: gw}
}

// CheckSpelling never returns nil on success. Empty text is answered without
// calling the model and malformed model output yields no corrections.
func (s *service) CheckSpelling(ctx context.Context, text string) ([]Correction, error) {
	log := config.WithContext(ctx)

	if strings.TrimSpace(text) == "" {
		return []Correction{}, nil
	}

	raw, err := s.gateway.GenerateStructured(ctx, systemPrompt+"\n\n"+BuildUserPrompt(text), responseSchema())
	if err != nil {
		return nil, err
	}

	var corrections []Correction
	if err := gateway.Decode(raw, &corrections); err != nil {
		log.WithError(err).Warnf("[SPELLING] Resposta inválida, nenhuma correção exibida. Conteúdo:\n%s", raw)
		return []Correction{}, nil
	}

	out := Sanitize(corrections, len(strings.Split(text, "\n")))
	log.Infof("[SPELLING] %d correções sugeridas", len(out))
	return out, nil
}

// Sanitize keeps corrections that point at an existing verse and carry a word
// and at least one suggestion.
func Sanitize(corrections []Correction, verses int) []Correction {
	out := make([]Correction, 0, len(corrections))
	for _, c := range corrections {
		c.Original = strings.TrimSpace(c.Original)
		c.Reason = strings.TrimSpace(c.Reason)
		if c.Original == "" || c.VerseNumber < 1 || c.VerseNumber > verses {
			continue
		}

		suggestions := make([]string, 0, MaxSuggestions)
		seen := make(map[string]struct{}, len(c.Suggestions))
		for _, sg := range c.Suggestions {
			sg = strings.TrimSpace(sg)
			if sg == "" || sg == c.Original || strings.ContainsAny(sg, "\r\n") {
				continue
			}
			key := strings.ToLower(sg)
			if _, dup := seen[key]; dup {
				continue
			}
			seen[key] = struct{}{}
			suggestions = append(suggestions, sg)
			if len(suggestions) == MaxSuggestions {
				break
			}
		}
		if len(suggestions) == 0 {
			continue
		}
		c.Suggestions = suggestions
		out = append(out, c)
	}
	return out
}
