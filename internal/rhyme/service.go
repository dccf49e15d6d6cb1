package rhyme

import (
	"context"
	"errors"
	"slices"
	"strings"
	"time"

	"github.com/patrickmn/go-cache"
	"github.com/saulo-duarte/oficina-poemas/internal/config"
	"github.com/saulo-duarte/oficina-poemas/internal/gateway"
	"github.com/sirupsen/logrus"
)

var ErrEmptyWord = errors.New("word is required")

type Service interface {
	FindRhymes(ctx context.Context, word, theme string) ([]Rhyme, error)
}

type service struct {
	gateway gateway.Gateway
	cache   *cache.Cache
}

// NewService caches lookups for ttl; a non-positive ttl disables the cache.
func NewService(gw gateway.Gateway, ttl time.Duration) Service {
	s := &service{gateway: gw}
	if ttl > 0 {
		s.cache = cache.New(ttl, 2*ttl)
	}
	return s
}

func (s *service) FindRhymes(ctx context.Context, word, theme string) ([]Rhyme, error) {
	log := config.WithContext(ctx).WithFields(logrus.Fields{"word": word, "theme": theme})

	word = strings.TrimSpace(word)
	theme = strings.TrimSpace(theme)
	if word == "" {
		return nil, ErrEmptyWord
	}

	key := strings.ToLower(word) + "|" + strings.ToLower(theme)
	if s.cache != nil {
		if x, found := s.cache.Get(key); found {
			log.Debug("[RHYME] Rimas servidas do cache")
			return slices.Clone(x.([]Rhyme)), nil
		}
	}

	raw, err := s.gateway.GenerateStructured(ctx, systemPrompt+"\n\n"+BuildUserPrompt(word, theme), responseSchema())
	if err != nil {
		return nil, err
	}

	var rhymes []Rhyme
	if err := gateway.Decode(raw, &rhymes); err != nil {
		log.WithError(err).Warnf("[RHYME] Resposta inválida do modelo. Conteúdo:\n%s", raw)
		return []Rhyme{NotFound}, nil
	}

	out := Filter(word, rhymes)
	if len(out) == 0 {
		log.Info("[RHYME] Nenhuma rima utilizável após o filtro")
		return []Rhyme{NotFound}, nil
	}

	if s.cache != nil {
		s.cache.Set(key, slices.Clone(out), cache.DefaultExpiration)
	}
	log.Infof("[RHYME] %d rimas encontradas", len(out))
	return out, nil
}

// Filter drops blank words, duplicates and the query word itself, all compared
// case-insensitively.
func Filter(word string, rhymes []Rhyme) []Rhyme {
	word = strings.TrimSpace(word)
	seen := make(map[string]struct{}, len(rhymes))
	out := make([]Rhyme, 0, len(rhymes))
	for _, r := range rhymes {
		r.Palavra = strings.TrimSpace(r.Palavra)
		r.Definicao = strings.TrimSpace(r.Definicao)
		if r.Palavra == "" || strings.EqualFold(r.Palavra, word) {
			continue
		}
		key := strings.ToLower(r.Palavra)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, r)
	}
	return out
}
