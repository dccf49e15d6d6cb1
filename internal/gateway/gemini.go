package gateway

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/saulo-duarte/oficina-poemas/internal/config"
	"github.com/sirupsen/logrus"
	"google.golang.org/genai"
)

type contentGenerator interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

type geminiGateway struct {
	models        contentGenerator
	model         string
	fallbackModel string
}

func NewGeminiGateway(ctx context.Context, cfg config.GeminiConfig) (Gateway, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("erro ao criar cliente Gemini: %w", err)
	}
	return newGeminiGateway(client.Models, cfg.Model, cfg.FallbackModel), nil
}

func newGeminiGateway(models contentGenerator, model, fallbackModel string) *geminiGateway {
	return &geminiGateway{
		models:        models,
		model:         model,
		fallbackModel: fallbackModel,
	}
}

func (g *geminiGateway) Generate(ctx context.Context, prompt string) (string, error) {
	return g.generate(ctx, prompt, nil)
}

func (g *geminiGateway) GenerateStructured(ctx context.Context, prompt string, schema *genai.Schema) (string, error) {
	return g.generate(ctx, prompt, &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		ResponseSchema:   schema,
	})
}

func (g *geminiGateway) generate(ctx context.Context, prompt string, cfg *genai.GenerateContentConfig) (string, error) {
	log := config.WithContext(ctx)

	raw, err := g.call(ctx, g.model, prompt, cfg)
	if errors.Is(err, ErrModelNotFound) && g.fallbackModel != "" && g.fallbackModel != g.model {
		log.WithFields(logrus.Fields{
			"model":          g.model,
			"fallback_model": g.fallbackModel,
		}).Warn("[GATEWAY] Modelo principal não encontrado, usando modelo reserva")
		raw, err = g.call(ctx, g.fallbackModel, prompt, cfg)
	}
	if err != nil {
		return "", err
	}

	log.Debugf("[GATEWAY] Resposta bruta do Gemini:\n%s", raw)
	return raw, nil
}

func (g *geminiGateway) call(ctx context.Context, model, prompt string, cfg *genai.GenerateContentConfig) (string, error) {
	log := config.WithContext(ctx).WithField("model", model)

	result, err := g.models.GenerateContent(ctx, model, genai.Text(prompt), cfg)
	if err != nil {
		err = classify(err)
		if errors.Is(err, ErrModelNotFound) {
			log.WithError(err).Error("[GATEWAY] Modelo não encontrado (404)")
		} else {
			log.WithError(err).Error("[GATEWAY] Falha ao gerar conteúdo do Gemini")
		}
		return "", err
	}

	raw := result.Text()
	if raw == "" {
		return "", ErrEmptyResponse
	}
	return raw, nil
}

// classify maps SDK errors onto the gateway's sentinel errors, keeping the
// original error in the chain.
func classify(err error) error {
	var (
		apiErr    genai.APIError
		apiErrPtr *genai.APIError
		code      int
	)
	switch {
	case errors.As(err, &apiErr):
		code = apiErr.Code
	case errors.As(err, &apiErrPtr):
		code = apiErrPtr.Code
	}
	if code == http.StatusNotFound {
		return fmt.Errorf("%w: %w", ErrModelNotFound, err)
	}
	return fmt.Errorf("%w: %w", ErrUnavailable, err)
}
