// Package gateway is the single entry point to the generative model used by
// every AI-backed feature of the workshop.
package gateway

import (
	"context"
	"errors"

	"google.golang.org/genai"
)

var (
	ErrUnavailable   = errors.New("assistente de IA indisponível")
	ErrModelNotFound = errors.New("modelo de IA não encontrado")
	ErrEmptyResponse = errors.New("resposta vazia do modelo")
	ErrMalformed     = errors.New("resposta do modelo em formato inesperado")
)

// UserMessage is shown to the student for any gateway failure, whatever its cause.
const UserMessage = "O assistente de IA está indisponível no momento. Tente novamente."

type Gateway interface {
	// Generate returns the model's free-text answer to prompt.
	Generate(ctx context.Context, prompt string) (string, error)
	// GenerateStructured asks for JSON output constrained by schema.
	GenerateStructured(ctx context.Context, prompt string, schema *genai.Schema) (string, error)
}

type unavailable struct {
	cause error
}

// Unavailable returns a Gateway that fails every call with ErrUnavailable.
// It keeps the server answering when the model client could not be built.
func Unavailable(cause error) Gateway {
	return &unavailable{cause: cause}
}

func (u *unavailable) Generate(ctx context.Context, prompt string) (string, error) {
	return "", u.err()
}

func (u *unavailable) GenerateStructured(ctx context.Context, prompt string, schema *genai.Schema) (string, error) {
	return "", u.err()
}

func (u *unavailable) err() error {
	if u.cause == nil {
		return ErrUnavailable
	}
	return errors.Join(ErrUnavailable, u.cause)
}
