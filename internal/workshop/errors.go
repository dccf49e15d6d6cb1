package workshop

import (
	"errors"
	"net/http"

	"github.com/saulo-duarte/oficina-poemas/internal/gateway"
)

var (
	ErrEmptyInterest        = errors.New("interest is required")
	ErrEmptyTheme           = errors.New("theme is required")
	ErrEmptyWord            = errors.New("word is required")
	ErrPoemTooShort         = errors.New("poem is too short")
	ErrMissingExportFields  = errors.New("title and author are required")
	ErrInvalidTransition    = errors.New("action not allowed in the current stage")
	ErrBusy                 = errors.New("another request is in progress")
	ErrAssistantUnavailable = errors.New("assistant unavailable")
	ErrRejected             = errors.New("request rejected by the server")
	ErrNoSuchCorrection     = errors.New("correction not found")
	ErrUnknownSuggestion    = errors.New("suggestion does not belong to the correction")
)

// UserMessage translates a session error into the notice shown to the student.
func UserMessage(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrEmptyInterest):
		return "Conte um pouco sobre seus interesses antes de continuar."
	case errors.Is(err, ErrEmptyTheme):
		return "Escolha um tema para continuar."
	case errors.Is(err, ErrEmptyWord):
		return "Digite uma palavra para buscar rimas."
	case errors.Is(err, ErrPoemTooShort):
		return "Seu poema ainda está muito curto. Escreva um pouco mais!"
	case errors.Is(err, ErrMissingExportFields):
		return "Preencha o título e o nome do autor."
	case errors.Is(err, ErrBusy):
		return "Aguarde, o assistente ainda está trabalhando."
	case errors.Is(err, ErrInvalidTransition):
		return "Essa ação não está disponível nesta etapa."
	case errors.Is(err, ErrNoSuchCorrection), errors.Is(err, ErrUnknownSuggestion):
		return "Essa correção não está mais disponível."
	}

	var apiErr *APIError
	if errors.As(err, &apiErr) && apiErr.Status >= http.StatusBadRequest && apiErr.Status < http.StatusInternalServerError {
		if apiErr.Message != "" && apiErr.Message != http.StatusText(apiErr.Status) {
			return apiErr.Message
		}
		return "Não foi possível concluir o pedido. Revise os dados e tente novamente."
	}
	return gateway.UserMessage
}
