package theme

import (
	"encoding/json"
	"net/http"

	"github.com/saulo-duarte/oficina-poemas/internal/config"
	"github.com/saulo-duarte/oficina-poemas/internal/gateway"
)

type Handler struct {
	service Service
}

func NewHandler(s Service) *Handler {
	return &Handler{service: s}
}

func (h *Handler) GenerateThemes(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	var req ThemeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		config.Error(w, http.StatusBadRequest, "corpo da requisição inválido")
		return
	}
	req.Normalize()
	if err := config.Validate(req); err != nil {
		config.Error(w, http.StatusBadRequest, "Conte um pouco sobre seus interesses.")
		return
	}

	themes, err := h.service.GenerateThemes(r.Context(), req.Interest)
	if err != nil {
		log.WithError(err).Error("Failed to generate themes")
		config.Error(w, http.StatusInternalServerError, gateway.UserMessage)
		return
	}

	config.JSON(w, http.StatusOK, ThemeResponse{Themes: themes})
}
