package idea

import (
	"encoding/json"
	"net/http"

	"github.com/saulo-duarte/oficina-poemas/internal/config"
)

type Handler struct {
	service Service
}

func NewHandler(s Service) *Handler {
	return &Handler{service: s}
}

func (h *Handler) GenerateIdeas(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	var req IdeaRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		config.Error(w, http.StatusBadRequest, "corpo da requisição inválido")
		return
	}
	req.Normalize()
	if err := config.Validate(req); err != nil {
		config.Error(w, http.StatusBadRequest, "Escolha um tema primeiro.")
		return
	}

	ideas, err := h.service.GenerateIdeas(r.Context(), req.Theme)
	if err != nil {
		log.WithError(err).Error("Failed to generate ideas")
		config.Error(w, http.StatusBadRequest, "Escolha um tema primeiro.")
		return
	}

	config.JSON(w, http.StatusOK, IdeaResponse{Ideas: ideas})
}
