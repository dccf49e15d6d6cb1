package spelling

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

func (h *Handler) CheckSpelling(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	var req SpellingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		config.Error(w, http.StatusBadRequest, "corpo da requisição inválido")
		return
	}

	corrections, err := h.service.CheckSpelling(r.Context(), req.Text)
	if err != nil {
		log.WithError(err).Error("Failed to check spelling")
		config.Error(w, http.StatusInternalServerError, gateway.UserMessage)
		return
	}

	config.JSON(w, http.StatusOK, SpellingResponse{Errors: corrections})
}
