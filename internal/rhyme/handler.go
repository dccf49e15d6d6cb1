package rhyme

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

func (h *Handler) FindRhymes(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	var req RhymeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		config.Error(w, http.StatusBadRequest, "corpo da requisição inválido")
		return
	}
	req.Normalize()
	if err := config.Validate(req); err != nil {
		config.Error(w, http.StatusBadRequest, "Digite uma palavra para buscar rimas.")
		return
	}

	rhymes, err := h.service.FindRhymes(r.Context(), req.Word, req.Theme)
	if err != nil {
		log.WithError(err).Error("Failed to find rhymes")
		config.Error(w, http.StatusInternalServerError, gateway.UserMessage)
		return
	}

	config.JSON(w, http.StatusOK, RhymeResponse{Rhymes: rhymes})
}
