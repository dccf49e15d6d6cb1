package export

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/saulo-duarte/oficina-poemas/internal/config"
)

type Handler struct {
	service Service
}

func NewHandler(s Service) *Handler {
	return &Handler{service: s}
}

func (h *Handler) Export(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	var req ExportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		config.Error(w, http.StatusBadRequest, "corpo da requisição inválido")
		return
	}

	doc, err := h.service.Export(r.Context(), req)
	if err != nil {
		if errors.Is(err, ErrValidation) {
			config.Error(w, http.StatusBadRequest, "Preencha o título e o nome do autor.")
			return
		}
		log.WithError(err).Error("Failed to export poem")
		config.Error(w, http.StatusInternalServerError, "Não foi possível gerar o PDF. Tente novamente.")
		return
	}

	w.Header().Set("Content-Type", doc.ContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, doc.Filename))
	w.Header().Set("Content-Length", strconv.Itoa(len(doc.Content)))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(doc.Content); err != nil {
		log.WithError(err).Warn("Failed to write PDF response")
	}
}
