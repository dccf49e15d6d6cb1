package rhyme

import (
	"time"

	"github.com/saulo-duarte/oficina-poemas/internal/gateway"
)

type RhymeContainer struct {
	Service Service
	Handler *Handler
}

func NewRhymeContainer(gw gateway.Gateway, cacheTTL time.Duration) *RhymeContainer {
	service := NewService(gw, cacheTTL)
	handler := NewHandler(service)

	return &RhymeContainer{
		Service: service,
		Handler: handler,
	}
}
