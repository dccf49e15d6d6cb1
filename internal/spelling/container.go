package spelling

import "github.com/saulo-duarte/oficina-poemas/internal/gateway"

type SpellingContainer struct {
	Service Service
	Handler *Handler
}

func NewSpellingContainer(gw gateway.Gateway) *SpellingContainer {
	service := NewService(gw)
	handler := NewHandler(service)

	return &SpellingContainer{
		Service: service,
		Handler: handler,
	}
}
