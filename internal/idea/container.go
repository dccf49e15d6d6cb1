package idea

import "github.com/saulo-duarte/oficina-poemas/internal/gateway"

type IdeaContainer struct {
	Service Service
	Handler *Handler
}

func NewIdeaContainer(gw gateway.Gateway) *IdeaContainer {
	service := NewService(gw)
	handler := NewHandler(service)

	return &IdeaContainer{
		Service: service,
		Handler: handler,
	}
}
