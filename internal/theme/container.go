package theme

import "github.com/saulo-duarte/oficina-poemas/internal/gateway"

type ThemeContainer struct {
	Service Service
	Handler *Handler
}

func NewThemeContainer(gw gateway.Gateway) *ThemeContainer {
	service := NewService(gw)
	handler := NewHandler(service)

	return &ThemeContainer{
		Service: service,
		Handler: handler,
	}
}
