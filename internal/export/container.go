package export

import "github.com/saulo-duarte/oficina-poemas/internal/gateway"

type ExportContainer struct {
	Service Service
	Handler *Handler
}

func NewExportContainer(gw gateway.Gateway) *ExportContainer {
	service := NewService(gw, NewPDFRenderer())
	handler := NewHandler(service)

	return &ExportContainer{
		Service: service,
		Handler: handler,
	}
}
