package main

import (
	"net/http"

	"github.com/aws/aws-lambda-go/lambda"
	chiadapter "github.com/awslabs/aws-lambda-go-api-proxy/chi"

	"github.com/saulo-duarte/oficina-poemas/internal/config"
	"github.com/saulo-duarte/oficina-poemas/internal/container"
	"github.com/saulo-duarte/oficina-poemas/internal/router"
)

func main() {
	c := container.New()
	mux := router.New(c.RouterConfig())

	if c.Config.App.Lambda {
		config.Logger.Info("Iniciando em modo Lambda")
		lambda.Start(chiadapter.New(mux).ProxyWithContext)
		return
	}

	addr := ":" + c.Config.App.Port
	config.Logger.WithField("addr", addr).Info("Servidor HTTP iniciado")
	if err := http.ListenAndServe(addr, mux); err != nil {
		config.Logger.WithError(err).Fatal("Servidor encerrado")
	}
}
