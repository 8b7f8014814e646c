package http

import (
	"github.com/MKhiriev/go-route-handler/internal/config"
	"github.com/MKhiriev/go-route-handler/internal/logger"
	"github.com/MKhiriev/go-route-handler/internal/service"
	"github.com/MKhiriev/go-route-handler/internal/utils"
	"github.com/MKhiriev/go-route-handler/models"
	"github.com/MKhiriev/go-route-handler/routehandler"
)

type Handler struct {
	services *service.Services

	// routes mints the dispatch function of every endpoint.
	routes *routehandler.Factory[models.Session]

	// messages carries the fallback texts with defaults applied.
	messages routehandler.Config[models.Session]

	traceIDs *utils.UUIDGenerator
	logger   *logger.Logger
}

func NewHandler(services *service.Services, cfg config.Routes, logger *logger.Logger) *Handler {
	h := &Handler{
		services: services,
		traceIDs: utils.NewUUIDGenerator(),
		logger:   logger,
	}

	h.messages = routehandler.MergeConfigs(routehandler.DefaultConfig[models.Session](), routehandler.Config[models.Session]{
		MethodNotAllowedMessage:    cfg.MethodNotAllowedMessage,
		UnauthorizedMessage:        cfg.UnauthorizedMessage,
		InternalServerErrorMessage: cfg.InternalServerErrorMessage,
	})

	base := h.messages
	base.OnUnmatchedMethod = h.methodNotAllowed
	base.OnUnauthorized = h.unauthorized
	base.OnError = h.writeError
	base.Authenticate = h.authenticate
	h.routes = routehandler.NewFactory(base)

	logger.Info().Msg("http handler created")
	return h
}

// authenticated is the per-route override that gates every method.
func authenticated() routehandler.Config[models.Session] {
	return routehandler.Config[models.Session]{
		AuthenticatedMethods: routehandler.Methods(),
	}
}
