package http

import (
	"time"

	"github.com/MKhiriev/go-blog/internal/config"
	"github.com/MKhiriev/go-blog/internal/logger"
	"github.com/MKhiriev/go-blog/internal/service"
	"github.com/MKhiriev/go-blog/internal/validators"
)

type Handler struct {
	services  *service.Services
	validator validators.Validator

	signInLimiter  *ipRateLimiter
	requestTimeout time.Duration

	logger *logger.Logger
}

func NewHandler(services *service.Services, validator validators.Validator, cfg config.Server, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:       services,
		validator:      validator,
		signInLimiter:  newIPRateLimiter(cfg.SignInRate, cfg.SignInBurst),
		requestTimeout: cfg.RequestTimeout,
		logger:         logger,
	}
}
