package httpserver

import (
	"context"
	"net"

	"github.com/labstack/echo/v4"
)

// Start blocks serving the dashboard API until Shutdown or a listener error.
func (s *Server) Start() error {
	addr := net.JoinHostPort(s.config.Host, s.config.Port)

	// echo owns the listeners; the timeouts come from our config.
	s.echo.Server.ReadTimeout = s.config.ReadTimeout
	s.echo.Server.WriteTimeout = s.config.WriteTimeout
	s.echo.Server.IdleTimeout = s.config.IdleTimeout
	s.echo.TLSServer.ReadTimeout = s.config.ReadTimeout
	s.echo.TLSServer.WriteTimeout = s.config.WriteTimeout
	s.echo.TLSServer.IdleTimeout = s.config.IdleTimeout

	if s.config.TLSCertFile != "" && s.config.TLSKeyFile != "" {
		s.logger.WithField("addr", addr).Info("serving dashboard API over TLS")
		return s.echo.StartTLS(addr, s.config.TLSCertFile, s.config.TLSKeyFile)
	}
	s.logger.WithField("addr", addr).Warn("serving dashboard API over plain HTTP, no TLS configured")
	return s.echo.Start(addr)
}

// Shutdown drains in-flight requests within the given context deadline.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.echo.Shutdown(ctx)
}

// Echo exposes the router for handler tests.
func (s *Server) Echo() *echo.Echo {
	return s.echo
}
