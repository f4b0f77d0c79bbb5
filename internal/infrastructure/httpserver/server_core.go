package httpserver

import (
	"time"

	"github.com/labstack/echo/v4"
	"github.com/matchpulse/futsal-dashboard/internal/core/domain/teamcolor"
	"github.com/matchpulse/futsal-dashboard/internal/core/ports"
	customMiddleware "github.com/matchpulse/futsal-dashboard/internal/infrastructure/httpserver/middleware"
	"github.com/sirupsen/logrus"
)

type ServerConfig struct {
	Host         string
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
	TLSCertFile  string
	TLSKeyFile   string
}

type ServerDeps struct {
	MatchData      ports.MatchDataService
	Injuries       ports.InjuryService
	Cache          ports.Cache
	Colors         teamcolor.Palette
	HealthCheckers []ports.HealthChecker
}

type Server struct {
	echo           *echo.Echo
	config         *ServerConfig
	logger         *logrus.Logger
	matchData      ports.MatchDataService
	injuries       ports.InjuryService
	cache          ports.Cache
	colors         teamcolor.Palette
	middleware     *customMiddleware.MiddlewareCollection
	healthCheckers []ports.HealthChecker
}

func NewServer(serverConfig *ServerConfig, adminUser, adminPasswordHash string, logger *logrus.Logger, deps ServerDeps) *Server {
	e := echo.New()

	server := &Server{
		echo:           e,
		config:         serverConfig,
		logger:         logger,
		matchData:      deps.MatchData,
		injuries:       deps.Injuries,
		cache:          deps.Cache,
		colors:         deps.Colors,
		healthCheckers: deps.HealthCheckers,
		middleware: customMiddleware.NewMiddlewareCollection(
			adminUser,
			adminPasswordHash,
			logger,
			GetRequestsTotal(),
			GetRequestDuration(),
		),
	}

	server.setupMiddleware()
	server.setupRoutes()

	return server
}
