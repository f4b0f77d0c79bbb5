package httpserver

func (s *Server) setupRoutes() {
	s.echo.GET("/health", s.healthCheck)
	s.echo.GET("/metrics", s.metricsEndpoint)

	api := s.echo.Group("/api/v1")
	api.Use(s.middleware.Auth.RequireBasicAuth())

	matches := api.Group("/matches")
	matches.GET("", s.listMatches)
	matches.GET("/:id/timeline", s.getMatchTimeline)
	matches.GET("/:id/charts/minutes", s.getMatchMinuteChart)
	matches.GET("/:id/charts/types", s.getMatchTypeChart)

	api.GET("/teams/:id/squad", s.getSquad)

	api.GET("/injuries", s.listInjuries)
	api.GET("/injuries/charts/rollup", s.getInjuryRollup)

	api.DELETE("/cache", s.clearCache)
}
