package server

// RegisterRoutes sets up the page routes. Module routes are added when the
// modules boot.
func (s *Server) RegisterRoutes() {
	s.E.GET("/", s.homeHandler.HomeGet)
	s.E.GET("/health", s.homeHandler.HealthGet)
	s.E.GET("/partials/menu", s.homeHandler.MenuGet)

	s.E.POST("/testimonials/next", s.testimonialsHandler.NextPost)
	s.E.POST("/testimonials/prev", s.testimonialsHandler.PrevPost)
	s.E.POST("/testimonials/:index", s.testimonialsHandler.JumpPost)
}
