package server

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"go-linkedin-scout/internal/config"
	"go-linkedin-scout/internal/scraper"
)

// Server wraps the REST surface around a JobSearcher.
type Server struct {
	cfg      *config.Config
	searcher scraper.JobSearcher
	limiter  *rate.Limiter
	engine   *gin.Engine
}

func New(cfg *config.Config, searcher scraper.JobSearcher) *Server {
	s := &Server{
		cfg:      cfg,
		searcher: searcher,
		limiter:  rate.NewLimiter(rate.Every(time.Minute/time.Duration(cfg.RequestsPerMinute)), cfg.RequestsPerMinute),
	}

	r := gin.Default()
	r.GET("/", s.handleRoot)
	r.GET("/status", s.handleStatus)
	r.GET("/help", s.handleHelp)
	r.POST("/search", s.rateLimit(), s.handleSearch)
	s.engine = r

	return s
}

func (s *Server) Run() error {
	return s.engine.Run(":" + s.cfg.Port)
}

// Handler exposes the underlying router, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.engine
}

// rateLimit enforces the configured per-minute request cap on scraping
// endpoints.
func (s *Server) rateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !s.limiter.Allow() {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"error": "rate limit exceeded, try again later",
			})
			return
		}
		c.Next()
	}
}
