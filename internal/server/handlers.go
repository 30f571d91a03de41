package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"

	"go-linkedin-scout/internal/models"
)

func (s *Server) handleRoot(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "LinkedIn Scout API is running!",
		"status":  "healthy",
		"endpoints": gin.H{
			"job_search": "/search",
			"status":     "/status",
			"help":       "/help",
		},
	})
}

// handleSearch validates the request and runs one blocking job search.
// Validation problems are a 400; navigation and extraction failures come
// back as a SearchResult with success=false so callers can tell "no jobs
// found" apart from "scrape failed".
func (s *Server) handleSearch(c *gin.Context) {
	var req models.SearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request: at least one skill is required"})
		return
	}

	req.Normalize(s.cfg.MaxJobsPerRequest)
	if err := req.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	log.Printf("🔍 Received job search request for skills: %v", req.Skills)
	result := s.searcher.SearchJobs(c.Request.Context(), req)
	if !result.Success {
		log.Printf("⚠️ Job search failed: %s", result.Message)
	} else {
		log.Printf("✅ Job search completed. Found %d jobs", result.TotalJobsFound)
	}

	c.JSON(http.StatusOK, result)
}

func (s *Server) handleStatus(c *gin.Context) {
	c.JSON(http.StatusOK, s.searcher.Status())
}

func (s *Server) handleHelp(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"description": "LinkedIn job scraping API",
		"endpoints": gin.H{
			"POST /search": gin.H{
				"description":     "Search for jobs based on skills and criteria",
				"required_fields": []string{"skills"},
				"optional_fields": []string{"location", "experience_level", "job_type", "company", "limit"},
			},
			"GET /status": gin.H{"description": "Get scraping service status"},
			"GET /help":   gin.H{"description": "Get this help information"},
		},
		"example_request": gin.H{
			"skills":           []string{"Python", "Machine Learning"},
			"location":         "San Francisco, CA",
			"experience_level": "mid_senior",
			"job_type":         "full_time",
			"limit":            20,
		},
		"supported_experience_levels": []string{
			"internship", "entry", "associate", "mid_senior", "director", "executive",
		},
		"supported_job_types": []string{
			"full_time", "part_time", "contract", "temporary", "volunteer", "internship",
		},
		"rate_limits": gin.H{
			"requests_per_minute":     s.cfg.RequestsPerMinute,
			"max_results_per_request": s.cfg.MaxJobsPerRequest,
		},
		"notes": []string{
			"LinkedIn may implement anti-bot measures that could affect scraping",
			"Results are limited to publicly available job postings",
			"Detailed job information is only fetched for the first 3 results",
		},
	})
}
