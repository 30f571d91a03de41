// Define the interfaces the CLI and server consume
// Keep browser details out of the callers

package scraper

import (
	"context"

	"go-linkedin-scout/internal/models"
)

//JobSearcher runs one blocking job search per call. Navigation and session
//failures are reported inside the SearchResult, never as a panic or a
//process-level error.
type JobSearcher interface {
	SearchJobs(ctx context.Context, req models.SearchRequest) models.SearchResult

	//Status is the service health snapshot for GET /status
	Status() models.ScrapingStatus
}

//ProfileSearcher scrapes people-search results for the request's skills.
type ProfileSearcher interface {
	SearchProfiles(ctx context.Context, req models.SearchRequest) ([]models.Profile, error)
}
