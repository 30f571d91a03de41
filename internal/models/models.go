// Typed entities for job search and profile scraping.
// These replace the loose per-script record shapes with one schema.

package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

type JobType string

const (
	JobTypeFullTime   JobType = "full_time"
	JobTypePartTime   JobType = "part_time"
	JobTypeContract   JobType = "contract"
	JobTypeTemporary  JobType = "temporary"
	JobTypeVolunteer  JobType = "volunteer"
	JobTypeInternship JobType = "internship"
)

func (t JobType) Valid() bool {
	switch t {
	case "", JobTypeFullTime, JobTypePartTime, JobTypeContract, JobTypeTemporary, JobTypeVolunteer, JobTypeInternship:
		return true
	}
	return false
}

type ExperienceLevel string

const (
	ExperienceInternship ExperienceLevel = "internship"
	ExperienceEntry      ExperienceLevel = "entry"
	ExperienceAssociate  ExperienceLevel = "associate"
	ExperienceMidSenior  ExperienceLevel = "mid_senior"
	ExperienceDirector   ExperienceLevel = "director"
	ExperienceExecutive  ExperienceLevel = "executive"
)

func (e ExperienceLevel) Valid() bool {
	switch e {
	case "", ExperienceInternship, ExperienceEntry, ExperienceAssociate, ExperienceMidSenior, ExperienceDirector, ExperienceExecutive:
		return true
	}
	return false
}

// JobListing is one extracted job posting. Immutable after extraction.
type JobListing struct {
	Title         string   `json:"title"`
	Company       string   `json:"company"`
	Location      string   `json:"location"`
	Description   string   `json:"description,omitempty"`
	Requirements  []string `json:"requirements,omitempty"`
	SalaryRange   string   `json:"salary_range,omitempty"`
	JobType       JobType  `json:"job_type,omitempty"`
	PostedDate    string   `json:"posted_date,omitempty"`
	SourceURL     string   `json:"source_url"`
	SkillsMatched []string `json:"skills_matched"`
	MatchScore    int      `json:"match_score"`
}

// Profile is one extracted LinkedIn profile.
type Profile struct {
	Name            string   `json:"name"`
	Headline        string   `json:"headline,omitempty"`
	Location        string   `json:"location,omitempty"`
	CurrentCompany  string   `json:"current_company,omitempty"`
	About           string   `json:"about,omitempty"`
	Experience      []string `json:"experience,omitempty"`
	Education       []string `json:"education,omitempty"`
	Skills          []string `json:"skills,omitempty"`
	SkillsMatched   []string `json:"skills_matched"`
	SkillMatchScore int      `json:"skill_match_score"`
	Connections     string   `json:"connections,omitempty"`
	ProfileURL      string   `json:"profile_url"`
	ScrapedAt       string   `json:"scraped_at,omitempty"`
}

// SearchRequest carries validated search parameters. Validated once at the
// request boundary and treated as immutable afterwards.
type SearchRequest struct {
	Skills          []string        `json:"skills" binding:"required,min=1,dive,required" validate:"required,min=1"`
	Location        string          `json:"location,omitempty"`
	ExperienceLevel ExperienceLevel `json:"experience_level,omitempty"`
	JobType         JobType         `json:"job_type,omitempty"`
	Company         string          `json:"company,omitempty"`
	Limit           int             `json:"limit,omitempty" validate:"gte=0"`
}

const DefaultLimit = 10

var validate = validator.New()

// ApplyDefaultSkills falls back to the configured target skills when the
// request names none.
func (r *SearchRequest) ApplyDefaultSkills(defaults []string) {
	if len(r.Skills) == 0 {
		r.Skills = append([]string(nil), defaults...)
	}
}

// Normalize trims skills, applies the default limit and caps it at maxJobs.
func (r *SearchRequest) Normalize(maxJobs int) {
	cleaned := make([]string, 0, len(r.Skills))
	for _, s := range r.Skills {
		if s = strings.TrimSpace(s); s != "" {
			cleaned = append(cleaned, s)
		}
	}
	r.Skills = cleaned

	if r.Limit <= 0 {
		r.Limit = DefaultLimit
	}
	if maxJobs > 0 && r.Limit > maxJobs {
		r.Limit = maxJobs
	}
}

func (r *SearchRequest) Validate() error {
	if err := validate.Struct(r); err != nil {
		return fmt.Errorf("skills: at least one skill is required")
	}
	if !r.ExperienceLevel.Valid() {
		return fmt.Errorf("experience_level: unsupported value %q", r.ExperienceLevel)
	}
	if !r.JobType.Valid() {
		return fmt.Errorf("job_type: unsupported value %q", r.JobType)
	}
	return nil
}

// SearchResult echoes the request back with the extracted jobs.
// Invariant: TotalJobsFound == len(Jobs).
type SearchResult struct {
	Success        bool          `json:"success"`
	TotalJobsFound int           `json:"total_jobs_found"`
	Jobs           []JobListing  `json:"jobs"`
	SearchQuery    SearchRequest `json:"search_query"`
	Message        string        `json:"message,omitempty"`
}

func Failure(req SearchRequest, message string) SearchResult {
	return SearchResult{
		Success:     false,
		Jobs:        []JobListing{},
		SearchQuery: req,
		Message:     message,
	}
}

func Success(req SearchRequest, jobs []JobListing) SearchResult {
	if jobs == nil {
		jobs = []JobListing{}
	}
	return SearchResult{
		Success:        true,
		TotalJobsFound: len(jobs),
		Jobs:           jobs,
		SearchQuery:    req,
		Message:        fmt.Sprintf("Successfully found %d job listings", len(jobs)),
	}
}

// ScrapingStatus reports service health for GET /status.
type ScrapingStatus struct {
	Status          string   `json:"status"`
	JobsScraped     int64    `json:"jobs_scraped"`
	ProfilesScraped int64    `json:"profiles_scraped"`
	Errors          []string `json:"errors"`
	Timestamp       string   `json:"timestamp"`
}

func NewStatus(jobs, profiles int64, errs []string) ScrapingStatus {
	if errs == nil {
		errs = []string{}
	}
	return ScrapingStatus{
		Status:          "ready",
		JobsScraped:     jobs,
		ProfilesScraped: profiles,
		Errors:          errs,
		Timestamp:       time.Now().Format(time.RFC3339),
	}
}
