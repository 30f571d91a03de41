package linkedin

import (
	"net/url"
	"strings"

	"go-linkedin-scout/internal/models"
)

const (
	jobSearchBase     = "https://www.linkedin.com/jobs/search"
	profileSearchBase = "https://www.linkedin.com/search/results/people/"
)

//LinkedIn f_E codes
var experienceCodes = map[models.ExperienceLevel]string{
	models.ExperienceInternship: "1",
	models.ExperienceEntry:      "2",
	models.ExperienceAssociate:  "3",
	models.ExperienceMidSenior:  "4",
	models.ExperienceDirector:   "5",
	models.ExperienceExecutive:  "6",
}

//LinkedIn f_JT codes
var jobTypeCodes = map[models.JobType]string{
	models.JobTypeFullTime:   "F",
	models.JobTypePartTime:   "P",
	models.JobTypeContract:   "C",
	models.JobTypeTemporary:  "T",
	models.JobTypeVolunteer:  "V",
	models.JobTypeInternship: "I",
}

// BuildJobSearchURL encodes the request as LinkedIn job-search parameters.
func BuildJobSearchURL(req models.SearchRequest) string {
	params := url.Values{}
	params.Set("keywords", strings.Join(req.Skills, " OR "))

	if req.Location != "" {
		params.Set("location", req.Location)
	}
	if code, ok := experienceCodes[req.ExperienceLevel]; ok {
		params.Set("f_E", code)
	}
	if code, ok := jobTypeCodes[req.JobType]; ok {
		params.Set("f_JT", code)
	}
	if req.Company != "" {
		params.Set("f_C", req.Company)
	}

	//recent postings only
	params.Set("f_TPR", "r86400")
	params.Set("start", "0")

	return jobSearchBase + "?" + params.Encode()
}

// BuildProfileSearchURL encodes the request as a people-search URL.
func BuildProfileSearchURL(req models.SearchRequest) string {
	params := url.Values{}
	params.Set("keywords", strings.Join(req.Skills, " OR "))
	if req.Location != "" {
		params.Set("location", req.Location)
	}
	return profileSearchBase + "?" + params.Encode()
}

// stripQuery removes tracking parameters so the same job always yields the
// canonical URL for deduplication.
func stripQuery(rawURL string) string {
	if rawURL == "" {
		return ""
	}
	if idx := strings.Index(rawURL, "?"); idx != -1 {
		return rawURL[:idx]
	}
	return rawURL
}
