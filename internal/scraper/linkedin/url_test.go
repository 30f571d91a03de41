package linkedin

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-linkedin-scout/internal/models"
)

func TestBuildJobSearchURL(t *testing.T) {
	req := models.SearchRequest{
		Skills:          []string{"Python", "FastAPI"},
		Location:        "San Francisco, CA",
		ExperienceLevel: models.ExperienceMidSenior,
		JobType:         models.JobTypeFullTime,
		Company:         "Google",
		Limit:           10,
	}

	raw := BuildJobSearchURL(req)
	parsed, err := url.Parse(raw)
	require.NoError(t, err)

	query := parsed.Query()
	assert.Equal(t, "Python OR FastAPI", query.Get("keywords"))
	assert.Equal(t, "San Francisco, CA", query.Get("location"))
	assert.Equal(t, "4", query.Get("f_E"))
	assert.Equal(t, "F", query.Get("f_JT"))
	assert.Equal(t, "Google", query.Get("f_C"))
	assert.Equal(t, "r86400", query.Get("f_TPR"))
}

func TestBuildJobSearchURLOmitsEmptyFilters(t *testing.T) {
	raw := BuildJobSearchURL(models.SearchRequest{Skills: []string{"Go"}})
	parsed, err := url.Parse(raw)
	require.NoError(t, err)

	query := parsed.Query()
	assert.Equal(t, "Go", query.Get("keywords"))
	assert.Empty(t, query.Get("location"))
	assert.Empty(t, query.Get("f_E"))
	assert.Empty(t, query.Get("f_JT"))
	assert.Empty(t, query.Get("f_C"))
}

func TestBuildProfileSearchURL(t *testing.T) {
	raw := BuildProfileSearchURL(models.SearchRequest{
		Skills:   []string{"Oracle", "PL/SQL"},
		Location: "Remote",
	})
	parsed, err := url.Parse(raw)
	require.NoError(t, err)

	assert.Equal(t, "/search/results/people/", parsed.Path)
	assert.Equal(t, "Oracle OR PL/SQL", parsed.Query().Get("keywords"))
	assert.Equal(t, "Remote", parsed.Query().Get("location"))
}

func TestStripQuery(t *testing.T) {
	assert.Equal(t,
		"https://www.linkedin.com/jobs/view/123",
		stripQuery("https://www.linkedin.com/jobs/view/123?refId=abc&trackingId=xyz"))
	assert.Equal(t, "https://example.com/a", stripQuery("https://example.com/a"))
	assert.Equal(t, "", stripQuery(""))
}
