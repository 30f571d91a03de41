package export

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"go-linkedin-scout/internal/models"
)

func sampleJobs() []models.JobListing {
	return []models.JobListing{
		{
			Title:         "Senior Python Developer",
			Company:       "Tech Corp",
			Location:      "San Francisco, CA",
			JobType:       models.JobTypeFullTime,
			PostedDate:    "2024-01-15",
			SkillsMatched: []string{"Python", "Django"},
			MatchScore:    67,
			SourceURL:     "https://www.linkedin.com/jobs/view/1",
			Description:   "Build Python services",
		},
		{
			Title:      "Data Engineer",
			Company:    "Data Inc",
			Location:   "Remote",
			MatchScore: 100,
		},
	}
}

func sampleRequest() models.SearchRequest {
	return models.SearchRequest{
		Skills:   []string{"Python", "Django"},
		Location: "San Francisco, CA",
	}
}

func TestParseFormat(t *testing.T) {
	for _, s := range []string{"json", " CSV ", "xlsx"} {
		_, err := ParseFormat(s)
		assert.NoError(t, err, s)
	}

	_, err := ParseFormat("pdf")
	assert.ErrorContains(t, err, "unsupported export format")
}

func TestExportJobsJSONRoundTrip(t *testing.T) {
	e := New(t.TempDir())

	path, err := e.ExportJobs(sampleJobs(), sampleRequest(), FormatJSON)
	require.NoError(t, err)

	loaded, err := LoadJobs(path)
	require.NoError(t, err)
	assert.Equal(t, sampleJobs(), loaded)
}

func TestExportJobsFilename(t *testing.T) {
	e := New(t.TempDir())

	path, err := e.ExportJobs(sampleJobs(), sampleRequest(), FormatJSON)
	require.NoError(t, err)

	name := filepath.Base(path)
	assert.True(t, strings.HasPrefix(name, "linkedin_jobs_python_django_san_francisco_ca_"), name)
	assert.True(t, strings.HasSuffix(name, ".json"), name)
}

func TestExportJobsCSV(t *testing.T) {
	e := New(t.TempDir())

	path, err := e.ExportJobs(sampleJobs(), sampleRequest(), FormatCSV)
	require.NoError(t, err)

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)

	assert.Equal(t, jobColumns, records[0])
	assert.Equal(t, "Senior Python Developer", records[1][0])
	assert.Equal(t, "Python, Django", records[1][6])
	assert.Equal(t, "67", records[1][7])
}

func TestExportJobsXLSX(t *testing.T) {
	e := New(t.TempDir())

	path, err := e.ExportJobs(sampleJobs(), sampleRequest(), FormatXLSX)
	require.NoError(t, err)

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	header, err := f.GetCellValue("Jobs", "A1")
	require.NoError(t, err)
	assert.Equal(t, "Title", header)

	title, err := f.GetCellValue("Jobs", "A2")
	require.NoError(t, err)
	assert.Equal(t, "Senior Python Developer", title)
}

func TestExportProfilesCSV(t *testing.T) {
	e := New(t.TempDir())
	profiles := []models.Profile{{
		Name:            "Jane Doe",
		Headline:        "Database Engineer",
		Location:        "Austin, TX",
		SkillsMatched:   []string{"PL/SQL"},
		SkillMatchScore: 50,
		ProfileURL:      "https://www.linkedin.com/in/jane",
	}}

	path, err := e.ExportProfiles(profiles, sampleRequest(), FormatCSV)
	require.NoError(t, err)

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, profileColumns, records[0])
	assert.Equal(t, "Jane Doe", records[1][0])
}

func TestBuildPathEmptyParams(t *testing.T) {
	e := New(t.TempDir())
	path := e.buildPath("jobs", models.SearchRequest{}, FormatCSV)
	assert.Contains(t, filepath.Base(path), "linkedin_jobs_all_any_")
}
