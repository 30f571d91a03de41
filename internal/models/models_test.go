package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearchRequestNormalize(t *testing.T) {
	req := SearchRequest{Skills: []string{" Python ", "", "Go"}}
	req.Normalize(50)

	assert.Equal(t, []string{"Python", "Go"}, req.Skills)
	assert.Equal(t, DefaultLimit, req.Limit)
}

func TestSearchRequestNormalizeCapsLimit(t *testing.T) {
	req := SearchRequest{Skills: []string{"Python"}, Limit: 500}
	req.Normalize(50)
	assert.Equal(t, 50, req.Limit)
}

func TestApplyDefaultSkills(t *testing.T) {
	req := SearchRequest{}
	req.ApplyDefaultSkills([]string{"Python", "SQL"})
	assert.Equal(t, []string{"Python", "SQL"}, req.Skills)
}

func TestApplyDefaultSkillsKeepsExplicitSkills(t *testing.T) {
	req := SearchRequest{Skills: []string{"Go"}}
	req.ApplyDefaultSkills([]string{"Python"})
	assert.Equal(t, []string{"Go"}, req.Skills)
}

func TestSearchRequestValidate(t *testing.T) {
	req := SearchRequest{
		Skills:          []string{"Python"},
		ExperienceLevel: ExperienceMidSenior,
		JobType:         JobTypeFullTime,
		Limit:           10,
	}
	require.NoError(t, req.Validate())
}

func TestSearchRequestValidateNoSkills(t *testing.T) {
	req := SearchRequest{Limit: 10}
	err := req.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "skill")
}

func TestSearchRequestValidateBadEnums(t *testing.T) {
	req := SearchRequest{Skills: []string{"Python"}, ExperienceLevel: "ninja", Limit: 10}
	err := req.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "experience_level")

	req = SearchRequest{Skills: []string{"Python"}, JobType: "gig", Limit: 10}
	err = req.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "job_type")
}

func TestSuccessInvariant(t *testing.T) {
	jobs := []JobListing{{Title: "A"}, {Title: "B"}}
	result := Success(SearchRequest{Skills: []string{"Go"}}, jobs)

	assert.True(t, result.Success)
	assert.Equal(t, len(result.Jobs), result.TotalJobsFound)
}

func TestSuccessNilJobs(t *testing.T) {
	result := Success(SearchRequest{Skills: []string{"Go"}}, nil)
	assert.NotNil(t, result.Jobs)
	assert.Equal(t, 0, result.TotalJobsFound)
}

func TestFailure(t *testing.T) {
	result := Failure(SearchRequest{Skills: []string{"Go"}}, "browser unavailable")
	assert.False(t, result.Success)
	assert.Equal(t, 0, result.TotalJobsFound)
	assert.Equal(t, "browser unavailable", result.Message)
	assert.Equal(t, len(result.Jobs), result.TotalJobsFound)
}
