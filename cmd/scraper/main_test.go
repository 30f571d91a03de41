package main

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"go-linkedin-scout/internal/models"
)

func TestSplitSkills(t *testing.T) {
	assert.Equal(t, []string{"Python", "Go"}, splitSkills(" Python , ,Go"))
	assert.Nil(t, splitSkills(""))
}

func TestDeliveredURLs(t *testing.T) {
	jobs := []models.JobListing{
		{Title: "Sent", SourceURL: "https://x/1"},
		{Title: "Undelivered", SourceURL: "https://x/2"},
		{Title: "NoURL"},
	}

	urls := deliveredURLs(jobs, map[string]bool{"https://x/2": true})

	//the failed send stays unmarked so the next run reports it again
	assert.Equal(t, []string{"https://x/1"}, urls)
}
