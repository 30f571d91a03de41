package filter

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatchSkills(t *testing.T) {
	tests := []struct {
		name        string
		targets     []string
		text        string
		wantMatched []string
		wantScore   int
	}{
		{
			name:        "single skill present",
			targets:     []string{"Python"},
			text:        "We are looking for a python developer",
			wantMatched: []string{"Python"},
			wantScore:   100,
		},
		{
			name:        "one of three",
			targets:     []string{"Python", "Java", "Rust"},
			text:        "Experience with Python required",
			wantMatched: []string{"Python"},
			wantScore:   33,
		},
		{
			name:        "two of three rounds up",
			targets:     []string{"Python", "Java", "Rust"},
			text:        "Python and Java shop",
			wantMatched: []string{"Python", "Java"},
			wantScore:   67,
		},
		{
			name:        "no matches",
			targets:     []string{"Oracle", "PL/SQL"},
			text:        "Frontend role, React and CSS",
			wantMatched: nil,
			wantScore:   0,
		},
		{
			name:        "empty target list scores zero",
			targets:     nil,
			text:        "anything at all",
			wantMatched: nil,
			wantScore:   0,
		},
		{
			name:        "accent insensitive",
			targets:     []string{"café"},
			text:        "Cafe management experience",
			wantMatched: []string{"café"},
			wantScore:   100,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			matched, score := MatchSkills(tt.targets, tt.text)
			assert.Equal(t, tt.wantMatched, matched)
			assert.Equal(t, tt.wantScore, score)
		})
	}
}

func TestMatchSkillsReturnsSubset(t *testing.T) {
	targets := []string{"Go", "Python", "Kubernetes", "SQL"}
	matched, score := MatchSkills(targets, "Go and SQL and Terraform")

	assert.Subset(t, targets, matched)
	assert.GreaterOrEqual(t, score, 0)
	assert.LessOrEqual(t, score, 100)
}

func TestMatchSkillLists(t *testing.T) {
	targets := []string{"SQL", "Oracle Database", "Python"}
	skills := []string{"Advanced SQL", "Oracle", "Shell Scripting"}

	matched, score := MatchSkillLists(targets, skills)

	//SQL is contained in "Advanced SQL", "Oracle" is contained in "Oracle Database"
	assert.Equal(t, []string{"SQL", "Oracle Database"}, matched)
	assert.Equal(t, 67, score)
}

func TestMatchSkillListsEmpty(t *testing.T) {
	matched, score := MatchSkillLists(nil, []string{"SQL"})
	assert.Nil(t, matched)
	assert.Equal(t, 0, score)

	matched, score = MatchSkillLists([]string{"SQL"}, nil)
	assert.Nil(t, matched)
	assert.Equal(t, 0, score)
}
