package filter

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizePostedDate(t *testing.T) {
	assert.Equal(t, "2024-01-15", NormalizePostedDate("2024-01-15"))
	assert.Equal(t, "2024-01-15", NormalizePostedDate("2024-01-15T10:30:00Z"))
	assert.Equal(t, "", NormalizePostedDate("  "))
	//unrecognized text passes through unchanged
	assert.Equal(t, "Recent", NormalizePostedDate("Recent"))
}

func TestNormalizePostedDateRelative(t *testing.T) {
	got := NormalizePostedDate("2 weeks ago")

	posted, err := time.Parse("2006-01-02", got)
	require.NoError(t, err)

	days := time.Since(posted).Hours() / 24
	assert.InDelta(t, 14, days, 1.5)
}

func TestIsRecent(t *testing.T) {
	assert.True(t, IsRecent("", 60))
	assert.True(t, IsRecent("Recent", 60))
	assert.True(t, IsRecent(time.Now().AddDate(0, 0, -5).Format("2006-01-02"), 60))
	assert.False(t, IsRecent(time.Now().AddDate(0, 0, -90).Format("2006-01-02"), 60))
	//far-future dates are bogus
	assert.False(t, IsRecent(time.Now().AddDate(0, 0, 30).Format("2006-01-02"), 60))
}
