package moderation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/looplineapp/loopline-backend/internal/models"
)

func reportsFixture() []models.Report {
	return []models.Report{
		{ContentID: "a", Status: StatusPending},
		{ContentID: "b", Status: StatusReviewed},
		{ContentID: "c", Status: StatusPending},
		{ContentID: "d", Status: StatusResolved},
		{ContentID: "e", Status: StatusDismissed},
		{ContentID: "f", Status: StatusPending},
	}
}

func TestFilterByStatusAll(t *testing.T) {
	in := reportsFixture()

	out := FilterByStatus(in, StatusAll)
	require.Len(t, out, len(in))
	for i := range in {
		assert.Equal(t, in[i].ContentID, out[i].ContentID, "order must be preserved")
	}
}

func TestFilterByStatusSubset(t *testing.T) {
	out := FilterByStatus(reportsFixture(), StatusPending)

	require.Len(t, out, 3)
	assert.Equal(t, "a", out[0].ContentID)
	assert.Equal(t, "c", out[1].ContentID)
	assert.Equal(t, "f", out[2].ContentID)
}

func TestFilterByStatusEmptyInput(t *testing.T) {
	assert.Empty(t, FilterByStatus(nil, StatusPending))
	assert.Empty(t, FilterByStatus([]models.Report{}, StatusAll))
}

func TestCountByStatus(t *testing.T) {
	in := reportsFixture()

	assert.Equal(t, 3, CountByStatus(in, StatusPending))
	assert.Equal(t, 1, CountByStatus(in, StatusReviewed))
	assert.Equal(t, 1, CountByStatus(in, StatusResolved))
	assert.Equal(t, 1, CountByStatus(in, StatusDismissed))
	assert.Equal(t, 0, CountByStatus(in, "bogus"))
}

func TestCountMatchesFilterLength(t *testing.T) {
	in := reportsFixture()
	for _, status := range []string{StatusPending, StatusReviewed, StatusResolved, StatusDismissed} {
		assert.Equal(t, len(FilterByStatus(in, status)), CountByStatus(in, status))
	}
}
