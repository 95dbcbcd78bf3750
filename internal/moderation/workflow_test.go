package moderation

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/looplineapp/loopline-backend/internal/models"
)

var (
	testActor = uuid.New()
	testNow   = time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
)

func pendingReport() models.Report {
	return models.Report{
		ID:          uuid.New(),
		ReporterID:  uuid.New(),
		ContentType: "post",
		ContentID:   "post-1",
		Reason:      "spam",
		Status:      StatusPending,
	}
}

func TestTransitionReviewStampsReviewer(t *testing.T) {
	r := pendingReport()

	got, err := Transition(r, StatusReviewed, "", testActor, testNow)
	require.NoError(t, err)

	assert.Equal(t, StatusReviewed, got.Status)
	require.NotNil(t, got.ReviewedBy)
	require.NotNil(t, got.ReviewedAt)
	assert.Equal(t, testActor, *got.ReviewedBy)
	assert.Equal(t, testNow, *got.ReviewedAt)

	// Input is not mutated.
	assert.Equal(t, StatusPending, r.Status)
	assert.Nil(t, r.ReviewedBy)
}

func TestTransitionReviewerSetOnlyOnce(t *testing.T) {
	r := pendingReport()

	reviewed, err := Transition(r, StatusReviewed, "", testActor, testNow)
	require.NoError(t, err)

	otherActor := uuid.New()
	later := testNow.Add(time.Hour)
	resolved, err := Transition(reviewed, StatusResolved, "content removed", otherActor, later)
	require.NoError(t, err)

	assert.Equal(t, StatusResolved, resolved.Status)
	assert.Equal(t, "content removed", resolved.Resolution)
	assert.Equal(t, testActor, *resolved.ReviewedBy, "second transition must not change reviewer")
	assert.Equal(t, testNow, *resolved.ReviewedAt)
}

func TestTransitionResolveOnlyFromReviewed(t *testing.T) {
	r := pendingReport()

	_, err := Transition(r, StatusResolved, "looks fine", testActor, testNow)
	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestTransitionResolveRequiresResolution(t *testing.T) {
	r := pendingReport()
	r.Status = StatusReviewed

	for _, text := range []string{"", "   ", "\t\n"} {
		_, err := Transition(r, StatusResolved, text, testActor, testNow)
		assert.ErrorIs(t, err, ErrResolutionRequired)
		assert.ErrorIs(t, err, ErrInvalidTransition, "empty resolution is an InvalidTransition-class error")
	}
}

func TestTransitionDismissDefaultsResolution(t *testing.T) {
	r := pendingReport()

	got, err := Transition(r, StatusDismissed, "", testActor, testNow)
	require.NoError(t, err)
	assert.Equal(t, StatusDismissed, got.Status)
	assert.NotEmpty(t, got.Resolution)

	r2 := pendingReport()
	got2, err := Transition(r2, StatusDismissed, "duplicate report", testActor, testNow)
	require.NoError(t, err)
	assert.Equal(t, "duplicate report", got2.Resolution)
}

func TestTransitionTerminalStatesAreFinal(t *testing.T) {
	for _, terminal := range []string{StatusResolved, StatusDismissed} {
		r := pendingReport()
		r.Status = terminal

		for _, target := range []string{StatusPending, StatusReviewed, StatusResolved, StatusDismissed} {
			_, err := Transition(r, target, "x", testActor, testNow)
			assert.ErrorIs(t, err, ErrInvalidTransition, "%s -> %s must be rejected", terminal, target)
		}
	}
}

func TestTransitionUnknownTarget(t *testing.T) {
	r := pendingReport()

	_, err := Transition(r, "escalated", "", testActor, testNow)
	assert.ErrorIs(t, err, ErrUnknownStatus)

	_, err = Transition(r, StatusAll, "", testActor, testNow)
	assert.ErrorIs(t, err, ErrUnknownStatus, "filter sentinel is not a storable status")
}

func TestTransitionTable(t *testing.T) {
	cases := []struct {
		from, to string
		ok       bool
	}{
		{StatusPending, StatusReviewed, true},
		{StatusPending, StatusDismissed, true},
		{StatusPending, StatusResolved, false},
		{StatusReviewed, StatusResolved, true},
		{StatusReviewed, StatusDismissed, true},
		{StatusReviewed, StatusPending, false},
		{StatusResolved, StatusDismissed, false},
		{StatusDismissed, StatusResolved, false},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.ok, CanTransition(tc.from, tc.to), "%s -> %s", tc.from, tc.to)
	}
}

func TestIsTerminal(t *testing.T) {
	assert.False(t, IsTerminal(StatusPending))
	assert.False(t, IsTerminal(StatusReviewed))
	assert.True(t, IsTerminal(StatusResolved))
	assert.True(t, IsTerminal(StatusDismissed))
	assert.False(t, IsTerminal("bogus"))
}

func TestTransitionScenarioPendingToReviewed(t *testing.T) {
	r := pendingReport()
	r.ContentID = "r1"

	got, err := Transition(r, StatusReviewed, "", testActor, testNow)
	require.NoError(t, err)
	assert.Equal(t, StatusReviewed, got.Status)
	assert.Equal(t, testActor, *got.ReviewedBy)
}

func TestTransitionScenarioEmptyResolutionOnReviewed(t *testing.T) {
	r := pendingReport()
	r.Status = StatusReviewed

	_, err := Transition(r, StatusResolved, "", testActor, testNow)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidTransition))
}
