package planner_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roamhq/roam-backend/internal/domain"
	"github.com/roamhq/roam-backend/internal/planner"
)

func TestSelectDay_FirstTapStartsSelection(t *testing.T) {
	got, err := planner.SelectDay(planner.PendingRange{}, "2024-06-05")

	require.NoError(t, err)
	assert.Equal(t, planner.PendingRange{Start: "2024-06-05"}, got)
}

func TestSelectDay_SecondTapCompletesRange(t *testing.T) {
	pending := planner.PendingRange{Start: "2024-06-05"}

	got, err := planner.SelectDay(pending, "2024-06-08")

	require.NoError(t, err)
	assert.Equal(t, planner.PendingRange{Start: "2024-06-05", End: "2024-06-08"}, got)
	assert.True(t, got.Completed())
}

func TestSelectDay_EarlierTapReplacesStart(t *testing.T) {
	pending := planner.PendingRange{Start: "2024-06-05"}

	got, err := planner.SelectDay(pending, "2024-06-03")

	require.NoError(t, err)
	assert.Equal(t, planner.PendingRange{Start: "2024-06-03"}, got)
	assert.False(t, got.Completed())
}

func TestSelectDay_SameDayCompletesSingleDayRange(t *testing.T) {
	pending := planner.PendingRange{Start: "2024-06-05"}

	got, err := planner.SelectDay(pending, "2024-06-05")

	require.NoError(t, err)
	assert.Equal(t, planner.PendingRange{Start: "2024-06-05", End: "2024-06-05"}, got)
}

func TestSelectDay_TapAfterCompletedRangeResets(t *testing.T) {
	pending := planner.PendingRange{Start: "2024-06-05", End: "2024-06-08"}

	got, err := planner.SelectDay(pending, "2024-06-20")

	require.NoError(t, err)
	assert.Equal(t, planner.PendingRange{Start: "2024-06-20"}, got)
}

func TestSelectDay_MalformedDay(t *testing.T) {
	pending := planner.PendingRange{Start: "2024-06-05"}

	got, err := planner.SelectDay(pending, "June 7th")

	assert.ErrorIs(t, err, domain.ErrValidation)
	// Selection is unchanged on failure.
	assert.Equal(t, pending, got)
}

// ---- PreviewSpan -----------------------------------------------------------

func TestPreviewSpan_Empty(t *testing.T) {
	preview, err := planner.PreviewSpan(planner.PendingRange{})

	require.NoError(t, err)
	assert.Empty(t, preview)
}

func TestPreviewSpan_StartOnly(t *testing.T) {
	preview, err := planner.PreviewSpan(planner.PendingRange{Start: "2024-06-05"})

	require.NoError(t, err)
	require.Len(t, preview, 1)
	assert.Equal(t, planner.SpanFlags{Start: true}, preview["2024-06-05"])
}

func TestPreviewSpan_CompletedRange(t *testing.T) {
	preview, err := planner.PreviewSpan(planner.PendingRange{Start: "2024-06-05", End: "2024-06-08"})

	require.NoError(t, err)
	require.Len(t, preview, 4)
	assert.Equal(t, planner.SpanFlags{Start: true}, preview["2024-06-05"])
	assert.Equal(t, planner.SpanFlags{}, preview["2024-06-06"])
	assert.Equal(t, planner.SpanFlags{}, preview["2024-06-07"])
	assert.Equal(t, planner.SpanFlags{End: true}, preview["2024-06-08"])
}

func TestPreviewSpan_SingleDayRange(t *testing.T) {
	preview, err := planner.PreviewSpan(planner.PendingRange{Start: "2024-06-05", End: "2024-06-05"})

	require.NoError(t, err)
	require.Len(t, preview, 1)
	assert.Equal(t, planner.SpanFlags{Start: true, End: true}, preview["2024-06-05"])
}

func TestPreviewSpan_MalformedPending(t *testing.T) {
	_, err := planner.PreviewSpan(planner.PendingRange{Start: "bogus", End: "2024-06-08"})

	assert.ErrorIs(t, err, domain.ErrValidation)
}
