package utils_test

import (
	"testing"
	"time"

	"grc-app/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate_AcceptedLayouts(t *testing.T) {
	want := time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC)
	for _, in := range []string{"2025-04-01", "01-04-2025", "01/04/2025"} {
		got, err := utils.ParseDate(in)
		require.NoError(t, err, in)
		assert.True(t, got.Equal(want), in)
	}
}

func TestParseDate_RejectsGarbage(t *testing.T) {
	_, err := utils.ParseDate("April 1st")
	assert.Error(t, err)
}

func TestFormatDateDDMMYYYY(t *testing.T) {
	d := time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "01-04-2025", utils.FormatDateDDMMYYYY(d))

	got := utils.FormatDatePtr(&d)
	require.NotNil(t, got)
	assert.Equal(t, "01-04-2025", *got)
	assert.Nil(t, utils.FormatDatePtr(nil))
}
