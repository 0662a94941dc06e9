package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNextOccurrenceLaterToday(t *testing.T) {
	now := time.Date(2026, 3, 10, 8, 0, 0, 0, time.UTC)
	next := NextOccurrence("09:30", now)
	require.NotNil(t, next)
	assert.Equal(t, time.Date(2026, 3, 10, 9, 30, 0, 0, time.UTC), *next)
}

func TestNextOccurrenceAlreadyPassed(t *testing.T) {
	now := time.Date(2026, 3, 10, 10, 0, 0, 0, time.UTC)
	next := NextOccurrence("09:30", now)
	require.NotNil(t, next)
	assert.Equal(t, time.Date(2026, 3, 11, 9, 30, 0, 0, time.UTC), *next)
}

func TestNextOccurrenceExactlyNowRollsOver(t *testing.T) {
	now := time.Date(2026, 3, 10, 9, 30, 0, 0, time.UTC)
	next := NextOccurrence("09:30", now)
	require.NotNil(t, next)
	assert.Equal(t, time.Date(2026, 3, 11, 9, 30, 0, 0, time.UTC), *next)
}

func TestNextOccurrenceInvalidInput(t *testing.T) {
	now := time.Now()
	assert.Nil(t, NextOccurrence("", now))
	assert.Nil(t, NextOccurrence("25:99", now))
	assert.Nil(t, NextOccurrence("soon", now))
}
