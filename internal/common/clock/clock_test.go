package clock

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDefaultClockIsUTC(t *testing.T) {
	before := time.Now()
	now := New().Now()

	assert.Equal(t, time.UTC, now.Location())
	assert.False(t, now.Before(before.Truncate(time.Second)))
}

func TestFixed(t *testing.T) {
	instant := time.Date(2026, 12, 24, 18, 0, 0, 0, time.UTC)

	var c Clock = Fixed(instant)
	assert.Equal(t, instant, c.Now())
	assert.Equal(t, instant, c.Now())
}
