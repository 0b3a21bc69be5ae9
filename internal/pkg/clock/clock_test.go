package clock_test

import (
	"testing"
	"time"

	"parcelrouting/internal/pkg/clock"

	"github.com/stretchr/testify/assert"
)

func TestNow(t *testing.T) {
	before := time.Now().UTC()
	now := clock.Now()
	after := time.Now().UTC()

	assert.Equal(t, time.UTC, now.Location())
	assert.False(t, now.Before(before))
	assert.False(t, now.After(after))
}

func TestClocks(t *testing.T) {
	at := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	var c clock.Clock = clock.FixedClock{At: at}
	assert.Equal(t, at, c.Now())

	c = clock.RealClock{}
	assert.WithinDuration(t, time.Now(), c.Now(), time.Second)
}
