package clock

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFixedClock(t *testing.T) {
	at := time.Date(2024, time.June, 15, 10, 30, 0, 0, time.UTC)
	c := &FixedClock{FixedNow: at}
	assert.Equal(t, at, c.Now())

	c.SetNow(at.AddDate(0, 0, 1))
	assert.Equal(t, 16, c.Now().Day())
}

func TestDate(t *testing.T) {
	loc := time.FixedZone("UTC+3", 3*60*60)
	got := Date(time.Date(2024, time.December, 31, 23, 59, 59, 0, loc))

	assert.Equal(t, time.Date(2024, time.December, 31, 0, 0, 0, 0, loc), got)
}

func TestSystemClock(t *testing.T) {
	before := time.Now()
	got := SystemClock{}.Now()
	assert.False(t, got.Before(before))
}
