package clock_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/cafeteria/clock"
)

func TestClock_TickIsMonotonic(t *testing.T) {
	c := clock.New()
	assert.Equal(t, 0, c.Now())

	prev := c.Now()
	for i := 0; i < 100; i++ {
		next := c.Tick()
		assert.Equal(t, prev+1, next)
		assert.Equal(t, next, c.Now())
		prev = next
	}
}

func TestClock_TokensAreUniqueAndSequential(t *testing.T) {
	c := clock.New()
	assert.Equal(t, 0, c.Tokens())

	seen := make(map[int]bool)
	for want := 1; want <= 50; want++ {
		tok := c.NextToken()
		assert.Equal(t, want, tok)
		assert.False(t, seen[tok], "token %d reused", tok)
		seen[tok] = true
	}
	assert.Equal(t, 50, c.Tokens())
}

func TestClock_TokensIndependentOfTicks(t *testing.T) {
	c := clock.New()
	c.Tick()
	c.Tick()
	assert.Equal(t, 1, c.NextToken())
	assert.Equal(t, 2, c.Now())
}
