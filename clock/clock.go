// Package clock provides the logical clock and token issuer that stamp
// every customer arrival and service in a simulation run.
//
// The clock is a plain tick counter, not wall time. Ticks and tokens only
// ever increase, and each value is handed out exactly once.
//
// Thread safety:
//
//   - A Clock has a single writer. It is owned by the simulation driver,
//     which serializes every call; it is not safe for concurrent use.
package clock

// Clock is the per-run logical clock and customer token issuer.
// The zero value is not ready for use; call New.
type Clock struct {
	tick      int // last tick handed out (0 before the first Tick)
	nextToken int // next token to issue
}

// New returns a Clock at tick 0 whose first issued token is 1.
func New() *Clock {
	return &Clock{nextToken: 1}
}

// Tick advances the clock by one and returns the new tick.
// The first call returns 1.
func (c *Clock) Tick() int {
	c.tick++

	return c.tick
}

// Now returns the current tick without advancing.
func (c *Clock) Now() int { return c.tick }

// NextToken returns the next unused customer token (1, 2, 3, ...).
func (c *Clock) NextToken() int {
	t := c.nextToken
	c.nextToken++

	return t
}

// Tokens reports how many tokens have been issued so far.
func (c *Clock) Tokens() int { return c.nextToken - 1 }
