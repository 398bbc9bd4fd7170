package correlation

import "time"

// SweepAround runs the two sweep phases with between executed after expired
// entries are collected and before they are removed.
func (c *Cache) SweepAround(between func()) int {
	expired := c.collectExpired(time.Now())
	between()
	return c.removeExpired(expired)
}
