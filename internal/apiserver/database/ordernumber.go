package database

import (
	"strconv"
	"sync/atomic"
	"time"
)

// orderNumbers hands out "ORD-<unix millis>" numbers that never repeat within
// the process, even when several orders land in the same millisecond.
type orderNumbers struct {
	last atomic.Int64
	now  func() time.Time
}

func (g *orderNumbers) next() string {
	for {
		now := g.now().UnixMilli()
		last := g.last.Load()
		n := max(now, last+1)
		if g.last.CompareAndSwap(last, n) {
			return "ORD-" + strconv.FormatInt(n, 10)
		}
	}
}

var defaultOrderNumbers = &orderNumbers{now: time.Now}

// NextOrderNumber returns a fresh order number
func NextOrderNumber() string {
	return defaultOrderNumbers.next()
}
