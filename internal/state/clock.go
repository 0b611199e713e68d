package state

import (
	"strconv"
	"strings"
	"sync/atomic"

	"github.com/google/uuid"
)

// idPrefix marks shape ids: "#0", "#1", ...
const idPrefix = "#"

// idClock hands out monotonically increasing shape ids. It never goes
// backwards, so an id removed from the board is never reused.
type idClock struct {
	next uint64
}

func (c *idClock) tick() string {
	n := atomic.AddUint64(&c.next, 1) - 1
	return idPrefix + strconv.FormatUint(n, 10)
}

// observe advances the clock past an imported id of the "#N" form.
func (c *idClock) observe(id string) {
	if !strings.HasPrefix(id, idPrefix) {
		return
	}
	n, err := strconv.ParseUint(strings.TrimPrefix(id, idPrefix), 10, 64)
	if err != nil {
		return
	}
	for {
		cur := atomic.LoadUint64(&c.next)
		if n < cur || atomic.CompareAndSwapUint64(&c.next, cur, n+1) {
			return
		}
	}
}

func newSessionID() string {
	return uuid.NewString()
}
