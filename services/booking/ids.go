package booking

import (
	"strconv"
	"strings"
	"sync"
	"time"
)

// IDGenerator issues ORD-<unix millis> identifiers. When two calls land in the
// same millisecond the second one is bumped past the last issued value, so IDs
// are strictly increasing for the lifetime of the generator.
type IDGenerator struct {
	mu   sync.Mutex
	last int64
	now  func() time.Time
}

func NewIDGenerator(now func() time.Time) *IDGenerator {
	if now == nil {
		now = time.Now
	}
	return &IDGenerator{now: now}
}

func (g *IDGenerator) Next() string {
	g.mu.Lock()
	defer g.mu.Unlock()

	ms := g.now().UnixMilli()
	if ms <= g.last {
		ms = g.last + 1
	}
	g.last = ms
	return "ORD-" + strconv.FormatInt(ms, 10)
}

// Observe advances the generator past an ID issued elsewhere, such as one
// read back from the ledger. Malformed IDs are ignored.
func (g *IDGenerator) Observe(id string) {
	ms, err := strconv.ParseInt(strings.TrimPrefix(id, "ORD-"), 10, 64)
	if err != nil || !strings.HasPrefix(id, "ORD-") {
		return
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	if ms > g.last {
		g.last = ms
	}
}

// shared across all stores in the process so IDs never collide between users.
var defaultIDs = NewIDGenerator(time.Now)
