package memory

import (
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"multilanguage-agent/internal/conversation"
	"multilanguage-agent/internal/conversation/repository"
	"multilanguage-agent/pkg/log"
)

const (
	DefaultMaxSessions = 10000
	DefaultTTL         = 24 * time.Hour
)

type implRepository struct {
	l    log.Logger
	mu   sync.Mutex
	logs *expirable.LRU[string, *conversation.Log]
}

var _ repository.Repository = (*implRepository)(nil)

// New creates an in-memory session store. Sessions idle longer than ttl, or
// pushed out once maxSessions is reached, are dropped along with their log.
func New(l log.Logger, maxSessions int, ttl time.Duration) *implRepository {
	if maxSessions <= 0 {
		maxSessions = DefaultMaxSessions
	}
	if ttl <= 0 {
		ttl = DefaultTTL
	}

	r := &implRepository{l: l}
	r.logs = expirable.NewLRU[string, *conversation.Log](maxSessions, r.onEvict, ttl)
	return r
}
