package core

import (
	"fmt"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

type Limiter interface {
	Allow() bool
}

type limiterPool struct {
	mu       sync.Mutex
	limiters map[string]*rate.Limiter
}

func newLimiterPool() *limiterPool {
	return &limiterPool{
		limiters: make(map[string]*rate.Limiter),
	}
}

// UseLimiter returns the per-key limiter for an operation, creating it on
// first use with defaultRatelimit requests per minute.
func (s *Core) UseLimiter(key string, method string, defaultRatelimit int) Limiter {
	s.limiter.mu.Lock()
	defer s.limiter.mu.Unlock()

	id := fmt.Sprintf("%s:%s", method, key)
	l, ok := s.limiter.limiters[id]
	if !ok {
		limit := rate.Every(time.Minute / time.Duration(defaultRatelimit))
		l = rate.NewLimiter(limit, defaultRatelimit*2)
		s.limiter.limiters[id] = l
	}
	return l
}
